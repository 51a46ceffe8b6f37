package roundbuy

import (
	"context"
	"net/http"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

// Login exchanges admin credentials for a backend access token.
func (c *Client) Login(ctx context.Context, dto entity.LoginDTO) (entity.LoginResult, error) {
	const op = "login"

	raw, err := c.do(ctx, op, http.MethodPost, "/auth/login", nil, dto)
	if err != nil {
		return entity.LoginResult{}, err
	}

	var res entity.LoginResult
	if err := unmarshal(raw, &res); err != nil {
		return entity.LoginResult{}, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}
	if res.BearerToken() == "" {
		return entity.LoginResult{}, errors.NewDomainError(errors.ErrUpstream, "%s: response carries no token", op)
	}
	return res, nil
}
