package roundbuy

import (
	"context"
	"net/http"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

func (c *Client) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	const op = "get dashboard"

	raw, err := c.do(ctx, op, http.MethodGet, "/admin/dashboard", nil, nil)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	var stats entity.DashboardStats
	if err := unmarshal(raw, &stats); err != nil {
		return entity.DashboardStats{}, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}
	return stats, nil
}
