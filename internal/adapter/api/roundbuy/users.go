package roundbuy

import (
	"context"
	"net/http"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

const usersPath = "/admin/users"

func (c *Client) ListUsers(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list users", usersPath, "users", q)
}

func (c *Client) GetUser(ctx context.Context, id string) (entity.Record, error) {
	return c.get(ctx, "get user", itemPath(usersPath, id), "user")
}

func (c *Client) UpdateUser(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update user", usersPath, id, rec)
}

func (c *Client) SetUserStatus(ctx context.Context, id string, active bool) error {
	_, err := c.send(ctx, "update user status", http.MethodPatch, itemPath(usersPath, id)+"/status",
		map[string]bool{"is_active": active})
	return err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.remove(ctx, "delete user", usersPath, id)
}
