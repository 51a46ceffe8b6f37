package roundbuy

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

const apiLogsPath = "/admin/api-logs"

func (c *Client) ListAPILogs(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list api logs", apiLogsPath, "logs", q)
}

func (c *Client) GetAPILog(ctx context.Context, id string) (entity.Record, error) {
	return c.get(ctx, "get api log", itemPath(apiLogsPath, id), "log")
}
