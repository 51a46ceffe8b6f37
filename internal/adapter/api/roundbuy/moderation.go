package roundbuy

import (
	"context"
	"net/http"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

const (
	moderationWordsPath = "/admin/moderation/words"
	moderationQueuePath = "/admin/moderation/queue"
)

func (c *Client) ListModerationWords(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list moderation words", moderationWordsPath, "words", q)
}

func (c *Client) CreateModerationWord(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create moderation word", moderationWordsPath, rec)
}

func (c *Client) UpdateModerationWord(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update moderation word", moderationWordsPath, id, rec)
}

func (c *Client) DeleteModerationWord(ctx context.Context, id string) error {
	return c.remove(ctx, "delete moderation word", moderationWordsPath, id)
}

func (c *Client) ListModerationQueue(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list moderation queue", moderationQueuePath, "queue", q)
}

// ReviewModerationItem records the moderator's decision ({status, notes}) on a queued item.
func (c *Client) ReviewModerationItem(ctx context.Context, id string, review entity.Record) error {
	_, err := c.send(ctx, "review moderation item", http.MethodPatch, itemPath(moderationQueuePath, id)+"/review", review)
	return err
}
