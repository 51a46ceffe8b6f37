package roundbuy

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

const (
	languagesPath       = "/admin/languages"
	translationKeysPath = "/admin/translation-keys"
	translationsPath    = "/admin/translations"
)

func (c *Client) ListLanguages(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list languages", languagesPath, "languages", q)
}

func (c *Client) CreateLanguage(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create language", languagesPath, rec)
}

func (c *Client) UpdateLanguage(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update language", languagesPath, id, rec)
}

func (c *Client) DeleteLanguage(ctx context.Context, id string) error {
	return c.remove(ctx, "delete language", languagesPath, id)
}

func (c *Client) ListTranslationKeys(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list translation keys", translationKeysPath, "keys", q)
}

func (c *Client) CreateTranslationKey(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create translation key", translationKeysPath, rec)
}

func (c *Client) ListTranslations(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list translations", translationsPath, "translations", q)
}

func (c *Client) UpdateTranslation(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update translation", translationsPath, id, rec)
}
