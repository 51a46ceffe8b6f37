package roundbuy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

const settingsPath = "/admin/settings"

// ListSettings returns every setting, optionally restricted to one group.
func (c *Client) ListSettings(ctx context.Context, group string) ([]entity.Setting, error) {
	const op = "list settings"

	query := url.Values{}
	if group != "" {
		query.Set("group", group)
	}

	raw, err := c.do(ctx, op, http.MethodGet, settingsPath, query, nil)
	if err != nil {
		return nil, err
	}

	page, _, err := decodePage(raw, "settings")
	if err != nil {
		return nil, errors.WrapIntoDomainError(err, errors.ErrUpstream, op)
	}

	settings := make([]entity.Setting, 0, len(page.Items))
	for _, r := range page.Items {
		settings = append(settings, entity.Setting{
			Key:         r.String("setting_key"),
			Value:       r["setting_value"],
			Group:       r.String("setting_group"),
			Description: r.String("description"),
		})
	}
	return settings, nil
}

func (c *Client) UpdateSetting(ctx context.Context, key string, value any) error {
	_, err := c.send(ctx, "update setting", http.MethodPut, itemPath(settingsPath, key),
		map[string]any{"setting_value": value})
	return err
}

type bulkSettings struct {
	Settings []bulkSetting `json:"settings"`
}

type bulkSetting struct {
	Key   string `json:"setting_key"`
	Value any    `json:"setting_value"`
}

func (c *Client) BulkUpdateSettings(ctx context.Context, settings []entity.Setting) error {
	body := bulkSettings{Settings: make([]bulkSetting, 0, len(settings))}
	for _, s := range settings {
		body.Settings = append(body.Settings, bulkSetting{Key: s.Key, Value: s.Value})
	}

	_, err := c.send(ctx, "update settings", http.MethodPost, settingsPath+"/bulk", body)
	return err
}
