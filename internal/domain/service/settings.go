package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

type SettingsAPI interface {
	ListSettings(ctx context.Context, group string) ([]entity.Setting, error)
	BulkUpdateSettings(ctx context.Context, settings []entity.Setting) error
}

type settingsService struct {
	api SettingsAPI
}

func NewSettingsService(api SettingsAPI) *settingsService {
	return &settingsService{api: api}
}

func (service *settingsService) Settings(ctx context.Context) ([]entity.Setting, error) {
	return service.api.ListSettings(ctx, "")
}

// SaveSettings sends every submitted setting in one bulk update, restoring each value's kind.
func (service *settingsService) SaveSettings(ctx context.Context, form url.Values) error {
	settings, err := ParseSettingsForm(form)
	if err != nil {
		return err
	}
	return service.api.BulkUpdateSettings(ctx, settings)
}

func ParseSettingsForm(form url.Values) ([]entity.Setting, error) {
	var keys []string
	for name := range form {
		if key, ok := strings.CutPrefix(name, entity.SettingKindPrefix); ok && key != "" {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	settings := make([]entity.Setting, 0, len(keys))
	fieldErrs := resource.FieldErrors{}
	for _, key := range keys {
		raw := strings.TrimSpace(form.Get(entity.SettingValuePrefix + key))

		var value any
		switch form.Get(entity.SettingKindPrefix + key) {
		case entity.SettingBool:
			value = entity.Truthy(raw)
		case entity.SettingNumber:
			n := json.Number(raw)
			if _, err := n.Float64(); err != nil {
				fieldErrs[entity.SettingValuePrefix+key] = fmt.Sprintf("%s must be a number", key)
				continue
			}
			value = n
		default:
			value = raw
		}
		settings = append(settings, entity.Setting{Key: key, Value: value})
	}

	if len(fieldErrs) > 0 {
		return nil, errors.WrapIntoDomainError(fieldErrs, errors.ErrValidation, "invalid settings")
	}
	if len(settings) == 0 {
		return nil, errors.NewDomainError(errors.ErrValidation, "no settings submitted")
	}
	return settings, nil
}
