package usecase

import (
	"context"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

type SettingsService interface {
	Settings(ctx context.Context) ([]entity.Setting, error)
	SaveSettings(ctx context.Context, form url.Values) error
}

type settingsUsecase struct {
	settingsService SettingsService
}

func NewSettingsUsecase(settingsService SettingsService) *settingsUsecase {
	return &settingsUsecase{settingsService}
}

func (u *settingsUsecase) Settings(ctx context.Context) ([]entity.Setting, error) {
	return u.settingsService.Settings(ctx)
}

func (u *settingsUsecase) SaveSettings(ctx context.Context, form url.Values) error {
	return u.settingsService.SaveSettings(ctx, form)
}
