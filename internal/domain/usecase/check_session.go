package usecase

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

type checkSessionUsecase struct {
	sessionService SessionService
}

func NewCheckSessionUsecase(sessionService SessionService) *checkSessionUsecase {
	return &checkSessionUsecase{sessionService}
}

func (u *checkSessionUsecase) CheckSession(ctx context.Context, id string) (entity.Session, error) {
	return u.sessionService.CheckSession(ctx, id)
}
