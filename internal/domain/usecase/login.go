package usecase

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

type SessionService interface {
	Login(ctx context.Context, dto entity.LoginDTO) (entity.Session, error)
	CheckSession(ctx context.Context, id string) (entity.Session, error)
	Logout(ctx context.Context, id string) error
}

type loginUsecase struct {
	sessionService SessionService
}

func NewLoginUsecase(sessionService SessionService) *loginUsecase {
	return &loginUsecase{sessionService}
}

func (u *loginUsecase) Login(ctx context.Context, dto entity.LoginDTO) (entity.Session, error) {
	return u.sessionService.Login(ctx, dto)
}
