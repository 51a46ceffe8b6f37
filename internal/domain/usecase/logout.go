package usecase

import "context"

type logoutUsecase struct {
	sessionService SessionService
}

func NewLogoutUsecase(sessionService SessionService) *logoutUsecase {
	return &logoutUsecase{sessionService}
}

func (u *logoutUsecase) Logout(ctx context.Context, id string) error {
	return u.sessionService.Logout(ctx, id)
}
