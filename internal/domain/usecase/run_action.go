package usecase

import (
	"context"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
)

type runActionUsecase struct {
	resourceService ResourceService
}

func NewRunActionUsecase(resourceService ResourceService) *runActionUsecase {
	return &runActionUsecase{resourceService}
}

func (u *runActionUsecase) RunAction(ctx context.Context, a resource.Action, id string, form url.Values) error {
	return u.resourceService.RunAction(ctx, a, id, form)
}
