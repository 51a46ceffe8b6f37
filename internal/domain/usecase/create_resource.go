package usecase

import (
	"context"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
)

type createResourceUsecase struct {
	resourceService ResourceService
}

func NewCreateResourceUsecase(resourceService ResourceService) *createResourceUsecase {
	return &createResourceUsecase{resourceService}
}

func (u *createResourceUsecase) Create(ctx context.Context, d resource.Descriptor, form url.Values) (entity.Record, error) {
	return u.resourceService.Create(ctx, d, form)
}
