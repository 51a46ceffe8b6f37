package usecase

import (
	"context"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
)

type updateResourceUsecase struct {
	resourceService ResourceService
}

func NewUpdateResourceUsecase(resourceService ResourceService) *updateResourceUsecase {
	return &updateResourceUsecase{resourceService}
}

func (u *updateResourceUsecase) Update(ctx context.Context, d resource.Descriptor, id string, form url.Values) (entity.Record, error) {
	return u.resourceService.Update(ctx, d, id, form)
}
