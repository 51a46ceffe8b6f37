package usecase

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
)

type getResourceUsecase struct {
	resourceService ResourceService
}

func NewGetResourceUsecase(resourceService ResourceService) *getResourceUsecase {
	return &getResourceUsecase{resourceService}
}

func (u *getResourceUsecase) Get(ctx context.Context, d resource.Descriptor, id string) (entity.Record, error) {
	return u.resourceService.Get(ctx, d, id)
}

func (u *getResourceUsecase) FormOptions(ctx context.Context, fields []resource.Field) (map[string][]resource.Option, error) {
	return u.resourceService.FormOptions(ctx, fields)
}
