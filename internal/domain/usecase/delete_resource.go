package usecase

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
)

type deleteResourceUsecase struct {
	resourceService ResourceService
}

func NewDeleteResourceUsecase(resourceService ResourceService) *deleteResourceUsecase {
	return &deleteResourceUsecase{resourceService}
}

func (u *deleteResourceUsecase) Delete(ctx context.Context, d resource.Descriptor, id string) error {
	return u.resourceService.Delete(ctx, d, id)
}
