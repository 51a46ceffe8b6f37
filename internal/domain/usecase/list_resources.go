package usecase

import (
	"context"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
)

type ResourceService interface {
	List(ctx context.Context, d resource.Descriptor, st listing.State) (listing.View, error)
	Get(ctx context.Context, d resource.Descriptor, id string) (entity.Record, error)
	Create(ctx context.Context, d resource.Descriptor, form url.Values) (entity.Record, error)
	Update(ctx context.Context, d resource.Descriptor, id string, form url.Values) (entity.Record, error)
	Delete(ctx context.Context, d resource.Descriptor, id string) error
	RunAction(ctx context.Context, a resource.Action, id string, form url.Values) error
	FormOptions(ctx context.Context, fields []resource.Field) (map[string][]resource.Option, error)
}

type listResourcesUsecase struct {
	resourceService ResourceService
}

func NewListResourcesUsecase(resourceService ResourceService) *listResourcesUsecase {
	return &listResourcesUsecase{resourceService}
}

func (u *listResourcesUsecase) List(ctx context.Context, d resource.Descriptor, st listing.State) (listing.View, error) {
	return u.resourceService.List(ctx, d, st)
}
