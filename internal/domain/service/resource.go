package service

import (
	"context"
	"net/url"
	"sync"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/usecase"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"golang.org/x/sync/errgroup"
)

var _ usecase.ResourceService = new(resourceService)
var _ usecase.SessionService = new(sessionService)
var _ usecase.DashboardService = new(dashboardService)
var _ usecase.SettingsService = new(settingsService)

// optionsLimit bounds the rows fetched to fill one select.
const optionsLimit = 100

type resourceService struct {
	registry *resource.Registry
	memory   listing.Memory
}

func NewResourceService(registry *resource.Registry, storage SessionStorage) *resourceService {
	return &resourceService{
		registry: registry,
		memory:   sessionMemory{storage: storage},
	}
}

func (service *resourceService) List(ctx context.Context, d resource.Descriptor, st listing.State) (listing.View, error) {
	c := listing.Controller{
		Screen:      d.Name,
		SearchParam: d.SearchParam,
		Fetch:       listing.Fetch(d.Endpoints.List),
		Memory:      service.memory,
	}
	return c.Load(ctx, st)
}

// Get returns one record. Screens without a detail endpoint look the row up
// in the last page loaded for them.
func (service *resourceService) Get(ctx context.Context, d resource.Descriptor, id string) (entity.Record, error) {
	if d.Endpoints.Get != nil {
		return d.Endpoints.Get(ctx, id)
	}

	if snap, ok := service.memory.Recall(ctx, d.Name); ok {
		for _, row := range snap.Items {
			if row.ID() == id {
				return row, nil
			}
		}
	}
	return nil, errors.NewDomainError(errors.ErrNoDataFound, "%s %s is not on the loaded page", d.Singular, id)
}

func (service *resourceService) Create(ctx context.Context, d resource.Descriptor, form url.Values) (entity.Record, error) {
	if !d.CanCreate() {
		return nil, errors.NewDomainError(errors.ErrForbidden, "%s cannot be created here", d.Title)
	}

	rec, fieldErrs := resource.Bind(d.Form, form)
	if len(fieldErrs) > 0 {
		return nil, errors.WrapIntoDomainError(fieldErrs, errors.ErrValidation, "invalid "+d.Singular)
	}
	return d.Endpoints.Create(ctx, rec)
}

func (service *resourceService) Update(ctx context.Context, d resource.Descriptor, id string, form url.Values) (entity.Record, error) {
	if !d.CanEdit() {
		return nil, errors.NewDomainError(errors.ErrForbidden, "%s cannot be edited here", d.Title)
	}

	rec, fieldErrs := resource.Bind(d.Form, form)
	if len(fieldErrs) > 0 {
		return nil, errors.WrapIntoDomainError(fieldErrs, errors.ErrValidation, "invalid "+d.Singular)
	}
	return d.Endpoints.Update(ctx, id, rec)
}

func (service *resourceService) Delete(ctx context.Context, d resource.Descriptor, id string) error {
	if !d.CanDelete() {
		return errors.NewDomainError(errors.ErrForbidden, "%s cannot be deleted here", d.Title)
	}
	return d.Endpoints.Delete(ctx, id)
}

func (service *resourceService) RunAction(ctx context.Context, a resource.Action, id string, form url.Values) error {
	input, fieldErrs := resource.Bind(a.Fields, form)
	if len(fieldErrs) > 0 {
		return errors.WrapIntoDomainError(fieldErrs, errors.ErrValidation, "invalid "+a.Label)
	}
	for _, p := range a.RowParams {
		input[p] = form.Get(p)
	}
	return a.Do(ctx, id, input)
}

// FormOptions loads the rows behind every OptionsFrom field concurrently.
// Options that loaded are returned even when another list failed.
func (service *resourceService) FormOptions(ctx context.Context, fields []resource.Field) (map[string][]resource.Option, error) {
	var (
		mu  sync.Mutex
		out = make(map[string][]resource.Option)
		g   errgroup.Group
	)

	for _, f := range fields {
		if f.OptionsFrom == "" {
			continue
		}
		source, ok := service.registry.Get(f.OptionsFrom)
		if !ok {
			return out, errors.NewDomainError(errors.ErrNoDataFound, "no screen %q for %s options", f.OptionsFrom, f.Name)
		}

		g.Go(func() error {
			page, err := source.Endpoints.List(ctx, entity.ListQuery{Page: 1, Limit: optionsLimit})
			if err != nil {
				return err
			}
			opts := f.OptionsOf(page.Items)

			mu.Lock()
			out[f.Name] = opts
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return out, err
}
