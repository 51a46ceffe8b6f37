package roundbuy

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

// Category and ad attribute lookups, plus the country and currency reference data.
const (
	categoriesPath   = "/admin/categories"
	adActivitiesPath = "/admin/ad-activities"
	adConditionsPath = "/admin/ad-conditions"
	adAgesPath       = "/admin/ad-ages"
	adGendersPath    = "/admin/ad-genders"
	adSizesPath      = "/admin/ad-sizes"
	adColorsPath     = "/admin/ad-colors"
	countriesPath    = "/admin/countries"
	currenciesPath   = "/admin/currencies"
)

func (c *Client) ListCategories(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list categories", categoriesPath, "categories", q)
}

func (c *Client) CreateCategory(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create category", categoriesPath, rec)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update category", categoriesPath, id, rec)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.remove(ctx, "delete category", categoriesPath, id)
}

func (c *Client) ListAdActivities(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list ad activities", adActivitiesPath, "activities", q)
}

func (c *Client) CreateAdActivity(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create ad activity", adActivitiesPath, rec)
}

func (c *Client) UpdateAdActivity(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update ad activity", adActivitiesPath, id, rec)
}

func (c *Client) DeleteAdActivity(ctx context.Context, id string) error {
	return c.remove(ctx, "delete ad activity", adActivitiesPath, id)
}

func (c *Client) ListAdConditions(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list ad conditions", adConditionsPath, "conditions", q)
}

func (c *Client) CreateAdCondition(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create ad condition", adConditionsPath, rec)
}

func (c *Client) UpdateAdCondition(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update ad condition", adConditionsPath, id, rec)
}

func (c *Client) DeleteAdCondition(ctx context.Context, id string) error {
	return c.remove(ctx, "delete ad condition", adConditionsPath, id)
}

func (c *Client) ListAdAges(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list ad ages", adAgesPath, "ages", q)
}

func (c *Client) CreateAdAge(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create ad age", adAgesPath, rec)
}

func (c *Client) UpdateAdAge(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update ad age", adAgesPath, id, rec)
}

func (c *Client) DeleteAdAge(ctx context.Context, id string) error {
	return c.remove(ctx, "delete ad age", adAgesPath, id)
}

func (c *Client) ListAdGenders(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list ad genders", adGendersPath, "genders", q)
}

func (c *Client) CreateAdGender(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create ad gender", adGendersPath, rec)
}

func (c *Client) UpdateAdGender(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update ad gender", adGendersPath, id, rec)
}

func (c *Client) DeleteAdGender(ctx context.Context, id string) error {
	return c.remove(ctx, "delete ad gender", adGendersPath, id)
}

func (c *Client) ListAdSizes(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list ad sizes", adSizesPath, "sizes", q)
}

func (c *Client) CreateAdSize(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create ad size", adSizesPath, rec)
}

func (c *Client) UpdateAdSize(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update ad size", adSizesPath, id, rec)
}

func (c *Client) DeleteAdSize(ctx context.Context, id string) error {
	return c.remove(ctx, "delete ad size", adSizesPath, id)
}

func (c *Client) ListAdColors(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list ad colors", adColorsPath, "colors", q)
}

func (c *Client) CreateAdColor(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create ad color", adColorsPath, rec)
}

func (c *Client) UpdateAdColor(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update ad color", adColorsPath, id, rec)
}

func (c *Client) DeleteAdColor(ctx context.Context, id string) error {
	return c.remove(ctx, "delete ad color", adColorsPath, id)
}

func (c *Client) ListCountries(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list countries", countriesPath, "countries", q)
}

func (c *Client) CreateCountry(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create country", countriesPath, rec)
}

func (c *Client) UpdateCountry(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update country", countriesPath, id, rec)
}

func (c *Client) DeleteCountry(ctx context.Context, id string) error {
	return c.remove(ctx, "delete country", countriesPath, id)
}

func (c *Client) ListCurrencies(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list currencies", currenciesPath, "currencies", q)
}

func (c *Client) CreateCurrency(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create currency", currenciesPath, rec)
}

func (c *Client) UpdateCurrency(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update currency", currenciesPath, id, rec)
}

func (c *Client) DeleteCurrency(ctx context.Context, id string) error {
	return c.remove(ctx, "delete currency", currenciesPath, id)
}
