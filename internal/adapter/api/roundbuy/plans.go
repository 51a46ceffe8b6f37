package roundbuy

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

const (
	subscriptionPlansPath  = "/admin/subscription-plans"
	advertisementPlansPath = "/admin/advertisement-plans"
	bannerPlansPath        = "/admin/banner-plans"
)

func (c *Client) ListSubscriptionPlans(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list subscription plans", subscriptionPlansPath, "plans", q)
}

func (c *Client) CreateSubscriptionPlan(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create subscription plan", subscriptionPlansPath, rec)
}

func (c *Client) UpdateSubscriptionPlan(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update subscription plan", subscriptionPlansPath, id, rec)
}

func (c *Client) DeleteSubscriptionPlan(ctx context.Context, id string) error {
	return c.remove(ctx, "delete subscription plan", subscriptionPlansPath, id)
}

func (c *Client) ListAdvertisementPlans(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list advertisement plans", advertisementPlansPath, "plans", q)
}

func (c *Client) CreateAdvertisementPlan(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create advertisement plan", advertisementPlansPath, rec)
}

func (c *Client) UpdateAdvertisementPlan(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update advertisement plan", advertisementPlansPath, id, rec)
}

func (c *Client) DeleteAdvertisementPlan(ctx context.Context, id string) error {
	return c.remove(ctx, "delete advertisement plan", advertisementPlansPath, id)
}

func (c *Client) ListBannerPlans(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list banner plans", bannerPlansPath, "plans", q)
}

func (c *Client) CreateBannerPlan(ctx context.Context, rec entity.Record) (entity.Record, error) {
	return c.create(ctx, "create banner plan", bannerPlansPath, rec)
}

func (c *Client) UpdateBannerPlan(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update banner plan", bannerPlansPath, id, rec)
}

func (c *Client) DeleteBannerPlan(ctx context.Context, id string) error {
	return c.remove(ctx, "delete banner plan", bannerPlansPath, id)
}
