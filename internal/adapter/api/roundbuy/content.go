package roundbuy

import (
	"context"
	"net/http"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

const (
	advertisementsPath = "/admin/advertisements"
	bannersPath        = "/admin/banners"
	subscriptionsPath  = "/admin/subscriptions"
)

type rejection struct {
	Reason string `json:"rejection_reason"`
}

func (c *Client) ListAdvertisements(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list advertisements", advertisementsPath, "advertisements", q)
}

func (c *Client) GetAdvertisement(ctx context.Context, id string) (entity.Record, error) {
	return c.get(ctx, "get advertisement", itemPath(advertisementsPath, id), "advertisement")
}

func (c *Client) UpdateAdvertisement(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update advertisement", advertisementsPath, id, rec)
}

func (c *Client) ApproveAdvertisement(ctx context.Context, id string) error {
	_, err := c.send(ctx, "approve advertisement", http.MethodPatch, itemPath(advertisementsPath, id)+"/approve", nil)
	return err
}

func (c *Client) RejectAdvertisement(ctx context.Context, id, reason string) error {
	_, err := c.send(ctx, "reject advertisement", http.MethodPatch, itemPath(advertisementsPath, id)+"/reject",
		rejection{Reason: reason})
	return err
}

func (c *Client) DeleteAdvertisement(ctx context.Context, id string) error {
	return c.remove(ctx, "delete advertisement", advertisementsPath, id)
}

func (c *Client) ListBanners(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list banners", bannersPath, "banners", q)
}

func (c *Client) ApproveBanner(ctx context.Context, id string) error {
	_, err := c.send(ctx, "approve banner", http.MethodPatch, itemPath(bannersPath, id)+"/approve", nil)
	return err
}

func (c *Client) RejectBanner(ctx context.Context, id, reason string) error {
	_, err := c.send(ctx, "reject banner", http.MethodPatch, itemPath(bannersPath, id)+"/reject",
		rejection{Reason: reason})
	return err
}

func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.remove(ctx, "delete banner", bannersPath, id)
}

func (c *Client) ListSubscriptions(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	return c.list(ctx, "list subscriptions", subscriptionsPath, "subscriptions", q)
}

func (c *Client) UpdateSubscription(ctx context.Context, id string, rec entity.Record) (entity.Record, error) {
	return c.update(ctx, "update subscription", subscriptionsPath, id, rec)
}
