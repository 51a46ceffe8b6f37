package service

import (
	"context"
	"log/slog"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"golang.org/x/sync/errgroup"
)

type DashboardAPI interface {
	DashboardStats(ctx context.Context) (entity.DashboardStats, error)
	ListAdvertisements(ctx context.Context, q entity.ListQuery) (entity.Page, error)
}

type dashboardService struct {
	api DashboardAPI
}

func NewDashboardService(api DashboardAPI) *dashboardService {
	return &dashboardService{api: api}
}

// Dashboard fetches the aggregates and the pending review count side by side.
// Only the aggregates are required.
func (service *dashboardService) Dashboard(ctx context.Context) (entity.Dashboard, error) {
	var (
		dashboard entity.Dashboard
		g         errgroup.Group
	)

	g.Go(func() error {
		stats, err := service.api.DashboardStats(ctx)
		if err != nil {
			return err
		}
		dashboard.DashboardStats = stats
		return nil
	})

	g.Go(func() error {
		page, err := service.api.ListAdvertisements(ctx, entity.ListQuery{
			Page: 1, Limit: 1, Filters: map[string]string{"status": "pending"},
		})
		if err != nil {
			slog.Warn("error counting pending advertisements", "error", err)
			return nil
		}
		dashboard.PendingAdvertisements = &page.Total
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.Dashboard{}, err
	}
	return dashboard, nil
}
