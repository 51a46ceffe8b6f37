package usecase

import (
	"context"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

type DashboardService interface {
	Dashboard(ctx context.Context) (entity.Dashboard, error)
}

type getDashboardUsecase struct {
	dashboardService DashboardService
}

func NewGetDashboardUsecase(dashboardService DashboardService) *getDashboardUsecase {
	return &getDashboardUsecase{dashboardService}
}

func (u *getDashboardUsecase) Dashboard(ctx context.Context) (entity.Dashboard, error) {
	return u.dashboardService.Dashboard(ctx)
}
