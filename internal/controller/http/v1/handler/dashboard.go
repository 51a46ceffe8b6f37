package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	dashboardURL = "/"
)

type DashboardUsecase interface {
	Dashboard(ctx context.Context) (entity.Dashboard, error)
}

type dashboardHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     DashboardUsecase
	rs          *Responder
}

func NewDashboardHandler(usecase DashboardUsecase, rs *Responder) *dashboardHandler {
	return &dashboardHandler{
		usecase:     usecase,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *dashboardHandler) AddToRouter(r *chi.Mux) {
	r.Method(http.MethodGet, dashboardURL, chain(h, h.middlewares))
}

func (h *dashboardHandler) Middlewares(md ...func(http.Handler) http.Handler) *dashboardHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *dashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.usecase.Dashboard(r.Context())
	page := view.NewDashboardPage(dashboard)
	if err != nil {
		if h.rs.SessionLost(w, r, err) {
			return
		}
		slog.Error("error loading dashboard", "error", err)
		page.Error = describe("Failed to load dashboard", err)
	}

	h.rs.Render(w, r, http.StatusOK, view.PageDashboard, view.Page{
		Title:   "Dashboard",
		Current: "dashboard",
		Data:    page,
	})
}
