package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/go-chi/chi/v5"
)

type ListResourcesUsecase interface {
	List(ctx context.Context, d resource.Descriptor, st listing.State) (listing.View, error)
}

type listResourcesHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     ListResourcesUsecase
	registry    *resource.Registry
	rs          *Responder
}

func NewListResourcesHandler(usecase ListResourcesUsecase, registry *resource.Registry, rs *Responder) *listResourcesHandler {
	return &listResourcesHandler{
		usecase:     usecase,
		registry:    registry,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *listResourcesHandler) AddToRouter(r *chi.Mux) {
	for _, d := range h.registry.All() {
		r.Method(http.MethodGet, d.Path(), chain(h.list(d), h.middlewares))
	}
}

func (h *listResourcesHandler) Middlewares(md ...func(http.Handler) http.Handler) *listResourcesHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *listResourcesHandler) list(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := listing.FromValues(r.URL.Query(), d.FilterKeys(), d.PageSize())

		v, err := h.usecase.List(r.Context(), d, st)
		var msg string
		if err != nil {
			if h.rs.SessionLost(w, r, err) {
				return
			}
			slog.Error("error listing resources", "screen", d.Name, "error", err)
			msg = describe("Failed to load "+strings.ToLower(d.Title), err)
		}

		h.rs.Render(w, r, http.StatusOK, view.PageList, view.Page{
			Title:   d.Title,
			Current: d.Name,
			Data:    view.NewListPage(d, v, msg),
		})
	}
}
