package v1

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/go-chi/chi/v5"
)

type GetResourceUsecase interface {
	Get(ctx context.Context, d resource.Descriptor, id string) (entity.Record, error)
}

type getResourceHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     GetResourceUsecase
	registry    *resource.Registry
	rs          *Responder
}

func NewGetResourceHandler(usecase GetResourceUsecase, registry *resource.Registry, rs *Responder) *getResourceHandler {
	return &getResourceHandler{
		usecase:     usecase,
		registry:    registry,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *getResourceHandler) AddToRouter(r *chi.Mux) {
	for _, d := range h.registry.All() {
		if !d.CanView() {
			continue
		}
		r.Method(http.MethodGet, d.Path()+"/{id}", chain(h.get(d), h.middlewares))
	}
}

func (h *getResourceHandler) Middlewares(md ...func(http.Handler) http.Handler) *getResourceHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *getResourceHandler) get(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ret := r.URL.Query().Get("return")
		back := view.ListURL(d, returnState(d, ret))

		rec, err := h.usecase.Get(r.Context(), d, id)
		if err != nil {
			if h.rs.SessionLost(w, r, err) {
				return
			}
			if errors.Code(err) == errors.ErrNoDataFound {
				h.rs.NotFound(w, r, d.Singular+" not found", back)
				return
			}
			slog.Error("error getting resource", "screen", d.Name, "id", id, "error", err)
			h.rs.Render(w, r, statusFor(err), view.PageError, view.Page{
				Title:   d.Title,
				Current: d.Name,
				Data:    view.ErrorPage{Status: statusFor(err), Message: describe("Failed to load "+d.Singular, err), Back: back},
			})
			return
		}

		page := view.DetailPage{
			Heading: d.Singular + " " + id,
			Back:    back,
			Rows:    view.NewDetailRows(rec),
		}
		if d.CanEdit() {
			page.Edit = d.Path() + "/" + url.PathEscape(id) + "/edit?" + url.Values{"return": {ret}}.Encode()
		}

		h.rs.Render(w, r, http.StatusOK, view.PageDetail, view.Page{
			Title:   d.Title,
			Current: d.Name,
			Data:    page,
		})
	}
}
