package v1

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/go-chi/chi/v5"
)

type DeleteResourceUsecase interface {
	Delete(ctx context.Context, d resource.Descriptor, id string) error
}

type deleteResourceHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     DeleteResourceUsecase
	registry    *resource.Registry
	rs          *Responder
}

func NewDeleteResourceHandler(usecase DeleteResourceUsecase, registry *resource.Registry, rs *Responder) *deleteResourceHandler {
	return &deleteResourceHandler{
		usecase:     usecase,
		registry:    registry,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *deleteResourceHandler) AddToRouter(r *chi.Mux) {
	for _, d := range h.registry.All() {
		if !d.CanDelete() {
			continue
		}
		r.Method(http.MethodGet, d.Path()+"/{id}/delete", chain(h.confirm(d), h.middlewares))
		r.Method(http.MethodPost, d.Path()+"/{id}/delete", chain(h.delete(d), h.middlewares))
	}
}

func (h *deleteResourceHandler) Middlewares(md ...func(http.Handler) http.Handler) *deleteResourceHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *deleteResourceHandler) confirm(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, d, chi.URLParam(r, "id"), r.URL.Query().Get("return"), "")
	}
}

func (h *deleteResourceHandler) delete(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "error parsing form", http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")
		ret := r.PostForm.Get("return")

		err := h.usecase.Delete(r.Context(), d, id)
		if err != nil {
			if h.rs.SessionLost(w, r, err) {
				return
			}
			slog.Error("error deleting resource", "screen", d.Name, "id", id, "error", err)
			h.render(w, r, statusFor(err), d, id, ret, describe(d.Failed("delete"), err))
			return
		}

		h.rs.SeeOther(w, r, view.ListURL(d, returnState(d, ret)), view.Flash{Kind: view.FlashSuccess, Message: d.Succeeded("deleted")})
	}
}

func (h *deleteResourceHandler) render(w http.ResponseWriter, r *http.Request, status int, d resource.Descriptor, id, ret, msg string) {
	h.rs.Render(w, r, status, view.PageConfirm, view.Page{
		Title:   d.Title,
		Current: d.Name,
		Data: view.ConfirmPage{
			Heading: "Delete " + d.Singular,
			Message: "Are you sure you want to delete this " + strings.ToLower(d.Singular) + "? This cannot be undone.",
			Action:  d.Path() + "/" + url.PathEscape(id) + "/delete",
			Confirm: "Delete",
			Cancel:  view.ListURL(d, returnState(d, ret)),
			Danger:  true,
			Hidden:  []view.Hidden{{Name: "return", Value: ret}},
			Error:   msg,
		},
	})
}
