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

type UpdateResourceUsecase interface {
	Update(ctx context.Context, d resource.Descriptor, id string, form url.Values) (entity.Record, error)
}

type updateResourceHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     UpdateResourceUsecase
	get         GetResourceUsecase
	options     FormOptionsUsecase
	registry    *resource.Registry
	rs          *Responder
}

func NewUpdateResourceHandler(usecase UpdateResourceUsecase, get GetResourceUsecase, options FormOptionsUsecase, registry *resource.Registry, rs *Responder) *updateResourceHandler {
	return &updateResourceHandler{
		usecase:     usecase,
		get:         get,
		options:     options,
		registry:    registry,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *updateResourceHandler) AddToRouter(r *chi.Mux) {
	for _, d := range h.registry.All() {
		if !d.CanEdit() {
			continue
		}
		r.Method(http.MethodGet, d.Path()+"/{id}/edit", chain(h.show(d), h.middlewares))
		r.Method(http.MethodPost, d.Path()+"/{id}/edit", chain(h.update(d), h.middlewares))
	}
}

func (h *updateResourceHandler) Middlewares(md ...func(http.Handler) http.Handler) *updateResourceHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *updateResourceHandler) show(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ret := r.URL.Query().Get("return")

		rec, err := h.get.Get(r.Context(), d, id)
		if err != nil {
			if h.rs.SessionLost(w, r, err) {
				return
			}
			if errors.Code(err) == errors.ErrNoDataFound {
				h.rs.NotFound(w, r, d.Singular+" not found", view.ListURL(d, returnState(d, ret)))
				return
			}
			slog.Error("error loading resource for edit", "screen", d.Name, "id", id, "error", err)
			h.render(w, r, statusFor(err), d, id, ret, resource.DefaultValues(d.Form), nil, describe("Failed to load "+d.Singular, err))
			return
		}

		h.render(w, r, http.StatusOK, d, id, ret, resource.FormValues(d.Form, rec), nil, "")
	}
}

func (h *updateResourceHandler) update(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "error parsing form", http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")
		ret := r.PostForm.Get("return")

		_, err := h.usecase.Update(r.Context(), d, id, r.PostForm)
		if err != nil {
			if h.rs.SessionLost(w, r, err) {
				return
			}
			slog.Debug("update failed", "screen", d.Name, "id", id, "error", err)
			h.render(w, r, statusFor(err), d, id, ret, resource.PostedValues(d.Form, r.PostForm), fieldErrors(err), describe(d.Failed("update"), err))
			return
		}

		h.rs.SeeOther(w, r, view.ListURL(d, returnState(d, ret)), view.Flash{Kind: view.FlashSuccess, Message: d.Succeeded("updated")})
	}
}

func (h *updateResourceHandler) render(w http.ResponseWriter, r *http.Request, status int, d resource.Descriptor, id, ret string, values map[string]string, errs resource.FieldErrors, msg string) {
	options, err := h.options.FormOptions(r.Context(), d.Form)
	if err != nil {
		slog.Error("error loading form options", "screen", d.Name, "error", err)
	}

	h.rs.Render(w, r, status, view.PageForm, view.Page{
		Title:   d.Title,
		Current: d.Name,
		Data: view.FormPage{
			Heading: "Edit " + d.Singular,
			Action:  d.Path() + "/" + url.PathEscape(id) + "/edit",
			Submit:  "Save",
			Cancel:  view.ListURL(d, returnState(d, ret)),
			Return:  ret,
			Error:   msg,
			Fields:  view.NewFormFields(d.Form, values, errs, options),
		},
	})
}
