package v1

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/go-chi/chi/v5"
)

type CreateResourceUsecase interface {
	Create(ctx context.Context, d resource.Descriptor, form url.Values) (entity.Record, error)
}

// FormOptionsUsecase loads the choices of select fields backed by another screen.
type FormOptionsUsecase interface {
	FormOptions(ctx context.Context, fields []resource.Field) (map[string][]resource.Option, error)
}

type createResourceHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     CreateResourceUsecase
	options     FormOptionsUsecase
	registry    *resource.Registry
	rs          *Responder
}

func NewCreateResourceHandler(usecase CreateResourceUsecase, options FormOptionsUsecase, registry *resource.Registry, rs *Responder) *createResourceHandler {
	return &createResourceHandler{
		usecase:     usecase,
		options:     options,
		registry:    registry,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *createResourceHandler) AddToRouter(r *chi.Mux) {
	for _, d := range h.registry.All() {
		if !d.CanCreate() {
			continue
		}
		r.Method(http.MethodGet, d.Path()+"/new", chain(h.show(d), h.middlewares))
		r.Method(http.MethodPost, d.Path()+"/new", chain(h.create(d), h.middlewares))
	}
}

func (h *createResourceHandler) Middlewares(md ...func(http.Handler) http.Handler) *createResourceHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *createResourceHandler) show(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, d, r.URL.Query().Get("return"), resource.DefaultValues(d.Form), nil, "")
	}
}

func (h *createResourceHandler) create(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "error parsing form", http.StatusBadRequest)
			return
		}
		ret := r.PostForm.Get("return")

		_, err := h.usecase.Create(r.Context(), d, r.PostForm)
		if err != nil {
			if h.rs.SessionLost(w, r, err) {
				return
			}
			slog.Debug("create failed", "screen", d.Name, "error", err)
			h.render(w, r, statusFor(err), d, ret, resource.PostedValues(d.Form, r.PostForm), fieldErrors(err), describe(d.Failed("create"), err))
			return
		}

		h.rs.SeeOther(w, r, view.ListURL(d, returnState(d, ret)), view.Flash{Kind: view.FlashSuccess, Message: d.Succeeded("created")})
	}
}

func (h *createResourceHandler) render(w http.ResponseWriter, r *http.Request, status int, d resource.Descriptor, ret string, values map[string]string, errs resource.FieldErrors, msg string) {
	options, err := h.options.FormOptions(r.Context(), d.Form)
	if err != nil {
		slog.Error("error loading form options", "screen", d.Name, "error", err)
	}

	h.rs.Render(w, r, status, view.PageForm, view.Page{
		Title:   d.Title,
		Current: d.Name,
		Data: view.FormPage{
			Heading: "Add " + d.Singular,
			Action:  d.Path() + "/new",
			Submit:  "Create",
			Cancel:  view.ListURL(d, returnState(d, ret)),
			Return:  ret,
			Error:   msg,
			Fields:  view.NewFormFields(d.Form, values, errs, options),
		},
	})
}
