package v1

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/go-chi/chi/v5"
)

type RunActionUsecase interface {
	RunAction(ctx context.Context, a resource.Action, id string, form url.Values) error
}

type runActionHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     RunActionUsecase
	registry    *resource.Registry
	rs          *Responder
}

func NewRunActionHandler(usecase RunActionUsecase, registry *resource.Registry, rs *Responder) *runActionHandler {
	return &runActionHandler{
		usecase:     usecase,
		registry:    registry,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *runActionHandler) AddToRouter(r *chi.Mux) {
	for _, d := range h.registry.All() {
		for _, a := range d.Actions {
			path := d.Path() + "/{id}/actions/" + a.Name
			r.Method(http.MethodGet, path, chain(h.confirm(d, a), h.middlewares))
			r.Method(http.MethodPost, path, chain(h.run(d, a), h.middlewares))
		}
	}
}

func (h *runActionHandler) Middlewares(md ...func(http.Handler) http.Handler) *runActionHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *runActionHandler) confirm(d resource.Descriptor, a resource.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		h.render(w, r, http.StatusOK, d, a, chi.URLParam(r, "id"), q, resource.DefaultValues(a.Fields), nil, "")
	}
}

func (h *runActionHandler) run(d resource.Descriptor, a resource.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "error parsing form", http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")

		err := h.usecase.RunAction(r.Context(), a, id, r.PostForm)
		if err != nil {
			if h.rs.SessionLost(w, r, err) {
				return
			}
			slog.Error("error running action", "screen", d.Name, "action", a.Name, "id", id, "error", err)
			h.render(w, r, statusFor(err), d, a, id, r.PostForm, resource.PostedValues(a.Fields, r.PostForm), fieldErrors(err), describe(a.Failure, err))
			return
		}

		ret := r.PostForm.Get("return")
		h.rs.SeeOther(w, r, view.ListURL(d, returnState(d, ret)), view.Flash{Kind: view.FlashSuccess, Message: a.Success})
	}
}

// render shows the action dialog. carried holds the return state and the row values
// the action needs, from the link on a GET or from the dialog on a failed POST.
func (h *runActionHandler) render(w http.ResponseWriter, r *http.Request, status int, d resource.Descriptor, a resource.Action, id string, carried url.Values, values map[string]string, errs resource.FieldErrors, msg string) {
	ret := carried.Get("return")
	hidden := []view.Hidden{{Name: "return", Value: ret}}
	for _, p := range a.RowParams {
		hidden = append(hidden, view.Hidden{Name: p, Value: carried.Get(p)})
	}

	h.rs.Render(w, r, status, view.PageConfirm, view.Page{
		Title:   d.Title,
		Current: d.Name,
		Data: view.ConfirmPage{
			Heading: a.Label + " " + d.Singular,
			Message: a.Confirm,
			Action:  d.Path() + "/" + url.PathEscape(id) + "/actions/" + a.Name,
			Confirm: a.Label,
			Cancel:  view.ListURL(d, returnState(d, ret)),
			Hidden:  hidden,
			Fields:  view.NewFormFields(a.Fields, values, errs, nil),
			Error:   msg,
		},
	})
}
