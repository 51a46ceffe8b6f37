package v1

import (
	"log/slog"
	"net/http"

	middleware "github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/middleware"
	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/go-chi/chi/v5"
)

const (
	logoutURL = "/logout"
)

type logoutHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     LogoutUsecase
	cookie      middleware.SessionCookie
	rs          *Responder
}

func NewLogoutHandler(usecase LogoutUsecase, cookie middleware.SessionCookie, rs *Responder) *logoutHandler {
	return &logoutHandler{
		usecase:     usecase,
		cookie:      cookie,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *logoutHandler) AddToRouter(r *chi.Mux) {
	r.Method(http.MethodPost, logoutURL, chain(h, h.middlewares))
}

func (h *logoutHandler) Middlewares(md ...func(http.Handler) http.Handler) *logoutHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *logoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if id := h.cookie.Read(r); id != "" {
		if err := h.usecase.Logout(r.Context(), id); err != nil {
			slog.Error("error deleting session", "error", err)
		}
	}
	h.cookie.Clear(w)

	h.rs.SeeOther(w, r, loginURL, view.Flash{Kind: view.FlashSuccess, Message: "You have been signed out"})
}
