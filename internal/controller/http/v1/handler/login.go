package v1

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	middleware "github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/middleware"
	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/go-chi/chi/v5"
)

const (
	loginURL = "/login"
)

type LoginUsecase interface {
	Login(ctx context.Context, dto entity.LoginDTO) (entity.Session, error)
}

type loginHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     LoginUsecase
	cookie      middleware.SessionCookie
	rs          *Responder
}

func NewLoginHandler(usecase LoginUsecase, cookie middleware.SessionCookie, rs *Responder) *loginHandler {
	return &loginHandler{
		usecase:     usecase,
		cookie:      cookie,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *loginHandler) AddToRouter(r *chi.Mux) {
	r.Method(http.MethodGet, loginURL, chain(http.HandlerFunc(h.show), h.middlewares))
	r.Method(http.MethodPost, loginURL, chain(http.HandlerFunc(h.submit), h.middlewares))
}

func (h *loginHandler) Middlewares(md ...func(http.Handler) http.Handler) *loginHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *loginHandler) show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.LoginPage{Next: safeNext(r.URL.Query().Get("next"))})
}

func (h *loginHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "error parsing form", http.StatusBadRequest)
		return
	}

	dto := entity.LoginDTO{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
	page := view.LoginPage{Email: dto.Email, Next: safeNext(r.PostForm.Get("next"))}

	session, err := h.usecase.Login(r.Context(), dto)
	if err != nil {
		slog.Debug("login failed", "email", dto.Email, "error", err)
		switch errors.Code(err) {
		case errors.ErrValidation:
			page.Error = errors.Message(err)
			h.render(w, r, http.StatusUnprocessableEntity, page)
			return
		case errors.ErrUnauthorized, errors.ErrForbidden, errors.ErrNoDataFound:
			page.Error = "Invalid email or password"
			h.render(w, r, http.StatusUnauthorized, page)
			return
		default:
			slog.Error("error logging in", "error", err)
			page.Error = "Login failed, please try again"
			h.render(w, r, http.StatusBadGateway, page)
			return
		}
	}

	h.cookie.Set(w, session.ID, session.ExpiresAt)
	http.Redirect(w, r, page.Next, http.StatusSeeOther)
}

func (h *loginHandler) render(w http.ResponseWriter, r *http.Request, status int, page view.LoginPage) {
	h.rs.Render(w, r, status, view.PageLogin, view.Page{Title: "Sign in", Data: page})
}

// safeNext keeps redirects after login on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.ContainsRune(next, '\\') {
		return "/"
	}
	// Browsers drop tabs and newlines from Location, so "/\t/host" would become "//host".
	if strings.ContainsFunc(next, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	if next == loginURL || strings.HasPrefix(next, loginURL+"?") {
		return "/"
	}
	return next
}
