package v1

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

const loginURL = "/login"

type CheckSessionUsecase interface {
	CheckSession(ctx context.Context, id string) (entity.Session, error)
}

type authMiddleWare struct {
	usecase CheckSessionUsecase
	cookie  SessionCookie
}

func NewAuthMiddleware(usecase CheckSessionUsecase, cookie SessionCookie) *authMiddleWare {
	return &authMiddleWare{usecase: usecase, cookie: cookie}
}

// Do lets the request through only with a live session, which it puts into the context.
func (m *authMiddleWare) Do(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := m.cookie.Read(r)
		if id == "" {
			RedirectToLogin(w, r)
			return
		}

		session, err := m.usecase.CheckSession(r.Context(), id)
		if err != nil {
			switch errors.Code(err) {
			case errors.ErrUnauthorized, errors.ErrSessionExpired:
				slog.Debug("rejected session", "error", err)
				m.cookie.Clear(w)
				RedirectToLogin(w, r)
				return
			default:
				slog.Error("error checking session", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		ctx := entity.ContextWithSession(r.Context(), session)

		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// RedirectToLogin sends the browser to the login page, remembering where it wanted to go.
// Only GET targets are remembered; a form post cannot be replayed after signing in.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := loginURL
	if r.Method == http.MethodGet && r.URL.Path != "/" {
		target += "?next=" + url.QueryEscape(r.URL.RequestURI())
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
