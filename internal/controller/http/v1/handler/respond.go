package v1

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"net/url"

	middleware "github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/middleware"
	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
)

type LogoutUsecase interface {
	Logout(ctx context.Context, id string) error
}

// Responder holds what every page handler needs to answer: the renderer,
// the session cookie and a way to drop a session the backend no longer accepts.
type Responder struct {
	view   *view.Renderer
	logout LogoutUsecase
	cookie middleware.SessionCookie
}

func NewResponder(renderer *view.Renderer, logout LogoutUsecase, cookie middleware.SessionCookie) *Responder {
	return &Responder{view: renderer, logout: logout, cookie: cookie}
}

// Render shows a page together with the pending flash message, if any.
func (rs *Responder) Render(w http.ResponseWriter, r *http.Request, status int, page string, p view.Page) {
	if p.Flash == nil {
		p.Flash = takeFlash(w, r)
	}
	rs.view.Render(w, r, status, page, p)
}

// SeeOther finishes a successful form post.
func (rs *Responder) SeeOther(w http.ResponseWriter, r *http.Request, target string, flash view.Flash) {
	setFlash(w, flash)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// SessionLost handles a backend 401: the session is deleted and the browser sent to sign in again.
// It reports whether err was such an error.
func (rs *Responder) SessionLost(w http.ResponseWriter, r *http.Request, err error) bool {
	switch errors.Code(err) {
	case errors.ErrUnauthorized, errors.ErrSessionExpired:
	default:
		return false
	}

	if session, ok := entity.SessionFromContext(r.Context()); ok {
		if err := rs.logout.Logout(r.Context(), session.ID); err != nil {
			slog.Error("error deleting rejected session", "error", err)
		}
	}
	rs.cookie.Clear(w)
	setFlash(w, view.Flash{Kind: view.FlashError, Message: "Your session has expired. Please sign in again."})
	middleware.RedirectToLogin(w, r)
	return true
}

func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request, message, back string) {
	rs.Render(w, r, http.StatusNotFound, view.PageError, view.Page{
		Title: "Not found",
		Data:  view.ErrorPage{Status: http.StatusNotFound, Message: message, Back: back},
	})
}

// statusFor picks the status of a page re-rendered after a failed request.
func statusFor(err error) int {
	switch errors.Code(err) {
	case errors.ErrValidation:
		return http.StatusUnprocessableEntity
	case errors.ErrNoDataFound:
		return http.StatusNotFound
	case errors.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}

// describe builds the notification for a failed operation. Backend explanations are kept
// when the backend gave one the user can act on.
func describe(failed string, err error) string {
	var fieldErrs resource.FieldErrors
	if stdErrors.As(err, &fieldErrs) {
		return failed + ": please correct the highlighted fields"
	}
	switch errors.Code(err) {
	case errors.ErrValidation, errors.ErrForbidden, errors.ErrNoDataFound:
		return failed + ": " + errors.Message(err)
	}
	return failed
}

func fieldErrors(err error) resource.FieldErrors {
	var fieldErrs resource.FieldErrors
	if stdErrors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}

// returnState rebuilds the list state a dialog was opened from.
func returnState(d resource.Descriptor, raw string) listing.State {
	v, err := url.ParseQuery(raw)
	if err != nil {
		v = url.Values{}
	}
	return listing.FromValues(v, d.FilterKeys(), d.PageSize())
}

func chain(h http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
