package v1

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
)

const flashCookie = "rb_flash"

func setFlash(w http.ResponseWriter, f view.Flash) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(string(f.Kind) + ":" + f.Message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash reads the pending message and clears it so it is shown once.
func takeFlash(w http.ResponseWriter, r *http.Request) *view.Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	kind, msg, ok := strings.Cut(raw, ":")
	if !ok || msg == "" {
		return nil
	}
	switch view.FlashKind(kind) {
	case view.FlashSuccess, view.FlashError:
		return &view.Flash{Kind: view.FlashKind(kind), Message: msg}
	}
	return nil
}
