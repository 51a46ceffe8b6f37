package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const (
	settingsURL = "/settings/general"
)

type SettingsUsecase interface {
	Settings(ctx context.Context) ([]entity.Setting, error)
	SaveSettings(ctx context.Context, form url.Values) error
}

type settingsHandler struct {
	middlewares []func(http.Handler) http.Handler
	usecase     SettingsUsecase
	rs          *Responder
}

func NewSettingsHandler(usecase SettingsUsecase, rs *Responder) *settingsHandler {
	return &settingsHandler{
		usecase:     usecase,
		rs:          rs,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (h *settingsHandler) AddToRouter(r *chi.Mux) {
	r.Method(http.MethodGet, settingsURL, chain(http.HandlerFunc(h.show), h.middlewares))
	r.Method(http.MethodPost, settingsURL, chain(http.HandlerFunc(h.save), h.middlewares))
}

func (h *settingsHandler) Middlewares(md ...func(http.Handler) http.Handler) *settingsHandler {
	h.middlewares = append(h.middlewares, md...)
	return h
}

func (h *settingsHandler) show(w http.ResponseWriter, r *http.Request) {
	settings, err := h.usecase.Settings(r.Context())
	page := view.NewSettingsPage(settings, nil, nil)
	if err != nil {
		if h.rs.SessionLost(w, r, err) {
			return
		}
		slog.Error("error loading settings", "error", err)
		page.Error = describe("Failed to load settings", err)
	}
	h.render(w, r, http.StatusOK, page)
}

func (h *settingsHandler) save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "error parsing form", http.StatusBadRequest)
		return
	}

	err := h.usecase.SaveSettings(r.Context(), r.PostForm)
	if err != nil {
		if h.rs.SessionLost(w, r, err) {
			return
		}
		slog.Error("error saving settings", "error", err)
		page := view.NewSettingsPage(postedSettings(r.PostForm), r.PostForm, fieldErrors(err))
		page.Error = describe("Failed to update settings", err)
		h.render(w, r, statusFor(err), page)
		return
	}

	h.rs.SeeOther(w, r, settingsURL, view.Flash{Kind: view.FlashSuccess, Message: "Settings updated successfully"})
}

func (h *settingsHandler) render(w http.ResponseWriter, r *http.Request, status int, page view.SettingsPage) {
	h.rs.Render(w, r, status, view.PageSettings, view.Page{
		Title:   "General Settings",
		Current: strings.TrimPrefix(settingsURL, "/"),
		Data:    page,
	})
}

// postedSettings rebuilds the settings list from a submitted form so a failed save
// can be shown again without asking the backend.
func postedSettings(form url.Values) []entity.Setting {
	var keys []string
	for name := range form {
		if key, ok := strings.CutPrefix(name, entity.SettingKindPrefix); ok && key != "" {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	settings := make([]entity.Setting, 0, len(keys))
	for _, key := range keys {
		var value any = ""
		switch form.Get(entity.SettingKindPrefix + key) {
		case entity.SettingBool:
			value = false
		case entity.SettingNumber:
			value = json.Number("0")
		}
		settings = append(settings, entity.Setting{Key: key, Value: value})
	}
	return settings
}
