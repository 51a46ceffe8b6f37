// Package view renders the console's HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageList      = "list"
	PageForm      = "form"
	PageConfirm   = "confirm"
	PageDetail    = "detail"
	PageSettings  = "settings"
	PageError     = "error"
)

var pageNames = []string{PageLogin, PageDashboard, PageList, PageForm, PageConfirm, PageDetail, PageSettings, PageError}

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

type Flash struct {
	Kind    FlashKind
	Message string
}

// Page is what the layout needs around every page body.
type Page struct {
	Title   string
	Current string
	Flash   *Flash
	Data    any

	// Filled by Render.
	Session entity.Session
	Nav     []resource.Section
}

type Renderer struct {
	pages map[string]*template.Template
	nav   []resource.Section
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"active": func(current string, d resource.Descriptor) bool {
		return current == d.Name
	},
}

func New(nav []resource.Section) (*Renderer, error) {
	base, err := template.New("base.html").Funcs(funcs).ParseFS(templatesFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		t, err = t.ParseFS(templatesFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, nav: nav}, nil
}

// Render executes the page into a buffer first so a template error never leaves a half-written response.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	t, ok := rd.pages[name]
	if !ok {
		slog.Error("unknown page", "page", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page.Session, _ = entity.SessionFromContext(r.Context())
	page.Nav = rd.nav

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", page); err != nil {
		slog.Error("error rendering page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("error writing page", "page", name, "error", err)
	}
}

// Static serves the embedded stylesheet.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
