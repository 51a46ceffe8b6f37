package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	handlers "github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/handler"
	middleware "github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/middleware"
	"github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/view"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type httpServer struct {
	server *http.Server
}

// Usecases are the application operations the console exposes.
type Usecases struct {
	Login        handlers.LoginUsecase
	Logout       handlers.LogoutUsecase
	CheckSession middleware.CheckSessionUsecase
	Dashboard    handlers.DashboardUsecase
	Settings     handlers.SettingsUsecase

	ListResources  handlers.ListResourcesUsecase
	GetResource    handlers.GetResourceUsecase
	CreateResource handlers.CreateResourceUsecase
	UpdateResource handlers.UpdateResourceUsecase
	DeleteResource handlers.DeleteResourceUsecase
	RunAction      handlers.RunActionUsecase
	FormOptions    handlers.FormOptionsUsecase
}

type Options struct {
	Registry *resource.Registry
	Cookie   middleware.SessionCookie
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

func NewRouter(opts Options, uc Usecases) (*chi.Mux, error) {
	renderer, err := view.New(opts.Registry.Sections())
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	rs := handlers.NewResponder(renderer, uc.Logout, opts.Cookie)
	auth := middleware.NewAuthMiddleware(uc.CheckSession, opts.Cookie)

	loginHandler := handlers.NewLoginHandler(uc.Login, opts.Cookie, rs)
	logoutHandler := handlers.NewLogoutHandler(uc.Logout, opts.Cookie, rs)
	dashboardHandler := handlers.NewDashboardHandler(uc.Dashboard, rs).Middlewares(auth.Do)
	settingsHandler := handlers.NewSettingsHandler(uc.Settings, rs).Middlewares(auth.Do)

	listHandler := handlers.NewListResourcesHandler(uc.ListResources, opts.Registry, rs).Middlewares(auth.Do)
	getHandler := handlers.NewGetResourceHandler(uc.GetResource, opts.Registry, rs).Middlewares(auth.Do)
	createHandler := handlers.NewCreateResourceHandler(uc.CreateResource, uc.FormOptions, opts.Registry, rs).Middlewares(auth.Do)
	updateHandler := handlers.NewUpdateResourceHandler(uc.UpdateResource, uc.GetResource, uc.FormOptions, opts.Registry, rs).Middlewares(auth.Do)
	deleteHandler := handlers.NewDeleteResourceHandler(uc.DeleteResource, opts.Registry, rs).Middlewares(auth.Do)
	runActionHandler := handlers.NewRunActionHandler(uc.RunAction, opts.Registry, rs).Middlewares(auth.Do)

	r := chi.NewMux()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static", view.Static()))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}

	loginHandler.AddToRouter(r)
	logoutHandler.AddToRouter(r)
	dashboardHandler.AddToRouter(r)
	settingsHandler.AddToRouter(r)

	listHandler.AddToRouter(r)
	getHandler.AddToRouter(r)
	createHandler.AddToRouter(r)
	updateHandler.AddToRouter(r)
	deleteHandler.AddToRouter(r)
	runActionHandler.AddToRouter(r)

	r.NotFound(auth.Do(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.NotFound(w, r, "This page does not exist", "/")
	})).ServeHTTP)

	return r, nil
}

func NewServer(address string, opts Options, uc Usecases) (*httpServer, error) {
	r, err := NewRouter(opts, uc)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &httpServer{server: server}, nil
}

func (s *httpServer) Start() error {
	return s.server.ListenAndServe()
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
