package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/adapter/api/roundbuy"
	"github.com/The-Gleb/roundbuy_admin/internal/adapter/cache/memory"
	cache "github.com/The-Gleb/roundbuy_admin/internal/adapter/cache/redis"
	db "github.com/The-Gleb/roundbuy_admin/internal/adapter/db/postgres"
	"github.com/The-Gleb/roundbuy_admin/internal/adapter/db/sqlite"
	"github.com/The-Gleb/roundbuy_admin/internal/config"
	middleware "github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/middleware"
	v1 "github.com/The-Gleb/roundbuy_admin/internal/controller/http/v1/server"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/demo"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/service"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/usecase"
	"github.com/The-Gleb/roundbuy_admin/internal/logger"
	"github.com/The-Gleb/roundbuy_admin/pkg/client/postgresql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const purgeInterval = 10 * time.Minute

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	configFile := os.Getenv("CONFIG_FILE")
	cfg := config.MustBuild(configFile)

	logger.Initialize(cfg.LogLevel, cfg.LogFormat)
	slog.Info("config is built",
		"address", cfg.RunAddress,
		"api", cfg.API.BaseURL,
		"session_backend", cfg.Session.Backend,
	)

	sessionStorage, closeStorage, err := openSessionStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	if purger, ok := sessionStorage.(service.SessionPurger); ok {
		go service.PurgeExpiredSessions(ctx, purger, purgeInterval)
	}

	metrics := roundbuy.NewMetrics()
	apiClient := roundbuy.NewClient(cfg.API.BaseURL, cfg.API.Timeout, metrics)

	demoAds, err := demo.NewStore()
	if err != nil {
		return err
	}
	registry, err := resource.NewRegistry(resource.Catalog(apiClient, demoAds)...)
	if err != nil {
		return err
	}

	sessionService := service.NewSessionService(sessionStorage, apiClient, cfg.Session.TTL)
	resourceService := service.NewResourceService(registry, sessionStorage)
	dashboardService := service.NewDashboardService(apiClient)
	settingsService := service.NewSettingsService(apiClient)

	getResourceUsecase := usecase.NewGetResourceUsecase(resourceService)

	opts := v1.Options{
		Registry: registry,
		Cookie: middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.SecureCookie,
		},
	}
	if cfg.Metrics {
		opts.Metrics = metrics.Handler()
	}

	s, err := v1.NewServer(cfg.RunAddress, opts, v1.Usecases{
		Login:          usecase.NewLoginUsecase(sessionService),
		Logout:         usecase.NewLogoutUsecase(sessionService),
		CheckSession:   usecase.NewCheckSessionUsecase(sessionService),
		Dashboard:      usecase.NewGetDashboardUsecase(dashboardService),
		Settings:       usecase.NewSettingsUsecase(settingsService),
		ListResources:  usecase.NewListResourcesUsecase(resourceService),
		GetResource:    getResourceUsecase,
		CreateResource: usecase.NewCreateResourceUsecase(resourceService),
		UpdateResource: usecase.NewUpdateResourceUsecase(resourceService),
		DeleteResource: usecase.NewDeleteResourceUsecase(resourceService),
		RunAction:      usecase.NewRunActionUsecase(resourceService),
		FormOptions:    getResourceUsecase,
	})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		<-ctx.Done()

		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Stop(ctxShutdown)
		if err != nil {
			slog.Error("error shutting down server", "error", err)
			return
		}
		slog.Info("server was successfully shut down")
	}()

	slog.Info("starting server")
	if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		cancel()
	}

	wg.Wait()
	return nil
}

// openSessionStorage connects the configured session backend.
func openSessionStorage(ctx context.Context, cfg *config.Config) (service.SessionStorage, func(), error) {
	switch cfg.Session.Backend {
	case "", "memory":
		return memory.NewSessionStorage(), func() {}, nil

	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return cache.NewRedisSessions(redisClient), func() { redisClient.Close() }, nil

	case "postgres":
		dsn := cfg.DB.DSN()
		err := db.RunMigrations(dsn)
		if err != nil {
			return nil, nil, err
		}
		postgresClient, err := postgresql.NewClient(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return db.NewSessionStorage(postgresClient), postgresClient.Close, nil

	case "sqlite":
		storage, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return storage, func() { storage.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
}
