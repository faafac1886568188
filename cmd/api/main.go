package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/worldofMayur/Roxiler-assessment/api/routes"
	"github.com/worldofMayur/Roxiler-assessment/internal/admin"
	"github.com/worldofMayur/Roxiler-assessment/internal/auth"
	"github.com/worldofMayur/Roxiler-assessment/internal/owner"
	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	"github.com/worldofMayur/Roxiler-assessment/internal/users"
	"github.com/worldofMayur/Roxiler-assessment/pkg/config"
	"github.com/worldofMayur/Roxiler-assessment/pkg/db"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
	"github.com/worldofMayur/Roxiler-assessment/pkg/metrics"
	"github.com/worldofMayur/Roxiler-assessment/pkg/migrate"
	"github.com/worldofMayur/Roxiler-assessment/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	usersRepo := users.NewRepository(dbClient.DB())
	storesRepo := stores.NewRepository(dbClient.DB())
	ratingsRepo := ratings.NewRepository(dbClient.DB())

	authService, err := auth.NewService(usersRepo, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	storesService, err := stores.NewService(storesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create stores service", err)
		os.Exit(1)
	}
	ratingsService, err := ratings.NewService(ratingsRepo, storesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create ratings service", err)
		os.Exit(1)
	}
	adminService, err := admin.NewService(dbClient, usersRepo, storesRepo, ratingsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}
	ownerService, err := owner.NewService(dbClient, storesRepo, ratingsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create owner service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DBPinger:       dbClient,
			RedisClient:    redisClient,
			HTTPMetrics:    httpMetrics,
			Gatherer:       registry,
			AuthService:    authService,
			StoresService:  storesService,
			RatingsService: ratingsService,
			AdminService:   adminService,
			OwnerService:   ownerService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			if err := server.Close(); err != nil {
				logg.Error(ctx, "forced close failed", err)
			}
		}
	}
}
