package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vaughan-dsouza/marketplace/internal/config"
	"github.com/vaughan-dsouza/marketplace/internal/db"
	"github.com/vaughan-dsouza/marketplace/internal/handlers"
	"github.com/vaughan-dsouza/marketplace/internal/logging"
	"github.com/vaughan-dsouza/marketplace/internal/routes"
	"github.com/vaughan-dsouza/marketplace/internal/session"
	"github.com/vaughan-dsouza/marketplace/internal/storage"
	"github.com/vaughan-dsouza/marketplace/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Environment, "api")

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required", "event", "config_invalid")
		os.Exit(1)
	}
	if cfg.AccessSecret == "" {
		logger.Error("ACCESS_SECRET is required", "event", "config_invalid")
		os.Exit(1)
	}

	ctx := context.Background()

	dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.Options{
		MaxOpen:  cfg.DBMaxOpen,
		MaxIdle:  cfg.DBMaxIdle,
		Lifetime: cfg.DBLifetime,
	})
	if err != nil {
		logger.Error("db connect failed", "event", "db_connect_failed", "error", err.Error())
		os.Exit(1)
	}
	defer dbConn.Close()

	var revocations session.RevocationStore = session.NopRevocations{}
	if cfg.RedisURL != "" {
		rdb, err := session.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("redis connect failed", "event", "redis_connect_failed", "error", err.Error())
			os.Exit(1)
		}
		defer rdb.Close()
		revocations = session.NewRedisRevocations(rdb)
	} else {
		logger.Warn("REDIS_URL not set, logout will not revoke tokens", "event", "revocation_disabled")
	}

	deps := handlers.Deps{
		Users:       store.NewUserStore(dbConn),
		Orders:      store.NewOrderStore(dbConn),
		Health:      store.NewHealthStore(dbConn),
		Revocations: revocations,
		Tokens:      handlers.TokenConfig{Secret: cfg.AccessSecret, TTL: cfg.AccessTTL},
		Cookie:      handlers.CookieConfig{Secure: cfg.CookieSecure},
		UploadTTL:   cfg.UploadURLTTL,
		AppURL:      cfg.AppURL,
		Logger:      logger,
	}
	if cfg.S3Bucket != "" {
		bucket, err := storage.New(ctx, storage.Options{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.AWSRegion,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Error("storage init failed", "event", "storage_init_failed", "error", err.Error())
			os.Exit(1)
		}
		deps.Storage = bucket
	} else {
		logger.Warn("S3_BUCKET not set, uploads disabled", "event", "storage_disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.New(handlers.NewHandler(deps), routes.Options{
		Resolver: session.NewResolver(cfg.AccessSecret, revocations),
		Logger:   logger,
		Registry: reg,
		Gatherer: reg,
		Swagger:  cfg.Environment != "production",
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "event", "server_started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "event", "server_failed", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server", "event", "server_stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "event", "server_shutdown_failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("server exited", "event", "server_stopped")
}
