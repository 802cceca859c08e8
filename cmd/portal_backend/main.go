package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/adapters/storage/local"
	"github.com/SscSPs/counterparty_portal/internal/adapters/storage/s3"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	"github.com/SscSPs/counterparty_portal/internal/core/ports/storage"
	"github.com/SscSPs/counterparty_portal/internal/core/services"
	"github.com/SscSPs/counterparty_portal/internal/handlers"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/SscSPs/counterparty_portal/internal/platform/config"
	"github.com/SscSPs/counterparty_portal/internal/platform/metrics"
	"github.com/SscSPs/counterparty_portal/internal/repositories/database/pgsql"
	"github.com/SscSPs/counterparty_portal/internal/validators"
	"github.com/SscSPs/counterparty_portal/internal/workers/reminder"
	"github.com/SscSPs/counterparty_portal/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// @title Counterparty Portal API
// @version 1.0
// @description KYC counterparty registry, balance sheets and due-diligence tracking.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...")
	result, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp)
	if err != nil {
		return err
	}
	if result.Changed {
		logger.Info("Database migrations applied successfully.", slog.Uint64("version", uint64(result.Version)))
	} else {
		logger.Info("No new migrations to apply.", slog.Uint64("version", uint64(result.Version)))
	}

	blobs, localFiles, err := newBlobStore(ctx, cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	clock := lifecycle.SystemClock{}
	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, blobs, appMetrics, clock)

	if err := validators.RegisterWithGin(); err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		appMetrics.GinMiddleware(),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{Clock: clock, LocalFiles: localFiles})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.ReminderEnabled {
		worker, err := reminder.New(serviceContainer.Reminder,
			reminder.WithInterval(cfg.ReminderInterval),
			reminder.WithLogger(logger))
		if err != nil {
			return err
		}
		g.Go(func() error {
			if err := worker.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	logger.Info("Server stopped")
	return err
}

// newBlobStore picks the upload backend. The local store is also returned so
// its signed download route can be mounted.
func newBlobStore(ctx context.Context, cfg *config.Config) (storage.BlobStore, *local.Store, error) {
	if cfg.BlobBackend == config.BlobBackendS3 {
		store, err := s3.NewStore(ctx, cfg.AWSS3Region, cfg.S3BucketName)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using S3 blob storage", slog.String("bucket", cfg.S3BucketName))
		return store, nil, nil
	}
	store, err := local.NewStore(cfg.LocalBlobDir, cfg.PublicBaseURL, []byte(cfg.JWTSecret))
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Using local blob storage", slog.String("dir", cfg.LocalBlobDir))
	return store, store, nil
}
