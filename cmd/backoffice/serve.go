package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/platform/migrations"
	"github.com/SscSPs/backoffice_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/backoffice_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Start without applying pending migrations")
	// The bare command runs serve, so it accepts the same flags.
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
}

func serve(parent context.Context) error {
	logger := slog.Default()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if !skipMigrations {
		logger.Info("Running database migrations...")
		if err := migrations.Run(logger, cfg.DatabaseURL, cfg.MigrationsPath, migrations.Up); err != nil {
			return err
		}
	}

	reportCache, closeCache := cache.New(ctx, cfg.RedisURL, cfg.ReportCacheTTL)
	defer closeCache()

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, reportCache)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), metrics.Handler())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	var apiMiddleware []gin.HandlerFunc
	if cfg.RateLimit != "" {
		lim, err := middleware.NewLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(lim))
	}

	handlers.RegisterRoutes(r, cfg, container, apiMiddleware...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 && !cfg.IsProduction {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	c.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	c.AddExposeHeaders("Content-Length", "Content-Disposition")
	return c
}
