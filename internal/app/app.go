package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jathavedas/memento-backend/internal/config"
	"github.com/Jathavedas/memento-backend/internal/event"
	handler "github.com/Jathavedas/memento-backend/internal/handler/http"
	"github.com/Jathavedas/memento-backend/internal/repository/postgres"
	"github.com/Jathavedas/memento-backend/internal/service"
	"github.com/Jathavedas/memento-backend/internal/storage"
	"github.com/Jathavedas/memento-backend/internal/storage/memory"
	miniostorage "github.com/Jathavedas/memento-backend/internal/storage/minio"
	"github.com/Jathavedas/memento-backend/migrations"
	"github.com/Jathavedas/memento-backend/pkg/database"
	"github.com/Jathavedas/memento-backend/pkg/health"
	pkgkafka "github.com/Jathavedas/memento-backend/pkg/kafka"
	"github.com/Jathavedas/memento-backend/pkg/tracing"
)

// App wires together all dependencies and runs the catalog service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	pool            *pgxpool.Pool
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize tracing (no-op when disabled).
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "catalog-service",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     cfg.TraceSampleRate,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Initialize PostgreSQL connection pool.
	pgCfg := database.PostgresConfig{
		Host:            cfg.PostgresHost,
		Port:            cfg.PostgresPort,
		User:            cfg.PostgresUser,
		Password:        cfg.PostgresPass,
		DBName:          cfg.PostgresDB,
		SSLMode:         cfg.PostgresSSL,
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	}

	pool, err := database.NewPostgresPool(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.Int("port", cfg.PostgresPort),
		slog.String("database", cfg.PostgresDB),
	)

	// Run database migrations.
	if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database migrations completed")

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Select the media store backend.
	var store storage.Storage
	if cfg.MediaEndpoint != "" {
		store, err = miniostorage.New(cfg.MediaEndpoint, cfg.MediaAccessKey, cfg.MediaSecretKey, cfg.MediaBucket, cfg.MediaUseSSL)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("create media store client: %w", err)
		}
		logger.Info("media store configured",
			slog.String("endpoint", cfg.MediaEndpoint),
			slog.String("bucket", cfg.MediaBucket),
		)
	} else {
		store = memory.New(fmt.Sprintf("http://localhost:%d/media", cfg.HTTPPort))
		logger.Warn("no media endpoint configured, using in-memory store")
	}

	// Build the dependency graph.
	repo := postgres.NewProductRepository(pool)
	eventProducer := event.NewProducer(producer, logger)
	productService := service.NewProductService(repo, eventProducer, logger)
	relay := service.NewMediaRelay(store, cfg.MediaFolder, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})

	// HTTP router.
	router := handler.NewRouter(productService, relay, healthHandler, handler.RouterConfig{
		AllowedOrigin:  cfg.AllowedOrigin,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		pool:            pool,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.pool.Close()

	a.logger.Info("application shutdown complete")
	return nil
}
