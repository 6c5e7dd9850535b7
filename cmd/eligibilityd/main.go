package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/eligibility-service/internal/application/usecase"
	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/domain/port"
	"github.com/bibbank/eligibility-service/internal/domain/service"
	"github.com/bibbank/eligibility-service/internal/infrastructure/catalog"
	"github.com/bibbank/eligibility-service/internal/infrastructure/config"
	"github.com/bibbank/eligibility-service/internal/infrastructure/kafka"
	"github.com/bibbank/eligibility-service/internal/infrastructure/logpublisher"
	pgRepo "github.com/bibbank/eligibility-service/internal/infrastructure/persistence/postgres"
	"github.com/bibbank/eligibility-service/internal/infrastructure/persistence/postgres/migrations"
	"github.com/bibbank/eligibility-service/internal/infrastructure/telemetry"
	grpcPresentation "github.com/bibbank/eligibility-service/internal/presentation/grpc"
	"github.com/bibbank/eligibility-service/internal/presentation/rest"
	pkgkafka "github.com/bibbank/eligibility-service/pkg/kafka"
	"github.com/bibbank/eligibility-service/pkg/observability"
	pkgpostgres "github.com/bibbank/eligibility-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.ServiceName,
	})

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("eligibility-service failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Info("starting eligibility-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"catalog_source", cfg.CatalogSource,
	)

	// Tracing is optional; without an endpoint the global no-op provider stays.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(context.Background()) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort flush

	recorder, err := telemetry.NewRecorder(meterProvider.Meter("github.com/bibbank/eligibility-service"))
	if err != nil {
		return fmt.Errorf("metrics recorder: %w", err)
	}

	// Reference data.
	var readiness []rest.ReadinessCheck
	var source port.ReferenceDataSource
	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		pool, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
		source = pgRepo.NewCatalogRepo(pool)
		readiness = append(readiness, rest.ReadinessCheck{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return pkgpostgres.HealthCheck(ctx, pool) },
		})
	default:
		source = catalog.NewFileSource(cfg.CatalogFile)
	}

	products, rules, err := loadReferenceData(ctx, source)
	if err != nil {
		return err
	}
	logger.Info("reference data loaded", "products", products.Len(), "currency", rules.CurrencySymbol)

	// Event publishing.
	publisher, closePublisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	// Use cases.
	engine := service.NewEligibilityEngine()
	handler := grpcPresentation.NewEligibilityHandler(
		usecase.NewListProductsUseCase(products),
		usecase.NewGetValidationRulesUseCase(rules),
		usecase.NewQuoteInterestRateUseCase(products, engine),
		usecase.NewCheckEligibilityUseCase(products, rules, engine, publisher, recorder, logger),
		logger,
	)

	// gRPC server.
	grpcServer, err := grpcPresentation.NewServer(handler, logger, grpcPresentation.ServerConfig{
		HealthService: cfg.ServiceName,
		TLSCertFile:   cfg.TLS.CertFile,
		TLSKeyFile:    cfg.TLS.KeyFile,
		Reflection:    cfg.Reflection,
	})
	if err != nil {
		return err
	}

	// HTTP server (health checks and metrics).
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           rest.NewRouter(rest.NewHealthHandler(logger, cfg.ServiceName, readiness...), metricsHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errCh:
		logger.Error("server error", "error", serveErr)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("eligibility-service stopped")
	return serveErr
}

// openDatabase connects to Postgres and brings the catalog schema up to date.
func openDatabase(ctx context.Context, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	dbCfg := cfg.DB.Postgres()
	dbCfg.ApplicationName = cfg.ServiceName

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database", "host", dbCfg.Host, "database", dbCfg.Database)

	if err := pkgpostgres.RunMigrations(dbCfg.DSN(), migrations.FS, "."); err != nil {
		pool.Close()
		return nil, fmt.Errorf("catalog migrations: %w", err)
	}
	return pool, nil
}

func loadReferenceData(ctx context.Context, source port.ReferenceDataSource) (model.Catalog, model.ValidationRules, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	products, rules, err := source.Load(loadCtx)
	if err != nil {
		return model.Catalog{}, model.ValidationRules{}, fmt.Errorf("load reference data: %w", err)
	}
	return products, rules, nil
}

// newPublisher returns the Kafka publisher when brokers are configured and the
// log publisher otherwise, together with its cleanup.
func newPublisher(cfg config.Config, logger *slog.Logger) (port.EventPublisher, func(), error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("no Kafka brokers configured, decision events will be logged")
		return logpublisher.New(logger), func() {}, nil
	}

	producer, err := pkgkafka.NewProducer(cfg.Kafka.Producer(cfg.ServiceName))
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	logger.Info("publishing decision events to Kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)

	closeFn := func() {
		if err := producer.Close(); err != nil {
			logger.Error("kafka producer close error", "error", err)
		}
	}
	return kafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger), closeFn, nil
}
