package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sourabh020820033/learning-path/adapters/event"
	httpAdapter "github.com/sourabh020820033/learning-path/adapters/http"
	"github.com/sourabh020820033/learning-path/adapters/persistence"
	"github.com/sourabh020820033/learning-path/internal/application/service"
	analysisUC "github.com/sourabh020820033/learning-path/internal/application/usecase/analysis"
	catalogUC "github.com/sourabh020820033/learning-path/internal/application/usecase/catalog"
	"github.com/sourabh020820033/learning-path/internal/config"
	"github.com/sourabh020820033/learning-path/internal/domain/analysis"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/logger"
	"github.com/sourabh020820033/learning-path/pkg/tracing"
)

func main() {
	fmt.Println("Start Learning Path API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: cannot load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "learning-path-api")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer tp.Shutdown(context.Background())

	// Catalog
	cat, err := loadCatalog(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot load catalog", err)
	}
	appLogger.Info("Catalog ready",
		zap.String("source", cfg.Catalog.Source),
		zap.Strings("roles", cat.Roles()),
		zap.String("fingerprint", cat.Fingerprint()),
	)

	// Optional integrations
	var cache service.ResultCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		cache = persistence.NewRedisResultCache(redisClient, cfg.Redis.TTL, appLogger)
	} else {
		appLogger.Warn("REDIS_ADDR not set, result cache disabled")
	}

	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("KAFKA_BROKERS not set, analysis events disabled")
	}

	// Use Cases
	analyzeUseCase := analysisUC.NewAnalyzeUseCase(analysis.NewAnalyzer(cat), cache, publisher, appLogger)
	catalogUseCase := catalogUC.NewCatalogUseCase(cat)

	// HTTP
	router := httpAdapter.NewRouter(
		httpAdapter.NewAnalysisHandler(analyzeUseCase, appLogger),
		httpAdapter.NewCatalogHandler(catalogUseCase),
		appLogger,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", err)
	}
}

func loadCatalog(ctx context.Context, cfg config.Config, log logger.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case "", config.CatalogSourceBuiltin:
		return catalog.Builtin{}.Load(ctx)

	case config.CatalogSourceFile:
		if cfg.Catalog.File == "" {
			return nil, fmt.Errorf("CATALOG_FILE is required for the file catalog source")
		}
		return persistence.NewFileCatalogSource(cfg.Catalog.File, log).Load(ctx)

	case config.CatalogSourcePostgres:
		pool, err := persistence.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		// read once at startup; the pool is not needed afterwards
		defer pool.Close()
		return persistence.NewPostgresCatalogRepo(pool, log).Load(ctx)
	}

	return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
}
