package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sourabh020820033/learning-path/internal/config"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

func NewPostgresPool(ctx context.Context, cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("DB_DSN is required for the postgres catalog source")
	}

	pool, err := pgxpool.New(ctx, cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("cannot create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}
