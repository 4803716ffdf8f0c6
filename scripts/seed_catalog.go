package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/sourabh020820033/learning-path/adapters/persistence"
	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

// Usage: go run ./scripts/seed_catalog.go [catalog.yaml]
// Without an argument the built-in catalog is written.
func main() {
	fmt.Println("writing catalog into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	ctx := context.Background()

	var source catalog.Source = catalog.Builtin{}
	if len(os.Args) > 1 {
		source = persistence.NewFileCatalogSource(os.Args[1], logger.NewNopLogger())
	}
	cat, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	pool, err := pgxpool.New(ctx, DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	repo := persistence.NewPostgresCatalogRepo(pool, logger.NewNopLogger())
	if err := repo.ReplaceAll(ctx, cat); err != nil {
		log.Fatalf("cannot write catalog: %v", err)
	}

	fmt.Printf("wrote %d roles (fingerprint %s) successfully!\n", len(cat.Roles()), cat.Fingerprint())
}
