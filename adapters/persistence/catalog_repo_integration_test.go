package persistence

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sourabh020820033/learning-path/internal/domain/catalog"
	"github.com/sourabh020820033/learning-path/pkg/logger"
)

type CatalogRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	repo        *PostgresCatalogRepo
}

func (s *CatalogRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.repo = NewPostgresCatalogRepo(pool, logger.NewNopLogger())
}

func (s *CatalogRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Logf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestCatalogRepoIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(CatalogRepoIntegrationTestSuite))
}

func (s *CatalogRepoIntegrationTestSuite) Test_1_SeedMatchesBuiltin() {
	c, err := s.repo.Load(context.Background())
	s.Require().NoError(err)

	s.Equal(catalog.Default().Roles(), c.Roles())
	s.Equal(catalog.Default().Fingerprint(), c.Fingerprint())
}

func (s *CatalogRepoIntegrationTestSuite) Test_2_ReplaceAll() {
	ctx := context.Background()
	custom, err := catalog.New([]catalog.Role{
		{Key: "qa engineer", Requirements: []catalog.SkillRequirement{
			{SkillID: "Testing", RequiredLevel: 80, Priority: catalog.PriorityHigh, Category: "Quality"},
		}},
		{Key: "intern"},
	}, map[string][]catalog.LearningResource{
		"Testing": {{Title: "Test Driven Development", Platform: "Book"}},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.ReplaceAll(ctx, custom))

	loaded, err := s.repo.Load(ctx)
	s.Require().NoError(err)
	s.Equal([]string{"qa engineer", "intern"}, loaded.Roles())
	s.Equal(custom.Fingerprint(), loaded.Fingerprint())

	intern, err := loaded.Requirements("intern")
	s.Require().NoError(err)
	s.Empty(intern)

	s.Require().NoError(s.repo.ReplaceAll(ctx, catalog.Default()))
}
