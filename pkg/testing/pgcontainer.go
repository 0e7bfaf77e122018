package testing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const pgImage = "postgres:17.5"

type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

type PGConfig struct {
	Database string
	Username string
	Password string

	// SeedSQL runs after the migrations, e.g. fixture rows.
	SeedSQL string
}

func defaultPGConfig() PGConfig {
	return PGConfig{
		Database: "newsdesk_test_db",
		Username: "test",
		Password: "test",
	}
}

// NewPGContainerWithCleanup starts Postgres with every db/migrations/*.up.sql applied
// and terminates it when the test ends.
func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB, seed ...string) *PGContainer {
	tb.Helper()

	cfg := defaultPGConfig()
	for _, s := range seed {
		cfg.SeedSQL += s + ";\n"
	}

	container, err := startPG(ctx, cfg, tb.TempDir())
	if err != nil {
		tb.Fatalf("failed to create postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container.Container); err != nil {
			tb.Logf("failed to terminate postgres container: %v", err)
		}
	})

	return container
}

func migrationScripts() ([]string, error) {
	_, file, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(file), "..", "..", "db", "migrations")

	scripts, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to find migration files: %w", err)
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no migrations found in %s", dir)
	}
	sort.Strings(scripts)
	return scripts, nil
}

func startPG(ctx context.Context, cfg PGConfig, scratch string) (*PGContainer, error) {
	scripts, err := migrationScripts()
	if err != nil {
		return nil, err
	}

	if cfg.SeedSQL != "" {
		// Init scripts run in name order, so the seed sorts after the migrations.
		seed := filepath.Join(scratch, "zz_seed.sql")
		if err := os.WriteFile(seed, []byte(cfg.SeedSQL), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write seed script: %w", err)
		}
		scripts = append(scripts, seed)
	}

	pgContainer, err := postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.WithInitScripts(scripts...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(pgContainer)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{
		Container:  pgContainer,
		ConnString: connStr,
	}, nil
}
