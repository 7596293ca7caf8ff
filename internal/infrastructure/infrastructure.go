// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (lifecycle, logging, database) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/migrations"
	"github.com/ddbb-bakery/pos/pkg/database"
	"github.com/ddbb-bakery/pos/pkg/lifecycle"
	"github.com/ddbb-bakery/pos/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}, nil
}

// Migrate applies the embedded schema migrations.
func (i *Infrastructure) Migrate() error {
	if err := i.Database.Migrate(migrations.FS, migrations.Dir); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	return nil
}

// Start connects the database, applies migrations, and registers shutdown
// hooks with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return i.Migrate()
}
