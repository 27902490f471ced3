package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/postgres"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
)

// Database is a store that also exposes the schema controls used by the
// migrate command. Both drivers implement it.
type Database interface {
	store.Store
	MigrateDown() error
	MigrationVersion() (version uint, dirty bool, err error)
}

// OpenDatabase connects to the configured driver. Migrations are not applied.
func OpenDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (Database, error) {
	switch cfg.DatabaseDriver {
	case DriverSQLite:
		db, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		logger.Info("database opened", "driver", DriverSQLite, "file", cfg.DatabaseFile)
		return db, nil
	case DriverPostgres:
		db, err := postgres.NewStore(ctx, cfg.DatabaseURI)
		if err != nil {
			return nil, fmt.Errorf("open postgres database: %w", err)
		}
		logger.Info("database opened", "driver", DriverPostgres)
		return db, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}
