package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/accounts/internal/accounts/app"
)

func newMigrateCmd(overrides *flagOverrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the account database schema",
	}

	cmd.AddCommand(
		migrateSubcommand(overrides, "up", "Apply all pending migrations", func(cmd *cobra.Command, db app.Database) error {
			if err := db.ApplyMigrations(); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			return printVersion(cmd, db)
		}),
		migrateSubcommand(overrides, "down", "Revert every applied migration", func(cmd *cobra.Command, db app.Database) error {
			if err := db.MigrateDown(); err != nil {
				return fmt.Errorf("revert migrations: %w", err)
			}
			return printVersion(cmd, db)
		}),
		migrateSubcommand(overrides, "version", "Print the current schema version", printVersion),
	)

	return cmd
}

func migrateSubcommand(
	overrides *flagOverrides,
	use, short string,
	run func(cmd *cobra.Command, db app.Database) error,
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := overrides.loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := app.OpenDatabase(cmd.Context(), cfg, app.NewLogger(cfg))
			if err != nil {
				return err
			}
			defer db.Close()

			return run(cmd, db)
		},
	}
}

func printVersion(cmd *cobra.Command, db app.Database) error {
	version, dirty, err := db.MigrationVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version == 0 {
		cmd.Println("schema version: none")
		return nil
	}
	cmd.Printf("schema version: %d (dirty: %t)\n", version, dirty)
	return nil
}
