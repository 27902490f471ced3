package main

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/accounts/internal/accounts/app"
)

// flagOverrides holds command-line values that win over the environment.
type flagOverrides struct {
	port        int
	driver      string
	file        string
	databaseURI string
}

func (f *flagOverrides) apply(cmd *cobra.Command, cfg *app.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = f.port
	}
	if flags.Changed("db-driver") {
		cfg.DatabaseDriver = f.driver
	}
	if flags.Changed("db-file") {
		cfg.DatabaseFile = f.file
	}
	if flags.Changed("database-uri") {
		cfg.DatabaseURI = f.databaseURI
	}
}

// loadConfig reads the environment, applies flag overrides and validates.
func (f *flagOverrides) loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.ReadEnv()
	if err != nil {
		return app.Config{}, err
	}
	f.apply(cmd, &cfg)
	return cfg, cfg.Validate()
}

func newRootCmd() *cobra.Command {
	overrides := &flagOverrides{}

	rootCmd := &cobra.Command{
		Use:   "accounts",
		Short: "User account service",
		Long: `accounts runs the user account HTTP service: registration, login and
health probes backed by SQLite or PostgreSQL.

Configuration comes from environment variables (PORT, ACCOUNTS_DATABASE_DRIVER,
ACCOUNTS_DATABASE_FILE, DATABASE_URI, ACCOUNTS_PEPPER_FILE, ...). Flags override them.`,
		SilenceUsage: true,
		Version:      app.BuildVersion,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&overrides.port, "port", 8080, "HTTP port (env: PORT)")
	pf.StringVar(&overrides.driver, "db-driver", app.DriverSQLite, "Database driver: sqlite, postgres (env: ACCOUNTS_DATABASE_DRIVER)")
	pf.StringVar(&overrides.file, "db-file", "accounts.db", "SQLite database file (env: ACCOUNTS_DATABASE_FILE)")
	pf.StringVar(&overrides.databaseURI, "database-uri", "", "PostgreSQL connection string (env: DATABASE_URI)")

	serve := newServeCmd(overrides)
	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(newMigrateCmd(overrides))

	// Running the bare binary starts the server.
	rootCmd.RunE = serve.RunE

	return rootCmd
}
