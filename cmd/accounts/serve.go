package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/accounts/internal/accounts/app"
)

func newServeCmd(overrides *flagOverrides) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := overrides.loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := app.NewLogger(cfg)
			application, err := app.New(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("failed to initialize application", "error", err)
				return fmt.Errorf("initialize application: %w", err)
			}

			if err := application.Run(); err != nil {
				logger.Error("application error", "error", err)
				return err
			}
			return nil
		},
	}
}
