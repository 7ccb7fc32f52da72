package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/walletkeys/cmd/app/commands"
	"github.com/allisson/walletkeys/internal/app"
	"github.com/allisson/walletkeys/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Serve the wallet key API (and metrics when METRICS_ENABLED)",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Create or upgrade the wallet_key_records table for DB_DRIVER",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
	}
}
