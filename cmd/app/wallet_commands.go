package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/walletkeys/cmd/app/commands"
	"github.com/allisson/walletkeys/internal/app"
	"github.com/allisson/walletkeys/internal/config"
)

// newWalletContainer loads and validates configuration for commands that touch wallet keys.
func newWalletContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getWalletCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "rotate-wallet-keys",
			Usage: "Re-wrap every wallet key under an old master key with the active master key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "old-master-key-id",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Master key ID the wallets are moved away from",
				},
				&cli.StringFlag{
					Name:     "pins-file",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "CSV file of wallet_id,pin rows used to unlock each wallet",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newWalletContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				pinsFile, err := os.Open(cmd.String("pins-file"))
				if err != nil {
					return fmt.Errorf("failed to open pins file: %w", err)
				}
				defer func() {
					if closeErr := pinsFile.Close(); closeErr != nil {
						container.Logger().Warn("failed to close pins file", slog.Any("error", closeErr))
					}
				}()

				pins, err := commands.NewCSVPinProvider(pinsFile)
				if err != nil {
					return err
				}

				walletKeyUseCase, err := container.WalletKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunRotateWalletKeys(
					ctx,
					walletKeyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					pins,
					cmd.String("old-master-key-id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify-wallet-pin",
			Usage: "Check whether a PIN unlocks a wallet key (reads the PIN from stdin when --pin is omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "wallet-id",
					Aliases:  []string{"w"},
					Required: true,
					Usage:    "Wallet ID",
				},
				&cli.StringFlag{
					Name:  "pin",
					Usage: "Wallet PIN",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newWalletContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				walletKeyUseCase, err := container.WalletKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerifyWalletPin(
					ctx,
					walletKeyUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("wallet-id"),
					cmd.String("pin"),
					cmd.String("format"),
				)
			},
		},
	}
}
