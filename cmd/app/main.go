// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cards/cmd/app/commands"
	"github.com/allisson/cards/internal/app"
	"github.com/allisson/cards/internal/config"
)

var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Card number validation and generation service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "validate",
				Usage: "Validate a card number and show its components",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "number",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Card number to validate",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					defer func() { _ = container.Shutdown(ctx) }()

					cardUseCase, err := container.CardUseCase()
					if err != nil {
						return err
					}

					return commands.RunValidate(
						ctx,
						cardUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("number"),
						cmd.String("format"),
					)
				},
			},
			{
				Name:  "generate",
				Usage: "Generate a valid card number from an issuer prefix",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "iin",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Issuer prefix, one or two digits (e.g., 65)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					defer func() { _ = container.Shutdown(ctx) }()

					cardUseCase, err := container.CardUseCase()
					if err != nil {
						return err
					}

					return commands.RunGenerate(
						ctx,
						cardUseCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("iin"),
						cmd.String("format"),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
