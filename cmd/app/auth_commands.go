package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sharelink/cmd/app/commands"
	"github.com/allisson/sharelink/internal/app"
	"github.com/allisson/sharelink/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-operator",
			Usage: "Create an operator allowed to issue share links",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Human-readable operator name",
				},
				&cli.BoolFlag{
					Name:    "inactive",
					Aliases: []string{"i"},
					Value:   false,
					Usage:   "Create the operator disabled",
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

				operatorUseCase, err := container.OperatorUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateOperator(
					ctx,
					operatorUseCase,
					container.Logger(),
					os.Stdout,
					cmd.String("name"),
					!cmd.Bool("inactive"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "purge-tokens",
			Usage: "Delete operator bearer tokens that expired more than --days ago",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "days",
					Aliases: []string{"d"},
					Value:   7,
					Usage:   "Keep tokens that expired within this many days",
				},
				&cli.BoolFlag{
					Name:  "dry-run",
					Usage: "Only count the tokens that would be deleted",
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

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunPurgeTokens(
					ctx,
					tokenUseCase,
					container.Logger(),
					os.Stdout,
					int(cmd.Int("days")),
					cmd.Bool("dry-run"),
					cmd.String("format"),
				)
			},
		},
	}
}
