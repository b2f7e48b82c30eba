// Package main provides the sharelink command line entry point.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "sharelink",
		Usage:    "Revocable, quota-bounded share links for customer records",
		Version:  version,
		Commands: append(getSystemCommands(version), getAuthCommands()...),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
