package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	authUseCase "github.com/allisson/sharelink/internal/auth/usecase"
)

// RunPurgeTokens deletes operator bearer tokens that expired more than days ago. With dryRun
// the tokens are only counted.
func RunPurgeTokens(
	ctx context.Context,
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must not be negative, got: %d", days)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	count, err := tokenUseCase.PurgeExpired(ctx, time.Duration(days)*24*time.Hour, dryRun)
	if err != nil {
		return fmt.Errorf("failed to purge expired tokens: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		}); err != nil {
			return err
		}
	} else if dryRun {
		_, _ = fmt.Fprintf(writer, "Dry run: %d token(s) expired more than %d day(s) ago\n", count, days)
	} else {
		_, _ = fmt.Fprintf(writer, "Deleted %d token(s) expired more than %d day(s) ago\n", count, days)
	}

	logger.Info("expired tokens purged",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)
	return nil
}
