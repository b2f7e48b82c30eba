package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authMocks "github.com/allisson/sharelink/internal/auth/usecase/mocks"
)

func TestRunPurgeTokens(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output", func(t *testing.T) {
		useCase := authMocks.NewMockTokenUseCase(t)
		useCase.On("PurgeExpired", ctx, 7*24*time.Hour, false).Return(int64(10), nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunPurgeTokens(ctx, useCase, logger, &out, 7, false, "text"))
		assert.Contains(t, out.String(), "Deleted 10 token(s) expired more than 7 day(s) ago")
	})

	t.Run("json-dry-run", func(t *testing.T) {
		useCase := authMocks.NewMockTokenUseCase(t)
		useCase.On("PurgeExpired", ctx, time.Duration(0), true).Return(int64(5), nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunPurgeTokens(ctx, useCase, logger, &out, 0, true, "json"))
		assert.Contains(t, out.String(), `"count": 5`)
		assert.Contains(t, out.String(), `"dry_run": true`)
	})

	t.Run("use-case-error", func(t *testing.T) {
		useCase := authMocks.NewMockTokenUseCase(t)
		useCase.On("PurgeExpired", ctx, 24*time.Hour, false).Return(int64(0), assert.AnError).Once()

		err := RunPurgeTokens(ctx, useCase, logger, &bytes.Buffer{}, 1, false, "text")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("invalid-arguments", func(t *testing.T) {
		useCase := authMocks.NewMockTokenUseCase(t)

		assert.ErrorContains(t, RunPurgeTokens(ctx, useCase, logger, &bytes.Buffer{}, -1, false, "text"),
			"days must not be negative")
		assert.ErrorContains(t, RunPurgeTokens(ctx, useCase, logger, &bytes.Buffer{}, 1, false, "yaml"),
			"invalid format")
	})
}
