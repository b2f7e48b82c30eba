package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
	authUseCase "github.com/allisson/sharelink/internal/auth/usecase"
)

// RunCreateOperator creates an operator and prints its id and plain secret. The secret is
// only ever available at this point.
func RunCreateOperator(
	ctx context.Context,
	operatorUseCase authUseCase.OperatorUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name string,
	isActive bool,
	format string,
) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	output, err := operatorUseCase.Create(ctx, &authDomain.CreateOperatorInput{
		Name:     name,
		IsActive: isActive,
	})
	if err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]string{
			"operator_id": output.ID.String(),
			"secret":      output.PlainSecret,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, "Operator created successfully!")
		_, _ = fmt.Fprintf(writer, "Operator ID: %s\n", output.ID.String())
		_, _ = fmt.Fprintf(writer, "Secret: %s\n", output.PlainSecret)
		_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The secret is shown only once. Store it securely.")
	}

	logger.Info("operator created",
		slog.String("operator_id", output.ID.String()),
		slog.Bool("is_active", isActive),
	)

	return nil
}
