// Package httputil holds the JSON error envelope and query helpers shared by gin handlers.
package httputil

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/sharelink/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// publicMessage strips the trailing error kind from a domain error so only the
// human readable part reaches the client.
func publicMessage(err, kind error) string {
	return strings.TrimSuffix(err.Error(), ": "+kind.Error())
}

// errorMapping describes how one sentinel is rendered. A fixed message hides the error text;
// otherwise the domain message is passed through.
type errorMapping struct {
	kind         error
	status       int
	code         string
	fixedMessage string
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
var errorMappings = []errorMapping{
	{kind: apperrors.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
	{kind: apperrors.ErrGone, status: http.StatusGone, code: "gone"},
	{kind: apperrors.ErrQuotaExceeded, status: http.StatusTooManyRequests, code: "quota_exceeded"},
	{
		kind:         apperrors.ErrConflict,
		status:       http.StatusConflict,
		code:         "conflict",
		fixedMessage: "A conflict occurred with existing data",
	},
	{kind: apperrors.ErrInvalidInput, status: http.StatusBadRequest, code: "invalid_input"},
	{
		kind:         apperrors.ErrUnauthorized,
		status:       http.StatusUnauthorized,
		code:         "unauthorized",
		fixedMessage: "Authentication is required",
	},
	{kind: apperrors.ErrForbidden, status: http.StatusForbidden, code: "forbidden"},
}

func resolveError(err error) (int, ErrorResponse) {
	for _, m := range errorMappings {
		if !apperrors.Is(err, m.kind) {
			continue
		}
		message := m.fixedMessage
		if message == "" {
			message = publicMessage(err, m.kind)
		}
		return m.status, ErrorResponse{Error: m.code, Message: message}
	}
	return http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	}
}

// HandleErrorGin writes the JSON error for err. Expected refusals are logged at warn level,
// anything mapped to 5xx at error level. Internal details never reach the client.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status, body := resolveError(err)

	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", status),
			slog.String("error_code", body.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(status, body)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: err.Error()})
}

// HandleValidationErrorGin writes a 400 Bad Request response for validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: publicMessage(err, apperrors.ErrInvalidInput),
	})
}
