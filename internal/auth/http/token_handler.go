package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
	"github.com/allisson/sharelink/internal/auth/http/dto"
	authUseCase "github.com/allisson/sharelink/internal/auth/usecase"
	"github.com/allisson/sharelink/internal/httputil"
	customValidation "github.com/allisson/sharelink/internal/validation"
)

// TokenHandler exchanges operator credentials for bearer tokens.
type TokenHandler struct {
	tokenUseCase authUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(tokenUseCase authUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// IssueTokenHandler issues a bearer token.
// POST /v1/token - unauthenticated, rate limited per IP.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.tokenUseCase.Issue(c.Request.Context(), &authDomain.IssueTokenInput{
		OperatorID: uuid.MustParse(req.OperatorID),
		Secret:     req.Secret,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.IssueTokenResponse{
		Success:   true,
		Token:     output.PlainToken,
		ExpiresAt: output.ExpiresAt,
	})
}
