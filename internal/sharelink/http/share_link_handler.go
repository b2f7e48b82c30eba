// Package http exposes share links over HTTP: operator management routes and the
// unauthenticated recipient routes addressed by the link id.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/sharelink/internal/auth/http"
	apperrors "github.com/allisson/sharelink/internal/errors"
	"github.com/allisson/sharelink/internal/httputil"
	"github.com/allisson/sharelink/internal/sharelink/http/dto"
	shareLinkUseCase "github.com/allisson/sharelink/internal/sharelink/usecase"
	customValidation "github.com/allisson/sharelink/internal/validation"
)

// ShareLinkHandler serves the operator routes. Every route requires AuthenticationMiddleware.
type ShareLinkHandler struct {
	shareLinkUseCase shareLinkUseCase.ShareLinkUseCase
	logger           *slog.Logger
	now              func() time.Time
}

// NewShareLinkHandler creates a new operator share link handler.
func NewShareLinkHandler(useCase shareLinkUseCase.ShareLinkUseCase, logger *slog.Logger) *ShareLinkHandler {
	return &ShareLinkHandler{
		shareLinkUseCase: useCase,
		logger:           logger,
		now:              time.Now,
	}
}

// CreateHandler creates a share link for a customer.
// POST /v1/share-links - returns 200 with the link, including its id.
func (h *ShareLinkHandler) CreateHandler(c *gin.Context) {
	operator, ok := authHTTP.GetOperator(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	link, err := h.shareLinkUseCase.Create(c.Request.Context(), req.ToDomain(operator.ID))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("share link created",
		slog.String("customer_id", link.CustomerID.String()),
		slog.String("operator_id", operator.ID.String()),
		slog.Time("expires_at", link.ExpiresAt))

	c.JSON(http.StatusOK, dto.CreateShareLinkResponse{
		Success: true,
		Data:    dto.MapShareLinkToResponse(link, h.now()),
	})
}

// ListByCustomerHandler lists a customer's links newest first.
// GET /v1/customers/:customer_id/share-links?offset=0&limit=50
func (h *ShareLinkHandler) ListByCustomerHandler(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "customer_id must be a valid UUID"),
			h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	links, err := h.shareLinkUseCase.ListByCustomer(c.Request.Context(), customerID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapShareLinksToListResponse(links, h.now()))
}

// DeactivateHandler revokes a link. Only its creator may do so.
// DELETE /v1/share-links/:id
func (h *ShareLinkHandler) DeactivateHandler(c *gin.Context) {
	operator, ok := authHTTP.GetOperator(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.shareLinkUseCase.Deactivate(c.Request.Context(), c.Param("id"), operator.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("share link deactivated", slog.String("operator_id", operator.ID.String()))

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
