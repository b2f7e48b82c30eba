package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/sharelink/internal/httputil"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
	"github.com/allisson/sharelink/internal/sharelink/http/dto"
	shareLinkUseCase "github.com/allisson/sharelink/internal/sharelink/usecase"
	customValidation "github.com/allisson/sharelink/internal/validation"
)

// RecipientHandler serves the public routes. The link id in the path is the only credential,
// so it is never logged.
type RecipientHandler struct {
	shareLinkUseCase shareLinkUseCase.ShareLinkUseCase
	logger           *slog.Logger
}

// NewRecipientHandler creates a new recipient handler.
func NewRecipientHandler(useCase shareLinkUseCase.ShareLinkUseCase, logger *slog.Logger) *RecipientHandler {
	return &RecipientHandler{
		shareLinkUseCase: useCase,
		logger:           logger,
	}
}

// ViewHandler returns the permission-filtered customer without consuming quota.
// GET /v1/public/share-links/:id
func (h *RecipientHandler) ViewHandler(c *gin.Context) {
	view, err := h.shareLinkUseCase.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecipientViewToResponse(view))
}

// RecordAccessHandler consumes one access from the link quota.
// POST /v1/public/share-links/:id/access
func (h *RecipientHandler) RecordAccessHandler(c *gin.Context) {
	link, err := h.shareLinkUseCase.RecordAccess(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccessToResponse(link))
}

// MintURLsHandler signs download URLs for the requested snapshot documents.
// POST /v1/public/share-links/:id/documents/urls
func (h *RecipientHandler) MintURLsHandler(c *gin.Context) {
	var req dto.MintURLsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	results, err := h.shareLinkUseCase.MintURLs(c.Request.Context(), c.Param("id"), req.ParsedDocumentIDs())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logFailures(results)
	c.JSON(http.StatusOK, dto.MapDocumentURLsToResponse(results))
}

// MintAllHandler signs download URLs for the whole snapshot.
// GET /v1/public/share-links/:id/documents
func (h *RecipientHandler) MintAllHandler(c *gin.Context) {
	results, err := h.shareLinkUseCase.MintAll(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logFailures(results)
	c.JSON(http.StatusOK, dto.MapDocumentURLsToResponse(results))
}

func (h *RecipientHandler) logFailures(results []shareLinkDomain.DocumentURLResult) {
	for _, result := range results {
		if !result.OK() {
			h.logger.Error("failed to mint signed url",
				slog.String("document_id", result.Document.ID.String()),
				slog.Any("error", result.Err))
		}
	}
}
