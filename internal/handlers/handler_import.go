package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/betok3jr-art/k3_finance_app/internal/apperrors"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
	"github.com/betok3jr-art/k3_finance_app/internal/utils/mapping"
)

// importHandler drives the two-phase statement import: preview returns the
// parsed candidates for the user to inspect; confirm reconciles them into
// the ledger. Dismissing the preview on the client simply never confirms.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(importService portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: importService}
}

// previewStatement uploads a PDF/CSV statement and returns candidates.
func (h *importHandler) previewStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := middleware.GetUsernameFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A statement file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}
	defer file.Close()

	candidates, err := h.importService.PreviewStatement(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, apperrors.ErrParseFailure) {
			logger.Warn("Statement parse failed", slog.String("error", err.Error()), slog.String("filename", fileHeader.Filename))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not read the statement"})
			return
		}
		logger.Error("Failed to preview statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ImportPreviewResponse{Candidates: candidates})
}

// confirmImport reconciles the previewed candidates into the ledger.
func (h *importHandler) confirmImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ConfirmImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for confirmImport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	accepted, err := h.importService.ConfirmImport(c.Request.Context(), username, req.Candidates)
	if err != nil {
		logger.Error("Failed to confirm import", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ImportResultResponse{
		Offered:  len(req.Candidates),
		Accepted: len(accepted),
		Entries:  mapping.ToEntryResponses(accepted),
	})
}
