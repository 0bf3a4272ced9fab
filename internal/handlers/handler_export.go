package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
)

// exportHandler serves the month's CSV download and text report.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(exportService portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: exportService}
}

// exportCSV downloads the aggregated month as delimited text.
func (h *exportHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, month, ok := targetMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or month"})
		return
	}

	data, err := h.exportService.MonthCSV(c.Request.Context(), username, year, month)
	if err != nil {
		logger.Error("Failed to export CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export CSV"})
		return
	}

	filename := fmt.Sprintf("k3_finance_%s_%d-%02d.csv", username, year, month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// exportReport serves the plain-text monthly report.
func (h *exportHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, month, ok := targetMonth(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or month"})
		return
	}

	report, err := h.exportService.MonthReport(c.Request.Context(), username, year, month)
	if err != nil {
		logger.Error("Failed to build report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.String(http.StatusOK, report)
}
