package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
	"github.com/betok3jr-art/k3_finance_app/internal/utils/mapping"
)

// summaryHandler serves the monthly aggregate and the AI insight.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
	insightService portssvc.InsightSvcFacade
}

func newSummaryHandler(summaryService portssvc.SummarySvcFacade, insightService portssvc.InsightSvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: summaryService, insightService: insightService}
}

// targetMonth resolves the year/month query params, defaulting to the
// current month.
func targetMonth(c *gin.Context) (int, int, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, false
		}
		month = parsed
	}
	return year, month, true
}

// getSummary recomputes the aggregate for the target month.
func (h *summaryHandler) getSummary(c *gin.Context) {
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

	summary, err := h.summaryService.MonthSummary(c.Request.Context(), username, year, month)
	if err != nil {
		logger.Error("Failed to compute month summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, mapping.ToMonthSummaryResponse(year, month, *summary))
}

// getInsight asks the language model for the month's narrative analysis.
func (h *summaryHandler) getInsight(c *gin.Context) {
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

	insight, err := h.insightService.MonthInsight(c.Request.Context(), username, year, month)
	if err != nil {
		logger.Error("Failed to generate insight", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate insight"})
		return
	}

	c.JSON(http.StatusOK, dto.InsightResponse{Insight: insight})
}
