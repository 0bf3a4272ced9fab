package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
	"github.com/betok3jr-art/k3_finance_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services, authLimiter)
	setupAPIV1Routes(r, cfg, services, authLimiter)
}

// registerAuthRoutes configures the public registration/login endpoints.
// Both sit behind the rate limiter: the PIN space is tiny.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, authLimiter *limiter.Limiter) {
	h := newAuthHandler(services.User, cfg)

	auth := r.Group("/api/v1/auth", middleware.RateLimit(authLimiter))
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, authLimiter *limiter.Limiter) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	entries := newEntriesHandler(services.Ledger)
	v1.POST("/entries", entries.createEntries)
	v1.GET("/entries", entries.listEntries)
	v1.PUT("/entries/:entryID", entries.updateEntry)
	v1.DELETE("/entries/:entryID", entries.deleteEntry)
	v1.PATCH("/entries/:entryID/status", entries.toggleStatus)

	summary := newSummaryHandler(services.Summary, services.Insight)
	v1.GET("/summary", summary.getSummary)
	v1.GET("/insights", summary.getInsight)

	export := newExportHandler(services.Export)
	v1.GET("/export/csv", export.exportCSV)
	v1.GET("/export/report", export.exportReport)

	// Uploads fan out to the language-model collaborator; keep them limited.
	imports := newImportHandler(services.Import)
	v1.POST("/import/preview", middleware.RateLimit(authLimiter), imports.previewStatement)
	v1.POST("/import/confirm", imports.confirmImport)

	profile := newProfileHandler(services.User)
	v1.GET("/profile", profile.getProfile)
	v1.POST("/profile/theme", profile.toggleTheme)
}
