package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
	"github.com/betok3jr-art/k3_finance_app/internal/utils/mapping"
)

// profileHandler serves the profile and the theme toggle, the only profile
// mutation.
type profileHandler struct {
	userService portssvc.UserSvcFacade
}

func newProfileHandler(userService portssvc.UserSvcFacade) *profileHandler {
	return &profileHandler{userService: userService}
}

func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), username)
	if err != nil {
		logger.Error("Failed to get profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, mapping.ToProfileResponse(*profile))
}

func (h *profileHandler) toggleTheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	theme, err := h.userService.ToggleTheme(c.Request.Context(), username)
	if err != nil {
		logger.Error("Failed to toggle theme", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": string(theme)})
}
