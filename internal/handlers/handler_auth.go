package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/betok3jr-art/k3_finance_app/internal/apperrors"
	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
	"github.com/betok3jr-art/k3_finance_app/internal/utils"
	"github.com/betok3jr-art/k3_finance_app/internal/utils/mapping"
	"github.com/betok3jr-art/k3_finance_app/pkg/config"
)

// authHandler handles registration and the PIN login gate.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

func newAuthHandler(userService portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: userService, cfg: cfg}
}

// register creates a new profile with an empty ledger. A taken name is a
// recoverable condition: the client tells the user to pick another one.
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and a 4-digit PIN are required"})
		return
	}

	profile, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Registration name taken", slog.String("username", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "Name already in use, choose another one"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	h.respondWithSession(c, *profile)
}

// login verifies the name/PIN pair and issues the session token.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and PIN are required"})
		return
	}

	profile, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("username", req.Name))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong name or PIN"})
			return
		}
		logger.Error("Failed to login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	h.respondWithSession(c, *profile)
}

func (h *authHandler) respondWithSession(c *gin.Context, profile domain.UserProfile) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, err := utils.GenerateSessionToken(profile.Name, h.cfg.JWTSecret, h.cfg.JWTIssuer, h.cfg.JWTExpiryDuration)
	if err != nil {
		logger.Error("Failed to generate session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:   token,
		Profile: mapping.ToProfileResponse(profile),
	})
}
