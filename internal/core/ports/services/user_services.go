package services

import (
	"context"

	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
)

// UserSvcFacade covers registration, the PIN login gate and profile
// preferences.
type UserSvcFacade interface {
	// Register creates a profile with an empty ledger. Returns
	// apperrors.ErrDuplicate when the name is taken; the caller should ask
	// the user to pick another one.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.UserProfile, error)

	// Login verifies the name/PIN pair. Returns apperrors.ErrUnauthorized on
	// an unknown name or wrong PIN.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.UserProfile, error)

	// ToggleTheme flips the stored theme preference and returns the new one.
	ToggleTheme(ctx context.Context, username string) (domain.Theme, error)

	// GetProfile returns the stored profile for a username.
	GetProfile(ctx context.Context, username string) (*domain.UserProfile, error)
}
