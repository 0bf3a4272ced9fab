package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/betok3jr-art/k3_finance_app/internal/apperrors"
	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portsrepo "github.com/betok3jr-art/k3_finance_app/internal/core/ports/repositories"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
	"github.com/betok3jr-art/k3_finance_app/internal/middleware"
)

type userService struct {
	recordRepo portsrepo.UserRecordRepository
}

// NewUserService creates the user service.
func NewUserService(recordRepo portsrepo.UserRecordRepository) portssvc.UserSvcFacade {
	return &userService{recordRepo: recordRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a profile with an empty ledger. A taken name is a
// recoverable condition: the caller reports it and asks for another name.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.UserProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record := domain.UserRecord{
		Profile: domain.UserProfile{
			Name:         req.Name,
			PIN:          req.PIN,
			Theme:        domain.ThemeLight,
			HasOnboarded: true,
		},
		Entries: []domain.Entry{},
	}

	if err := s.recordRepo.Create(ctx, req.Name, record); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user record: %w", err)
	}

	logger.Info("User registered", slog.String("username", req.Name))
	return &record.Profile, nil
}

// Login verifies the name/PIN pair. Unknown names and wrong PINs are
// indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*domain.UserProfile, error) {
	record, err := s.recordRepo.Load(ctx, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	if record.Profile.PIN != req.PIN {
		return nil, apperrors.ErrUnauthorized
	}
	return &record.Profile, nil
}

// ToggleTheme flips the stored theme preference.
func (s *userService) ToggleTheme(ctx context.Context, username string) (domain.Theme, error) {
	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to load user record: %w", err)
	}

	if record.Profile.Theme == domain.ThemeLight {
		record.Profile.Theme = domain.ThemeDark
	} else {
		record.Profile.Theme = domain.ThemeLight
	}

	if err := s.recordRepo.Save(ctx, username, *record); err != nil {
		return "", fmt.Errorf("failed to save user record: %w", err)
	}
	return record.Profile.Theme, nil
}

// GetProfile returns the stored profile for a username.
func (s *userService) GetProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	record, err := s.recordRepo.Load(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}
	return &record.Profile, nil
}
