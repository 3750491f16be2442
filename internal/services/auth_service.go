package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/smith-legal/staff-portal/internal/repositories"
)

type authService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger *slog.Logger
}

// NewAuthService creates the authentication service.
func NewAuthService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger) AuthService {
	return &authService{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// Authenticate looks up the first profile with a matching surname and
// compares the stored password by plain equality. Every mismatch, including
// an unknown surname, returns ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, surname, password string) (*AuthenticatedUser, error) {
	profile, err := s.repo.User().GetFirstProfileBySurname(ctx, surname)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up surname: %w", err)
	}

	account, err := s.repo.User().GetAccountByID(ctx, profile.AccountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if account.Password != password {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User authenticated", "user_id", account.ID)

	return &AuthenticatedUser{
		UserID:    account.ID,
		Surname:   profile.LastName,
		FirstName: profile.FirstName,
		FullName:  profile.FullName(),
	}, nil
}
