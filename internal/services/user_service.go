package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smith-legal/staff-portal/internal/models"
	"github.com/smith-legal/staff-portal/internal/repositories"
	"github.com/smith-legal/staff-portal/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

// NewUserService creates the staff directory service.
func NewUserService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) List(ctx context.Context) ([]*UserResponse, error) {
	profiles, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*UserResponse, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, newUserResponse(p))
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*UserResponse, error) {
	profile, err := s.repo.User().GetProfileByAccountID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return newUserResponse(profile), nil
}

func (s *userService) Create(ctx context.Context, req *UserCreateRequest) (*UserResponse, error) {
	s.logger.Info("Creating user", "last_name", req.LastName)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	dob, err := time.Parse(models.DateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_birth must be a date in %s format", ErrValidationFailed, models.DateLayout)
	}

	account := &models.Account{Password: req.Password}
	profile := &models.Profile{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: datatypes.Date(dob),
		Province:    req.Province,
		Gender:      req.Gender,
		Facilitator: *req.Facilitator,
	}

	// Account first to obtain its id, profile second, one transaction.
	if err := s.repo.User().Create(ctx, account, profile); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created", "user_id", account.ID)

	return newUserResponse(profile), nil
}

func (s *userService) Update(ctx context.Context, id uint, req *UserUpdateRequest) (*UserResponse, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	profile, err := s.repo.User().UpdateNames(ctx, id, req.FirstName, req.LastName)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	s.logger.Info("User updated", "user_id", id)

	return newUserResponse(profile), nil
}

func (s *userService) Delete(ctx context.Context, id uint, callerID uint) error {
	if callerID != PrimaryAdminID {
		return ErrPermissionDenied
	}
	if id == callerID {
		return ErrSelfDelete
	}

	if err := s.repo.User().DeleteAccount(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	s.logger.Info("User deleted", "user_id", id, "deleted_by", callerID)

	return nil
}
