package services

import (
	"context"
	"time"

	"github.com/smith-legal/staff-portal/internal/models"
	"github.com/smith-legal/staff-portal/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Request types live with their validation rules.
type LoginRequest = validator.LoginRequest
type UserCreateRequest = validator.UserCreateRequest
type UserUpdateRequest = validator.UserUpdateRequest

// AuthenticatedUser is the identity summary produced by a successful login
// and echoed back to the client.
type AuthenticatedUser struct {
	UserID    uint   `json:"user_id"`
	Surname   string `json:"surname"`
	FirstName string `json:"first_name"`
	FullName  string `json:"full_name"`
}

// UserResponse is the profile summary returned by every directory operation.
type UserResponse struct {
	UserID      uint   `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Province    string `json:"province"`
	Gender      string `json:"gender"`
	Facilitator bool   `json:"facilitator"`
}

func newUserResponse(p *models.Profile) *UserResponse {
	return &UserResponse{
		UserID:      p.AccountID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		DateOfBirth: time.Time(p.DateOfBirth).Format(models.DateLayout),
		Province:    p.Province,
		Gender:      p.Gender,
		Facilitator: p.Facilitator,
	}
}

// ===== SERVICE INTERFACES =====

// AuthService validates surname/password pairs.
type AuthService interface {
	// Authenticate returns the identity summary for a matching account, or
	// ErrInvalidCredentials for any mismatch.
	Authenticate(ctx context.Context, surname, password string) (*AuthenticatedUser, error)
}

// UserService is the staff directory: CRUD over the account/profile pair.
type UserService interface {
	List(ctx context.Context) ([]*UserResponse, error)
	GetByID(ctx context.Context, id uint) (*UserResponse, error)
	Create(ctx context.Context, req *UserCreateRequest) (*UserResponse, error)
	Update(ctx context.Context, id uint, req *UserUpdateRequest) (*UserResponse, error)

	// Delete removes an account. Only the primary administrator may delete,
	// and never itself.
	Delete(ctx context.Context, id uint, callerID uint) error
}

// ExportService renders the staff directory as a downloadable office document.
type ExportService interface {
	UsersWorkbook(ctx context.Context) ([]byte, error)
}
