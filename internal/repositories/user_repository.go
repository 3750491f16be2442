package repositories

import (
	"context"

	"github.com/smith-legal/staff-portal/internal/models"
)

// UserRepository covers the account/profile pair backing the staff directory.
type UserRepository interface {
	// Create persists the account and its profile atomically. The account is
	// inserted first so its generated id can be assigned to the profile; if
	// either insert fails nothing persists.
	Create(ctx context.Context, account *models.Account, profile *models.Profile) error

	// GetAccountByID loads the credential record.
	GetAccountByID(ctx context.Context, id uint) (*models.Account, error)

	// GetProfileByAccountID loads the profile owned by the given account.
	GetProfileByAccountID(ctx context.Context, accountID uint) (*models.Profile, error)

	// GetFirstProfileBySurname returns the first profile whose last name
	// matches exactly. Surnames are not unique; duplicates silently resolve
	// to whichever row the storage engine returns first.
	GetFirstProfileBySurname(ctx context.Context, surname string) (*models.Profile, error)

	// List returns all profiles in storage order.
	List(ctx context.Context) ([]*models.Profile, error)

	// UpdateNames overwrites the first and last name of the profile owned by
	// accountID and returns the updated profile.
	UpdateNames(ctx context.Context, accountID uint, firstName, lastName string) (*models.Profile, error)

	// DeleteAccount removes the account row; the profile goes with it via the
	// ON DELETE CASCADE constraint. Returns ErrNotFound if no row matched.
	DeleteAccount(ctx context.Context, id uint) error
}
