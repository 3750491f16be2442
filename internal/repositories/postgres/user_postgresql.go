package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/smith-legal/staff-portal/internal/models"
	"github.com/smith-legal/staff-portal/internal/repositories"
)

type userPostgreSQL struct {
	db *gorm.DB
}

// NewUserPostgreSQL creates the gorm-backed user repository.
func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &userPostgreSQL{db: db}
}

func (r *userPostgreSQL) Create(ctx context.Context, account *models.Account, profile *models.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		profile.AccountID = account.ID
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
}

func (r *userPostgreSQL) GetAccountByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return &account, nil
}

func (r *userPostgreSQL) GetProfileByAccountID(ctx context.Context, accountID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", accountID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile for account %d: %w", accountID, err)
	}
	return &profile, nil
}

func (r *userPostgreSQL) GetFirstProfileBySurname(ctx context.Context, surname string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("last_name = ?", surname).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up surname: %w", err)
	}
	return &profile, nil
}

func (r *userPostgreSQL) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (r *userPostgreSQL) UpdateNames(ctx context.Context, accountID uint, firstName, lastName string) (*models.Profile, error) {
	profile, err := r.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = firstName
	profile.LastName = lastName
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile for account %d: %w", accountID, err)
	}
	return profile, nil
}

func (r *userPostgreSQL) DeleteAccount(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Account{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
