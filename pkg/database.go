package pkg

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smith-legal/staff-portal/internal/config"
	"github.com/smith-legal/staff-portal/internal/models"
)

// InitDatabase opens the relational store and creates the schema.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Account{}, &models.Profile{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// SeedPrimaryAdmin creates the primary administrator (account id 1) when the
// users table is empty. Deletion is gated on that account existing, so a
// fresh install would otherwise be permanently read-only.
func SeedPrimaryAdmin(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	dob, err := time.Parse(models.DateLayout, "1970-01-01")
	if err != nil {
		return fmt.Errorf("failed to parse seed date: %w", err)
	}

	account := &models.Account{Password: cfg.AdminPassword}
	profile := &models.Profile{
		FirstName:   cfg.AdminFirstName,
		LastName:    cfg.AdminLastName,
		DateOfBirth: datatypes.Date(dob),
		Province:    "Gauteng",
		Gender:      "Other",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed primary administrator: %w", err)
	}

	logger.Info("Primary administrator seeded", "user_id", account.ID, "surname", profile.LastName)
	return nil
}
