package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smith-legal/staff-portal/internal/models"
	"github.com/smith-legal/staff-portal/internal/repositories/postgres"
	"github.com/smith-legal/staff-portal/internal/validator"
)

// setupTestDB opens a private in-memory database with foreign keys enabled,
// so the ON DELETE CASCADE constraint behaves like production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Account{}, &models.Profile{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func newTestManager(t *testing.T) (ServiceManager, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	repo := postgres.NewRepository(db)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDefaultServiceManager(db, repo, log, validator.New()), db
}

func seedUser(t *testing.T, db *gorm.DB, password, firstName, lastName string) uint {
	t.Helper()

	dob, err := time.Parse(models.DateLayout, "1980-06-15")
	if err != nil {
		t.Fatalf("failed to parse seed date: %v", err)
	}

	account := &models.Account{Password: password}
	profile := &models.Profile{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: datatypes.Date(dob),
		Province:    "Gauteng",
		Gender:      "Other",
	}
	repo := postgres.NewUserPostgreSQL(db)
	if err := repo.Create(context.Background(), account, profile); err != nil {
		t.Fatalf("failed to seed user %s: %v", lastName, err)
	}
	return account.ID
}
