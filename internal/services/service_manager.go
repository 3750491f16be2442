package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/smith-legal/staff-portal/internal/repositories"
	"github.com/smith-legal/staff-portal/internal/validator"
)

// ServiceManager bundles all services behind one dependency for the handlers.
type ServiceManager interface {
	Auth() AuthService
	User() UserService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type defaultServiceManager struct {
	db     *gorm.DB
	logger *slog.Logger

	auth   AuthService
	user   UserService
	export ExportService
}

// NewDefaultServiceManager wires every service against the given repository.
func NewDefaultServiceManager(db *gorm.DB, repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	return &defaultServiceManager{
		db:     db,
		logger: logger,
		auth:   NewAuthService(repo, db, logger),
		user:   NewUserService(repo, db, logger, validator),
		export: NewExportService(repo, logger),
	}
}

func (m *defaultServiceManager) Auth() AuthService     { return m.auth }
func (m *defaultServiceManager) User() UserService     { return m.user }
func (m *defaultServiceManager) Export() ExportService { return m.export }

// Initialize verifies the storage connection is usable.
func (m *defaultServiceManager) Initialize(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Shutdown releases service resources. Nothing is held beyond the database
// connection, which main closes.
func (m *defaultServiceManager) Shutdown(ctx context.Context) error {
	m.logger.Info("Services shut down")
	return nil
}
