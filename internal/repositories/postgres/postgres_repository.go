package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/smith-legal/staff-portal/internal/repositories"
)

// PostgreSQLRepository implements the aggregate Repository interface on gorm.
type PostgreSQLRepository struct {
	db   *gorm.DB
	user repositories.UserRepository
}

// NewRepository creates the repository manager with all sub-repositories.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &PostgreSQLRepository{
		db:   db,
		user: NewUserPostgreSQL(db),
	}
}

// User returns the user repository.
func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

// WithTransaction executes fn within a database transaction.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgreSQLRepository{
			db:   tx,
			user: NewUserPostgreSQL(tx),
		})
	})
}
