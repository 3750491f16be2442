package repositories

import "context"

// Repository is the aggregate storage interface handed to services.
type Repository interface {
	User() UserRepository

	// WithTransaction executes fn against a repository bound to a single
	// database transaction; returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error
}
