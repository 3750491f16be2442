package services

import "errors"

// PrimaryAdminID is the account permitted to delete users. There is no role
// table; account 1 is the primary administrator by convention, and the
// facilitator flag on profiles has nothing to do with authorization.
const PrimaryAdminID uint = 1

var (
	// ErrUserNotFound indicates the referenced account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrValidationFailed indicates a malformed or out-of-range request.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidCredentials is returned for every authentication failure.
	// An unknown surname and a wrong password are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid surname or password")

	// ErrPermissionDenied indicates the caller is not the primary administrator.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSelfDelete indicates the administrator tried to delete its own account.
	ErrSelfDelete = errors.New("cannot delete own administrator account")
)
