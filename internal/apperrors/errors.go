// Package apperrors defines the error taxonomy shared by services,
// repositories and handlers. Services wrap these sentinels with context via
// fmt.Errorf and %w; handlers map them to HTTP statuses with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation covers malformed or missing input and constraint
	// violations, including references to entities that do not exist.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication covers missing, invalid or expired credentials and
	// failed logins. The login path returns the same message for an unknown
	// email and a wrong password so callers cannot enumerate accounts.
	ErrAuthentication = errors.New("invalid email or password")

	// ErrAuthorization means the caller is authenticated but lacks the role
	// or ownership required for the operation.
	ErrAuthorization = errors.New("not authorized")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a unique constraint (email, category name) would be
	// violated.
	ErrConflict = errors.New("already exists")
)
