package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// ErrResetNotFound is returned when no reset record exists for an email.
var ErrResetNotFound = errors.New("password reset not found")

// PasswordResetRepository stores the single active reset record per email.
type PasswordResetRepository interface {
	// FindByEmail retrieves the active reset record for an email.
	FindByEmail(ctx context.Context, email string) (*entity.PasswordReset, error)

	// Replace deletes any prior record for the email and stores the new one.
	Replace(ctx context.Context, reset *entity.PasswordReset) error

	// DeleteByEmail removes the record for an email. Deleting a missing
	// record is not an error, which makes expiry cleanup idempotent.
	DeleteByEmail(ctx context.Context, email string) error
}
