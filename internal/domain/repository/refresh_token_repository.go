package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token lookup matches no row.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists session credentials for clients.
type RefreshTokenRepository interface {
	// Create stores a new refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a token by its hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByClient revokes every token belonging to a client.
	DeleteByClient(ctx context.Context, clientID uuid.UUID) error

	// DeleteExpired removes tokens past their expiry, returning the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
