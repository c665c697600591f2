// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new client account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// LoginInput defines the data required for a client to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// UpdateProfileInput carries a field-wise profile update. Nil pointers leave
// the field untouched. Changing the password requires the current one.
type UpdateProfileInput struct {
	Name            *string
	Email           *string
	Phone           *string
	Address         *string
	City            *string
	State           *string
	PostalCode      *string
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful register or login.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Client       *entity.Client
}

// RefreshTokenOutput returns the renewed access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AccountUsecase defines the client-facing account operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, clientID uuid.UUID) error
	GetProfile(ctx context.Context, clientID uuid.UUID) (*entity.Client, error)
	UpdateProfile(ctx context.Context, clientID uuid.UUID, input *UpdateProfileInput) (*entity.Client, error)
}
