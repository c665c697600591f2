package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateClientInput defines the data required for the admin to create a client.
type CreateClientInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Address    string
	City       string
	State      string
	PostalCode string
}

// UpdateClientInput carries a field-wise client update. Nil pointers leave
// the field untouched; a non-empty Password is re-hashed.
type UpdateClientInput struct {
	Name       *string
	Email      *string
	Password   string
	Phone      *string
	Address    *string
	City       *string
	State      *string
	PostalCode *string
}

// ClientUsecase defines the admin CRUD surface over client accounts.
type ClientUsecase interface {
	ListClients(ctx context.Context) ([]*entity.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
}
