package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product lookup matches no row.
var ErrProductNotFound = errors.New("product not found")

// ErrTipoNotFound is returned when a category lookup matches no row.
var ErrTipoNotFound = errors.New("tipo not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product with its tipo preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves every product with tipos preloaded.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product, including its image collection.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TipoRepository defines read operations for product categories.
type TipoRepository interface {
	// List retrieves every tipo ordered by name.
	List(ctx context.Context) ([]*entity.Tipo, error)

	// FindByID retrieves a single tipo.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tipo, error)
}
