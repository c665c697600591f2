package usecase

import (
	"context"
	"io"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ImageUpload is one uploaded image file. Filename is the client-supplied
// name, used only to derive the stored key's extension.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	TipoID      *uuid.UUID
	Uploads     []ImageUpload
}

// UpdateProductInput carries a field-wise product update plus the three image
// collection operations, which compose in a single request: stored entries
// named in ImagesToRemove are dropped and their blobs deleted, NewUploads are
// stored and appended, and a non-nil NewOrder then replaces the list outright.
type UpdateProductInput struct {
	Name           *string
	Description    *string
	Price          *float64
	Stock          *int
	TipoID         *uuid.UUID
	ImagesToRemove []string
	NewUploads     []ImageUpload
	NewOrder       []string
}

// CatalogUsecase defines the product catalog operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListTipos(ctx context.Context) ([]*entity.Tipo, error)
}
