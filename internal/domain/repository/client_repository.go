// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClientNotFound is a domain-specific error returned when a client is not found.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the standard operations for client persistence.
// The application layer depends on this interface, not the concrete implementation.
type ClientRepository interface {
	// FindByID retrieves a single client by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindByEmail retrieves a single client by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)

	// List retrieves every client, newest first.
	List(ctx context.Context) ([]*entity.Client, error)

	// Create persists a new client entity to the storage.
	Create(ctx context.Context, client *entity.Client) error

	// Update modifies an existing client entity in the storage.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
