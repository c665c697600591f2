// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is the customer entity ("cliente"), distinct from any staff account.
// It is both the admin-managed CRUD resource and the authenticated shopper.
type Client struct {
	ID           uuid.UUID // The Global Unique Identifier for the client.
	Name         string    // Display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; never exposed through the API.
	Phone        string    // Optional contact phone.
	Address      string    // Optional street address.
	City         string
	State        string
	PostalCode   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
