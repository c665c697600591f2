package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item ("producto"). Images is an ordered collection of
// blob-store paths; the first entry is the primary image shown in listings.
// LegacyImage carries the single-image field of rows created before the
// collection existed and is only consulted when Images is empty.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Stock       int
	TipoID      *uuid.UUID // Optional category reference.
	Tipo        *Tipo      // Preloaded category, nil when TipoID is nil.
	Images      []string
	LegacyImage string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PrimaryImage returns the image path shown in listings, falling back to the
// legacy single-image field for old rows.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}

	return p.LegacyImage
}

// Tipo is a product category reference.
type Tipo struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
