package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseItem is a frozen snapshot of a product at purchase time. Later price
// or name changes never retroactively affect a committed purchase.
type PurchaseItem struct {
	ProductID uuid.UUID `json:"id"`
	Name      string    `json:"nombre"`
	UnitPrice float64   `json:"precio_unitario"`
	Quantity  int       `json:"cantidad"`
	Subtotal  float64   `json:"subtotal"`
	ImageURL  string    `json:"imagen"` // Absolute URL resolved at preview time.
}

// Purchase is a committed order ("compra"). ClientID is nil for anonymous
// checkout. Items and Total are immutable after creation.
type Purchase struct {
	ID        uuid.UUID
	ClientID  *uuid.UUID
	Items     []PurchaseItem
	Total     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PendingInvoice is the ephemeral server-side quote produced by preview and
// consumed by confirm. It lives outside the database, keyed by an opaque
// token, and expires TTL seconds after CreatedAt.
type PendingInvoice struct {
	Items     []PurchaseItem `json:"productos"`
	Total     float64        `json:"total"`
	ClientID  *uuid.UUID     `json:"client_id"`
	CreatedAt int64          `json:"created_at"` // Unix seconds.
}

// Sale is a purchase row joined with its client for the sales listing.
// Anonymous purchases carry empty client fields; the delivery layer labels
// them "Compra anónima".
type Sale struct {
	Purchase
	ClientName  string
	ClientEmail string
}

// DailySales aggregates purchases of a single day for the reports view.
type DailySales struct {
	Date    string
	Count   int64
	Revenue float64
}

// TopClient is a client ranked by number of purchases.
type TopClient struct {
	Name      string
	Email     string
	Purchases int64
	Spent     float64
}

// SalesSummary is the overall figures block of the reports view.
type SalesSummary struct {
	TotalSales   int64
	TotalRevenue float64
	AverageSale  float64
	LargestSale  float64
	SalesToday   int64
	RevenueToday float64
}
