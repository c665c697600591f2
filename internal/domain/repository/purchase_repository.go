package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPurchaseNotFound is returned when a purchase lookup matches no row.
var ErrPurchaseNotFound = errors.New("purchase not found")

// SalesFilter narrows the sales listing. Search matches client name or email;
// Page is 1-based with PerPage rows per page.
type SalesFilter struct {
	Search  string
	Page    int
	PerPage int
}

// SalesPage is one page of the sales listing plus the total row count.
type SalesPage struct {
	Sales []*entity.Sale
	Total int64
}

// PurchaseRepository defines operations for committed purchases and the
// aggregate queries behind the sales reports.
type PurchaseRepository interface {
	// Create persists a new purchase with its frozen line items.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByID retrieves a single purchase.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// FindSaleByID retrieves a purchase joined with its client.
	FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// ListSales retrieves one page of purchases joined with clients,
	// newest first, optionally filtered by client name or email.
	ListSales(ctx context.Context, filter SalesFilter) (*SalesPage, error)

	// SalesByDay aggregates count and revenue per day since the given cutoff.
	SalesByDay(ctx context.Context, days int) ([]*entity.DailySales, error)

	// TopClients ranks clients by purchase count, limited to the given size.
	TopClients(ctx context.Context, limit int) ([]*entity.TopClient, error)

	// Summary computes the overall sales figures.
	Summary(ctx context.Context) (*entity.SalesSummary, error)
}
