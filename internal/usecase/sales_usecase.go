package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ListSalesInput filters and pages the sales listing.
type ListSalesInput struct {
	Search string
	Page   int
}

// ListSalesOutput is one page of sales with paging metadata.
type ListSalesOutput struct {
	Sales   []*entity.Sale
	Total   int64
	Page    int
	PerPage int
}

// SalesReportOutput bundles the three blocks of the reports view.
type SalesReportOutput struct {
	Daily      []*entity.DailySales
	TopClients []*entity.TopClient
	Summary    *entity.SalesSummary
}

// SalesUsecase defines the sales listing and reporting operations.
type SalesUsecase interface {
	ListSales(ctx context.Context, input *ListSalesInput) (*ListSalesOutput, error)
	GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Report(ctx context.Context) (*SalesReportOutput, error)
}
