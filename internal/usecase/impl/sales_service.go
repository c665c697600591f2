package impl

import (
	"context"
	"log/slog"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	salesPageSize   = 10
	salesReportDays = 30
	topClientsLimit = 5
)

// salesService implements the SalesUsecase interface.
type salesService struct {
	purchaseRepo repository.PurchaseRepository
	logger       *slog.Logger
}

// SalesServiceParams holds dependencies for SalesService, injected by Fx.
type SalesServiceParams struct {
	fx.In

	PurchaseRepo repository.PurchaseRepository
	Logger       *slog.Logger
}

// NewSalesService is the constructor for salesService.
func NewSalesService(params SalesServiceParams) usecase.SalesUsecase {
	return &salesService{
		purchaseRepo: params.PurchaseRepo,
		logger:       params.Logger,
	}
}

func (srv *salesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSales returns one page of purchases joined with their clients, newest
// first, optionally filtered by client name or email.
func (srv *salesService) ListSales(ctx context.Context, input *usecase.ListSalesInput) (*usecase.ListSalesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	result, err := srv.purchaseRepo.ListSales(ctx, repository.SalesFilter{
		Search:  input.Search,
		Page:    page,
		PerPage: salesPageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return &usecase.ListSalesOutput{
		Sales:   result.Sales,
		Total:   result.Total,
		Page:    page,
		PerPage: salesPageSize,
	}, nil
}

// GetSale returns one purchase joined with its client.
func (srv *salesService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := srv.purchaseRepo.FindSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to load sale")
	}

	return sale, nil
}

// Report assembles the three blocks of the reports view: thirty days of
// per-day figures, the five most frequent clients, and the overall summary.
func (srv *salesService) Report(ctx context.Context) (*usecase.SalesReportOutput, error) {
	srv.log(ctx).Debug("Building sales report")

	daily, err := srv.purchaseRepo.SalesByDay(ctx, salesReportDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily sales")
	}

	top, err := srv.purchaseRepo.TopClients(ctx, topClientsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank top clients")
	}

	summary, err := srv.purchaseRepo.Summary(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sales summary")
	}

	return &usecase.SalesReportOutput{
		Daily:      daily,
		TopClients: top,
		Summary:    summary,
	}, nil
}
