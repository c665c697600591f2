package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type salesServiceFixtures struct {
	purchaseRepo *mockRepo.MockPurchaseRepository
	service      usecase.SalesUsecase
}

func createTestSalesService(t *testing.T) salesServiceFixtures {
	t.Helper()

	fx := salesServiceFixtures{
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
	}

	fx.service = NewSalesService(SalesServiceParams{
		PurchaseRepo: fx.purchaseRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestSalesService_ListSales(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps the page and applies the search filter", func(t *testing.T) {
		fx := createTestSalesService(t)

		fx.purchaseRepo.EXPECT().
			ListSales(ctx, repository.SalesFilter{Search: "ana", Page: 1, PerPage: 10}).
			Return(&repository.SalesPage{
				Sales: []*entity.Sale{{ClientName: "Ana"}},
				Total: 1,
			}, nil)

		output, err := fx.service.ListSales(ctx, &usecase.ListSalesInput{Search: "ana", Page: 0})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Page)
		assert.Equal(t, 10, output.PerPage)
		assert.EqualValues(t, 1, output.Total)
		require.Len(t, output.Sales, 1)
		assert.Equal(t, "Ana", output.Sales[0].ClientName)
	})

	t.Run("passes an explicit page through", func(t *testing.T) {
		fx := createTestSalesService(t)

		fx.purchaseRepo.EXPECT().
			ListSales(ctx, repository.SalesFilter{Page: 3, PerPage: 10}).
			Return(&repository.SalesPage{Total: 42}, nil)

		output, err := fx.service.ListSales(ctx, &usecase.ListSalesInput{Page: 3})

		require.NoError(t, err)
		assert.Equal(t, 3, output.Page)
		assert.EqualValues(t, 42, output.Total)
	})
}

func TestSalesService_GetSale(t *testing.T) {
	ctx := context.Background()

	t.Run("maps a missing sale", func(t *testing.T) {
		fx := createTestSalesService(t)

		saleID := uuid.New()
		fx.purchaseRepo.EXPECT().FindSaleByID(ctx, saleID).Return(nil, repository.ErrPurchaseNotFound)

		_, err := fx.service.GetSale(ctx, saleID)

		assert.ErrorIs(t, err, domainerrors.ErrPurchaseNotFound)
	})
}

func TestSalesService_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles daily figures, top clients and summary", func(t *testing.T) {
		fx := createTestSalesService(t)

		fx.purchaseRepo.EXPECT().SalesByDay(ctx, 30).Return([]*entity.DailySales{
			{Date: "2026-08-31", Count: 2, Revenue: 35.00},
		}, nil)
		fx.purchaseRepo.EXPECT().TopClients(ctx, 5).Return([]*entity.TopClient{
			{Name: "Ana", Email: "ana@example.com", Purchases: 7, Spent: 140.00},
		}, nil)
		fx.purchaseRepo.EXPECT().Summary(ctx).Return(&entity.SalesSummary{
			TotalSales:   9,
			TotalRevenue: 175.00,
			AverageSale:  19.44,
		}, nil)

		output, err := fx.service.Report(ctx)

		require.NoError(t, err)
		require.Len(t, output.Daily, 1)
		assert.Equal(t, "2026-08-31", output.Daily[0].Date)
		require.Len(t, output.TopClients, 1)
		assert.EqualValues(t, 7, output.TopClients[0].Purchases)
		assert.EqualValues(t, 9, output.Summary.TotalSales)
	})

	t.Run("fails when any block fails", func(t *testing.T) {
		fx := createTestSalesService(t)

		fx.purchaseRepo.EXPECT().SalesByDay(ctx, 30).Return(nil, assert.AnError)

		_, err := fx.service.Report(ctx)

		assert.Error(t, err)
	})
}
