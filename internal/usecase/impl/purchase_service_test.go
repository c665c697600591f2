package impl

import (
	"context"
	"testing"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	clientRepo   *mockRepo.MockClientRepository
	invoiceStore *mockSvc.MockPendingInvoiceStore
	publisher    *mockSvc.MockEventPublisher
	mailer       *mockSvc.MockMailer
	service      usecase.PurchaseUsecase
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	t.Helper()

	fx := purchaseServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
		clientRepo:   mockRepo.NewMockClientRepository(t),
		invoiceStore: mockSvc.NewMockPendingInvoiceStore(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		mailer:       mockSvc.NewMockMailer(t),
	}

	fx.service = NewPurchaseService(PurchaseServiceParams{
		TxManager:    fx.txManager,
		ProductRepo:  fx.productRepo,
		PurchaseRepo: fx.purchaseRepo,
		ClientRepo:   fx.clientRepo,
		InvoiceStore: fx.invoiceStore,
		Publisher:    fx.publisher,
		Mailer:       fx.mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

// runTransaction wires the transaction manager mock so the callback runs
// against the given repository factory.
func runTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestPurchaseService_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes prices and sums subtotals", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		taza := &entity.Product{
			ID:     uuid.New(),
			Name:   "Taza",
			Price:  10.00,
			Images: []string{"productos/taza.jpg"},
		}
		plato := &entity.Product{
			ID:    uuid.New(),
			Name:  "Plato",
			Price: 5.00,
		}

		fx.productRepo.EXPECT().FindByID(ctx, taza.ID).Return(taza, nil)
		fx.productRepo.EXPECT().FindByID(ctx, plato.ID).Return(plato, nil)

		var saved *entity.PendingInvoice
		fx.invoiceStore.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.PendingInvoice")).
			Run(func(_ context.Context, invoice *entity.PendingInvoice) {
				saved = invoice
			}).
			Return("aabbccdd00112233aabbccdd00112233", nil)

		output, err := fx.service.Preview(ctx, &usecase.PreviewInput{
			Items: []usecase.PreviewItemInput{
				{ProductID: taza.ID, Quantity: 2},
				{ProductID: plato.ID, Quantity: 1},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "aabbccdd00112233aabbccdd00112233", output.Token)
		assert.InDelta(t, 25.00, output.Total, 0.001)
		require.Len(t, output.Items, 2)
		assert.Equal(t, "Taza", output.Items[0].Name)
		assert.InDelta(t, 10.00, output.Items[0].UnitPrice, 0.001)
		assert.Equal(t, 2, output.Items[0].Quantity)
		assert.InDelta(t, 20.00, output.Items[0].Subtotal, 0.001)
		assert.Equal(t, "http://localhost:8080/storage/productos/taza.jpg", output.Items[0].ImageURL)
		assert.InDelta(t, 5.00, output.Items[1].Subtotal, 0.001)
		assert.NotEmpty(t, output.Date)

		require.NotNil(t, saved)
		assert.InDelta(t, 25.00, saved.Total, 0.001)
		assert.Len(t, saved.Items, 2)
	})

	t.Run("drops unknown products and bad quantities", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		known := &entity.Product{ID: uuid.New(), Name: "Taza", Price: 10.00}
		unknownID := uuid.New()

		fx.productRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
		fx.productRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrProductNotFound)
		fx.invoiceStore.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.PendingInvoice")).
			Return("aabbccdd00112233aabbccdd00112233", nil)

		output, err := fx.service.Preview(ctx, &usecase.PreviewInput{
			Items: []usecase.PreviewItemInput{
				{ProductID: known.ID, Quantity: 1},
				{ProductID: unknownID, Quantity: 3},
				{ProductID: uuid.New(), Quantity: 0},
			},
		})

		require.NoError(t, err)
		require.Len(t, output.Items, 1)
		assert.InDelta(t, 10.00, output.Total, 0.001)
	})

	t.Run("rejects a preview with no valid items", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		unknownID := uuid.New()
		fx.productRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.Preview(ctx, &usecase.PreviewInput{
			Items: []usecase.PreviewItemInput{{ProductID: unknownID, Quantity: 1}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrEmptyInvoice)
	})

	t.Run("attaches the client when known", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		product := &entity.Product{ID: uuid.New(), Name: "Taza", Price: 10.00}
		client := &entity.Client{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.invoiceStore.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.PendingInvoice")).
			Return("aabbccdd00112233aabbccdd00112233", nil)
		fx.clientRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)

		output, err := fx.service.Preview(ctx, &usecase.PreviewInput{
			Items:    []usecase.PreviewItemInput{{ProductID: product.ID, Quantity: 1}},
			ClientID: &client.ID,
		})

		require.NoError(t, err)
		require.NotNil(t, output.Client)
		assert.Equal(t, "Ana", output.Client.Name)
	})
}

func TestPurchaseService_Confirm(t *testing.T) {
	ctx := context.Background()
	token := "aabbccdd00112233aabbccdd00112233"

	invoiceItems := []entity.PurchaseItem{
		{ProductID: uuid.New(), Name: "Taza", UnitPrice: 10.00, Quantity: 2, Subtotal: 20.00},
		{ProductID: uuid.New(), Name: "Plato", UnitPrice: 5.00, Quantity: 1, Subtotal: 5.00},
	}

	t.Run("commits an anonymous purchase and discards the invoice", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		fx.invoiceStore.EXPECT().Claim(ctx, token).Return(&entity.PendingInvoice{
			Items: invoiceItems,
			Total: 25.00,
		}, nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().PurchaseRepo().Return(fx.purchaseRepo)
		runTransaction(fx.txManager, factory)

		fx.purchaseRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Purchase")).
			Return(nil)
		fx.invoiceStore.EXPECT().Discard(ctx, token).Return(nil)

		output, err := fx.service.Confirm(ctx, &usecase.ConfirmInput{Token: token})

		require.NoError(t, err)
		assert.InDelta(t, 25.00, output.Purchase.Total, 0.001)
		assert.Len(t, output.Purchase.Items, 2)
		assert.Nil(t, output.Purchase.ClientID)
	})

	t.Run("publishes the confirmation event for a known client", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		client := &entity.Client{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}

		fx.invoiceStore.EXPECT().Claim(ctx, token).Return(&entity.PendingInvoice{
			Items:    invoiceItems,
			Total:    25.00,
			ClientID: &client.ID,
		}, nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().PurchaseRepo().Return(fx.purchaseRepo)
		runTransaction(fx.txManager, factory)

		fx.purchaseRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Purchase")).
			Return(nil)
		fx.invoiceStore.EXPECT().Discard(ctx, token).Return(nil)
		fx.clientRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)

		var published *service.PurchaseEvent
		fx.publisher.EXPECT().
			PublishPurchaseEvent(ctx, mock.AnythingOfType("*service.PurchaseEvent")).
			Run(func(_ context.Context, event *service.PurchaseEvent) {
				published = event
			}).
			Return(nil)

		_, err := fx.service.Confirm(ctx, &usecase.ConfirmInput{Token: token})

		require.NoError(t, err)
		require.NotNil(t, published)
		assert.Equal(t, "ana@example.com", published.Email)
		assert.InDelta(t, 25.00, published.Total, 0.001)
	})

	t.Run("maps a missing invoice", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		fx.invoiceStore.EXPECT().Claim(ctx, token).Return(nil, service.ErrPendingInvoiceNotFound)

		_, err := fx.service.Confirm(ctx, &usecase.ConfirmInput{Token: token})

		assert.ErrorIs(t, err, domainerrors.ErrInvoiceNotFound)
	})

	t.Run("maps an expired invoice", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		fx.invoiceStore.EXPECT().Claim(ctx, token).Return(nil, service.ErrPendingInvoiceExpired)

		_, err := fx.service.Confirm(ctx, &usecase.ConfirmInput{Token: token})

		assert.ErrorIs(t, err, domainerrors.ErrInvoiceExpired)
	})

	t.Run("releases the claim when the commit fails", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		fx.invoiceStore.EXPECT().Claim(ctx, token).Return(&entity.PendingInvoice{
			Items: invoiceItems,
			Total: 25.00,
		}, nil)
		fx.txManager.EXPECT().
			Execute(mock.Anything, mock.Anything).
			Return(errors.New("connection reset"))
		fx.invoiceStore.EXPECT().Release(ctx, token).Return(nil)

		_, err := fx.service.Confirm(ctx, &usecase.ConfirmInput{Token: token})

		assert.Error(t, err)
	})
}

func TestPurchaseService_ResendInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the invoice mail with absolute image links", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		client := &entity.Client{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
		purchase := &entity.Purchase{
			ID:       uuid.New(),
			ClientID: &client.ID,
			Items: []entity.PurchaseItem{
				{Name: "Taza", UnitPrice: 10.00, Quantity: 1, Subtotal: 10.00, ImageURL: "storage/productos/taza.jpg"},
			},
			Total:     10.00,
			CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		}

		fx.purchaseRepo.EXPECT().FindByID(ctx, purchase.ID).Return(purchase, nil)
		fx.clientRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)

		var sent *service.InvoiceMail
		fx.mailer.EXPECT().
			SendInvoice(ctx, mock.AnythingOfType("*service.InvoiceMail")).
			Run(func(_ context.Context, mail *service.InvoiceMail) {
				sent = mail
			}).
			Return(nil)

		err := fx.service.ResendInvoice(ctx, &usecase.ResendInvoiceInput{
			PurchaseID: purchase.ID,
			Email:      "otro@example.com",
		})

		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.Equal(t, "otro@example.com", sent.To)
		assert.Equal(t, "Ana", sent.ClientName)
		assert.Equal(t, "2026-03-14", sent.Date)
		require.Len(t, sent.Items, 1)
		assert.Equal(t, "http://localhost:8080/storage/productos/taza.jpg", sent.Items[0].ImageURL)
	})

	t.Run("maps a missing purchase", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		purchaseID := uuid.New()
		fx.purchaseRepo.EXPECT().FindByID(ctx, purchaseID).Return(nil, repository.ErrPurchaseNotFound)

		err := fx.service.ResendInvoice(ctx, &usecase.ResendInvoiceInput{
			PurchaseID: purchaseID,
			Email:      "otro@example.com",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPurchaseNotFound)
	})
}
