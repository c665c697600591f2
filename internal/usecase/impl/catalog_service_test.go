package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	tipoRepo    *mockRepo.MockTipoRepository
	blobStore   *mockSvc.MockBlobStore
	service     usecase.CatalogUsecase
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	fx := catalogServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		tipoRepo:    mockRepo.NewMockTipoRepository(t),
		blobStore:   mockSvc.NewMockBlobStore(t),
	}

	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		TipoRepo:    fx.tipoRepo,
		BlobStore:   fx.blobStore,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("stores uploads under fresh keys", func(t *testing.T) {
		fx := createTestCatalogService(t)

		var storedKey string
		fx.blobStore.EXPECT().
			Write(ctx, mock.AnythingOfType("string"), mock.Anything).
			Run(func(_ context.Context, key string, _ io.Reader) {
				storedKey = key
			}).
			Return(nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ProductRepo().Return(fx.productRepo)
		runTransaction(fx.txManager, factory)

		fx.productRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			Return(nil)

		product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
			Name:  "Taza",
			Price: 10.00,
			Stock: 5,
			Uploads: []usecase.ImageUpload{
				{Filename: "Foto.PNG", Content: strings.NewReader("png-bytes")},
			},
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(storedKey, "productos/"))
		assert.True(t, strings.HasSuffix(storedKey, ".png"))
		require.Len(t, product.Images, 1)
		assert.Equal(t, storedKey, product.Images[0])
	})

	t.Run("removes stored uploads when the insert fails", func(t *testing.T) {
		fx := createTestCatalogService(t)

		var storedKey string
		fx.blobStore.EXPECT().
			Write(ctx, mock.AnythingOfType("string"), mock.Anything).
			Run(func(_ context.Context, key string, _ io.Reader) {
				storedKey = key
			}).
			Return(nil)
		fx.txManager.EXPECT().
			Execute(mock.Anything, mock.Anything).
			Return(repository.ErrTipoNotFound)
		fx.blobStore.EXPECT().
			Delete(ctx, mock.AnythingOfType("string")).
			RunAndReturn(func(_ context.Context, key string) error {
				assert.Equal(t, storedKey, key)

				return nil
			})

		tipoID := uuid.New()
		_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
			Name:   "Taza",
			Price:  10.00,
			TipoID: &tipoID,
			Uploads: []usecase.ImageUpload{
				{Filename: "foto.jpg", Content: strings.NewReader("jpg-bytes")},
			},
		})

		assert.ErrorIs(t, err, domainerrors.ErrTipoNotFound)
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("an explicit order replaces the list after removals and uploads", func(t *testing.T) {
		fx := createTestCatalogService(t)

		productID := uuid.New()
		current := &entity.Product{
			ID:     productID,
			Name:   "Taza",
			Images: []string{"productos/a.jpg", "productos/b.jpg"},
		}

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ProductRepo().Return(fx.productRepo)
		runTransaction(fx.txManager, factory)

		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(current, nil)

		var saved *entity.Product
		fx.productRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(_ context.Context, product *entity.Product) {
				saved = product
			}).
			Return(nil)

		// Only the removed entry loses its file, even though the explicit
		// order reinstates its path in the list.
		fx.blobStore.EXPECT().Delete(ctx, "productos/a.jpg").Return(nil)

		newOrder := []string{"productos/b.jpg", "productos/a.jpg"}
		updated, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
			ImagesToRemove: []string{"a.jpg"},
			NewOrder:       newOrder,
		})

		require.NoError(t, err)
		assert.Equal(t, newOrder, updated.Images)
		require.NotNil(t, saved)
		assert.Equal(t, newOrder, saved.Images)
	})

	t.Run("fresh uploads append to the kept entries", func(t *testing.T) {
		fx := createTestCatalogService(t)

		productID := uuid.New()
		current := &entity.Product{
			ID:     productID,
			Name:   "Taza",
			Images: []string{"productos/a.jpg"},
		}

		var storedKey string
		fx.blobStore.EXPECT().
			Write(ctx, mock.AnythingOfType("string"), mock.Anything).
			Run(func(_ context.Context, key string, _ io.Reader) {
				storedKey = key
			}).
			Return(nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ProductRepo().Return(fx.productRepo)
		runTransaction(fx.txManager, factory)

		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(current, nil)
		fx.productRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Product")).
			Return(nil)

		updated, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
			NewUploads: []usecase.ImageUpload{
				{Filename: "nueva.jpg", Content: strings.NewReader("jpg-bytes")},
			},
		})

		require.NoError(t, err)
		require.Len(t, updated.Images, 2)
		assert.Equal(t, "productos/a.jpg", updated.Images[0])
		assert.Equal(t, storedKey, updated.Images[1])
	})

	t.Run("field updates apply without touching images", func(t *testing.T) {
		fx := createTestCatalogService(t)

		productID := uuid.New()
		current := &entity.Product{
			ID:     productID,
			Name:   "Taza",
			Price:  10.00,
			Images: []string{"productos/a.jpg"},
		}

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ProductRepo().Return(fx.productRepo)
		runTransaction(fx.txManager, factory)

		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(current, nil)
		fx.productRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Product")).
			Return(nil)

		newName := "Taza grande"
		newPrice := 12.50
		updated, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
			Name:  &newName,
			Price: &newPrice,
		})

		require.NoError(t, err)
		assert.Equal(t, "Taza grande", updated.Name)
		assert.InDelta(t, 12.50, updated.Price, 0.001)
		assert.Equal(t, []string{"productos/a.jpg"}, updated.Images)
	})

	t.Run("maps a missing product", func(t *testing.T) {
		fx := createTestCatalogService(t)

		productID := uuid.New()

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ProductRepo().Return(fx.productRepo)
		runTransaction(fx.txManager, factory)

		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the row and every owned image file", func(t *testing.T) {
		fx := createTestCatalogService(t)

		product := &entity.Product{
			ID:          uuid.New(),
			Name:        "Taza",
			Images:      []string{"productos/a.jpg", "productos/b.jpg"},
			LegacyImage: "vieja.jpg",
		}

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ProductRepo().Return(fx.productRepo)
		runTransaction(fx.txManager, factory)

		fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)
		fx.blobStore.EXPECT().Delete(ctx, "productos/a.jpg").Return(nil)
		fx.blobStore.EXPECT().Delete(ctx, "productos/b.jpg").Return(nil)
		fx.blobStore.EXPECT().Delete(ctx, "vieja.jpg").Return(nil)

		err := fx.service.DeleteProduct(ctx, product.ID)

		assert.NoError(t, err)
	})

	t.Run("maps a missing product", func(t *testing.T) {
		fx := createTestCatalogService(t)

		productID := uuid.New()
		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		err := fx.service.DeleteProduct(ctx, productID)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("maps a missing product", func(t *testing.T) {
		fx := createTestCatalogService(t)

		productID := uuid.New()
		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.GetProduct(ctx, productID)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestComposeImageList(t *testing.T) {
	t.Run("keeps order of survivors and appends additions", func(t *testing.T) {
		result, removed := composeImageList(
			[]string{"productos/a.jpg", "productos/b.jpg"},
			[]string{"a.jpg"},
			[]string{"productos/c.jpg"},
			nil,
		)

		assert.Equal(t, []string{"productos/b.jpg", "productos/c.jpg"}, result)
		assert.Equal(t, []string{"productos/a.jpg"}, removed)
	})

	t.Run("an explicit order wins outright", func(t *testing.T) {
		result, removed := composeImageList(
			[]string{"productos/a.jpg", "productos/b.jpg"},
			[]string{"a.jpg"},
			nil,
			[]string{"productos/b.jpg", "productos/a.jpg"},
		)

		assert.Equal(t, []string{"productos/b.jpg", "productos/a.jpg"}, result)
		assert.Equal(t, []string{"productos/a.jpg"}, removed)
	})

	t.Run("removal entries match by filename or full path", func(t *testing.T) {
		result, removed := composeImageList(
			[]string{"productos/a.jpg", "productos/b.jpg"},
			[]string{"productos/b.jpg"},
			nil,
			nil,
		)

		assert.Equal(t, []string{"productos/a.jpg"}, result)
		assert.Equal(t, []string{"productos/b.jpg"}, removed)
	})
}
