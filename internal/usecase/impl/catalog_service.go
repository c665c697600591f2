package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageKeyPrefix is the blob-store directory product images live under. It is
// also the public path segment below /storage/.
const imageKeyPrefix = "productos"

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	tipoRepo    repository.TipoRepository
	blobStore   service.BlobStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	TipoRepo    repository.TipoRepository
	BlobStore   service.BlobStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		tipoRepo:    params.TipoRepo,
		blobStore:   params.BlobStore,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns every product with its tipo preloaded.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct stores the uploaded images and creates the product with the
// stored keys as its ordered collection.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	storedKeys, err := srv.storeUploads(ctx, input.Uploads)
	if err != nil {
		return nil, err
	}

	newProduct := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		TipoID:      input.TipoID,
		Images:      storedKeys,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, newProduct)
	})
	if err != nil {
		// The product row never existed, clean up the stored uploads.
		srv.deleteBlobs(ctx, storedKeys)

		if errors.Is(err, repository.ErrTipoNotFound) {
			return nil, domainerrors.ErrTipoNotFound
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	return newProduct, nil
}

// UpdateProduct applies a field-wise update and the composable image
// collection operations: removal, upload, then explicit reorder.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", id))

	storedKeys, err := srv.storeUploads(ctx, input.NewUploads)
	if err != nil {
		return nil, err
	}

	var updated *entity.Product
	var removedKeys []string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for update")
		}

		applyStringField(&product.Name, input.Name)
		applyStringField(&product.Description, input.Description)
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.TipoID != nil {
			product.TipoID = input.TipoID
		}

		product.Images, removedKeys = composeImageList(product.Images, input.ImagesToRemove, storedKeys, input.NewOrder)

		if err := productRepo.Update(ctx, product); err != nil {
			if errors.Is(err, repository.ErrTipoNotFound) {
				return domainerrors.ErrTipoNotFound
			}

			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.deleteBlobs(ctx, storedKeys)

		return nil, err
	}

	// Blobs of removed entries go away only after the new list is durable.
	srv.deleteBlobs(ctx, removedKeys)

	return updated, nil
}

// DeleteProduct removes the product row and every image file it owned.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", id))

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product for deletion")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	keys := product.Images
	if product.LegacyImage != "" {
		keys = append(keys, product.LegacyImage)
	}
	srv.deleteBlobs(ctx, keys)

	return nil
}

// ListTipos returns every product category.
func (srv *catalogService) ListTipos(ctx context.Context) ([]*entity.Tipo, error) {
	tipos, err := srv.tipoRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tipos")
	}

	return tipos, nil
}

// storeUploads writes each upload into the blob store under a fresh key,
// keeping the original extension. On failure, already stored keys are removed.
func (srv *catalogService) storeUploads(ctx context.Context, uploads []usecase.ImageUpload) ([]string, error) {
	keys := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		key := imageKeyPrefix + "/" + uuid.NewString() + strings.ToLower(path.Ext(upload.Filename))
		if err := srv.blobStore.Write(ctx, key, upload.Content); err != nil {
			srv.deleteBlobs(ctx, keys)

			return nil, errors.Wrapf(err, "failed to store upload %s", upload.Filename)
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// deleteBlobs removes the given keys, logging failures instead of returning
// them. A leaked file never fails the request that caused it.
func (srv *catalogService) deleteBlobs(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := srv.blobStore.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete image blob", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// composeImageList applies the three collection operations in order: drop
// entries whose filename matches a removal, append the freshly stored keys,
// and let an explicit new order replace the list outright. It returns the
// resulting list and the keys whose files should be deleted.
func composeImageList(current, toRemove, added, newOrder []string) (result, removed []string) {
	result = make([]string, 0, len(current)+len(added))
	for _, key := range current {
		if matchesAny(key, toRemove) {
			removed = append(removed, key)

			continue
		}
		result = append(result, key)
	}

	result = append(result, added...)

	if newOrder != nil {
		result = newOrder
	}

	return result, removed
}

// matchesAny reports whether the stored key names the same file as any of the
// given entries. Entries may be bare filenames or full paths.
func matchesAny(key string, entries []string) bool {
	base := path.Base(key)
	for _, entry := range entries {
		if key == entry || base == path.Base(entry) {
			return true
		}
	}

	return false
}
