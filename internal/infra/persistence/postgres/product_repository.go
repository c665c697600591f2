package postgres

import (
	"context"
	"encoding/json"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product with its tipo preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Tipo").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// List retrieves every product with tipos preloaded, newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Tipo").
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Tipo").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTipoNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product, including its image collection.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"stock":       productM.Stock,
			"images":      productM.Images,
			"image":       productM.LegacyImage,
			"tipo_id":     productM.TipoID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrTipoNotFound
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// tipoRepository implements the repository.TipoRepository interface.
type tipoRepository struct {
	db *gorm.DB
}

// NewTipoRepository is the constructor for tipoRepository.
func NewTipoRepository(db *gorm.DB) repository.TipoRepository {
	return &tipoRepository{
		db: db,
	}
}

// List retrieves every tipo ordered by name.
func (repo *tipoRepository) List(ctx context.Context) ([]*entity.Tipo, error) {
	var tipoModels []*model.TipoModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&tipoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tipos")
	}

	tipos := make([]*entity.Tipo, 0, len(tipoModels))
	for _, tipoM := range tipoModels {
		tipos = append(tipos, toTipoDomain(tipoM))
	}

	return tipos, nil
}

// FindByID retrieves a single tipo.
func (repo *tipoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tipo, error) {
	var tipoM model.TipoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tipoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTipoNotFound
		}

		return nil, errors.Wrap(err, "failed to find tipo by ID")
	}

	return toTipoDomain(&tipoM), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity,
// decoding the JSON image collection.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	if data == nil {
		return nil, nil
	}

	var images []string
	if len(data.Images) > 0 {
		if err := json.Unmarshal(data.Images, &images); err != nil {
			return nil, errors.Wrap(err, "failed to decode product images")
		}
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		TipoID:      data.TipoID,
		Tipo:        toTipoDomain(data.Tipo),
		Images:      images,
		LegacyImage: data.LegacyImage,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
// An empty collection is stored as an empty JSON array, never SQL NULL.
func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	if data == nil {
		return nil, nil
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product images")
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		TipoID:      data.TipoID,
		Images:      datatypes.JSON(raw),
		LegacyImage: data.LegacyImage,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// toTipoDomain converts a GORM TipoModel to a domain Tipo entity.
func toTipoDomain(data *model.TipoModel) *entity.Tipo {
	if data == nil {
		return nil
	}

	return &entity.Tipo{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
