// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// FindByID retrieves a single client by their unique ID.
func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// FindByEmail retrieves a single client by their email address.
func (repo *clientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by email")
	}

	return toClientDomain(&clientM), nil
}

// List retrieves every client, newest first.
func (repo *clientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []*model.ClientModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// Create persists a new client entity to the storage.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrClientAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required client information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	// Update the entity with generated values
	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

// Update modifies an existing client entity in the storage.
func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":        clientM.Name,
			"email":       clientM.Email,
			"password":    clientM.PasswordHash,
			"phone":       clientM.Phone,
			"address":     clientM.Address,
			"city":        clientM.City,
			"state":       clientM.State,
			"postal_code": clientM.PostalCode,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrClientAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// Delete removes a client by ID.
func (repo *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromClientDomain converts a domain Client entity to a GORM ClientModel.
func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	return &model.ClientModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Address:      data.Address,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
