package impl

import (
	"context"
	"log/slog"

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

// clientService implements the ClientUsecase interface, the admin CRUD
// surface over client accounts.
type clientService struct {
	txManager  repository.TransactionManager
	clientRepo repository.ClientRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ClientRepo repository.ClientRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		txManager:  params.TxManager,
		clientRepo: params.ClientRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListClients returns every client, newest first.
func (srv *clientService) ListClients(ctx context.Context) ([]*entity.Client, error) {
	clients, err := srv.clientRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

// GetClient returns a single client.
func (srv *clientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := srv.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to load client")
	}

	return client, nil
}

// CreateClient creates a client on behalf of the admin.
func (srv *clientService) CreateClient(ctx context.Context, input *usecase.CreateClientInput) (*entity.Client, error) {
	srv.log(ctx).Info("Creating client", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newClient := &entity.Client{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ClientRepo().Create(ctx, newClient)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create client", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	return newClient, nil
}

// UpdateClient applies a field-wise update to an existing client.
func (srv *clientService) UpdateClient(ctx context.Context, id uuid.UUID, input *usecase.UpdateClientInput) (*entity.Client, error) {
	srv.log(ctx).Info("Updating client", slog.Any("clientID", id))

	var updated *entity.Client
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		client, err := clientRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to load client for update")
		}

		if input.Password != "" {
			if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
				return err
			}
			hashed, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			client.PasswordHash = hashed
		}

		applyStringField(&client.Name, input.Name)
		applyStringField(&client.Email, input.Email)
		applyStringField(&client.Phone, input.Phone)
		applyStringField(&client.Address, input.Address)
		applyStringField(&client.City, input.City)
		applyStringField(&client.State, input.State)
		applyStringField(&client.PostalCode, input.PostalCode)

		if err := clientRepo.Update(ctx, client); err != nil {
			return errors.Wrap(err, "failed to update client")
		}

		updated = client

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteClient removes a client.
func (srv *clientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting client", slog.Any("clientID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ClientRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return domainerrors.ErrClientNotFound
		}

		return errors.Wrap(err, "failed to delete client")
	}

	return nil
}
