package impl

import (
	"context"
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

type clientServiceFixtures struct {
	txManager  *mockRepo.MockTransactionManager
	clientRepo *mockRepo.MockClientRepository
	hasher     *mockSvc.MockPasswordHasher
	service    usecase.ClientUsecase
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	t.Helper()

	fx := clientServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		clientRepo: mockRepo.NewMockClientRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
	}

	fx.service = NewClientService(ClientServiceParams{
		TxManager:  fx.txManager,
		ClientRepo: fx.clientRepo,
		Hasher:     fx.hasher,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password before storing", func(t *testing.T) {
		fx := createTestClientService(t)

		fx.hasher.EXPECT().ValidatePasswordStrength("S3gura!pass").Return(nil)
		fx.hasher.EXPECT().Hash("S3gura!pass").Return("hashed", nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(fx.clientRepo)
		runTransaction(fx.txManager, factory)

		fx.clientRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Client")).
			RunAndReturn(func(_ context.Context, client *entity.Client) error {
				assert.Equal(t, "hashed", client.PasswordHash)

				return nil
			})

		client, err := fx.service.CreateClient(ctx, &usecase.CreateClientInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "S3gura!pass",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana", client.Name)
	})

	t.Run("surfaces a duplicate email", func(t *testing.T) {
		fx := createTestClientService(t)

		fx.hasher.EXPECT().ValidatePasswordStrength("S3gura!pass").Return(nil)
		fx.hasher.EXPECT().Hash("S3gura!pass").Return("hashed", nil)
		fx.txManager.EXPECT().
			Execute(mock.Anything, mock.Anything).
			Return(domainerrors.ErrClientAlreadyExists)

		_, err := fx.service.CreateClient(ctx, &usecase.CreateClientInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "S3gura!pass",
		})

		assert.ErrorIs(t, err, domainerrors.ErrClientAlreadyExists)
	})
}

func TestClientService_UpdateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("a non-empty password is re-hashed", func(t *testing.T) {
		fx := createTestClientService(t)

		client := &entity.Client{ID: uuid.New(), Name: "Ana", PasswordHash: "old-hash"}

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(fx.clientRepo)
		runTransaction(fx.txManager, factory)

		fx.clientRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.hasher.EXPECT().ValidatePasswordStrength("Nuev4!pass").Return(nil)
		fx.hasher.EXPECT().Hash("Nuev4!pass").Return("new-hash", nil)
		fx.clientRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Client")).
			Return(nil)

		updated, err := fx.service.UpdateClient(ctx, client.ID, &usecase.UpdateClientInput{
			Password: "Nuev4!pass",
		})

		require.NoError(t, err)
		assert.Equal(t, "new-hash", updated.PasswordHash)
		assert.Equal(t, "Ana", updated.Name)
	})

	t.Run("maps a missing client", func(t *testing.T) {
		fx := createTestClientService(t)

		clientID := uuid.New()

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(fx.clientRepo)
		runTransaction(fx.txManager, factory)

		fx.clientRepo.EXPECT().FindByID(ctx, clientID).Return(nil, repository.ErrClientNotFound)

		_, err := fx.service.UpdateClient(ctx, clientID, &usecase.UpdateClientInput{})

		assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
	})
}

func TestClientService_DeleteClient(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes through the transaction", func(t *testing.T) {
		fx := createTestClientService(t)

		clientID := uuid.New()

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(fx.clientRepo)
		runTransaction(fx.txManager, factory)

		fx.clientRepo.EXPECT().Delete(ctx, clientID).Return(nil)

		assert.NoError(t, fx.service.DeleteClient(ctx, clientID))
	})
}
