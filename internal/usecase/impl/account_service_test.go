package impl

import (
	"context"
	"testing"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	txManager        *mockRepo.MockTransactionManager
	clientRepo       *mockRepo.MockClientRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	service          usecase.AccountUsecase
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	fx := accountServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		clientRepo:       mockRepo.NewMockClientRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAccountService(AccountServiceParams{
		TxManager:        fx.txManager,
		ClientRepo:       fx.clientRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Logger:           newDiscardLogger(),
	})

	return fx
}

// expectIssuedTokens wires the token mocks for a successful login/register.
func expectIssuedTokens(fx accountServiceFixtures, ctx context.Context) {
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID")).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account and logs it in", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.hasher.EXPECT().ValidatePasswordStrength("S3gura!pass").Return(nil)
		fx.hasher.EXPECT().Hash("S3gura!pass").Return("hashed", nil)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(fx.clientRepo)
		runTransaction(fx.txManager, factory)

		var created *entity.Client
		fx.clientRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Client")).
			Run(func(_ context.Context, client *entity.Client) {
				created = client
			}).
			Return(nil)

		expectIssuedTokens(fx, ctx)

		output, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "S3gura!pass",
		})

		require.NoError(t, err)
		assert.Equal(t, "access-token", output.AccessToken)
		assert.Equal(t, "refresh-token", output.RefreshToken)
		require.NotNil(t, created)
		assert.Equal(t, "hashed", created.PasswordHash)
	})

	t.Run("rejects a weak password before touching the database", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.hasher.EXPECT().
			ValidatePasswordStrength("123").
			Return(domainerrors.ErrPasswordStrength)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Email:    "ana@example.com",
			Password: "123",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()

	client := &entity.Client{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "stored-hash",
	}

	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.clientRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(client, nil)
		fx.hasher.EXPECT().Check("S3gura!pass", "stored-hash").Return(true)
		expectIssuedTokens(fx, ctx)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{
			Email:    "ana@example.com",
			Password: "S3gura!pass",
		})

		require.NoError(t, err)
		assert.Equal(t, "access-token", output.AccessToken)
		assert.Equal(t, client, output.Client)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.clientRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(client, nil)
		fx.hasher.EXPECT().Check("equivocada", "stored-hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{
			Email:    "ana@example.com",
			Password: "equivocada",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("hides whether the account exists", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.clientRepo.EXPECT().
			FindByEmail(ctx, "nadie@example.com").
			Return(nil, repository.ErrClientNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{
			Email:    "nadie@example.com",
			Password: "S3gura!pass",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	validToken := &jwt.Token{Claims: jwt.MapClaims{"sub": clientID.String()}}

	t.Run("issues a fresh access token and keeps the refresh token", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(validToken, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "refresh-hash").Return(&entity.RefreshToken{
			ClientID:  clientID,
			TokenHash: "refresh-hash",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		fx.tokenService.EXPECT().GenerateTokens(clientID).Return("new-access", "unused", nil)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(validToken, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().
			FindByTokenHash(ctx, "refresh-hash").
			Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("rejects an expired stored token", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(validToken, nil)
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "refresh-hash").Return(&entity.RefreshToken{
			ClientID:  clientID,
			TokenHash: "refresh-hash",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("rejects a token that fails validation", func(t *testing.T) {
		fx := createTestAccountService(t)

		fx.tokenService.EXPECT().
			ValidateRefreshToken("mangled").
			Return(nil, jwt.ErrTokenMalformed)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "mangled"})

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAccountService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes every session of the client", func(t *testing.T) {
		fx := createTestAccountService(t)

		clientID := uuid.New()
		fx.refreshTokenRepo.EXPECT().DeleteByClient(ctx, clientID).Return(nil)

		assert.NoError(t, fx.service.Logout(ctx, clientID))
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("changing the password requires the current one", func(t *testing.T) {
		fx := createTestAccountService(t)

		client := &entity.Client{ID: uuid.New(), PasswordHash: "stored-hash"}

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(fx.clientRepo)
		runTransaction(fx.txManager, factory)

		fx.clientRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.hasher.EXPECT().Check("equivocada", "stored-hash").Return(false)

		_, err := fx.service.UpdateProfile(ctx, client.ID, &usecase.UpdateProfileInput{
			CurrentPassword: "equivocada",
			NewPassword:     "Nuev4!pass",
		})

		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordMismatch)
	})

	t.Run("applies only the fields the update carries", func(t *testing.T) {
		fx := createTestAccountService(t)

		client := &entity.Client{
			ID:    uuid.New(),
			Name:  "Ana",
			Email: "ana@example.com",
			Phone: "555-0100",
		}

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(fx.clientRepo)
		runTransaction(fx.txManager, factory)

		fx.clientRepo.EXPECT().FindByID(ctx, client.ID).Return(client, nil)
		fx.clientRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Client")).
			Return(nil)

		newName := "Ana María"
		updated, err := fx.service.UpdateProfile(ctx, client.ID, &usecase.UpdateProfileInput{
			Name: &newName,
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana María", updated.Name)
		assert.Equal(t, "ana@example.com", updated.Email)
		assert.Equal(t, "555-0100", updated.Phone)
	})
}
