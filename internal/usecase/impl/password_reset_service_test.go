package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

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

type passwordResetServiceFixtures struct {
	txManager  *mockRepo.MockTransactionManager
	clientRepo *mockRepo.MockClientRepository
	resetRepo  *mockRepo.MockPasswordResetRepository
	hasher     *mockSvc.MockPasswordHasher
	mailer     *mockSvc.MockMailer
	service    usecase.PasswordResetUsecase
}

func createTestPasswordResetService(t *testing.T) passwordResetServiceFixtures {
	t.Helper()

	fx := passwordResetServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		clientRepo: mockRepo.NewMockClientRepository(t),
		resetRepo:  mockRepo.NewMockPasswordResetRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
		mailer:     mockSvc.NewMockMailer(t),
	}

	fx.service = NewPasswordResetService(PasswordResetServiceParams{
		TxManager:  fx.txManager,
		ClientRepo: fx.clientRepo,
		ResetRepo:  fx.resetRepo,
		Hasher:     fx.hasher,
		Mailer:     fx.mailer,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestPasswordResetService_RequestReset(t *testing.T) {
	ctx := context.Background()
	email := "ana@example.com"

	t.Run("stores a hashed token and mails the code", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.clientRepo.EXPECT().
			FindByEmail(ctx, email).
			Return(&entity.Client{ID: uuid.New(), Email: email}, nil)

		var stored *entity.PasswordReset
		fx.resetRepo.EXPECT().
			Replace(ctx, mock.AnythingOfType("*entity.PasswordReset")).
			Run(func(_ context.Context, reset *entity.PasswordReset) {
				stored = reset
			}).
			Return(nil)

		var mailedCode string
		fx.mailer.EXPECT().
			SendResetCode(ctx, email, mock.AnythingOfType("string")).
			Run(func(_ context.Context, _ string, code string) {
				mailedCode = code
			}).
			Return(nil)

		output, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: email})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), mailedCode)
		assert.Equal(t, mailedCode, stored.Code)
		// Only the token digest hits the database.
		assert.Equal(t, sha256Hex(output.Token), stored.TokenHash)
		assert.NotEqual(t, output.Token, stored.TokenHash)
		// Debug builds with exposeCode echo the code for manual testing.
		assert.Equal(t, mailedCode, output.Code)
	})

	t.Run("a mail failure does not fail the request", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.clientRepo.EXPECT().
			FindByEmail(ctx, email).
			Return(&entity.Client{ID: uuid.New(), Email: email}, nil)
		fx.resetRepo.EXPECT().
			Replace(ctx, mock.AnythingOfType("*entity.PasswordReset")).
			Return(nil)
		fx.mailer.EXPECT().
			SendResetCode(ctx, email, mock.AnythingOfType("string")).
			Return(assert.AnError)

		output, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: email})

		require.NoError(t, err)
		assert.NotEmpty(t, output.Token)
	})

	t.Run("rejects an unknown account", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.clientRepo.EXPECT().
			FindByEmail(ctx, "nadie@example.com").
			Return(nil, repository.ErrClientNotFound)

		_, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "nadie@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
	})
}

func TestPasswordResetService_VerifyCode(t *testing.T) {
	ctx := context.Background()
	email := "ana@example.com"
	token := "cafecafe00112233cafecafe00112233cafecafe00112233cafecafe00112233"

	activeReset := func() *entity.PasswordReset {
		return &entity.PasswordReset{
			Email:     email,
			TokenHash: sha256Hex(token),
			Code:      "123456",
			CreatedAt: time.Now().Add(-5 * time.Minute),
		}
	}

	t.Run("echoes the token for a matching code", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.resetRepo.EXPECT().FindByEmail(ctx, email).Return(activeReset(), nil)

		output, err := fx.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
			Email: email,
			Code:  "123456",
			Token: token,
		})

		require.NoError(t, err)
		assert.Equal(t, token, output.Token)
	})

	t.Run("rejects a wrong code", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.resetRepo.EXPECT().FindByEmail(ctx, email).Return(activeReset(), nil)

		_, err := fx.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
			Email: email,
			Code:  "654321",
			Token: token,
		})

		assert.ErrorIs(t, err, domainerrors.ErrResetCodeMismatch)
	})

	t.Run("rejects a token from another request", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.resetRepo.EXPECT().FindByEmail(ctx, email).Return(activeReset(), nil)

		_, err := fx.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
			Email: email,
			Code:  "123456",
			Token: "otro-token",
		})

		assert.ErrorIs(t, err, domainerrors.ErrResetTokenMismatch)
	})

	t.Run("an expired record is deleted on the way out", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		expired := activeReset()
		expired.CreatedAt = time.Now().Add(-2 * time.Hour)

		fx.resetRepo.EXPECT().FindByEmail(ctx, email).Return(expired, nil)
		fx.resetRepo.EXPECT().DeleteByEmail(ctx, email).Return(nil)

		_, err := fx.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
			Email: email,
			Code:  "123456",
			Token: token,
		})

		assert.ErrorIs(t, err, domainerrors.ErrResetExpired)
	})

	t.Run("maps a missing record", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.resetRepo.EXPECT().FindByEmail(ctx, email).Return(nil, repository.ErrResetNotFound)

		_, err := fx.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
			Email: email,
			Code:  "123456",
			Token: token,
		})

		assert.ErrorIs(t, err, domainerrors.ErrResetNotFound)
	})
}

func TestPasswordResetService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	email := "ana@example.com"
	token := "cafecafe00112233cafecafe00112233cafecafe00112233cafecafe00112233"

	t.Run("sets the password, consumes the record and revokes sessions", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		client := &entity.Client{ID: uuid.New(), Email: email, PasswordHash: "old-hash"}

		fx.resetRepo.EXPECT().FindByEmail(ctx, email).Return(&entity.PasswordReset{
			Email:     email,
			TokenHash: sha256Hex(token),
			Code:      "123456",
			CreatedAt: time.Now().Add(-5 * time.Minute),
		}, nil)
		fx.hasher.EXPECT().ValidatePasswordStrength("Nuev4!pass").Return(nil)
		fx.hasher.EXPECT().Hash("Nuev4!pass").Return("new-hash", nil)

		txClientRepo := mockRepo.NewMockClientRepository(t)
		txTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		txResetRepo := mockRepo.NewMockPasswordResetRepository(t)

		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ClientRepo().Return(txClientRepo)
		factory.EXPECT().RefreshTokenRepo().Return(txTokenRepo)
		factory.EXPECT().PasswordResetRepo().Return(txResetRepo)
		runTransaction(fx.txManager, factory)

		txClientRepo.EXPECT().FindByEmail(ctx, email).Return(client, nil)
		txClientRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Client")).
			RunAndReturn(func(_ context.Context, updated *entity.Client) error {
				assert.Equal(t, "new-hash", updated.PasswordHash)

				return nil
			})
		txTokenRepo.EXPECT().DeleteByClient(ctx, client.ID).Return(nil)
		txResetRepo.EXPECT().DeleteByEmail(ctx, email).Return(nil)

		err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
			Email:                email,
			Token:                token,
			Password:             "Nuev4!pass",
			PasswordConfirmation: "Nuev4!pass",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects a confirmation mismatch", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
			Email:                email,
			Token:                token,
			Password:             "Nuev4!pass",
			PasswordConfirmation: "otra-cosa",
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects a mismatched token", func(t *testing.T) {
		fx := createTestPasswordResetService(t)

		fx.resetRepo.EXPECT().FindByEmail(ctx, email).Return(&entity.PasswordReset{
			Email:     email,
			TokenHash: sha256Hex("otro-token"),
			Code:      "123456",
			CreatedAt: time.Now().Add(-5 * time.Minute),
		}, nil)

		err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
			Email:                email,
			Token:                token,
			Password:             "Nuev4!pass",
			PasswordConfirmation: "Nuev4!pass",
		})

		assert.ErrorIs(t, err, domainerrors.ErrResetTokenMismatch)
	})
}
