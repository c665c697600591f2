package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	resetTokenBytes = 32
	defaultResetTTL = time.Hour
)

// passwordResetService implements the PasswordResetUsecase interface: the
// three-step code-based reset (request, verify, reset).
type passwordResetService struct {
	txManager  repository.TransactionManager
	clientRepo repository.ClientRepository
	resetRepo  repository.PasswordResetRepository
	hasher     service.PasswordHasher
	mailer     service.Mailer
	ttl        time.Duration
	exposeCode bool
	logger     *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ClientRepo repository.ClientRepository
	ResetRepo  repository.PasswordResetRepository
	Hasher     service.PasswordHasher
	Mailer     service.Mailer
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	ttl := params.Config.PasswordReset.TTL
	if ttl <= 0 {
		ttl = defaultResetTTL
	}

	// The code is echoed in responses only for debug builds that ask for it.
	exposeCode := params.Config.Env.Debug && params.Config.PasswordReset.ExposeCode

	return &passwordResetService{
		txManager:  params.TxManager,
		clientRepo: params.ClientRepo,
		resetRepo:  params.ResetRepo,
		hasher:     params.Hasher,
		mailer:     params.Mailer,
		ttl:        ttl,
		exposeCode: exposeCode,
		logger:     params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset starts a reset for a known account: a fresh token and 6-digit
// code replace any prior record, and the code is mailed out. Mail failure is
// logged but never fails the request.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) (*usecase.RequestResetOutput, error) {
	srv.log(ctx).Info("Password reset requested", slog.String("email", input.Email))

	if _, err := srv.clientRepo.FindByEmail(ctx, input.Email); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to look up account for reset")
	}

	token, err := generateResetToken()
	if err != nil {
		return nil, err
	}

	code, err := generateResetCode()
	if err != nil {
		return nil, err
	}

	reset := &entity.PasswordReset{
		Email:     input.Email,
		TokenHash: sha256Hex(token),
		Code:      code,
		CreatedAt: time.Now(),
	}

	if err := srv.resetRepo.Replace(ctx, reset); err != nil {
		return nil, errors.Wrap(err, "failed to store password reset")
	}

	if err := srv.mailer.SendResetCode(ctx, input.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send reset code mail",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)
	}

	output := &usecase.RequestResetOutput{Token: token}
	if srv.exposeCode {
		output.Code = code
	}

	return output, nil
}

// VerifyCode checks the mailed code and token against the stored record.
// An expired record is deleted so later verifies report not-found.
func (srv *passwordResetService) VerifyCode(ctx context.Context, input *usecase.VerifyCodeInput) (*usecase.VerifyCodeOutput, error) {
	reset, err := srv.loadActiveReset(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if reset.TokenHash != sha256Hex(input.Token) {
		return nil, domainerrors.ErrResetTokenMismatch
	}

	if reset.Code != input.Code {
		return nil, domainerrors.ErrResetCodeMismatch
	}

	return &usecase.VerifyCodeOutput{Token: input.Token}, nil
}

// ResetPassword revalidates the token and sets the new password, consuming
// the reset record and revoking every session of the account.
func (srv *passwordResetService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Password != input.PasswordConfirmation {
		return domainerrors.ErrValidationFailed.WrapMessage("password confirmation does not match")
	}

	reset, err := srv.loadActiveReset(ctx, input.Email)
	if err != nil {
		return err
	}

	if reset.TokenHash != sha256Hex(input.Token) {
		return domainerrors.ErrResetTokenMismatch
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		client, err := clientRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to load account for reset")
		}

		client.PasswordHash = hashed
		if err := clientRepo.Update(ctx, client); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := repoFactory.RefreshTokenRepo().DeleteByClient(ctx, client.ID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions after reset")
		}

		return repoFactory.PasswordResetRepo().DeleteByEmail(ctx, input.Email)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", input.Email))

	return nil
}

// loadActiveReset fetches the reset record for the email and enforces expiry,
// deleting stale records on the way out.
func (srv *passwordResetService) loadActiveReset(ctx context.Context, email string) (*entity.PasswordReset, error) {
	reset, err := srv.resetRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrResetNotFound) {
			return nil, domainerrors.ErrResetNotFound
		}

		return nil, errors.Wrap(err, "failed to load password reset")
	}

	if time.Since(reset.CreatedAt) > srv.ttl {
		if err := srv.resetRepo.DeleteByEmail(ctx, email); err != nil {
			srv.log(ctx).Warn("Failed to delete expired reset record",
				slog.String("email", email),
				slog.Any("error", err),
			)
		}

		return nil, domainerrors.ErrResetExpired
	}

	return reset, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	return hex.EncodeToString(buf), nil
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate reset code")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}
