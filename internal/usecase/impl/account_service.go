// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	clientRepo       repository.ClientRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ClientRepo       repository.ClientRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		clientRepo:       params.ClientRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new client account and logs it in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting client registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newClient := &entity.Client{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		Address:      input.Address,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ClientRepo().Create(ctx, newClient)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register client", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.issueTokens(ctx, newClient)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Client registered", slog.Any("clientID", newClient.ID))

	return output, nil
}

// Login authenticates a client by email and password.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting client login", slog.String("email", input.Email))

	client, err := srv.clientRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find client by email")
	}

	// bcrypt check runs outside any transaction, it is CPU-bound.
	if !srv.hasher.Check(input.Password, client.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.issueTokens(ctx, client)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Client logged in", slog.Any("clientID", client.ID))

	return output, nil
}

// issueTokens generates an access/refresh pair and persists the refresh hash.
func (srv *accountService) issueTokens(ctx context.Context, client *entity.Client) (*usecase.AuthOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(client.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		ClientID:  client.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.Create(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Client:       client,
	}, nil
}

// RefreshToken issues a new access token. The refresh token itself stays
// unchanged, which avoids rotation races between concurrent clients.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	token, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	clientID, err := clientIDFromToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token subject")
	}

	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}
	if stored.IsExpired() || stored.ClientID != clientID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout revokes every refresh token the client holds.
func (srv *accountService) Logout(ctx context.Context, clientID uuid.UUID) error {
	srv.log(ctx).Info("Logging out", slog.Any("clientID", clientID))

	if err := srv.refreshTokenRepo.DeleteByClient(ctx, clientID); err != nil {
		srv.log(ctx).Error("Failed to delete refresh tokens", slog.Any("clientID", clientID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh tokens")
	}

	return nil
}

// GetProfile returns the authenticated client's account data.
func (srv *accountService) GetProfile(ctx context.Context, clientID uuid.UUID) (*entity.Client, error) {
	client, err := srv.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return client, nil
}

// UpdateProfile applies a field-wise update to the authenticated client.
// Changing the password requires the current one.
func (srv *accountService) UpdateProfile(ctx context.Context, clientID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Client, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("clientID", clientID))

	var updated *entity.Client
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		client, err := clientRepo.FindByID(ctx, clientID)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to load client for profile update")
		}

		if input.NewPassword != "" {
			if !srv.hasher.Check(input.CurrentPassword, client.PasswordHash) {
				return domainerrors.ErrCurrentPasswordMismatch
			}
			if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
				return err
			}
			hashed, err := srv.hasher.Hash(input.NewPassword)
			if err != nil {
				return errors.Wrap(err, "failed to hash new password")
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
			return errors.Wrap(err, "failed to update client profile")
		}

		updated = client

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("clientID", clientID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// clientIDFromToken extracts the client ID from the token's subject claim.
func clientIDFromToken(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "missing subject claim")
	}

	clientID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "malformed subject claim")
	}

	return clientID, nil
}

// applyStringField overwrites dst when the update carries the field.
func applyStringField(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
