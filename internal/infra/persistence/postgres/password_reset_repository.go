package postgres

import (
	"context"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// passwordResetRepository implements the repository.PasswordResetRepository interface.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{
		db: db,
	}
}

// FindByEmail retrieves the active reset record for an email.
func (repo *passwordResetRepository) FindByEmail(ctx context.Context, email string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&resetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset by email")
	}

	return toPasswordResetDomain(&resetM), nil
}

// Replace deletes any prior record for the email and stores the new one.
// Save performs an upsert on the email primary key, which keeps the
// one-live-reset-per-account invariant in a single statement.
func (repo *passwordResetRepository) Replace(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).Save(resetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store password reset")
	}

	return nil
}

// DeleteByEmail removes the record for an email. Missing records are not an
// error so expiry cleanup stays idempotent.
func (repo *passwordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.PasswordResetModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete password reset")
	}

	return nil
}

// --- Mapper Functions ---

func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	if data == nil {
		return nil
	}

	return &entity.PasswordReset{
		Email:     data.Email,
		TokenHash: data.TokenHash,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
	}
}

func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetModel{
		Email:     data.Email,
		TokenHash: data.TokenHash,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
	}
}
