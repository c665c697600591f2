package postgres

import (
	"context"
	"fmt"

	"tienda/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds one GORM transaction object and hands out repository instances
// bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// ClientRepo returns a ClientRepository bound to the transaction.
func (f *gormRepositoryFactory) ClientRepo() repository.ClientRepository {
	return NewClientRepository(f.tx)
}

// ProductRepo returns a ProductRepository bound to the transaction.
func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

// TipoRepo returns a TipoRepository bound to the transaction.
func (f *gormRepositoryFactory) TipoRepo() repository.TipoRepository {
	return NewTipoRepository(f.tx)
}

// PurchaseRepo returns a PurchaseRepository bound to the transaction.
func (f *gormRepositoryFactory) PurchaseRepo() repository.PurchaseRepository {
	return NewPurchaseRepository(f.tx)
}

// PasswordResetRepo returns a PasswordResetRepository bound to the transaction.
func (f *gormRepositoryFactory) PasswordResetRepo() repository.PasswordResetRepository {
	return NewPasswordResetRepository(f.tx)
}

// RefreshTokenRepo returns a RefreshTokenRepository bound to the transaction.
func (f *gormRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic so a failing callback never leaks an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the original business error as the wrapped cause.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
