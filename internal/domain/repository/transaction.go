package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// ClientRepo returns a ClientRepository bound to the current transaction.
	ClientRepo() ClientRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// TipoRepo returns a TipoRepository bound to the current transaction.
	TipoRepo() TipoRepository

	// PurchaseRepo returns a PurchaseRepository bound to the current transaction.
	PurchaseRepo() PurchaseRepository

	// PasswordResetRepo returns a PasswordResetRepository bound to the current transaction.
	PasswordResetRepo() PasswordResetRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository
}
