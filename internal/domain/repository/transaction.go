package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the transaction is rolled back,
	// otherwise it is committed. Repositories from the factory must be called with the ctx passed to fn.
	Execute(ctx context.Context, fn func(ctx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewCafeRepository returns a CafeRepository bound to the current transaction.
	NewCafeRepository() CafeRepository

	// NewReviewRepository returns a ReviewRepository bound to the current transaction.
	NewReviewRepository() ReviewRepository
}
