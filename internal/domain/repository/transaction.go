package repository

import "context"

// RepositoryFactory creates repository instances bound to a single database
// transaction. Only the repositories that participate in multi-step atomic
// operations are exposed here.
type RepositoryFactory interface {
	// NewCartRepository creates a cart repository bound to the transaction.
	NewCartRepository() CartRepository
}

// TransactionManager runs application logic within a single database
// transaction, committing on nil error and rolling back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
