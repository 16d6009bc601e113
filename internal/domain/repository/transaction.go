package repository

import "context"

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	FavoriteRepo() FavoriteRepository
}

// TransactionManager runs fn inside a single database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
