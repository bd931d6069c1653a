package mongo

import (
	"context"

	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type sessionTransactionManager struct {
	store *Store
}

// sessionRepositoryFactory hands out the store's repositories. The session travels in ctx,
// so every call made with the callback's ctx joins the transaction.
type sessionRepositoryFactory struct {
	store *Store
}

func (f *sessionRepositoryFactory) NewCafeRepository() repository.CafeRepository {
	return NewCafeRepository(f.store)
}

func (f *sessionRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.store)
}

// NewTransactionManager creates a transaction manager backed by client sessions.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &sessionTransactionManager{store: store}
}

// Execute runs fn inside a multi-document transaction.
// The driver may retry fn on transient errors, so fn must be safe to repeat.
func (tm *sessionTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	factory := &sessionRepositoryFactory{store: tm.store}

	return tm.store.inTransaction(ctx, func(ctx context.Context) error {
		return fn(ctx, factory)
	})
}

// inTransaction runs fn in a transaction, joining the one already carried by ctx if any.
// Like Execute, fn may be retried on transient errors such as write conflicts.
func (s *Store) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := s.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})

	return err
}
