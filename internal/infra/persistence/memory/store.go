// Package memory provides an in-process entity store. It backs tests and the
// "memory" store driver; all data is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds cafes, reviews and submitter contacts. Values are cloned on the
// way in and out, so callers never share memory with the store.
type Store struct {
	mu       sync.RWMutex
	cafes    map[uuid.UUID]*entity.Cafe
	slugs    map[string]uuid.UUID
	reviews  map[uuid.UUID][]*entity.Review
	contacts map[uuid.UUID]*entity.SubmitterContact

	// txMu serializes transactions; plain calls are not blocked by it.
	txMu sync.Mutex
	now  func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		cafes:    make(map[uuid.UUID]*entity.Cafe),
		slugs:    make(map[string]uuid.UUID),
		reviews:  make(map[uuid.UUID][]*entity.Review),
		contacts: make(map[uuid.UUID]*entity.SubmitterContact),
		now:      time.Now,
	}
}

// Contact returns the submitter contact of a cafe. Only used by operator tooling and tests.
func (s *Store) Contact(cafeID uuid.UUID) (entity.SubmitterContact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contacts[cafeID]
	if !ok {
		return entity.SubmitterContact{}, false
	}

	return *c, true
}

// window bounds a skip/limit page to [0, n]. A negative skip reads from the start.
func window(n, skip, limit int) (start, end int) {
	start = min(max(skip, 0), n)
	end = n
	if limit > 0 && limit < end-start {
		end = start + limit
	}

	return start, end
}

type txKey struct{}

// memTx records undo steps for every mutation made through its context.
type memTx struct {
	undo []func()
}

// remember captures everything stored under cafeID so a rollback can restore it.
// Must be called with s.mu held.
func (s *Store) remember(ctx context.Context, cafeID uuid.UUID) {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	if !ok {
		return
	}

	cafe := s.cafes[cafeID].Clone()
	reviews := cloneReviews(s.reviews[cafeID])
	var contact *entity.SubmitterContact
	if c, ok := s.contacts[cafeID]; ok {
		cp := *c
		contact = &cp
	}

	tx.undo = append(tx.undo, func() {
		if current, ok := s.cafes[cafeID]; ok {
			delete(s.slugs, current.Slug)
		}
		delete(s.cafes, cafeID)
		delete(s.reviews, cafeID)
		delete(s.contacts, cafeID)

		if cafe != nil {
			s.cafes[cafeID] = cafe
			s.slugs[cafe.Slug] = cafeID
		}
		if len(reviews) > 0 {
			s.reviews[cafeID] = reviews
		}
		if contact != nil {
			s.contacts[cafeID] = contact
		}
	})
}

func cloneReviews(in []*entity.Review) []*entity.Review {
	if in == nil {
		return nil
	}

	out := make([]*entity.Review, len(in))
	for i, r := range in {
		cp := *r
		out[i] = &cp
	}

	return out
}

// TransactionManager runs functions against the store with rollback on error.
type TransactionManager struct {
	store *Store
}

// NewTransactionManager creates a new transaction manager for the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &TransactionManager{store: store}
}

// Execute runs fn and undoes its mutations if it returns an error.
func (tm *TransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	tx := &memTx{}
	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx, &repositoryFactory{store: tm.store}); err != nil {
		tm.store.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		tm.store.mu.Unlock()

		return err
	}

	return nil
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewCafeRepository() repository.CafeRepository {
	return NewCafeRepository(f.store)
}

func (f *repositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.store)
}
