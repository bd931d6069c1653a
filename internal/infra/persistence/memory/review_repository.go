package memory

import (
	"context"
	"slices"
	"strings"

	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/repository"

	"github.com/google/uuid"
)

type reviewRepository struct {
	store *Store
}

// NewReviewRepository creates a new in-memory review repository.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

// CreateReview implements repository.ReviewRepository.
func (r *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cafes[review.CafeID]; !ok {
		return repository.ErrReviewCafeMissing
	}
	s.remember(ctx, review.CafeID)

	cp := *review
	s.reviews[review.CafeID] = append(s.reviews[review.CafeID], &cp)

	return nil
}

// FindReviewsByCafe implements repository.ReviewRepository.
func (r *reviewRepository) FindReviewsByCafe(_ context.Context, cafeID uuid.UUID, skip, limit int) ([]*entity.Review, error) {
	s := r.store
	s.mu.RLock()
	reviews := cloneReviews(s.reviews[cafeID])
	s.mu.RUnlock()

	slices.SortFunc(reviews, func(a, b *entity.Review) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	start, end := window(len(reviews), skip, limit)

	return reviews[start:end], nil
}

// CountReviewsByCafe implements repository.ReviewRepository.
func (r *reviewRepository) CountReviewsByCafe(_ context.Context, cafeID uuid.UUID) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.reviews[cafeID])), nil
}

// DeleteReviewsByCafe implements repository.ReviewRepository.
func (r *reviewRepository) DeleteReviewsByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.reviews[cafeID]))
	if n == 0 {
		return 0, nil
	}
	s.remember(ctx, cafeID)
	delete(s.reviews, cafeID)

	return n, nil
}
