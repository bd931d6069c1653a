package repository

import (
	"context"

	"cafemap/internal/domain/entity"
	"cafemap/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewCafeMissing is returned when a review references a cafe that does not exist.
var ErrReviewCafeMissing = errors.New("review references a missing cafe")

// ReviewRepository defines the interface for review-related storage operations.
// Reviews are looked up by cafe reference; the cafe never embeds them.
type ReviewRepository interface {
	// CreateReview persists a new review. Returns ErrReviewCafeMissing when the cafe
	// does not exist, including when it is deleted concurrently.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewsByCafe returns a cafe's reviews, newest first.
	FindReviewsByCafe(ctx context.Context, cafeID uuid.UUID, skip, limit int) ([]*entity.Review, error)

	// CountReviewsByCafe counts a cafe's reviews.
	CountReviewsByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error)

	// DeleteReviewsByCafe removes every review of a cafe and returns how many were removed.
	DeleteReviewsByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error)
}
