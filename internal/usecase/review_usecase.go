package usecase

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput is a public review submission.
type SubmitReviewInput struct {
	CafeID       uuid.UUID
	ReviewerName string
	Rating       int
	Comment      string
}

// ReviewUsecase defines the write side of reviews.
type ReviewUsecase interface {
	// SubmitReview stores a review and refreshes the cafe's rating summary before returning.
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
}

// RatingAggregator keeps a cafe's rating summary consistent with its review set.
type RatingAggregator interface {
	// OnReviewCreated persists review and recomputes the summary of its cafe,
	// serialized with every other write on the same cafe.
	OnReviewCreated(ctx context.Context, review *entity.Review) error

	// Recompute rebuilds the summary of one cafe from its stored reviews.
	Recompute(ctx context.Context, cafeID uuid.UUID) (entity.RatingSummary, error)
}
