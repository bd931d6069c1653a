package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/service"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type reviewService struct {
	aggregator usecase.RatingAggregator
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	Aggregator usecase.RatingAggregator
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		aggregator: params.Aggregator,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// SubmitReview validates and stores a public review. The cafe summary is current when this returns.
func (s *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	review, err := newReview(input, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.aggregator.OnReviewCreated(ctx, review); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.CatalogEvent{
		Type:     service.EventReviewCreated,
		CafeID:   review.CafeID.String(),
		ReviewID: review.ID.String(),
		Rating:   review.Rating,
	})

	return review, nil
}

// newReview validates the input and builds an unsaved review.
func newReview(input *usecase.SubmitReviewInput, now time.Time) (*entity.Review, error) {
	if input == nil || input.CafeID == uuid.Nil {
		return nil, domainerrors.NewValidationError("cafeId is required")
	}

	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("rating must be between %d and %d", entity.MinRating, entity.MaxRating),
		)
	}

	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, domainerrors.NewValidationError("comment is required")
	}
	if utf8.RuneCountInString(comment) > entity.MaxCommentLength {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("comment must be at most %d characters", entity.MaxCommentLength),
		)
	}

	name := strings.TrimSpace(input.ReviewerName)
	if name == "" {
		name = entity.DefaultReviewerName
	}

	return &entity.Review{
		ID:           uuid.New(),
		CafeID:       input.CafeID,
		ReviewerName: name,
		Rating:       input.Rating,
		Comment:      comment,
		CreatedAt:    now.UTC(),
	}, nil
}
