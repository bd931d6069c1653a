package impl

import (
	"context"
	"log/slog"

	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/usecase"
	"cafemap/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ratingAggregator implements the RatingAggregator interface.
// All writes touching one cafe go through cafeLocks, keyed by cafe id.
type ratingAggregator struct {
	cafeRepo   repository.CafeRepository
	reviewRepo repository.ReviewRepository
	cafeLocks  *util.KeyMutex
	logger     *slog.Logger
}

// RatingAggregatorParams holds dependencies for RatingAggregator, injected by Fx.
type RatingAggregatorParams struct {
	fx.In

	CafeRepo   repository.CafeRepository
	ReviewRepo repository.ReviewRepository
	CafeLocks  *util.KeyMutex
	Logger     *slog.Logger
}

// NewRatingAggregator creates a new rating aggregator instance
func NewRatingAggregator(params RatingAggregatorParams) usecase.RatingAggregator {
	return &ratingAggregator{
		cafeRepo:   params.CafeRepo,
		reviewRepo: params.ReviewRepo,
		cafeLocks:  params.CafeLocks,
		logger:     params.Logger,
	}
}

func (a *ratingAggregator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// OnReviewCreated stores the review and recomputes the cafe summary under the cafe lock.
func (a *ratingAggregator) OnReviewCreated(ctx context.Context, review *entity.Review) error {
	unlock := a.cafeLocks.Lock(review.CafeID.String())
	defer unlock()

	// A delete holding the lock may have removed the cafe while we waited.
	if _, err := a.cafeRepo.FindCafeByID(ctx, review.CafeID); err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return domainerrors.ErrCafeNotFound
		}

		return errors.Wrap(err, "failed to find cafe for review")
	}

	if err := a.reviewRepo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewCafeMissing) {
			return domainerrors.ErrCafeNotFound
		}

		return errors.Wrap(domainerrors.ErrReviewCreationFailed, err.Error())
	}

	if _, err := a.recompute(ctx, review.CafeID); err != nil {
		return err
	}

	return nil
}

// Recompute rebuilds one cafe's summary from its stored reviews.
func (a *ratingAggregator) Recompute(ctx context.Context, cafeID uuid.UUID) (entity.RatingSummary, error) {
	unlock := a.cafeLocks.Lock(cafeID.String())
	defer unlock()

	return a.recompute(ctx, cafeID)
}

// recompute delegates to the store's atomic refresh, so summaries stay exact even when
// several processes recompute the same cafe. The cafe lock only orders this process's writers.
func (a *ratingAggregator) recompute(ctx context.Context, cafeID uuid.UUID) (entity.RatingSummary, error) {
	summary, err := a.cafeRepo.RefreshRatingSummary(ctx, cafeID)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			a.log(ctx).Debug("Cafe vanished before rating update, discarding summary",
				slog.String("cafe_id", cafeID.String()),
			)

			return entity.RatingSummary{}, nil
		}

		return entity.RatingSummary{}, errors.Wrap(err, "failed to refresh rating summary")
	}

	return summary, nil
}
