package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/domain/service"
	"cafemap/internal/infra/persistence/memory"
	mockRepo "cafemap/internal/mocks/repository"
	mockService "cafemap/internal/mocks/service"
	"cafemap/internal/usecase"
	"cafemap/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	mock   *mockService.MockEventPublisher
	events []*service.CatalogEvent
}

func newRecordingPublisher(t *testing.T) *recordingPublisher {
	p := &recordingPublisher{mock: mockService.NewMockEventPublisher(t)}
	p.mock.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.AnythingOfType("*service.CatalogEvent")).
		RunAndReturn(func(_ context.Context, event *service.CatalogEvent) error {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.events = append(p.events, event)

			return nil
		}).
		Maybe()

	return p
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = string(e.Type)
	}

	return out
}

func TestReviewService_SubmitReview_UpdatesSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cafe := submitVerified(t, env, "Rated")

	for _, rating := range []int{5, 4, 4} {
		_, err := env.reviews.SubmitReview(ctx, &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: rating, Comment: "nice"})
		require.NoError(t, err)
	}

	got, err := env.catalog.GetCafeBySlug(ctx, cafe.Slug, entity.Public)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, got.AverageRating, 1e-9)
	assert.Equal(t, int64(3), got.TotalReviews)
	assert.True(t, got.HasRating())
}

func TestReviewService_SubmitReview_Defaults(t *testing.T) {
	env := newTestEnv(t)
	cafe := submitVerified(t, env, "Defaults")

	review, err := env.reviews.SubmitReview(context.Background(), &usecase.SubmitReviewInput{
		CafeID:  cafe.ID,
		Rating:  5,
		Comment: "  great view  ",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultReviewerName, review.ReviewerName)
	assert.Equal(t, "great view", review.Comment)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestReviewService_SubmitReview_Validation(t *testing.T) {
	env := newTestEnv(t)
	cafe := submitVerified(t, env, "Strict")

	tests := []struct {
		name  string
		input *usecase.SubmitReviewInput
	}{
		{name: "nil input", input: nil},
		{name: "missing cafe", input: &usecase.SubmitReviewInput{Rating: 3, Comment: "x"}},
		{name: "rating too low", input: &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: 0, Comment: "x"}},
		{name: "rating too high", input: &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: 6, Comment: "x"}},
		{name: "empty comment", input: &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: 3, Comment: "   "}},
		{name: "comment too long", input: &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: 3, Comment: strings.Repeat("á", entity.MaxCommentLength+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.reviews.SubmitReview(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	// Exactly the limit, counted in characters rather than bytes.
	_, err := env.reviews.SubmitReview(context.Background(), &usecase.SubmitReviewInput{
		CafeID:  cafe.ID,
		Rating:  3,
		Comment: strings.Repeat("á", entity.MaxCommentLength),
	})
	assert.NoError(t, err)
}

func TestReviewService_SubmitReview_UnknownCafe(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reviews.SubmitReview(context.Background(), &usecase.SubmitReviewInput{
		CafeID:  uuid.New(),
		Rating:  4,
		Comment: "where is it",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCafeNotFound)
}

func TestReviewService_SubmitReview_PublishesEvent(t *testing.T) {
	env := newTestEnv(t)
	cafe := submitVerified(t, env, "Loud")
	publisher := newRecordingPublisher(t)

	reviews := NewReviewService(ReviewServiceParams{
		Aggregator: env.aggregator,
		Publisher:  publisher.mock,
		Logger:     discardLogger(),
	})

	review, err := reviews.SubmitReview(context.Background(), &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: 2, Comment: "meh"})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, service.EventReviewCreated, publisher.events[0].Type)
	assert.Equal(t, review.ID.String(), publisher.events[0].ReviewID)
	assert.Equal(t, 2, publisher.events[0].Rating)
}

func TestReviewService_PublishFailureDoesNotFailWrite(t *testing.T) {
	env := newTestEnv(t)
	cafe := submitVerified(t, env, "Offline")

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	reviews := NewReviewService(ReviewServiceParams{
		Aggregator: env.aggregator,
		Publisher:  publisher,
		Logger:     discardLogger(),
	})

	_, err := reviews.SubmitReview(context.Background(), &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: 5, Comment: "ok"})
	assert.NoError(t, err)
}

func TestRatingAggregator_ConcurrentReviewsStayConsistent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cafe := submitVerified(t, env, "Busy")
	other := submitVerified(t, env, "Quiet")

	const writers = 60
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			target := cafe.ID
			if i%3 == 0 {
				target = other.ID
			}
			_, err := env.reviews.SubmitReview(ctx, &usecase.SubmitReviewInput{
				CafeID:  target,
				Rating:  i%5 + 1,
				Comment: "load",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for _, c := range []*entity.Cafe{cafe, other} {
		page, err := env.catalog.ListReviews(ctx, c.ID, 1, 100)
		require.NoError(t, err)

		ratings := make([]int, len(page.Reviews))
		for i, r := range page.Reviews {
			ratings[i] = r.Rating
		}
		want := entity.SummarizeRatings(ratings)

		got, err := env.catalog.GetCafeBySlug(ctx, c.Slug, entity.Public)
		require.NoError(t, err)
		assert.Equal(t, want, got.Summary(), c.Slug)
	}
}

func TestRatingAggregator_DeleteRacingReviewsLeavesNoOrphans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cafe := submitVerified(t, env, "Closing")

	var wg sync.WaitGroup
	for range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := env.reviews.SubmitReview(ctx, &usecase.SubmitReviewInput{CafeID: cafe.ID, Rating: 4, Comment: "bye"})
			if err != nil {
				assert.ErrorIs(t, err, domainerrors.ErrCafeNotFound)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, env.moderation.DeleteCafe(ctx, cafe.ID, entity.OperatorCapability))
	}()
	wg.Wait()

	count, err := memory.NewReviewRepository(env.store).CountReviewsByCafe(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRatingAggregator_Recompute(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cafe := submitVerified(t, env, "Drifted")

	reviewRepo := memory.NewReviewRepository(env.store)
	for _, rating := range []int{1, 1, 2} {
		require.NoError(t, reviewRepo.CreateReview(ctx, &entity.Review{ID: uuid.New(), CafeID: cafe.ID, Rating: rating, Comment: "raw"}))
	}

	summary, err := env.aggregator.Recompute(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{AverageRating: 1.3, TotalReviews: 3}, summary)

	got, err := env.catalog.GetCafeBySlug(ctx, cafe.Slug, entity.Public)
	require.NoError(t, err)
	assert.Equal(t, summary, got.Summary())
}

func TestRatingAggregator_VanishedCafeDiscardsSummary(t *testing.T) {
	cafeRepo := mockRepo.NewMockCafeRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	id := uuid.New()

	cafeRepo.EXPECT().RefreshRatingSummary(mock.Anything, id).Return(entity.RatingSummary{}, repository.ErrCafeNotFound).Once()

	aggregator := NewRatingAggregator(RatingAggregatorParams{
		CafeRepo:   cafeRepo,
		ReviewRepo: reviewRepo,
		CafeLocks:  util.NewKeyMutex(),
		Logger:     discardLogger(),
	})

	summary, err := aggregator.Recompute(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, summary)
}

func TestRatingAggregator_RefreshFailureSurfaces(t *testing.T) {
	cafeRepo := mockRepo.NewMockCafeRepository(t)
	id := uuid.New()

	cafeRepo.EXPECT().RefreshRatingSummary(mock.Anything, id).Return(entity.RatingSummary{}, errors.New("connection reset")).Once()

	aggregator := NewRatingAggregator(RatingAggregatorParams{
		CafeRepo:   cafeRepo,
		ReviewRepo: mockRepo.NewMockReviewRepository(t),
		CafeLocks:  util.NewKeyMutex(),
		Logger:     discardLogger(),
	})

	_, err := aggregator.Recompute(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

// Two aggregators with their own lock tables stand in for the API and the worker
// sharing one store.
func TestRatingAggregator_SeparateLockTablesConverge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cafe := submitVerified(t, env, "Shared")

	newAggregator := func() usecase.RatingAggregator {
		return NewRatingAggregator(RatingAggregatorParams{
			CafeRepo:   memory.NewCafeRepository(env.store),
			ReviewRepo: memory.NewReviewRepository(env.store),
			CafeLocks:  util.NewKeyMutex(),
			Logger:     discardLogger(),
		})
	}
	api, worker := newAggregator(), newAggregator()

	const writers = 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			review := &entity.Review{ID: uuid.New(), CafeID: cafe.ID, Rating: i%5 + 1, Comment: "busy"}
			assert.NoError(t, api.OnReviewCreated(ctx, review))
		}()
		go func() {
			defer wg.Done()
			_, err := worker.Recompute(ctx, cafe.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ratings := make([]int, writers)
	for i := range ratings {
		ratings[i] = i%5 + 1
	}

	got, err := env.catalog.GetCafeBySlug(ctx, cafe.Slug, entity.Public)
	require.NoError(t, err)
	assert.Equal(t, entity.SummarizeRatings(ratings), got.Summary())
}
