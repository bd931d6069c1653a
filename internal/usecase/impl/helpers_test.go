package impl

import (
	"io"
	"log/slog"
	"testing"

	"cafemap/config"
	"cafemap/internal/infra/persistence/memory"
	mockService "cafemap/internal/mocks/service"
	"cafemap/internal/usecase"
	"cafemap/internal/util"

	"github.com/stretchr/testify/mock"
)

type testEnv struct {
	store      *memory.Store
	publisher  *mockService.MockEventPublisher
	catalog    usecase.CatalogUsecase
	aggregator usecase.RatingAggregator
	reviews    usecase.ReviewUsecase
	moderation usecase.ModerationUsecase
	importer   usecase.ImportUsecase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{Catalog: config.DefaultCatalogConfig()}
}

// newTestEnv wires every service against one in-memory store, the way the fx graph does.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	cafeRepo := memory.NewCafeRepository(store)
	reviewRepo := memory.NewReviewRepository(store)
	txManager := memory.NewTransactionManager(store)
	locks := util.NewKeyMutex()
	logger := discardLogger()
	cfg := testConfig()

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	aggregator := NewRatingAggregator(RatingAggregatorParams{
		CafeRepo:   cafeRepo,
		ReviewRepo: reviewRepo,
		CafeLocks:  locks,
		Logger:     logger,
	})
	moderation := NewModerationService(ModerationServiceParams{
		TxManager: txManager,
		CafeRepo:  cafeRepo,
		CafeLocks: locks,
		Publisher: publisher,
		Config:    cfg,
		Logger:    logger,
	})

	return &testEnv{
		store:      store,
		publisher:  publisher,
		aggregator: aggregator,
		moderation: moderation,
		catalog: NewCatalogService(CatalogServiceParams{
			CafeRepo:   cafeRepo,
			ReviewRepo: reviewRepo,
			Config:     cfg,
			Logger:     logger,
		}),
		reviews: NewReviewService(ReviewServiceParams{
			Aggregator: aggregator,
			Publisher:  publisher,
			Logger:     logger,
		}),
		importer: NewImportService(ImportServiceParams{
			CafeRepo:   cafeRepo,
			Moderation: moderation,
			Aggregator: aggregator,
			Config:     cfg,
			Logger:     logger,
		}),
	}
}
