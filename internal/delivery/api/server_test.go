package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cafemap/config"
	apimiddleware "cafemap/internal/delivery/api/middleware"
	"cafemap/internal/delivery/api/router"
	"cafemap/internal/delivery/api/router/handler"
	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/repository"
	"cafemap/internal/domain/service"
	"cafemap/internal/infra/auth"
	"cafemap/internal/infra/persistence/memory"
	"cafemap/internal/infra/qrcode"
	mockRepo "cafemap/internal/mocks/repository"
	mockService "cafemap/internal/mocks/service"
	"cafemap/internal/usecase"
	"cafemap/internal/usecase/impl"
	"cafemap/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Degraded  bool   `json:"degraded"`
	} `json:"meta"`
}

type testAPI struct {
	e             *echo.Echo
	operatorToken string
	viewerToken   string
}

func testConfig() *config.Config {
	cfg := &config.Config{Catalog: config.DefaultCatalogConfig()}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Operator = "test-operator-secret"

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestAPI wires the full HTTP stack over the given repositories.
func newTestAPI(t *testing.T, cafeRepo repository.CafeRepository, reviewRepo repository.ReviewRepository, txManager repository.TransactionManager) *testAPI {
	t.Helper()

	cfg := testConfig()
	logger := discardLogger()
	locks := util.NewKeyMutex()

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	catalog := impl.NewCatalogService(impl.CatalogServiceParams{CafeRepo: cafeRepo, ReviewRepo: reviewRepo, Config: cfg, Logger: logger})
	aggregator := impl.NewRatingAggregator(impl.RatingAggregatorParams{CafeRepo: cafeRepo, ReviewRepo: reviewRepo, CafeLocks: locks, Logger: logger})
	moderation := impl.NewModerationService(impl.ModerationServiceParams{
		TxManager: txManager,
		CafeRepo:  cafeRepo,
		CafeLocks: locks,
		Publisher: publisher,
		Config:    cfg,
		Logger:    logger,
	})
	reviews := impl.NewReviewService(impl.ReviewServiceParams{Aggregator: aggregator, Publisher: publisher, Logger: logger})

	routerParams := router.RouterParams{
		CafeHandler: handler.NewCafeHandler(handler.CafeHandlerParams{
			CatalogUC:    catalog,
			ModerationUC: moderation,
			QRCode:       qrcode.NewQRCodeService(128, "medium", "https://cafemap.test"),
			Logger:       logger,
		}),
		ReviewHandler: handler.NewReviewHandler(handler.ReviewHandlerParams{CatalogUC: catalog, ReviewUC: reviews, Logger: logger}),
		AdminHandler:  handler.NewAdminHandler(handler.AdminHandlerParams{CatalogUC: catalog, ModerationUC: moderation, Logger: logger}),
		OperatorAuth:  apimiddleware.NewOperatorAuth(apimiddleware.OperatorAuthParams{TokenService: tokens, Logger: logger}),
	}

	operatorToken, err := tokens.GenerateOperatorToken("ops@cafemap", []string{service.RoleOperator}, time.Hour)
	require.NoError(t, err)
	viewerToken, err := tokens.GenerateOperatorToken("viewer@cafemap", []string{"viewer"}, time.Hour)
	require.NoError(t, err)

	return &testAPI{
		e:             newEcho(cfg, logger, routerParams),
		operatorToken: operatorToken,
		viewerToken:   viewerToken,
	}
}

func newMemoryAPI(t *testing.T) *testAPI {
	t.Helper()

	store := memory.NewStore()

	return newTestAPI(t, memory.NewCafeRepository(store), memory.NewReviewRepository(store), memory.NewTransactionManager(store))
}

func (a *testAPI) do(method, target string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func (a *testAPI) submit(t *testing.T, name string) handler.SubmitCafeResponse {
	t.Helper()

	rec := a.do(http.MethodPost, "/api/cafes/submit", map[string]any{
		"name":       name,
		"address":    "1 Tran Hung Dao",
		"ownerName":  "Lan",
		"ownerPhone": "0909000000",
		"features":   map[string]bool{"wifi": true, "view": true},
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[handler.SubmitCafeResponse](t, rec).Data
}

func (a *testAPI) cafeBySlug(t *testing.T, slug string) *entity.Cafe {
	t.Helper()

	rec := a.do(http.MethodGet, "/api/cafes/"+slug, nil, a.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return decode[*entity.Cafe](t, rec).Data
}

func TestHealth(t *testing.T) {
	api := newMemoryAPI(t)

	rec := api.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestSubmissionLifecycle(t *testing.T) {
	api := newMemoryAPI(t)

	submitted := api.submit(t, "Cà Phê Tùng")
	assert.Equal(t, "ca-phe-tung", submitted.Slug)
	assert.Equal(t, entity.StatePending, submitted.State)
	assert.NotContains(t, api.do(http.MethodGet, "/api/cafes/ca-phe-tung", nil, api.operatorToken).Body.String(), "0909000000")

	// Pending cafes are hidden from the public
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/cafes/ca-phe-tung", nil, "").Code)
	list := decode[usecase.CafePage](t, api.do(http.MethodGet, "/api/cafes", nil, ""))
	assert.Empty(t, list.Data.Cafes)

	// showAll needs the operator capability
	list = decode[usecase.CafePage](t, api.do(http.MethodGet, "/api/cafes?showAll=true", nil, ""))
	assert.Empty(t, list.Data.Cafes)
	list = decode[usecase.CafePage](t, api.do(http.MethodGet, "/api/cafes?showAll=true", nil, api.operatorToken))
	assert.Len(t, list.Data.Cafes, 1)

	cafe := api.cafeBySlug(t, "ca-phe-tung")

	// Featuring a pending cafe is rejected
	rec := api.do(http.MethodPatch, "/api/admin/cafes/"+cafe.ID.String()+"/feature", nil, api.operatorToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FEATURE_REQUIRES_VERIFIED", decode[any](t, rec).Error.Code)

	rec = api.do(http.MethodPatch, "/api/admin/cafes/"+cafe.ID.String()+"/verify", nil, api.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.StateVerified, decode[*entity.Cafe](t, rec).Data.State())

	rec = api.do(http.MethodPatch, "/api/admin/cafes/"+cafe.ID.String()+"/feature", nil, api.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.StateFeatured, decode[*entity.Cafe](t, rec).Data.State())

	rec = api.do(http.MethodDelete, "/api/admin/cafes/"+cafe.ID.String()+"/feature", nil, api.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.StateVerified, decode[*entity.Cafe](t, rec).Data.State())

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/cafes/ca-phe-tung", nil, "").Code)

	markers := decode[[]entity.CafeMarker](t, api.do(http.MethodGet, "/api/cafes/map/markers", nil, ""))
	require.Len(t, markers.Data, 1)
	assert.Equal(t, "ca-phe-tung", markers.Data[0].Slug)
}

func TestSubmitCafe_Validation(t *testing.T) {
	api := newMemoryAPI(t)

	rec := api.do(http.MethodPost, "/api/cafes/submit", map[string]any{
		"name":       "No Owner",
		"address":    "somewhere",
		"priceRange": "$$$$",
		"features":   map[string]bool{"pool": true},
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[any](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	for _, field := range []string{"ownerName", "ownerPhone", "priceRange", "features[pool]"} {
		assert.Contains(t, rec.Body.String(), field)
	}
}

func TestSubmitCafe_SlugSuffixing(t *testing.T) {
	api := newMemoryAPI(t)

	assert.Equal(t, "the-hill", api.submit(t, "The Hill").Slug)
	assert.Equal(t, "the-hill-2", api.submit(t, "the  hill!").Slug)
	assert.Equal(t, "the-hill-3", api.submit(t, "THE HILL").Slug)
}

func TestReviews(t *testing.T) {
	api := newMemoryAPI(t)

	api.submit(t, "Rated Cafe")
	cafe := api.cafeBySlug(t, "rated-cafe")
	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, "/api/admin/cafes/"+cafe.ID.String()+"/verify", nil, api.operatorToken).Code)

	for _, rating := range []int{5, 4, 4} {
		rec := api.do(http.MethodPost, "/api/reviews", map[string]any{
			"cafeId":  cafe.ID.String(),
			"rating":  rating,
			"comment": "good coffee",
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, entity.DefaultReviewerName, decode[*entity.Review](t, rec).Data.ReviewerName)
	}

	// The summary is current as soon as the review response returns
	got := decode[*entity.Cafe](t, api.do(http.MethodGet, "/api/cafes/rated-cafe", nil, ""))
	assert.InDelta(t, 4.3, got.Data.AverageRating, 1e-9)
	assert.Equal(t, int64(3), got.Data.TotalReviews)

	page := decode[usecase.ReviewPage](t, api.do(http.MethodGet, "/api/reviews/cafe/"+cafe.ID.String()+"?limit=2", nil, ""))
	assert.Len(t, page.Data.Reviews, 2)
	assert.Equal(t, usecase.Pagination{Page: 1, Limit: 2, Total: 3, Pages: 2}, page.Data.Pagination)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{name: "rating out of range", body: map[string]any{"cafeId": cafe.ID.String(), "rating": 7, "comment": "x"}, wantStatus: http.StatusBadRequest},
		{name: "missing comment", body: map[string]any{"cafeId": cafe.ID.String(), "rating": 3}, wantStatus: http.StatusBadRequest},
		{name: "bad cafe id", body: map[string]any{"cafeId": "nope", "rating": 3, "comment": "x"}, wantStatus: http.StatusBadRequest},
		{name: "unknown cafe", body: map[string]any{"cafeId": "8f14e45f-ceea-4a6b-9f3e-000000000000", "rating": 3, "comment": "x"}, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, api.do(http.MethodPost, "/api/reviews", tt.body, "").Code)
		})
	}
}

func TestListCafes_QueryParameters(t *testing.T) {
	api := newMemoryAPI(t)
	api.submit(t, "Alpha")
	api.submit(t, "Beta")
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/admin/cafes/verify-all", nil, api.operatorToken).Code)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantSlugs  []string
	}{
		{name: "name ascending", query: "?sortBy=name&order=asc", wantStatus: http.StatusOK, wantSlugs: []string{"alpha", "beta"}},
		{name: "feature flag form", query: "?sortBy=name&order=asc&wifi=true&view=true", wantStatus: http.StatusOK, wantSlugs: []string{"alpha", "beta"}},
		{name: "feature list form", query: "?features=outdoor", wantStatus: http.StatusOK, wantSlugs: []string{}},
		{name: "search", query: "?search=BET", wantStatus: http.StatusOK, wantSlugs: []string{"beta"}},
		{name: "malformed page falls back", query: "?page=abc&limit=-3&sortBy=name&order=asc", wantStatus: http.StatusOK, wantSlugs: []string{"alpha", "beta"}},
		{name: "unknown feature matches nothing", query: "?features=pool", wantStatus: http.StatusOK, wantSlugs: []string{}},
		{name: "unknown price range matches nothing", query: "?priceRange=cheap", wantStatus: http.StatusOK, wantSlugs: []string{}},
		{name: "huge page is empty", query: "?page=922337203685477580&limit=20", wantStatus: http.StatusOK, wantSlugs: []string{}},
		{name: "malformed radius uses default", query: "?lat=11.9404&lng=108.4378&radius=abc&sortBy=name&order=asc", wantStatus: http.StatusOK, wantSlugs: []string{"alpha", "beta"}},
		{name: "default radius excludes far center", query: "?lat=10.8231&lng=106.6297&radius=abc", wantStatus: http.StatusOK, wantSlugs: []string{}},
		{name: "latitude out of range", query: "?lat=120&lng=108", wantStatus: http.StatusBadRequest},
		{name: "latitude without longitude", query: "?lat=11.9", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodGet, "/api/cafes"+tt.query, nil, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			page := decode[usecase.CafePage](t, rec)
			slugs := make([]string, 0, len(page.Data.Cafes))
			for _, c := range page.Data.Cafes {
				slugs = append(slugs, c.Slug)
			}
			assert.Equal(t, tt.wantSlugs, slugs)
		})
	}
}

func TestAdminRoutes_RequireOperator(t *testing.T) {
	api := newMemoryAPI(t)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/api/admin/cafes/verify-all", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/api/admin/cafes/verify-all", nil, "garbage").Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/admin/cafes/verify-all", nil, api.viewerToken).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/admin/cafes/verify-all", nil, api.operatorToken).Code)
}

func TestEditAndDeleteCafe(t *testing.T) {
	api := newMemoryAPI(t)
	api.submit(t, "Old Name")
	cafe := api.cafeBySlug(t, "old-name")
	path := "/api/admin/cafes/" + cafe.ID.String()

	rec := api.do(http.MethodPatch, path, map[string]any{
		"name":         "New Name",
		"priceRange":   "$$$",
		"openingHours": map[string]any{"monday": map[string]string{"open": "07:00", "close": "22:00"}},
	}, api.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	edited := decode[*entity.Cafe](t, rec).Data
	assert.Equal(t, "New Name", edited.Name)
	assert.Equal(t, "old-name", edited.Slug)
	assert.Equal(t, entity.PriceHigh, edited.PriceRange)
	assert.Equal(t, entity.StatePending, edited.State())

	rec = api.do(http.MethodPatch, path, map[string]any{
		"openingHours": map[string]any{"funday": map[string]string{"open": "7am", "close": "22:00"}},
	}, api.operatorToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path, nil, api.operatorToken).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/cafes/old-name", nil, api.operatorToken).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path, nil, api.operatorToken).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodDelete, "/api/admin/cafes/not-a-uuid", nil, api.operatorToken).Code)
}

func TestCafeQRCode(t *testing.T) {
	api := newMemoryAPI(t)
	api.submit(t, "Share Me")

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/cafes/share-me/qrcode", nil, "").Code)

	rec := api.do(http.MethodGet, "/api/cafes/share-me/qrcode", nil, api.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestListFeatures(t *testing.T) {
	api := newMemoryAPI(t)

	features := decode[[]entity.Feature](t, api.do(http.MethodGet, "/api/features", nil, ""))
	assert.Equal(t, entity.Features, features.Data)
}

func TestReads_DegradeOnStoreFailure(t *testing.T) {
	cafeRepo := mockRepo.NewMockCafeRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	cafeRepo.EXPECT().QueryCafes(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))
	cafeRepo.EXPECT().FindMarkers(mock.Anything).Return(nil, errors.New("connection refused"))
	reviewRepo.EXPECT().FindReviewsByCafe(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	api := newTestAPI(t, cafeRepo, reviewRepo, memory.NewTransactionManager(memory.NewStore()))

	rec := api.do(http.MethodGet, "/api/cafes", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[usecase.CafePage](t, rec)
	assert.True(t, page.Meta.Degraded)
	assert.Empty(t, page.Data.Cafes)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	rec = api.do(http.MethodGet, "/api/reviews/cafe/8f14e45f-ceea-4a6b-9f3e-000000000000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[usecase.ReviewPage](t, rec).Meta.Degraded)

	rec = api.do(http.MethodGet, "/api/cafes/map/markers", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	markers := decode[[]entity.CafeMarker](t, rec)
	assert.True(t, markers.Meta.Degraded)
	assert.NotNil(t, markers.Data)
	assert.Empty(t, markers.Data)
}
