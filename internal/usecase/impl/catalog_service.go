// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"cafemap/config"
	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	orderAsc  = "asc"
	orderDesc = "desc"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	cafeRepo   repository.CafeRepository
	reviewRepo repository.ReviewRepository
	catalog    *config.CatalogConfig
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CafeRepo   repository.CafeRepository
	ReviewRepo repository.ReviewRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		cafeRepo:   params.CafeRepo,
		reviewRepo: params.ReviewRepo,
		catalog:    catalogConfig(params.Config),
		logger:     params.Logger,
	}
}

func catalogConfig(cfg *config.Config) *config.CatalogConfig {
	if cfg == nil || cfg.Catalog == nil {
		return config.DefaultCatalogConfig()
	}

	return cfg.Catalog
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListCafes returns one page of cafes visible to the caller.
func (s *catalogService) ListCafes(ctx context.Context, opts *usecase.CafeListOptions, capability entity.Capability) (*usecase.CafePage, error) {
	if opts == nil {
		opts = &usecase.CafeListOptions{}
	}

	page, limit := normalizePage(opts.Page, opts.Limit, s.catalog.DefaultPageSize, s.catalog.MaxPageSize)
	filter, satisfiable, err := s.buildFilter(opts, capability)
	if err != nil {
		return nil, err
	}
	if !satisfiable {
		return &usecase.CafePage{
			Cafes:      []*entity.Cafe{},
			Pagination: usecase.NewPagination(page, limit, 0),
		}, nil
	}
	sort := buildSort(opts, filter.Near != nil)
	skip := (page - 1) * limit

	cafes, err := s.cafeRepo.QueryCafes(ctx, filter, sort, skip, limit)
	if err != nil {
		s.log(ctx).Warn("Cafe query failed, returning degraded page", slog.Any("error", err))

		return degradedCafePage(page, limit), nil
	}

	total, err := s.cafeRepo.CountCafes(ctx, filter)
	if err != nil {
		s.log(ctx).Warn("Cafe count failed, returning degraded page", slog.Any("error", err))

		return degradedCafePage(page, limit), nil
	}

	if cafes == nil {
		cafes = []*entity.Cafe{}
	}

	return &usecase.CafePage{
		Cafes:      cafes,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

func degradedCafePage(page, limit int) *usecase.CafePage {
	return &usecase.CafePage{
		Cafes:      []*entity.Cafe{},
		Pagination: usecase.NewPagination(page, limit, 0),
		Degraded:   true,
	}
}

// buildFilter turns list options into the store predicate, applying the visibility rule.
// A feature key or price range no cafe can carry makes the filter unsatisfiable.
func (s *catalogService) buildFilter(opts *usecase.CafeListOptions, capability entity.Capability) (repository.CafeFilter, bool, error) {
	filter := repository.CafeFilter{
		Search:       strings.TrimSpace(opts.Search),
		VerifiedOnly: !(capability.Operator && opts.ShowAll),
	}

	for _, key := range opts.Features {
		if !key.IsValid() {
			return filter, false, nil
		}
		filter.Features = append(filter.Features, key)
	}

	if opts.PriceRange != "" {
		if !opts.PriceRange.IsValid() {
			return filter, false, nil
		}
		filter.PriceRange = opts.PriceRange
	}

	if opts.Lat == nil || opts.Lng == nil {
		return filter, true, nil
	}

	lat, lng := *opts.Lat, *opts.Lng
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return filter, false, domainerrors.NewValidationError("lat must be within [-90, 90] and lng within [-180, 180]")
	}

	radius := opts.Radius
	if radius <= 0 || math.IsNaN(radius) {
		radius = s.catalog.DefaultRadius
	}
	radius = math.Min(radius, s.catalog.MaxRadius)

	filter.Near = &repository.GeoFilter{
		Center:       entity.Location{Lng: lng, Lat: lat},
		RadiusMeters: radius,
	}

	return filter, true, nil
}

// buildSort resolves sortBy/order. Unknown fields fall back to averageRating, and distance
// is only honored when a center was given.
func buildSort(opts *usecase.CafeListOptions, hasCenter bool) repository.CafeSort {
	field := repository.SortField(opts.SortBy)
	if !field.IsValid() || (field == repository.SortByDistance && !hasCenter) {
		field = repository.SortByRating
	}

	order := strings.ToLower(strings.TrimSpace(opts.Order))
	if order != orderAsc && order != orderDesc {
		order = orderDesc
		// Nearest first unless the caller asked otherwise.
		if field == repository.SortByDistance {
			order = orderAsc
		}
	}

	return repository.CafeSort{Field: field, Desc: order == orderDesc}
}

// normalizePage clamps invalid page/limit values to their defaults. Page is capped so
// that (page-1)*limit never overflows.
func normalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page < 1 {
		page = 1
	}
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}

	return page, limit
}

// GetCafeBySlug returns a cafe by slug. Pending cafes read as not found for the public.
func (s *catalogService) GetCafeBySlug(ctx context.Context, slug string, capability entity.Capability) (*entity.Cafe, error) {
	cafe, err := s.cafeRepo.FindCafeBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cafe by slug")
	}

	if !cafe.State().IsPublic() && !capability.Operator {
		return nil, domainerrors.ErrCafeNotFound
	}

	return cafe, nil
}

// ListMapMarkers returns markers of verified cafes. Store failures degrade to no markers.
func (s *catalogService) ListMapMarkers(ctx context.Context) (*usecase.MarkerList, error) {
	markers, err := s.cafeRepo.FindMarkers(ctx)
	if err != nil {
		s.log(ctx).Warn("Marker query failed, returning degraded list", slog.Any("error", err))

		return &usecase.MarkerList{Markers: []entity.CafeMarker{}, Degraded: true}, nil
	}

	if markers == nil {
		markers = []entity.CafeMarker{}
	}

	return &usecase.MarkerList{Markers: markers}, nil
}

// ListReviews returns a page of a cafe's reviews, newest first.
func (s *catalogService) ListReviews(ctx context.Context, cafeID uuid.UUID, page, limit int) (*usecase.ReviewPage, error) {
	page, limit = normalizePage(page, limit, s.catalog.DefaultReviewPageSize, s.catalog.MaxPageSize)
	skip := (page - 1) * limit

	reviews, err := s.reviewRepo.FindReviewsByCafe(ctx, cafeID, skip, limit)
	if err != nil {
		s.log(ctx).Warn("Review query failed, returning degraded page",
			slog.String("cafe_id", cafeID.String()),
			slog.Any("error", err),
		)

		return degradedReviewPage(page, limit), nil
	}

	total, err := s.reviewRepo.CountReviewsByCafe(ctx, cafeID)
	if err != nil {
		s.log(ctx).Warn("Review count failed, returning degraded page",
			slog.String("cafe_id", cafeID.String()),
			slog.Any("error", err),
		)

		return degradedReviewPage(page, limit), nil
	}

	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return &usecase.ReviewPage{
		Reviews:    reviews,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

func degradedReviewPage(page, limit int) *usecase.ReviewPage {
	return &usecase.ReviewPage{
		Reviews:    []*entity.Review{},
		Pagination: usecase.NewPagination(page, limit, 0),
		Degraded:   true,
	}
}
