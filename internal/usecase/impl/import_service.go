package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cafemap/config"
	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const wipeBatchSize = 100

// importService implements the ImportUsecase interface on top of the same
// moderation and rating paths the HTTP API uses.
type importService struct {
	cafeRepo   repository.CafeRepository
	moderation usecase.ModerationUsecase
	aggregator usecase.RatingAggregator
	catalog    *config.CatalogConfig
	logger     *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	CafeRepo   repository.CafeRepository
	Moderation usecase.ModerationUsecase
	Aggregator usecase.RatingAggregator
	Config     *config.Config
	Logger     *slog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		cafeRepo:   params.CafeRepo,
		moderation: params.Moderation,
		aggregator: params.Aggregator,
		catalog:    catalogConfig(params.Config),
		logger:     params.Logger,
	}
}

// Import loads records in order. Invalid records and reviews are skipped and reported;
// store failures abort the run.
func (s *importService) Import(ctx context.Context, records []usecase.ImportRecord, opts usecase.ImportOptions) (*usecase.ImportResult, error) {
	result := &usecase.ImportResult{}

	if opts.Wipe {
		wiped, err := s.wipe(ctx)
		if err != nil {
			return result, err
		}
		result.Wiped = wiped
		s.logger.Info("Wiped catalog before import", slog.Int64("cafes", wiped))
	}

	for i := range records {
		rec := &records[i]

		cafe, err := s.newImportedCafe(rec, time.Now().UTC())
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("record %d (%s): %v", i, rec.Name, err))

			continue
		}

		_, err = createWithUniqueSlug(ctx, s.cafeRepo, cafe, s.catalog.MaxSlugAttempts, func(ctx context.Context) error {
			return s.cafeRepo.CreateCafe(ctx, cafe)
		})
		if err != nil {
			return result, errors.Wrapf(err, "failed to import %q", rec.Name)
		}
		result.CafesCreated++

		for j, r := range rec.Reviews {
			review, err := newReview(&usecase.SubmitReviewInput{
				CafeID:       cafe.ID,
				ReviewerName: r.ReviewerName,
				Rating:       r.Rating,
				Comment:      r.Comment,
			}, time.Now())
			if err != nil {
				result.Skipped = append(result.Skipped, fmt.Sprintf("%s review %d: %v", cafe.Slug, j, err))

				continue
			}

			if err := s.aggregator.OnReviewCreated(ctx, review); err != nil {
				return result, errors.Wrapf(err, "failed to import review %d of %q", j, cafe.Slug)
			}
			result.ReviewsLoaded++
		}

		s.logger.Debug("Imported cafe",
			slog.String("slug", cafe.Slug),
			slog.Int("reviews", len(rec.Reviews)),
		)
	}

	return result, nil
}

// wipe deletes every cafe through the moderation path so reviews go with them.
func (s *importService) wipe(ctx context.Context) (int64, error) {
	var wiped int64
	sort := repository.CafeSort{Field: repository.SortByCreatedAt}

	for {
		cafes, err := s.cafeRepo.QueryCafes(ctx, repository.CafeFilter{}, sort, 0, wipeBatchSize)
		if err != nil {
			return wiped, errors.Wrap(err, "failed to list cafes for wipe")
		}
		if len(cafes) == 0 {
			return wiped, nil
		}

		for _, cafe := range cafes {
			if err := s.moderation.DeleteCafe(ctx, cafe.ID, entity.OperatorCapability); err != nil {
				return wiped, errors.Wrapf(err, "failed to wipe %q", cafe.Slug)
			}
			wiped++
		}
	}
}

func (s *importService) newImportedCafe(rec *usecase.ImportRecord, now time.Time) (*entity.Cafe, error) {
	name := strings.TrimSpace(rec.Name)
	address := strings.TrimSpace(rec.Address)
	if name == "" || address == "" {
		return nil, errors.New("name and address are required")
	}

	priceRange := rec.PriceRange
	if priceRange == "" {
		priceRange = entity.DefaultPriceRange
	}
	if !priceRange.IsValid() {
		return nil, errors.Errorf("invalid priceRange %q", priceRange)
	}

	location := entity.Location{Lng: s.catalog.DefaultCenter.Lng, Lat: s.catalog.DefaultCenter.Lat}
	if rec.Location != nil {
		if err := validateLocation(*rec.Location); err != nil {
			return nil, err
		}
		location = *rec.Location
	}

	slug := entity.Slugify(name)
	if slug == "" {
		return nil, errors.New("name has no letters or digits")
	}

	photos := rec.Photos
	if photos == nil {
		photos = []string{}
	}
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Cafe{
		ID:           uuid.New(),
		Slug:         slug,
		Name:         name,
		Description:  strings.TrimSpace(rec.Description),
		Address:      address,
		Location:     location,
		Phone:        strings.TrimSpace(rec.Phone),
		Website:      strings.TrimSpace(rec.Website),
		Photos:       append([]string(nil), photos...),
		PriceRange:   priceRange,
		Features:     rec.Features.Normalized(),
		OpeningHours: rec.OpeningHours,
		Tags:         append([]string(nil), tags...),
		// Featured cafes are always verified.
		Featured:  rec.Featured,
		Verified:  rec.Verified || rec.Featured,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
