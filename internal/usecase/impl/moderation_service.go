package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cafemap/config"
	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/domain/service"
	"cafemap/internal/errors"
	"cafemap/internal/usecase"
	"cafemap/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// moderationService implements the ModerationUsecase interface.
type moderationService struct {
	txManager repository.TransactionManager
	cafeRepo  repository.CafeRepository
	cafeLocks *util.KeyMutex
	publisher service.EventPublisher
	catalog   *config.CatalogConfig
	logger    *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CafeRepo  repository.CafeRepository
	CafeLocks *util.KeyMutex
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		txManager: params.TxManager,
		cafeRepo:  params.CafeRepo,
		cafeLocks: params.CafeLocks,
		publisher: params.Publisher,
		catalog:   catalogConfig(params.Config),
		logger:    params.Logger,
	}
}

func (s *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SubmitCafe creates a pending cafe from a public submission together with its private contact.
func (s *moderationService) SubmitCafe(ctx context.Context, input *usecase.SubmitCafeInput) (*entity.Cafe, error) {
	cafe, contact, err := s.newSubmission(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	_, err = createWithUniqueSlug(ctx, s.cafeRepo, cafe, s.catalog.MaxSlugAttempts, func(ctx context.Context) error {
		return s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
			if err := repos.NewCafeRepository().CreateCafe(ctx, cafe); err != nil {
				return err
			}
			contact.CafeID = cafe.ID

			return repos.NewCafeRepository().SaveSubmitterContact(ctx, contact)
		})
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Cafe submitted",
		slog.String("cafe_id", cafe.ID.String()),
		slog.String("slug", cafe.Slug),
	)
	publishCafeEvent(ctx, s.publisher, s.logger, service.EventCafeSubmitted, cafe)

	return cafe, nil
}

func (s *moderationService) newSubmission(input *usecase.SubmitCafeInput, now time.Time) (*entity.Cafe, *entity.SubmitterContact, error) {
	if input == nil {
		return nil, nil, domainerrors.NewValidationError("name, address, ownerName and ownerPhone are required")
	}

	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	ownerName := strings.TrimSpace(input.OwnerName)
	ownerPhone := strings.TrimSpace(input.OwnerPhone)

	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", name},
		{"address", address},
		{"ownerName", ownerName},
		{"ownerPhone", ownerPhone},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, domainerrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}

	priceRange := input.PriceRange
	if priceRange == "" {
		priceRange = entity.DefaultPriceRange
	}
	if !priceRange.IsValid() {
		return nil, nil, domainerrors.NewValidationError("priceRange must be one of $, $$, $$$")
	}

	location := entity.Location{Lng: s.catalog.DefaultCenter.Lng, Lat: s.catalog.DefaultCenter.Lat}
	if input.Location != nil {
		if err := validateLocation(*input.Location); err != nil {
			return nil, nil, err
		}
		location = *input.Location
	}

	features := entity.FeatureSet{entity.FeatureWifi: true}
	if input.Features != nil {
		features = input.Features
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = strings.ReplaceAll(s.catalog.DefaultDescription, "%s", name)
	}

	photos := input.Photos
	if photos == nil {
		photos = []string{}
	}

	cafe := &entity.Cafe{
		ID:          uuid.New(),
		Slug:        entity.Slugify(name),
		Name:        name,
		Description: description,
		Address:     address,
		Location:    location,
		Phone:       strings.TrimSpace(input.Phone),
		Website:     strings.TrimSpace(input.Website),
		Photos:      append([]string(nil), photos...),
		PriceRange:  priceRange,
		Features:    features.Normalized(),
		Tags:        append([]string(nil), s.catalog.SubmissionTags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if cafe.Slug == "" {
		return nil, nil, domainerrors.NewValidationError("name must contain at least one letter or digit")
	}

	contact := &entity.SubmitterContact{
		Name:      ownerName,
		Phone:     ownerPhone,
		CreatedAt: now,
	}

	return cafe, contact, nil
}

// VerifyCafe approves a cafe. Verifying clears featured and is idempotent.
func (s *moderationService) VerifyCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) (*entity.Cafe, error) {
	if err := requireOperator(capability); err != nil {
		return nil, err
	}

	before, err := s.findCafe(ctx, id)
	if err != nil {
		return nil, err
	}

	cafe, err := s.setModeration(ctx, id, true, false)
	if err != nil {
		return nil, err
	}

	if before.State() == entity.StatePending {
		publishCafeEvent(ctx, s.publisher, s.logger, service.EventCafeVerified, cafe)
	}

	return cafe, nil
}

// FeatureCafe promotes a verified cafe.
func (s *moderationService) FeatureCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) (*entity.Cafe, error) {
	if err := requireOperator(capability); err != nil {
		return nil, err
	}

	cafe, err := s.findCafe(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cafe.Verified {
		return nil, domainerrors.ErrFeatureRequiresVerified
	}

	return s.setModeration(ctx, id, true, true)
}

// UnfeatureCafe demotes a featured cafe back to verified.
func (s *moderationService) UnfeatureCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) (*entity.Cafe, error) {
	if err := requireOperator(capability); err != nil {
		return nil, err
	}

	cafe, err := s.findCafe(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.setModeration(ctx, id, cafe.Verified, false)
}

// EditCafe applies field edits. The slug and moderation flags never change here.
func (s *moderationService) EditCafe(ctx context.Context, id uuid.UUID, input *usecase.EditCafeInput, capability entity.Capability) (*entity.Cafe, error) {
	if err := requireOperator(capability); err != nil {
		return nil, err
	}

	update, err := buildCafeUpdate(input)
	if err != nil {
		return nil, err
	}

	cafe, err := s.cafeRepo.UpdateCafe(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrCafeUpdateFailed, err.Error())
	}

	return cafe, nil
}

func buildCafeUpdate(input *usecase.EditCafeInput) (*repository.CafeUpdate, error) {
	if input == nil {
		return &repository.CafeUpdate{}, nil
	}

	update := &repository.CafeUpdate{
		Description:  trimmed(input.Description),
		Address:      trimmed(input.Address),
		Phone:        trimmed(input.Phone),
		Website:      trimmed(input.Website),
		Photos:       input.Photos,
		Tags:         input.Tags,
		OpeningHours: input.OpeningHours,
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.NewValidationError("name must not be empty")
		}
		update.Name = &name
	}

	if update.Address != nil && *update.Address == "" {
		return nil, domainerrors.NewValidationError("address must not be empty")
	}

	if input.PriceRange != nil {
		if !input.PriceRange.IsValid() {
			return nil, domainerrors.NewValidationError("priceRange must be one of $, $$, $$$")
		}
		update.PriceRange = input.PriceRange
	}

	if input.Location != nil {
		if err := validateLocation(*input.Location); err != nil {
			return nil, err
		}
		update.Location = input.Location
	}

	if input.Features != nil {
		update.Features = input.Features.Normalized()
	}

	return update, nil
}

// DeleteCafe removes a cafe and its reviews. It holds the cafe lock so no review
// write can interleave and leave an orphan behind.
func (s *moderationService) DeleteCafe(ctx context.Context, id uuid.UUID, capability entity.Capability) error {
	if err := requireOperator(capability); err != nil {
		return err
	}

	unlock := s.cafeLocks.Lock(id.String())
	defer unlock()

	cafe, err := s.findCafe(ctx, id)
	if err != nil {
		return err
	}

	var removed int64
	err = s.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		n, err := repos.NewReviewRepository().DeleteReviewsByCafe(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete reviews")
		}
		removed = n

		return repos.NewCafeRepository().DeleteCafe(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return domainerrors.ErrCafeNotFound
		}

		return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	s.log(ctx).Info("Cafe deleted",
		slog.String("cafe_id", id.String()),
		slog.Int64("reviews_removed", removed),
	)
	publishCafeEvent(ctx, s.publisher, s.logger, service.EventCafeDeleted, cafe)

	return nil
}

// VerifyAll verifies every pending cafe.
func (s *moderationService) VerifyAll(ctx context.Context, capability entity.Capability) (int64, error) {
	if err := requireOperator(capability); err != nil {
		return 0, err
	}

	count, err := s.cafeRepo.VerifyAllPending(ctx)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrCafeUpdateFailed, err.Error())
	}

	s.log(ctx).Info("Verified all pending cafes", slog.Int64("count", count))

	return count, nil
}

func (s *moderationService) findCafe(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	cafe, err := s.cafeRepo.FindCafeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cafe")
	}

	return cafe, nil
}

func (s *moderationService) setModeration(ctx context.Context, id uuid.UUID, verified, featured bool) (*entity.Cafe, error) {
	cafe, err := s.cafeRepo.SetModeration(ctx, id, verified, featured)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			return nil, domainerrors.ErrCafeNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrCafeUpdateFailed, err.Error())
	}

	return cafe, nil
}

func requireOperator(capability entity.Capability) error {
	if !capability.Operator {
		return domainerrors.ErrForbidden
	}

	return nil
}

func validateLocation(loc entity.Location) error {
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return domainerrors.NewValidationError("location must have lat within [-90, 90] and lng within [-180, 180]")
	}

	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
