package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cafePointExpr must match the expression of idx_cafes_geog for the index to be used.
const cafePointExpr = "(ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography)"

const centerPointExpr = "(ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography)"

type cafeRepository struct {
	db *gorm.DB
}

// NewCafeRepository creates a new PostgreSQL-backed cafe repository.
func NewCafeRepository(db *gorm.DB) repository.CafeRepository {
	return &cafeRepository{db: db}
}

// CreateCafe persists a new cafe.
func (r *cafeRepository) CreateCafe(ctx context.Context, cafe *entity.Cafe) error {
	m := fromCafeDomain(cafe)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cafe")
	}

	return nil
}

// FindCafeByID retrieves a cafe by its unique ID.
func (r *cafeRepository) FindCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindCafeBySlug retrieves a cafe by its slug.
func (r *cafeRepository) FindCafeBySlug(ctx context.Context, slug string) (*entity.Cafe, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *cafeRepository) findOne(ctx context.Context, query string, arg any) (*entity.Cafe, error) {
	var m model.CafeModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCafeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafe")
	}

	return toCafeDomain(&m), nil
}

// SlugExists reports whether any cafe owns the slug.
func (r *cafeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CafeModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check cafe slug")
	}

	return count > 0, nil
}

// UpdateCafe applies field-level edits and returns the updated cafe.
func (r *cafeRepository) UpdateCafe(ctx context.Context, id uuid.UUID, update *repository.CafeUpdate) (*entity.Cafe, error) {
	return r.updateReturning(ctx, id, updateColumns(update))
}

// SetModeration writes both moderation flags in one statement.
func (r *cafeRepository) SetModeration(ctx context.Context, id uuid.UUID, verified, featured bool) (*entity.Cafe, error) {
	return r.updateReturning(ctx, id, map[string]any{
		"verified": verified,
		"featured": featured,
	})
}

func (r *cafeRepository) updateReturning(ctx context.Context, id uuid.UUID, values map[string]any) (*entity.Cafe, error) {
	values["updated_at"] = time.Now().UTC()

	var m model.CafeModel
	result := r.db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cafe")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCafeNotFound
	}

	return toCafeDomain(&m), nil
}

func updateColumns(update *repository.CafeUpdate) map[string]any {
	values := make(map[string]any)
	if update == nil {
		return values
	}

	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Address != nil {
		values["address"] = *update.Address
	}
	if update.Phone != nil {
		values["phone"] = *update.Phone
	}
	if update.Website != nil {
		values["website"] = *update.Website
	}
	if update.PriceRange != nil {
		values["price_range"] = string(*update.PriceRange)
	}
	if update.Location != nil {
		values["longitude"] = update.Location.Lng
		values["latitude"] = update.Location.Lat
	}
	if update.Features != nil {
		values["features"] = featuresToJSON(update.Features)
	}
	if update.Photos != nil {
		values["photos"] = pq.StringArray(update.Photos)
	}
	if update.Tags != nil {
		values["tags"] = pq.StringArray(update.Tags)
	}
	if update.OpeningHours != nil {
		values["opening_hours"] = datatypes.NewJSONType(update.OpeningHours)
	}

	return values
}

// VerifyAllPending verifies every pending cafe and returns how many changed.
func (r *cafeRepository) VerifyAllPending(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CafeModel{}).
		Where("verified = ?", false).
		Updates(map[string]any{"verified": true, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to verify pending cafes")
	}

	return result.RowsAffected, nil
}

// RefreshRatingSummary locks the cafe row, aggregates its reviews and stores the result
// in one transaction. The row lock orders concurrent refreshes, and each aggregate
// runs after the lock is taken, so the last writer always saw every committed review.
func (r *cafeRepository) RefreshRatingSummary(ctx context.Context, id uuid.UUID) (entity.RatingSummary, error) {
	var summary entity.RatingSummary
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.CafeModel
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", id).
			Limit(1).
			Find(&locked)
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to lock cafe")
		}
		if result.RowsAffected == 0 {
			return repository.ErrCafeNotFound
		}

		var totals struct {
			Total int64
			Count int64
		}
		err := tx.Model(&model.ReviewModel{}).
			Select("COALESCE(SUM(rating), 0) AS total, COUNT(*) AS count").
			Where("cafe_id = ?", id).
			Scan(&totals).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to summarize reviews")
		}
		summary = entity.SummaryFromTotals(totals.Total, totals.Count)

		err = tx.Model(&model.CafeModel{}).
			Where("id = ?", id).
			UpdateColumns(map[string]any{
				"average_rating": summary.AverageRating,
				"total_reviews":  summary.TotalReviews,
			}).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to store rating summary")
		}

		return nil
	})
	if err != nil {
		return entity.RatingSummary{}, err
	}

	return summary, nil
}

// DeleteCafe removes a cafe. Reviews and the submitter contact cascade.
func (r *cafeRepository) DeleteCafe(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CafeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cafe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCafeNotFound
	}

	return nil
}

// QueryCafes returns one ordered page of cafes matching the filter.
func (r *cafeRepository) QueryCafes(ctx context.Context, filter repository.CafeFilter, sort repository.CafeSort, skip, limit int) ([]*entity.Cafe, error) {
	db := applyCafeFilter(r.db.WithContext(ctx).Model(&model.CafeModel{}), filter).
		Order(cafeOrder(sort, filter.Near)).
		Offset(max(skip, 0))
	if limit > 0 {
		db = db.Limit(limit)
	}

	var models []model.CafeModel
	if err := db.Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query cafes")
	}

	cafes := make([]*entity.Cafe, 0, len(models))
	for i := range models {
		cafes = append(cafes, toCafeDomain(&models[i]))
	}

	return cafes, nil
}

// CountCafes counts cafes matching the same predicate as QueryCafes.
func (r *cafeRepository) CountCafes(ctx context.Context, filter repository.CafeFilter) (int64, error) {
	var count int64
	if err := applyCafeFilter(r.db.WithContext(ctx).Model(&model.CafeModel{}), filter).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count cafes")
	}

	return count, nil
}

// FindMarkers returns the map projection of every verified cafe.
func (r *cafeRepository) FindMarkers(ctx context.Context) ([]entity.CafeMarker, error) {
	var models []model.CafeModel
	err := r.db.WithContext(ctx).
		Select("id", "slug", "name", "longitude", "latitude", "average_rating", "price_range", "photos").
		Where("verified = ?", true).
		Order("featured DESC, created_at DESC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafe markers")
	}

	markers := make([]entity.CafeMarker, 0, len(models))
	for i := range models {
		markers = append(markers, entity.MarkerOf(toCafeDomain(&models[i])))
	}

	return markers, nil
}

// SaveSubmitterContact stores the private contact record of a submission.
func (r *cafeRepository) SaveSubmitterContact(ctx context.Context, contact *entity.SubmitterContact) error {
	m := &model.SubmitterContactModel{
		CafeID:    contact.CafeID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCafeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save submitter contact")
	}

	return nil
}

func applyCafeFilter(db *gorm.DB, filter repository.CafeFilter) *gorm.DB {
	if filter.VerifiedOnly {
		db = db.Where("verified = ?", true)
	}
	if filter.PriceRange != "" {
		db = db.Where("price_range = ?", string(filter.PriceRange))
	}
	if len(filter.Features) > 0 {
		required := make(entity.FeatureSet, len(filter.Features))
		for _, key := range filter.Features {
			required[key] = true
		}
		db = db.Where("features @> ?::jsonb", featuresToJSON(required))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		db = db.Where(
			"(name ILIKE ? OR description ILIKE ? OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?))",
			pattern, pattern, pattern,
		)
	}
	if filter.Near != nil {
		db = db.Where(
			fmt.Sprintf("ST_DWithin(%s, %s, ?)", cafePointExpr, centerPointExpr),
			filter.Near.Center.Lng, filter.Near.Center.Lat, filter.Near.RadiusMeters,
		)
	}

	return db
}

// cafeOrder renders featured desc, the requested field, createdAt desc, id asc.
func cafeOrder(sort repository.CafeSort, near *repository.GeoFilter) clause.OrderBy {
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	var (
		field string
		vars  []any
	)
	switch sort.Field {
	case repository.SortByReviews:
		field = "total_reviews"
	case repository.SortByName:
		field = "LOWER(name)"
	case repository.SortByCreatedAt:
		field = "created_at"
	case repository.SortByDistance:
		if near != nil {
			field = fmt.Sprintf("ST_Distance(%s, %s)", cafePointExpr, centerPointExpr)
			vars = []any{near.Center.Lng, near.Center.Lat}

			break
		}

		field = "average_rating"
	default:
		field = "average_rating"
	}

	return clause.OrderBy{
		Expression: clause.Expr{
			SQL:                fmt.Sprintf("featured DESC, %s %s, created_at DESC, id ASC", field, dir),
			Vars:               vars,
			WithoutParentheses: true,
		},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func featuresToJSON(features entity.FeatureSet) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(features))
	for key, enabled := range features {
		out[string(key)] = enabled
	}

	return out
}

func featuresFromJSON(raw datatypes.JSONMap) entity.FeatureSet {
	out := make(entity.FeatureSet, len(raw))
	for key, value := range raw {
		if enabled, ok := value.(bool); ok {
			out[entity.FeatureKey(key)] = enabled
		}
	}

	return out
}

func fromCafeDomain(cafe *entity.Cafe) *model.CafeModel {
	m := &model.CafeModel{
		ID:            cafe.ID,
		Slug:          cafe.Slug,
		Name:          cafe.Name,
		Description:   cafe.Description,
		Address:       cafe.Address,
		Longitude:     cafe.Location.Lng,
		Latitude:      cafe.Location.Lat,
		Phone:         cafe.Phone,
		Website:       cafe.Website,
		Photos:        pq.StringArray(cafe.Photos),
		PriceRange:    string(cafe.PriceRange),
		Features:      featuresToJSON(cafe.Features),
		OpeningHours:  datatypes.NewJSONType(cafe.OpeningHours),
		Tags:          pq.StringArray(cafe.Tags),
		AverageRating: cafe.AverageRating,
		TotalReviews:  cafe.TotalReviews,
		Featured:      cafe.Featured,
		Verified:      cafe.Verified,
		CreatedAt:     cafe.CreatedAt,
		UpdatedAt:     cafe.UpdatedAt,
	}
	if m.Photos == nil {
		m.Photos = pq.StringArray{}
	}
	if m.Tags == nil {
		m.Tags = pq.StringArray{}
	}
	return m
}

func toCafeDomain(m *model.CafeModel) *entity.Cafe {
	return &entity.Cafe{
		ID:            m.ID,
		Slug:          m.Slug,
		Name:          m.Name,
		Description:   m.Description,
		Address:       m.Address,
		Location:      entity.Location{Lng: m.Longitude, Lat: m.Latitude},
		Phone:         m.Phone,
		Website:       m.Website,
		Photos:        []string(m.Photos),
		PriceRange:    entity.PriceRange(m.PriceRange),
		Features:      featuresFromJSON(m.Features),
		OpeningHours:  m.OpeningHours.Data(),
		Tags:          []string(m.Tags),
		AverageRating: m.AverageRating,
		TotalReviews:  m.TotalReviews,
		Featured:      m.Featured,
		Verified:      m.Verified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
