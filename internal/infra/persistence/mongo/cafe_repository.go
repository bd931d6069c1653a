package mongo

import (
	"context"
	"regexp"
	"strings"
	"time"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// earthRadiusMeters converts meters to the radians $centerSphere expects.
const earthRadiusMeters = 6378100.0

type cafeRepository struct {
	store *Store
}

// NewCafeRepository creates a new Mongo-backed cafe repository.
func NewCafeRepository(store *Store) repository.CafeRepository {
	return &cafeRepository{store: store}
}

func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}

// CreateCafe persists a new cafe.
func (r *cafeRepository) CreateCafe(ctx context.Context, cafe *entity.Cafe) error {
	if _, err := r.store.cafes.InsertOne(ctx, fromCafeDomain(cafe)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cafe")
	}

	return nil
}

// FindCafeByID retrieves a cafe by its unique ID.
func (r *cafeRepository) FindCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

// FindCafeBySlug retrieves a cafe by its slug.
func (r *cafeRepository) FindCafeBySlug(ctx context.Context, slug string) (*entity.Cafe, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *cafeRepository) findOne(ctx context.Context, filter bson.M) (*entity.Cafe, error) {
	var doc cafeDocument
	if err := r.store.cafes.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCafeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafe")
	}

	return doc.toDomain(), nil
}

// SlugExists reports whether any cafe owns the slug.
func (r *cafeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.store.cafes.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check cafe slug")
	}

	return count > 0, nil
}

// UpdateCafe applies field-level edits and returns the updated cafe.
func (r *cafeRepository) UpdateCafe(ctx context.Context, id uuid.UUID, update *repository.CafeUpdate) (*entity.Cafe, error) {
	return r.updateReturning(ctx, id, updateFields(update))
}

// SetModeration writes both moderation flags in one update.
func (r *cafeRepository) SetModeration(ctx context.Context, id uuid.UUID, verified, featured bool) (*entity.Cafe, error) {
	return r.updateReturning(ctx, id, bson.M{"verified": verified, "featured": featured})
}

func (r *cafeRepository) updateReturning(ctx context.Context, id uuid.UUID, set bson.M) (*entity.Cafe, error) {
	set["updatedAt"] = time.Now().UTC()

	var doc cafeDocument
	err := r.store.cafes.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCafeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update cafe")
	}

	return doc.toDomain(), nil
}

func updateFields(update *repository.CafeUpdate) bson.M {
	set := bson.M{}
	if update == nil {
		return set
	}

	if update.Name != nil {
		set["name"] = *update.Name
		set["nameLower"] = strings.ToLower(*update.Name)
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}
	if update.PriceRange != nil {
		set["priceRange"] = string(*update.PriceRange)
	}
	if update.Location != nil {
		set["location"] = pointOf(*update.Location)
	}
	if update.Features != nil {
		set["features"] = featuresDocument(update.Features)
	}
	if update.Photos != nil {
		set["photos"] = update.Photos
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.OpeningHours != nil {
		set["openingHours"] = hoursDocument(update.OpeningHours)
	}

	return set
}

// VerifyAllPending verifies every pending cafe and returns how many changed.
func (r *cafeRepository) VerifyAllPending(ctx context.Context) (int64, error) {
	result, err := r.store.cafes.UpdateMany(ctx,
		bson.M{"verified": false},
		bson.M{"$set": bson.M{"verified": true, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to verify pending cafes")
	}

	return result.ModifiedCount, nil
}

// RefreshRatingSummary aggregates the cafe's reviews and stores the result inside one
// transaction. Every review insert also writes the cafe document, so a refresh that
// missed a concurrent insert hits a write conflict and is retried with a fresh snapshot.
func (r *cafeRepository) RefreshRatingSummary(ctx context.Context, id uuid.UUID) (entity.RatingSummary, error) {
	var summary entity.RatingSummary
	err := r.store.inTransaction(ctx, func(ctx context.Context) error {
		cursor, err := r.store.reviews.Aggregate(ctx, summaryPipeline(id))
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to summarize reviews")
		}
		defer cursor.Close(ctx)

		var totals struct {
			Total int64 `bson:"total"`
			Count int64 `bson:"count"`
		}
		if cursor.Next(ctx) {
			if err := cursor.Decode(&totals); err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to decode review summary")
			}
		}
		if err := cursor.Err(); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to summarize reviews")
		}
		summary = entity.SummaryFromTotals(totals.Total, totals.Count)

		result, err := r.store.cafes.UpdateOne(ctx,
			bson.M{"_id": id.String()},
			bson.M{"$set": bson.M{
				"averageRating": summary.AverageRating,
				"totalReviews":  summary.TotalReviews,
			}},
		)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to store rating summary")
		}
		if result.MatchedCount == 0 {
			return repository.ErrCafeNotFound
		}

		return nil
	})
	if err != nil {
		return entity.RatingSummary{}, err
	}

	return summary, nil
}

func summaryPipeline(cafeID uuid.UUID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"cafeId": cafeID.String()}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}
}

// DeleteCafe removes a cafe with its reviews and submitter contact in one transaction.
func (r *cafeRepository) DeleteCafe(ctx context.Context, id uuid.UUID) error {
	return r.store.inTransaction(ctx, func(ctx context.Context) error {
		result, err := r.store.cafes.DeleteOne(ctx, bson.M{"_id": id.String()})
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete cafe")
		}
		if result.DeletedCount == 0 {
			return repository.ErrCafeNotFound
		}

		if _, err := r.store.reviews.DeleteMany(ctx, bson.M{"cafeId": id.String()}); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete cafe reviews")
		}
		if _, err := r.store.contacts.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete submitter contact")
		}

		return nil
	})
}

// QueryCafes returns one ordered page of cafes matching the filter.
// Distance ordering runs as a $geoNear aggregation, everything else as a plain find.
func (r *cafeRepository) QueryCafes(ctx context.Context, filter repository.CafeFilter, sort repository.CafeSort, skip, limit int) ([]*entity.Cafe, error) {
	var (
		cursor *mongo.Cursor
		err    error
	)
	if sort.Field == repository.SortByDistance && filter.Near != nil {
		cursor, err = r.store.cafes.Aggregate(ctx, geoNearPipeline(filter, sort.Desc, skip, limit))
	} else {
		opts := options.Find().SetSort(cafeSort(sort)).SetSkip(int64(max(skip, 0)))
		if limit > 0 {
			opts.SetLimit(int64(limit))
		}
		cursor, err = r.store.cafes.Find(ctx, cafeFilter(filter), opts)
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query cafes")
	}
	defer cursor.Close(ctx)

	cafes := make([]*entity.Cafe, 0)
	for cursor.Next(ctx) {
		var doc cafeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode cafe")
		}
		cafes = append(cafes, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate cafes")
	}

	return cafes, nil
}

// CountCafes counts cafes matching the same predicate as QueryCafes.
func (r *cafeRepository) CountCafes(ctx context.Context, filter repository.CafeFilter) (int64, error) {
	count, err := r.store.cafes.CountDocuments(ctx, cafeFilter(filter))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count cafes")
	}

	return count, nil
}

// FindMarkers returns the map projection of every verified cafe.
func (r *cafeRepository) FindMarkers(ctx context.Context) ([]entity.CafeMarker, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{
			"slug": 1, "name": 1, "location": 1, "averageRating": 1, "priceRange": 1,
			"photos": bson.M{"$slice": 1},
		})
	cursor, err := r.store.cafes.Find(ctx, bson.M{"verified": true}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafe markers")
	}
	defer cursor.Close(ctx)

	markers := make([]entity.CafeMarker, 0)
	for cursor.Next(ctx) {
		var doc cafeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode cafe marker")
		}
		markers = append(markers, entity.MarkerOf(doc.toDomain()))
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate cafe markers")
	}

	return markers, nil
}

// SaveSubmitterContact stores the private contact record of a submission.
func (r *cafeRepository) SaveSubmitterContact(ctx context.Context, contact *entity.SubmitterContact) error {
	exists, err := r.store.cafes.CountDocuments(ctx, bson.M{"_id": contact.CafeID.String()}, options.Count().SetLimit(1))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check cafe")
	}
	if exists == 0 {
		return repository.ErrCafeNotFound
	}

	doc := contactDocument{
		CafeID:    contact.CafeID.String(),
		Name:      contact.Name,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
	}
	_, err = r.store.contacts.ReplaceOne(ctx, bson.M{"_id": doc.CafeID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save submitter contact")
	}

	return nil
}

// cafeFilter translates the shared predicate, including the geo radius.
func cafeFilter(filter repository.CafeFilter) bson.M {
	query := baseFilter(filter)
	if filter.Near != nil {
		query["location"] = bson.M{"$geoWithin": bson.M{
			"$centerSphere": bson.A{
				bson.A{filter.Near.Center.Lng, filter.Near.Center.Lat},
				filter.Near.RadiusMeters / earthRadiusMeters,
			},
		}}
	}

	return query
}

// baseFilter is everything but the geo radius, which $geoNear applies itself.
func baseFilter(filter repository.CafeFilter) bson.M {
	query := bson.M{}
	if filter.VerifiedOnly {
		query["verified"] = true
	}
	if filter.PriceRange != "" {
		query["priceRange"] = string(filter.PriceRange)
	}
	for _, key := range filter.Features {
		query["features."+string(key)] = true
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}

	return query
}

func sortDirection(desc bool) int {
	if desc {
		return -1
	}

	return 1
}

// cafeSort renders featured desc, the requested field, createdAt desc, _id asc.
func cafeSort(sort repository.CafeSort) bson.D {
	field := "averageRating"
	switch sort.Field {
	case repository.SortByReviews:
		field = "totalReviews"
	case repository.SortByName:
		field = "nameLower"
	case repository.SortByCreatedAt:
		field = "createdAt"
	}

	return bson.D{
		{Key: "featured", Value: -1},
		{Key: field, Value: sortDirection(sort.Desc)},
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: 1},
	}
}

func geoNearPipeline(filter repository.CafeFilter, desc bool, skip, limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near":          pointOf(filter.Near.Center),
			"distanceField": "distance",
			"maxDistance":   filter.Near.RadiusMeters,
			"spherical":     true,
			"query":         baseFilter(filter),
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "featured", Value: -1},
			{Key: "distance", Value: sortDirection(desc)},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$skip", Value: int64(skip)}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(limit)}})
	}

	return pipeline
}
