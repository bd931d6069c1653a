package mongo

import (
	"context"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	store *Store
}

// NewReviewRepository creates a new Mongo-backed review repository.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

// reviewRevisionField is bumped on the cafe document by every review insert, so the
// insert conflicts with a concurrent delete or rating refresh of the same cafe.
const reviewRevisionField = "reviewRevision"

// CreateReview persists a new review. The cafe must exist when the transaction commits.
func (r *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	return r.store.inTransaction(ctx, func(ctx context.Context) error {
		result, err := r.store.cafes.UpdateOne(ctx,
			bson.M{"_id": review.CafeID.String()},
			bson.M{"$inc": bson.M{reviewRevisionField: 1}},
		)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check cafe")
		}
		if result.MatchedCount == 0 {
			return repository.ErrReviewCafeMissing
		}

		if _, err := r.store.reviews.InsertOne(ctx, fromReviewDomain(review)); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
		}

		return nil
	})
}

// FindReviewsByCafe returns a cafe's reviews, newest first.
func (r *reviewRepository) FindReviewsByCafe(ctx context.Context, cafeID uuid.UUID, skip, limit int) ([]*entity.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(max(skip, 0)))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.store.reviews.Find(ctx, bson.M{"cafeId": cafeID.String()}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reviews")
	}
	defer cursor.Close(ctx)

	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode reviews")
	}

	reviews := make([]*entity.Review, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, docs[i].toDomain())
	}

	return reviews, nil
}

// CountReviewsByCafe counts a cafe's reviews.
func (r *reviewRepository) CountReviewsByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error) {
	count, err := r.store.reviews.CountDocuments(ctx, bson.M{"cafeId": cafeID.String()})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count reviews")
	}

	return count, nil
}

// DeleteReviewsByCafe removes every review of a cafe.
func (r *reviewRepository) DeleteReviewsByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error) {
	result, err := r.store.reviews.DeleteMany(ctx, bson.M{"cafeId": cafeID.String()})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete reviews")
	}

	return result.DeletedCount, nil
}
