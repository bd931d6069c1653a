package postgres

import (
	"context"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview persists a new review.
func (r *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	m := fromReviewDomain(review)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReviewCafeMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

// FindReviewsByCafe returns a cafe's reviews, newest first.
func (r *reviewRepository) FindReviewsByCafe(ctx context.Context, cafeID uuid.UUID, skip, limit int) ([]*entity.Review, error) {
	db := r.db.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Order("created_at DESC, id ASC").
		Offset(max(skip, 0))
	if limit > 0 {
		db = db.Limit(limit)
	}

	var models []model.ReviewModel
	if err := db.Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reviews")
	}

	reviews := make([]*entity.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReviewDomain(&models[i]))
	}

	return reviews, nil
}

// CountReviewsByCafe counts a cafe's reviews.
func (r *reviewRepository) CountReviewsByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ReviewModel{}).Where("cafe_id = ?", cafeID).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count reviews")
	}

	return count, nil
}

// DeleteReviewsByCafe removes every review of a cafe.
func (r *reviewRepository) DeleteReviewsByCafe(ctx context.Context, cafeID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("cafe_id = ?", cafeID).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reviews")
	}

	return result.RowsAffected, nil
}

func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:           review.ID,
		CafeID:       review.CafeID,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}

func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:           m.ID,
		CafeID:       m.CafeID,
		ReviewerName: m.ReviewerName,
		Rating:       m.Rating,
		Comment:      m.Comment,
		CreatedAt:    m.CreatedAt,
	}
}
