// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cafemap/internal/domain/entity"
	"cafemap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cafe persistence.
var (
	// ErrCafeNotFound is returned when a cafe is not found by id or slug.
	ErrCafeNotFound = errors.New("cafe not found")
	// ErrSlugTaken is returned when a cafe is created with a slug another cafe already owns.
	// The store never resolves the collision itself.
	ErrSlugTaken = errors.New("cafe slug already exists")
)

// SortField is a sortable cafe attribute.
type SortField string

const (
	SortByRating    SortField = "averageRating"
	SortByReviews   SortField = "totalReviews"
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "createdAt"
	// SortByDistance orders by distance from CafeFilter.Near and requires it.
	SortByDistance SortField = "distance"
)

// IsValid reports whether the field is a known sort key.
func (f SortField) IsValid() bool {
	switch f {
	case SortByRating, SortByReviews, SortByName, SortByCreatedAt, SortByDistance:
		return true
	default:
		return false
	}
}

// GeoFilter restricts results to cafes within RadiusMeters of Center.
type GeoFilter struct {
	Center       entity.Location
	RadiusMeters float64
}

// CafeFilter is the predicate shared by Query and Count. Zero values mean "no restriction".
type CafeFilter struct {
	// Search is a case-insensitive substring matched against name, description and tags.
	Search string
	// Features must all be true on a matching cafe.
	Features   []entity.FeatureKey
	PriceRange entity.PriceRange
	// VerifiedOnly hides pending cafes.
	VerifiedOnly bool
	Near         *GeoFilter
}

// CafeSort describes the requested ordering. Every store applies it as:
// featured desc, Field (Desc), createdAt desc, id asc.
type CafeSort struct {
	Field SortField
	Desc  bool
}

// CafeUpdate carries field-level edits; nil pointers leave the attribute unchanged.
type CafeUpdate struct {
	Name         *string
	Description  *string
	Address      *string
	Phone        *string
	Website      *string
	PriceRange   *entity.PriceRange
	Features     entity.FeatureSet
	Photos       []string
	Tags         []string
	Location     *entity.Location
	OpeningHours map[string]entity.OpeningHours
}

// CafeRepository defines the interface for cafe-related storage operations.
type CafeRepository interface {
	// CreateCafe persists a new cafe. Returns ErrSlugTaken when the slug already exists.
	CreateCafe(ctx context.Context, cafe *entity.Cafe) error

	// FindCafeByID retrieves a cafe by its unique ID.
	FindCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error)

	// FindCafeBySlug retrieves a cafe by its slug.
	FindCafeBySlug(ctx context.Context, slug string) (*entity.Cafe, error)

	// SlugExists reports whether any cafe owns the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// UpdateCafe applies field-level edits and returns the updated cafe.
	UpdateCafe(ctx context.Context, id uuid.UUID, update *CafeUpdate) (*entity.Cafe, error)

	// SetModeration writes both moderation flags in one operation.
	SetModeration(ctx context.Context, id uuid.UUID, verified, featured bool) (*entity.Cafe, error)

	// VerifyAllPending verifies every pending cafe and returns how many changed.
	VerifyAllPending(ctx context.Context) (int64, error)

	// RefreshRatingSummary recomputes the cafe's summary from its stored reviews and
	// writes it back as one atomic operation, so concurrent refreshes from any number
	// of processes never leave an older summary behind. Returns ErrCafeNotFound if the cafe is gone.
	RefreshRatingSummary(ctx context.Context, id uuid.UUID) (entity.RatingSummary, error)

	// DeleteCafe removes a cafe and every review it owns.
	DeleteCafe(ctx context.Context, id uuid.UUID) error

	// QueryCafes returns one ordered page of cafes matching the filter.
	QueryCafes(ctx context.Context, filter CafeFilter, sort CafeSort, skip, limit int) ([]*entity.Cafe, error)

	// CountCafes counts cafes matching the same predicate as QueryCafes.
	CountCafes(ctx context.Context, filter CafeFilter) (int64, error)

	// FindMarkers returns the map projection of every verified cafe.
	FindMarkers(ctx context.Context) ([]entity.CafeMarker, error)

	// SaveSubmitterContact stores the private contact record of a submission.
	SaveSubmitterContact(ctx context.Context, contact *entity.SubmitterContact) error
}
