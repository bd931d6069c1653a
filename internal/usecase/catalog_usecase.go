// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
)

// CafeListOptions are the caller-supplied options of a catalog listing.
// Zero values fall back to the catalog defaults.
type CafeListOptions struct {
	Search     string
	Features   []entity.FeatureKey
	PriceRange entity.PriceRange
	SortBy     string
	Order      string
	Page       int
	Limit      int

	// Lat/Lng enable the radius filter when both are set.
	Lat    *float64
	Lng    *float64
	Radius float64

	// ShowAll includes pending cafes. Honored only for operators.
	ShowAll bool
}

// Pagination describes the position of a page inside a result set.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for total items split into pages of limit.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// CafePage is one page of a catalog listing.
type CafePage struct {
	Cafes      []*entity.Cafe `json:"cafes"`
	Pagination Pagination     `json:"pagination"`

	// Degraded is set when the store failed and the page was replaced by an empty one.
	Degraded bool `json:"degraded,omitempty"`
}

// ReviewPage is one page of a cafe's reviews, newest first.
type ReviewPage struct {
	Reviews    []*entity.Review `json:"reviews"`
	Pagination Pagination       `json:"pagination"`
	Degraded   bool             `json:"degraded,omitempty"`
}

// MarkerList is the marker projection of every verified cafe.
type MarkerList struct {
	Markers []entity.CafeMarker `json:"markers"`

	// Degraded is set when the store failed and the list was replaced by an empty one.
	Degraded bool `json:"degraded,omitempty"`
}

// CatalogUsecase defines the read side of the catalog.
type CatalogUsecase interface {
	// ListCafes returns a filtered, ordered page. Store failures degrade to an empty page.
	ListCafes(ctx context.Context, opts *CafeListOptions, capability entity.Capability) (*CafePage, error)

	// GetCafeBySlug returns a cafe; pending cafes are only visible to operators.
	GetCafeBySlug(ctx context.Context, slug string, capability entity.Capability) (*entity.Cafe, error)

	// ListMapMarkers returns the marker projection of every verified cafe.
	// Store failures degrade to an empty list.
	ListMapMarkers(ctx context.Context) (*MarkerList, error)

	// ListReviews returns a page of a cafe's reviews, newest first.
	ListReviews(ctx context.Context, cafeID uuid.UUID, page, limit int) (*ReviewPage, error)
}
