package usecase

import (
	"context"

	"cafemap/internal/domain/entity"
)

// ImportReview is a review embedded in an import record.
type ImportReview struct {
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// ImportRecord is one cafe of a bulk import payload.
type ImportRecord struct {
	Name         string                         `json:"name"`
	Description  string                         `json:"description"`
	Address      string                         `json:"address"`
	Location     *entity.Location               `json:"location"`
	Phone        string                         `json:"phone"`
	Website      string                         `json:"website"`
	Photos       []string                       `json:"photos"`
	PriceRange   entity.PriceRange              `json:"priceRange"`
	Features     entity.FeatureSet              `json:"features"`
	OpeningHours map[string]entity.OpeningHours `json:"openingHours"`
	Tags         []string                       `json:"tags"`
	Featured     bool                           `json:"featured"`
	Verified     bool                           `json:"verified"`
	Reviews      []ImportReview                 `json:"reviews"`
}

// ImportOptions controls a bulk import run.
type ImportOptions struct {
	// Wipe deletes every existing cafe (and its reviews) before importing.
	Wipe bool
}

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	Wiped         int64    `json:"wiped"`
	CafesCreated  int      `json:"cafesCreated"`
	ReviewsLoaded int      `json:"reviewsLoaded"`
	Skipped       []string `json:"skipped,omitempty"`
}

// ImportUsecase loads catalog data in bulk through the same invariants as the public API.
type ImportUsecase interface {
	Import(ctx context.Context, records []ImportRecord, opts ImportOptions) (*ImportResult, error)
}
