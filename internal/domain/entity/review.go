package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultReviewerName is shown for reviews submitted without a name.
	DefaultReviewerName = "Khách"

	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

// Review is a rating and comment authored against exactly one cafe.
// Reviews are immutable once created.
type Review struct {
	ID           uuid.UUID `json:"id"`
	CafeID       uuid.UUID `json:"cafeId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubmitterContact is the private contact of whoever submitted a cafe.
// It is never part of public reads.
type SubmitterContact struct {
	CafeID    uuid.UUID `json:"cafeId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
