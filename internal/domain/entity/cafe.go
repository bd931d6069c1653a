// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a geographic point expressed as longitude/latitude in degrees.
type Location struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// OpeningHours holds the open/close times for a single weekday, e.g. "07:00" / "22:00".
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Cafe is the core entity for a point of interest in the catalog.
type Cafe struct {
	ID           uuid.UUID               `json:"id"`
	Slug         string                  `json:"slug"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	Address      string                  `json:"address"`
	Location     Location                `json:"location"`
	Phone        string                  `json:"phone"`
	Website      string                  `json:"website,omitempty"`
	Photos       []string                `json:"photos"`
	PriceRange   PriceRange              `json:"priceRange"`
	Features     FeatureSet              `json:"features"`
	OpeningHours map[string]OpeningHours `json:"openingHours,omitempty"`
	Tags         []string                `json:"tags"`

	// Rating summary, derived from the cafe's reviews. Never written by edits.
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`

	Featured  bool      `json:"featured"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// State returns the moderation state implied by the cafe's flags.
func (c *Cafe) State() ModerationState {
	switch {
	case c.Featured && c.Verified:
		return StateFeatured
	case c.Verified:
		return StateVerified
	default:
		return StatePending
	}
}

// HasRating reports whether the cached average reflects at least one review.
// A zero average with no reviews is a placeholder, not a score.
func (c *Cafe) HasRating() bool {
	return c.TotalReviews > 0
}

// Summary returns the cafe's cached rating summary.
func (c *Cafe) Summary() RatingSummary {
	return RatingSummary{AverageRating: c.AverageRating, TotalReviews: c.TotalReviews}
}

// Clone returns a deep copy so stores can hand out values without sharing slices or maps.
func (c *Cafe) Clone() *Cafe {
	if c == nil {
		return nil
	}

	out := *c
	out.Photos = append([]string(nil), c.Photos...)
	out.Tags = append([]string(nil), c.Tags...)
	out.Features = c.Features.Clone()
	if c.OpeningHours != nil {
		out.OpeningHours = make(map[string]OpeningHours, len(c.OpeningHours))
		for day, hours := range c.OpeningHours {
			out.OpeningHours[day] = hours
		}
	}

	return &out
}

// FirstPhoto returns the cover photo or an empty string.
func (c *Cafe) FirstPhoto() string {
	if len(c.Photos) == 0 {
		return ""
	}

	return c.Photos[0]
}

// CafeMarker is the minimal projection used to draw verified cafes on a map.
type CafeMarker struct {
	ID            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	Location      Location   `json:"location"`
	AverageRating float64    `json:"averageRating"`
	PriceRange    PriceRange `json:"priceRange"`
	Photo         string     `json:"photo,omitempty"`
}

// MarkerOf projects a cafe to its map marker.
func MarkerOf(c *Cafe) CafeMarker {
	return CafeMarker{
		ID:            c.ID,
		Slug:          c.Slug,
		Name:          c.Name,
		Location:      c.Location,
		AverageRating: c.AverageRating,
		PriceRange:    c.PriceRange,
		Photo:         c.FirstPhoto(),
	}
}
