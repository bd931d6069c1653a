package mongo

import (
	"strings"
	"time"

	"cafemap/internal/domain/entity"
)

// geoPoint is a GeoJSON point; coordinates are [lng, lat].
type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

func pointOf(loc entity.Location) geoPoint {
	return geoPoint{Type: "Point", Coordinates: []float64{loc.Lng, loc.Lat}}
}

func (p geoPoint) location() entity.Location {
	if len(p.Coordinates) != 2 {
		return entity.Location{}
	}

	return entity.Location{Lng: p.Coordinates[0], Lat: p.Coordinates[1]}
}

type openingHoursDocument struct {
	Open  string `bson:"open"`
	Close string `bson:"close"`
}

// cafeDocument is the cafe schema. IDs are stored as UUID strings.
type cafeDocument struct {
	ID           string                          `bson:"_id"`
	Slug         string                          `bson:"slug"`
	Name         string                          `bson:"name"`
	NameLower    string                          `bson:"nameLower"`
	Description  string                          `bson:"description"`
	Address      string                          `bson:"address"`
	Location     geoPoint                        `bson:"location"`
	Phone        string                          `bson:"phone"`
	Website      string                          `bson:"website,omitempty"`
	Photos       []string                        `bson:"photos"`
	PriceRange   string                          `bson:"priceRange"`
	Features     map[string]bool                 `bson:"features"`
	OpeningHours map[string]openingHoursDocument `bson:"openingHours,omitempty"`
	Tags         []string                        `bson:"tags"`

	AverageRating float64 `bson:"averageRating"`
	TotalReviews  int64   `bson:"totalReviews"`

	Featured  bool      `bson:"featured"`
	Verified  bool      `bson:"verified"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type reviewDocument struct {
	ID           string    `bson:"_id"`
	CafeID       string    `bson:"cafeId"`
	ReviewerName string    `bson:"reviewerName"`
	Rating       int       `bson:"rating"`
	Comment      string    `bson:"comment"`
	CreatedAt    time.Time `bson:"createdAt"`
}

type contactDocument struct {
	CafeID    string    `bson:"_id"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	CreatedAt time.Time `bson:"createdAt"`
}

func featuresDocument(fs entity.FeatureSet) map[string]bool {
	out := make(map[string]bool, len(fs))
	for key, enabled := range fs {
		out[string(key)] = enabled
	}

	return out
}

func hoursDocument(hours map[string]entity.OpeningHours) map[string]openingHoursDocument {
	if hours == nil {
		return nil
	}

	out := make(map[string]openingHoursDocument, len(hours))
	for day, h := range hours {
		out[day] = openingHoursDocument{Open: h.Open, Close: h.Close}
	}

	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func fromCafeDomain(cafe *entity.Cafe) *cafeDocument {
	return &cafeDocument{
		ID:            cafe.ID.String(),
		Slug:          cafe.Slug,
		Name:          cafe.Name,
		NameLower:     strings.ToLower(cafe.Name),
		Description:   cafe.Description,
		Address:       cafe.Address,
		Location:      pointOf(cafe.Location),
		Phone:         cafe.Phone,
		Website:       cafe.Website,
		Photos:        nonNil(cafe.Photos),
		PriceRange:    string(cafe.PriceRange),
		Features:      featuresDocument(cafe.Features),
		OpeningHours:  hoursDocument(cafe.OpeningHours),
		Tags:          nonNil(cafe.Tags),
		AverageRating: cafe.AverageRating,
		TotalReviews:  cafe.TotalReviews,
		Featured:      cafe.Featured,
		Verified:      cafe.Verified,
		CreatedAt:     cafe.CreatedAt,
		UpdatedAt:     cafe.UpdatedAt,
	}
}

func (d *cafeDocument) toDomain() *entity.Cafe {
	cafe := &entity.Cafe{
		ID:            parseID(d.ID),
		Slug:          d.Slug,
		Name:          d.Name,
		Description:   d.Description,
		Address:       d.Address,
		Location:      d.Location.location(),
		Phone:         d.Phone,
		Website:       d.Website,
		Photos:        d.Photos,
		PriceRange:    entity.PriceRange(d.PriceRange),
		Features:      make(entity.FeatureSet, len(d.Features)),
		Tags:          d.Tags,
		AverageRating: d.AverageRating,
		TotalReviews:  d.TotalReviews,
		Featured:      d.Featured,
		Verified:      d.Verified,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
	for key, enabled := range d.Features {
		cafe.Features[entity.FeatureKey(key)] = enabled
	}
	if d.OpeningHours != nil {
		cafe.OpeningHours = make(map[string]entity.OpeningHours, len(d.OpeningHours))
		for day, h := range d.OpeningHours {
			cafe.OpeningHours[day] = entity.OpeningHours{Open: h.Open, Close: h.Close}
		}
	}

	return cafe
}

func fromReviewDomain(review *entity.Review) *reviewDocument {
	return &reviewDocument{
		ID:           review.ID.String(),
		CafeID:       review.CafeID.String(),
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}

func (d *reviewDocument) toDomain() *entity.Review {
	return &entity.Review{
		ID:           parseID(d.ID),
		CafeID:       parseID(d.CafeID),
		ReviewerName: d.ReviewerName,
		Rating:       d.Rating,
		Comment:      d.Comment,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}
