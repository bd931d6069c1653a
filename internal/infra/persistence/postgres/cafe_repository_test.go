package postgres

import (
	"testing"
	"time"

	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestCafeOrder(t *testing.T) {
	near := &repository.GeoFilter{Center: entity.Location{Lng: 108.44, Lat: 11.94}, RadiusMeters: 1000}

	tests := []struct {
		name     string
		sort     repository.CafeSort
		near     *repository.GeoFilter
		wantSQL  string
		wantVars []any
	}{
		{
			name:    "rating desc",
			sort:    repository.CafeSort{Field: repository.SortByRating, Desc: true},
			wantSQL: "featured DESC, average_rating DESC, created_at DESC, id ASC",
		},
		{
			name:    "name asc is case-insensitive",
			sort:    repository.CafeSort{Field: repository.SortByName},
			wantSQL: "featured DESC, LOWER(name) ASC, created_at DESC, id ASC",
		},
		{
			name:    "reviews",
			sort:    repository.CafeSort{Field: repository.SortByReviews, Desc: true},
			wantSQL: "featured DESC, total_reviews DESC, created_at DESC, id ASC",
		},
		{
			name:     "distance with center",
			sort:     repository.CafeSort{Field: repository.SortByDistance},
			near:     near,
			wantSQL:  "featured DESC, ST_Distance(" + cafePointExpr + ", " + centerPointExpr + ") ASC, created_at DESC, id ASC",
			wantVars: []any{108.44, 11.94},
		},
		{
			name:    "rating with center keeps rating order",
			sort:    repository.CafeSort{Field: repository.SortByRating, Desc: true},
			near:    near,
			wantSQL: "featured DESC, average_rating DESC, created_at DESC, id ASC",
		},
		{
			name:    "name with center keeps name order",
			sort:    repository.CafeSort{Field: repository.SortByName},
			near:    near,
			wantSQL: "featured DESC, LOWER(name) ASC, created_at DESC, id ASC",
		},
		{
			name:    "distance without center falls back to rating",
			sort:    repository.CafeSort{Field: repository.SortByDistance, Desc: true},
			wantSQL: "featured DESC, average_rating DESC, created_at DESC, id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := cafeOrder(tt.sort, tt.near)

			expr, ok := order.Expression.(clause.Expr)
			require.True(t, ok)
			assert.Equal(t, tt.wantSQL, expr.SQL)
			assert.Equal(t, tt.wantVars, expr.Vars)
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% arabica\_blend \\ x`, escapeLike(`100% arabica_blend \ x`))
	assert.Equal(t, "cà phê", escapeLike("cà phê"))
}

func TestCafeModelRoundTrip(t *testing.T) {
	cafe := &entity.Cafe{
		ID:         uuid.New(),
		Slug:       "tiem-ca-phe",
		Name:       "Tiệm Cà Phê",
		Address:    "1 Trần Hưng Đạo",
		Location:   entity.Location{Lng: 108.45, Lat: 11.93},
		PriceRange: entity.PriceMedium,
		Features:   entity.FeatureSet{entity.FeatureWifi: true, entity.FeatureView: false},
		Photos:     []string{"a.jpg"},
		Tags:       []string{"view"},
		OpeningHours: map[string]entity.OpeningHours{
			"monday": {Open: "07:00", Close: "22:00"},
		},
		AverageRating: 4.5,
		TotalReviews:  2,
		Verified:      true,
		CreatedAt:     time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}

	got := toCafeDomain(fromCafeDomain(cafe))
	assert.Equal(t, cafe, got)
}

func TestFromCafeDomain_EmptyArrays(t *testing.T) {
	m := fromCafeDomain(&entity.Cafe{ID: uuid.New(), Slug: "x"})

	assert.NotNil(t, m.Photos)
	assert.NotNil(t, m.Tags)
}

func TestUpdateColumns(t *testing.T) {
	name := "Renamed"
	price := entity.PriceHigh

	values := updateColumns(&repository.CafeUpdate{
		Name:       &name,
		PriceRange: &price,
		Location:   &entity.Location{Lng: 1, Lat: 2},
		Tags:       []string{},
	})

	assert.Equal(t, "Renamed", values["name"])
	assert.Equal(t, "$$$", values["price_range"])
	assert.Equal(t, 1.0, values["longitude"])
	assert.Equal(t, 2.0, values["latitude"])
	assert.Contains(t, values, "tags")
	assert.NotContains(t, values, "description")
	assert.NotContains(t, values, "average_rating")
	assert.Empty(t, updateColumns(nil))
}
