package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRatings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ratings []int
		want    RatingSummary
	}{
		{name: "no reviews", ratings: nil, want: RatingSummary{}},
		{name: "single", ratings: []int{4}, want: RatingSummary{AverageRating: 4, TotalReviews: 1}},
		{name: "rounds down", ratings: []int{5, 4, 4}, want: RatingSummary{AverageRating: 4.3, TotalReviews: 3}},
		{name: "rounds half up", ratings: []int{5, 4, 4, 4}, want: RatingSummary{AverageRating: 4.3, TotalReviews: 4}},
		{name: "x.x5 boundary", ratings: []int{1, 2, 3, 4, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5}, want: RatingSummary{AverageRating: 4, TotalReviews: 20}},
		{name: "low average", ratings: []int{1, 1, 2}, want: RatingSummary{AverageRating: 1.3, TotalReviews: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, SummarizeRatings(tt.ratings))
		})
	}
}

func TestCafeState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatePending, (&Cafe{}).State())
	assert.Equal(t, StateVerified, (&Cafe{Verified: true}).State())
	assert.Equal(t, StateFeatured, (&Cafe{Verified: true, Featured: true}).State())
	assert.False(t, StatePending.IsPublic())
	assert.True(t, StateFeatured.IsPublic())
}

func TestFeatureSet(t *testing.T) {
	t.Parallel()

	fs := FeatureSet{FeatureWifi: true, FeatureOutdoor: false, "jacuzzi": true}
	assert.True(t, fs.HasAll([]FeatureKey{FeatureWifi}))
	assert.False(t, fs.HasAll([]FeatureKey{FeatureWifi, FeatureOutdoor}))
	assert.Equal(t, []FeatureKey{FeatureWifi}, fs.Enabled())

	normalized := fs.Normalized()
	assert.Len(t, normalized, len(Features))
	assert.NotContains(t, normalized, FeatureKey("jacuzzi"))
	assert.Equal(t, "Pet", FeaturePetFriendly.Label())
}
