package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain ascii", in: "The Married Beans", want: "the-married-beans"},
		{name: "vietnamese diacritics", in: "Tiệm Cà Phê Túi Mơ To", want: "tiem-ca-phe-tui-mo-to"},
		{name: "d with stroke", in: "Đà Lạt Coffee", want: "da-lat-coffee"},
		{name: "collapses separators", in: "La  Viet -- Coffee!!", want: "la-viet-coffee"},
		{name: "trims separators", in: "  ~Horizon~  ", want: "horizon"},
		{name: "keeps digits", in: "Cafe 1989", want: "cafe-1989"},
		{name: "nothing usable", in: "★★★", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugWithSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "an-cafe", SlugWithSuffix("an-cafe", 1))
	assert.Equal(t, "an-cafe-2", SlugWithSuffix("an-cafe", 2))
	assert.Equal(t, "an-cafe-10", SlugWithSuffix("an-cafe", 10))
}
