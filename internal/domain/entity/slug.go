package entity

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugSeparator = '-'

// Slugify derives a URL-safe slug from a name: lowercase, diacritics stripped, runs of
// non-alphanumerics collapsed to a single "-", leading and trailing separators trimmed.
func Slugify(name string) string {
	// đ/Đ carry no combining mark, so NFD leaves them alone.
	name = strings.NewReplacer("đ", "d", "Đ", "D").Replace(name)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSep := false
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteRune(slugSeparator)
			}
			pendingSep = false
			b.WriteRune(r)

			continue
		}
		pendingSep = true
	}

	return b.String()
}

// SlugWithSuffix disambiguates a slug with a numeric suffix; n <= 1 returns the base unchanged.
func SlugWithSuffix(base string, n int) string {
	if n <= 1 {
		return base
	}

	return base + string(slugSeparator) + strconv.Itoa(n)
}
