package entity

// RatingSummary is the cached (averageRating, totalReviews) pair derived from a cafe's reviews.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

// SummarizeRatings computes the summary of a full rating set.
func SummarizeRatings(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}

	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}

	return SummaryFromTotals(sum, int64(len(ratings)))
}

// SummaryFromTotals builds a summary from a rating sum and count, as produced by store aggregates.
func SummaryFromTotals(sum, count int64) RatingSummary {
	if count <= 0 {
		return RatingSummary{}
	}

	// Integer half-up rounding to tenths keeps x.x5 averages exact.
	tenths := (20*sum + count) / (2 * count)

	return RatingSummary{
		AverageRating: float64(tenths) / 10,
		TotalReviews:  count,
	}
}
