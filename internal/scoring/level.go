package scoring

import (
	"math"
	"strconv"

	"github.com/abhisek/maturity/internal/questionbank"
)

// Level maps a 5-point average to the rating label it rounds to. Averages
// below the scale (nothing answered) map to "Not rated".
func Level(avg float64) string {
	r := int(math.Round(avg))
	if r < questionbank.MinRating {
		return "Not rated"
	}
	if r > questionbank.MaxRating {
		r = questionbank.MaxRating
	}
	return questionbank.RatingLabel(r)
}

// RoundAverage rounds a 5-point average to one decimal with halves rounded
// up, so 3.25 becomes 3.3. The 1e-9 term keeps ratios like 85/100*5 on the
// upper side of the half.
func RoundAverage(avg float64) float64 {
	return math.Floor(avg*10+0.5+1e-9) / 10
}

// FormatAverage renders avg with one decimal, rounded as RoundAverage does.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(RoundAverage(avg), 'f', 1, 64)
}
