package questionbank

import "strings"

const (
	MinRating = 1
	MaxRating = 5
)

// Question is a single self-assessment statement. Questions are immutable
// once the bank is built.
type Question struct {
	ID          int
	Text        string
	Competency  Competency
	Description string
}

// HasDescription reports whether the question carries extra guidance text.
func (q Question) HasDescription() bool {
	return strings.TrimSpace(q.Description) != ""
}

var ratingLabels = [MaxRating]string{
	"Novice",
	"Developing",
	"Competent",
	"Proficient",
	"Expert",
}

// RatingLabel returns the display label for a rating, or "" when the
// rating is outside the scale.
func RatingLabel(r int) string {
	if !ValidRating(r) {
		return ""
	}
	return ratingLabels[r-MinRating]
}

// ValidRating reports whether r is on the 1-5 scale.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Answer is one rating given for one question.
type Answer struct {
	QuestionID int `json:"question_id"`
	Rating     int `json:"rating"`
}
