package assessment

import (
	"fmt"

	"github.com/abhisek/maturity/internal/questionbank"
)

// Store holds the answers given so far and the cursor into the question
// list. It is not safe for concurrent use; the TUI owns it on one goroutine.
type Store struct {
	bank    *questionbank.Bank
	answers []questionbank.Answer
	index   map[int]int // question ID -> position in answers
	cursor  int
}

// NewStore creates an empty answer store over bank.
func NewStore(bank *questionbank.Bank) *Store {
	return &Store{
		bank:  bank,
		index: make(map[int]int),
	}
}

// Bank returns the question bank the store answers.
func (s *Store) Bank() *questionbank.Bank {
	return s.bank
}

// UpsertAnswer records a rating, replacing any previous answer for the same
// question. Ratings outside the scale and unknown question IDs are rejected.
func (s *Store) UpsertAnswer(a questionbank.Answer) error {
	if !questionbank.ValidRating(a.Rating) {
		return fmt.Errorf("rating %d for question %d: must be between %d and %d: %w",
			a.Rating, a.QuestionID, questionbank.MinRating, questionbank.MaxRating, ErrInvalidInput)
	}
	if !s.bank.Contains(a.QuestionID) {
		return fmt.Errorf("question %d: not in question bank: %w", a.QuestionID, ErrInvalidInput)
	}

	if i, ok := s.index[a.QuestionID]; ok {
		s.answers[i] = a
		return nil
	}
	s.index[a.QuestionID] = len(s.answers)
	s.answers = append(s.answers, a)
	return nil
}

// Answers returns a copy of all answers in the order they were first given.
func (s *Store) Answers() []questionbank.Answer {
	out := make([]questionbank.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Answer returns the answer for a question, if one has been given.
func (s *Store) Answer(questionID int) (questionbank.Answer, bool) {
	i, ok := s.index[questionID]
	if !ok {
		return questionbank.Answer{}, false
	}
	return s.answers[i], true
}

// Rating returns the rating for a question, or 0 when unanswered.
func (s *Store) Rating(questionID int) int {
	a, _ := s.Answer(questionID)
	return a.Rating
}

// AnsweredCount returns the number of distinct questions answered.
func (s *Store) AnsweredCount() int {
	return len(s.answers)
}

// IsComplete reports whether every question in the bank has an answer.
func (s *Store) IsComplete() bool {
	return s.bank.Len() > 0 && len(s.answers) == s.bank.Len()
}

// ProgressPercent returns the share of answered questions, 0-100.
func (s *Store) ProgressPercent() int {
	if s.bank.Len() == 0 {
		return 0
	}
	return len(s.answers) * 100 / s.bank.Len()
}

// Cursor returns the index of the current question.
func (s *Store) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor, clamping to the valid range.
func (s *Store) SetCursor(i int) {
	s.cursor = s.clamp(i)
}

// Advance moves the cursor by delta, clamping to the valid range.
func (s *Store) Advance(delta int) {
	s.SetCursor(s.cursor + delta)
}

// IsFirst reports whether the cursor is on the first question.
func (s *Store) IsFirst() bool {
	return s.cursor == 0
}

// IsLast reports whether the cursor is on the last question.
func (s *Store) IsLast() bool {
	return s.cursor >= s.bank.Len()-1
}

// CurrentQuestion returns the question under the cursor.
func (s *Store) CurrentQuestion() (questionbank.Question, bool) {
	return s.bank.At(s.cursor)
}

// NextUnanswered returns the index of the first unanswered question at or
// after the cursor, wrapping around. It returns false when all are answered.
func (s *Store) NextUnanswered() (int, bool) {
	n := s.bank.Len()
	for step := 0; step < n; step++ {
		i := (s.cursor + step) % n
		q, _ := s.bank.At(i)
		if _, ok := s.index[q.ID]; !ok {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) clamp(i int) int {
	last := s.bank.Len() - 1
	if i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}
	return i
}
