package questionbank

import (
	"fmt"
	"sort"
)

// Bank is an immutable, ID-ordered set of questions with precomputed
// indices. It is built once at startup and passed to whoever needs it.
type Bank struct {
	questions    []Question
	byID         map[int]int // question ID -> position
	competencies []Competency
	byCompetency map[Competency][]Question
}

// New validates the given questions and builds a Bank ordered by ID.
// The input slice is copied; later changes to it do not affect the bank.
func New(questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })

	b := &Bank{
		questions:    qs,
		byID:         make(map[int]int, len(qs)),
		byCompetency: make(map[Competency][]Question),
	}
	for i, q := range qs {
		b.byID[q.ID] = i
		if _, seen := b.byCompetency[q.Competency]; !seen {
			b.competencies = append(b.competencies, q.Competency)
		}
		b.byCompetency[q.Competency] = append(b.byCompetency[q.Competency], q)
	}
	return b, nil
}

// MustNew is like New but panics on invalid input. Intended for seed data
// and tests.
func MustNew(questions []Question) *Bank {
	b, err := New(questions)
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns the bank built from the seeded question set.
func Default() *Bank {
	return MustNew(seedQuestions())
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns a copy of every question in ID order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// At returns the question at position i of the ID-ordered sequence.
func (b *Bank) At(i int) (Question, bool) {
	if i < 0 || i >= len(b.questions) {
		return Question{}, false
	}
	return b.questions[i], true
}

// Get looks up a question by ID.
func (b *Bank) Get(id int) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// MustGet returns the question with the given ID or panics.
func (b *Bank) MustGet(id int) Question {
	q, ok := b.Get(id)
	if !ok {
		panic(fmt.Sprintf("questionbank: no question with id %d", id))
	}
	return q
}

// Contains reports whether a question with the given ID exists.
func (b *Bank) Contains(id int) bool {
	_, ok := b.byID[id]
	return ok
}

// IndexOf returns the position of the question with the given ID, or -1.
func (b *Bank) IndexOf(id int) int {
	i, ok := b.byID[id]
	if !ok {
		return -1
	}
	return i
}

// Competencies returns the distinct competencies in the order they first
// appear among the ID-ordered questions.
func (b *Bank) Competencies() []Competency {
	out := make([]Competency, len(b.competencies))
	copy(out, b.competencies)
	return out
}

// ByCompetency returns the questions belonging to c, in ID order.
func (b *Bank) ByCompetency(c Competency) []Question {
	qs := b.byCompetency[c]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// MaxScore returns the highest total achievable across all questions.
func (b *Bank) MaxScore() int {
	return len(b.questions) * MaxRating
}
