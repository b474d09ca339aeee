package assessment

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/questionbank"
	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/screens/results"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) *AssessmentScreen {
	t.Helper()
	bank, err := questionbank.New([]questionbank.Question{
		{ID: 1, Text: "I set direction", Competency: "A", Description: "Long-range plans"},
		{ID: 2, Text: "I communicate it", Competency: "A"},
		{ID: 3, Text: "I ship it", Competency: "B"},
	})
	if err != nil {
		t.Fatal(err)
	}
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	sess := assessment.NewSession(bank, assessment.Profile{Industry: "Retail", CompanyName: "Acme", Role: "Buyer"})
	sess.Now = func() time.Time { return fixed }
	return New(screen.Services{Bank: bank}, sess)
}

func TestAssessmentScreen_RatingAdvances(t *testing.T) {
	s := testScreen(t)

	s.Update(keyPress('4'))

	if got := s.session.Rating(1); got != 4 {
		t.Errorf("expected rating 4 for question 1, got %d", got)
	}
	if s.session.Cursor() != 1 {
		t.Errorf("expected cursor to advance to 1, got %d", s.session.Cursor())
	}
	if s.session.Phase() != assessment.PhaseInProgress {
		t.Errorf("expected in progress, got %v", s.session.Phase())
	}
	if s.Status() != "1/3 rated" {
		t.Errorf("unexpected status %q", s.Status())
	}
}

func TestAssessmentScreen_NextNeedsRating(t *testing.T) {
	s := testScreen(t)

	s.Update(keyPress('n'))
	if s.session.Cursor() != 0 {
		t.Error("next should not move past an unrated statement")
	}
	if s.notice != noticeNeedRating {
		t.Errorf("expected need-rating notice, got %q", s.notice)
	}

	s.Update(keyPress('s'))
	if s.session.Cursor() != 1 || s.notice != noticeSkipped {
		t.Errorf("skip should advance with a notice, cursor=%d notice=%q", s.session.Cursor(), s.notice)
	}

	s.Update(keyPress('p'))
	if s.session.Cursor() != 0 {
		t.Errorf("previous should go back, got %d", s.session.Cursor())
	}
}

func TestAssessmentScreen_RevisitShowsExistingRating(t *testing.T) {
	s := testScreen(t)
	s.Update(keyPress('2'))
	s.Update(keyPress('p'))

	if s.rating.Chosen != 2 {
		t.Errorf("selector should show the saved rating, got %d", s.rating.Chosen)
	}

	s.Update(keyPress('5'))
	if got := s.session.Rating(1); got != 5 {
		t.Errorf("re-rating should overwrite, got %d", got)
	}
	if s.session.AnsweredCount() != 1 {
		t.Errorf("overwrite should not add an answer, got %d", s.session.AnsweredCount())
	}
}

func TestAssessmentScreen_LastUnansweredJumpsBack(t *testing.T) {
	s := testScreen(t)
	s.Update(keyPress('s'))
	s.Update(keyPress('3')) // question 2
	s.Update(keyPress('3')) // question 3, question 1 still open

	if s.session.Cursor() != 0 {
		t.Errorf("expected jump back to first unanswered, got %d", s.session.Cursor())
	}
	if s.notice != noticeRemaining {
		t.Errorf("expected remaining notice, got %q", s.notice)
	}
}

func TestAssessmentScreen_CompletionOpensResults(t *testing.T) {
	s := testScreen(t)
	s.Update(keyPress('4'))
	s.Update(keyPress('2'))
	_, cmd := s.Update(keyPress('5'))

	if !s.completing {
		t.Fatal("expected completing state")
	}
	if cmd == nil {
		t.Fatal("expected a delayed completion command")
	}
	if s.session.Phase() != assessment.PhaseComplete {
		t.Fatalf("expected complete, got %v", s.session.Phase())
	}

	// Keys are ignored while the completion notice shows.
	if _, cmd := s.Update(keyPress('1')); cmd != nil {
		t.Error("keys should be ignored while completing")
	}

	_, cmd = s.Update(completeMsg{})
	if cmd == nil {
		t.Fatal("expected results transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
	res := s.session.Results()
	if res.OverallScore != 11 || res.MaxPossibleScore != 15 {
		t.Errorf("unexpected totals %d/%d", res.OverallScore, res.MaxPossibleScore)
	}
}

func TestAssessmentScreen_QuitConfirm(t *testing.T) {
	s := testScreen(t)
	if s.InterceptBack() {
		t.Error("nothing to lose before the first answer")
	}

	s.Update(keyPress('3'))
	if !s.InterceptBack() {
		t.Fatal("expected back to be intercepted once answered")
	}

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("esc should ask for confirmation")
	}
	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("n should cancel")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("y should leave")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestAssessmentScreen_View(t *testing.T) {
	s := testScreen(t)
	view := s.View(100, 30)
	for _, want := range []string{"Question 1 of 3", "33% Complete", "I set direction", "press d for details"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.ContainsRune(view, '\u2014') {
		t.Error("progress line should use ASCII punctuation")
	}

	s.Update(keyPress('d'))
	if !strings.Contains(s.View(100, 30), "Long-range plans") {
		t.Error("d should reveal the description")
	}
}

func TestPositionPercent(t *testing.T) {
	tests := []struct {
		index, total, want int
	}{
		{0, 20, 5},
		{19, 20, 100},
		{0, 3, 33},
		{1, 3, 67},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := positionPercent(tt.index, tt.total); got != tt.want {
			t.Errorf("positionPercent(%d, %d) = %d, want %d", tt.index, tt.total, got, tt.want)
		}
	}
}
