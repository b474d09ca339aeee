package assessment

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/questionbank"
	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/screens/results"
	"github.com/abhisek/maturity/internal/ui/components"
	"github.com/abhisek/maturity/internal/ui/layout"
	"github.com/abhisek/maturity/internal/ui/theme"
)

// completeDelay is how long the completion notice shows before results open.
const completeDelay = 1500 * time.Millisecond

const (
	noticeSkipped    = "Question skipped. You can come back to it later."
	noticeNeedRating = "Rate this statement first, or press s to skip."
	noticeRemaining  = "Some statements are still unrated."
	noticeComplete   = "Assessment complete! Opening your results..."
)

// completeMsg fires after the completion notice has been shown.
type completeMsg struct{}

// AssessmentScreen walks the respondent through the question bank.
type AssessmentScreen struct {
	svc         screen.Services
	session     *assessment.Session
	rating      components.RatingSelector
	showDesc    bool
	notice      string
	errMsg      string
	confirmQuit bool
	completing  bool
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.BackInterceptor = (*AssessmentScreen)(nil)
var _ layout.StatusProvider = (*AssessmentScreen)(nil)

// New creates an assessment screen for session.
func New(svc screen.Services, session *assessment.Session) *AssessmentScreen {
	s := &AssessmentScreen{
		svc:     svc.WithDefaults(),
		session: session,
	}
	s.resetSelector()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	s.svc.Logger.Info("assessment started",
		zap.String("session_id", s.session.ID),
		zap.Int("questions", s.session.Bank().Len()))
	return nil
}

// Session returns the session being answered.
func (s *AssessmentScreen) Session() *assessment.Session {
	return s.session
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

// Status shows answered progress in the header.
func (s *AssessmentScreen) Status() string {
	return fmt.Sprintf("%d/%d rated", s.session.AnsweredCount(), s.session.Bank().Len())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Discard answers"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→/1-5", Description: "Rate"},
		{Key: "n/p", Description: "Next/Prev"},
		{Key: "s", Description: "Skip"},
		{Key: "d", Description: "Details"},
		{Key: "Esc", Description: "Quit"},
	}
}

// InterceptBack asks for confirmation once any answer would be lost.
func (s *AssessmentScreen) InterceptBack() bool {
	return s.session.AnsweredCount() > 0 && !s.completing
}

func (s *AssessmentScreen) resetSelector() {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		s.rating = components.NewRatingSelector(0)
		return
	}
	s.rating = components.NewRatingSelector(s.session.Rating(q.ID))
}

func (s *AssessmentScreen) move(delta int) {
	s.session.Advance(delta)
	s.resetSelector()
}

func (s *AssessmentScreen) jump(i int) {
	s.session.SetCursor(i)
	s.resetSelector()
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completeMsg:
		return s, s.openResults()

	case tea.KeyMsg:
		if s.completing {
			return s, nil
		}
		if s.confirmQuit {
			return s.handleQuitConfirm(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AssessmentScreen) handleQuitConfirm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.svc.Logger.Info("assessment abandoned",
			zap.String("session_id", s.session.ID),
			zap.Int("answered", s.session.AnsweredCount()))
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n", "N", "esc":
		s.confirmQuit = false
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "n", "pgdown", "tab":
		if s.session.Rating(q.ID) == 0 {
			s.notice = noticeNeedRating
			return s, nil
		}
		s.notice = ""
		s.move(1)
		return s, nil
	case "p", "pgup", "shift+tab":
		s.notice = ""
		s.move(-1)
		return s, nil
	case "s":
		if !s.session.IsLast() {
			s.move(1)
			s.notice = noticeSkipped
		}
		return s, nil
	case "u":
		if i, ok := s.session.NextUnanswered(); ok {
			s.notice = ""
			s.jump(i)
		}
		return s, nil
	case "d", "?":
		s.showDesc = !s.showDesc
		return s, nil
	}

	var committed bool
	s.rating, committed = s.rating.Update(msg)
	if !committed {
		return s, nil
	}
	return s, s.record(q, s.rating.Chosen)
}

// record upserts the rating and moves on: to the results once every
// statement is rated, else to the next statement.
func (s *AssessmentScreen) record(q questionbank.Question, rating int) tea.Cmd {
	if err := s.session.UpsertAnswer(questionbank.Answer{QuestionID: q.ID, Rating: rating}); err != nil {
		s.errMsg = err.Error()
		s.svc.Logger.Warn("rejected answer", zap.Int("question_id", q.ID), zap.Error(err))
		return nil
	}
	s.errMsg = ""
	s.notice = ""

	if s.session.Phase() == assessment.PhaseComplete {
		s.completing = true
		s.notice = noticeComplete
		return tea.Tick(completeDelay, func(time.Time) tea.Msg { return completeMsg{} })
	}

	if !s.session.IsLast() {
		s.move(1)
		return nil
	}
	if i, ok := s.session.NextUnanswered(); ok {
		s.jump(i)
		s.notice = noticeRemaining
	}
	return nil
}

func (s *AssessmentScreen) openResults() tea.Cmd {
	res := s.session.Results()
	if res == nil {
		return nil
	}
	s.svc.Logger.Info("assessment complete",
		zap.String("session_id", s.session.ID),
		zap.Int("overall_score", res.OverallScore),
		zap.Int("max_possible_score", res.MaxPossibleScore))

	next := results.New(s.svc, results.Input{
		SessionID: s.session.ID,
		Profile:   s.session.Profile,
		Results:   res,
	})
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// positionPercent is the share of the bank up to and including the
// current statement.
func positionPercent(index, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(index+1) / float64(total) * 100))
}

func (s *AssessmentScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height, s.session.AnsweredCount())
	}

	q, ok := s.session.CurrentQuestion()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("There are no statements to rate."))
	}

	cw := components.ContentWidth(width)
	total := s.session.Bank().Len()
	index := s.session.Cursor()
	pct := positionPercent(index, total)

	var sections []string

	progress := fmt.Sprintf("Question %d of %d - %d%% Complete", index+1, total, pct)
	sections = append(sections,
		theme.Hint.Render(progress),
		components.NewProgressBar("", pct, false, cw).View(),
	)

	category := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(strings.ToUpper(string(q.Competency)))

	card := category + "\n\n" + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-6).Render(q.Text)
	if s.showDesc && q.Description != "" {
		card += "\n\n" + theme.Hint.Width(cw-6).Render(q.Description)
	} else if q.Description != "" {
		card += "\n\n" + theme.Hint.Render("press d for details")
	}
	sections = append(sections, "", components.Card(card, cw), "")

	sections = append(sections, s.rating.View())

	switch {
	case s.errMsg != "":
		sections = append(sections, "", theme.ErrorText.Render(s.errMsg))
	case s.notice != "":
		color := theme.TextDim
		if s.completing {
			color = theme.Success
		}
		sections = append(sections, "", lipgloss.NewStyle().Foreground(color).Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height, answered int) string {
	body := theme.Title.Render("Leave the assessment?") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Your %d rating(s) will be discarded.", answered)) + "\n\n" +
		theme.Hint.Render("y to leave, n to keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(body))
}
