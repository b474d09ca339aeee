package results

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/export"
	"github.com/abhisek/maturity/internal/insights"
	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/scoring"
	"github.com/abhisek/maturity/internal/screen"
	"github.com/abhisek/maturity/internal/sink"
	"github.com/abhisek/maturity/internal/ui/layout"
)

const (
	saveTimeout  = 15 * time.Second
	pollInterval = 150 * time.Millisecond
)

// Input is what the results screen shows.
type Input struct {
	SessionID string
	Profile   assessment.Profile
	Results   *scoring.Results
	// Saved marks results that are already persisted, such as ones opened
	// from history.
	Saved bool
}

type action int

const (
	actionExport action = iota
	actionSave
	actionInsights
	actionStartNew
)

var actionLabels = []string{"Export", "Save", "Insights", "Start New"}

type saveState int

const (
	saveIdle saveState = iota
	saveRunning
	saveDone
	saveFailed
)

type savedMsg struct {
	Err error
}

type pollMsg time.Time

// ResultsScreen shows the radar chart, overall score and breakdown, and
// offers export, save, AI insights and a fresh start.
type ResultsScreen struct {
	svc      screen.Services
	in       Input
	selected int
	format   export.Format

	save      saveState
	status    string
	statusErr bool

	planLoading bool
	plan        *insights.Plan
	planErr     error
	spinner     int

	vp     viewport.Model
	width  int
	height int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ layout.StatusProvider = (*ResultsScreen)(nil)

// New creates a results screen.
func New(svc screen.Services, in Input) *ResultsScreen {
	svc = svc.WithDefaults()
	s := &ResultsScreen{
		svc:    svc,
		in:     in,
		format: svc.ExportFormat,
		vp:     viewport.New(),
	}
	if in.Saved {
		s.save = saveDone
	}
	return s
}

// Init saves completed results once when a sink is configured.
func (s *ResultsScreen) Init() tea.Cmd {
	if s.in.Saved || !s.svc.Sink.Enabled() {
		return nil
	}
	return s.saveCmd()
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

// Status shows the overall average in the header.
func (s *ResultsScreen) Status() string {
	if s.in.Results == nil {
		return ""
	}
	return scoring.FormatAverage(s.in.Results.OverallAverage()) + "/5"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Action"},
		{Key: "Enter", Description: "Run"},
		{Key: "f", Description: "Format: " + string(s.format)},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.handleSaved(msg.Err)
		return s, nil

	case pollMsg:
		return s, s.poll()

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "right", "l":
			if s.selected < len(actionLabels)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.run(action(s.selected))
		case "e":
			return s, s.run(actionExport)
		case "s":
			return s, s.run(actionSave)
		case "i":
			return s, s.run(actionInsights)
		case "f":
			s.format = nextFormat(s.format)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func nextFormat(f export.Format) export.Format {
	formats := export.Formats()
	for i, x := range formats {
		if x == f {
			return formats[(i+1)%len(formats)]
		}
	}
	return formats[0]
}

func (s *ResultsScreen) run(a action) tea.Cmd {
	switch a {
	case actionExport:
		s.exportFile()
		return nil
	case actionSave:
		return s.requestSave()
	case actionInsights:
		return s.requestInsights()
	case actionStartNew:
		return tea.Sequence(
			func() tea.Msg { return router.PopToRootMsg{} },
			func() tea.Msg { return screen.StartAssessmentMsg{} },
		)
	}
	return nil
}

func (s *ResultsScreen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

// exportPath returns where the current format is written.
func (s *ResultsScreen) exportPath() string {
	return filepath.Join(s.svc.ExportDir, export.DefaultFilename(s.format))
}

func (s *ResultsScreen) exportFile() {
	path := s.exportPath()
	if err := writeExport(path, s.format, s.in); err != nil {
		s.svc.Logger.Warn("export failed", zap.String("path", path), zap.Error(err))
		s.setStatus("Export failed: "+err.Error(), true)
		return
	}
	s.svc.Logger.Info("results exported", zap.String("path", path), zap.String("format", string(s.format)))
	s.setStatus("Exported to "+path, false)
}

func writeExport(path string, f export.Format, in Input) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return export.Write(file, f, in.Results, in.Profile)
}

func (s *ResultsScreen) requestSave() tea.Cmd {
	switch {
	case s.save == saveRunning:
		return nil
	case s.save == saveDone:
		s.setStatus("Already saved to "+s.svc.Sink.Name(), false)
		return nil
	case !s.svc.Sink.Enabled():
		s.setStatus("Saving is not configured", true)
		return nil
	}
	return s.saveCmd()
}

// saveCmd makes a single save attempt.
func (s *ResultsScreen) saveCmd() tea.Cmd {
	s.save = saveRunning
	s.setStatus("Saving to "+s.svc.Sink.Name()+"...", false)

	rs := s.svc.Sink
	sub := sink.Submission{SessionID: s.in.SessionID, Profile: s.in.Profile, Results: s.in.Results}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return savedMsg{Err: rs.Save(ctx, sub)}
	}
}

func (s *ResultsScreen) handleSaved(err error) {
	switch {
	case err == nil:
		s.save = saveDone
		s.svc.Logger.Info("results saved", zap.String("session_id", s.in.SessionID), zap.String("sink", s.svc.Sink.Name()))
		s.setStatus("Saved to "+s.svc.Sink.Name(), false)
	case errors.Is(err, sink.ErrNotConfigured):
		s.save = saveIdle
		s.setStatus("Saving is not configured", true)
	default:
		s.save = saveFailed
		s.svc.Logger.Error("save failed", zap.String("session_id", s.in.SessionID), zap.Error(err))
		s.setStatus("Save failed: "+err.Error(), true)
	}
}

func (s *ResultsScreen) requestInsights() tea.Cmd {
	if !s.svc.Insights.Enabled() {
		s.setStatus("AI insights are not configured (set an LLM API key)", true)
		return nil
	}
	if s.planLoading {
		return nil
	}
	s.planLoading = true
	s.plan, s.planErr = nil, nil
	s.setStatus("", false)
	s.svc.Insights.Request(context.Background(), insights.Input{Profile: s.in.Profile, Results: s.in.Results})
	return pollTick()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollMsg(t) })
}

func (s *ResultsScreen) poll() tea.Cmd {
	if !s.planLoading {
		return nil
	}
	s.spinner++
	out, ok := s.svc.Insights.Consume()
	if !ok {
		return pollTick()
	}
	s.planLoading = false
	s.plan, s.planErr = out.Plan, out.Err
	if out.Err != nil {
		s.setStatus("Insights failed: "+out.Err.Error(), true)
	}
	return nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.in.Results == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "No results to show.")
	}

	footer := s.renderActions(width)
	bodyHeight := max(height-lipgloss.Height(footer)-1, 3)

	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.vp.SetWidth(width)
		s.vp.SetHeight(bodyHeight)
	}
	s.vp.SetContent(s.renderBody(width))

	return s.vp.View() + "\n" + footer
}

func (s *ResultsScreen) renderActions(width int) string {
	row := renderButtons(actionLabels, s.selected)
	lines := []string{lipgloss.PlaceHorizontal(width, lipgloss.Center, row)}
	if s.status != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, renderStatus(s.status, s.statusErr)))
	}
	return strings.Join(lines, "\n")
}
