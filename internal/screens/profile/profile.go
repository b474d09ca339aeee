package profile

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/maturity/internal/assessment"
	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
	assessmentscreen "github.com/abhisek/maturity/internal/screens/assessment"
	"github.com/abhisek/maturity/internal/ui/components"
	"github.com/abhisek/maturity/internal/ui/layout"
	"github.com/abhisek/maturity/internal/ui/theme"
)

const (
	fieldIndustry = iota
	fieldCompany
	fieldRole
	fieldSubmit
	fieldCount
)

// ProfileScreen collects the respondent's industry, company and role
// before the assessment starts.
type ProfileScreen struct {
	svc      screen.Services
	industry components.SelectList
	company  components.TextInput
	role     components.TextInput
	focus    int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.BackInterceptor = (*ProfileScreen)(nil)

// New creates an empty profile form.
func New(svc screen.Services) *ProfileScreen {
	return &ProfileScreen{
		svc:      svc.WithDefaults(),
		industry: components.NewSelectList("Industry", assessment.Industries(), 8),
		company:  components.NewTextInput("Company Name", "Enter your company name", true, 100),
		role:     components.NewTextInput("Your Role", "Enter your role or position", true, 100),
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Before You Begin"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.industry.Open {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Browse"},
			{Key: "a-z", Description: "Jump"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Esc", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

// InterceptBack keeps Esc inside the form while the industry list is open.
func (s *ProfileScreen) InterceptBack() bool {
	return s.industry.Open
}

// Profile returns the form contents.
func (s *ProfileScreen) Profile() assessment.Profile {
	return assessment.Profile{
		Industry:    s.industry.Value(),
		CompanyName: s.company.Value(),
		Role:        s.role.Value(),
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, s.forward(msg)
	}

	if s.focus == fieldIndustry {
		var consumed bool
		wasOpen := s.industry.Open
		s.industry, consumed = s.industry.Update(msg)
		if consumed {
			// Choosing an industry moves on to the next field.
			if wasOpen && !s.industry.Open && s.industry.Value() != "" && kmsg.String() == "enter" {
				return s, s.setFocus(fieldCompany)
			}
			return s, nil
		}
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if s.focus == fieldSubmit || s.focus == fieldRole {
			return s, s.submit()
		}
		return s, s.setFocus(s.focus + 1)
	}

	return s, s.forward(msg)
}

// forward passes a message to the focused text input.
func (s *ProfileScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldCompany:
		s.company, cmd = s.company.Update(msg)
	case fieldRole:
		s.role, cmd = s.role.Update(msg)
	}
	return cmd
}

func (s *ProfileScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	s.company.Blur()
	s.role.Blur()
	switch f {
	case fieldCompany:
		return s.company.Focus()
	case fieldRole:
		return s.role.Focus()
	}
	return nil
}

// submit validates every field and starts the assessment when all pass.
func (s *ProfileScreen) submit() tea.Cmd {
	okIndustry := s.industry.Validate()
	okCompany := s.company.Validate()
	okRole := s.role.Validate()

	switch {
	case !okIndustry:
		return s.setFocus(fieldIndustry)
	case !okCompany:
		return s.setFocus(fieldCompany)
	case !okRole:
		return s.setFocus(fieldRole)
	}

	p := s.Profile()
	if err := p.Validate(); err != nil {
		return nil
	}

	session := assessment.NewSession(s.svc.Bank, p)
	session.Now = s.svc.Now
	next := assessmentscreen.New(s.svc, session)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	fieldWidth := cw - 4

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Before You Begin"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(
		"Tell us a little about yourself to put your results in context."))
	b.WriteString("\n\n")

	b.WriteString(s.industry.View(fieldWidth, s.focus == fieldIndustry))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Choose the industry that best describes your organization."))
	b.WriteString("\n\n")
	b.WriteString(s.company.View(fieldWidth))
	b.WriteString("\n\n")
	b.WriteString(s.role.View(fieldWidth))
	b.WriteString("\n\n")

	btn := components.Button("Continue to Assessment", s.focus == fieldSubmit)
	b.WriteString(lipgloss.PlaceHorizontal(fieldWidth, lipgloss.Center, btn))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
