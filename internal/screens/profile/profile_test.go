package profile

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/maturity/internal/router"
	"github.com/abhisek/maturity/internal/screen"
	assessmentscreen "github.com/abhisek/maturity/internal/screens/assessment"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestProfileScreen_SubmitRequiresEveryField(t *testing.T) {
	s := New(screen.Services{})
	s.setFocus(fieldSubmit)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		if _, ok := cmd().(router.ReplaceScreenMsg); ok {
			t.Fatal("empty form should not start the assessment")
		}
	}
	if s.focus != fieldIndustry {
		t.Errorf("focus should return to the first invalid field, got %d", s.focus)
	}
	if s.industry.Error() != "Please select industry" {
		t.Errorf("unexpected industry error %q", s.industry.Error())
	}
	if s.company.Error() == "" || s.role.Error() == "" {
		t.Error("text fields should report required errors")
	}
}

func TestProfileScreen_IndustryList(t *testing.T) {
	s := New(screen.Services{})

	s.Update(specialKey(tea.KeyEnter))
	if !s.industry.Open || !s.InterceptBack() {
		t.Fatal("enter should open the list and capture esc")
	}

	s.Update(keyPress('r'))
	s.Update(keyPress('r'))
	s.Update(specialKey(tea.KeyEnter))

	if s.industry.Open {
		t.Error("enter should close the list")
	}
	if got := s.industry.Value(); got != "Retail" {
		t.Errorf("expected Retail, got %q", got)
	}
	if s.focus != fieldCompany {
		t.Errorf("choosing should move focus to company, got %d", s.focus)
	}
}

func TestProfileScreen_EscClosesListWithoutChoosing(t *testing.T) {
	s := New(screen.Services{})
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEscape))

	if s.industry.Open || s.InterceptBack() {
		t.Error("esc should close the list")
	}
	if s.industry.Value() != "" {
		t.Errorf("esc should not choose, got %q", s.industry.Value())
	}
}

func TestProfileScreen_TabCyclesFocus(t *testing.T) {
	s := New(screen.Services{})
	for _, want := range []int{fieldCompany, fieldRole, fieldSubmit, fieldIndustry} {
		s.Update(specialKey(tea.KeyTab))
		if s.focus != want {
			t.Fatalf("expected focus %d, got %d", want, s.focus)
		}
	}
}

func TestProfileScreen_SubmitStartsAssessment(t *testing.T) {
	s := New(screen.Services{})
	s.industry.SetValue("Retail")
	s.company.SetValue("  Acme  ")
	s.role.SetValue("Buyer")
	s.setFocus(fieldSubmit)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	next, ok := msg.Screen.(*assessmentscreen.AssessmentScreen)
	if !ok {
		t.Fatalf("expected assessment screen, got %T", msg.Screen)
	}
	p := next.Session().Profile
	if p.Industry != "Retail" || p.CompanyName != "Acme" || p.Role != "Buyer" {
		t.Errorf("unexpected profile %+v", p)
	}
}

func TestProfileScreen_View(t *testing.T) {
	s := New(screen.Services{})
	view := s.View(100, 40)
	for _, want := range []string{"Before You Begin", "Company Name", "Your Role", "Continue to Assessment"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
