package assessment

import (
	"errors"
	"fmt"
	"strings"
)

// Profile describes who is taking the assessment.
type Profile struct {
	Industry    string `json:"industry" yaml:"industry"`
	CompanyName string `json:"company_name" yaml:"company_name"`
	Role        string `json:"role" yaml:"role"`
}

// Validate checks that every field is filled in.
func (p Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Industry) == "" {
		errs = append(errs, fmt.Errorf("industry is required: %w", ErrInvalidInput))
	}
	if strings.TrimSpace(p.CompanyName) == "" {
		errs = append(errs, fmt.Errorf("company name is required: %w", ErrInvalidInput))
	}
	if strings.TrimSpace(p.Role) == "" {
		errs = append(errs, fmt.Errorf("role is required: %w", ErrInvalidInput))
	}
	return errors.Join(errs...)
}

// IsZero reports whether no field has been set.
func (p Profile) IsZero() bool {
	return p == Profile{}
}

var industries = []string{
	"Aerospace & Defense",
	"Agriculture",
	"Automotive",
	"Banking & Financial Services",
	"Chemical",
	"Construction & Engineering",
	"Consumer Goods",
	"Education",
	"Energy & Utilities",
	"Food & Beverage",
	"Government",
	"Healthcare",
	"Hospitality & Tourism",
	"Information Technology",
	"Insurance",
	"Manufacturing",
	"Media & Entertainment",
	"Mining & Metals",
	"Pharmaceutical",
	"Professional Services",
	"Real Estate",
	"Retail",
	"Telecommunications",
	"Transportation & Logistics",
	"Other",
}

// Industries returns the industries offered by the profile form.
func Industries() []string {
	out := make([]string, len(industries))
	copy(out, industries)
	return out
}
