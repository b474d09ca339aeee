package insights

import (
	"fmt"
	"strings"
)

// Markdown renders the plan as a Markdown document.
func (p *Plan) Markdown() string {
	if p == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString("## Development plan\n\n")
	if p.Summary != "" {
		b.WriteString(p.Summary + "\n\n")
	}

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "### %s\n\n", title)
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
		b.WriteString("\n")
	}
	writeList("Strengths", p.Strengths)
	writeList("Focus areas", p.FocusAreas)

	for _, ca := range p.Actions {
		writeList("Next steps: "+ca.Competency, ca.Actions)
	}

	if p.Model != "" {
		fmt.Fprintf(&b, "*Generated by %s on %s*\n", p.Model, p.GeneratedAt.Format("Jan 02, 2006"))
	}
	return b.String()
}
