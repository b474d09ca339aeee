package questionbank

// Competency is a named grouping of related survey statements.
type Competency string

const (
	CompetencyStrategicThinking     Competency = "Strategic Thinking"
	CompetencyLeadership            Competency = "Leadership"
	CompetencyTechnicalExpertise    Competency = "Technical Expertise"
	CompetencyCommunication         Competency = "Communication"
	CompetencyInnovation            Competency = "Innovation"
	CompetencyOperationalExcellence Competency = "Operational Excellence"
)

// AllCompetencies returns every known competency in display order.
func AllCompetencies() []Competency {
	return []Competency{
		CompetencyStrategicThinking,
		CompetencyLeadership,
		CompetencyTechnicalExpertise,
		CompetencyCommunication,
		CompetencyInnovation,
		CompetencyOperationalExcellence,
	}
}

// IsKnown reports whether c is one of the fixed competency names.
func (c Competency) IsKnown() bool {
	for _, k := range AllCompetencies() {
		if c == k {
			return true
		}
	}
	return false
}

// ShortName returns a compact label used where horizontal space is tight
// (chart axes, narrow tables).
func (c Competency) ShortName() string {
	switch c {
	case CompetencyStrategicThinking:
		return "Strategy"
	case CompetencyLeadership:
		return "Leadership"
	case CompetencyTechnicalExpertise:
		return "Technical"
	case CompetencyCommunication:
		return "Communication"
	case CompetencyInnovation:
		return "Innovation"
	case CompetencyOperationalExcellence:
		return "Operations"
	default:
		return string(c)
	}
}

// ParseCompetency matches a competency by its full or short name,
// ignoring case.
func ParseCompetency(s string) (Competency, bool) {
	for _, c := range AllCompetencies() {
		if equalFold(string(c), s) || equalFold(c.ShortName(), s) {
			return c, true
		}
	}
	return "", false
}
