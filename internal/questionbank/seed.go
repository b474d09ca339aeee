package questionbank

// seedQuestions returns the built-in statement set. Statements 19 and 20
// belong to Strategic Thinking even though they come last; competency
// order is decided by first appearance, not by grouping.
func seedQuestions() []Question {
	return []Question{
		{
			ID:          1,
			Text:        "I develop and communicate a clear vision for the future.",
			Competency:  CompetencyStrategicThinking,
			Description: "Evaluate your ability to establish and share a compelling long-term direction.",
		},
		{
			ID:          2,
			Text:        "I identify market trends and opportunities ahead of competitors.",
			Competency:  CompetencyStrategicThinking,
			Description: "Consider how well you recognize evolving patterns and potential areas for growth.",
		},
		{
			ID:          3,
			Text:        "I make decisions based on long-term outcomes rather than short-term gains.",
			Competency:  CompetencyStrategicThinking,
			Description: "Assess your tendency to prioritize sustainable results over immediate benefits.",
		},
		{
			ID:          4,
			Text:        "I inspire others to achieve beyond what they thought possible.",
			Competency:  CompetencyLeadership,
			Description: "Reflect on your ability to motivate others to exceed their perceived limitations.",
		},
		{
			ID:          5,
			Text:        "I provide clear direction and constructive feedback to team members.",
			Competency:  CompetencyLeadership,
			Description: "Evaluate how effectively you guide and provide insights to improve team performance.",
		},
		{
			ID:          6,
			Text:        "I remain composed and effective when facing challenges or setbacks.",
			Competency:  CompetencyLeadership,
			Description: "Consider your resilience and ability to maintain performance under pressure.",
		},
		{
			ID:          7,
			Text:        "I am proficient with the technical tools and methodologies required for my role.",
			Competency:  CompetencyTechnicalExpertise,
			Description: "Assess your mastery of the specialized skills needed in your position.",
		},
		{
			ID:          8,
			Text:        "I continuously update my technical knowledge to stay current with industry developments.",
			Competency:  CompetencyTechnicalExpertise,
			Description: "Evaluate your commitment to ongoing learning and professional development.",
		},
		{
			ID:          9,
			Text:        "I effectively apply technical knowledge to solve complex problems.",
			Competency:  CompetencyTechnicalExpertise,
			Description: "Consider how well you utilize your expertise to address complicated challenges.",
		},
		{
			ID:          10,
			Text:        "I express ideas clearly and concisely in both written and verbal communication.",
			Competency:  CompetencyCommunication,
			Description: "Reflect on your ability to articulate thoughts effectively across different mediums.",
		},
		{
			ID:          11,
			Text:        "I listen attentively and ensure I understand others' perspectives before responding.",
			Competency:  CompetencyCommunication,
			Description: "Assess your receptiveness to others' input and comprehension before formulating responses.",
		},
		{
			ID:          12,
			Text:        "I tailor my communication style to suit different audiences and situations.",
			Competency:  CompetencyCommunication,
			Description: "Evaluate your adaptability in how you communicate based on context and recipients.",
		},
		{
			ID:          13,
			Text:        "I generate original ideas that create value for the organization.",
			Competency:  CompetencyInnovation,
			Description: "Consider your capacity to develop novel concepts that benefit your company.",
		},
		{
			ID:          14,
			Text:        "I encourage and support creative thinking among team members.",
			Competency:  CompetencyInnovation,
			Description: "Reflect on how you foster and nurture innovation in others.",
		},
		{
			ID:          15,
			Text:        "I am willing to challenge conventional approaches to find better solutions.",
			Competency:  CompetencyInnovation,
			Description: "Assess your readiness to question established methods in pursuit of improvements.",
		},
		{
			ID:          16,
			Text:        "I establish efficient processes that optimize productivity.",
			Competency:  CompetencyOperationalExcellence,
			Description: "Evaluate your ability to create streamlined workflows that enhance output.",
		},
		{
			ID:          17,
			Text:        "I consistently deliver high-quality work that meets or exceeds standards.",
			Competency:  CompetencyOperationalExcellence,
			Description: "Consider your track record of producing exceptional results that satisfy requirements.",
		},
		{
			ID:          18,
			Text:        "I identify and eliminate inefficiencies in work processes.",
			Competency:  CompetencyOperationalExcellence,
			Description: "Assess how effectively you recognize and remove obstacles to productivity.",
		},
		{
			ID:          19,
			Text:        "I adapt quickly to changing priorities and requirements.",
			Competency:  CompetencyStrategicThinking,
			Description: "Reflect on your flexibility when faced with shifting objectives.",
		},
		{
			ID:          20,
			Text:        "I maintain a balanced perspective on both immediate needs and future goals.",
			Competency:  CompetencyStrategicThinking,
			Description: "Evaluate your ability to address current demands while keeping sight of long-term objectives.",
		},
	}
}
