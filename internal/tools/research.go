package tools

import "fmt"

// ResearchFramework is the fixed scaffolding returned for every topic.
type ResearchFramework struct {
	KeyQuestions     []string `json:"key_questions"`
	ResearchAreas    []string `json:"research_areas"`
	SuggestedSources []string `json:"suggested_sources"`
}

// SWOTFrame is an empty strengths/weaknesses/opportunities/threats grid for
// the caller to fill in.
type SWOTFrame struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// ResearchGuide is the structured starting point for researching a topic.
type ResearchGuide struct {
	Topic             string            `json:"topic"`
	ResearchFramework ResearchFramework `json:"research_framework"`
	AnalysisFramework SWOTFrame         `json:"analysis_framework"`
}

// Research interpolates the topic into a fixed research checklist. Pure
// templating; it never fails.
func Research(topic string) ResearchGuide {
	return ResearchGuide{
		Topic: topic,
		ResearchFramework: ResearchFramework{
			KeyQuestions: []string{
				fmt.Sprintf("What is %s?", topic),
				fmt.Sprintf("Why is %s important?", topic),
				fmt.Sprintf("What are the current trends in %s?", topic),
				fmt.Sprintf("What are the challenges related to %s?", topic),
				fmt.Sprintf("What is the future outlook for %s?", topic),
			},
			ResearchAreas: []string{
				"Background and definition",
				"Current state and trends",
				"Key players and stakeholders",
				"Challenges and opportunities",
				"Future predictions and implications",
			},
			SuggestedSources: []string{
				"Academic databases",
				"Industry reports",
				"Government publications",
				"Expert interviews",
				"Case studies",
			},
		},
		AnalysisFramework: SWOTFrame{
			Strengths:     []string{},
			Weaknesses:    []string{},
			Opportunities: []string{},
			Threats:       []string{},
		},
	}
}
