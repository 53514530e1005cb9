package planner

import "time"

// Plan types with dedicated step templates.
const (
	TypeCodingProject   = "coding_project"
	TypeResearchProject = "research_project"
	TypeContentCreation = "content_creation"
)

// StatusNotStarted is the initial status of every plan step.
const StatusNotStarted = "Not Started"

// Step is one entry in a task plan.
type Step struct {
	Number        int      `json:"step_number"`
	Title         string   `json:"title"`
	Status        string   `json:"status"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
}

// Plan is a structured breakdown of a task.
type Plan struct {
	Task              string `json:"task"`
	Type              string `json:"type"`
	Created           string `json:"created"`
	EstimatedDuration string `json:"estimated_duration"`
	Priority          string `json:"priority"`
	Steps             []Step `json:"steps"`
}

var stepTemplates = map[string][]string{
	TypeCodingProject: {
		"Define requirements",
		"Design architecture",
		"Set up development environment",
		"Implement core features",
		"Add error handling",
		"Write tests",
		"Documentation",
		"Code review",
		"Deployment preparation",
	},
	TypeResearchProject: {
		"Define research question",
		"Literature review",
		"Methodology selection",
		"Data collection",
		"Data analysis",
		"Results interpretation",
		"Report writing",
		"Peer review",
		"Presentation preparation",
	},
	TypeContentCreation: {
		"Topic research",
		"Audience analysis",
		"Content outline",
		"First draft",
		"Review and edit",
		"Visual elements",
		"SEO optimization",
		"Proofreading",
		"Publishing and promotion",
	},
}

var genericSteps = []string{
	"Analyze requirements",
	"Plan approach",
	"Execute main task",
	"Review and refine",
	"Finalize and deliver",
}

// CreatePlan builds a plan for the given task. Known plan types expand their
// template; anything else falls back to a generic five-step breakdown. It
// never fails.
func CreatePlan(task, planType string) Plan {
	plan := Plan{
		Task:              task,
		Type:              planType,
		Created:           time.Now().Format(time.RFC3339),
		EstimatedDuration: "To be determined",
		Priority:          "Medium",
	}

	titles, known := stepTemplates[planType]
	if !known {
		plan.Steps = buildSteps(genericSteps, false)
		return plan
	}
	plan.Steps = buildSteps(titles, true)
	return plan
}

// Types lists the plan types that have a dedicated template.
func Types() []string {
	return []string{TypeCodingProject, TypeResearchProject, TypeContentCreation}
}

func buildSteps(titles []string, detailed bool) []Step {
	steps := make([]Step, len(titles))
	for i, title := range titles {
		steps[i] = Step{
			Number: i + 1,
			Title:  title,
			Status: StatusNotStarted,
		}
		if detailed {
			steps[i].EstimatedTime = "TBD"
			steps[i].Dependencies = []string{}
		}
	}
	return steps
}
