package tools

import (
	"fmt"
	"strings"
	"time"
)

// Creative template categories.
const (
	CreativeStoryOutline = "story_outline"
	CreativeBrainstorm   = "brainstorm"
	CreativeContentIdeas = "content_ideas"
)

// CreativeFramework is one fixed creative template. Which field pair is set
// depends on the category.
type CreativeFramework struct {
	Structure  []string `json:"structure,omitempty"`
	Elements   []string `json:"elements,omitempty"`
	Techniques []string `json:"techniques,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Angles     []string `json:"angles,omitempty"`
}

// CreativeBrief is the templated response for a creative prompt.
type CreativeBrief struct {
	Prompt            string             `json:"prompt"`
	CreativeType      string             `json:"creative_type"`
	Timestamp         string             `json:"timestamp"`
	Suggestions       []string           `json:"suggestions"`
	Framework         *CreativeFramework `json:"framework,omitempty"`
	InspirationPoints []string           `json:"inspiration_points"`
}

var creativeFrameworks = map[string]CreativeFramework{
	CreativeStoryOutline: {
		Structure: []string{"Setup", "Inciting Incident", "Rising Action", "Climax", "Falling Action", "Resolution"},
		Elements:  []string{"Character", "Setting", "Conflict", "Theme", "Plot Twist"},
	},
	CreativeBrainstorm: {
		Techniques: []string{"Mind Mapping", "SCAMPER", "Six Thinking Hats", "Random Word", "What If..."},
		Categories: []string{"Traditional", "Innovative", "Disruptive", "Improvement", "Combination"},
	},
	CreativeContentIdeas: {
		Formats: []string{"Blog Post", "Video", "Infographic", "Podcast", "Social Media", "Newsletter"},
		Angles:  []string{"How-to", "List", "Case Study", "Interview", "Review", "Comparison"},
	},
}

// Creative returns a fixed creative framework plus prompt-derived
// inspiration points. Unknown categories still get inspiration points, just
// no framework.
func Creative(prompt, creativeType string) CreativeBrief {
	brief := CreativeBrief{
		Prompt:       prompt,
		CreativeType: creativeType,
		Timestamp:    time.Now().Format(time.RFC3339),
		Suggestions:  []string{},
	}

	if framework, ok := creativeFrameworks[creativeType]; ok {
		brief.Framework = &framework
	}

	firstWord := "your topic"
	if keywords := strings.Fields(strings.ToLower(prompt)); len(keywords) > 0 {
		firstWord = keywords[0]
	}

	brief.InspirationPoints = []string{
		fmt.Sprintf("Explore the intersection of %s and technology", firstWord),
		fmt.Sprintf("Consider the human story behind %s", prompt),
		fmt.Sprintf("What would happen if %s didn't exist?", prompt),
		fmt.Sprintf("How might %s evolve in the next 10 years?", prompt),
		fmt.Sprintf("What can we learn from failures in %s?", prompt),
	}

	return brief
}
