package tools

import (
	"fmt"

	"github.com/karbonhq/karbon/internal/planner"
	"github.com/karbonhq/karbon/internal/textanalyzer"
)

// Args carries the named arguments of a tool invocation, decoded from the
// request body.
type Args map[string]any

// String returns the named argument as a string, or fallback when absent.
func (a Args) String(key, fallback string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return fallback
}

// Int returns the named argument as an int, accepting JSON numbers, or
// fallback when absent.
func (a Args) Int(key string, fallback int) int {
	switch v := a[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// Tool is one registered capability.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	run         func(Args) any
}

// Registry is an immutable name-to-tool mapping built once at startup and
// passed to callers by reference.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds the registry of built-in tools.
func NewRegistry() *Registry {
	r := &Registry{tools: make(map[string]Tool)}

	r.register(Tool{
		Name:        "text_summarizer",
		Description: "Extractive summarization with key word extraction",
		run: func(args Args) any {
			return textanalyzer.Summarize(args.String("text", ""), args.Int("max_sentences", 3))
		},
	})
	r.register(Tool{
		Name:        "code_analyzer",
		Description: "Heuristic code quality and complexity scan",
		run: func(args Args) any {
			return textanalyzer.AnalyzeCode(args.String("code", ""), args.String("language", "python"))
		},
	})
	r.register(Tool{
		Name:        "data_processor",
		Description: "Structural and statistical description of data",
		run: func(args Args) any {
			return textanalyzer.DescribeData(args["data"], args.String("operation", textanalyzer.OpSummary))
		},
	})
	r.register(Tool{
		Name:        "research_helper",
		Description: "Structured research framework for a topic",
		run: func(args Args) any {
			return Research(args.String("topic", ""))
		},
	})
	r.register(Tool{
		Name:        "creative_generator",
		Description: "Creative frameworks and inspiration points",
		run: func(args Args) any {
			return Creative(args.String("prompt", ""), args.String("creative_type", "ideas"))
		},
	})
	r.register(Tool{
		Name:        "task_planner",
		Description: "Step-by-step plan from a task description",
		run: func(args Args) any {
			return planner.CreatePlan(args.String("task", ""), args.String("task_type", "general"))
		},
	})

	return r
}

func (r *Registry) register(t Tool) {
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Tool {
	list := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name])
	}
	return list
}

// Invoke runs the named tool with the given arguments.
func (r *Registry) Invoke(name string, args Args) (any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	if args == nil {
		args = Args{}
	}
	return tool.run(args), nil
}
