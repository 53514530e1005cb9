package config

// ModelInfo describes one hosted model.
type ModelInfo struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Developer      string   `json:"developer"`
	Context        int      `json:"context"`
	MaxTokens      int      `json:"max_tokens"`
	Description    string   `json:"description"`
	RecommendedFor []string `json:"recommended_for,omitempty"`
	Preview        bool     `json:"preview,omitempty"`
	Warning        string   `json:"warning,omitempty"`
}

// Default generation parameters.
const (
	DefaultModel       = "llama-3.1-8b-instant"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
)

// productionModels are stable models suitable for regular use.
var productionModels = []ModelInfo{
	{
		ID:             "llama-3.3-70b-versatile",
		Name:           "Llama 3.3 70B Versatile",
		Developer:      "Meta",
		Context:        131072,
		MaxTokens:      32768,
		Description:    "Meta's latest and most capable model for complex tasks",
		RecommendedFor: []string{"complex reasoning", "code generation", "creative writing"},
	},
	{
		ID:             "llama-3.1-8b-instant",
		Name:           "Llama 3.1 8B Instant",
		Developer:      "Meta",
		Context:        131072,
		MaxTokens:      131072,
		Description:    "Fast and efficient model for quick responses",
		RecommendedFor: []string{"general chat", "quick queries", "simple tasks"},
	},
	{
		ID:             "gemma2-9b-it",
		Name:           "Gemma 2 9B IT",
		Developer:      "Google",
		Context:        8192,
		MaxTokens:      8192,
		Description:    "Google's efficient instruction-tuned model",
		RecommendedFor: []string{"instruction following", "general assistance"},
	},
}

// previewModels may be discontinued without notice.
var previewModels = []ModelInfo{
	{
		ID:          "deepseek-r1-distill-llama-70b",
		Name:        "DeepSeek R1 Distill Llama 70B",
		Developer:   "DeepSeek/Meta",
		Context:     131072,
		MaxTokens:   131072,
		Description: "Advanced reasoning model (Preview)",
		Preview:     true,
		Warning:     "Preview model - may be discontinued",
	},
	{
		ID:          "qwen/qwen3-32b",
		Name:        "Qwen 3 32B",
		Developer:   "Alibaba Cloud",
		Context:     131072,
		MaxTokens:   40960,
		Description: "Latest Qwen model with advanced reasoning (Preview)",
		Preview:     true,
		Warning:     "Preview model - may be discontinued",
	},
}

var taskModels = map[string]string{
	"complex_tasks":    "llama-3.3-70b-versatile",
	"quick_responses":  "llama-3.1-8b-instant",
	"general_use":      "llama-3.1-8b-instant",
	"code_generation":  "llama-3.3-70b-versatile",
	"creative_writing": "llama-3.3-70b-versatile",
	"data_analysis":    "llama-3.3-70b-versatile",
}

// Models lists the full catalog, production models first.
func Models() []ModelInfo {
	catalog := make([]ModelInfo, 0, len(productionModels)+len(previewModels))
	catalog = append(catalog, productionModels...)
	catalog = append(catalog, previewModels...)
	return catalog
}

// ModelByID looks a model up in the catalog.
func ModelByID(id string) (ModelInfo, bool) {
	for _, m := range Models() {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// RecommendedModel maps a task type to a model ID, defaulting to the fast
// general model.
func RecommendedModel(taskType string) string {
	if id, ok := taskModels[taskType]; ok {
		return id
	}
	return DefaultModel
}
