package config

// AgentProfile configures one agent persona.
type AgentProfile struct {
	Name         string  `json:"name"`
	Model        string  `json:"model"`
	Description  string  `json:"description"`
	SystemPrompt string  `json:"-"`
	Icon         string  `json:"icon"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
}

// Agent type names.
const (
	AgentCodeAssistant    = "Code Assistant"
	AgentResearchAnalyst  = "Research Analyst"
	AgentCreativeWriter   = "Creative Writer"
	AgentGeneralAssistant = "General Assistant"
)

var agentProfiles = []AgentProfile{
	{
		Name:        AgentCodeAssistant,
		Model:       "llama-3.3-70b-versatile",
		Description: "Expert in programming and software development",
		SystemPrompt: "You are an expert code assistant with deep knowledge in multiple programming languages, " +
			"software architecture, debugging, and best practices. Help users with coding tasks, code review, " +
			"optimization, and technical problem-solving. Always provide clear, well-commented code examples " +
			"and explain your reasoning step by step. Focus on writing clean, efficient, and maintainable code.",
		Icon:        "💻",
		Temperature: 0.3,
		MaxTokens:   2048,
	},
	{
		Name:        AgentResearchAnalyst,
		Model:       "llama-3.3-70b-versatile",
		Description: "Specialized in data analysis and research",
		SystemPrompt: "You are a professional research analyst with expertise in data analysis, " +
			"market research, academic research, and statistical analysis. Provide well-researched, " +
			"evidence-based insights and help users analyze complex information. Always structure your " +
			"analysis clearly with: 1) Key findings, 2) Supporting evidence, 3) Implications, and 4) Recommendations.",
		Icon:        "📊",
		Temperature: 0.5,
		MaxTokens:   2048,
	},
	{
		Name:        AgentCreativeWriter,
		Model:       "llama-3.3-70b-versatile",
		Description: "Creative writing and content creation specialist",
		SystemPrompt: "You are a creative writing assistant with expertise in storytelling, " +
			"content creation, copywriting, and literary analysis. Help users create engaging content, " +
			"improve their writing, and explore creative ideas. Focus on narrative flow, character development, " +
			"vivid descriptions, and engaging dialogue. Adapt your writing style to match the user's needs.",
		Icon:        "✍️",
		Temperature: 0.8,
		MaxTokens:   2048,
	},
	{
		Name:        AgentGeneralAssistant,
		Model:       "llama-3.1-8b-instant",
		Description: "Versatile AI assistant for general queries",
		SystemPrompt: "You are a helpful, knowledgeable AI assistant. Provide accurate, " +
			"detailed, and helpful responses across a wide range of topics. Be conversational, " +
			"clear, and adapt your communication style to the user's needs. Always aim to be " +
			"informative yet accessible, and ask clarifying questions when needed.",
		Icon:        "🤖",
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	},
}

// Agents lists all agent profiles in their canonical order.
func Agents() []AgentProfile {
	return agentProfiles
}

// AgentByName looks up an agent profile by its display name.
func AgentByName(name string) (AgentProfile, bool) {
	for _, a := range agentProfiles {
		if a.Name == name {
			return a, true
		}
	}
	return AgentProfile{}, false
}
