package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment names the deployment mode.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Env      Environment
	Port     string
	LogLevel string

	GroqAPIKey  string
	GroqBaseURL string

	HTTPTimeoutSeconds int
	HistoryWindow      int
	MaxHistory         int

	CacheTTLMinutes int
	IPLimitPerMin   int

	EnableExport    bool
	EnableSwagger   bool
	EnableProfiling bool
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := parseEnvironment(getEnv("APP_ENV", "development"))

	return &Config{
		Env:      env,
		Port:     getEnv("PORT", "8080"),
		LogLevel: logLevelFor(env),

		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		HistoryWindow:      getEnvInt("HISTORY_WINDOW", 10),
		MaxHistory:         getEnvInt("MAX_HISTORY", 50),

		CacheTTLMinutes: getEnvInt("CACHE_TTL_MINUTES", 15),
		IPLimitPerMin:   getEnvInt("IP_LIMIT_PER_MIN", 60),

		EnableExport:    getEnvBool("ENABLE_EXPORT", true),
		EnableSwagger:   getEnvBool("ENABLE_SWAGGER", true),
		EnableProfiling: getEnvBool("ENABLE_PROFILING", false),
	}, nil
}

// Validate checks the settings needed to talk to the model API.
func (c *Config) Validate() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if len(c.GroqAPIKey) < 10 {
		return fmt.Errorf("GROQ_API_KEY looks malformed")
	}
	return nil
}

func parseEnvironment(s string) Environment {
	switch Environment(strings.ToLower(s)) {
	case Production:
		return Production
	default:
		return Development
	}
}

func logLevelFor(env Environment) string {
	if env == Production {
		return getEnv("LOG_LEVEL", "info")
	}
	return getEnv("LOG_LEVEL", "debug")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
