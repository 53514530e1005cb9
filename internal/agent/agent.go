package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/karbonhq/karbon/internal/config"
	"github.com/karbonhq/karbon/internal/groq"
)

// Degraded reply texts surfaced in the chat stream instead of a hard failure
// when the upstream API misbehaves.
const (
	msgRateLimit = "Rate limit exceeded. Please wait a moment before sending another message."
	msgAPIKey    = "API key issue. Please check your Groq API key configuration."
	msgModel     = "Model error. The selected model may be temporarily unavailable."
	msgGeneral   = "An unexpected error occurred. Please try again."
)

const timestampLayout = "2006-01-02 15:04:05"

// ChatClient is the slice of the Groq client the agent needs.
type ChatClient interface {
	Chat(ctx context.Context, req groq.ChatRequest) (*groq.ChatResponse, error)
}

// Options tweak a single exchange.
type Options struct {
	// Model overrides the agent profile's model when non-empty.
	Model string
	// Temperature overrides the profile's temperature when non-nil.
	Temperature *float64
}

// Agent orchestrates conversations between sessions and the model API.
type Agent struct {
	client   ChatClient
	cfg      *config.Config
	Sessions *SessionStore
}

// New builds an agent backed by the given chat client.
func New(client ChatClient, cfg *config.Config) *Agent {
	return &Agent{
		client:   client,
		cfg:      cfg,
		Sessions: NewSessionStore(cfg.MaxHistory),
	}
}

// Respond sends the user message to the model with the session's recent
// history as context and records the exchange. Upstream failures degrade to
// a human-readable reply and leave the history untouched.
func (a *Agent) Respond(ctx context.Context, sessionID, text, agentType string, opts Options) (Message, error) {
	profile, ok := config.AgentByName(agentType)
	if !ok {
		return Message{}, fmt.Errorf("unknown agent type %q", agentType)
	}

	model := profile.Model
	if opts.Model != "" {
		model = opts.Model
	}
	temperature := profile.Temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	history, err := a.Sessions.Recent(sessionID, a.cfg.HistoryWindow)
	if err != nil {
		return Message{}, err
	}

	messages := make([]groq.Message, 0, len(history)+2)
	messages = append(messages, groq.Message{Role: groq.RoleSystem, Content: profile.SystemPrompt})
	for _, m := range history {
		messages = append(messages, groq.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, groq.Message{Role: groq.RoleUser, Content: text})

	resp, err := a.client.Chat(ctx, groq.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   profile.MaxTokens,
		TopP:        1,
	})
	now := time.Now().Format(timestampLayout)
	if err != nil {
		slog.Warn("chat completion failed",
			"session", sessionID,
			"agent_type", agentType,
			"model", model,
			"error", err,
		)
		return Message{
			Role:      groq.RoleAssistant,
			Content:   fallbackText(err),
			Timestamp: now,
			Model:     model,
		}, nil
	}

	reply := Message{
		Role:        groq.RoleAssistant,
		Content:     resp.Choices[0].Message.Content,
		Timestamp:   now,
		Model:       model,
		Temperature: temperature,
	}
	userMsg := Message{
		Role:      groq.RoleUser,
		Content:   text,
		Timestamp: now,
	}
	if err := a.Sessions.Append(sessionID, userMsg, reply); err != nil {
		return Message{}, err
	}

	return reply, nil
}

// fallbackText maps an upstream failure to the degraded reply shown to the
// user.
func fallbackText(err error) string {
	var apiErr *groq.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return msgRateLimit
		case http.StatusUnauthorized, http.StatusForbidden:
			return msgAPIKey
		case http.StatusNotFound:
			return msgModel
		}
		if strings.Contains(strings.ToLower(apiErr.Body), "model") {
			return msgModel
		}
	}
	return msgGeneral + " Details: " + err.Error()
}
