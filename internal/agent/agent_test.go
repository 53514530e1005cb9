package agent

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/karbonhq/karbon/internal/config"
	"github.com/karbonhq/karbon/internal/groq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	lastReq groq.ChatRequest
	reply   string
	err     error
}

func (s *stubClient) Chat(_ context.Context, req groq.ChatRequest) (*groq.ChatResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &groq.ChatResponse{
		Choices: []groq.Choice{
			{Message: groq.Message{Role: groq.RoleAssistant, Content: s.reply}},
		},
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		HistoryWindow: 10,
		MaxHistory:    50,
	}
}

func TestAgent_RespondRecordsExchange(t *testing.T) {
	client := &stubClient{reply: "hello from the model"}
	ag := New(client, testConfig())
	session := ag.Sessions.Create(config.AgentGeneralAssistant)

	reply, err := ag.Respond(context.Background(), session.ID, "hi there", config.AgentGeneralAssistant, Options{})

	require.NoError(t, err)
	assert.Equal(t, groq.RoleAssistant, reply.Role)
	assert.Equal(t, "hello from the model", reply.Content)
	assert.Equal(t, "llama-3.1-8b-instant", reply.Model)

	history, err := ag.Sessions.Recent(session.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, groq.RoleUser, history[0].Role)
	assert.Equal(t, "hi there", history[0].Content)
	assert.Equal(t, "hello from the model", history[1].Content)
}

func TestAgent_RespondBuildsPromptFromProfileAndHistory(t *testing.T) {
	client := &stubClient{reply: "ok"}
	ag := New(client, testConfig())
	session := ag.Sessions.Create(config.AgentCodeAssistant)

	_, err := ag.Respond(context.Background(), session.ID, "first", config.AgentCodeAssistant, Options{})
	require.NoError(t, err)
	_, err = ag.Respond(context.Background(), session.ID, "second", config.AgentCodeAssistant, Options{})
	require.NoError(t, err)

	profile, _ := config.AgentByName(config.AgentCodeAssistant)
	req := client.lastReq

	assert.Equal(t, profile.Model, req.Model)
	assert.Equal(t, profile.Temperature, req.Temperature)
	assert.Equal(t, profile.MaxTokens, req.MaxTokens)

	// System prompt, two history messages from the first exchange, then
	// the new user message.
	require.Len(t, req.Messages, 4)
	assert.Equal(t, groq.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, profile.SystemPrompt, req.Messages[0].Content)
	assert.Equal(t, "first", req.Messages[1].Content)
	assert.Equal(t, "second", req.Messages[3].Content)
}

func TestAgent_RespondHonorsOverrides(t *testing.T) {
	client := &stubClient{reply: "ok"}
	ag := New(client, testConfig())
	session := ag.Sessions.Create(config.AgentGeneralAssistant)

	temp := 1.4
	_, err := ag.Respond(context.Background(), session.ID, "hi", config.AgentGeneralAssistant, Options{
		Model:       "gemma2-9b-it",
		Temperature: &temp,
	})

	require.NoError(t, err)
	assert.Equal(t, "gemma2-9b-it", client.lastReq.Model)
	assert.Equal(t, 1.4, client.lastReq.Temperature)
}

func TestAgent_RespondContextWindow(t *testing.T) {
	cfg := testConfig()
	cfg.HistoryWindow = 2
	client := &stubClient{reply: "ok"}
	ag := New(client, cfg)
	session := ag.Sessions.Create(config.AgentGeneralAssistant)

	for _, msg := range []string{"one", "two", "three"} {
		_, err := ag.Respond(context.Background(), session.ID, msg, config.AgentGeneralAssistant, Options{})
		require.NoError(t, err)
	}

	// System prompt + 2 windowed history messages + new user message.
	require.Len(t, client.lastReq.Messages, 4)
	assert.Equal(t, "two", client.lastReq.Messages[1].Content)
}

func TestAgent_RespondUnknownAgentType(t *testing.T) {
	ag := New(&stubClient{reply: "ok"}, testConfig())
	session := ag.Sessions.Create("whatever")

	_, err := ag.Respond(context.Background(), session.ID, "hi", "Time Lord", Options{})

	assert.ErrorContains(t, err, "unknown agent type")
}

func TestAgent_RespondDegradedReplies(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "rate limited",
			err:      &groq.APIError{StatusCode: http.StatusTooManyRequests},
			expected: msgRateLimit,
		},
		{
			name:     "bad credentials",
			err:      &groq.APIError{StatusCode: http.StatusUnauthorized},
			expected: msgAPIKey,
		},
		{
			name:     "model missing",
			err:      &groq.APIError{StatusCode: http.StatusNotFound},
			expected: msgModel,
		},
		{
			name:     "model decommissioned",
			err:      &groq.APIError{StatusCode: http.StatusBadRequest, Body: `{"error":"model decommissioned"}`},
			expected: msgModel,
		},
		{
			name:     "anything else",
			err:      errors.New("connection reset"),
			expected: msgGeneral + " Details: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ag := New(&stubClient{err: tt.err}, testConfig())
			session := ag.Sessions.Create(config.AgentGeneralAssistant)

			reply, err := ag.Respond(context.Background(), session.ID, "hi", config.AgentGeneralAssistant, Options{})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, reply.Content)

			// Failed exchanges never pollute the history.
			history, err := ag.Sessions.Recent(session.ID, 0)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestAgent_RespondUnknownSession(t *testing.T) {
	ag := New(&stubClient{reply: "ok"}, testConfig())

	_, err := ag.Respond(context.Background(), "missing", "hi", config.AgentGeneralAssistant, Options{})

	assert.ErrorContains(t, err, "not found")
}
