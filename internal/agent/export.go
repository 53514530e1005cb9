package agent

import (
	"time"

	"github.com/karbonhq/karbon/internal/groq"
)

// ConversationSummary holds descriptive statistics for one session.
type ConversationSummary struct {
	TotalMessages        int     `json:"total_messages"`
	UserMessages         int     `json:"user_messages"`
	AgentMessages        int     `json:"agent_messages"`
	FirstMessageTime     string  `json:"first_message_time,omitempty"`
	LastMessageTime      string  `json:"last_message_time,omitempty"`
	AverageMessageLength float64 `json:"average_message_length"`
}

// Export is the downloadable envelope around a session's history.
type Export struct {
	ExportTimestamp string    `json:"export_timestamp"`
	AgentType       string    `json:"agent_type"`
	TotalMessages   int       `json:"total_messages"`
	ChatHistory     []Message `json:"chat_history"`
}

// Summary computes conversation statistics for the session.
func (a *Agent) Summary(sessionID string) (ConversationSummary, error) {
	session, err := a.Sessions.Get(sessionID)
	if err != nil {
		return ConversationSummary{}, err
	}
	return summarizeMessages(session.Messages), nil
}

// ExportSession packages the session's history for download.
func (a *Agent) ExportSession(sessionID string) (Export, error) {
	session, err := a.Sessions.Get(sessionID)
	if err != nil {
		return Export{}, err
	}
	return Export{
		ExportTimestamp: time.Now().Format(time.RFC3339),
		AgentType:       session.AgentType,
		TotalMessages:   len(session.Messages),
		ChatHistory:     session.Messages,
	}, nil
}

func summarizeMessages(messages []Message) ConversationSummary {
	summary := ConversationSummary{TotalMessages: len(messages)}
	if len(messages) == 0 {
		return summary
	}

	totalLength := 0
	var first, last string
	for _, m := range messages {
		totalLength += len(m.Content)
		switch m.Role {
		case groq.RoleUser:
			summary.UserMessages++
		case groq.RoleAssistant:
			summary.AgentMessages++
		}
		if m.Timestamp == "" {
			continue
		}
		if first == "" || m.Timestamp < first {
			first = m.Timestamp
		}
		if m.Timestamp > last {
			last = m.Timestamp
		}
	}

	summary.FirstMessageTime = first
	summary.LastMessageTime = last
	summary.AverageMessageLength = float64(totalLength) / float64(len(messages))
	return summary
}
