package agent

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one chat history entry.
type Message struct {
	Role        string  `json:"role"`
	Content     string  `json:"content"`
	Timestamp   string  `json:"timestamp"`
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// Session is one conversation.
type Session struct {
	ID        string    `json:"id"`
	AgentType string    `json:"agent_type"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// SessionStore keeps conversations in memory, keyed by session ID. All
// methods are safe for concurrent use.
type SessionStore struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	maxHistory int
}

// NewSessionStore creates a store that caps each session's history at
// maxHistory messages, dropping the oldest first.
func NewSessionStore(maxHistory int) *SessionStore {
	return &SessionStore{
		sessions:   make(map[string]*Session),
		maxHistory: maxHistory,
	}
}

// Create starts a new session for the given agent type.
func (s *SessionStore) Create(agentType string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		ID:        uuid.NewString(),
		AgentType: agentType,
		CreatedAt: time.Now(),
	}
	s.sessions[session.ID] = session
	return session
}

// Get returns a snapshot of the session, or an error when it does not exist.
func (s *SessionStore) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("session %q not found", id)
	}
	return snapshot(session), nil
}

// Append adds messages to the session's history, trimming to the configured
// cap.
func (s *SessionStore) Append(id string, messages ...Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %q not found", id)
	}
	session.Messages = append(session.Messages, messages...)
	if s.maxHistory > 0 && len(session.Messages) > s.maxHistory {
		session.Messages = session.Messages[len(session.Messages)-s.maxHistory:]
	}
	return nil
}

// Recent returns up to n of the session's newest messages, oldest first.
func (s *SessionStore) Recent(id string, n int) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q not found", id)
	}
	messages := session.Messages
	if n > 0 && len(messages) > n {
		messages = messages[len(messages)-n:]
	}
	out := make([]Message, len(messages))
	copy(out, messages)
	return out, nil
}

// Clear resets the session's history without deleting the session.
func (s *SessionStore) Clear(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %q not found", id)
	}
	session.Messages = nil
	return nil
}

// Delete removes the session entirely.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func snapshot(session *Session) Session {
	out := *session
	out.Messages = make([]Message, len(session.Messages))
	copy(out.Messages, session.Messages)
	return out
}
