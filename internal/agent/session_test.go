package agent

import (
	"testing"

	"github.com/karbonhq/karbon/internal/groq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(50)

	session := store.Create("Code Assistant")

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Code Assistant", session.AgentType)
	assert.Equal(t, 1, store.Count())

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = store.Get("nope")
	assert.Error(t, err)
}

func TestSessionStore_AppendTrimsToCap(t *testing.T) {
	store := NewSessionStore(3)
	session := store.Create("General Assistant")

	for _, content := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, store.Append(session.ID, Message{Role: groq.RoleUser, Content: content}))
	}

	messages, err := store.Recent(session.ID, 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "c", messages[0].Content)
	assert.Equal(t, "e", messages[2].Content)
}

func TestSessionStore_Recent(t *testing.T) {
	store := NewSessionStore(50)
	session := store.Create("General Assistant")

	for _, content := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(session.ID, Message{Role: groq.RoleUser, Content: content}))
	}

	recent, err := store.Recent(session.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].Content)
	assert.Equal(t, "c", recent[1].Content)
}

func TestSessionStore_ClearAndDelete(t *testing.T) {
	store := NewSessionStore(50)
	session := store.Create("General Assistant")
	require.NoError(t, store.Append(session.ID, Message{Role: groq.RoleUser, Content: "hi"}))

	require.NoError(t, store.Clear(session.ID))
	messages, err := store.Recent(session.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Equal(t, 1, store.Count())

	store.Delete(session.ID)
	assert.Equal(t, 0, store.Count())
}

func TestSessionStore_GetReturnsSnapshot(t *testing.T) {
	store := NewSessionStore(50)
	session := store.Create("General Assistant")
	require.NoError(t, store.Append(session.ID, Message{Role: groq.RoleUser, Content: "original"}))

	snap, err := store.Get(session.ID)
	require.NoError(t, err)
	snap.Messages[0].Content = "mutated"

	fresh, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", fresh.Messages[0].Content)
}

func TestAgent_Summary(t *testing.T) {
	ag := New(&stubClient{reply: "ok"}, testConfig())
	session := ag.Sessions.Create("General Assistant")

	empty, err := ag.Summary(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalMessages)
	assert.Equal(t, 0.0, empty.AverageMessageLength)

	require.NoError(t, ag.Sessions.Append(session.ID,
		Message{Role: groq.RoleUser, Content: "hey", Timestamp: "2025-01-01 10:00:00"},
		Message{Role: groq.RoleAssistant, Content: "hello!", Timestamp: "2025-01-01 10:00:05"},
		Message{Role: groq.RoleUser, Content: "bye", Timestamp: "2025-01-01 10:01:00"},
	))

	summary, err := ag.Summary(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalMessages)
	assert.Equal(t, 2, summary.UserMessages)
	assert.Equal(t, 1, summary.AgentMessages)
	assert.Equal(t, "2025-01-01 10:00:00", summary.FirstMessageTime)
	assert.Equal(t, "2025-01-01 10:01:00", summary.LastMessageTime)
	assert.InDelta(t, 4.0, summary.AverageMessageLength, 1e-9)
}

func TestAgent_ExportSession(t *testing.T) {
	ag := New(&stubClient{reply: "ok"}, testConfig())
	session := ag.Sessions.Create("Research Analyst")
	require.NoError(t, ag.Sessions.Append(session.ID,
		Message{Role: groq.RoleUser, Content: "question"},
		Message{Role: groq.RoleAssistant, Content: "answer"},
	))

	export, err := ag.ExportSession(session.ID)

	require.NoError(t, err)
	assert.Equal(t, "Research Analyst", export.AgentType)
	assert.Equal(t, 2, export.TotalMessages)
	require.Len(t, export.ChatHistory, 2)
	assert.NotEmpty(t, export.ExportTimestamp)

	_, err = ag.ExportSession("missing")
	assert.Error(t, err)
}
