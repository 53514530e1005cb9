package textanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCodeBlocks(t *testing.T) {
	response := "Here you go:\n```go\nfmt.Println(\"hi\")\n```\nand a plain one:\n```\nraw text\n```"

	blocks := ExtractCodeBlocks(response)

	require.Len(t, blocks, 2)
	assert.Equal(t, 0, blocks[0].ID)
	assert.Equal(t, "go", blocks[0].Language)
	assert.Equal(t, "fmt.Println(\"hi\")", blocks[0].Code)
	assert.Equal(t, "text", blocks[1].Language)
	assert.Equal(t, "raw text", blocks[1].Code)
}

func TestExtractCodeBlocks_NoFences(t *testing.T) {
	assert.Empty(t, ExtractCodeBlocks("nothing fenced here"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		expected string
	}{
		{name: "shorter than limit", text: "short", max: 10, expected: "short"},
		{name: "exactly at limit", text: "exact", max: 5, expected: "exact"},
		{name: "over the limit", text: "abcdefghij", max: 4, expected: "abcd..."},
		{name: "empty", text: "", max: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.text, tt.max))
		})
	}
}
