package textanalyzer

import (
	"regexp"
	"strings"
)

var codeBlockPattern = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")

// CodeBlock is one fenced code block extracted from chat text.
type CodeBlock struct {
	ID       int    `json:"id"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// ExtractCodeBlocks pulls fenced code blocks out of a model response. A
// fence without a language tag is reported as "text".
func ExtractCodeBlocks(response string) []CodeBlock {
	matches := codeBlockPattern.FindAllStringSubmatch(response, -1)
	blocks := make([]CodeBlock, 0, len(matches))
	for i, match := range matches {
		language := match[1]
		if language == "" {
			language = "text"
		}
		blocks = append(blocks, CodeBlock{
			ID:       i,
			Language: language,
			Code:     strings.TrimSpace(match[2]),
		})
	}
	return blocks
}

// Truncate shortens text to maxLength runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
