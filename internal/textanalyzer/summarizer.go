package textanalyzer

import (
	"sort"
	"strings"
	"unicode"
)

const (
	// sentenceSeparator is a literal split, not sentence-boundary detection.
	// Abbreviations and decimals produce extra boundaries; that approximation
	// is part of the contract.
	sentenceSeparator = ". "

	minTokenLength = 3
	topKeyWords    = 10
)

// KeyWord is one entry of the document frequency table.
type KeyWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SummaryResult holds the outcome of an extractive summarization pass.
type SummaryResult struct {
	OriginalLength   int       `json:"original_length"`
	SummaryLength    int       `json:"summary_length"`
	CompressionRatio float64   `json:"compression_ratio"`
	Summary          string    `json:"summary"`
	KeyWords         []KeyWord `json:"key_words"`
}

// Summarize selects up to maxSentences sentences from text, ranked by the
// average frequency of their qualifying tokens. Sentences are returned in
// ranked order, not document order. An empty text yields an empty summary
// with a zero compression ratio.
func Summarize(text string, maxSentences int) SummaryResult {
	if maxSentences < 0 {
		maxSentences = 0
	}

	sentences := strings.Split(text, sentenceSeparator)
	freq := buildFrequencyTable(text)

	// Score each candidate sentence by the mean table frequency of its
	// tokens. Sentences with no in-table tokens are excluded rather than
	// scored as zero. Duplicate sentences are scored once, keeping the
	// first occurrence's position for tie-breaking.
	type scored struct {
		sentence string
		score    float64
	}
	scores := make([]scored, 0, len(sentences))
	seen := make(map[string]bool, len(sentences))

	for _, sentence := range sentences {
		if seen[sentence] {
			continue
		}
		sum := 0.0
		matched := 0
		for _, word := range strings.Fields(strings.ToLower(sentence)) {
			word = stripNonWord(word)
			if count, ok := freq[word]; ok {
				sum += float64(count)
				matched++
			}
		}
		if matched > 0 {
			seen[sentence] = true
			scores = append(scores, scored{sentence: sentence, score: sum / float64(matched)})
		}
	}

	// Stable sort keeps first-seen order for equal scores.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	selected := make([]string, 0, maxSentences)
	for i := 0; i < len(scores) && i < maxSentences; i++ {
		selected = append(selected, scores[i].sentence)
	}
	summary := strings.Join(selected, sentenceSeparator)

	ratio := 0.0
	if len(text) > 0 {
		ratio = float64(len(summary)) / float64(len(text))
	}

	return SummaryResult{
		OriginalLength:   len(text),
		SummaryLength:    len(summary),
		CompressionRatio: ratio,
		Summary:          summary,
		KeyWords:         topWords(freq, topKeyWords),
	}
}

// buildFrequencyTable counts qualifying tokens: whitespace-split, stripped of
// non-word runes, lowercased, longer than minTokenLength.
func buildFrequencyTable(text string) map[string]int {
	freq := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = stripNonWord(word)
		if len([]rune(word)) > minTokenLength {
			freq[word]++
		}
	}
	return freq
}

// stripNonWord removes every rune that is not a letter, digit or underscore,
// anywhere in the token.
func stripNonWord(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, word)
}

// topWords returns the n highest-count table entries. Equal counts are
// ordered lexicographically so the result is deterministic.
func topWords(freq map[string]int, n int) []KeyWord {
	words := make([]KeyWord, 0, len(freq))
	for word, count := range freq {
		words = append(words, KeyWord{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > n {
		words = words[:n]
	}
	return words
}
