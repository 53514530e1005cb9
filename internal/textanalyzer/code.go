package textanalyzer

import (
	"regexp"
	"strings"
)

// complexityIndicators are matched as plain substrings within each line,
// including inside identifiers and string literals. The score deliberately
// over-counts; it is a heuristic, not a parser.
var complexityIndicators = []string{"if", "for", "while", "try", "except", "with", "def", "class"}

var bareExceptPattern = regexp.MustCompile(`except:`)

const (
	maxLineLength  = 80
	maxPrintCalls  = 5
	languagePython = "python"
)

// CodeAnalysisReport is the best-effort result of a shallow code scan.
type CodeAnalysisReport struct {
	Language        string   `json:"language"`
	LinesOfCode     int      `json:"lines_of_code"`
	ComplexityScore int      `json:"complexity_score"`
	Issues          []string `json:"issues"`
	Suggestions     []string `json:"suggestions"`
}

// AnalyzeCode scans code for rough complexity and a handful of well-known
// smells. It never fails; any input, including the empty string, produces a
// report.
func AnalyzeCode(code, language string) CodeAnalysisReport {
	report := CodeAnalysisReport{
		Language:    language,
		Issues:      []string{},
		Suggestions: []string{},
	}

	lines := strings.Split(code, "\n")
	report.LinesOfCode = len(lines)

	for _, line := range lines {
		lowered := strings.ToLower(strings.TrimSpace(line))
		for _, indicator := range complexityIndicators {
			if strings.Contains(lowered, indicator) {
				report.ComplexityScore++
			}
		}
	}

	if strings.ToLower(language) == languagePython {
		if strings.Contains(code, "import *") {
			report.Issues = append(report.Issues, "Avoid wildcard imports (import *)")
		}
		if bareExceptPattern.MatchString(code) {
			report.Issues = append(report.Issues, "Use specific exception types instead of bare except")
		}

		for _, line := range lines {
			if len(line) > maxLineLength {
				report.Suggestions = append(report.Suggestions, "Consider breaking long lines (>80 characters)")
				break
			}
		}
		if strings.Count(code, "print(") > maxPrintCalls {
			report.Suggestions = append(report.Suggestions, "Consider using logging instead of multiple print statements")
		}
	}

	return report
}
