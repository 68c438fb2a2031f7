package heuristic

import (
	"regexp"
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

// fieldPattern binds an extraction category to the labels and value shape
// used to pull it from running text. Adding a document type only means
// adding signature rows; the extraction table stays put.
type fieldPattern struct {
	category string
	re       *regexp.Regexp
	applies  func(fieldName string) bool
}

var fieldPatterns = []fieldPattern{
	{
		category: "name",
		re:       regexp.MustCompile(`(?i)(?:name|student|patient)\s*[:\-]\s*([A-Za-z][A-Za-z .'\-]{1,60})`),
		applies: func(f string) bool {
			return strings.Contains(f, "name")
		},
	},
	{
		category: "date",
		re: regexp.MustCompile(`(?i)(?:date|born|year)\s*[:\-]?\s*` +
			`(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}|\d{1,2}(?:st|nd|rd|th)?\s+[A-Za-z]+\s+\d{4}|\d{4})`),
		applies: func(f string) bool {
			return strings.Contains(f, "date") || strings.Contains(f, "year")
		},
	},
	{
		category: "school",
		re:       regexp.MustCompile(`(?i)(?:school|institution)\s*[:\-]\s*([A-Za-z][A-Za-z0-9 .'\-]{1,80})`),
		applies: func(f string) bool {
			return strings.Contains(f, "school") || strings.Contains(f, "institution")
		},
	},
}

func (a *Analyzer) extractFields(text string, expected domain.DocumentType) domain.ContentAnalysis {
	sig, ok := a.table.Lookup(expected)
	if !ok {
		return domain.ContentAnalysis{
			HasRequiredFields: false,
			MissingFields:     []string{"Unknown document type"},
			ExtractedData:     map[string]string{},
		}
	}

	candidates := make(map[string]string, len(fieldPatterns))
	for _, fp := range fieldPatterns {
		if m := fp.re.FindStringSubmatch(text); len(m) > 1 {
			candidates[fp.category] = strings.TrimSpace(m[1])
		}
	}

	collapsedText := collapse(text)
	extracted := map[string]string{}
	missing := []string{}

	for _, field := range sig.RequiredFields {
		if value, ok := candidateFor(field, candidates); ok {
			extracted[field] = value
			continue
		}
		if strings.Contains(collapsedText, collapse(field)) {
			continue
		}
		missing = append(missing, field)
	}

	return domain.ContentAnalysis{
		HasRequiredFields: len(missing) == 0,
		MissingFields:     missing,
		ExtractedData:     extracted,
	}
}

func candidateFor(field string, candidates map[string]string) (string, bool) {
	lower := strings.ToLower(field)
	for _, fp := range fieldPatterns {
		if !fp.applies(lower) {
			continue
		}
		if value, ok := candidates[fp.category]; ok {
			return value, true
		}
	}
	return "", false
}
