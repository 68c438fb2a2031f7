package heuristic

import (
	"fmt"
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

const (
	keywordInTextPoints     = 10
	keywordInFilenamePoints = 5
	fieldInTextPoints       = 8

	// A match score of fullMatchScore maps to 100% confidence.
	fullMatchScore = 50
)

func (a *Analyzer) classify(ex domain.ExtractedText, expected domain.DocumentType) domain.TypeDetection {
	lowerText := strings.ToLower(ex.Text)
	lowerName := strings.ToLower(ex.Filename)
	collapsedText := collapse(ex.Text)

	var bestKey domain.DocumentType
	bestScore := 0
	var bestReasons []string

	for _, sig := range a.table.Entries() {
		score := 0
		var reasons []string

		for _, kw := range sig.Keywords {
			lowerKw := strings.ToLower(kw)
			if strings.Contains(lowerText, lowerKw) {
				score += keywordInTextPoints
				reasons = append(reasons, fmt.Sprintf("Found keyword %q in document text", kw))
			}
			if strings.Contains(lowerName, lowerKw) {
				score += keywordInFilenamePoints
				reasons = append(reasons, fmt.Sprintf("Found keyword %q in filename", kw))
			}
		}
		for _, field := range sig.RequiredFields {
			if strings.Contains(collapsedText, collapse(field)) {
				score += fieldInTextPoints
				reasons = append(reasons, fmt.Sprintf("Found expected field %q", field))
			}
		}

		// Strict > keeps first-declared-wins on ties.
		if score > bestScore {
			bestScore = score
			bestKey = sig.Key
			bestReasons = reasons
		}
	}

	confidence := domain.ClampScore(bestScore * 100 / fullMatchScore)

	expectedLabel := a.table.Label(expected)
	detectedLabel := a.table.Label(bestKey)
	isCorrect := bestKey == expected ||
		strings.Contains(strings.ToLower(detectedLabel), strings.ToLower(expectedLabel))

	reasons := bestReasons
	if !isCorrect {
		reasons = []string{
			fmt.Sprintf("Expected: %s", expectedLabel),
			fmt.Sprintf("Detected: %s", detectedLabel),
		}
		limit := len(bestReasons)
		if limit > 3 {
			limit = 3
		}
		reasons = append(reasons, bestReasons[:limit]...)
	}
	if reasons == nil {
		reasons = []string{}
	}

	return domain.TypeDetection{
		DetectedType:  bestKey,
		ExpectedType:  expected,
		Confidence:    confidence,
		IsCorrectType: isCorrect,
		Reasons:       reasons,
	}
}
