package heuristic

import (
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

const baseLegitimacy = 80

// authenticityMarkers is the wording an official document is expected to
// carry somewhere in its text.
var authenticityMarkers = []string{
	"official", "government", "ministry", "department", "registrar",
	"seal", "stamp", "signature", "authorized", "certified",
}

func assessAuthenticity(text, filename string) domain.SecurityAnalysis {
	score := baseLegitimacy
	suspicious := []string{}

	lowerText := strings.ToLower(text)
	hasMarker := false
	for _, marker := range authenticityMarkers {
		if strings.Contains(lowerText, marker) {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		suspicious = append(suspicious, "No official markings (seal, stamp, registrar) found")
		score -= 20
	}

	// Watermark text is typically uppercase; the check is case-sensitive
	// on purpose so ordinary words like "sample" do not trip it.
	if strings.Contains(text, "SAMPLE") || strings.Contains(text, "DRAFT") {
		suspicious = append(suspicious, "Document appears to be a draft or sample copy")
		score -= 30
	}

	lowerName := strings.ToLower(filename)
	if strings.Contains(lowerName, "fake") || strings.Contains(lowerName, "sample") {
		suspicious = append(suspicious, "Filename suggests this is not an original document")
		score -= 25
	}

	if len(text) < 100 {
		suspicious = append(suspicious, "Document contains too little text to assess")
		score -= 15
	}

	score = domain.ClampScore(score)

	return domain.SecurityAnalysis{
		IsAuthentic:        domain.Authentic(score, len(suspicious)),
		SuspiciousElements: suspicious,
		LegitimacyScore:    score,
	}
}
