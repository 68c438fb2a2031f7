package heuristic

import (
	"regexp"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

const (
	minFileSizeBytes = 50 * 1024
	maxFileSizeBytes = 10 * 1024 * 1024
	minTextLength    = 50

	baseReadability = 85
)

// garbledPatterns are OCR-artifact heuristics. Each one that matches costs
// readability independently of the others.
var garbledPatterns = []struct {
	re    *regexp.Regexp
	issue string
}{
	{regexp.MustCompile(`[0O]{3,}`), "Repeated 0/O characters suggest a low-quality scan"},
	{regexp.MustCompile(`[1Il]{3,}`), "Repeated 1/I/l characters suggest a low-quality scan"},
	{regexp.MustCompile(`[^a-zA-Z0-9\s.,;:!?'"()\-]{3,}`), "Runs of unreadable characters found in extracted text"},
}

func assessQuality(sizeBytes int64, text string) domain.QualityAnalysis {
	readability := baseReadability
	issues := []string{}

	if sizeBytes < minFileSizeBytes {
		issues = append(issues, "File size is very small; the image may be low resolution")
		readability -= 30
	}
	if sizeBytes > maxFileSizeBytes {
		issues = append(issues, "File is unusually large and may be slow to process")
		readability -= 10
	}
	if len(text) < minTextLength {
		issues = append(issues, "Very little text could be read from the document")
		readability -= 25
	}
	for _, gp := range garbledPatterns {
		if gp.re.MatchString(text) {
			issues = append(issues, gp.issue)
			readability -= 15
		}
	}

	readability = domain.ClampScore(readability)

	return domain.QualityAnalysis{
		ImageQuality: domain.QualityTierFor(readability),
		Readability:  readability,
		Issues:       issues,
	}
}
