package score

import (
	"fmt"
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

// recommend produces the user-facing guidance in a fixed order. Every
// section runs even when earlier ones flagged problems; this is a
// best-effort diagnostic report, not a short-circuiting validator.
func (a *Aggregator) recommend(
	td domain.TypeDetection,
	ca domain.ContentAnalysis,
	qa domain.QualityAnalysis,
	sa domain.SecurityAnalysis,
) []string {
	out := []string{}

	if td.IsCorrectType {
		out = append(out, fmt.Sprintf("Document type verified: %s.", a.table.Label(td.DetectedType)))
	} else {
		out = append(out, fmt.Sprintf(
			"This looks like a %s but a %s was expected. Please upload the correct document.",
			a.table.Label(td.DetectedType),
			a.table.Label(td.ExpectedType),
		))
	}

	if len(ca.MissingFields) > 0 {
		out = append(out, fmt.Sprintf(
			"Some expected information could not be found: %s.",
			strings.Join(ca.MissingFields, ", "),
		))
	}

	switch qa.ImageQuality {
	case domain.QualityPoor:
		out = append(out, "Image quality is poor. Please retake the photo in good lighting and upload again.")
	case domain.QualityFair:
		out = append(out, "Image quality is only fair. Consider retaking the photo for a clearer copy.")
	}

	if !sa.IsAuthentic {
		out = append(out, "The document could not be confirmed as an original. Please upload an official copy.")
	}
	if len(sa.SuspiciousElements) > 0 {
		out = append(out, fmt.Sprintf("Review flagged: %s.", strings.Join(sa.SuspiciousElements, "; ")))
	}

	if td.IsCorrectType {
		out = append(out, "Document submitted for review. No further action needed right now.")
	}

	return out
}
