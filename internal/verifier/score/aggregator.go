// Package score combines the four stage analyses into the weighted overall
// score, the validity verdict, and the ordered recommendation list.
package score

import (
	"math"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/signatures"
)

const (
	typeWeight     = 40
	contentWeight  = 30
	qualityWeight  = 20
	securityWeight = 10

	// Partial credit for detecting something when the type is wrong.
	wrongTypeCredit = 10

	// Each missing field beyond zero erodes a fifth of the content score.
	missingFieldDivisor = 5

	validityThreshold = 70
)

type Aggregator struct {
	table *signatures.Table
}

func NewAggregator(table *signatures.Table) *Aggregator {
	if table == nil {
		table = signatures.Default()
	}
	return &Aggregator{table: table}
}

// Aggregate assembles the final result from the four sub-analyses. The
// verdict requires both the score threshold and a correct detected type.
func (a *Aggregator) Aggregate(
	td domain.TypeDetection,
	ca domain.ContentAnalysis,
	qa domain.QualityAnalysis,
	sa domain.SecurityAnalysis,
) domain.ValidationResult {
	total := 0.0

	if td.IsCorrectType {
		total += typeWeight * float64(td.Confidence) / 100
	} else {
		total += wrongTypeCredit
	}

	if ca.HasRequiredFields {
		total += contentWeight
	} else {
		completeness := 1 - float64(len(ca.MissingFields))/missingFieldDivisor
		total += contentWeight * math.Max(0, completeness)
	}

	total += qualityWeight * float64(qa.Readability) / 100
	total += securityWeight * float64(sa.LegitimacyScore) / 100

	overall := domain.ClampScore(int(math.Round(total)))

	return domain.ValidationResult{
		IsValid:         overall >= validityThreshold && td.IsCorrectType,
		TypeDetection:   td,
		ContentAnalysis: ca,
		Quality:         qa,
		Security:        sa,
		OverallScore:    overall,
		Recommendations: a.recommend(td, ca, qa, sa),
	}
}
