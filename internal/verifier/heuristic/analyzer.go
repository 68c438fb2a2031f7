// Package heuristic implements the in-process document analyzer: keyword
// classification, pattern-based field extraction, and quality/authenticity
// scoring. It is the default strategy behind ports.DocumentAnalyzer; the
// LLM-backed analyzer is the drop-in alternative.
package heuristic

import (
	"context"
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/signatures"
)

type Analyzer struct {
	table *signatures.Table
}

func NewAnalyzer(table *signatures.Table) *Analyzer {
	if table == nil {
		table = signatures.Default()
	}
	return &Analyzer{table: table}
}

func (a *Analyzer) Classify(_ context.Context, ex domain.ExtractedText, expected domain.DocumentType) (domain.TypeDetection, error) {
	return a.classify(ex, expected), nil
}

func (a *Analyzer) ExtractFields(_ context.Context, ex domain.ExtractedText, expected domain.DocumentType) (domain.ContentAnalysis, error) {
	return a.extractFields(ex.Text, expected), nil
}

func (a *Analyzer) AssessQuality(_ context.Context, ex domain.ExtractedText) (domain.QualityAnalysis, error) {
	return assessQuality(ex.SizeBytes, ex.Text), nil
}

func (a *Analyzer) AssessAuthenticity(_ context.Context, ex domain.ExtractedText) (domain.SecurityAnalysis, error) {
	return assessAuthenticity(ex.Text, ex.Filename), nil
}

// collapse normalizes for field-name matching: lowercase, spaces removed.
// Both sides of the comparison go through it so multi-word field names can
// match running text.
func collapse(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}
