// Package ollama implements the LLM-backed document analyzer. It is a
// drop-in replacement for the heuristic strategy: same capability set,
// same result shapes, with the model doing the judgment calls. Every call
// carries a timeout and goes through the resilience executor; the caller
// collapses any failure into a degraded result.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
	"github.com/chitwa-lm/admissions-verifier/internal/infrastructure/resilience"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/signatures"
)

type Analyzer struct {
	client   *Client
	table    *signatures.Table
	executor *resilience.Executor
	timeout  time.Duration
}

func NewAnalyzer(client *Client, table *signatures.Table, executor *resilience.Executor, timeout time.Duration) *Analyzer {
	if table == nil {
		table = signatures.Default()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Analyzer{
		client:   client,
		table:    table,
		executor: executor,
		timeout:  timeout,
	}
}

func (a *Analyzer) Classify(ctx context.Context, ex domain.ExtractedText, expected domain.DocumentType) (domain.TypeDetection, error) {
	var parsed struct {
		DetectedType string   `json:"detected_type"`
		Confidence   int      `json:"confidence"`
		Reasons      []string `json:"reasons"`
	}
	if err := a.generate(ctx, "ollama.classify", buildClassifyPrompt(a.table, ex), &parsed); err != nil {
		return domain.TypeDetection{}, err
	}

	detected := domain.DocumentType(parsed.DetectedType)
	if !a.table.Known(detected) {
		detected = domain.TypeOther
	}
	if parsed.Reasons == nil {
		parsed.Reasons = []string{}
	}
	return domain.TypeDetection{
		DetectedType:  detected,
		ExpectedType:  expected,
		Confidence:    domain.ClampScore(parsed.Confidence),
		IsCorrectType: detected == expected,
		Reasons:       parsed.Reasons,
	}, nil
}

func (a *Analyzer) ExtractFields(ctx context.Context, ex domain.ExtractedText, expected domain.DocumentType) (domain.ContentAnalysis, error) {
	sig, ok := a.table.Lookup(expected)
	if !ok {
		return domain.ContentAnalysis{
			HasRequiredFields: false,
			MissingFields:     []string{"Unknown document type"},
			ExtractedData:     map[string]string{},
		}, nil
	}

	var parsed struct {
		MissingFields []string          `json:"missing_fields"`
		ExtractedData map[string]string `json:"extracted_data"`
	}
	if err := a.generate(ctx, "ollama.extract_fields", buildFieldsPrompt(sig, ex), &parsed); err != nil {
		return domain.ContentAnalysis{}, err
	}

	if parsed.MissingFields == nil {
		parsed.MissingFields = []string{}
	}
	if parsed.ExtractedData == nil {
		parsed.ExtractedData = map[string]string{}
	}
	return domain.ContentAnalysis{
		HasRequiredFields: len(parsed.MissingFields) == 0,
		MissingFields:     parsed.MissingFields,
		ExtractedData:     parsed.ExtractedData,
	}, nil
}

func (a *Analyzer) AssessQuality(ctx context.Context, ex domain.ExtractedText) (domain.QualityAnalysis, error) {
	var parsed struct {
		Readability int      `json:"readability"`
		Issues      []string `json:"issues"`
	}
	if err := a.generate(ctx, "ollama.assess_quality", buildQualityPrompt(ex), &parsed); err != nil {
		return domain.QualityAnalysis{}, err
	}

	readability := domain.ClampScore(parsed.Readability)
	if parsed.Issues == nil {
		parsed.Issues = []string{}
	}
	return domain.QualityAnalysis{
		ImageQuality: domain.QualityTierFor(readability),
		Readability:  readability,
		Issues:       parsed.Issues,
	}, nil
}

func (a *Analyzer) AssessAuthenticity(ctx context.Context, ex domain.ExtractedText) (domain.SecurityAnalysis, error) {
	var parsed struct {
		LegitimacyScore    int      `json:"legitimacy_score"`
		SuspiciousElements []string `json:"suspicious_elements"`
	}
	if err := a.generate(ctx, "ollama.assess_authenticity", buildAuthenticityPrompt(ex), &parsed); err != nil {
		return domain.SecurityAnalysis{}, err
	}

	score := domain.ClampScore(parsed.LegitimacyScore)
	if parsed.SuspiciousElements == nil {
		parsed.SuspiciousElements = []string{}
	}
	return domain.SecurityAnalysis{
		IsAuthentic:        domain.Authentic(score, len(parsed.SuspiciousElements)),
		SuspiciousElements: parsed.SuspiciousElements,
		LegitimacyScore:    score,
	}, nil
}

func (a *Analyzer) generate(ctx context.Context, operation, prompt string, out any) error {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	call := func(ctx context.Context) error {
		raw, err := a.client.generateJSON(ctx, prompt)
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(extractJSONObject(raw)), out); err != nil {
			return fmt.Errorf("parse %s response: %w", operation, err)
		}
		return nil
	}

	var err error
	if a.executor != nil {
		err = a.executor.Execute(callCtx, operation, call, classifyOllamaError)
	} else {
		err = call(callCtx)
	}
	return wrapTemporaryIfNeeded(operation, err)
}
