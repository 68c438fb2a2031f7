package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
	"github.com/chitwa-lm/admissions-verifier/internal/core/ports"
	"github.com/chitwa-lm/admissions-verifier/internal/verifier/score"
)

const failedVerificationAdvice = "We could not verify this document automatically. Please try uploading it again."

// VerifyDocumentUseCase orchestrates the verification pipeline: text
// extraction, then classification, field extraction, quality and
// authenticity analysis, then aggregation. The four analysis stages only
// depend on the extracted text, never on each other.
type VerifyDocumentUseCase struct {
	extractor  ports.TextExtractor
	analyzer   ports.DocumentAnalyzer
	aggregator *score.Aggregator
}

func NewVerifyDocumentUseCase(
	extractor ports.TextExtractor,
	analyzer ports.DocumentAnalyzer,
	aggregator *score.Aggregator,
) *VerifyDocumentUseCase {
	return &VerifyDocumentUseCase{
		extractor:  extractor,
		analyzer:   analyzer,
		aggregator: aggregator,
	}
}

// Verify runs the whole pipeline and always returns a well-formed result.
// Stage errors and panics are folded into a zero-score failed result; the
// upload UI must always have something to render.
func (uc *VerifyDocumentUseCase) Verify(ctx context.Context, input ports.VerificationInput) (result domain.ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("verification_panic", "filename", input.Filename, "panic", fmt.Sprint(r))
			result = domain.FailedValidation(input.ExpectedType, failedVerificationAdvice)
		}
	}()

	extracted := uc.extract(ctx, input)

	detection, err := uc.analyzer.Classify(ctx, extracted, input.ExpectedType)
	if err != nil {
		return uc.failed(input, "classify", err)
	}
	content, err := uc.analyzer.ExtractFields(ctx, extracted, input.ExpectedType)
	if err != nil {
		return uc.failed(input, "extract fields", err)
	}
	quality, err := uc.analyzer.AssessQuality(ctx, extracted)
	if err != nil {
		return uc.failed(input, "assess quality", err)
	}
	security, err := uc.analyzer.AssessAuthenticity(ctx, extracted)
	if err != nil {
		return uc.failed(input, "assess authenticity", err)
	}

	return uc.aggregator.Aggregate(detection, content, quality, security)
}

// extract never fails: an unreadable file degrades to a filename-derived
// stub so downstream stages still run with reduced confidence.
func (uc *VerifyDocumentUseCase) extract(ctx context.Context, input ports.VerificationInput) domain.ExtractedText {
	text, err := uc.extractor.Extract(ctx, input.Filename, input.MimeType, bytes.NewReader(input.Content))
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			slog.Warn("text_extraction_fallback", "filename", input.Filename, "error", err)
		}
		text = FallbackText(input.Filename)
	}

	return domain.ExtractedText{
		Text:      text,
		Filename:  input.Filename,
		SizeBytes: input.SizeBytes,
		MimeType:  input.MimeType,
	}
}

func (uc *VerifyDocumentUseCase) failed(input ports.VerificationInput, stage string, err error) domain.ValidationResult {
	slog.Error("verification_stage_failed", "stage", stage, "filename", input.Filename, "error", err)
	return domain.FailedValidation(input.ExpectedType, failedVerificationAdvice)
}

// FallbackText builds the minimal stub the pipeline analyzes when no text
// could be extracted. The filename still carries signal for the classifier.
func FallbackText(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	return fmt.Sprintf("Document: %s", strings.TrimSpace(base))
}
