package heuristic

import (
	"context"
	"testing"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

func TestExtractFieldsLabeledMedicalReport(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	ca, err := analyzer.ExtractFields(context.Background(), domain.ExtractedText{
		Text: medicalReportText,
	}, domain.TypeMedicalReport)
	if err != nil {
		t.Fatalf("ExtractFields returned error: %v", err)
	}

	if !ca.HasRequiredFields {
		t.Fatalf("expected all required fields present, missing: %v", ca.MissingFields)
	}
	if got := ca.ExtractedData["patient name"]; got != "Brian Zulu" {
		t.Errorf("patient name = %q, want %q", got, "Brian Zulu")
	}
	if got := ca.ExtractedData["date"]; got != "14/02/2025" {
		t.Errorf("date = %q, want %q", got, "14/02/2025")
	}
}

func TestExtractFieldsLiteralMentionCountsAsPresent(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// "Date of Birth:" does not fit the date pattern's label shape, but the
	// field name appearing verbatim in the text still satisfies it.
	ca, err := analyzer.ExtractFields(context.Background(), domain.ExtractedText{
		Text: birthCertificateText,
	}, domain.TypeBirthCertificate)
	if err != nil {
		t.Fatalf("ExtractFields returned error: %v", err)
	}

	if !ca.HasRequiredFields {
		t.Fatalf("expected all required fields present, missing: %v", ca.MissingFields)
	}
	if got := ca.ExtractedData["child name"]; got != "Chanda Mwamba" {
		t.Errorf("child name = %q, want %q", got, "Chanda Mwamba")
	}
}

func TestExtractFieldsReportsMissing(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	ca, err := analyzer.ExtractFields(context.Background(), domain.ExtractedText{
		Text: "A birth certificate scan without any labeled values on it.",
	}, domain.TypeBirthCertificate)
	if err != nil {
		t.Fatalf("ExtractFields returned error: %v", err)
	}

	if ca.HasRequiredFields {
		t.Error("expected HasRequiredFields=false")
	}
	if len(ca.MissingFields) != 4 {
		t.Errorf("missing fields = %v, want all 4 birth certificate fields", ca.MissingFields)
	}
}

func TestExtractFieldsUnknownType(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	ca, err := analyzer.ExtractFields(context.Background(), domain.ExtractedText{
		Text: birthCertificateText,
	}, domain.DocumentType("mystery"))
	if err != nil {
		t.Fatalf("ExtractFields returned error: %v", err)
	}

	if ca.HasRequiredFields {
		t.Error("expected HasRequiredFields=false for an unknown type")
	}
	if len(ca.MissingFields) != 1 || ca.MissingFields[0] != "Unknown document type" {
		t.Errorf("missing fields = %v, want the unknown-type marker", ca.MissingFields)
	}
	if ca.ExtractedData == nil {
		t.Error("extracted data must be an empty map, not nil")
	}
}

func TestExtractFieldsNoRequiredFields(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	ca, err := analyzer.ExtractFields(context.Background(), domain.ExtractedText{
		Text: "a plain passport size photograph",
	}, domain.TypePassportPhoto)
	if err != nil {
		t.Fatalf("ExtractFields returned error: %v", err)
	}

	if !ca.HasRequiredFields {
		t.Error("a type with no required fields is trivially complete")
	}
	if len(ca.MissingFields) != 0 {
		t.Errorf("missing fields = %v, want none", ca.MissingFields)
	}
}
