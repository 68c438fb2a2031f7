package heuristic

import (
	"context"
	"strings"
	"testing"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

const birthCertificateText = `CERTIFICATE OF BIRTH
Registrar of Births and Deaths
Child Name: Chanda Mwamba
Date of Birth: 12/03/2014
Place of Birth: Lusaka
Parent Name: Mercy Mwamba
This is an official certified copy bearing the seal of the registrar.`

const medicalReportText = `MEDICAL EXAMINATION REPORT
Patient: Brian Zulu
Date: 14/02/2025
Doctor: Dr. Mulenga Banda
Examined at Kabwata Clinic. Diagnosis: fit for school enrolment.`

func TestClassifyMatchingBirthCertificate(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	td, err := analyzer.Classify(context.Background(), domain.ExtractedText{
		Text:     birthCertificateText,
		Filename: "birth_certificate.pdf",
	}, domain.TypeBirthCertificate)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	if td.DetectedType != domain.TypeBirthCertificate {
		t.Fatalf("detected type = %s, want %s", td.DetectedType, domain.TypeBirthCertificate)
	}
	if !td.IsCorrectType {
		t.Error("expected IsCorrectType=true for a matching document")
	}
	if td.Confidence != 100 {
		t.Errorf("confidence = %d, want 100 (raw score exceeds the full-match mark)", td.Confidence)
	}
	if len(td.Reasons) == 0 {
		t.Error("expected non-empty match reasons")
	}
}

func TestClassifyWrongDocumentUploaded(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	td, err := analyzer.Classify(context.Background(), domain.ExtractedText{
		Text:     medicalReportText,
		Filename: "medical_report.pdf",
	}, domain.TypeBirthCertificate)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	if td.DetectedType != domain.TypeMedicalReport {
		t.Fatalf("detected type = %s, want %s", td.DetectedType, domain.TypeMedicalReport)
	}
	if td.IsCorrectType {
		t.Error("expected IsCorrectType=false when a medical report arrives in the birth certificate slot")
	}
	if len(td.Reasons) < 2 {
		t.Fatalf("reasons = %v, want at least the expected/detected pair", td.Reasons)
	}
	if td.Reasons[0] != "Expected: Birth Certificate" {
		t.Errorf("reasons[0] = %q", td.Reasons[0])
	}
	if td.Reasons[1] != "Detected: Medical Report" {
		t.Errorf("reasons[1] = %q", td.Reasons[1])
	}
	if len(td.Reasons) > 5 {
		t.Errorf("reasons carry %d entries, want the pair plus at most 3 match notes", len(td.Reasons))
	}
}

func TestClassifyTieGoesToFirstDeclaredSignature(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// "examination results certificate" scores grade 7 and grade 9 equally;
	// declaration order must break the tie deterministically.
	td, err := analyzer.Classify(context.Background(), domain.ExtractedText{
		Text:     "examination results certificate",
		Filename: "results.txt",
	}, domain.TypeGrade9Certificate)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	if td.DetectedType != domain.TypeGrade7Certificate {
		t.Fatalf("detected type = %s, want the first-declared %s", td.DetectedType, domain.TypeGrade7Certificate)
	}
	if td.IsCorrectType {
		t.Error("expected IsCorrectType=false when the tie resolves away from the expected type")
	}
}

func TestClassifyNothingMatches(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	td, err := analyzer.Classify(context.Background(), domain.ExtractedText{
		Text:     "zzzz qqqq vvvv",
		Filename: "upload.dat",
	}, domain.TypeBirthCertificate)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	if td.DetectedType != "" {
		t.Errorf("detected type = %q, want empty when no signature scores", td.DetectedType)
	}
	if td.Confidence != 0 {
		t.Errorf("confidence = %d, want 0", td.Confidence)
	}
	if td.IsCorrectType {
		t.Error("expected IsCorrectType=false")
	}
	for _, r := range td.Reasons {
		if !strings.HasPrefix(r, "Expected:") && !strings.HasPrefix(r, "Detected:") {
			t.Errorf("unexpected reason for a zero-score document: %q", r)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	ex := domain.ExtractedText{Text: birthCertificateText, Filename: "birth_certificate.pdf"}

	first, _ := analyzer.Classify(context.Background(), ex, domain.TypeBirthCertificate)
	for i := 0; i < 10; i++ {
		again, _ := analyzer.Classify(context.Background(), ex, domain.TypeBirthCertificate)
		if again.DetectedType != first.DetectedType || again.Confidence != first.Confidence {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}
