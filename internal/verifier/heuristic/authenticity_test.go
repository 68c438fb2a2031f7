package heuristic

import (
	"testing"
)

func TestAssessAuthenticityOfficialDocument(t *testing.T) {
	sa := assessAuthenticity(birthCertificateText, "birth_certificate.pdf")

	if !sa.IsAuthentic {
		t.Error("expected an official document to be authentic")
	}
	if sa.LegitimacyScore != 80 {
		t.Errorf("legitimacy = %d, want the 80 baseline", sa.LegitimacyScore)
	}
	if len(sa.SuspiciousElements) != 0 {
		t.Errorf("suspicious = %v, want none", sa.SuspiciousElements)
	}
}

func TestAssessAuthenticitySampleWatermark(t *testing.T) {
	text := "SAMPLE This paper describes the pupil and the family household in plain words and runs long enough to pass the length check."

	sa := assessAuthenticity(text, "upload.pdf")

	if sa.IsAuthentic {
		t.Error("expected a watermarked copy without official markings to fail")
	}
	if sa.LegitimacyScore != 30 {
		t.Errorf("legitimacy = %d, want 30 after no-marker and watermark penalties", sa.LegitimacyScore)
	}
	if len(sa.SuspiciousElements) != 2 {
		t.Errorf("suspicious = %v, want 2 findings", sa.SuspiciousElements)
	}
}

func TestAssessAuthenticityLowercaseSampleIsNotAWatermark(t *testing.T) {
	text := "This is an official record that includes a sample of the pupil's handwriting for the admissions review committee file."

	sa := assessAuthenticity(text, "handwriting.pdf")

	if !sa.IsAuthentic {
		t.Errorf("ordinary prose mentioning a sample should pass, got suspicious=%v", sa.SuspiciousElements)
	}
	if sa.LegitimacyScore != 80 {
		t.Errorf("legitimacy = %d, want 80", sa.LegitimacyScore)
	}
}

func TestAssessAuthenticitySuspiciousFilename(t *testing.T) {
	sa := assessAuthenticity(birthCertificateText, "fake_certificate.pdf")

	if sa.IsAuthentic {
		t.Error("a fake-named file must not pass")
	}
	if sa.LegitimacyScore != 55 {
		t.Errorf("legitimacy = %d, want 55", sa.LegitimacyScore)
	}
	if len(sa.SuspiciousElements) != 1 {
		t.Errorf("suspicious = %v, want the filename finding only", sa.SuspiciousElements)
	}
}

func TestAssessAuthenticityShortOfficialTextStillPasses(t *testing.T) {
	// One finding with a score above 60 stays authentic; the threshold is
	// two findings or a score below 60.
	sa := assessAuthenticity("Official seal.", "scan.pdf")

	if !sa.IsAuthentic {
		t.Error("expected one mild finding to remain authentic")
	}
	if sa.LegitimacyScore != 65 {
		t.Errorf("legitimacy = %d, want 65", sa.LegitimacyScore)
	}
	if len(sa.SuspiciousElements) != 1 {
		t.Errorf("suspicious = %v, want the short-text finding only", sa.SuspiciousElements)
	}
}

func TestAssessAuthenticityNoMarkersShortText(t *testing.T) {
	sa := assessAuthenticity("handwritten note", "note.jpg")

	if sa.IsAuthentic {
		t.Error("two findings must flip the verdict")
	}
	if sa.LegitimacyScore != 45 {
		t.Errorf("legitimacy = %d, want 45", sa.LegitimacyScore)
	}
	if len(sa.SuspiciousElements) != 2 {
		t.Errorf("suspicious = %v, want 2 findings", sa.SuspiciousElements)
	}
}
