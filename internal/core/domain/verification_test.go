package domain

import "testing"

func TestQualityTierFor(t *testing.T) {
	cases := []struct {
		readability int
		want        ImageQuality
	}{
		{100, QualityExcellent},
		{90, QualityExcellent},
		{89, QualityGood},
		{75, QualityGood},
		{74, QualityFair},
		{50, QualityFair},
		{49, QualityPoor},
		{0, QualityPoor},
	}
	for _, tc := range cases {
		if got := QualityTierFor(tc.readability); got != tc.want {
			t.Errorf("QualityTierFor(%d) = %s, want %s", tc.readability, got, tc.want)
		}
	}
}

func TestAuthentic(t *testing.T) {
	cases := []struct {
		score      int
		suspicious int
		want       bool
	}{
		{80, 0, true},
		{60, 1, true},
		{59, 0, false},
		{100, 2, false},
		{30, 3, false},
	}
	for _, tc := range cases {
		if got := Authentic(tc.score, tc.suspicious); got != tc.want {
			t.Errorf("Authentic(%d, %d) = %v, want %v", tc.score, tc.suspicious, got, tc.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	if got := ClampScore(-5); got != 0 {
		t.Errorf("ClampScore(-5) = %d", got)
	}
	if got := ClampScore(174); got != 100 {
		t.Errorf("ClampScore(174) = %d", got)
	}
	if got := ClampScore(50); got != 50 {
		t.Errorf("ClampScore(50) = %d", got)
	}
}

func TestFailedValidationIsWellFormed(t *testing.T) {
	result := FailedValidation(TypeBirthCertificate, "try again")

	if result.IsValid || result.OverallScore != 0 {
		t.Errorf("result = %+v", result)
	}
	if result.TypeDetection.ExpectedType != TypeBirthCertificate {
		t.Errorf("expected type = %s", result.TypeDetection.ExpectedType)
	}
	if result.Quality.ImageQuality != QualityPoor {
		t.Errorf("quality tier = %s", result.Quality.ImageQuality)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0] != "try again" {
		t.Errorf("recommendations = %v", result.Recommendations)
	}
	// Renderable without nil checks on the client side.
	if result.TypeDetection.Reasons == nil ||
		result.ContentAnalysis.MissingFields == nil ||
		result.ContentAnalysis.ExtractedData == nil ||
		result.Quality.Issues == nil ||
		result.Security.SuspiciousElements == nil {
		t.Error("all collections must be empty, not nil")
	}
}
