package domain

// ImageQuality is the ordinal quality tier derived from readability.
type ImageQuality string

const (
	QualityExcellent ImageQuality = "excellent"
	QualityGood      ImageQuality = "good"
	QualityFair      ImageQuality = "fair"
	QualityPoor      ImageQuality = "poor"
)

// QualityTierFor buckets a readability score into its tier.
// Thresholds: >=90 excellent, >=75 good, >=50 fair, else poor.
func QualityTierFor(readability int) ImageQuality {
	switch {
	case readability >= 90:
		return QualityExcellent
	case readability >= 75:
		return QualityGood
	case readability >= 50:
		return QualityFair
	default:
		return QualityPoor
	}
}

// TypeDetection is the classifier verdict for a single submission.
type TypeDetection struct {
	DetectedType  DocumentType `json:"detected_type"`
	ExpectedType  DocumentType `json:"expected_type"`
	Confidence    int          `json:"confidence"`
	IsCorrectType bool         `json:"is_correct_type"`
	Reasons       []string     `json:"reasons"`
}

type ContentAnalysis struct {
	HasRequiredFields bool              `json:"has_required_fields"`
	MissingFields     []string          `json:"missing_fields"`
	ExtractedData     map[string]string `json:"extracted_data"`
}

type QualityAnalysis struct {
	ImageQuality ImageQuality `json:"image_quality"`
	Readability  int          `json:"readability"`
	Issues       []string     `json:"issues"`
}

type SecurityAnalysis struct {
	IsAuthentic        bool     `json:"is_authentic"`
	SuspiciousElements []string `json:"suspicious_elements"`
	LegitimacyScore    int      `json:"legitimacy_score"`
}

// Authentic reports the authenticity invariant for a legitimacy score and
// suspicious-element count: score >= 60 with fewer than two findings.
func Authentic(legitimacyScore, suspiciousCount int) bool {
	return legitimacyScore >= 60 && suspiciousCount < 2
}

// ValidationResult is the terminal aggregate of one verification call.
// Constructed once, returned to the caller, never mutated afterward.
type ValidationResult struct {
	IsValid         bool             `json:"is_valid"`
	TypeDetection   TypeDetection    `json:"type_detection"`
	ContentAnalysis ContentAnalysis  `json:"content_analysis"`
	Quality         QualityAnalysis  `json:"quality"`
	Security        SecurityAnalysis `json:"security"`
	OverallScore    int              `json:"overall_score"`
	Recommendations []string         `json:"recommendations"`
}

// ClampScore bounds a 0-100 score.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// FailedValidation is the degraded result returned when the pipeline itself
// breaks. The caller is interactive UI and must always get something
// renderable, so every sub-analysis is zeroed but well formed.
func FailedValidation(expected DocumentType, reason string) ValidationResult {
	return ValidationResult{
		IsValid: false,
		TypeDetection: TypeDetection{
			DetectedType:  TypeOther,
			ExpectedType:  expected,
			Confidence:    0,
			IsCorrectType: false,
			Reasons:       []string{},
		},
		ContentAnalysis: ContentAnalysis{
			HasRequiredFields: false,
			MissingFields:     []string{},
			ExtractedData:     map[string]string{},
		},
		Quality: QualityAnalysis{
			ImageQuality: QualityPoor,
			Readability:  0,
			Issues:       []string{},
		},
		Security: SecurityAnalysis{
			IsAuthentic:        false,
			SuspiciousElements: []string{},
			LegitimacyScore:    0,
		},
		OverallScore:    0,
		Recommendations: []string{reason},
	}
}
