package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusVerified   DocumentStatus = "verified"
	StatusFailed     DocumentStatus = "failed"
)

// DocumentType is the closed set of upload slots an admissions application
// exposes. TypeOther is the fallback for anything unrecognized.
type DocumentType string

const (
	TypeBirthCertificate   DocumentType = "birth_certificate"
	TypeGrade7Certificate  DocumentType = "grade_7_certificate"
	TypeGrade9Certificate  DocumentType = "grade_9_certificate"
	TypeGrade12Certificate DocumentType = "grade_12_certificate"
	TypeMedicalReport      DocumentType = "medical_report"
	TypePassportPhoto      DocumentType = "passport_photo"
	TypeParentID           DocumentType = "parent_id"
	TypeProofOfResidence   DocumentType = "proof_of_residence"
	TypeOther              DocumentType = "other"
)

type Document struct {
	ID           string            `json:"id"`
	Filename     string            `json:"filename"`
	MimeType     string            `json:"mime_type"`
	SizeBytes    int64             `json:"size_bytes"`
	StoragePath  string            `json:"storage_path"`
	ExpectedType DocumentType      `json:"expected_type"`
	Status       DocumentStatus    `json:"status"`
	Error        string            `json:"error,omitempty"`
	Verification *ValidationResult `json:"verification,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ExtractedText is the ephemeral plain-text view of a submitted file.
// It is recomputed per verification and never persisted on its own.
type ExtractedText struct {
	Text      string
	Filename  string
	SizeBytes int64
	MimeType  string
}
