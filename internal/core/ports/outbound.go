package ports

import (
	"context"
	"io"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveVerification(ctx context.Context, id string, result domain.ValidationResult) error
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes upload events for async verification.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor turns raw file content into plain text, best effort.
// Implementations must not fail hard on unsupported formats; the pipeline
// falls back to a filename-derived stub when extraction errors out.
type TextExtractor interface {
	Extract(ctx context.Context, filename, mimeType string, data io.Reader) (string, error)
}

// DocumentAnalyzer is the capability set behind pipeline stages 2-5.
// The heuristic and LLM-backed strategies are interchangeable behind it.
type DocumentAnalyzer interface {
	Classify(ctx context.Context, ex domain.ExtractedText, expected domain.DocumentType) (domain.TypeDetection, error)
	ExtractFields(ctx context.Context, ex domain.ExtractedText, expected domain.DocumentType) (domain.ContentAnalysis, error)
	AssessQuality(ctx context.Context, ex domain.ExtractedText) (domain.QualityAnalysis, error)
	AssessAuthenticity(ctx context.Context, ex domain.ExtractedText) (domain.SecurityAnalysis, error)
}
