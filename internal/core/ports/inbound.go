package ports

import (
	"context"
	"io"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, sizeBytes int64, expectedType domain.DocumentType, body io.Reader) (*domain.Document, error)
}

// DocumentVerifier runs the verification pipeline over raw file content.
// It never returns an error: every failure mode is folded into the result.
type DocumentVerifier interface {
	Verify(ctx context.Context, input VerificationInput) domain.ValidationResult
}

// VerificationInput is the pipeline entry-point contract.
type VerificationInput struct {
	Content      []byte
	Filename     string
	SizeBytes    int64
	MimeType     string
	ExpectedType domain.DocumentType
}

// DocumentReader is the inbound read model for document metadata/state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous verification.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}
