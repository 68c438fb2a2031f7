package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/chitwa-lm/admissions-verifier/internal/core/domain"
	"github.com/chitwa-lm/admissions-verifier/internal/core/ports"
)

// ProcessDocumentUseCase is the worker-side flow: load the stored document,
// run verification, persist the result snapshot. An invalid document is
// still a successful verification; only infrastructure failures mark the
// record failed.
type ProcessDocumentUseCase struct {
	repo     ports.DocumentRepository
	storage  ports.ObjectStorage
	verifier ports.DocumentVerifier
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	verifier ports.DocumentVerifier,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:     repo,
		storage:  storage,
		verifier: verifier,
	}
}

func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	result, err := uc.runVerification(ctx, documentID)
	if err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveVerification(ctx, documentID, result); err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return fmt.Errorf("save verification: %w", err)
	}

	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusVerified, ""); err != nil {
		return fmt.Errorf("set status=verified: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) runVerification(ctx context.Context, documentID string) (domain.ValidationResult, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("fetch document by id: %w", err)
	}

	reader, err := uc.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("open stored document: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("read stored document: %w", err)
	}

	result := uc.verifier.Verify(ctx, ports.VerificationInput{
		Content:      content,
		Filename:     doc.Filename,
		SizeBytes:    doc.SizeBytes,
		MimeType:     doc.MimeType,
		ExpectedType: doc.ExpectedType,
	})
	return result, nil
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.repo.UpdateStatus(ctx, documentID, domain.StatusFailed, processErr.Error())
}
