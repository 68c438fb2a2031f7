// Package extractor turns uploaded files into plain text. Selection is by
// MIME type and extension; anything unrecognized falls through to the
// plaintext reader, and callers treat extraction errors as a signal to use
// a filename stub, never as a hard failure.
package extractor

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(ctx context.Context, filename, mimeType string, data io.Reader) (string, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}

	switch kind(filename, mimeType) {
	case "pdf":
		return extractPDF(raw)
	case "xlsx":
		return extractSpreadsheet(raw)
	default:
		return extractPlaintext(raw)
	}
}

func kind(filename, mimeType string) string {
	mime := strings.ToLower(mimeType)
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case mime == "application/pdf" || ext == ".pdf":
		return "pdf"
	case strings.Contains(mime, "spreadsheet") || ext == ".xlsx":
		return "xlsx"
	default:
		return "text"
	}
}
