package localfs

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := storage.Save(context.Background(), "doc-1_a.pdf", strings.NewReader("file bytes")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reader, err := storage.Open(context.Background(), "doc-1_a.pdf")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "file bytes" {
		t.Errorf("content = %q", content)
	}
}

func TestOpenMissingKey(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := storage.Open(context.Background(), "nope.pdf"); err == nil {
		t.Error("expected an error for a missing key")
	}
}
