package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vojtechokenka/nokturo/internal/storage"
)

// TestLocalUploaderRoundTrip verifies the file lands on disk under the
// returned URL's key
func TestLocalUploaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	u, err := storage.NewLocalUploader(dir, "/uploads")
	if err != nil {
		t.Fatalf("Failed to create uploader: %v", err)
	}

	url, err := u.Upload(context.Background(), "front.jpg", "image/jpeg", strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("Expected URL under the base path, got %q", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("Expected the extension carried over, got %q", url)
	}

	key := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		t.Fatalf("Failed to read the stored file: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("Stored content mismatch: %q", data)
	}
}

// TestLocalUploaderUniqueKeys verifies two uploads of the same name never
// collide
func TestLocalUploaderUniqueKeys(t *testing.T) {
	u, err := storage.NewLocalUploader(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("Failed to create uploader: %v", err)
	}

	first, err := u.Upload(context.Background(), "a.png", "image/png", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("First upload failed: %v", err)
	}
	second, err := u.Upload(context.Background(), "a.png", "image/png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Second upload failed: %v", err)
	}
	if first == second {
		t.Error("Expected distinct keys for same-named uploads")
	}
}

// TestLocalUploaderCancelledContext verifies an already-cancelled context
// writes nothing
func TestLocalUploaderCancelledContext(t *testing.T) {
	dir := t.TempDir()
	u, err := storage.NewLocalUploader(dir, "/uploads")
	if err != nil {
		t.Fatalf("Failed to create uploader: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := u.Upload(ctx, "a.png", "image/png", strings.NewReader("x")); err == nil {
		t.Error("Expected an error for a cancelled context")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Error("Expected no file written")
	}
}

// TestNewLocalUploaderRequiresDir verifies the empty-dir guard
func TestNewLocalUploaderRequiresDir(t *testing.T) {
	if _, err := storage.NewLocalUploader("", "/uploads"); err == nil {
		t.Error("Expected an error for an empty directory")
	}
}

// TestContentTypeForName verifies extension sniffing
func TestContentTypeForName(t *testing.T) {
	cases := map[string]string{
		"a.png":            "image/png",
		"b.JPG":            "image/jpeg",
		"c.jpeg":           "image/jpeg",
		"d.webp":           "image/webp",
		"e.gif":            "image/gif",
		"f.svg":            "image/svg+xml",
		"g.jpg?width=1200": "image/jpeg",
		"unknown.bin":      "",
		"":                 "",
	}

	for name, want := range cases {
		if got := storage.ContentTypeForName(name); got != want {
			t.Errorf("%q: expected %q, got %q", name, want, got)
		}
	}
}
