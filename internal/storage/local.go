package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalUploader stores files under a directory on disk and builds URLs
// from a base the server exposes the directory at. Intended for
// development without cloud credentials.
type LocalUploader struct {
	dir     string
	baseURL string
}

// NewLocalUploader makes sure dir exists and returns an uploader writing
// into it. baseURL is the public path the directory is served under, for
// example "/uploads".
func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, baseURL: baseURL}, nil
}

// Upload writes r to a uuid-named file and returns its URL. contentType is
// ignored; the ext on the stored name carries the type.
func (u *LocalUploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := uuid.NewString() + path.Ext(name)
	dst := filepath.Join(u.dir, key)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage: create %q: %w", dst, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("storage: write %q: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close %q: %w", dst, err)
	}
	return u.baseURL + "/" + key, nil
}
