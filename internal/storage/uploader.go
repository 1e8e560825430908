// Package storage provides the upload backends behind the image blocks.
// Two implementations exist: a GCS-backed uploader for deployments and a
// local-disk uploader for development.
package storage

import (
	"context"
	"io"
	"strings"
)

// Uploader stores a file and returns the public URL the stored copy is
// reachable at.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// ContentTypeForName infers a MIME type from the file extension. Empty
// string means unknown; the backend then falls back to its own sniffing.
func ContentTypeForName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	switch {
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	case strings.HasSuffix(s, ".svg"):
		return "image/svg+xml"
	default:
		return ""
	}
}
