package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/vojtechokenka/nokturo/internal/logger"
)

const uploadTimeout = 2 * time.Minute

// GCSUploader writes objects to a Google Cloud Storage bucket and serves
// them back through a CDN domain when one is configured.
type GCSUploader struct {
	log       *logger.Logger
	client    *gcs.Client
	bucket    string
	cdnDomain string
	prefix    string
}

// NewGCSUploader connects a storage client for the given bucket. cdnDomain
// may be empty; public URLs then point straight at storage.googleapis.com.
func NewGCSUploader(ctx context.Context, log *logger.Logger, bucket, cdnDomain, prefix string, opts ...option.ClientOption) (*GCSUploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: bucket name is required")
	}
	opts = append(opts, option.WithScopes(gcs.ScopeReadWrite))
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}
	return &GCSUploader{
		log:       log.With("service", "GCSUploader"),
		client:    client,
		bucket:    bucket,
		cdnDomain: cdnDomain,
		prefix:    prefix,
	}, nil
}

// Upload streams r into a new object keyed by a fresh uuid plus the
// original file extension, then returns the public URL.
func (u *GCSUploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	key := u.objectKey(name)
	w := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	if contentType == "" {
		contentType = ContentTypeForName(name)
	}
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: close writer for %q: %w", key, err)
	}

	url := u.publicURL(key)
	u.log.Debugw("uploaded object", "key", key, "url", url)
	return url, nil
}

// Close releases the underlying client.
func (u *GCSUploader) Close() error {
	return u.client.Close()
}

func (u *GCSUploader) objectKey(name string) string {
	key := uuid.NewString() + path.Ext(name)
	if u.prefix != "" {
		key = path.Join(u.prefix, key)
	}
	return key
}

func (u *GCSUploader) publicURL(key string) string {
	if u.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cdnDomain, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, key)
}
