package editor

import (
	"context"
	"io"

	"github.com/vojtechokenka/nokturo/internal/storage"
)

// UploadImage streams a file through the uploader and, on success, applies
// the resulting URL to the target block. The session tolerates the block
// having been removed in the meantime. Failures are reported through
// notify and leave the document untouched.
func (s *Session) UploadImage(ctx context.Context, up storage.Uploader, blockID, name, contentType string, r io.Reader, notify func(error)) {
	go func() {
		url, err := up.Upload(ctx, name, contentType, r)
		if err != nil {
			if notify != nil {
				notify(err)
			}
			return
		}
		s.ApplyUploadedImage(blockID, url)
	}()
}
