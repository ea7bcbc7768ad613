package uploads

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/contentforge/content-api/pkg/metrics"
)

// Sink is the destination for uploaded binary files. Documents reference
// stored files by the identifier returned from Store; they never own the
// bytes, so a Delete that finds nothing is not an error.
type Sink interface {
	// Store writes the file and returns its identifier
	// (timestamp-prefixed original name).
	Store(ctx context.Context, r io.Reader, size int64, originalName, contentType string) (string, error)
	// Delete removes a stored file. Accepts either a bare identifier or a
	// stored path; a missing file is treated as success.
	Delete(ctx context.Context, name string) error
	// StoredPath returns the path form of an identifier as persisted in
	// product documents (e.g. "uploads/169...-photo.png").
	StoredPath(identifier string) string
	// PublicURL returns the externally reachable URL for an identifier.
	PublicURL(identifier string) string
}

// StoreAll writes every file header of one form field to the sink and returns
// the identifiers in upload order. field is used only for metrics labels.
func StoreAll(ctx context.Context, sink Sink, field string, files []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return names, err
		}
		name, err := sink.Store(ctx, f, fh.Size, fh.Filename, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			return names, err
		}
		metrics.UploadsStored.WithLabelValues(field).Inc()
		names = append(names, name)
	}
	return names, nil
}
