package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DiskSink stores uploads in a single flat directory. Filenames are
// "{epochMillis}-{originalName}" so repeated uploads of the same file do not
// collide.
type DiskSink struct {
	dir           string
	publicBaseURL string
}

// NewDiskSink ensures the directory exists and returns a sink writing into it.
// publicBaseURL is the URL prefix under which the directory is served.
func NewDiskSink(dir, publicBaseURL string) (*DiskSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("uploads dir missing")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads dir ensure: %w", err)
	}
	return &DiskSink{dir: dir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

// Dir returns the directory files are written to (used for static serving).
func (s *DiskSink) Dir() string { return s.dir }

func (s *DiskSink) Store(ctx context.Context, r io.Reader, size int64, originalName, contentType string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("store %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("store %s: %w", name, err)
	}
	return name, nil
}

func (s *DiskSink) Delete(ctx context.Context, name string) error {
	id := path.Base(filepath.ToSlash(name))
	if id == "" || id == "." {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *DiskSink) StoredPath(identifier string) string {
	return path.Join(filepath.Base(s.dir), identifier)
}

func (s *DiskSink) PublicURL(identifier string) string {
	return s.publicBaseURL + "/" + identifier
}

// sanitizeName strips any directory components a client may smuggle into the
// original filename.
func sanitizeName(name string) string {
	name = path.Base(filepath.ToSlash(name))
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}
