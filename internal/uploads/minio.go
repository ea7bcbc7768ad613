package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOOptions holds object-store connection settings for the MinIO-backed sink.
type MinIOOptions struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Bucket        string
	PublicBaseURL string
}

// MinIOSink stores uploads as objects in a MinIO/S3 bucket. Identifiers use
// the same "{epochMillis}-{originalName}" scheme as the disk sink, so the two
// backends are interchangeable per deployment.
type MinIOSink struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIOSink creates the client and ensures the bucket exists.
func NewMinIOSink(opts MinIOOptions) (*MinIOSink, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint missing")
	}
	mc, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	base := opts.PublicBaseURL
	if base == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, opts.Endpoint, opts.Bucket)
	}
	s := &MinIOSink{client: mc, bucket: opts.Bucket, publicBaseURL: strings.TrimRight(base, "/")}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		// ignore "already exists" style errors
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

func (s *MinIOSink) Store(ctx context.Context, r io.Reader, size int64, originalName, contentType string) (string, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("store %s: %w", key, err)
	}
	return key, nil
}

func (s *MinIOSink) Delete(ctx context.Context, name string) error {
	key := path.Base(filepath.ToSlash(name))
	if key == "" || key == "." {
		return nil
	}
	// RemoveObject on a missing key is a no-op for S3-compatible stores
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *MinIOSink) StoredPath(identifier string) string {
	return path.Join(s.bucket, identifier)
}

func (s *MinIOSink) PublicURL(identifier string) string {
	return s.publicBaseURL + "/" + identifier
}
