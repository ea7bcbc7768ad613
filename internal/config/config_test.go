package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "content_test")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("UPLOADS_DIR", "/tmp/content-uploads")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Uploads.Dir != "/tmp/content-uploads" {
		t.Fatalf("uploads dir not taken from env: %q", cfg.Uploads.Dir)
	}
	if cfg.Uploads.MaxBlogImages != 5 {
		t.Fatalf("default max blog images = %d, want 5", cfg.Uploads.MaxBlogImages)
	}
	if cfg.Uploads.Backend != "disk" {
		t.Fatalf("default uploads backend = %q, want disk", cfg.Uploads.Backend)
	}
}
