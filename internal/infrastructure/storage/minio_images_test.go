package storage

import (
	"context"
	"testing"
	"time"

	"probuilder/internal/infrastructure/config"
)

func TestNewMinIOImageStorage_InvalidEndpoint(t *testing.T) {
	_, err := NewMinIOImageStorage(context.Background(), config.MinIOConfig{
		Endpoint: "http://minio:9000/path",
		Bucket:   "quote-request-images",
	})
	if err == nil {
		t.Fatalf("expected error for an endpoint with scheme and path")
	}
}

func TestNewMinIOImageStorage_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := NewMinIOImageStorage(ctx, config.MinIOConfig{
		Endpoint:  "127.0.0.1:1",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "quote-request-images",
	})
	if err == nil {
		t.Fatalf("expected error for an unreachable server")
	}
}
