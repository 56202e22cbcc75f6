package interfaces

import (
	"context"
	"io"
)

// IImageStorage abstracts the object store holding project images attached to requests.
type IImageStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}
