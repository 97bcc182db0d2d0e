package storage

import (
	"context"
	"time"
)

// Uploader writes sanitized buffers to object storage. Keys are always
// generated by the pipeline, never caller-controlled.
type Uploader interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// Presigner issues short-lived read URLs for stored objects.
type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
