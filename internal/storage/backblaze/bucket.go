// Package backblaze stores objects in a Backblaze B2 bucket.
package backblaze

import (
	"context"
	"fmt"
	"io"

	"integrador-hub/config"

	"github.com/kurin/blazer/b2"
	"go.uber.org/zap"
)

// Bucket wraps an authorized B2 bucket handle.
type Bucket struct {
	log    *zap.SugaredLogger
	bucket *b2.Bucket
}

// New authorizes the account and resolves the bucket.
func New(ctx context.Context, log *zap.SugaredLogger, cfg config.B2Config) (*Bucket, error) {
	client, err := b2.NewClient(ctx, cfg.KeyID, cfg.AppKey)
	if err != nil {
		return nil, fmt.Errorf("b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("b2 bucket %s: %w", cfg.Bucket, err)
	}

	return &Bucket{log: log.Named("storage.b2"), bucket: bucket}, nil
}

// Upload writes the object and returns its download URL.
func (b *Bucket) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	obj := b.bucket.Object(key)
	w := obj.NewWriter(ctx).WithAttrs(&b2.Attrs{ContentType: contentType})

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		b.log.Errorw("failed to write object", "error", err, "key", key)
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object %s: %w", key, err)
	}

	b.log.Infow("object uploaded", "bucket", b.bucket.Name(), "key", key)
	return obj.URL(), nil
}

// Delete removes the object.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	if err := b.bucket.Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
