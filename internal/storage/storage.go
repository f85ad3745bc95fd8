// Package storage provides blob storage backends for uploaded files.
package storage

import (
	"context"
	"fmt"
	"io"

	"integrador-hub/config"
	"integrador-hub/internal/storage/backblaze"
	"integrador-hub/internal/storage/supabase"

	"go.uber.org/zap"
)

// Interface stores objects and returns their public URL.
type Interface interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New constructs a storage backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Interface, error) {
	switch name {
	case "supabase":
		return supabase.New(log, cfg.Supabase), nil
	case "b2":
		b, err := backblaze.New(ctx, log, cfg.B2)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", name)
	}
}
