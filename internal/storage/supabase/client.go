// Package supabase uploads objects through the Supabase Storage REST API.
package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"integrador-hub/config"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Client talks to one bucket of a Supabase project.
type Client struct {
	log        *zap.SugaredLogger
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

// New creates a Supabase storage client.
func New(log *zap.SugaredLogger, cfg config.SupabaseConfig) *Client {
	return &Client{
		log:        log.Named("storage.supabase"),
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.Key,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload writes the object, replacing any previous version, and returns its public URL.
func (c *Client) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(key), r)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	if err := c.do(req); err != nil {
		c.log.Errorw("failed to upload object", "error", err, "key", key)
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	c.log.Infow("object uploaded", "bucket", c.bucket, "key", key)
	return c.PublicURL(key), nil
}

// Delete removes the object.
func (c *Client) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(key), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	if err := c.do(req); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// PublicURL returns the public URL of an object in a public bucket.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, escapePath(key))
}

func (c *Client) objectURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, escapePath(key))
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(resp.StatusCode, body)
	}
	return nil
}

func responseError(status int, body []byte) error {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "message").String(); msg != "" {
			return fmt.Errorf("supabase error: status %d: %s", status, msg)
		}
		if msg := gjson.GetBytes(body, "error").String(); msg != "" {
			return fmt.Errorf("supabase error: status %d: %s", status, msg)
		}
	}
	return fmt.Errorf("supabase error: status %d", status)
}

func escapePath(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
