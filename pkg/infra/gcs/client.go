package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Client uploads release artifacts to a Google Cloud Storage bucket
type Client struct {
	client *storage.Client
	bucket string
}

// Option is a functional option for Client configuration
type Option func(*config)

type config struct {
	clientOptions []option.ClientOption
}

// WithCredentialsFile authenticates with a service account key file
// instead of application default credentials
func WithCredentialsFile(path string) Option {
	return func(c *config) {
		if path != "" {
			c.clientOptions = append(c.clientOptions, option.WithCredentialsFile(path))
		}
	}
}

// New creates a storage client bound to the given bucket
func New(ctx context.Context, bucket string, opts ...Option) (*Client, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := storage.NewClient(ctx, cfg.clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// Upload streams body to the bucket under key, marks the object
// publicly readable, and returns its public URL. The object is not
// visible until the writer is closed, so a failed upload leaves nothing
// behind under the key.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader) (string, error) {
	w := c.client.Bucket(c.bucket).Object(key).NewWriter(ctx)
	w.PredefinedACL = "publicRead"

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to upload object",
			goerr.V("bucket", c.bucket), goerr.V("key", key))
	}

	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", c.bucket), goerr.V("key", key))
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, key), nil
}

// Close releases the underlying storage client
func (c *Client) Close() error {
	return c.client.Close()
}
