package deploy

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

// Client posts signed deploy notifications to the deployment endpoint
type Client struct {
	endpoint   string
	secret     string
	httpClient *http.Client
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient replaces the HTTP client, mainly for tests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a deploy client for the given host. The host may be bare
// ("deploy.example.com") or carry a scheme; bare hosts default to
// https.
func New(host, secret string, opts ...Option) *Client {
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	c := &Client{
		endpoint:   strings.TrimSuffix(host, "/") + "/api/deploy_built",
		secret:     secret,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Notify serializes the payload, signs the exact body bytes, and POSTs
// them to the deploy endpoint. Anything but HTTP 200 is an error; the
// response body is attached for diagnosis when available.
func (c *Client) Notify(ctx context.Context, payload *model.DeployPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal deploy payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create deploy request", goerr.V("endpoint", c.endpoint))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Hub-Signature", Sign(c.secret, body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send deploy notification", goerr.V("endpoint", c.endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return goerr.New("deploy endpoint rejected notification",
			goerr.V("endpoint", c.endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}

// Sign computes the signature header value for a request body: "sha1="
// followed by the hex HMAC-SHA1 of the body under the shared secret
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}
