package deploy_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/infra/deploy"
)

func testPayload() *model.DeployPayload {
	return &model.DeployPayload{
		Context:    "darwin",
		BranchName: "releases/1.2.3",
		Artifacts: []model.Artifact{
			{Name: "App.zip", URL: "https://example.com/App.zip", Size: 42, SHA: "deadbeef"},
		},
		Stats: model.DeployStats{
			Platform:           "darwin",
			RendererBundleSize: 100,
			MainBundleSize:     200,
		},
	}
}

func TestClient_Notify_SignsExactBody(t *testing.T) {
	const secret = "test-secret"

	var gotSignature string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		gt.V(t, r.URL.Path).Equal("/api/deploy_built")
		gt.V(t, r.Header.Get("Content-Type")).Equal("application/json")

		gotSignature = r.Header.Get("X-Hub-Signature")

		var err error
		gotBody, err = io.ReadAll(r.Body)
		gt.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := deploy.New(srv.URL, secret)
	gt.NoError(t, client.Notify(context.Background(), testPayload()))

	// The signature must be recomputable byte-for-byte from the body
	// the server actually received
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(gotBody)
	expected := "sha1=" + hex.EncodeToString(mac.Sum(nil))
	gt.V(t, gotSignature).Equal(expected)

	// And the body must round-trip to the payload we sent
	var decoded model.DeployPayload
	gt.NoError(t, json.Unmarshal(gotBody, &decoded))
	gt.V(t, &decoded).Equal(testPayload())
}

func TestClient_Notify_RejectsNon200(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "server error with body",
			status: http.StatusInternalServerError,
			body:   "release already deployed",
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   "bad signature",
		},
		{
			name:   "accepted is not success",
			status: http.StatusAccepted,
			body:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := deploy.New(srv.URL, "secret")
			err := client.Notify(context.Background(), testPayload())
			gt.Error(t, err)

			if tt.body != "" && !strings.Contains(err.Error(), "deploy endpoint rejected") {
				t.Errorf("unexpected error message: %v", err)
			}
		})
	}
}

func TestClient_Notify_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := deploy.New(srv.URL, "secret")
	gt.Error(t, client.Notify(context.Background(), testPayload()))
}

func TestNew_BareHostDefaultsToHTTPS(t *testing.T) {
	// A bare host must resolve to the https endpoint; verified through
	// the request URL seen by a custom transport
	var gotURL string
	client := deploy.New("deploy.example.com", "secret",
		deploy.WithHTTPClient(&http.Client{
			Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				gotURL = req.URL.String()
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader("")),
					Header:     http.Header{},
				}, nil
			}),
		}),
	)

	gt.NoError(t, client.Notify(context.Background(), testPayload()))
	gt.V(t, gotURL).Equal("https://deploy.example.com/api/deploy_built")
}

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestSign(t *testing.T) {
	body := []byte(`{"context":"darwin"}`)

	sig := deploy.Sign("secret", body)
	gt.True(t, strings.HasPrefix(sig, "sha1="))

	mac := hmac.New(sha1.New, []byte("secret"))
	mac.Write(body)
	gt.V(t, sig).Equal("sha1=" + hex.EncodeToString(mac.Sum(nil)))

	// A different secret yields a different signature
	gt.V(t, deploy.Sign("other", body)).NotEqual(sig)
}
