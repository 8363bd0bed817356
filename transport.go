package weaviate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kailas-cloud/weaviate-go/internal/version"
)

// maxErrorBody caps how much of an error response is read back into
// APIError.Message.
const maxErrorBody = 32 << 10

// transport issues HTTP requests against one Weaviate instance. All
// sub-clients hold the same transport and through it share a single
// *http.Client connection pool.
type transport struct {
	base      *url.URL
	apiKey    string
	userAgent string
	hc        *http.Client
}

// do issues one request and decodes the response. path is
// instance-relative (starts with /v1), params may be nil, body (when
// non-nil) is JSON-encoded, and a non-nil out receives the decoded
// success body. Any non-2xx status returns an *APIError; transport and
// decode failures return wrapped errors. Nothing is ever retried.
func (t *transport) do(
	ctx context.Context, method, path string,
	params url.Values, body, out any,
) error {
	u := *t.base
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if params != nil {
		u.RawQuery = params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	res, err := t.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apiError(res)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError builds an *APIError from a non-2xx response, capturing the
// server's message when the body is decodable.
func apiError(res *http.Response) error {
	e := &APIError{StatusCode: res.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err == nil {
		e.Message = errorMessage(raw)
	}
	return e
}

// errorMessage extracts the server message from an error body.
// Weaviate wraps errors as {"error": [{"message": "..."}]}.
func errorMessage(raw []byte) string {
	var parsed struct {
		Error []struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &parsed) == nil && len(parsed.Error) > 0 {
		msgs := make([]string, 0, len(parsed.Error))
		for _, e := range parsed.Error {
			if e.Message != "" {
				msgs = append(msgs, e.Message)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return strings.TrimSpace(string(raw))
}

// newTransport validates the base URL and builds the shared transport.
func newTransport(baseURL string, cfg *clientConfig) (*transport, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("weaviate: parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("weaviate: base URL %q must use http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("weaviate: base URL %q has no host", baseURL)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}
	ua := cfg.userAgent
	if ua == "" {
		ua = version.UserAgent()
	}

	return &transport{
		base:      u,
		apiKey:    cfg.apiKey,
		userAgent: ua,
		hc:        hc,
	}, nil
}
