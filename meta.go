package weaviate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MetaInfo describes a Weaviate instance: its hostname, server version
// and the configuration of its enabled modules.
type MetaInfo struct {
	Hostname string          `json:"hostname"`
	Version  string          `json:"version"`
	Modules  json.RawMessage `json:"modules,omitempty"`
}

// OIDCConfiguration is the OpenID Connect setup advertised by an
// instance with authentication enabled.
type OIDCConfiguration struct {
	Href     string `json:"href"`
	ClientID string `json:"clientId"`
}

// Meta fetches build and module information of the instance.
func (c *Client) Meta(ctx context.Context) (_ *MetaInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("meta.get", start, err) }()

	var out MetaInfo
	if err = c.t.do(ctx, http.MethodGet, "/v1/meta", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get meta: %w", err)
	}
	return &out, nil
}

// Live reports whether the instance answers its liveness probe. A
// non-2xx answer means not live; only transport failures return an
// error.
func (c *Client) Live(ctx context.Context) (bool, error) {
	return c.probe(ctx, "meta.live", "/v1/.well-known/live")
}

// Ready reports whether the instance is ready to serve requests.
func (c *Client) Ready(ctx context.Context) (bool, error) {
	return c.probe(ctx, "meta.ready", "/v1/.well-known/ready")
}

func (c *Client) probe(ctx context.Context, op, path string) (_ bool, err error) {
	start := time.Now()
	defer func() { c.obs.observe(op, start, err) }()

	if err = c.t.do(ctx, http.MethodGet, path, nil, nil, nil); err != nil {
		if statusOf(err) != 0 {
			return false, nil
		}
		return false, fmt.Errorf("probe %s: %w", path, err)
	}
	return true, nil
}

// OIDC fetches the OpenID Connect configuration of the instance. It
// returns ErrOIDCNotConfigured when the instance has none.
func (c *Client) OIDC(ctx context.Context) (_ *OIDCConfiguration, err error) {
	start := time.Now()
	defer func() { c.obs.observe("meta.oidc", start, err) }()

	var out OIDCConfiguration
	if err = c.t.do(ctx, http.MethodGet, "/v1/.well-known/openid-configuration", nil, nil, &out); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, ErrOIDCNotConfigured
		}
		return nil, fmt.Errorf("get OIDC configuration: %w", err)
	}
	return &out, nil
}
