package appmgr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// connectTimeout bounds the TCP connect to the app manager
const connectTimeout = 20 * time.Second

// Response is a raw app manager reply. Commands map StatusCode to their
// per-endpoint outcome tables; Body is the unparsed response payload.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport issues a single HTTP request. Transport failures (connect
// refused, timeout, subprocess launch failure) return an error; any
// received HTTP response returns a Response regardless of status.
type Transport interface {
	Do(ctx context.Context, method, url string, body []byte) (*Response, error)
}

// Client talks to the app manager's /ric/v1 API
type Client struct {
	baseURL   string
	transport Transport
}

// Option adjusts a Client during construction
type Option func(*Client)

// WithTransport replaces the built-in HTTP transport, e.g. with the
// external curl-compatible client selected by the -c option.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// NewClient creates an app manager client for http://host:port
func NewClient(host string, port int, opts ...Option) *Client {
	c := &Client{
		baseURL:   fmt.Sprintf("http://%s/ric/v1", net.JoinHostPort(host, fmt.Sprintf("%d", port))),
		transport: newHTTPTransport(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	reqURL := c.baseURL + path
	log.Debug().Str("method", method).Str("url", reqURL).Msg("sending request")

	resp, err := c.transport.Do(ctx, method, reqURL, payload)
	if err != nil {
		return nil, fmt.Errorf("request to app manager failed: %w", err)
	}

	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(resp.Body)).Msg("received response")
	return resp, nil
}

// DeployXapp requests deployment of the xApp described by desc
func (c *Client) DeployXapp(ctx context.Context, desc *XappDescriptor) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/xapps", desc)
}

// UndeployXapp removes a deployed xApp by name
func (c *Client) UndeployXapp(ctx context.Context, name string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/xapps/"+url.PathEscape(name), nil)
}

// XappStatus fetches status for all xApps, one xApp, or one instance,
// depending on which of name and instance are non-empty.
func (c *Client) XappStatus(ctx context.Context, name, instance string) (*Response, error) {
	path := "/xapps"
	if name != "" {
		path += "/" + url.PathEscape(name)
		if instance != "" {
			path += "/instances/" + url.PathEscape(instance)
		}
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// Subscriptions lists all subscriptions, or one when id is non-empty
func (c *Client) Subscriptions(ctx context.Context, id string) (*Response, error) {
	path := "/subscriptions"
	if id != "" {
		path += "/" + url.PathEscape(id)
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// AddSubscription registers a new event subscription
func (c *Client) AddSubscription(ctx context.Context, req *SubscriptionRequest) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/subscriptions", req)
}

// ModifySubscription replaces the subscription identified by id
func (c *Client) ModifySubscription(ctx context.Context, id string, req *SubscriptionRequest) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/subscriptions/"+url.PathEscape(id), req)
}

// DeleteSubscription removes the subscription identified by id
func (c *Client) DeleteSubscription(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/subscriptions/"+url.PathEscape(id), nil)
}

// HealthAlive probes the liveness endpoint
func (c *Client) HealthAlive(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/health/alive", nil)
}

// HealthReady probes the readiness endpoint
func (c *Client) HealthReady(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/health/ready", nil)
}

// Configs lists all xApp configuration objects
func (c *Client) Configs(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/config", nil)
}

// AddConfig creates an xApp configuration object
func (c *Client) AddConfig(ctx context.Context, cfg *XAppConfig) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/config", cfg)
}

// AddConfigRaw creates a configuration object from a prebuilt JSON document
func (c *Client) AddConfigRaw(ctx context.Context, doc json.RawMessage) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/config", doc)
}

// ModifyConfig replaces an xApp configuration object
func (c *Client) ModifyConfig(ctx context.Context, cfg *XAppConfig) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/config", cfg)
}

// ModifyConfigRaw replaces a configuration object from a prebuilt JSON document
func (c *Client) ModifyConfigRaw(ctx context.Context, doc json.RawMessage) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/config", doc)
}

// DeleteConfig removes the configuration object named by req
func (c *Client) DeleteConfig(ctx context.Context, req *ConfigDeleteRequest) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/config", req)
}

// DeleteConfigRaw removes a configuration object from a prebuilt JSON document
func (c *Client) DeleteConfigRaw(ctx context.Context, doc json.RawMessage) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/config", doc)
}

// httpTransport implements Transport using net/http
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport() *httpTransport {
	return &httpTransport{
		client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
	}
}

// Do performs one HTTP request and captures the full response
func (t *httpTransport) Do(ctx context.Context, method, reqURL string, body []byte) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
