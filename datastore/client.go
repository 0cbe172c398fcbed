package datastore

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/cnabio/st2kv-go/options"
)

// maxValueSize bounds the size of a key read response.
const maxValueSize = 16 << 20

// Client reads keys from the datastore. It sends requests one at a time and
// holds no state between them.
type Client struct {
	request    Request
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient makes the client send requests through c.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger sets the logger used for per request debug output.
func WithLogger(l *zap.Logger) ClientOption {
	return func(cl *Client) {
		cl.logger = l
	}
}

// NewClient creates a client for the given request. Without WithHTTPClient,
// the HTTP client is built from the default options.
func NewClient(req Request, opts ...ClientOption) *Client {
	c := &Client{
		request: req,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = NewHTTPClient(options.Default())
	}
	return c
}

// NewHTTPClient builds the HTTP client for one lookup invocation.
//
// Certificate verification is turned off when ssl_verify is false; the
// connection is still attempted. A zero timeout leaves requests unbounded
// apart from the caller's context.
func NewHTTPClient(opts options.LookupOptions) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !opts.SSLVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicit opt-out
	}
	return &http.Client{
		Transport: otelhttp.NewTransport(transport),
		Timeout:   opts.Timeout,
	}
}

// Fetch reads every key in order and returns their values in the same
// order. It stops at the first failure; no partial result is returned.
func (c *Client) Fetch(ctx context.Context, keys []string) ([]string, error) {
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		v, err := c.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Get reads a single key.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	value, status, err := c.get(ctx, key)
	elapsed := time.Since(start)

	result := resultOf(err)
	RequestsTotal.WithLabelValues(result).Inc()
	RequestDuration.WithLabelValues(result).Observe(elapsed.Seconds())

	c.logger.Debug("datastore read",
		zap.String("key", key),
		zap.Int("status", status),
		zap.String("result", result),
		zap.Duration("duration", elapsed),
	)
	return value, err
}

func (c *Client) get(ctx context.Context, key string) (string, int, error) {
	u := c.request.KeyURL(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", 0, &RequestError{Key: key, Err: errors.Wrap(err, "failed to create request")}
	}
	req.Header.Set("Accept", "application/json")
	if c.request.HeaderName != "" {
		req.Header.Set(c.request.HeaderName, c.request.HeaderValue)
	}

	c.logger.Debug("sending datastore request", zap.String("key", key), zap.String("url", u))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, &RequestError{Key: key, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", resp.StatusCode, &KeyNotFoundError{Key: key}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", resp.StatusCode, &AuthenticationError{
			Key:        key,
			StatusCode: resp.StatusCode,
			Detail:     readDetail(resp.Body, resp.Status),
		}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", resp.StatusCode, &RequestError{
			Key:        key,
			StatusCode: resp.StatusCode,
			Detail:     readDetail(resp.Body, resp.Status),
		}
	}

	var kv KeyValuePair
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxValueSize)).Decode(&kv); err != nil {
		return "", resp.StatusCode, &RequestError{
			Key:        key,
			StatusCode: resp.StatusCode,
			Err:        errors.Wrap(err, "could not decode response"),
		}
	}
	value, err := kv.Text()
	if err != nil {
		return "", resp.StatusCode, &RequestError{Key: key, StatusCode: resp.StatusCode, Err: err}
	}
	return value, resp.StatusCode, nil
}
