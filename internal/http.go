// http is used to interact with the Fitbit Web API.
// It performs authenticated GETs against resource paths
// and hands back the raw response body.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"
)

// HttpOptions tunes the underlying resty client. Zero values fall back to
// the defaults below.
type HttpOptions struct {
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
}

func (o HttpOptions) withDefaults() HttpOptions {
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	if o.RetryCount < 0 {
		o.RetryCount = 0
	}
	if o.RetryWaitTime == 0 {
		o.RetryWaitTime = 1 * time.Second
	}
	if o.RetryMaxWaitTime == 0 {
		o.RetryMaxWaitTime = 5 * time.Second
	}
	return o
}

type HttpClient struct {
	client      *resty.Client
	baseRequest *resty.Request

	closeOnce sync.Once
	closeErr  error
}

func NewHttpClient(ctx context.Context, baseUrl *url.URL, token string, opts HttpOptions) *HttpClient {
	// Shallow copy the URL to avoid modifying the original
	u := *baseUrl
	u.Path = strings.TrimRight(u.Path, "/")
	opts = opts.withDefaults()

	client := resty.New().
		SetBaseURL(u.String()).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWaitTime).
		SetRetryMaxWaitTime(opts.RetryMaxWaitTime).
		AddRetryConditions(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("User-Agent", UserAgent()).
		SetContext(ctx)

	return &HttpClient{
		client: client,
		baseRequest: client.R().
			SetHeader("Accept", "application/json").
			SetAuthToken(token),
	}
}

// getRequest returns a new request
func (c *HttpClient) getRequest() *resty.Request {
	return c.baseRequest.Clone(c.client.Context())
}

// Get fetches a resource path such as "user/-/activities/heart/date/today/1d.json"
// relative to the base URL. Responses with a status of 400 or above are
// returned as *APIError.
func (c *HttpClient) Get(path string) ([]byte, error) {
	requestID := uuid.NewString()
	slog.Debug("Fitbit API request", "method", "GET", "path", path, "request_id", requestID)

	resp, err := c.getRequest().
		SetHeader("X-Request-ID", requestID).
		Get("/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("error making HTTP request: %w", err)
	}

	if resp.StatusCode() >= 400 {
		slog.Warn("Fitbit API error", "path", path, "status", resp.StatusCode(), "request_id", requestID)
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.Bytes(),
		}
	}

	return resp.Bytes(), nil
}

// Close releases the resty client. It is safe to call more than once.
func (c *HttpClient) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.client.Close()
	})
	return c.closeErr
}
