// Package fitbit builds and validates requests for the Fitbit Web API heart
// rate endpoints. Arguments are checked before any network call; the finished
// resource path is handed to an HttpGetter and its raw response body is
// returned unchanged.
package fitbit

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/Xevion/go-fitbit/internal"
	"github.com/Xevion/go-fitbit/types"
)

const (
	DefaultBaseURL = "https://api.fitbit.com/1"

	// CurrentUser addresses the user the access token belongs to.
	CurrentUser = "-"
)

// HttpGetter performs a GET against a resource path relative to the API root
// and returns the raw response body. Errors are passed back to callers as-is.
type HttpGetter interface {
	Get(path string) ([]byte, error)
}

// NewClientRequest contains the configuration for creating a new Client.
type NewClientRequest struct {
	// Optional
	// Root of the Web API. Defaults to DefaultBaseURL.
	BaseURL string

	// Required unless Getter is set.
	// OAuth2 access token sent as a Bearer token.
	AccessToken string

	// Optional
	// Encoded Fitbit user id. Defaults to CurrentUser ("-").
	UserID string

	// Optional
	// Overrides types.HRPeriods, e.g. when loaded from a config file.
	Periods []types.Period

	// Optional
	// Overrides types.HRDetailLevels.
	DetailLevels []types.DetailLevel

	// Optional
	// Per-request timeout and retry count of the default transport.
	Timeout    time.Duration
	RetryCount int

	// Optional
	// Replaces the default resty-based transport entirely.
	Getter HttpGetter
}

// Client is the heart rate request builder. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	ctxCancel context.CancelFunc

	userID string
	getter HttpGetter

	// nil when a custom Getter was supplied
	httpClient *internal.HttpClient

	periods      *internal.AllowList
	detailLevels *internal.AllowList
}

// NewClient validates the request and returns a ready Client.
func NewClient(request NewClientRequest) (*Client, error) {
	if request.Getter == nil && request.AccessToken == "" {
		slog.Error("AccessToken is a required argument in NewClientRequest when no Getter is given")
		return nil, fmt.Errorf("missing access token: %w", ErrInvalidArgs)
	}

	if request.UserID == "" {
		request.UserID = CurrentUser
	}
	if len(request.Periods) == 0 {
		request.Periods = types.HRPeriods
	}
	if len(request.DetailLevels) == 0 {
		request.DetailLevels = types.HRDetailLevels
	}
	for _, p := range request.Periods {
		if p == "" {
			return nil, fmt.Errorf("empty period in allow-list: %w", ErrInvalidArgs)
		}
	}
	for _, d := range request.DetailLevels {
		if d == "" {
			return nil, fmt.Errorf("empty detail level in allow-list: %w", ErrInvalidArgs)
		}
	}

	ctx, ctxCancel := context.WithCancel(context.Background())
	client := &Client{
		ctxCancel:    ctxCancel,
		userID:       request.UserID,
		getter:       request.Getter,
		periods:      internal.NewAllowList(request.Periods),
		detailLevels: internal.NewAllowList(request.DetailLevels),
	}

	if client.getter == nil {
		if request.BaseURL == "" {
			request.BaseURL = DefaultBaseURL
		}
		baseURL, err := url.Parse(request.BaseURL)
		if err != nil {
			ctxCancel()
			return nil, fmt.Errorf("failed to parse URL: %w", err)
		}
		if baseURL.Scheme == "" || baseURL.Host == "" {
			ctxCancel()
			return nil, fmt.Errorf("base URL %q must be absolute: %w", request.BaseURL, ErrInvalidArgs)
		}

		client.httpClient = internal.NewHttpClient(ctx, baseURL, request.AccessToken, internal.HttpOptions{
			Timeout:    request.Timeout,
			RetryCount: request.RetryCount,
		})
		client.getter = client.httpClient
	}

	return client, nil
}

// UserID returns the user id interpolated into every path.
func (c *Client) UserID() string {
	return c.userID
}

// Periods returns the allowed period tokens in order.
func (c *Client) Periods() []string {
	return c.periods.Tokens()
}

// DetailLevels returns the allowed detail level tokens in order.
func (c *Client) DetailLevels() []string {
	return c.detailLevels.Tokens()
}

// Close cancels in-flight requests of the default transport and releases it.
func (c *Client) Close() error {
	if c.ctxCancel != nil {
		c.ctxCancel()
	}
	if c.httpClient != nil {
		if err := c.httpClient.Close(); err != nil {
			slog.Warn("Error closing HTTP client", "error", err)
			return err
		}
	}
	return nil
}
