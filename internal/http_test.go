package internal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHttpClient(t *testing.T, ctx context.Context, handler http.HandlerFunc, opts HttpOptions) *HttpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL + "/1/")
	require.NoError(t, err)

	c := NewHttpClient(ctx, u, "test-token", opts)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestHttpClientGet(t *testing.T) {
	requests := make(chan *http.Request, 1)
	c := newTestHttpClient(t, context.Background(), func(w http.ResponseWriter, r *http.Request) {
		requests <- r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"activities-heart":[]}`))
	}, HttpOptions{Timeout: 5 * time.Second})

	body, err := c.Get("user/-/activities/heart/date/2018-01-01/1d/1min/time/12:30/12:45.json")
	require.NoError(t, err)
	assert.Equal(t, `{"activities-heart":[]}`, string(body))

	got := <-requests
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/1/user/-/activities/heart/date/2018-01-01/1d/1min/time/12:30/12:45.json", got.URL.Path)
	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, UserAgent(), got.Header.Get("User-Agent"))

	_, err = uuid.Parse(got.Header.Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestHttpClientUniqueRequestIDs(t *testing.T) {
	requestIDs := make(chan string, 3)
	c := newTestHttpClient(t, context.Background(), func(w http.ResponseWriter, r *http.Request) {
		requestIDs <- r.Header.Get("X-Request-ID")
	}, HttpOptions{})

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		_, err := c.Get("user/-/activities/heart/date/today/1d.json")
		require.NoError(t, err)
		ids[<-requestIDs] = true
	}
	assert.Len(t, ids, 3)
}

func TestHttpClientAPIError(t *testing.T) {
	var hits atomic.Int32
	c := newTestHttpClient(t, context.Background(), func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"errorType":"not_found"}]}`))
	}, HttpOptions{RetryCount: 2, RetryWaitTime: time.Millisecond, RetryMaxWaitTime: time.Millisecond})

	body, err := c.Get("user/-/activities/heart/date/today/1d.json")
	assert.Nil(t, body)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, `{"errors":[{"errorType":"not_found"}]}`, string(apiErr.Body))
	assert.True(t, HasStatus(err, http.StatusNotFound))
	assert.Equal(t, int32(1), hits.Load(), "client errors are not retried")
}

func TestHttpClientRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	c := newTestHttpClient(t, context.Background(), func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, HttpOptions{RetryCount: 1, RetryWaitTime: time.Millisecond, RetryMaxWaitTime: 2 * time.Millisecond})

	_, err := c.Get("user/-/activities/heart/date/today/1d.json")
	assert.True(t, HasStatus(err, http.StatusServiceUnavailable))
	assert.Equal(t, int32(2), hits.Load())
}

func TestHttpClientCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestHttpClient(t, ctx, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server")
	}, HttpOptions{})

	_, err := c.Get("user/-/activities/heart/date/today/1d.json")
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestHttpClientCloseIsIdempotent(t *testing.T) {
	u, _ := url.Parse("https://api.fitbit.com/1")
	c := NewHttpClient(context.Background(), u, "token", HttpOptions{})

	assert.NoError(t, c.Close())
	assert.NotPanics(t, func() { _ = c.Close() })
}

func TestHttpOptionsDefaults(t *testing.T) {
	o := HttpOptions{RetryCount: -1}.withDefaults()
	assert.Equal(t, 30*time.Second, o.Timeout)
	assert.Equal(t, 0, o.RetryCount)
	assert.Equal(t, time.Second, o.RetryWaitTime)
	assert.Equal(t, 5*time.Second, o.RetryMaxWaitTime)
}
