package backend

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	defaultDialTimeout     = 5 * time.Second
	defaultIdleConnTimeout = 30 * time.Second
	defaultRetryAttempts   = 2
	defaultRetryBackoff    = 300 * time.Millisecond
)

// newHTTPClient returns a client whose total budget per call is timeout
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: defaultDialTimeout}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     defaultIdleConnTimeout,
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &requestIDTransport{
			base: &retryTransport{
				base:       transport,
				maxRetries: defaultRetryAttempts,
				backoff:    defaultRetryBackoff,
			},
		},
	}
}

// requestIDTransport tags every request with an X-Request-ID header
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	return t.base.RoundTrip(req)
}

// retryTransport retries requests that never reached the server.
// The auth endpoints are not idempotent so only dial failures qualify.
type retryTransport struct {
	base       http.RoundTripper
	maxRetries int
	backoff    time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	attempts := t.maxRetries + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		currReq := req
		if attempt > 1 {
			currReq = req.Clone(req.Context())
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				currReq.Body = body
			} else if req.Body != nil {
				return nil, lastErr
			}
		}

		resp, err := base.RoundTrip(currReq)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !isDialError(err) || attempt == attempts {
			break
		}

		timer := time.NewTimer(t.backoff * time.Duration(attempt))
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}

func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
