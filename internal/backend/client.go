// Package backend is the HTTP client of the authentication API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"authbot/internal/metrics"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every backend call
const DefaultTimeout = 10 * time.Second

const maxLoggedBody = 200

// Client talks to the authentication API
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithMetrics records per-endpoint call metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a backend client
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("backend base URL is empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: baseURL,
		http:    newHTTPClient(timeout),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// post sends payload to endpoint and decodes the envelope data into out.
// out may be nil when the endpoint returns no data.
func (c *Client) post(ctx context.Context, endpoint string, payload, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveBackend(endpoint, outcomeOf(err), time.Since(started))
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", endpoint, err)
	}

	url := BuildURL(c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return unavailable("%s: %v", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable("%s: read body: %v", endpoint, err)
	}

	c.logger.Debug("Backend response",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)),
	)

	env, err := decodeEnvelope(raw)
	if err != nil {
		c.logger.Warn("Backend returned a non-JSON body",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(raw)),
		)
		return unavailable("%s: status %d: %v", endpoint, resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return unavailable("%s: status %d: %s", endpoint, resp.StatusCode, env.Message)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		c.logger.Info("Backend rejected request",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return &RejectedError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return unavailable("%s: decode data: %v", endpoint, err)
	}
	return nil
}

func decodeEnvelope(raw []byte) (*envelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}
	if trimmed[0] == '<' {
		return nil, errors.New("HTML body")
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case IsUnavailable(err):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeRejected
	}
}

func truncate(raw []byte) string {
	if len(raw) > maxLoggedBody {
		return string(raw[:maxLoggedBody])
	}
	return string(raw)
}
