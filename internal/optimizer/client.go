// Package optimizer talks to the remote sales price optimizer service.
package optimizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/tyrone-yanaga/product-launcher/internal/config"
	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"github.com/tyrone-yanaga/product-launcher/internal/submission"
)

// RequestIDHeader carries the per-submission correlation ID.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for logging.
const maxErrorBody = 64 << 10

// Client posts submissions to the optimizer endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a client for the configured endpoint. No request timeout is set;
// callers bound requests through the context if they want one.
func NewClient(cfg config.OptimizerConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		endpoint:   cfg.Endpoint(),
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL submissions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Optimize sends exactly one POST carrying the payload and decodes the result.
// Every failure is returned as a *RequestError.
func (c *Client) Optimize(ctx context.Context, payload submission.Payload, requestID string) (*domain.OptimizationResult, error) {
	log := c.logger.With(zap.String("request_id", requestID), zap.String("endpoint", c.endpoint))

	body, contentType, err := payload.Body()
	if err != nil {
		return nil, &RequestError{Op: "encode payload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, &RequestError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	log.Debug("posting submission",
		zap.String("file", payload.File.Name),
		zap.Int("file_bytes", len(payload.File.Data)),
		zap.Int("body_bytes", body.Len()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("optimizer request failed", zap.Error(err))
		return nil, &RequestError{Op: "post submission", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		detail := errorDetail(raw)
		log.Warn("optimizer rejected submission",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail))
		return nil, &RequestError{Op: "optimize", StatusCode: resp.StatusCode, Detail: detail}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("failed to read optimizer response", zap.Error(err))
		return nil, &RequestError{Op: "read response", StatusCode: resp.StatusCode, Err: err}
	}

	result, err := DecodeResult(bytes.NewReader(raw))
	if err != nil {
		log.Warn("optimizer response has unexpected shape", zap.Error(err))
		return nil, &RequestError{Op: "decode response", StatusCode: resp.StatusCode, Err: err}
	}

	log.Info("optimization result received",
		zap.Float64("optimal_price", result.OptimalPrice),
		zap.Int("months", len(result.MonthlyData)))
	return result, nil
}

// String implements fmt.Stringer for log output.
func (c *Client) String() string {
	return fmt.Sprintf("optimizer(%s)", c.endpoint)
}
