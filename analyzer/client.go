// Package analyzer talks to the appealability analysis service.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"judgment-analyzer/models"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// RequestIDHeader carries a per-submission identifier for log correlation.
const RequestIDHeader = "X-Request-ID"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

var (
	// ErrBadStatus is returned for any non-2xx response.
	ErrBadStatus = errors.New("analysis service returned non-success status")
	// ErrInvalidResponse is returned when a 2xx body is not a valid analysis.
	ErrInvalidResponse = errors.New("analysis service returned an invalid body")
)

// Analyzer is the behavior the form needs from the analysis service.
type Analyzer interface {
	Analyze(ctx context.Context, judgmentText string) (*models.AnalysisResponse, error)
}

// Client posts judgment text to the analysis endpoint. Each call issues
// exactly one request; there is no retry.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	timeout    time.Duration
	schema     *jsonschema.Schema
	newID      func() string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client. The client is copied, so later
// options never modify the caller's value.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRequestIDs overrides the request ID generator.
func WithRequestIDs(newID func() string) ClientOption {
	return func(c *Client) {
		c.newID = newID
	}
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse analysis endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("analysis endpoint %q is not an absolute URL", endpoint)
	}

	schema, err := compileResponseSchema()
	if err != nil {
		return nil, fmt.Errorf("analysis response schema: %w", err)
	}

	c := &Client{
		endpoint:   u,
		httpClient: &http.Client{},
		schema:     schema,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = &hc
	return c, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Analyze posts judgmentText and decodes the summary and analysis.
func (c *Client) Analyze(ctx context.Context, judgmentText string) (*models.AnalysisResponse, error) {
	body, err := json.Marshal(models.AnalysisRequest{JudgmentText: judgmentText})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	requestID := c.newID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log := slog.With("endpoint", c.endpoint.String(), "request_id", requestID)
	log.Debug("Posting judgment for analysis.", "bytes", len(body))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post analysis request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	if err := validateResponse(c.schema, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	var result models.AnalysisResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	log.Debug("Analysis received.", "status", resp.StatusCode, "elapsed", time.Since(start))
	return &result, nil
}
