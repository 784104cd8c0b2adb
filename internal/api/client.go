// Package api is the HTTP client for the car fleet manager REST API.
//
// Every operation issues exactly one request against the configured base
// URL. Responses are checked against a JSON schema for their endpoint
// before decoding, and failures come back as *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"carfleet/internal/jsonutil"
	"carfleet/internal/metrics"
	"carfleet/internal/telemetry"
)

// RequestIDHeader carries a per-request UUID for log correlation.
const RequestIDHeader = "X-Request-ID"

// Client talks to the fleet API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	tracer     oteltrace.Tracer
	metrics    *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithTracer(tracer oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = tracer }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client for baseURL (e.g. http://localhost:8080/car-fleet-manager).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
		tracer:     telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call describes one request. route is the path template used for metrics
// and span names; path is the concrete path.
type call struct {
	method string
	route  string
	path   string
	query  url.Values
	body   any
	schema string // empty skips validation and decoding
	out    any
}

func (c *Client) do(ctx context.Context, rq call) error {
	endpoint := rq.method + " " + rq.route
	requestID := uuid.NewString()
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, endpoint,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.method", rq.method),
			attribute.String("http.route", rq.route),
			attribute.String("request.id", requestID),
		))
	defer span.End()

	status, err := c.roundTrip(ctx, rq, endpoint, requestID)
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(endpoint, status, err != nil, elapsed)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}

	fields := []zap.Field{
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("api request failed", append(fields, zap.Error(err))...)
		return err
	}
	c.logger.Debug("api request completed", fields...)
	return nil
}

func (c *Client) roundTrip(ctx context.Context, rq call, endpoint, requestID string) (int, error) {
	fail := func(status int, msg string, err error) (int, error) {
		return status, &Error{Endpoint: endpoint, StatusCode: status, Message: msg, Err: err}
	}

	target := c.baseURL + rq.path
	if len(rq.query) > 0 {
		target += "?" + rq.query.Encode()
	}

	var reader io.Reader
	if rq.body != nil {
		data, err := json.Marshal(rq.body)
		if err != nil {
			return fail(0, "", fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, rq.method, target, reader)
	if err != nil {
		return fail(0, "", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if rq.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, extractMessage(body), ErrUnexpectedStatus)
	}

	if rq.schema == "" || rq.out == nil {
		return resp.StatusCode, nil
	}
	if err := checkSchema(rq.schema, body); err != nil {
		return fail(resp.StatusCode, "", err)
	}
	if err := jsonutil.UnmarshalWithContext(body, rq.out, "failed to decode response"); err != nil {
		return fail(resp.StatusCode, "", err)
	}
	return resp.StatusCode, nil
}
