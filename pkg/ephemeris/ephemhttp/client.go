// Package ephemhttp provides an ephemeris.Client backed by a REST ephemeris
// service (a thin HTTP front to the Swiss Ephemeris).
package ephemhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"skychart/pkg/ephemeris"
	"skychart/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "skychart/pkg/ephemeris/ephemhttp"

// Upstream per-body error codes.
const (
	codeUnsupportedBody = "UNSUPPORTED_BODY"
	codeDataUnavailable = "DATA_UNAVAILABLE"
)

// Client talks to the ephemeris REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs the HTTP requests
	baseURL    *url.URL     // baseURL is the service root, e.g. https://ephemeris.internal
	token      string       // token is sent as Api-Key when not empty
	tracer     trace.Tracer
}

// ParseRateLimit reads the X-Rate-Limit-* headers. A response without a reset
// header yields a zero status, which callers treat as "no information".
func ParseRateLimit(h http.Header) (ephemeris.RateLimitStatus, error) {
	resetStr := h.Get("X-Rate-Limit-Reset")
	if resetStr == "" {
		return ephemeris.RateLimitStatus{}, nil
	}
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		return ephemeris.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	atoi := func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}

		return n
	}

	return ephemeris.RateLimitStatus{
		Limit:     atoi(h.Get("X-Rate-Limit-Limit")),
		Remaining: atoi(h.Get("X-Rate-Limit-Remaining")),
		ResetAt:   resetAt,
	}, nil
}

type positionDTO struct {
	Body           int     `json:"body"`
	Name           string  `json:"name"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	Distance       float64 `json:"distance"`
	LongitudeSpeed float64 `json:"longitudeSpeed"`
	LatitudeSpeed  float64 `json:"latitudeSpeed"`
	DistanceSpeed  float64 `json:"distanceSpeed"`
}

type bodyErrorDTO struct {
	Body    int    `json:"body"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type positionsResponse struct {
	Positions []positionDTO  `json:"positions"`
	Errors    []bodyErrorDTO `json:"errors"`
}

// Positions fetches every body of q with a single GET /v1/positions call.
func (c *Client) Positions(ctx context.Context, q ephemeris.Query) (ephemeris.Batch, ephemeris.RateLimitStatus, error) {
	ctx, span := c.tracer.Start(ctx, "ephemeris.Positions",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("ephemeris.frame", string(q.Frame)),
			attribute.Int("ephemeris.bodies", len(q.Bodies)),
		))
	defer span.End()

	batch, rl, err := c.positions(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return ephemeris.Batch{}, rl, ephemeris.NewError(ephemeris.RequestBody, err)
	}

	return batch, rl, nil
}

func (c *Client) positions(ctx context.Context, q ephemeris.Query) (ephemeris.Batch, ephemeris.RateLimitStatus, error) {
	ids := make([]string, 0, len(q.Bodies))
	for _, b := range q.Bodies {
		ids = append(ids, strconv.Itoa(int(b)))
	}
	params := url.Values{}
	params.Set("at", q.At.UTC().Format(time.RFC3339Nano))
	params.Set("frame", string(q.Frame))
	params.Set("bodies", strings.Join(ids, ","))

	endpoint := c.baseURL.JoinPath("v1", "positions")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return ephemeris.Batch{}, ephemeris.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Api-Key", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ephemeris.Batch{}, ephemeris.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return ephemeris.Batch{}, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return ephemeris.Batch{}, rl, fmt.Errorf("could not read response body: %w", err)
	}
	msg := strings.TrimSpace(string(b))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ephemeris.Batch{}, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", msg)
	case resp.StatusCode == http.StatusNotFound:
		return ephemeris.Batch{}, rl, serrors.With(serrors.ErrNotFound, "positions not found: %s", msg)
	case resp.StatusCode == http.StatusServiceUnavailable:
		return ephemeris.Batch{}, rl, serrors.With(serrors.ErrUnavailable, "ephemeris unavailable: %s", msg)
	case resp.StatusCode == http.StatusBadRequest:
		return ephemeris.Batch{}, rl, serrors.With(serrors.ErrBadRequest, "invalid query: %s", msg)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return ephemeris.Batch{}, rl, fmt.Errorf("positions request failed with %d: %s", resp.StatusCode, msg)
	}

	var pr positionsResponse
	if err := json.Unmarshal(b, &pr); err != nil {
		return ephemeris.Batch{}, rl, fmt.Errorf("could not decode response: %w", err)
	}

	return toBatch(q.Bodies, pr), rl, nil
}

// toBatch converts the response, making sure every requested body ends up
// either placed or failed exactly once.
func toBatch(requested []ephemeris.Body, pr positionsResponse) ephemeris.Batch {
	wanted := make(map[ephemeris.Body]bool, len(requested))
	for _, b := range requested {
		wanted[b] = true
	}

	var out ephemeris.Batch
	for _, e := range pr.Errors {
		body := ephemeris.Body(e.Body)
		if !wanted[body] {
			continue
		}
		delete(wanted, body)
		out.Failures = append(out.Failures, ephemeris.Failure{Body: body, Err: ephemeris.NewError(body, bodyError(e))})
	}
	for _, p := range pr.Positions {
		body := ephemeris.Body(p.Body)
		if !wanted[body] {
			continue
		}
		delete(wanted, body)
		name := p.Name
		if name == "" {
			name = body.String()
		}
		out.Positions = append(out.Positions, ephemeris.Position{
			Body:           body,
			Name:           name,
			Longitude:      p.Longitude,
			Latitude:       p.Latitude,
			Distance:       p.Distance,
			LongitudeSpeed: p.LongitudeSpeed,
			LatitudeSpeed:  p.LatitudeSpeed,
			DistanceSpeed:  p.DistanceSpeed,
		})
	}
	// keep request order for bodies the upstream silently dropped
	for _, b := range requested {
		if wanted[b] {
			delete(wanted, b)
			out.Failures = append(out.Failures, ephemeris.Failure{
				Body: b,
				Err:  ephemeris.NewError(b, serrors.With(serrors.ErrInternal, "missing from response")),
			})
		}
	}

	return out
}

func bodyError(e bodyErrorDTO) error {
	switch e.Code {
	case codeUnsupportedBody:
		return serrors.With(serrors.ErrNotFound, "%s", e.Message)
	case codeDataUnavailable:
		return serrors.With(serrors.ErrUnavailable, "%s", e.Message)
	default:
		return serrors.With(serrors.ErrInternal, "%s: %s", e.Code, e.Message)
	}
}

// Close is a no-op; the HTTP client is owned by the caller.
func (c *Client) Close() error { return nil }

var _ ephemeris.Client = (*Client)(nil)

// New constructs a Client for the service rooted at baseURL.
func New(httpClient *http.Client, baseURL string, token string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "base URL %q must be absolute", baseURL)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    u,
		token:      token,
		tracer:     otel.Tracer(tracerName),
	}, nil
}
