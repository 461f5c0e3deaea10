// Package hebcalapi is an HTTP client for the Hebcal Jewish calendar REST
// API. It satisfies the service layer's event source interface; failures
// surface as errors and the caller decides whether to degrade.
package hebcalapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/luachapp/luach-api/internal/service/luach"
)

// Client errors.
var (
	// ErrUnexpectedStatus is returned when the API answers with a non-200
	// status code after retries are exhausted.
	ErrUnexpectedStatus = errors.New("hebcal api returned unexpected status")

	// ErrMalformedResponse is returned when the response body cannot be
	// decoded.
	ErrMalformedResponse = errors.New("hebcal api returned malformed response")
)

const (
	defaultBaseURL = "https://www.hebcal.com/hebcal"
	defaultTimeout = 10 * time.Second
	maxRetries     = 2
	retryDelay     = 500 * time.Millisecond
)

// Config holds the client's tunable settings. Zero values fall back to
// the defaults above.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Israel selects the Israeli holiday scheme (&i=on) instead of the
	// diaspora one.
	Israel bool
}

// Client queries the Hebcal REST API for holiday, fast, and Omer events.
type Client struct {
	httpClient *http.Client
	baseURL    string
	israel     bool
	logger     *slog.Logger
}

// NewClient builds a Hebcal API client.
//
// ALLOW-PANIC: a nil logger is a programmer error at wire-up time.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		panic("hebcalapi.NewClient: logger cannot be nil")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		israel:     cfg.Israel,
		logger:     logger.With("component", "hebcalapi"),
	}
}

// Wire shape of the Hebcal JSON response. Only the fields the service
// layer consumes are decoded.
type response struct {
	Items []responseItem `json:"items"`
}

type responseItem struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// Events implements luach.EventSource. It requests all holiday, fast, and
// Omer events in [start, end] and translates them into service-layer
// events. Transient failures (5xx, network errors) are retried a small
// fixed number of times.
func (c *Client) Events(ctx context.Context, start, end time.Time) ([]luach.Event, error) {
	reqURL := c.buildURL(start, end)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay * time.Duration(attempt)):
			}
			c.logger.DebugContext(ctx, "retrying hebcal request",
				"attempt", attempt,
				"last_error", lastErr)
		}

		events, retryable, err := c.fetch(ctx, reqURL)
		if err == nil {
			return events, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, reqURL string) (events []luach.Event, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building hebcal request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("calling hebcal api: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused on retry.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode >= 500,
			fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	events = make([]luach.Event, 0, len(body.Items))
	for _, item := range body.Items {
		date, err := parseItemDate(item.Date)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping hebcal item with unparseable date",
				"title", item.Title,
				"date", item.Date)
			continue
		}
		events = append(events, luach.Event{
			Date:     date,
			Title:    item.Title,
			Category: item.Category,
		})
	}
	return events, false, nil
}

// buildURL assembles the query for the v1 JSON endpoint: major holidays,
// minor fasts, and the Omer count, bounded by the civil date range.
func (c *Client) buildURL(start, end time.Time) string {
	q := url.Values{}
	q.Set("v", "1")
	q.Set("cfg", "json")
	q.Set("maj", "on")
	q.Set("min", "on")
	q.Set("mf", "on")
	q.Set("o", "on")
	q.Set("start", start.Format("2006-01-02"))
	q.Set("end", end.Format("2006-01-02"))
	if c.israel {
		q.Set("i", "on")
	}
	return c.baseURL + "?" + q.Encode()
}

// parseItemDate accepts both the date-only and the timestamped forms the
// API emits depending on the event kind.
func parseItemDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
