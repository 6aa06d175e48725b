package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/monitoring"

	"github.com/google/uuid"
)

// Endpoint names used for logs and metrics
const (
	EndpointFetchFoods       = "fetch_foods"
	EndpointPostLineFoods    = "post_line_foods"
	EndpointReplaceLineFoods = "replace_line_foods"
)

const maxErrorBody = 4 << 10

// Client handles requests to the storefront API
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	monitor    *monitoring.Monitor
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request logs
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMonitor records request metrics on m
func WithMonitor(m *monitoring.Monitor) Option {
	return func(c *Client) { c.monitor = m }
}

// NewClient creates a new API client rooted at baseURL
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchFoods retrieves the foods of a restaurant
func (c *Client) FetchFoods(ctx context.Context, restaurantID string) ([]models.Food, error) {
	path := "/restaurants/" + url.PathEscape(restaurantID) + "/foods"

	resp, err := c.do(ctx, EndpointFetchFoods, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, http.MethodGet, path)
	}

	var list models.FoodList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode foods of restaurant %s: %w", restaurantID, err)
	}
	for i := range list.Foods {
		if err := models.ValidateFood(&list.Foods[i]); err != nil {
			return nil, fmt.Errorf("restaurant %s returned an invalid food: %w", restaurantID, err)
		}
	}
	if list.Foods == nil {
		list.Foods = []models.Food{}
	}

	return list.Foods, nil
}

// PostLineFoods creates an order line. A 406 answer is returned as *ConflictError.
func (c *Client) PostLineFoods(ctx context.Context, req models.LineFoodRequest) error {
	const path = "/line_foods"

	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := c.do(ctx, EndpointPostLineFoods, http.MethodPost, path, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotAcceptable {
		conflict := &ConflictError{}
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&conflict.ConflictPayload); err != nil {
			conflict.ConflictPayload = models.ConflictPayload{}
			conflict.DecodeErr = err
			c.logger.Warn("conflict payload unreadable", "endpoint", EndpointPostLineFoods, "error", err)
		}
		c.monitor.RecordConflict()
		return conflict
	}
	if !success(resp.StatusCode) {
		return statusError(resp, http.MethodPost, path)
	}
	return nil
}

// ReplaceLineFoods discards the open order and starts a new one with req
func (c *Client) ReplaceLineFoods(ctx context.Context, req models.LineFoodRequest) error {
	const path = "/line_foods/replace"

	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := c.do(ctx, EndpointReplaceLineFoods, http.MethodPut, path, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return statusError(resp, http.MethodPut, path)
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s body: %w", endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.monitor.ObserveRequest(endpoint, 0, elapsed)
		c.logger.Error("api request failed",
			"endpoint", endpoint, "method", method, "path", path,
			"request_id", requestID, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	c.monitor.ObserveRequest(endpoint, resp.StatusCode, elapsed)
	c.logger.Debug("api request",
		"endpoint", endpoint, "method", method, "path", path,
		"request_id", requestID, "status", resp.StatusCode, "duration", elapsed)
	return resp, nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}

func statusError(resp *http.Response, method, path string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
