package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/marketping/marketping/internal/metrics"
	domain "github.com/marketping/marketping/pkg/types"
)

const defaultBaseURL = "https://stats.cc/api/siege/marketplace/v1"

// HTTPClient implements Client against the marketplace REST API.
type HTTPClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithBaseURL overrides the default API endpoint.
func WithBaseURL(u string) Option {
	return func(c *HTTPClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every outgoing call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *HTTPClient) {
		c.rateLimiter = r
	}
}

// NewHTTPClient creates a new marketplace API client.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type itemPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Weapon   string `json:"weapon,omitempty"`
	Event    string `json:"event,omitempty"`
	Category string `json:"category,omitempty"`
	Price    *int64 `json:"price"`
}

type searchPayload struct {
	Items []itemPayload `json:"items"`
	Total int           `json:"total"`
}

// Item implements Client.Item.
func (c *HTTPClient) Item(ctx context.Context, id string) (*domain.MarketItem, error) {
	body, err := c.get(ctx, c.baseURL+"/items/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var p itemPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("parsing item response: %w", err)
	}

	return itemFromPayload(p), nil
}

// Search implements Client.Search.
func (c *HTTPClient) Search(
	ctx context.Context,
	req SearchRequest,
) ([]domain.MarketItem, error) {
	body, err := c.get(ctx, c.buildSearchURL(req))
	if err != nil {
		return nil, err
	}

	var p searchPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	items := make([]domain.MarketItem, 0, len(p.Items))
	for _, ip := range p.Items {
		items = append(items, *itemFromPayload(ip))
	}
	return items, nil
}

// get performs a rate-limited GET and maps HTTP failures onto the error
// taxonomy: 404 -> ErrItemNotFound, 429 -> ErrRateLimited, everything else
// non-200 (and transport errors) -> ErrUnavailable.
func (c *HTTPClient) get(ctx context.Context, u string) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.MarketDailyLimitHits.Inc()
				return nil, err
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.MarketAPICallsTotal.Inc()
		metrics.MarketDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrItemNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w (status 429)", ErrRateLimited)
	default:
		return nil, fmt.Errorf("%w (status %d)", ErrUnavailable, resp.StatusCode)
	}
}

func (c *HTTPClient) buildSearchURL(req SearchRequest) string {
	params := url.Values{}

	if req.Name != "" {
		params.Set("name", req.Name)
	}
	if req.Weapon != "" {
		params.Set("weapon", req.Weapon)
	}
	if req.Event != "" {
		params.Set("event", req.Event)
	}
	if req.Category != "" {
		params.Set("type", req.Category)
	}
	if req.MinPrice != nil {
		params.Set("min_price", strconv.FormatInt(*req.MinPrice, 10))
	}
	if req.MaxPrice != nil {
		params.Set("max_price", strconv.FormatInt(*req.MaxPrice, 10))
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	params.Set("limit", strconv.Itoa(limit))

	return c.baseURL + "/items?" + params.Encode()
}

func itemFromPayload(p itemPayload) *domain.MarketItem {
	return &domain.MarketItem{
		ID:       p.ID,
		Name:     p.Name,
		Weapon:   p.Weapon,
		Event:    p.Event,
		Category: p.Category,
		Price:    p.Price,
	}
}
