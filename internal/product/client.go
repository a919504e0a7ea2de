package product

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopsearch/internal/domain"
)

const (
	recommendationsPath = "/recommendations"
	suggestionsPath     = "/suggestions"
	healthPath          = "/health"
)

// Client talks to the recommendation API. It holds no per-query state and is
// safe for concurrent use.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *zap.Logger
}

func NewClient(baseURL string, doer HTTPDoer, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		logger:  logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchRecommendations returns the products recommended for query. Every
// failure is logged and reported as an empty list; it never returns nil.
func (c *Client) FetchRecommendations(ctx context.Context, query string) []domain.Product {
	logger := c.logger.With(
		zap.String("traceId", uuid.New().String()),
		zap.String("query", query),
	)

	if strings.TrimSpace(query) == "" {
		logger.Debug("skipping recommendations for blank query")
		return []domain.Product{}
	}

	reqURL := buildURL(c.baseURL, recommendationsPath, url.Values{"query": {query}})
	logger.Debug("fetching recommendations", zap.String("url", reqURL))

	products, err := getJSON[[]domain.Product](ctx, c.http, reqURL)
	if err != nil {
		logger.Error("fetching recommendations failed", zap.Error(err))
		return []domain.Product{}
	}
	if products == nil {
		products = []domain.Product{}
	}

	logger.Debug("recommendations received", zap.Int("count", len(products)))
	return products
}

// FetchSuggestions returns keyword suggestions for query. Unlike
// FetchRecommendations it reports failures so callers can keep what they
// already show.
func (c *Client) FetchSuggestions(ctx context.Context, query string) ([]string, error) {
	logger := c.logger.With(
		zap.String("traceId", uuid.New().String()),
		zap.String("query", query),
	)

	reqURL := buildURL(c.baseURL, suggestionsPath, url.Values{"query": {query}})
	logger.Debug("fetching suggestions", zap.String("url", reqURL))

	suggestions, err := getJSON[[]string](ctx, c.http, reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetching suggestions: %w", err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	logger.Debug("suggestions received", zap.Int("count", len(suggestions)))
	return suggestions, nil
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health checks that the API answers /health with status "ok".
func (c *Client) Health(ctx context.Context) error {
	reqURL := buildURL(c.baseURL, healthPath, nil)

	resp, err := getJSON[healthResponse](ctx, c.http, reqURL)
	if err != nil {
		return fmt.Errorf("checking api health: %w", err)
	}
	if resp.Status != "ok" {
		return fmt.Errorf("checking api health: unexpected status %q", resp.Status)
	}
	return nil
}
