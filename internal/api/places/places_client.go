package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/FACorreiaa/go-mood-planner/internal/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultLimit = 10

// Client issues business searches against a Yelp-style places API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Search returns the raw business records matching term near the given
// coordinates, sorted by the API's best-match order. A response without a
// businesses field yields an empty list, not an error.
func (c *Client) Search(ctx context.Context, term string, latitude, longitude float64, limit int) ([]types.Business, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "Search", trace.WithAttributes(
		attribute.String("search.term", term),
		attribute.Float64("search.latitude", latitude),
		attribute.Float64("search.longitude", longitude),
	))
	defer span.End()

	if limit <= 0 {
		limit = defaultLimit
	}

	params := url.Values{}
	params.Set("term", term)
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort_by", "best_match")

	searchURL := c.baseURL + "/businesses/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to build places search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Places search request failed")
		return nil, fmt.Errorf("failed to call places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("places API error (status %d): %s", resp.StatusCode, string(body))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Places search returned non-success status")
		return nil, err
	}

	var result struct {
		Businesses []types.Business `json:"businesses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to parse places response: %w", err)
	}

	c.logger.DebugContext(ctx, "Places search completed",
		slog.String("term", term),
		slog.Int("results", len(result.Businesses)),
	)
	span.SetAttributes(attribute.Int("search.results", len(result.Businesses)))
	span.SetStatus(codes.Ok, "Places search completed")

	if result.Businesses == nil {
		return []types.Business{}, nil
	}
	return result.Businesses, nil
}
