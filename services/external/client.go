package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/utils"
)

// HTTPGateway talks to the travel-data provider over HTTP with a bearer
// token. Responses of the list endpoints are cached in Redis for a short TTL
// when a cache client is configured; cache failures fall through to a live
// fetch and are never fatal.
type HTTPGateway struct {
	BaseURL     string
	Token       string
	HTTPClient  *http.Client
	CacheClient *redis.Client
	CacheTTL    time.Duration
	Logger      *zap.Logger
}

// NewHTTPGateway creates a gateway for the given provider base URL.
func NewHTTPGateway(baseURL, token string, timeout time.Duration, cacheClient *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *HTTPGateway {
	return &HTTPGateway{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Token:       token,
		HTTPClient:  &http.Client{Timeout: timeout},
		CacheClient: cacheClient,
		CacheTTL:    cacheTTL,
		Logger:      logger,
	}
}

// FetchList GETs a list endpoint and decodes its records. The provider wraps
// list payloads inconsistently: a bare array, {"data": [...]}, or
// {"items": [...]} are all accepted.
func (g *HTTPGateway) FetchList(ctx context.Context, endpoint string) ([]models.RawRecord, error) {
	if records, ok := g.cachedList(ctx, endpoint); ok {
		return records, nil
	}

	body, err := g.get(ctx, endpoint)
	if err != nil {
		utils.UpstreamErrorsTotal.WithLabelValues(endpoint).Inc()
		return nil, err
	}

	records, err := decodeList(body)
	if err != nil {
		utils.UpstreamErrorsTotal.WithLabelValues(endpoint).Inc()
		return nil, fmt.Errorf("external API %s: %w", endpoint, err)
	}

	g.storeList(ctx, endpoint, records)
	return records, nil
}

// FetchCities returns the upstream city registry.
func (g *HTTPGateway) FetchCities(ctx context.Context) ([]models.City, error) {
	records, err := g.FetchList(ctx, EndpointCities)
	if err != nil {
		return nil, err
	}
	cities := make([]models.City, 0, len(records))
	for _, record := range records {
		id, ok := record["id"].(float64)
		if !ok {
			continue
		}
		name, _ := record["name"].(string)
		if strings.TrimSpace(name) == "" {
			continue
		}
		cities = append(cities, models.City{ID: int(id), Name: strings.TrimSpace(name)})
	}
	return cities, nil
}

// SubmitBudget POSTs a computed budget payload to the upstream /budgets
// endpoint.
func (g *HTTPGateway) SubmitBudget(ctx context.Context, payload map[string]any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal budget payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/budgets", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create budget request: %w", err)
	}
	g.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		utils.UpstreamErrorsTotal.WithLabelValues("budgets").Inc()
		return fmt.Errorf("submit budget: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		utils.UpstreamErrorsTotal.WithLabelValues("budgets").Inc()
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("submit budget: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (g *HTTPGateway) get(ctx context.Context, endpoint string) ([]byte, error) {
	url := g.BaseURL + "/" + strings.Trim(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", endpoint, err)
	}
	g.setHeaders(req)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external API %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("external API %s: status %d", endpoint, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (g *HTTPGateway) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}
}

// decodeList accepts the provider's three list payload shapes.
func decodeList(body []byte) ([]models.RawRecord, error) {
	var direct []models.RawRecord
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected response format")
	}
	for _, key := range []string{"data", "items"} {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		var records []models.RawRecord
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
	}
	return nil, fmt.Errorf("unexpected response format")
}

func (g *HTTPGateway) cacheKey(endpoint string) string {
	return "external:" + endpoint
}

func (g *HTTPGateway) cachedList(ctx context.Context, endpoint string) ([]models.RawRecord, bool) {
	if g.CacheClient == nil {
		return nil, false
	}
	cached, err := g.CacheClient.Get(ctx, g.cacheKey(endpoint)).Result()
	if err != nil || cached == "" {
		return nil, false
	}
	var records []models.RawRecord
	if err := json.Unmarshal([]byte(cached), &records); err != nil {
		return nil, false
	}
	utils.CacheHitsTotal.Inc()
	return records, true
}

func (g *HTTPGateway) storeList(ctx context.Context, endpoint string, records []models.RawRecord) {
	if g.CacheClient == nil {
		return
	}
	data, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := g.CacheClient.Set(ctx, g.cacheKey(endpoint), data, g.CacheTTL).Err(); err != nil {
		g.Logger.Debug("failed to cache upstream response", zap.String("endpoint", endpoint), zap.Error(err))
	}
}
