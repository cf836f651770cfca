package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rghazali/fitfinder/internal/config"
)

// catalogLimit is the provider's practical maximum page size; one request at
// this limit returns the whole catalog.
const catalogLimit = 1400

// Record is one raw catalog entry as returned by ExerciseDB.
type Record struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	GifURL           string   `json:"gifUrl"`
}

// Client fetches the bulk exercise catalog from RapidAPI, caching the raw
// payload in Redis so repeated searches do not burn quota.  A nil Redis
// client disables caching; every fetch then goes to the provider.
type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	http    *http.Client
	rdb     *redis.Client
	cache   config.CatalogCacheConfig
}

// NewClient builds a catalog client from application configuration.  rdb may
// be nil.
func NewClient(cfg config.Config, cache config.CatalogCacheConfig, rdb *redis.Client) *Client {
	return &Client{
		baseURL: "https://" + cfg.RapidAPIHost,
		apiKey:  cfg.RapidAPIKey,
		apiHost: cfg.RapidAPIHost,
		http:    &http.Client{Timeout: 15 * time.Second},
		rdb:     rdb,
		cache:   cache,
	}
}

// NewClientForBase is NewClient with an explicit base URL, used by tests to
// point the client at a stub server.
func NewClientForBase(baseURL, apiKey, apiHost string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		apiHost: apiHost,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchAll returns the full catalog, from cache when possible.  Transport
// failures and non-200 responses are returned as errors; the search layer
// decides how soft to fail.
func (c *Client) FetchAll(ctx context.Context) ([]Record, error) {
	if body, ok := c.cacheGet(ctx); ok {
		var cached []Record
		if err := json.Unmarshal(body, &cached); err == nil {
			return cached, nil
		}
		// Corrupt cache entry; fall through to a fresh fetch.
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/exercises?limit=%d", c.baseURL, catalogLimit), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exercise catalog: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("exercise catalog: decode: %w", err)
	}

	c.cacheSet(ctx, body)
	return records, nil
}

func (c *Client) cacheKey() string { return c.cache.Prefix + ":catalog" }

func (c *Client) cacheGet(ctx context.Context) ([]byte, bool) {
	if c.rdb == nil || !c.cache.Enabled {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, c.cacheKey()).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *Client) cacheSet(ctx context.Context, body []byte) {
	if c.rdb == nil || !c.cache.Enabled {
		return
	}
	ttl := c.cache.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if err := c.rdb.Set(ctx, c.cacheKey(), body, ttl).Err(); err != nil {
		log.Printf("exercise catalog: cache store failed: %v", err)
	}
}
