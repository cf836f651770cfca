package config

import "time"

// CatalogCacheConfig controls caching of the bulk exercise catalog in Redis.
// The catalog is fetched from RapidAPI in one large page, so a cache hit
// saves a slow, quota-metered external call.  When Enabled is false or no
// Redis client is available, every search fetches the catalog directly.
type CatalogCacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string // key namespace, e.g. "exercisedb"
}

// LoadCatalogCacheConfig reads environment variables to build a
// CatalogCacheConfig.  Defaults are used when variables are not set.
func LoadCatalogCacheConfig() CatalogCacheConfig {
	return CatalogCacheConfig{
		Enabled: envBool("CATALOG_CACHE_ENABLED", true),
		TTL:     envDur("CATALOG_CACHE_TTL", 15*time.Minute),
		Prefix:  envStr("CATALOG_CACHE_PREFIX", "exercisedb"),
	}
}
