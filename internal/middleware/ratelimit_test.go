package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rghazali/fitfinder/internal/config"
)

func rateCtx(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/videos?query=squat", nil)
	req.RemoteAddr = "203.0.113.9:4567"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/videos")
	return c
}

func TestRateKeyPerIP(t *testing.T) {
	key := RateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}, rateCtx(t))
	if key != "rl:ip:203.0.113.9" {
		t.Fatalf("ip key: got %q", key)
	}
}

func TestRateKeyPerIPAndRoute(t *testing.T) {
	key := RateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}, rateCtx(t))
	if !strings.HasPrefix(key, "rl:ip:203.0.113.9:route:GET /v1/videos") {
		t.Fatalf("ip_route key: got %q", key)
	}
}

func TestTokenBucketDisabledPassesThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)
	c := rateCtx(t)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("disabled limiter must not block requests")
	}
}
