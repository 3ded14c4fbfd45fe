package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testPolicy(rate float64, burst int) RatePolicy {
	return RatePolicy{
		Analyze:       Budget{Rate: rate, Burst: burst},
		AnalyzeRoutes: []string{"/api/v1/analyze"},
		ExemptRoutes:  []string{"/api/v1/health"},
	}
}

func newLimitedRouter(policy RatePolicy, limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ClientID(), RateLimit(policy, limiter))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.POST("/api/v1/analyze", ok)
	r.GET("/api/v1/predictions/:id", ok)
	r.GET("/api/v1/health", ok)
	return r
}

func sendLimited(r *gin.Engine, method, path, clientID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if clientID != "" {
		req.Header.Set("X-Client-Id", clientID)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRatePolicyTierFor(t *testing.T) {
	p := testPolicy(1, 1)
	cases := []struct {
		method, path string
		want         Tier
	}{
		{http.MethodPost, "/api/v1/analyze", TierAnalyze},
		{http.MethodGet, "/api/v1/predictions/:id", TierStandard},
		{http.MethodGet, "", TierStandard},
		{http.MethodGet, "/api/v1/health", TierExempt},
		{http.MethodOptions, "/api/v1/analyze", TierExempt},
	}
	for _, tc := range cases {
		if got := p.TierFor(tc.method, tc.path); got != tc.want {
			t.Fatalf("TierFor(%s %q) = %s, want %s", tc.method, tc.path, got, tc.want)
		}
	}

	std := p.BudgetFor(TierStandard)
	if std.Rate != 5 || std.Burst != 5 {
		t.Fatalf("unexpected standard budget %+v", std)
	}
	if !p.BudgetFor(TierExempt).unlimited() {
		t.Fatalf("exempt tier should be unlimited")
	}
}

func TestRateLimitAnalyzeStricterThanStandard(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(testPolicy(1, 2), NewRateLimiter(func() time.Time { return now }))

	for i := 0; i < 3; i++ {
		if resp := sendLimited(r, http.MethodGet, "/api/v1/predictions/pred-1", "test-client"); resp.Code != http.StatusOK {
			t.Fatalf("history request %d expected 200, got %d", i+1, resp.Code)
		}
	}
	for i := 0; i < 2; i++ {
		if resp := sendLimited(r, http.MethodPost, "/api/v1/analyze", "test-client"); resp.Code != http.StatusOK {
			t.Fatalf("analyze request %d expected 200, got %d", i+1, resp.Code)
		}
	}
	if resp := sendLimited(r, http.MethodPost, "/api/v1/analyze", "test-client"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("analyze request 3 expected 429, got %d", resp.Code)
	}
	if resp := sendLimited(r, http.MethodGet, "/api/v1/health", "test-client"); resp.Code != http.StatusOK {
		t.Fatalf("health should be exempt, got %d", resp.Code)
	}
}

func TestRateLimitBucketsArePerClient(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(testPolicy(1, 1), NewRateLimiter(func() time.Time { return now }))

	if code := sendLimited(r, http.MethodPost, "/api/v1/analyze", "client-a").Code; code != http.StatusOK {
		t.Fatalf("client-a first request expected 200, got %d", code)
	}
	if code := sendLimited(r, http.MethodPost, "/api/v1/analyze", "client-a").Code; code != http.StatusTooManyRequests {
		t.Fatalf("client-a second request expected 429, got %d", code)
	}
	if code := sendLimited(r, http.MethodPost, "/api/v1/analyze", "client-b").Code; code != http.StatusOK {
		t.Fatalf("client-b expected its own bucket, got %d", code)
	}
	if code := sendLimited(r, http.MethodPost, "/api/v1/analyze", "").Code; code != http.StatusOK {
		t.Fatalf("anonymous caller expected IP bucket, got %d", code)
	}

	now = now.Add(time.Second)
	if code := sendLimited(r, http.MethodPost, "/api/v1/analyze", "client-a").Code; code != http.StatusOK {
		t.Fatalf("client-a expected refill after 1s, got %d", code)
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(testPolicy(0.5, 1), NewRateLimiter(func() time.Time { return now }))

	if code := sendLimited(r, http.MethodPost, "/api/v1/analyze", "").Code; code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", code)
	}
	resp := sendLimited(r, http.MethodPost, "/api/v1/analyze", "")
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if got := resp.Header().Get("Retry-After"); got != "2" {
		t.Fatalf("expected Retry-After 2, got %q", got)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["success"] != false || payload["error"] != "rate_limited" || payload["tier"] != "analyze" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["retryAfterMs"] != float64(2000) {
		t.Fatalf("expected retryAfterMs 2000, got %v", payload["retryAfterMs"])
	}
}

func TestRateLimiterSweepsRefilledBuckets(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	budget := Budget{Rate: 1, Burst: 2}

	limiter.Take("client:a", TierAnalyze, budget)
	limiter.Take("client:b", TierStandard, budget)
	if limiter.Len() != 2 {
		t.Fatalf("expected 2 buckets, got %d", limiter.Len())
	}

	now = now.Add(2 * sweepInterval)
	limiter.Take("client:c", TierAnalyze, budget)
	if limiter.Len() != 1 {
		t.Fatalf("expected idle buckets swept, got %d", limiter.Len())
	}
}
