package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"career-predictor/internal/predictions"
	"career-predictor/internal/services/health"
	"career-predictor/internal/shared/config"
	"career-predictor/internal/shared/server/middleware"
)

func testDeps(t *testing.T) RouterDeps {
	t.Helper()
	cfg := config.Default()
	cfg.Env = "test"
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 2
	schema, err := predictions.NewSchemaValidator()
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	svc := predictions.NewService(predictions.NewMemoryRepo(), predictions.NewMemoryCache(time.Minute, 10, nil), nil, schema)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return RouterDeps{
		Config:            cfg,
		PredictionHandler: predictions.NewHandler(svc, cfg.MaxUploadBytes),
		Health:            health.NewService(),
		Limiter:           middleware.NewRateLimiter(func() time.Time { return now }),
	}
}

func TestHealthEndpoint(t *testing.T) {
	deps := testDeps(t)
	deps.Health.Register("database", func(ctx context.Context) error { return nil })
	r := NewRouter(deps)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var report health.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !report.OK || report.Checks["database"] != "ok" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestHealthEndpointDegraded(t *testing.T) {
	deps := testDeps(t)
	deps.Health.Register("cache", func(ctx context.Context) error { return errors.New("dial tcp: refused") })
	r := NewRouter(deps)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(testDeps(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "prediction_started_total") {
		t.Fatalf("expected prediction counters in metrics output")
	}
}

func TestUnknownRouteReturnsStructuredError(t *testing.T) {
	r := NewRouter(testDeps(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"not_found"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAnalyzeIsRateLimited(t *testing.T) {
	r := NewRouter(testDeps(t))
	body := `{"resumeText":"Skills: Go, Docker","targetRole":"DevOps Engineer","timeGoal":30}`

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Id", "router-test")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence: %v", codes)
	}

	rec := httptest.NewRecorder()
	healthReq := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	healthReq.Header.Set("X-Client-Id", "router-test")
	r.ServeHTTP(rec, healthReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("health should be exempt from rate limiting, got %d", rec.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
