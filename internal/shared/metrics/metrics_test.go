package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRenderIncludesCountersAndHistogram(t *testing.T) {
	IncPredictionStarted()
	IncRoleFallback()
	ObserveCache(true)
	ObservePredictionDurationMs(3)
	ObservePredictionDurationMs(-1)

	out := Render()
	for _, want := range []string{
		"# TYPE prediction_started_total counter",
		"# TYPE prediction_role_fallback_total counter",
		"# TYPE prediction_completed_total counter",
		"# TYPE prediction_duration_ms histogram",
		`prediction_duration_ms_bucket{le="5"}`,
		`prediction_duration_ms_bucket{le="+Inf"}`,
		"prediction_cache_hit_total",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestLabeledCounterSeries(t *testing.T) {
	IncPredictionCompleted("QA Engineer", 30)
	IncPredictionCompleted("QA Engineer", 30)
	IncPredictionCompleted("Data Scientist", 90)

	out := Render()
	if !strings.Contains(out, `prediction_completed_total{role="QA Engineer",timeframe="30"} 2`) {
		t.Fatalf("missing QA series:\n%s", out)
	}
	if !strings.Contains(out, `prediction_completed_total{role="Data Scientist",timeframe="90"} 1`) {
		t.Fatalf("missing data scientist series:\n%s", out)
	}
	ds := strings.Index(out, `role="Data Scientist"`)
	qa := strings.Index(out, `role="QA Engineer"`)
	if ds > qa {
		t.Fatalf("expected series sorted by label values")
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{1, 10})
	h.Observe(0.5)
	h.Observe(5)
	h.Observe(50)

	snap := h.Snapshot()
	if snap.count != 3 || snap.sum != 55.5 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "h", "test", snap)
	out := buf.String()
	for _, want := range []string{`h_bucket{le="1"} 1`, `h_bucket{le="10"} 2`, `h_bucket{le="+Inf"} 3`, "h_sum 55.5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestHandlerServesTextFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
}
