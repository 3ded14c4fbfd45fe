package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

type counter struct {
	name  string
	help  string
	value atomic.Uint64
}

// labeledCounter keeps one series per label-value tuple.
type labeledCounter struct {
	name   string
	help   string
	labels []string

	mu     sync.Mutex
	series map[string]uint64
}

var (
	predictionStarted   = &counter{name: "prediction_started_total", help: "Total predictions started"}
	predictionFailed    = &counter{name: "prediction_failed_total", help: "Total predictions failed"}
	roleFallback        = &counter{name: "prediction_role_fallback_total", help: "Predictions whose target role was not in the catalog"}
	extractions         = &counter{name: "resume_extraction_total", help: "Total resume texts parsed"}
	lowConfidence       = &counter{name: "resume_low_confidence_total", help: "Parsed resumes below the confidence threshold"}
	cacheHits           = &counter{name: "prediction_cache_hit_total", help: "Prediction cache hits"}
	cacheMisses         = &counter{name: "prediction_cache_miss_total", help: "Prediction cache misses"}
	persistFailed       = &counter{name: "prediction_persist_failed_total", help: "Predictions that could not be stored"}
	predictionCompleted = &labeledCounter{
		name:   "prediction_completed_total",
		help:   "Total predictions completed",
		labels: []string{"role", "timeframe"},
		series: map[string]uint64{},
	}

	predictionDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})

	counters = []*counter{
		predictionStarted, predictionFailed, roleFallback, extractions,
		lowConfidence, cacheHits, cacheMisses, persistFailed,
	}
)

func IncPredictionStarted() { predictionStarted.value.Add(1) }
func IncPredictionFailed() { predictionFailed.value.Add(1) }
func IncRoleFallback() { roleFallback.value.Add(1) }
func IncExtraction() { extractions.value.Add(1) }
func IncLowConfidence() { lowConfidence.value.Add(1) }
func IncPersistFailed() { persistFailed.value.Add(1) }

// IncPredictionCompleted counts a finished prediction for role and horizon.
func IncPredictionCompleted(role string, timeframeDays int) {
	predictionCompleted.inc(role, strconv.Itoa(timeframeDays))
}

// ObserveCache counts a cache lookup as a hit or a miss.
func ObserveCache(hit bool) {
	if hit {
		cacheHits.value.Add(1)
		return
	}
	cacheMisses.value.Add(1)
}

// ObservePredictionDurationMs records a prediction duration in milliseconds.
func ObservePredictionDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	predictionDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders every metric in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	for _, c := range counters {
		writeHeader(&buf, c.name, c.help, "counter")
		fmt.Fprintf(&buf, "%s %d\n", c.name, c.value.Load())
	}
	predictionCompleted.write(&buf)
	writeHistogram(&buf, "prediction_duration_ms", "Prediction duration in milliseconds", predictionDuration.Snapshot())
	return buf.String()
}

func (l *labeledCounter) inc(values ...string) {
	key := strings.Join(values, "\x00")
	l.mu.Lock()
	l.series[key]++
	l.mu.Unlock()
}

func (l *labeledCounter) write(buf *bytes.Buffer) {
	l.mu.Lock()
	keys := make([]string, 0, len(l.series))
	for k := range l.series {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]uint64, len(keys))
	for i, k := range keys {
		values[i] = l.series[k]
	}
	l.mu.Unlock()

	writeHeader(buf, l.name, l.help, "counter")
	for i, k := range keys {
		parts := strings.Split(k, "\x00")
		pairs := make([]string, len(l.labels))
		for j, label := range l.labels {
			pairs[j] = fmt.Sprintf("%s=%q", label, parts[j])
		}
		fmt.Fprintf(buf, "%s{%s} %d\n", l.name, strings.Join(pairs, ","), values[i])
	}
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe adds value to the first bucket that holds it; Render accumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeHeader(buf *bytes.Buffer, name, help, kind string) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s %s\n", name, kind)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	writeHeader(buf, name, help, "histogram")
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
