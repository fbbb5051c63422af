package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	exportsTotal       atomic.Uint64
	exportsFailedTotal atomic.Uint64
	scoresTotal        atomic.Uint64
	suggestionsTotal   atomic.Uint64
	suggestionsFailed  atomic.Uint64
	importsTotal       atomic.Uint64
	checkoutSessions   atomic.Uint64

	exportDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000})
)

// IncExport increments the export counter.
func IncExport() { exportsTotal.Add(1) }

// IncExportFailed increments the failed-export counter.
func IncExportFailed() { exportsFailedTotal.Add(1) }

// IncScore increments the ATS score counter.
func IncScore() { scoresTotal.Add(1) }

// IncSuggestion increments the suggestion counter.
func IncSuggestion() { suggestionsTotal.Add(1) }

// IncSuggestionFailed increments the failed-suggestion counter.
func IncSuggestionFailed() { suggestionsFailed.Add(1) }

// IncImport increments the import counter.
func IncImport() { importsTotal.Add(1) }

// IncCheckoutSession increments the checkout-session counter.
func IncCheckoutSession() { checkoutSessions.Add(1) }

// ObserveExportDurationMs records a PDF render duration in milliseconds.
func ObserveExportDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	exportDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_exports_total", "Total resume exports", exportsTotal.Load())
	writeCounter(&buf, "resume_exports_failed_total", "Total failed resume exports", exportsFailedTotal.Load())
	writeCounter(&buf, "ats_scores_total", "Total ATS score computations", scoresTotal.Load())
	writeCounter(&buf, "suggestions_total", "Total suggestion generations", suggestionsTotal.Load())
	writeCounter(&buf, "suggestions_failed_total", "Total failed suggestion generations", suggestionsFailed.Load())
	writeCounter(&buf, "resume_imports_total", "Total resume imports", importsTotal.Load())
	writeCounter(&buf, "checkout_sessions_total", "Total checkout sessions created", checkoutSessions.Load())
	writeHistogram(&buf, "resume_export_duration_ms", "Resume export duration in milliseconds", exportDuration.Snapshot())
	return buf.String()
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

type histogram struct {
	mu      sync.Mutex
	bounds  []float64
	buckets []uint64
	count   uint64
	sum     float64
}

type histogramSnapshot struct {
	bounds  []float64
	buckets []uint64
	count   uint64
	sum     float64
}

func newHistogram(bounds []float64) *histogram {
	sorted := append([]float64(nil), bounds...)
	sort.Float64s(sorted)
	return &histogram{
		bounds:  sorted,
		buckets: make([]uint64, len(sorted)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, bound := range h.bounds {
		if value <= bound {
			h.buckets[i]++
		}
	}
	h.count++
	h.sum += value
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		bounds:  append([]float64(nil), h.bounds...),
		buckets: append([]uint64(nil), h.buckets...),
		count:   h.count,
		sum:     h.sum,
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	for i, bound := range snap.bounds {
		fmt.Fprintf(buf, "%s_bucket{le=\"%g\"} %d\n", name, bound, snap.buckets[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
