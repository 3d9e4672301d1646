package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsWritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/planner/current-week", "200", 20*time.Millisecond)
	m.ObserveAPI("POST", "/api/planner/assign-idea", "500", time.Second)
	m.ObserveAggregateOperation("Planner.WeeklyPlan.AssignIdea", "conflict", 3*time.Millisecond)
	m.IncAggregateConflict("Planner.WeeklyPlan.AssignIdea")
	m.IncUsageLimitReached("random_idea")

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`ch_api_requests_total{method="GET",route="/api/planner/current-week",status="200"} 1.000000`,
		`ch_api_requests_error_total 1.000000`,
		`ch_aggregate_operations_total{operation="Planner.WeeklyPlan.AssignIdea",status="conflict"} 1.000000`,
		`ch_aggregate_conflicts_total{operation="Planner.WeeklyPlan.AssignIdea"} 1.000000`,
		`ch_usage_limit_reached_total{feature="random_idea"} 1.000000`,
		`ch_aggregate_operation_duration_seconds_bucket{operation="Planner.WeeklyPlan.AssignIdea",status="conflict",le="0.005"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ObserveAggregateOperation("op", "success", time.Millisecond)
	m.IncAggregateConflict("op")
	m.IncAggregateRetry("op")
	m.ApiInflightInc()
	m.ApiInflightDec()

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("nil metrics status: want=%d got=%d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestHistogramBuckets(t *testing.T) {
	h := NewHistogramVec("h", "help", []string{"k"}, []float64{1, 2})
	h.Observe(0.5, "a")
	h.Observe(1.5, "a")
	h.Observe(3, "a")

	var buf bytes.Buffer
	if err := h.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`h_bucket{k="a",le="1"} 1`,
		`h_bucket{k="a",le="2"} 2`,
		`h_bucket{k="a",le="+Inf"} 3`,
		`h_count{k="a"} 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
