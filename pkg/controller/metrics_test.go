package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"landlordheaven/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
)

func gatherRequestDurationCount(t *testing.T) uint64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("could not gather metrics: %v", err)
	}

	var total uint64
	for _, mf := range families {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetHistogram().GetSampleCount()
		}
	}

	return total
}

func TestWithMetrics_ObservesRequest(t *testing.T) {
	before := gatherRequestDurationCount(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodGet, "/metricsed", nil)
	rec := httptest.NewRecorder()
	controller.WithMetrics(next).ServeHTTP(rec, req)

	if rec.Result().StatusCode != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, rec.Result().StatusCode)
	}

	after := gatherRequestDurationCount(t)
	if after != before+1 {
		t.Fatalf("expected one new observation, got %d -> %d", before, after)
	}
}
