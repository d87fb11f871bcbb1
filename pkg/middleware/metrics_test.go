package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// The metrics singleton binds to the first registry it sees, so the
// whole lifecycle is exercised in one test.
func TestPrometheusMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg), WithNamespace("verdin"))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/", "/", "/missing"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	RecordRebuild("success")
	RecordRebuild("error")
	RecordReload(2)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}

	for _, name := range []string{
		"verdin_http_requests_total",
		"verdin_http_request_duration_seconds",
		"verdin_http_requests_in_flight",
		"verdin_rebuilds_total",
		"verdin_reloads_sent_total",
	} {
		if !found[name] {
			t.Errorf("metric %s not registered (got %v)", name, keys(found))
		}
	}

	// Status codes must be captured per label.
	for _, mf := range families {
		if mf.GetName() != "verdin_http_requests_total" {
			continue
		}
		byStatus := map[string]float64{}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "status" {
					byStatus[l.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
		if byStatus["200"] != 2 {
			t.Errorf("requests with status 200 = %v, want 2", byStatus["200"])
		}
		if byStatus["404"] != 1 {
			t.Errorf("requests with status 404 = %v, want 1", byStatus["404"])
		}
	}
}

func TestStatusWriterDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	sw.Write([]byte("body"))
	if sw.status != http.StatusOK {
		t.Errorf("status = %d, want 200", sw.status)
	}

	rec2 := httptest.NewRecorder()
	sw2 := &statusWriter{ResponseWriter: rec2, status: http.StatusOK}
	sw2.WriteHeader(http.StatusTeapot)
	sw2.WriteHeader(http.StatusOK)
	if sw2.status != http.StatusTeapot {
		t.Errorf("status = %d, want first WriteHeader to win", sw2.status)
	}
}

func TestMetricsHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("content type = %q", rec.Header().Get("Content-Type"))
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
