package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quotedex/didjws"
)

type fakeSource struct {
	snapshot didjws.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() didjws.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                    { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: didjws.MetricsSnapshot{
			Counters:   map[didjws.MetricID]uint64{},
			Histograms: map[didjws.MetricID][]uint64{},
		},
		dropped: 0,
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderIncludesCounterAndHistogram(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: didjws.MetricsSnapshot{
			Counters: map[didjws.MetricID]uint64{
				didjws.MetricSignSuccess: 7,
			},
			Histograms: map[didjws.MetricID][]uint64{
				didjws.MetricSignLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	if !strings.Contains(out, "didjws_sign_success_total 7") {
		t.Fatalf("expected sign_success counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "didjws_sign_latency_seconds_bucket{le=\"0.005\"} 1") {
		t.Fatalf("expected first histogram bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "didjws_sign_latency_seconds_bucket{le=\"+Inf\"} 36") {
		t.Fatalf("expected +Inf cumulative bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "didjws_audit_dropped_total 2") {
		t.Fatalf("expected audit dropped counter in output, got:\n%s", out)
	}
}

func TestHandlerWritesPrometheusContentType(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: didjws.MetricsSnapshot{
			Counters:   map[didjws.MetricID]uint64{didjws.MetricSignSuccess: 1},
			Histograms: map[didjws.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRenderFromLiveEngine(t *testing.T) {
	engine, err := didjws.New().WithMetricsEnabled(true).WithLatencyHistograms(true).Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	if _, err := engine.Decode("a.b"); err == nil {
		t.Fatal("expected malformed decode to fail")
	}

	out := NewPrometheusExporter(engine).Render()
	if !strings.Contains(out, "didjws_decode_rejected_total 1") {
		t.Fatalf("expected decode_rejected counter in output, got:\n%s", out)
	}
}
