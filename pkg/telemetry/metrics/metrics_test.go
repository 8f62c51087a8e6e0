package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"gravitas-hq/callisto/pkg/config"
)

func testCollector() *Collector {
	return NewCollector(config.MetricsConfig{
		Enabled:   true,
		Namespace: "callisto",
		Subsystem: "pipeline",
	}, prometheus.NewRegistry())
}

func TestRecordRun(t *testing.T) {
	c := testCollector()
	c.Pipeline().RecordRun("success", 100*time.Millisecond)
	c.Pipeline().RecordRun("success", 200*time.Millisecond)
	c.Pipeline().RecordRun("error", time.Millisecond)

	got := testutil.ToFloat64(c.pipeline.runsTotal.WithLabelValues("success"))
	if got != 2 {
		t.Errorf("success runs = %v, want 2", got)
	}
	got = testutil.ToFloat64(c.pipeline.runsTotal.WithLabelValues("error"))
	if got != 1 {
		t.Errorf("error runs = %v, want 1", got)
	}
}

func TestRecordGraphAndReweighted(t *testing.T) {
	c := testCollector()
	c.Pipeline().RecordGraph(42, 7)
	c.Pipeline().RecordReweighted(5)
	c.Pipeline().RecordReweighted(3)

	if got := testutil.ToFloat64(c.pipeline.nodes); got != 42 {
		t.Errorf("nodes gauge = %v, want 42", got)
	}
	if got := testutil.ToFloat64(c.pipeline.buckets); got != 7 {
		t.Errorf("buckets gauge = %v, want 7", got)
	}
	if got := testutil.ToFloat64(c.pipeline.reweightedTotal); got != 8 {
		t.Errorf("reweighted total = %v, want 8", got)
	}
}

func TestHandlerExposition(t *testing.T) {
	c := testCollector()
	c.Pipeline().RecordRun("success", time.Second)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "callisto_pipeline_runs_total") {
		t.Errorf("exposition missing runs_total:\n%s", body)
	}
}
