package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/paracc/internal/reduce"
)

func TestCollector_RecordRun(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	c.RecordRun("parallel", 1_000, 4, 5*time.Millisecond, nil)
	c.RecordRun("parallel", 1_000, 4, 5*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(c.runs.WithLabelValues("parallel", "success")); got != 1 {
		t.Errorf("success runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.runs.WithLabelValues("parallel", "failure")); got != 1 {
		t.Errorf("failure runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.elements.WithLabelValues("parallel")); got != 1_000 {
		t.Errorf("elements = %v, want 1000 (failed runs are not counted)", got)
	}
	if got := testutil.ToFloat64(c.workers.WithLabelValues("parallel")); got != 4 {
		t.Errorf("workers = %v, want 4", got)
	}
}

func TestBlockObserver_CountsBlocks(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	r := reduce.NewReducer[int64, int64](reduce.WithParallelism(4), reduce.WithMinChunk(1)).
		WithObserver(BlockObserver[int64, int64](c, "parallel"))

	if _, err := r.Reduce(reduce.Iota[int64]{N: 400}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(c.blocks.WithLabelValues("parallel", "false")); got != 3 {
		t.Errorf("dispatched blocks = %v, want 3", got)
	}
	if got := testutil.ToFloat64(c.blocks.WithLabelValues("parallel", "true")); got != 1 {
		t.Errorf("inline blocks = %v, want 1", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.RecordRun("sequential", 10, 1, time.Millisecond, nil)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"paracc_runs_total", "paracc_run_duration_seconds", "go_goroutines"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %s", want)
		}
	}
}
