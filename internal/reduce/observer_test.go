package reduce

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agbru/paracc/internal/logging"
)

type countingObserver struct {
	count atomic.Int64
}

func (o *countingObserver) ObserveBlock(BlockReport[int64, int64]) { o.count.Add(1) }

func TestObservers_FanOut(t *testing.T) {
	t.Parallel()
	a, b := &countingObserver{}, &countingObserver{}
	obs := Observers[int64, int64]{a, nil, b}

	r := NewReducer[int64, int64](WithParallelism(8), WithMinChunk(10)).WithObserver(obs)
	if _, err := r.Reduce(Iota[int64]{N: 1_000}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	workers := int64(r.Plan(1_000).Workers)
	if a.count.Load() != workers || b.count.Load() != workers {
		t.Errorf("observers saw (%d, %d) reports, want %d each", a.count.Load(), b.count.Load(), workers)
	}
}

// TestObserver_ConcurrentReductions runs several reductions sharing one
// observer. Run with -race.
func TestObserver_ConcurrentReductions(t *testing.T) {
	t.Parallel()
	obs := &countingObserver{}
	r := NewReducer[int64, int64](WithParallelism(4), WithMinChunk(1)).WithObserver(obs)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Reduce(Iota[int64]{N: 100}, 0)
		}()
	}
	wg.Wait()

	if got := obs.count.Load(); got != 40 {
		t.Errorf("got %d reports, want 40", got)
	}
}

func TestLoggingObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
	r := NewReducer[int, int](WithParallelism(1)).WithObserver(NewLoggingObserver[int, int](logger))

	if _, err := r.Reduce(Slice[int]{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"message":"block reduced"`, `"worker":0`, `"partial":65`, `"first":0`, `"last":9`, `"inline":true`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output should contain %s, got: %s", want, out)
		}
	}
}
