package orchestration

import (
	"sync"
	"testing"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n         int
		wantNil   bool
		wantMulti bool
	}{
		{3, false, true},
		{1, false, false},
		{0, true, false},
		{-1, true, false},
	}
	for _, tt := range tests {
		agg := NewProgressAggregator(tt.n)
		if (agg == nil) != tt.wantNil {
			t.Errorf("NewProgressAggregator(%d) nil = %v, want %v", tt.n, agg == nil, tt.wantNil)
			continue
		}
		if agg == nil {
			continue
		}
		if agg.NumRunners() != tt.n {
			t.Errorf("NumRunners() = %d, want %d", agg.NumRunners(), tt.n)
		}
		if agg.IsMultiRunner() != tt.wantMulti {
			t.Errorf("IsMultiRunner() = %v, want %v", agg.IsMultiRunner(), tt.wantMulti)
		}
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	ap := agg.Update(ProgressUpdate{RunnerIndex: 0, Value: 0.5})
	if ap.RunnerIndex != 0 || ap.Value != 0.5 {
		t.Errorf("unexpected update echo: %+v", ap)
	}
	if ap.AverageProgress != 0.25 {
		t.Errorf("AverageProgress = %v, want 0.25", ap.AverageProgress)
	}
	if ap.Completed != 0 {
		t.Errorf("Completed = %d, want 0", ap.Completed)
	}

	agg.Update(ProgressUpdate{RunnerIndex: 0, Value: 1})
	ap = agg.Update(ProgressUpdate{RunnerIndex: 1, Value: 0.5})
	if got := agg.CalculateAverage(); got != 0.75 {
		t.Errorf("CalculateAverage() = %v, want 0.75", got)
	}
	if ap.Completed != 1 || agg.Active() != 1 {
		t.Errorf("Completed = %d, Active = %d; want 1 and 1", ap.Completed, agg.Active())
	}
	if agg.GetETA() < 0 {
		t.Error("ETA should not be negative")
	}

	agg.Update(ProgressUpdate{RunnerIndex: 1, Value: 1})
	if agg.Completed() != 2 {
		t.Errorf("Completed() = %d, want 2", agg.Completed())
	}
}

func TestProgressAggregator_IgnoresUnknownRunner(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(1)
	ap := agg.Update(ProgressUpdate{RunnerIndex: 5, Value: 1})
	if ap.RunnerIndex != 5 {
		t.Errorf("update should be echoed, got %+v", ap)
	}
	if agg.Completed() != 0 || agg.Active() != 0 {
		t.Errorf("out-of-range update changed state: completed %d, active %d", agg.Completed(), agg.Active())
	}
}

func TestNullProgressReporter_Drains(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	ch <- ProgressUpdate{Value: 0.1}
	ch <- ProgressUpdate{Value: 0.2}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	NullProgressReporter{}.DisplayProgress(&wg, ch, 1, nil)
	wg.Wait()

	if len(ch) != 0 {
		t.Errorf("channel still holds %d updates", len(ch))
	}
}

func TestProgressSink_IgnoresSendsAfterClose(t *testing.T) {
	t.Parallel()
	s := &progressSink{ch: make(chan ProgressUpdate, 1)}
	s.send(ProgressUpdate{Value: 0.5})
	s.send(ProgressUpdate{Value: 0.6}) // buffer full: dropped
	s.close()
	s.send(ProgressUpdate{Value: 0.7}) // closed: ignored

	var got []float64
	for u := range s.ch {
		got = append(got, u.Value)
	}
	if len(got) != 1 || got[0] != 0.5 {
		t.Errorf("received %v, want [0.5]", got)
	}
}
