package parallel

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestErrorCollector_FirstErrorWins(t *testing.T) {
	t.Parallel()
	var ec ErrorCollector
	if ec.Err() != nil {
		t.Fatal("zero value should hold no error")
	}

	first := errors.New("block 0 failed")
	ec.SetError(nil)
	ec.SetError(first)
	ec.SetError(errors.New("block 1 failed"))
	ec.SetError(nil)

	if !errors.Is(ec.Err(), first) {
		t.Errorf("Err() = %v, want %v", ec.Err(), first)
	}
}

// TestErrorCollector_Contention releases many goroutines at once, half of
// them reporting nil, and checks that exactly one real error is kept.
func TestErrorCollector_Contention(t *testing.T) {
	t.Parallel()
	for round := 0; round < 50; round++ {
		var ec ErrorCollector
		var wg sync.WaitGroup
		start := make(chan struct{})

		const reporters = 512
		wg.Add(reporters)
		for i := 0; i < reporters; i++ {
			go func() {
				defer wg.Done()
				<-start
				if i%2 == 0 {
					ec.SetError(nil)
					return
				}
				ec.SetError(fmt.Errorf("block %d failed", i))
			}()
		}
		close(start)
		wg.Wait()

		var idx int
		if _, err := fmt.Sscanf(fmt.Sprint(ec.Err()), "block %d failed", &idx); err != nil {
			t.Fatalf("round %d: unexpected error %v", round, ec.Err())
		}
		if idx%2 == 0 {
			t.Errorf("round %d: kept error from nil reporter %d", round, idx)
		}
	}
}

// TestForBlocks_ConcurrentPanics makes every worker panic at the same time.
// The barrier must still hold and a single PanicError must come back.
func TestForBlocks_ConcurrentPanics(t *testing.T) {
	t.Parallel()
	blocks := PartitionRange(64*8, 64)
	var ran atomic.Int32
	start := make(chan struct{})
	var ready sync.WaitGroup
	ready.Add(len(blocks) - 1)

	go func() {
		ready.Wait()
		close(start)
	}()

	err := ForBlocks(blocks, NewGroup(len(blocks)), func(b Block) error {
		ran.Add(1)
		if b.Index != len(blocks)-1 {
			ready.Done()
		}
		<-start
		panic(fmt.Sprintf("block %d", b.Index))
	})

	if got := ran.Load(); got != int32(len(blocks)) {
		t.Errorf("%d blocks ran, want %d", got, len(blocks))
	}
	var pe PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PanicError, got %v", err)
	}
	if want := fmt.Sprintf("block %d", pe.Worker); pe.Value != want {
		t.Errorf("panic value %v does not belong to worker %d", pe.Value, pe.Worker)
	}
	if len(pe.Stack) == 0 {
		t.Error("PanicError should carry the worker stack")
	}
}
