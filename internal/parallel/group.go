package parallel

import (
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/paracc/internal/errors"
)

// Spawner dispatches tasks for concurrent execution and waits for them.
// TryGo reports false when the task could not be started; Wait blocks until
// every started task has returned and yields the first task error.
//
// *errgroup.Group satisfies this interface.
type Spawner interface {
	TryGo(f func() error) bool
	Wait() error
}

// SpawnerFactory creates a fresh Spawner able to run up to limit tasks at once.
type SpawnerFactory func(limit int) Spawner

// NewGroup is the default SpawnerFactory: an errgroup.Group bounded to limit
// concurrent tasks.
func NewGroup(limit int) Spawner {
	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return g
}

var _ SpawnerFactory = NewGroup

// ForBlocks runs body once per block. Every block but the last is dispatched
// to spawner; the last block runs on the calling goroutine once all others
// have been dispatched. ForBlocks returns only after every dispatched task
// has completed, regardless of errors.
//
// If a task cannot be dispatched, no further blocks are started, the caller's
// block is skipped and a WorkerStartError is returned after the barrier.
// Panics raised by body are recovered and returned as PanicError.
func ForBlocks(blocks []Block, spawner Spawner, body func(Block) error) error {
	if len(blocks) == 0 {
		return nil
	}

	var dispatchErr error
	last := len(blocks) - 1
	for _, b := range blocks[:last] {
		if !spawner.TryGo(func() error { return runBlock(b, body) }) {
			dispatchErr = apperrors.WorkerStartError{Worker: b.Index, Cause: ErrDispatchRejected}
			break
		}
	}

	var ec ErrorCollector
	if dispatchErr == nil {
		ec.SetError(runBlock(blocks[last], body))
	}
	ec.SetError(spawner.Wait())

	if dispatchErr != nil {
		return dispatchErr
	}
	return ec.Err()
}

func runBlock(b Block, body func(Block) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = PanicError{Worker: b.Index, Value: r, Stack: debug.Stack()}
		}
	}()
	return body(b)
}
