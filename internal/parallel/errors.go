package parallel

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDispatchRejected is the cause reported when a Spawner refuses a task.
var ErrDispatchRejected = errors.New("task dispatch rejected")

// ErrorCollector records the first non-nil error reported by concurrent
// goroutines. The zero value is ready to use.
type ErrorCollector struct {
	mu  sync.Mutex
	err error
}

// SetError records err if it is non-nil and no error has been recorded yet.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

// Err returns the first recorded error, or nil.
func (c *ErrorCollector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// PanicError carries a panic recovered from a worker, together with the
// stack of the goroutine that panicked.
type PanicError struct {
	Worker int
	Value  any
	Stack  []byte
}

// Error returns the panic value and the worker that raised it.
func (e PanicError) Error() string {
	return fmt.Sprintf("worker %d panicked: %v", e.Worker, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
