package reduce

import (
	"time"

	"github.com/agbru/paracc/internal/logging"
	"github.com/agbru/paracc/internal/parallel"
)

// BlockReport describes one finished block. It is delivered after the
// block's loop completes and before the join reads its partial result.
type BlockReport[E, A Integer] struct {
	// Worker is the block index; the last index runs on the caller.
	Worker int
	// Block is the index range the worker processed.
	Block parallel.Block
	// Partial is the block's accumulated value.
	Partial A
	// First and Last are the values of the first and last elements in the block.
	First E
	Last  E
	// Elapsed is the wall-clock time of the block's loop.
	Elapsed time.Duration
	// Inline is true for the block run on the caller's goroutine.
	Inline bool
}

// BlockObserver receives one report per worker. Implementations are called
// from several goroutines at once and must be safe for concurrent use.
type BlockObserver[E, A Integer] interface {
	ObserveBlock(report BlockReport[E, A])
}

// ObserverFunc adapts a function to BlockObserver.
type ObserverFunc[E, A Integer] func(report BlockReport[E, A])

// ObserveBlock calls f.
func (f ObserverFunc[E, A]) ObserveBlock(report BlockReport[E, A]) { f(report) }

// NoOpObserver discards every report.
type NoOpObserver[E, A Integer] struct{}

// ObserveBlock does nothing.
func (NoOpObserver[E, A]) ObserveBlock(BlockReport[E, A]) {}

// Observers fans a report out to several observers, in order.
type Observers[E, A Integer] []BlockObserver[E, A]

// ObserveBlock forwards the report to every non-nil observer.
func (o Observers[E, A]) ObserveBlock(report BlockReport[E, A]) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveBlock(report)
		}
	}
}

// LoggingObserver writes one debug line per block: worker id, partial
// result, boundary values and elapsed time.
type LoggingObserver[E, A Integer] struct {
	logger logging.Logger
}

// NewLoggingObserver returns an observer that logs through logger.
func NewLoggingObserver[E, A Integer](logger logging.Logger) *LoggingObserver[E, A] {
	return &LoggingObserver[E, A]{logger: logger}
}

// ObserveBlock logs the report at debug level.
func (o *LoggingObserver[E, A]) ObserveBlock(r BlockReport[E, A]) {
	o.logger.Debug("block reduced",
		logging.Int("worker", r.Worker),
		logging.Field{Key: "partial", Value: r.Partial},
		logging.Field{Key: "first", Value: r.First},
		logging.Field{Key: "last", Value: r.Last},
		logging.Int("start", r.Block.Start),
		logging.Int("end", r.Block.End),
		logging.Bool("inline", r.Inline),
		logging.Duration("elapsed", r.Elapsed),
	)
}
