package tui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/panjf2000/ants/v2"
)

// Submitter runs fire-and-forget work off the frame loop.
type Submitter interface {
	Submit(task func()) error
}

// NewWorkerPool creates the pool used for database writes and sound
// synthesis. A panicking task is logged and the pool keeps running.
func NewWorkerPool(size int, logger *log.Logger) (*ants.Pool, error) {
	if size <= 0 {
		size = 4
	}
	return ants.NewPool(size,
		ants.WithNonblocking(true),
		ants.WithExpiryDuration(30*time.Second),
		ants.WithPanicHandler(func(p any) {
			if logger != nil {
				logger.Error("worker panic", "panic", p)
			}
		}),
	)
}

// submit hands task to workers, running it inline when there is no pool or
// the pool is saturated.
func submit(workers Submitter, task func()) {
	if workers == nil {
		task()
		return
	}
	if err := workers.Submit(task); err != nil {
		task()
	}
}
