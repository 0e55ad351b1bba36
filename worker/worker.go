package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Worker runs a background job until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker repeats a unit of work on a fixed cadence.
// The zero value ticks every ten seconds.
type TickWorker struct {
	Delay time.Duration
}

// StartTick schedules onWork until ctx is done. A round that overlaps a
// still running one is skipped, and a failed round does not stop the
// schedule.
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = 10 * time.Second
	}

	var busy int32
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", delay), func() {
		if !atomic.CompareAndSwapInt32(&busy, 0, 1) {
			return
		}
		defer atomic.StoreInt32(&busy, 0)

		_ = onWork(ctx)
	}); err != nil {
		return err
	}

	c.Start()
	defer c.Stop()

	<-ctx.Done()
	return ctx.Err()
}
