// Package stress drives a scheduler with a large random routine population
// and reports tick timings.
package stress

import (
	"context"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/plus3/corotick/coro"
)

// Options configures a stress run. CancelRate is the chance per tick that
// a random task gets cancelled. A zero Seed picks one from the clock.
type Options struct {
	Duration       time.Duration
	Routines       int
	MaxFrames      int
	CancelRate     float64
	Seed           int64
	GCPauseMetrics bool
}

// world is the scheduler host. It keeps the routine population constant by
// replacing finished and cancelled tasks in LateUpdate.
type world struct {
	opts      Options
	rng       *rand.Rand
	scheduler *coro.Scheduler
	tick      int
	handles   []coro.TaskHandle
	vacant    []int
}

func (w *world) Update() {
	w.tick++
	if len(w.handles) == 0 || w.rng.Float64() >= w.opts.CancelRate {
		return
	}
	// The handle may already be stale; Cancel ignores it then.
	slot := w.rng.Intn(len(w.handles))
	if w.scheduler.Active(w.handles[slot]) {
		w.vacant = append(w.vacant, slot)
	}
	w.scheduler.Cancel(w.handles[slot])
}

func (w *world) LateUpdate() {
	for _, slot := range w.vacant {
		w.handles[slot] = w.spawn(slot)
	}
	w.vacant = w.vacant[:0]
}

func (w *world) spawn(slot int) coro.TaskHandle {
	rounds := w.rng.Intn(8) + 1
	return w.scheduler.Start(func(yield func(coro.Wait) bool) {
		for i := 0; i < rounds; i++ {
			var wait coro.Wait
			switch w.rng.Intn(3) {
			case 0:
				wait = coro.WaitFrames(w.rng.Intn(w.opts.MaxFrames) + 1)
			case 1:
				until := w.tick + w.rng.Intn(w.opts.MaxFrames)
				wait = coro.WaitWhile(func() bool { return w.tick < until })
			}
			if !yield(wait) {
				return
			}
		}
		w.vacant = append(w.vacant, slot)
	})
}

// Run populates a scheduler and ticks it as fast as possible until the
// duration elapses or ctx is cancelled.
func Run(ctx context.Context, opts Options, logger *slog.Logger) *Report {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := &world{
		opts:    opts,
		rng:     rand.New(rand.NewSource(seed)),
		handles: make([]coro.TaskHandle, opts.Routines),
	}
	w.scheduler = coro.NewScheduler(w, coro.WithLogger(logger))

	logger.Info("populating scheduler", "routines", opts.Routines, "seed", seed)
	for i := range w.handles {
		w.handles[i] = w.spawn(i)
	}

	report := &Report{
		Duration:       opts.Duration,
		Routines:       opts.Routines,
		MaxFrames:      opts.MaxFrames,
		Seed:           seed,
		GCPauseMetrics: opts.GCPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running", "duration", opts.Duration)
	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			w.scheduler.Tick()
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Scheduler = *w.scheduler.GetStats()
	report.Scheduler.Tasks = nil
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("finished", "ticks", report.Scheduler.Ticks, "completed", report.Scheduler.Completed)
	return report
}
