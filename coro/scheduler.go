package coro

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Ticks       int64
	ActiveCount int
	Registered  int64
	Completed   int64
	Cancelled   int64
	TotalSteps  int64
	Tasks       []TaskStats
}

// TaskStats describes a single active task. Wait describes the current
// wait and is empty while the task is running. Age counts the ticks since
// the task was registered.
type TaskStats struct {
	Handle TaskHandle
	ID     uint64
	Name   string
	State  TaskState
	Wait   string
	Steps  int64
	Age    int64
}

// TaskHandle identifies a registered task. The zero value refers to no task.
type TaskHandle struct {
	id uint64
}

// ID returns the numeric task id, 0 for the zero handle.
func (h TaskHandle) ID() uint64 {
	return h.id
}

// IsZero reports whether h is the zero handle.
func (h TaskHandle) IsZero() bool {
	return h.id == 0
}

type taskEntry struct {
	*Task
	id         uint64
	name       string
	registered int64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger used for task lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// TaskOption configures a registered task.
type TaskOption func(*taskEntry)

// WithName labels a task in logs and stats.
func WithName(name string) TaskOption {
	return func(e *taskEntry) {
		e.name = name
	}
}

// Scheduler steps coroutine tasks once per tick, between the Update and
// LateUpdate callbacks of its host. It is not safe for concurrent use;
// every method must be called from the goroutine driving Tick.
type Scheduler struct {
	host   Host
	logger *slog.Logger

	tasks  []*taskEntry
	byID   *intmap.Map[uint64, *taskEntry]
	nextID uint64

	ticking  bool
	stepping bool

	ticks      int64
	registered int64
	completed  int64
	cancelled  int64
	steps      int64
}

// NewScheduler creates a scheduler calling host around each tick.
// A nil host runs no callbacks.
func NewScheduler(host Host, opts ...Option) *Scheduler {
	if host == nil {
		host = HostFuncs{}
	}
	s := &Scheduler{
		host:   host,
		logger: slog.New(slog.DiscardHandler),
		tasks:  make([]*taskEntry, 0),
		byID:   intmap.New[uint64, *taskEntry](64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register appends a task running routine and returns its handle. The
// routine is first advanced on the next tick; a task registered while
// tasks are being stepped is not visited until the tick after.
func (s *Scheduler) Register(routine Routine, opts ...TaskOption) TaskHandle {
	s.nextID++
	entry := &taskEntry{
		Task:       NewTask(routine),
		id:         s.nextID,
		registered: s.ticks,
	}
	for _, opt := range opts {
		opt(entry)
	}

	s.tasks = append(s.tasks, entry)
	s.byID.Put(entry.id, entry)
	s.registered++

	s.logger.Debug("task registered", "task", entry.id, "name", entry.name, "tick", s.ticks)
	return TaskHandle{id: entry.id}
}

// Start registers a sequence as a routine. See Seq.
func (s *Scheduler) Start(seq iter.Seq[Wait], opts ...TaskOption) TaskHandle {
	return s.Register(Seq(seq), opts...)
}

// Cancel removes the task behind h. Cancelling a stale, completed or
// already cancelled handle does nothing. A task cancelled during the
// stepping phase is never stepped again, including later in the same tick.
func (s *Scheduler) Cancel(h TaskHandle) {
	entry, ok := s.byID.Get(h.id)
	if !ok {
		return
	}
	s.byID.Del(h.id)
	entry.cancel()
	s.cancelled++

	s.logger.Debug("task cancelled", "task", entry.id, "name", entry.name, "tick", s.ticks)

	if !s.stepping {
		s.compact()
	}
}

// Active reports whether the task behind h is still scheduled.
func (s *Scheduler) Active(h TaskHandle) bool {
	_, ok := s.byID.Get(h.id)
	return ok
}

// Len returns the number of scheduled tasks.
func (s *Scheduler) Len() int {
	return s.byID.Len()
}

// Tick runs one frame: host Update, then every task present at the start
// of the stepping phase, last registered first, then host LateUpdate.
// Tasks whose routine finishes are removed before LateUpdate runs.
// Tick must not be called from within a tick.
func (s *Scheduler) Tick() {
	if s.ticking {
		panic("coro: Tick called reentrantly")
	}
	s.ticking = true
	defer func() {
		s.ticking = false
		s.stepping = false
	}()

	s.host.Update()

	s.stepping = true
	for i := len(s.tasks) - 1; i >= 0; i-- {
		entry := s.tasks[i]
		if entry.Done() {
			continue
		}

		s.steps++
		if entry.Step() {
			continue
		}

		if entry.State() == TaskCompleted {
			s.byID.Del(entry.id)
			s.completed++
			s.logger.Debug("task completed", "task", entry.id, "name", entry.name,
				"tick", s.ticks, "steps", entry.Steps())
		}
	}
	s.stepping = false
	s.compact()

	s.host.LateUpdate()
	s.ticks++
}

// compact drops finished tasks while keeping registration order.
func (s *Scheduler) compact() {
	s.tasks = slices.DeleteFunc(s.tasks, func(e *taskEntry) bool {
		return e.Done()
	})
}

// Run ticks the scheduler at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// GetStats returns statistics about scheduler execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Ticks:       s.ticks,
		ActiveCount: s.Len(),
		Registered:  s.registered,
		Completed:   s.completed,
		Cancelled:   s.cancelled,
		TotalSteps:  s.steps,
		Tasks:       make([]TaskStats, 0, len(s.tasks)),
	}

	for _, entry := range s.tasks {
		if entry.Done() {
			continue
		}
		ts := TaskStats{
			Handle: TaskHandle{id: entry.id},
			ID:     entry.id,
			Name:   entry.name,
			State:  entry.State(),
			Steps:  entry.Steps(),
			Age:    s.ticks - entry.registered,
		}
		if w, ok := entry.Wait().(fmt.Stringer); ok {
			ts.Wait = w.String()
		}
		stats.Tasks = append(stats.Tasks, ts)
	}

	return stats
}
