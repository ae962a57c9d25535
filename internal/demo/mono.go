// Package demo contains the demonstration behaviour: a host object with a
// frame counter and a single routine reporting its progress.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/plus3/corotick/coro"
)

// Mono owns a scheduler and acts as its host. Its counter starts at 1 and
// is bumped by every Update.
type Mono struct {
	out       io.Writer
	counter   int
	scheduler *coro.Scheduler
	routine   coro.TaskHandle
}

// NewMono creates the host and registers its routine.
func NewMono(out io.Writer, logger *slog.Logger) *Mono {
	m := &Mono{out: out, counter: 1}
	m.scheduler = coro.NewScheduler(m, coro.WithLogger(logger))
	m.routine = m.scheduler.Start(m.wait, coro.WithName("mono.wait"))
	return m
}

// Scheduler returns the scheduler driven by MainLoop.
func (m *Mono) Scheduler() *coro.Scheduler {
	return m.scheduler
}

// Counter returns the current counter value.
func (m *Mono) Counter() int {
	return m.counter
}

// Done reports whether the routine has finished.
func (m *Mono) Done() bool {
	return !m.scheduler.Active(m.routine)
}

// MainLoop runs one frame.
func (m *Mono) MainLoop() {
	m.scheduler.Tick()
}

func (m *Mono) Update() {
	fmt.Fprintf(m.out, "------------------------------ Tick ...... %d\n", m.counter)
	m.counter++
}

func (m *Mono) LateUpdate() {}

func (m *Mono) wait(yield func(coro.Wait) bool) {
	if !yield(coro.WaitFrames(5)) {
		return
	}
	fmt.Fprintln(m.out, "Begin at 6")

	if !yield(coro.WaitWhile(func() bool { return m.counter < 4 })) {
		return
	}
	fmt.Fprintln(m.out, "Wait4")
	if !yield(nil) {
		return
	}
	fmt.Fprintln(m.out, "Wait5")
	if !yield(nil) {
		return
	}
	fmt.Fprintln(m.out, "Wait6")
	if !yield(nil) {
		return
	}

	if !yield(coro.WaitWhile(func() bool { return m.counter < 10 })) {
		return
	}
	fmt.Fprintln(m.out, "End at 10")
}
