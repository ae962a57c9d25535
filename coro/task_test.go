package coro_test

import (
	"testing"

	"github.com/plus3/corotick/coro"
	"github.com/stretchr/testify/assert"
)

// scripted yields each wait in turn, then finishes. A nil entry yields a
// bare single-tick suspension. Advancing past the end fails the test.
type scripted struct {
	t        *testing.T
	waits    []coro.Wait
	advances int
	finished bool
}

func script(t *testing.T, waits ...coro.Wait) *scripted {
	return &scripted{t: t, waits: waits}
}

func (s *scripted) Advance() (coro.Wait, bool) {
	if s.finished {
		s.t.Fatal("routine advanced after it finished")
	}
	s.advances++
	if s.advances > len(s.waits) {
		s.finished = true
		return nil, false
	}
	return s.waits[s.advances-1], true
}

func TestTaskBareYield(t *testing.T) {
	r := script(t, nil, nil)
	task := coro.NewTask(r)

	assert.Equal(t, coro.TaskRunning, task.State())

	assert.True(t, task.Step())
	assert.Equal(t, coro.TaskRunning, task.State())
	assert.Nil(t, task.Wait())
	assert.Equal(t, 1, r.advances)

	assert.True(t, task.Step())
	assert.Equal(t, 2, r.advances)

	assert.False(t, task.Step())
	assert.Equal(t, coro.TaskCompleted, task.State())
	assert.True(t, task.Done())
	assert.Equal(t, int64(3), task.Steps())
}

func TestTaskResolvedWaitIsDiscarded(t *testing.T) {
	r := script(t, coro.WaitFrames(1), nil)
	task := coro.NewTask(r)

	assert.True(t, task.Step())
	assert.Equal(t, coro.TaskRunning, task.State())
	assert.Nil(t, task.Wait())

	// The routine advances again on the very next step.
	assert.True(t, task.Step())
	assert.Equal(t, 2, r.advances)
}

func TestTaskSuspendsOnCountdown(t *testing.T) {
	countdown := coro.WaitFrames(3)
	r := script(t, countdown)
	task := coro.NewTask(r)

	// 3 -> 2 at yield time.
	assert.True(t, task.Step())
	assert.Equal(t, coro.TaskSuspended, task.State())
	assert.Same(t, countdown, task.Wait())

	// 2 -> 1.
	assert.True(t, task.Step())
	assert.Equal(t, coro.TaskSuspended, task.State())

	// 1 -> 0 resolves, but the routine is not advanced in the same step.
	assert.True(t, task.Step())
	assert.Equal(t, coro.TaskRunning, task.State())
	assert.Nil(t, task.Wait())
	assert.Equal(t, 1, r.advances)

	assert.False(t, task.Step())
	assert.Equal(t, 2, r.advances)
}

func TestTaskPredicateEvaluatedAtYield(t *testing.T) {
	calls := 0
	holding := true
	r := script(t, coro.WaitWhile(func() bool {
		calls++
		return holding
	}))
	task := coro.NewTask(r)

	assert.True(t, task.Step())
	assert.Equal(t, 1, calls)
	assert.Equal(t, coro.TaskSuspended, task.State())

	assert.True(t, task.Step())
	assert.Equal(t, 2, calls)
	assert.Equal(t, coro.TaskSuspended, task.State())

	holding = false
	assert.True(t, task.Step())
	assert.Equal(t, 3, calls)
	assert.Equal(t, coro.TaskRunning, task.State())
	assert.Equal(t, 1, r.advances)
}

func TestTaskAlreadyFalsePredicateDoesNotSuspend(t *testing.T) {
	r := script(t, coro.WaitWhile(func() bool { return false }), nil)
	task := coro.NewTask(r)

	assert.True(t, task.Step())
	assert.Equal(t, coro.TaskRunning, task.State())
	assert.True(t, task.Step())
	assert.Equal(t, 2, r.advances)
}

func TestTaskStepAfterCompletionPanics(t *testing.T) {
	task := coro.NewTask(script(t))

	assert.False(t, task.Step())
	assert.Panics(t, func() {
		task.Step()
	})
}

func TestNewTaskNilRoutine(t *testing.T) {
	assert.Panics(t, func() {
		coro.NewTask(nil)
	})
}

func TestTaskSeqRoutine(t *testing.T) {
	var trace []string
	task := coro.NewTask(coro.Seq(func(yield func(coro.Wait) bool) {
		trace = append(trace, "start")
		if !yield(coro.WaitFrames(2)) {
			return
		}
		trace = append(trace, "after frames")
		if !yield(nil) {
			return
		}
		trace = append(trace, "end")
	}))

	assert.True(t, task.Step())
	assert.Equal(t, []string{"start"}, trace)
	assert.Equal(t, coro.TaskSuspended, task.State())

	assert.True(t, task.Step())
	assert.Equal(t, coro.TaskRunning, task.State())
	assert.Equal(t, []string{"start"}, trace)

	assert.True(t, task.Step())
	assert.Equal(t, []string{"start", "after frames"}, trace)

	assert.False(t, task.Step())
	assert.Equal(t, []string{"start", "after frames", "end"}, trace)
	assert.Equal(t, coro.TaskCompleted, task.State())
}

func TestTaskStateString(t *testing.T) {
	assert.Equal(t, "running", coro.TaskRunning.String())
	assert.Equal(t, "suspended", coro.TaskSuspended.String())
	assert.Equal(t, "completed", coro.TaskCompleted.String())
	assert.Equal(t, "cancelled", coro.TaskCancelled.String())
	assert.Equal(t, "unknown", coro.TaskState(42).String())
}
