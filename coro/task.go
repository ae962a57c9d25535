package coro

// TaskState is the lifecycle state of a Task.
type TaskState uint8

const (
	// TaskRunning tasks advance their routine on the next step.
	TaskRunning TaskState = iota
	// TaskSuspended tasks step their current wait on the next step.
	TaskSuspended
	// TaskCompleted tasks have a finished routine. Terminal.
	TaskCompleted
	// TaskCancelled tasks were removed by Scheduler.Cancel. Terminal.
	TaskCancelled
)

func (s TaskState) String() string {
	switch s {
	case TaskRunning:
		return "running"
	case TaskSuspended:
		return "suspended"
	case TaskCompleted:
		return "completed"
	case TaskCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Task drives one Routine through its suspend/resume cycle. It holds at
// most one active Wait at a time.
type Task struct {
	routine   Routine
	wait      Wait
	state     TaskState
	advancing bool
	steps     int64
}

// NewTask wraps routine in a task in the running state.
func NewTask(routine Routine) *Task {
	if routine == nil {
		panic("coro: NewTask called with nil routine")
	}
	return &Task{routine: routine, state: TaskRunning}
}

// State returns the task's current state.
func (t *Task) State() TaskState {
	return t.state
}

// Wait returns the wait the task is suspended on, or nil.
func (t *Task) Wait() Wait {
	return t.wait
}

// Steps returns how many times Step has been called.
func (t *Task) Steps() int64 {
	return t.steps
}

// Done reports whether the task reached a terminal state.
func (t *Task) Done() bool {
	return t.state == TaskCompleted || t.state == TaskCancelled
}

// Step advances the task by one tick. It returns false once the task is
// finished and must be dropped; Step must not be called after that.
//
// A suspended task only steps its wait. When the wait resolves the task
// becomes running again, but the routine is not advanced until the next
// call. A running task advances its routine once; a yielded wait is
// stepped immediately, and is only kept if that first step says it is
// still waiting.
func (t *Task) Step() bool {
	if t.Done() {
		panic("coro: Step called on " + t.state.String() + " task")
	}
	t.steps++

	if t.state == TaskSuspended {
		if !t.wait.Step() {
			t.wait = nil
			t.state = TaskRunning
		}
		return true
	}

	t.advancing = true
	w, ok := t.routine.Advance()
	t.advancing = false

	// Cancelled from inside its own routine.
	if t.state == TaskCancelled {
		t.release()
		return false
	}

	if !ok {
		t.state = TaskCompleted
		t.release()
		return false
	}

	if w != nil && w.Step() {
		t.wait = w
		t.state = TaskSuspended
	}
	return true
}

// cancel moves the task to TaskCancelled. If the routine is currently
// executing, releasing it is left to Step.
func (t *Task) cancel() {
	if t.Done() {
		return
	}
	t.state = TaskCancelled
	t.wait = nil
	if !t.advancing {
		t.release()
	}
}

func (t *Task) release() {
	if s, ok := t.routine.(stopper); ok {
		s.Stop()
	}
}
