package coro

import "iter"

// Routine is a resumable computation driven by a Task.
//
// Each call to Advance runs the routine up to its next suspension point.
// ok == false means the routine has finished. Otherwise w is the wait the
// routine suspended on, or nil to suspend for exactly one tick.
// Advance is never called again after it reports ok == false.
type Routine interface {
	Advance() (w Wait, ok bool)
}

// RoutineFunc adapts a plain function, typically a hand-written state
// machine, to the Routine interface.
type RoutineFunc func() (Wait, bool)

func (f RoutineFunc) Advance() (Wait, bool) {
	return f()
}

// stopper is implemented by routines holding resources that must be
// released when the task is cancelled before finishing.
type stopper interface {
	Stop()
}

// Seq turns a range-over-func sequence into a Routine. Each yield inside
// seq is one suspension point: yield(nil) suspends a single tick and
// yield(w) suspends on w. Returning from seq finishes the routine.
//
//	coro.Seq(func(yield func(coro.Wait) bool) {
//		if !yield(coro.WaitFrames(3)) {
//			return
//		}
//		fmt.Println("three frames later")
//	})
//
// yield returns false once the task has been cancelled; the sequence
// should return promptly when that happens.
func Seq(seq iter.Seq[Wait]) Routine {
	next, stop := iter.Pull(seq)
	return &seqRoutine{next: next, stop: stop}
}

type seqRoutine struct {
	next func() (Wait, bool)
	stop func()
}

func (r *seqRoutine) Advance() (Wait, bool) {
	return r.next()
}

func (r *seqRoutine) Stop() {
	r.stop()
}
