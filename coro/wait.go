package coro

import "fmt"

// Wait is a suspension condition a routine can yield. Step reports whether
// the owning task is still waiting. The set of implementations is closed:
// FrameCountdown and PredicateWait.
type Wait interface {
	Step() bool
	isWait()
}

// FrameCountdown waits for a fixed number of frames.
type FrameCountdown struct {
	remaining int
}

// WaitFrames creates a countdown that resolves on its n-th step.
// The counter is decremented before it is tested, so WaitFrames(1)
// resolves on the very first step.
func WaitFrames(n int) *FrameCountdown {
	return &FrameCountdown{remaining: n}
}

func (f *FrameCountdown) Step() bool {
	f.remaining--
	return f.remaining > 0
}

// Remaining returns the current counter value.
func (f *FrameCountdown) Remaining() int {
	return f.remaining
}

func (f *FrameCountdown) String() string {
	return fmt.Sprintf("frames(%d)", f.remaining)
}

func (*FrameCountdown) isWait() {}

// PredicateWait keeps waiting for as long as its predicate returns true.
// The predicate is evaluated on every step.
type PredicateWait struct {
	predicate func() bool
}

// WaitWhile creates a wait that holds while predicate returns true.
func WaitWhile(predicate func() bool) *PredicateWait {
	if predicate == nil {
		panic("coro: WaitWhile called with nil predicate")
	}
	return &PredicateWait{predicate: predicate}
}

func (p *PredicateWait) Step() bool {
	return p.predicate()
}

func (p *PredicateWait) String() string {
	return "while"
}

func (*PredicateWait) isWait() {}
