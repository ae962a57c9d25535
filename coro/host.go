package coro

// Host receives the per-tick callbacks of a Scheduler. Update runs before
// any task is stepped and LateUpdate runs after all of them.
type Host interface {
	Update()
	LateUpdate()
}

// HostFuncs adapts a pair of functions to the Host interface. Nil
// functions are skipped.
type HostFuncs struct {
	OnUpdate     func()
	OnLateUpdate func()
}

func (h HostFuncs) Update() {
	if h.OnUpdate != nil {
		h.OnUpdate()
	}
}

func (h HostFuncs) LateUpdate() {
	if h.OnLateUpdate != nil {
		h.OnLateUpdate()
	}
}
