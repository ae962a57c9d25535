package coro_test

import (
	"testing"

	"github.com/plus3/corotick/coro"
)

func forever() coro.Routine {
	return coro.RoutineFunc(func() (coro.Wait, bool) {
		return nil, true
	})
}

func BenchmarkTickRoutineFunc(b *testing.B) {
	scheduler := coro.NewScheduler(nil)
	for i := 0; i < 1000; i++ {
		scheduler.Register(forever())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Tick()
	}
}

func BenchmarkTickSeq(b *testing.B) {
	scheduler := coro.NewScheduler(nil)
	handles := make([]coro.TaskHandle, 1000)
	for i := range handles {
		handles[i] = scheduler.Start(func(yield func(coro.Wait) bool) {
			for yield(nil) {
			}
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Tick()
	}
	b.StopTimer()

	for _, h := range handles {
		scheduler.Cancel(h)
	}
}

func BenchmarkTickSuspended(b *testing.B) {
	scheduler := coro.NewScheduler(nil)
	for i := 0; i < 1000; i++ {
		scheduler.Register(coro.RoutineFunc(func() (coro.Wait, bool) {
			return coro.WaitWhile(func() bool { return true }), true
		}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Tick()
	}
}

func BenchmarkRegisterCancel(b *testing.B) {
	scheduler := coro.NewScheduler(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := scheduler.Register(forever())
		scheduler.Cancel(h)
	}
}
