package glimmer

// Effect is an eager side-effecting observer: its body runs once at
// creation to establish dependencies and produce the first side effect, then
// re-runs through the scheduler whenever a tracked dependency changes.
//
// Cleanup work (closing resources, unbinding listeners) registers through
// [Runtime.OnCleanup] inside the body; registered cleanups run before the
// next re-run and on Dispose.
//
// Example:
//
//	watch := glimmer.NewEffect(rt, func() {
//	    fmt.Println("count is", count.Get())
//	})
//	count.Set(2) // effect re-runs after the write settles
//	watch.Dispose()
type Effect struct {
	rt       *Runtime
	fn       func()
	tracker  depTracker
	cleanups []func()
	disposed bool
}

// NewEffect creates an effect owned by rt and runs its body once
// synchronously. Subsequent runs are scheduled: they happen after the
// write that invalidated them settles (immediately at batch depth zero,
// at the end of the outermost batch otherwise), and always after dirty
// computeds and subscriber notifications.
func NewEffect(rt *Runtime, fn func()) *Effect {
	if rt == nil {
		panic("glimmer: nil runtime in NewEffect")
	}
	e := &Effect{rt: rt, fn: fn}
	e.tracker = newDepTracker(e)
	e.run()
	return e
}

// Dispose stops the effect: the last registered cleanups run, every
// dependency edge is detached, and invalidations no longer reach it.
// Dispose is idempotent.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.runCleanups()
	e.tracker.clear()
}

// run executes the body under tracking, re-collecting dependencies from
// scratch. Cleanups registered by the previous run fire first.
func (e *Effect) run() {
	if e.disposed {
		return
	}
	e.runCleanups()

	prevTracker := e.rt.startTracking(&e.tracker)
	prevEffect := e.rt.activeEffect
	e.rt.activeEffect = e
	e.fn()
	e.rt.activeEffect = prevEffect
	e.rt.endTracking(prevTracker)
}

// invalidate queues a re-run. A disposed effect ignores invalidation, and
// an effect already queued stays queued exactly once.
func (e *Effect) invalidate() {
	if e.disposed {
		return
	}
	e.rt.scheduleEffect(e)
}

func (e *Effect) runCleanups() {
	cleanups := e.cleanups
	e.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}
