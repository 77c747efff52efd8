package glimmer

// Computed is a read-only signal derived from other signals. It is lazy:
// the producer function does not run until the first Get, and dependency
// invalidations only mark it dirty — re-evaluation happens at the next
// read, or through the scheduler when downstream observers depend on it.
// Dependencies are re-collected on every evaluation, so branches that
// stop being read stop invalidating the computed.
//
// Example:
//
//	first := glimmer.NewState(rt, "Ada")
//	last := glimmer.NewState(rt, "Lovelace")
//	full := glimmer.NewComputed(rt, func() string {
//	    return first.Get() + " " + last.Get()
//	})
//	full.Get() // "Ada Lovelace"
//
// There is deliberately no setter: read-only is enforced by the type.
type Computed[T comparable] struct {
	rt         *Runtime
	fn         func() T
	value      T
	dirty      bool
	evaluated  bool
	tracker    depTracker
	dependents []observer
	disposed   bool
}

// NewComputed creates a lazy computed signal owned by rt. fn runs under
// dependency tracking; it must be pure apart from reading other signals.
func NewComputed[T comparable](rt *Runtime, fn func() T) *Computed[T] {
	if rt == nil {
		panic("glimmer: nil runtime in NewComputed")
	}
	c := &Computed[T]{rt: rt, fn: fn, dirty: true}
	c.tracker = newDepTracker(c)
	return c
}

// Get returns the computed value, evaluating the producer if it has never
// run or a dependency has changed since the last run. Inside a tracked
// evaluation the caller becomes a dependent of this computed.
//
// Reading a disposed computed is a programming error and panics.
func (c *Computed[T]) Get() T {
	if c.disposed {
		panic("glimmer: read of disposed computed")
	}
	// Settle before linking the caller: a refresh triggered by this read
	// must wake only observers that saw the previous value, not the one
	// currently collecting its dependencies.
	if c.dirty {
		c.refresh()
	}
	c.rt.track(c)
	return c.value
}

// Peek returns the settled value without registering a dependency,
// evaluating first if dirty.
func (c *Computed[T]) Peek() T {
	if c.disposed {
		panic("glimmer: read of disposed computed")
	}
	if c.dirty {
		c.refresh()
	}
	return c.value
}

// Dirty reports whether a dependency has been invalidated since the last
// evaluation. A dirty computed re-evaluates on the next read.
func (c *Computed[T]) Dirty() bool {
	return c.dirty
}

// Dispose detaches the computed from its dependencies and dependents.
// Further reads panic.
func (c *Computed[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.tracker.clear()
	c.dependents = nil
}

// refresh re-evaluates the producer under tracking. Downstream observers
// are only invalidated when the value actually changed, so equal
// re-evaluations short-circuit exactly like equal State writes.
func (c *Computed[T]) refresh() {
	if !c.dirty || c.disposed {
		return
	}

	prev := c.rt.startTracking(&c.tracker)
	v := c.fn()
	c.rt.endTracking(prev)

	c.dirty = false
	changed := !c.evaluated || v != c.value
	c.evaluated = true
	c.value = v

	if changed {
		for _, o := range c.dependents {
			o.invalidate()
		}
	}
}

// invalidate marks the computed dirty. When downstream observers exist, a
// re-evaluation is scheduled so they settle during the flush's computed
// phase; without observers the computed stays lazily dirty until read.
func (c *Computed[T]) invalidate() {
	if c.dirty || c.disposed {
		return
	}
	c.dirty = true
	if len(c.dependents) > 0 {
		c.rt.scheduleRefresh(c)
	}
}

func (c *Computed[T]) addDependent(o observer) {
	c.dependents = append(c.dependents, o)
}

func (c *Computed[T]) removeDependent(o observer) {
	for i, d := range c.dependents {
		if d == o {
			c.dependents = append(c.dependents[:i], c.dependents[i+1:]...)
			return
		}
	}
}
