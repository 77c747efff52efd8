package glimmer

import (
	"github.com/glimmerui/glimmer/internal/debug"
)

// State wraps a writable value in the reactive graph. Reads inside a
// computed or effect register a dependency; writes invalidate dependents
// synchronously and notify bound subscribers through the scheduler.
//
// Example usage:
//
//	rt := glimmer.NewRuntime()
//	count := glimmer.NewState(rt, 0)
//	count.Bind(func(v int) {
//	    fmt.Println("count is now", v)
//	})
//	count.Set(count.Get() + 1) // invalidates dependents, notifies the binding
//
// Writes of an equal value are a no-op. A State must only be used from the
// goroutine that owns its Runtime.
type State[T comparable] struct {
	rt         *Runtime
	value      T
	dependents []observer
	bindings   []*binding[T]
	nextBindID uint64
	disposed   bool
}

// binding represents a registered callback that fires when state changes.
type binding[T comparable] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent future
// callback invocations for the associated binding.
type Unbind func()

// NewState creates a writable signal owned by rt with the given initial
// value. The type T is inferred from the initial value and must be
// comparable so equal writes can short-circuit.
func NewState[T comparable](rt *Runtime, initial T) *State[T] {
	if rt == nil {
		panic("glimmer: nil runtime in NewState")
	}
	return &State[T]{rt: rt, value: initial}
}

// Get returns the current value. When called during a tracked evaluation
// (inside a computed or effect body) it registers the caller as a
// dependent of this state.
func (s *State[T]) Get() T {
	s.rt.track(s)
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *State[T]) Peek() T {
	return s.value
}

// Set updates the value. Writing a value equal to the current one is a
// no-op. Otherwise dependents are invalidated synchronously and one
// coalesced subscriber notification is scheduled; at batch depth zero the
// scheduler drains before Set returns, inside a Batch it drains when the
// outermost batch exits.
//
// Writing a disposed state is a programming error and panics.
func (s *State[T]) Set(v T) {
	if s.disposed {
		panic("glimmer: write to disposed state")
	}
	if v == s.value {
		return
	}

	debug.Log("State.Set: %v -> %v (%d dependents, %d bindings)",
		s.value, v, len(s.dependents), len(s.bindings))
	s.value = v

	for _, o := range s.dependents {
		o.invalidate()
	}
	if len(s.bindings) > 0 {
		s.rt.scheduleNotify(s)
	}
	if s.rt.batchDepth == 0 {
		s.rt.flush()
	}
}

// Update applies fn to the current value and sets the result. This is a
// convenience for read-modify-write operations.
//
// Example:
//
//	count.Update(func(v int) int { return v + 1 })
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Peek()))
}

// Bind registers a function to be called after the value changes. Returns
// an Unbind handle to remove the binding.
//
// Bindings observe settled values: they run after dirty computeds have
// re-evaluated and before effects, and a batch of writes produces exactly
// one call carrying the final value. Bindings are executed in registration
// order. Binding a disposed state is a no-op.
func (s *State[T]) Bind(fn func(T)) Unbind {
	if s.disposed {
		return func() {}
	}

	s.nextBindID++
	b := &binding[T]{id: s.nextBindID, fn: fn, active: true}
	s.bindings = append(s.bindings, b)

	return func() {
		b.active = false
	}
}

// Dispose detaches the state from the graph: subscribers are cleared,
// dependents are dropped, and any further Set panics. Reads remain valid
// and return the last value.
func (s *State[T]) Dispose() {
	s.disposed = true
	s.bindings = nil
	s.dependents = nil
}

// notify runs the bound subscriber callbacks with the current value,
// pruning bindings that were unbound since the last notification.
func (s *State[T]) notify() {
	active := s.bindings[:0]
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active

	v := s.value
	for _, b := range active {
		b.fn(v)
	}
}

func (s *State[T]) addDependent(o observer) {
	s.dependents = append(s.dependents, o)
}

func (s *State[T]) removeDependent(o observer) {
	for i, d := range s.dependents {
		if d == o {
			s.dependents = append(s.dependents[:i], s.dependents[i+1:]...)
			return
		}
	}
}
