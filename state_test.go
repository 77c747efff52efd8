package glimmer_test

import (
	"testing"

	"github.com/glimmerui/glimmer"
	"github.com/stretchr/testify/assert"
)

// should hold the initial value until written
func TestState_InitialValue(t *testing.T) {
	tests := map[string]struct {
		initial int
	}{
		"zero value":     {initial: 0},
		"positive value": {initial: 42},
		"negative value": {initial: -10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rt := glimmer.NewRuntime()
			s := glimmer.NewState(rt, tt.initial)
			assert.Equal(t, tt.initial, s.Get())
		})
	}
}

// should infer the value type from the initial value
func TestState_TypeInference(t *testing.T) {
	rt := glimmer.NewRuntime()

	t.Run("string", func(t *testing.T) {
		s := glimmer.NewState(rt, "hello")
		assert.Equal(t, "hello", s.Get())
	})

	t.Run("bool", func(t *testing.T) {
		s := glimmer.NewState(rt, true)
		assert.True(t, s.Get())
	})

	t.Run("struct", func(t *testing.T) {
		type point struct{ X, Y int }
		s := glimmer.NewState(rt, point{X: 3, Y: 4})
		assert.Equal(t, point{X: 3, Y: 4}, s.Get())
	})
}

// should reject a nil runtime up front
func TestState_NilRuntime(t *testing.T) {
	assert.PanicsWithValue(t, "glimmer: nil runtime in NewState", func() {
		glimmer.NewState[int](nil, 0)
	})
}

// should store the written value
func TestState_Set(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	s.Set(42)

	assert.Equal(t, 42, s.Get())
}

// should skip propagation entirely when the written value equals the current one
func TestState_SetEqualValueShortCircuits(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 7)

	bindRuns := 0
	s.Bind(func(int) { bindRuns++ })

	effectRuns := 0
	glimmer.NewEffect(rt, func() {
		s.Get()
		effectRuns++
	})
	assert.Equal(t, 1, effectRuns)

	s.Set(7)
	s.Set(7)

	assert.Equal(t, 0, bindRuns)
	assert.Equal(t, 1, effectRuns)

	s.Set(8)
	assert.Equal(t, 1, bindRuns)
	assert.Equal(t, 2, effectRuns)
}

// should apply the function to the current value
func TestState_Update(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 10)

	s.Update(func(v int) int { return v + 5 })

	assert.Equal(t, 15, s.Get())
}

// should notify bindings with the new value, not on registration
func TestState_Bind(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	var got []int
	s.Bind(func(v int) { got = append(got, v) })
	assert.Empty(t, got)

	s.Set(1)
	s.Set(2)
	s.Set(3)

	assert.Equal(t, []int{1, 2, 3}, got)
}

// should call bindings in registration order
func TestState_BindOrder(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	var order []int
	s.Bind(func(int) { order = append(order, 1) })
	s.Bind(func(int) { order = append(order, 2) })
	s.Bind(func(int) { order = append(order, 3) })

	s.Set(42)

	assert.Equal(t, []int{1, 2, 3}, order)
}

// should stop notifying after unbind and leave other bindings alone
func TestState_Unbind(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	var calls []int
	s.Bind(func(int) { calls = append(calls, 1) })
	unbind := s.Bind(func(int) { calls = append(calls, 2) })
	s.Bind(func(int) { calls = append(calls, 3) })

	s.Set(1)
	assert.Equal(t, []int{1, 2, 3}, calls)

	calls = nil
	unbind()

	s.Set(2)
	assert.Equal(t, []int{1, 3}, calls)
}

// should tolerate unbind being called more than once
func TestState_UnbindIdempotent(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	runs := 0
	unbind := s.Bind(func(int) { runs++ })

	unbind()
	unbind()
	unbind()

	s.Set(1)
	assert.Equal(t, 0, runs)
}

// should allow a binding to read the state it is bound to
func TestState_BindingReadsOwnState(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	observed := -1
	s.Bind(func(int) { observed = s.Peek() })

	s.Set(42)

	assert.Equal(t, 42, observed)
}

// should work with no bindings attached
func TestState_SetWithoutBindings(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	s.Set(42)

	assert.Equal(t, 42, s.Get())
}

// should keep reads valid after dispose but panic on writes
func TestState_Dispose(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 5)

	runs := 0
	s.Bind(func(int) { runs++ })

	s.Dispose()

	assert.Equal(t, 5, s.Get())
	assert.Equal(t, 5, s.Peek())
	assert.PanicsWithValue(t, "glimmer: write to disposed state", func() {
		s.Set(6)
	})
	assert.Equal(t, 0, runs)
}

// should return a no-op unbind when binding a disposed state
func TestState_BindAfterDispose(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 5)
	s.Dispose()

	unbind := s.Bind(func(int) { t.Fatal("binding on disposed state must never fire") })
	unbind()
}

// should detach a disposed state from its observers
func TestState_DisposeDetachesObservers(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 1)
	other := glimmer.NewState(rt, 1)

	runs := 0
	glimmer.NewEffect(rt, func() {
		s.Get()
		other.Get()
		runs++
	})
	assert.Equal(t, 1, runs)

	s.Dispose()

	// The sibling dependency still drives the effect.
	other.Set(2)
	assert.Equal(t, 2, runs)
}
