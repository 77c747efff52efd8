package glimmer_test

import (
	"testing"

	"github.com/glimmerui/glimmer"
	"github.com/stretchr/testify/assert"
)

// should defer binding notification until the batch completes
func TestBatch_DefersBindings(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	runs := 0
	last := -1
	s.Bind(func(v int) {
		runs++
		last = v
	})

	rt.Batch(func() {
		s.Set(42)
		assert.Equal(t, 0, runs)
	})

	assert.Equal(t, 1, runs)
	assert.Equal(t, 42, last)
}

// should coalesce several writes to one state into a single notification
func TestBatch_CoalescesWrites(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	var got []int
	s.Bind(func(v int) { got = append(got, v) })

	rt.Batch(func() {
		s.Set(1)
		s.Set(2)
		s.Set(3)
	})

	assert.Equal(t, []int{3}, got)
}

// should expose intermediate values to reads inside the batch
func TestBatch_ReadsSeeWrites(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	rt.Batch(func() {
		s.Set(1)
		assert.Equal(t, 1, s.Get())
		s.Set(2)
		assert.Equal(t, 2, s.Get())
	})

	assert.Equal(t, 2, s.Get())
}

// should notify each written state exactly once
func TestBatch_MultipleStates(t *testing.T) {
	rt := glimmer.NewRuntime()
	a := glimmer.NewState(rt, 0)
	b := glimmer.NewState(rt, "")

	aRuns, bRuns := 0, 0
	a.Bind(func(int) { aRuns++ })
	b.Bind(func(string) { bRuns++ })

	rt.Batch(func() {
		a.Set(42)
		b.Set("hello")
	})

	assert.Equal(t, 1, aRuns)
	assert.Equal(t, 1, bRuns)
}

// should fire every binding on a state once, not just the first
func TestBatch_AllBindingsFire(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	first, second := 0, 0
	s.Bind(func(int) { first++ })
	s.Bind(func(int) { second++ })

	rt.Batch(func() {
		s.Set(1)
		s.Set(2)
	})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

// should flush only when the outermost batch exits
func TestBatch_Nested(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	runs := 0
	last := -1
	s.Bind(func(v int) {
		runs++
		last = v
	})

	rt.Batch(func() {
		s.Set(1)
		rt.Batch(func() {
			s.Set(2)
			rt.Batch(func() {
				s.Set(3)
			})
			assert.Equal(t, 0, runs)
		})
		assert.Equal(t, 0, runs)
	})

	assert.Equal(t, 1, runs)
	assert.Equal(t, 3, last)
}

// should run an effect once even when several of its dependencies change
func TestBatch_EffectRunsOnce(t *testing.T) {
	rt := glimmer.NewRuntime()
	a := glimmer.NewState(rt, 1)
	b := glimmer.NewState(rt, 2)

	runs := 0
	sum := 0
	glimmer.NewEffect(rt, func() {
		sum = a.Get() + b.Get()
		runs++
	})
	assert.Equal(t, 1, runs)

	rt.Batch(func() {
		a.Set(10)
		b.Set(20)
	})

	assert.Equal(t, 2, runs)
	assert.Equal(t, 30, sum)
}

// should be a no-op when nothing is written
func TestBatch_Empty(t *testing.T) {
	rt := glimmer.NewRuntime()
	rt.Batch(func() {})
}

// should leave the runtime usable between batches
func TestBatch_Sequential(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	runs := 0
	s.Bind(func(int) { runs++ })

	rt.Batch(func() { s.Set(1) })
	assert.Equal(t, 1, runs)

	rt.Batch(func() { s.Set(2) })
	assert.Equal(t, 2, runs)

	s.Set(3)
	assert.Equal(t, 3, runs)
}

// should recover batching after a panic inside the body
func TestBatch_PanicUnwindsDepth(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 0)

	runs := 0
	s.Bind(func(int) { runs++ })

	assert.Panics(t, func() {
		rt.Batch(func() {
			s.Set(1)
			panic("boom")
		})
	})

	rt.Batch(func() { s.Set(2) })

	assert.Equal(t, 2, s.Get())
	assert.GreaterOrEqual(t, runs, 1)
}

// should still notify when a batch ends on the original value
func TestBatch_NetZeroWriteStillNotifies(t *testing.T) {
	rt := glimmer.NewRuntime()
	s := glimmer.NewState(rt, 1)

	var got []int
	s.Bind(func(v int) { got = append(got, v) })

	// Each write changes the value at the time it lands, so the state is
	// queued; the flush then reports the final (original) value.
	rt.Batch(func() {
		s.Set(2)
		s.Set(1)
	})

	assert.Equal(t, []int{1}, got)
}
