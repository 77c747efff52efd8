package glimmer

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// observer is the reactive side of a dependency edge: computeds and effects
// implement it to receive synchronous invalidation when a source changes.
type observer interface {
	invalidate()
}

// source is the readable side of a dependency edge: states and computeds
// implement it so observers can register and detach in both directions.
type source interface {
	addDependent(o observer)
	removeDependent(o observer)
}

// refresher is a queued computed re-evaluation.
type refresher interface {
	refresh()
}

// notifier is a queued signal subscriber notification.
type notifier interface {
	notify()
}

// Runtime owns one reactive dependency graph: the current-observer tracking
// stack, the batch depth counter, and the scheduler queues. Each rendering
// surface gets its own Runtime; two runtimes never share state, and a
// Runtime must only be used from a single goroutine.
type Runtime struct {
	activeTracker *depTracker
	activeEffect  *Effect
	pauseDepth    int
	batchDepth    int
	flushing      bool

	// Scheduler queues: ordered slices carry FIFO order, the paired sets
	// keep each entry queued at most once.
	queuedRefresh    []refresher
	queuedRefreshSet mapset.Set[refresher]
	queuedNotify     []notifier
	queuedNotifySet  mapset.Set[notifier]
	queuedEffects    []*Effect
	queuedEffectSet  mapset.Set[*Effect]
}

// NewRuntime creates an empty reactive runtime.
func NewRuntime() *Runtime {
	return &Runtime{
		queuedRefreshSet: mapset.NewThreadUnsafeSet[refresher](),
		queuedNotifySet:  mapset.NewThreadUnsafeSet[notifier](),
		queuedEffectSet:  mapset.NewThreadUnsafeSet[*Effect](),
	}
}

// Batch runs fn with writes coalesced: invalidation is recorded but the
// flush is deferred until the outermost batch returns. Pending work then
// flushes in a fixed order — dirty computeds, then signal subscriber
// notifications, then effects — each exactly once per batch no matter how
// many times it was invalidated inside. Batches nest.
func (rt *Runtime) Batch(fn func()) {
	rt.batchDepth++
	defer func() {
		rt.batchDepth--
		if rt.batchDepth == 0 {
			rt.flush()
		}
	}()
	fn()
}

// PauseTracking suspends dependency collection: reads between here and the
// matching ResumeTracking register nothing on the running observer.
func (rt *Runtime) PauseTracking() {
	rt.pauseDepth++
}

// ResumeTracking reverses one PauseTracking.
func (rt *Runtime) ResumeTracking() {
	if rt.pauseDepth > 0 {
		rt.pauseDepth--
	}
}

// Untracked reads fn without registering dependencies on the running
// observer. Render loops use it to read state they deliberately do not
// subscribe to.
func Untracked[T any](rt *Runtime, fn func() T) T {
	rt.PauseTracking()
	defer rt.ResumeTracking()
	return fn()
}

// OnCleanup registers fn on the currently running effect; it runs before
// the effect's next run and when the effect is disposed. Calling it outside
// an effect body is a programming error.
func (rt *Runtime) OnCleanup(fn func()) {
	if rt.activeEffect == nil {
		panic("glimmer: OnCleanup called outside an effect")
	}
	rt.activeEffect.cleanups = append(rt.activeEffect.cleanups, fn)
}

// track registers src as a dependency of the currently evaluating observer,
// if any. The edge is recorded on both sides so either can detach without
// scanning the graph.
func (rt *Runtime) track(src source) {
	t := rt.activeTracker
	if t == nil || rt.pauseDepth > 0 {
		return
	}
	if t.depSet.Add(src) {
		t.deps = append(t.deps, src)
		src.addDependent(t.owner)
	}
}

// startTracking makes t the active dependency collector after dropping its
// previous edges; dependencies are re-collected from scratch on every run
// so stale ones disappear. Returns the previous collector for endTracking.
func (rt *Runtime) startTracking(t *depTracker) *depTracker {
	prev := rt.activeTracker
	t.clear()
	rt.activeTracker = t
	return prev
}

// endTracking restores the previous dependency collector.
func (rt *Runtime) endTracking(prev *depTracker) {
	rt.activeTracker = prev
}

// The schedule helpers only queue; they never flush. Draining is driven by
// the write that caused the invalidation (State.Set at batch depth zero) or
// by the outermost Batch returning, so a whole propagation wave is queued
// before any of it runs.

func (rt *Runtime) scheduleRefresh(r refresher) {
	if rt.queuedRefreshSet.Add(r) {
		rt.queuedRefresh = append(rt.queuedRefresh, r)
	}
}

func (rt *Runtime) scheduleNotify(n notifier) {
	if rt.queuedNotifySet.Add(n) {
		rt.queuedNotify = append(rt.queuedNotify, n)
	}
}

func (rt *Runtime) scheduleEffect(e *Effect) {
	if rt.queuedEffectSet.Add(e) {
		rt.queuedEffects = append(rt.queuedEffects, e)
	}
}

// flush drains the scheduler. Computeds settle before any notification or
// effect observes them; work queued by the running phase re-enters the same
// drain, with the refresh queue always winning so the ordering invariant
// holds across cascades. Re-entrant calls (an effect writing a signal at
// batch depth zero) fold into the drain already in progress.
func (rt *Runtime) flush() {
	if rt.flushing || rt.batchDepth > 0 {
		return
	}
	rt.flushing = true
	defer func() { rt.flushing = false }()

	for {
		if len(rt.queuedRefresh) > 0 {
			r := rt.queuedRefresh[0]
			rt.queuedRefresh = rt.queuedRefresh[1:]
			rt.queuedRefreshSet.Remove(r)
			r.refresh()
			continue
		}
		if len(rt.queuedNotify) > 0 {
			n := rt.queuedNotify[0]
			rt.queuedNotify = rt.queuedNotify[1:]
			rt.queuedNotifySet.Remove(n)
			n.notify()
			continue
		}
		if len(rt.queuedEffects) > 0 {
			e := rt.queuedEffects[0]
			rt.queuedEffects = rt.queuedEffects[1:]
			rt.queuedEffectSet.Remove(e)
			e.run()
			continue
		}
		return
	}
}

// depTracker is the observer half of the dependency bookkeeping: the
// ordered dependency list plus a set for O(1) duplicate suppression while
// collecting. Owned by exactly one computed or effect.
type depTracker struct {
	owner  observer
	deps   []source
	depSet mapset.Set[source]
}

func newDepTracker(owner observer) depTracker {
	return depTracker{owner: owner, depSet: mapset.NewThreadUnsafeSet[source]()}
}

// clear detaches the owner from every dependency.
func (t *depTracker) clear() {
	for _, s := range t.deps {
		s.removeDependent(t.owner)
	}
	t.deps = t.deps[:0]
	t.depSet.Clear()
}
