// Package layout implements a pure-Go flex-style layout engine for terminal UIs.
//
// It is a two-phase engine matching how container widgets measure and place
// their children. [Prepare] resolves a container's own dimension tokens
// against incoming constraints before children are measured; [Finalize]
// reconciles the container's size with measured child sizes into a
// [StackMeasurement]; [LayoutStack] is the placement pass, distributing free
// space to growable children (or reclaiming it from shrinkable ones) with an
// iterative fixed-point loop, then applying justify and align modes.
//
// The engine is purely functional over its inputs: the only state threaded
// between calls is the StackMeasurement snapshot, which is valid for a single
// frame. Types are re-exported through the root glimmer package for public
// consumption.
package layout
