// Package glimmer provides the reactive core of a terminal UI toolkit.
//
// Users import this single package for the complete public API: reactive
// state (State, Computed, Effect), the layout token and stack types, and
// the renderer that diffs cell buffers onto a terminal.
package glimmer
