// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package glimmer

import "github.com/glimmerui/glimmer/internal/layout"

// Axis specifies the flow direction for laying out children.
type Axis = layout.Axis

const (
	AxisX = layout.AxisX
	AxisY = layout.AxisY
)

// Justify specifies how children are distributed along the flow axis.
type Justify = layout.Justify

const (
	JustifyStart   = layout.JustifyStart
	JustifyCenter  = layout.JustifyCenter
	JustifyEnd     = layout.JustifyEnd
	JustifyBetween = layout.JustifyBetween
	JustifyAround  = layout.JustifyAround
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
	AlignStretch = layout.AlignStretch
)

// Value represents a dimension token (hug, cells, percent, fill, fr, auto,
// or none).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitHug     = layout.UnitHug
	UnitCells   = layout.UnitCells
	UnitPercent = layout.UnitPercent
	UnitFill    = layout.UnitFill
	UnitFr      = layout.UnitFr
	UnitAuto    = layout.UnitAuto
	UnitNone    = layout.UnitNone
)

// WeightAuto lets grow/shrink weights derive from the dimension token.
const WeightAuto = layout.WeightAuto

// Unbounded marks a constraint axis with no upper limit.
const Unbounded = layout.Unbounded

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Constraints is a min/max range per axis handed down during measurement.
type Constraints = layout.Constraints

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Child pairs a measured child size with its layout style for placement.
type Child = layout.Child

// Prepared is the first-phase output of stack measurement.
type Prepared = layout.Prepared

// StackMeasurement is the finalized measurement a container caches between
// its measure and layout phases.
type StackMeasurement = layout.StackMeasurement

// PlacedItem is one child's resolved rectangle.
type PlacedItem = layout.PlacedItem

// Placement is the result of placing all children of a stack.
type Placement = layout.Placement

// Parse errors, re-exported for callers matching with errors.Is.
var (
	ErrBadToken     = layout.ErrBadToken
	ErrBadShorthand = layout.ErrBadShorthand
)

// Hug creates a Value that shrinks to content.
func Hug() Value {
	return layout.Hug()
}

// Cells creates a Value with an absolute cell count.
func Cells(n int) Value {
	return layout.Cells(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Fill creates a Value that expands into remaining space.
func Fill() Value {
	return layout.Fill()
}

// Fr creates a Value taking a fractional share of remaining space.
func Fr(n float64) Value {
	return layout.Fr(n)
}

// Auto creates a Value that sizes to content without resizing.
func Auto() Value {
	return layout.Auto()
}

// None creates a limit Value with no bound.
func None() Value {
	return layout.None()
}

// ParseValue parses a dimension token such as "12", "50%", "2fr", or "hug".
func ParseValue(s string) (Value, error) {
	return layout.ParseValue(s)
}

// MustValue is ParseValue that panics on error, for static tokens.
func MustValue(s string) Value {
	return layout.MustValue(s)
}

// DefaultLayoutStyle returns a LayoutStyle with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// ParseEdges parses a CSS-style one-to-four part edge shorthand such as "1 2".
func ParseEdges(s string) (Edges, error) {
	return layout.ParseEdges(s)
}

// MustEdges is ParseEdges that panics on error, for static shorthands.
func MustEdges(s string) Edges {
	return layout.MustEdges(s)
}

// Loose creates Constraints with zero minimums and the given maximums.
func Loose(w, h int) Constraints {
	return layout.Loose(w, h)
}

// Tight creates Constraints that force an exact size.
func Tight(w, h int) Constraints {
	return layout.Tight(w, h)
}

// Unconstrained creates Constraints with no bounds on either axis.
func Unconstrained() Constraints {
	return layout.Unconstrained()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// SizeAlong builds a Size from a flow-axis component and a cross-axis component.
func SizeAlong(a Axis, flow, cross int) Size {
	return layout.SizeAlong(a, flow, cross)
}

// PrepareStack runs the first measurement phase for a stack container,
// deriving its candidate size and the constraints to hand each child.
func PrepareStack(c Constraints, st LayoutStyle) Prepared {
	return layout.Prepare(c, st)
}

// FinalizeStack runs the second measurement phase once children are
// measured, settling the container's outer and inner sizes.
func FinalizeStack(c Constraints, st LayoutStyle, candidate Size, children []Child) StackMeasurement {
	return layout.Finalize(c, st, candidate, children)
}

// LayoutStack places children inside a measured stack, applying grow,
// shrink, justify, and align.
func LayoutStack(origin Point, m StackMeasurement) Placement {
	return layout.LayoutStack(origin, m)
}
