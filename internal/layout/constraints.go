package layout

import "math"

// Unbounded marks a constraint axis with no upper bound.
const Unbounded = math.MaxInt32

// Constraints describes the box a node may size itself within: minimum and
// maximum extents per axis. Maxima of Unbounded mean "no limit". Tight
// constraints have min == max; loose constraints have min == 0.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Loose returns constraints allowing any size up to (w, h).
func Loose(w, h int) Constraints {
	return Constraints{MaxWidth: w, MaxHeight: h}
}

// Tight returns constraints admitting exactly (w, h).
func Tight(w, h int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// Unconstrained returns fully loose, unbounded constraints.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// HasBoundedWidth returns true if the width axis has an upper bound.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded
}

// HasBoundedHeight returns true if the height axis has an upper bound.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// IsTight returns true if the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// ClampWidth clamps w into [MinWidth, MaxWidth]. The minimum wins when the
// bounds conflict, matching CSS behavior.
func (c Constraints) ClampWidth(w int) int {
	if w > c.MaxWidth {
		w = c.MaxWidth
	}
	if w < c.MinWidth {
		w = c.MinWidth
	}
	return w
}

// ClampHeight clamps h into [MinHeight, MaxHeight].
func (c Constraints) ClampHeight(h int) int {
	if h > c.MaxHeight {
		h = c.MaxHeight
	}
	if h < c.MinHeight {
		h = c.MinHeight
	}
	return h
}

// Constrain clamps a size into the constraints on both axes.
func (c Constraints) Constrain(s Size) Size {
	return Size{Width: c.ClampWidth(s.Width), Height: c.ClampHeight(s.Height)}
}

// Min returns the minimum extent on the given axis.
func (c Constraints) Min(a Axis) int {
	if a == AxisX {
		return c.MinWidth
	}
	return c.MinHeight
}

// Max returns the maximum extent on the given axis.
func (c Constraints) Max(a Axis) int {
	if a == AxisX {
		return c.MaxWidth
	}
	return c.MaxHeight
}
