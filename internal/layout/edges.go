package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// ErrBadShorthand is returned by ParseEdges for malformed shorthand.
var ErrBadShorthand = errors.New("invalid edge shorthand")

// ParseEdges parses a CSS-style shorthand of one to four space-separated
// non-negative integers: "1" (all sides), "1 2" (vertical horizontal),
// "1 2 3" (top horizontal bottom), "1 2 3 4" (top right bottom left).
func ParseEdges(s string) (Edges, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Edges{}, fmt.Errorf("layout: %q: %w", s, ErrBadShorthand)
	}

	vals := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Edges{}, fmt.Errorf("layout: %q: %w", s, ErrBadShorthand)
		}
		vals[i] = n
	}

	switch len(vals) {
	case 1:
		return EdgeAll(vals[0]), nil
	case 2:
		return EdgeSymmetric(vals[0], vals[1]), nil
	case 3:
		return Edges{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[1]}, nil
	default:
		return EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	}
}

// MustEdges parses an edge shorthand and panics on error.
func MustEdges(s string) Edges {
	e, err := ParseEdges(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Along returns the summed inset on the given flow axis.
func (e Edges) Along(a Axis) int {
	if a == AxisX {
		return e.Horizontal()
	}
	return e.Vertical()
}

// Across returns the summed inset on the axis crossing a.
func (e Edges) Across(a Axis) int {
	if a == AxisX {
		return e.Vertical()
	}
	return e.Horizontal()
}

// Leading returns the start-side inset on the given flow axis
// (left for AxisX, top for AxisY).
func (e Edges) Leading(a Axis) int {
	if a == AxisX {
		return e.Left
	}
	return e.Top
}

// LeadingAcross returns the start-side inset on the axis crossing a.
func (e Edges) LeadingAcross(a Axis) int {
	if a == AxisX {
		return e.Top
	}
	return e.Left
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}
