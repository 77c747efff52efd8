package glimmer

import "sort"

// Widget is the contract between the renderer and anything paintable.
//
// The renderer drives three phases per frame, in order:
//
//  1. Measure: given constraints and the inherited visual style, report the
//     size the widget wants. Containers measure children here and may cache
//     intermediate results for the layout phase.
//  2. Layout: accept the final origin and size assigned by the parent.
//     Positions are absolute terminal coordinates.
//  3. Paint: emit styled spans and filled rectangles at absolute positions.
//
// A widget must not assume Layout is called with the size it reported;
// parents may grow or shrink it.
type Widget interface {
	Measure(c Constraints, inherited Style) Size
	Layout(origin Point, size Size)
	Paint() PaintOutput
}

// Span is a run of styled text at an absolute position.
type Span struct {
	Pos   Point
	Text  string
	Style Style
	Z     int

	// Gradient, when set, colors the text per-character instead of Style.Fg.
	Gradient *Gradient
}

// RectFill is a filled rectangle at an absolute position. A zero Rune
// fills with spaces, which makes the fill a pure background layer.
type RectFill struct {
	Rect  Rect
	Style Style
	Z     int
	Rune  rune

	// Gradient, when set, colors the background across the rectangle
	// instead of Style.Bg.
	Gradient *Gradient
}

// PaintOutput is everything one widget subtree wants drawn.
type PaintOutput struct {
	Spans []Span
	Rects []RectFill
}

// Append merges another paint output into this one, offsetting its z-order
// by dz. Containers use it to accumulate children beneath their own
// z-index.
func (p *PaintOutput) Append(other PaintOutput, dz int) {
	for _, r := range other.Rects {
		r.Z += dz
		p.Rects = append(p.Rects, r)
	}
	for _, s := range other.Spans {
		s.Z += dz
		p.Spans = append(p.Spans, s)
	}
}

// paintOp is one rasterization step: either a rect fill or a span.
type paintOp struct {
	z      int
	isRect bool
	rect   RectFill
	span   Span
}

// orderOps flattens paint output into a single draw list sorted by
// z-order. Within one PaintOutput rects precede spans, so at equal z a
// span paints over the rectangle behind it; ties across widgets keep
// source order. Sorting is stable so insertion order is the tiebreak.
func orderOps(p PaintOutput) []paintOp {
	ops := make([]paintOp, 0, len(p.Rects)+len(p.Spans))
	for _, r := range p.Rects {
		ops = append(ops, paintOp{z: r.Z, isRect: true, rect: r})
	}
	for _, s := range p.Spans {
		ops = append(ops, paintOp{z: s.Z, span: s})
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].z < ops[j].z
	})
	return ops
}

// rasterize draws an ordered op list into a fresh buffer covering bounds.
// Ops are in absolute coordinates; the buffer is local to bounds. Anything
// outside bounds is clipped.
func rasterize(ops []paintOp, bounds Rect) *Buffer {
	buf := NewBuffer(bounds.Width, bounds.Height)
	for _, op := range ops {
		if op.isRect {
			r := op.rect
			local := r.Rect.Translate(-bounds.X, -bounds.Y)
			fill := r.Rune
			if fill == 0 {
				fill = ' '
			}
			if r.Gradient != nil {
				buf.FillGradient(local, fill, *r.Gradient, r.Style)
			} else {
				buf.Fill(local, fill, r.Style)
			}
			continue
		}
		s := op.span
		x := s.Pos.X - bounds.X
		y := s.Pos.Y - bounds.Y
		if s.Gradient != nil {
			buf.SetStringGradient(x, y, s.Text, *s.Gradient, s.Style)
		} else {
			buf.SetString(x, y, s.Text, s.Style)
		}
	}
	return buf
}

// layoutStyled is implemented by widgets that carry layout properties.
// Containers consult it when measuring children; widgets without one get
// the default style.
type layoutStyled interface {
	LayoutStyle() LayoutStyle
}

// childLayoutStyle returns the layout style a widget advertises, or the
// default when it has none.
func childLayoutStyle(w Widget) LayoutStyle {
	if ls, ok := w.(layoutStyled); ok {
		return ls.LayoutStyle()
	}
	return DefaultLayoutStyle()
}
