package glimmer

// Box is the container widget: it stacks children along an axis using the
// layout engine, optionally drawing a background fill and a border around
// them. Visual style flows down: children inherit the box's foreground,
// background, and attributes for any field they leave unset.
type Box struct {
	layout      LayoutStyle
	style       Style
	bgGradient  *Gradient
	border      BorderStyle
	borderStyle *Style
	title       string
	children    []Widget

	m         StackMeasurement
	effective Style
	bounds    Rect
	placement Placement
}

// BoxOption configures a Box widget.
type BoxOption func(*Box)

// BoxLayout sets the layout style of the box.
func BoxLayout(ls LayoutStyle) BoxOption {
	return func(b *Box) {
		b.layout = ls
	}
}

// BoxStyle sets the visual style of the box. The background paints behind
// children; foreground and attributes are inherited by them.
func BoxStyle(s Style) BoxOption {
	return func(b *Box) {
		b.style = s
	}
}

// BoxBackgroundGradient paints the background with a gradient instead of
// a solid color.
func BoxBackgroundGradient(g Gradient) BoxOption {
	return func(b *Box) {
		b.bgGradient = &g
	}
}

// BoxBorder draws a border just inside the box edges. Children are inset
// by one cell on each side to make room.
func BoxBorder(bs BorderStyle) BoxOption {
	return func(b *Box) {
		b.border = bs
	}
}

// BoxBorderStyle overrides the style used for the border characters.
// Without it the border uses the box's effective style.
func BoxBorderStyle(s Style) BoxOption {
	return func(b *Box) {
		b.borderStyle = &s
	}
}

// BoxTitle centers a title in the top border. Ignored without a border.
func BoxTitle(title string) BoxOption {
	return func(b *Box) {
		b.title = title
	}
}

// NewBox creates a container widget.
func NewBox(opts ...BoxOption) *Box {
	b := &Box{
		layout: DefaultLayoutStyle(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends children and returns the box for chaining.
func (b *Box) Add(children ...Widget) *Box {
	b.children = append(b.children, children...)
	return b
}

// LayoutStyle returns the layout properties the parent should use for
// this widget.
func (b *Box) LayoutStyle() LayoutStyle {
	return b.layout
}

// Overflow reports how many cells of children did not fit along the flow
// axis in the last layout, after shrinking.
func (b *Box) Overflow() int {
	return b.placement.Overflow
}

// effectiveLayout folds the border into the layout padding so children
// never overlap the frame.
func (b *Box) effectiveLayout() LayoutStyle {
	st := b.layout
	if b.border != BorderNone {
		st.Padding.Top++
		st.Padding.Right++
		st.Padding.Bottom++
		st.Padding.Left++
	}
	return st
}

// Measure runs both stack measurement phases: derive child constraints,
// measure every child, then settle the box's own size. The measurement is
// cached for the layout phase.
func (b *Box) Measure(c Constraints, inherited Style) Size {
	b.effective = b.style.Merge(inherited)
	st := b.effectiveLayout()

	prepared := PrepareStack(c, st)

	kids := make([]Child, len(b.children))
	for i, w := range b.children {
		size := w.Measure(prepared.Inner, b.effective)
		kids[i] = Child{Size: size, Style: childLayoutStyle(w)}
	}

	b.m = FinalizeStack(c, st, prepared.Candidate, kids)
	return b.m.Outer
}

// Layout accepts the final bounds, re-settling the measurement if the
// parent assigned a different size than measured, then places children.
func (b *Box) Layout(origin Point, size Size) {
	if size != b.m.Outer {
		b.m = FinalizeStack(Tight(size.Width, size.Height), b.effectiveLayout(), size, b.m.Children)
	}
	b.bounds = NewRect(origin.X, origin.Y, size.Width, size.Height)
	b.placement = LayoutStack(origin, b.m)

	for _, item := range b.placement.Items {
		b.children[item.Index].Layout(item.Rect.Origin(), item.Rect.Size())
	}
}

// Paint emits, bottom to top: the background fill, the border, then every
// child with its z-order lifted by the box's own z-index.
func (b *Box) Paint() PaintOutput {
	var out PaintOutput
	z := b.layout.ZIndex

	if !b.effective.Bg.IsDefault() || b.bgGradient != nil {
		out.Rects = append(out.Rects, RectFill{
			Rect:     b.bounds,
			Style:    Style{Bg: b.effective.Bg},
			Z:        z,
			Gradient: b.bgGradient,
		})
	}

	if b.border != BorderNone {
		bs := b.effective
		if b.borderStyle != nil {
			bs = b.borderStyle.Merge(b.effective)
		}
		out.Spans = append(out.Spans, borderSpans(b.bounds, b.border, b.title, bs, z)...)
	}

	for _, item := range b.placement.Items {
		out.Append(b.children[item.Index].Paint(), z)
	}
	return out
}
