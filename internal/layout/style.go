package layout

// Axis specifies the flow direction for laying out children.
type Axis uint8

const (
	AxisX Axis = iota // Children flow left-to-right
	AxisY             // Children flow top-to-bottom
)

// Cross returns the axis perpendicular to a.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Justify specifies how children are distributed along the flow axis.
type Justify uint8

const (
	JustifyStart   Justify = iota // Pack at start
	JustifyCenter                 // Center children
	JustifyEnd                    // Pack at end
	JustifyBetween                // Even space between, none at edges
	JustifyAround                 // Even space around each child
)

// String returns the justify mode name.
func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyCenter:
		return "center"
	case JustifyEnd:
		return "end"
	case JustifyBetween:
		return "between"
	case JustifyAround:
		return "around"
	default:
		return "unknown"
	}
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignCenter               // Center on cross axis
	AlignEnd                  // Align to end of cross axis
	AlignStretch              // Stretch to fill cross axis
)

// String returns the alignment name.
func (al Align) String() string {
	switch al {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// WeightAuto makes a grow or shrink weight derive from the node's dimension
// token: fill grows and shrinks with weight 1, fr grows by its share and
// shrinks with weight 1, percentages shrink with weight 1, everything else
// stays rigid.
const WeightAuto float64 = -1

// Style contains the layout properties of a node.
type Style struct {
	// Sizing tokens.
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Container properties.
	Axis    Axis
	Gap     int // Cells between children on the flow axis
	Justify Justify
	Align   Align

	// Item properties.
	AlignSelf *Align  // Override the parent's Align (nil = inherit)
	Grow      float64 // Explicit grow weight; WeightAuto derives from token
	Shrink    float64 // Explicit shrink weight; WeightAuto derives from token

	// Absolute positioning: the node leaves the flow and is placed at
	// Offset relative to the container's padded box.
	Absolute bool
	Offset   Point

	// Painting order hint carried through to the renderer.
	ZIndex int

	Padding Edges
}

// DefaultStyle returns a Style with the zero-configuration defaults:
// hug both axes, no bounds, weights derived from tokens, stretch alignment.
func DefaultStyle() Style {
	return Style{
		Width:     Hug(),
		Height:    Hug(),
		MinWidth:  Cells(0),
		MinHeight: Cells(0),
		MaxWidth:  None(),
		MaxHeight: None(),
		Align:     AlignStretch,
		Grow:      WeightAuto,
		Shrink:    WeightAuto,
	}
}

// value returns the dimension token for the given axis.
func (s Style) value(a Axis) Value {
	if a == AxisX {
		return s.Width
	}
	return s.Height
}

// minValue returns the minimum limit token for the given axis.
func (s Style) minValue(a Axis) Value {
	if a == AxisX {
		return s.MinWidth
	}
	return s.MinHeight
}

// maxValue returns the maximum limit token for the given axis.
func (s Style) maxValue(a Axis) Value {
	if a == AxisX {
		return s.MaxWidth
	}
	return s.MaxHeight
}

// alignFor returns the effective cross alignment for a child inside a
// container aligned with parentAlign.
func alignFor(parentAlign Align, child Style) Align {
	if child.AlignSelf != nil {
		return *child.AlignSelf
	}
	return parentAlign
}
