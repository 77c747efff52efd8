package glimmer

// GradientDirection selects how a gradient maps onto a filled rectangle.
type GradientDirection uint8

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical runs top to bottom.
	GradientVertical
	// GradientDiagonalDown runs top-left to bottom-right.
	GradientDiagonalDown
	// GradientDiagonalUp runs bottom-left to top-right.
	GradientDiagonalUp
)

// GradientStop is a color fixed at a position along the gradient.
// Pos is in [0, 1].
type GradientStop struct {
	Pos   float64
	Color Color
}

// Gradient is a sequence of color stops interpolated in RGB space. Stops
// must be sorted by position; the constructors take care of that.
type Gradient struct {
	Stops     []GradientStop
	Direction GradientDirection
}

// NewGradient creates a two-color horizontal gradient.
func NewGradient(from, to Color) Gradient {
	return Gradient{
		Stops: []GradientStop{
			{Pos: 0, Color: from},
			{Pos: 1, Color: to},
		},
	}
}

// MultiGradient creates a horizontal gradient with evenly spaced stops.
func MultiGradient(colors ...Color) Gradient {
	if len(colors) == 0 {
		return Gradient{}
	}
	if len(colors) == 1 {
		return NewGradient(colors[0], colors[0])
	}
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		stops[i] = GradientStop{
			Pos:   float64(i) / float64(len(colors)-1),
			Color: c,
		}
	}
	return Gradient{Stops: stops}
}

// WithDirection returns a copy of the gradient with the given direction.
func (g Gradient) WithDirection(d GradientDirection) Gradient {
	g.Direction = d
	return g
}

// Horizontal returns a copy of the gradient running left to right.
func (g Gradient) Horizontal() Gradient {
	g.Direction = GradientHorizontal
	return g
}

// Vertical returns a copy of the gradient running top to bottom.
func (g Gradient) Vertical() Gradient {
	g.Direction = GradientVertical
	return g
}

// DiagonalDown returns a copy of the gradient running top-left to
// bottom-right.
func (g Gradient) DiagonalDown() Gradient {
	g.Direction = GradientDiagonalDown
	return g
}

// DiagonalUp returns a copy of the gradient running bottom-left to
// top-right.
func (g Gradient) DiagonalUp() Gradient {
	g.Direction = GradientDiagonalUp
	return g
}

// At returns the gradient color at position t in [0, 1]. Values outside
// the range clamp to the nearest end. Positions sitting exactly on a stop
// yield that stop's color unchanged, so ANSI palette stops survive at the
// ends; positions between stops blend in RGB space.
func (g Gradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return DefaultColor()
	}
	first := g.Stops[0]
	if t <= first.Pos {
		return first.Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Pos {
		return last.Color
	}

	for i := 1; i < len(g.Stops); i++ {
		hi := g.Stops[i]
		if t > hi.Pos {
			continue
		}
		if t == hi.Pos {
			return hi.Color
		}
		lo := g.Stops[i-1]
		span := hi.Pos - lo.Pos
		if span <= 0 {
			return hi.Color
		}
		return lerpRGB(lo.Color, hi.Color, (t-lo.Pos)/span)
	}
	return last.Color
}

// lerpRGB blends two colors in RGB space.
func lerpRGB(from, to Color, frac float64) Color {
	blended := from.blendable().BlendRgb(to.blendable(), frac)
	r, g, b := blended.RGB255()
	return RGBColor(r, g, b)
}
