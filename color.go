package glimmer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color with support for default, ANSI 256, and
// true color. The zero value is the terminal default color, which emits no
// color escape at all when styled.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// namedColors maps color keywords to their fixed ANSI palette entries.
var namedColors = map[string]Color{
	"default":        {typ: ColorDefault},
	"black":          {typ: ColorANSI, r: 0},
	"red":            {typ: ColorANSI, r: 1},
	"green":          {typ: ColorANSI, r: 2},
	"yellow":         {typ: ColorANSI, r: 3},
	"blue":           {typ: ColorANSI, r: 4},
	"magenta":        {typ: ColorANSI, r: 5},
	"cyan":           {typ: ColorANSI, r: 6},
	"white":          {typ: ColorANSI, r: 7},
	"bright-black":   {typ: ColorANSI, r: 8},
	"gray":           {typ: ColorANSI, r: 8},
	"bright-red":     {typ: ColorANSI, r: 9},
	"bright-green":   {typ: ColorANSI, r: 10},
	"bright-yellow":  {typ: ColorANSI, r: 11},
	"bright-blue":    {typ: ColorANSI, r: 12},
	"bright-magenta": {typ: ColorANSI, r: 13},
	"bright-cyan":    {typ: ColorANSI, r: 14},
	"bright-white":   {typ: ColorANSI, r: 15},
}

// ParseColor parses a color token. Accepted forms:
//
//	"red", "bright-blue", "default"  named ANSI colors
//	"#f80", "#ff8800"                hex true colors
//	"123"                            ANSI 256 palette index
//
// Unrecognized tokens return a descriptive error.
func ParseColor(s string) (Color, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if c, ok := namedColors[token]; ok {
		return c, nil
	}

	if strings.HasPrefix(token, "#") {
		return HexColor(token)
	}

	if idx, err := strconv.ParseUint(token, 10, 8); err == nil {
		return ANSIColor(uint8(idx)), nil
	}

	return Color{}, fmt.Errorf("unrecognized color %q", s)
}

// MustColor is ParseColor that panics on error, for static color literals.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("glimmer: " + err.Error())
	}
	return c
}

// HexColor parses a hex color string into a true color.
// Supported formats: "#RRGGBB" and "#RGB".
func HexColor(hex string) (Color, error) {
	raw := strings.TrimPrefix(hex, "#")

	switch len(raw) {
	case 6:
		v, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", hex)
		}
		return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case 3:
		v, err := strconv.ParseUint(raw, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", hex)
		}
		// Expand each nibble to a byte: 0xF -> 0xFF.
		r := uint8(v >> 8 & 0xF)
		g := uint8(v >> 4 & 0xF)
		b := uint8(v & 0xF)
		return RGBColor(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", hex)
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the ANSI palette index, or 0 if the color is not an ANSI
// color. Use ANSIValue to distinguish palette index 0 from a wrong-type
// zero.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		return 0
	}
	return c.r
}

// RGB returns the red, green, and blue components, or zeros if the color
// is not an RGB color. Use RGBValue to distinguish black from a
// wrong-type zero.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		return 0, 0, 0
	}
	return c.r, c.g, c.b
}

// ANSIValue returns the ANSI palette index and whether the color is an
// ANSI color.
func (c Color) ANSIValue() (uint8, bool) {
	if c.typ != ColorANSI {
		return 0, false
	}
	return c.r, true
}

// RGBValue returns the color components and whether the color is an RGB
// color.
func (c Color) RGBValue() (r, g, b uint8, ok bool) {
	if c.typ != ColorRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.r == other.r
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b
	}
	return false
}

// String returns the token form of the color, the inverse of ParseColor
// where one exists.
func (c Color) String() string {
	switch c.typ {
	case ColorDefault:
		return "default"
	case ColorANSI:
		return strconv.Itoa(int(c.r))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "default"
}

// ToANSI approximates an RGB color to the nearest ANSI 256 palette entry.
// Uses the 6x6x6 color cube (indices 16-231) plus grayscale (232-255).
// Returns the color unchanged if it is already ANSI or default.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		// Grayscale ramp: 232-255 (24 shades). The extremes are closer to
		// the cube's black and white corners.
		if r < 8 {
			return ANSIColor(16)
		}
		if r > 248 {
			return ANSIColor(231)
		}
		gray := uint8(232 + (int(r)-8)*24/240)
		return ANSIColor(gray)
	}

	// 6x6x6 color cube: 16-231, each component mapped to 0-5.
	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255

	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// Bright ANSI colors (high-intensity variants).
var (
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
// These are typical emulator values; actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI palette entries are approximated; the default color reports black.
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorDefault:
		return 0, 0, 0
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		if idx < 16 {
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		}
		if idx < 232 {
			// 6x6x6 color cube: index = 16 + 36r + 6g + b with r,g,b in 0-5.
			idx -= 16
			cube := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return cube(idx / 36), cube((idx % 36) / 6), cube(idx % 6)
		}
		// Grayscale ramp, 24 shades.
		gray := 8 + (idx-232)*10
		return gray, gray, gray
	}
	return 0, 0, 0
}

// blendable converts the color to a colorful.Color for interpolation and
// luminance math.
func (c Color) blendable() colorful.Color {
	r, g, b := c.ToRGBValues()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Luminance returns the relative luminance of the color in [0, 1] (the Y
// component of CIE XYZ). The default color reports 0, assuming a dark
// terminal background.
func (c Color) Luminance() float64 {
	if c.typ == ColorDefault {
		return 0.0
	}
	_, y, _ := c.blendable().Xyz()
	return y
}

// IsLight returns true if the color is perceptually light, using a
// luminance threshold of 0.5 (middle gray).
func (c Color) IsLight() bool {
	return c.Luminance() > 0.5
}
