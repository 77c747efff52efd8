package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitHug     Unit = iota // Shrink to content
	UnitCells               // Absolute terminal cells
	UnitPercent             // Percentage of the container's resolved space
	UnitFill                // Expand into remaining space
	UnitFr                  // Fractional share of remaining space
	UnitAuto                // Content-driven, non-resizing
	UnitNone                // Limit tokens only: no bound
)

// Value represents a dimension token: a fixed cell count, hug, fill,
// percentage, fractional share, auto, or (for limit tokens) none.
type Value struct {
	Amount float64
	Unit   Unit
}

// Hug returns a Value that sizes to its content.
func Hug() Value {
	return Value{Unit: UnitHug}
}

// Cells returns a Value representing an absolute number of terminal cells.
func Cells(n int) Value {
	return Value{Amount: float64(n), Unit: UnitCells}
}

// Percent returns a Value representing a percentage of the container's
// resolved space. The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Fill returns a Value that expands into remaining space.
func Fill() Value {
	return Value{Unit: UnitFill}
}

// Fr returns a Value sharing remaining space proportionally to n.
// Fr items start from a zero basis, unlike Fill items which start from
// their intrinsic size.
func Fr(n float64) Value {
	return Value{Amount: n, Unit: UnitFr}
}

// Auto returns a content-driven, non-resizing Value. It measures like Hug
// but never participates in grow or shrink distribution.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// None returns the "no bound" Value, valid only for min/max limit tokens.
func None() Value {
	return Value{Unit: UnitNone}
}

// ErrBadToken is returned by ParseValue for unparseable dimension tokens.
var ErrBadToken = errors.New("unparseable dimension token")

// ParseValue parses a dimension token from its textual form: an integer
// cell count ("12"), a percentage ("50%"), a fractional share ("2fr"), or
// one of the keywords "hug", "fill", "auto", "lock" and "none". A malformed
// token indicates a construction bug, so callers typically treat the error
// as fatal.
func ParseValue(s string) (Value, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "hug":
		return Hug(), nil
	case "fill":
		return Fill(), nil
	case "auto", "lock":
		return Auto(), nil
	case "none":
		return None(), nil
	case "":
		return Value{}, fmt.Errorf("layout: empty dimension token: %w", ErrBadToken)
	}

	if p, ok := strings.CutSuffix(t, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || f < 0 {
			return Value{}, fmt.Errorf("layout: %q: %w", s, ErrBadToken)
		}
		return Percent(f), nil
	}
	if p, ok := strings.CutSuffix(t, "fr"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || f <= 0 {
			return Value{}, fmt.Errorf("layout: %q: %w", s, ErrBadToken)
		}
		return Fr(f), nil
	}

	n, err := strconv.Atoi(t)
	if err != nil || n < 0 {
		return Value{}, fmt.Errorf("layout: %q: %w", s, ErrBadToken)
	}
	return Cells(n), nil
}

// MustValue parses a dimension token and panics on error. It is intended
// for literals, in the manner of regexp.MustCompile.
func MustValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Resolve computes the actual integer value given available space.
// Content-driven units (hug, auto) and units that only make sense inside a
// stack (fr) resolve to the fallback value, as does fill when available
// space is unbounded.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitCells:
		return int(v.Amount)
	case UnitPercent:
		if available >= Unbounded {
			return fallback
		}
		return int(float64(available) * v.Amount / 100.0)
	case UnitFill:
		if available >= Unbounded {
			return fallback
		}
		return available
	default:
		return fallback
	}
}

// IsContent returns true if this value sizes from content (hug or auto).
func (v Value) IsContent() bool {
	return v.Unit == UnitHug || v.Unit == UnitAuto
}

// IsNone returns true for the "no bound" limit token. The zero Amount
// cells token is distinct: Cells(0) is a real bound of zero.
func (v Value) IsNone() bool {
	return v.Unit == UnitNone
}

// String returns the textual form of the token, the inverse of ParseValue.
func (v Value) String() string {
	switch v.Unit {
	case UnitHug:
		return "hug"
	case UnitCells:
		return strconv.Itoa(int(v.Amount))
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	case UnitFill:
		return "fill"
	case UnitFr:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "fr"
	case UnitAuto:
		return "auto"
	case UnitNone:
		return "none"
	default:
		return fmt.Sprintf("Value(%d)", v.Unit)
	}
}
