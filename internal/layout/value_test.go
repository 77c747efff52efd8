package layout

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	type tc struct {
		input    string
		expected Value
	}

	tests := map[string]tc{
		"cells": {
			input:    "12",
			expected: Cells(12),
		},
		"zero cells": {
			input:    "0",
			expected: Cells(0),
		},
		"percent": {
			input:    "50%",
			expected: Percent(50),
		},
		"fractional percent": {
			input:    "33.5%",
			expected: Percent(33.5),
		},
		"fr": {
			input:    "2fr",
			expected: Fr(2),
		},
		"hug": {
			input:    "hug",
			expected: Hug(),
		},
		"fill": {
			input:    "fill",
			expected: Fill(),
		},
		"auto": {
			input:    "auto",
			expected: Auto(),
		},
		"lock is auto": {
			input:    "lock",
			expected: Auto(),
		},
		"none": {
			input:    "none",
			expected: None(),
		},
		"surrounding space": {
			input:    "  fill  ",
			expected: Fill(),
		},
		"mixed case keyword": {
			input:    "Fill",
			expected: Fill(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("ParseValue(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"negative cells": "-3",
		"negative pct":   "-10%",
		"zero fr":        "0fr",
		"word":           "wide",
		"bad number":     "1x2",
		"lone percent":   "%",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseValue(input)
			if err == nil {
				t.Fatalf("ParseValue(%q) expected error, got nil", input)
			}
			if !errors.Is(err, ErrBadToken) {
				t.Errorf("ParseValue(%q) error = %v, want ErrBadToken", input, err)
			}
		})
	}
}

func TestMustValue_PanicsOnBadToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustValue did not panic on a bad token")
		}
	}()
	MustValue("not-a-token")
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"cells ignore available": {
			value:     Cells(50),
			available: 100,
			fallback:  0,
			expected:  50,
		},
		"percent of available": {
			value:     Percent(25),
			available: 200,
			fallback:  0,
			expected:  50,
		},
		"percent truncates": {
			value:     Percent(33.33),
			available: 100,
			fallback:  0,
			expected:  33,
		},
		"percent unbounded falls back": {
			value:     Percent(50),
			available: Unbounded,
			fallback:  7,
			expected:  7,
		},
		"fill takes available": {
			value:     Fill(),
			available: 80,
			fallback:  0,
			expected:  80,
		},
		"fill unbounded falls back": {
			value:     Fill(),
			available: Unbounded,
			fallback:  12,
			expected:  12,
		},
		"hug falls back": {
			value:     Hug(),
			available: 100,
			fallback:  42,
			expected:  42,
		},
		"auto falls back": {
			value:     Auto(),
			available: 100,
			fallback:  42,
			expected:  42,
		},
		"fr falls back": {
			value:     Fr(1),
			available: 100,
			fallback:  42,
			expected:  42,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.available, tt.fallback)
			if got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d",
					tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestValue_String_RoundTrip(t *testing.T) {
	// String must be the inverse of ParseValue for every token kind.
	for _, v := range []Value{Cells(7), Percent(50), Fr(2), Hug(), Fill(), Auto(), None()} {
		got, err := ParseValue(v.String())
		if err != nil {
			t.Fatalf("ParseValue(%q) error: %v", v.String(), err)
		}
		if got != v {
			t.Errorf("ParseValue(%q) = %v, want %v", v.String(), got, v)
		}
	}
}

func TestValue_ZeroValueIsHug(t *testing.T) {
	var v Value
	if !v.IsContent() {
		t.Errorf("zero Value should be content-driven, got %v", v)
	}
	if v.Unit != UnitHug {
		t.Errorf("zero Value unit = %v, want UnitHug", v.Unit)
	}
}

func TestValue_Predicates(t *testing.T) {
	type tc struct {
		value     Value
		isContent bool
		isNone    bool
	}

	tests := map[string]tc{
		"hug":        {value: Hug(), isContent: true},
		"auto":       {value: Auto(), isContent: true},
		"cells":      {value: Cells(3)},
		"zero cells": {value: Cells(0)},
		"percent":    {value: Percent(50)},
		"fill":       {value: Fill()},
		"fr":         {value: Fr(1)},
		"none":       {value: None(), isNone: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsContent(); got != tt.isContent {
				t.Errorf("IsContent() = %v, want %v", got, tt.isContent)
			}
			if got := tt.value.IsNone(); got != tt.isNone {
				t.Errorf("IsNone() = %v, want %v", got, tt.isNone)
			}
		})
	}
}
