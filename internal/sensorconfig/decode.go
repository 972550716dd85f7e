package sensorconfig

import (
	"strconv"
	"strings"
)

// OptionalInt is an integer field value that may be absent. The zero value
// is absent.
type OptionalInt struct {
	value int64
	valid bool
}

// Some returns a present OptionalInt holding v.
func Some(v int64) OptionalInt {
	return OptionalInt{value: v, valid: true}
}

// Absent returns an OptionalInt with no value.
func Absent() OptionalInt {
	return OptionalInt{}
}

// Get returns the value and whether it is present.
func (o OptionalInt) Get() (int64, bool) {
	return o.value, o.valid
}

// IsAbsent reports whether no value is held.
func (o OptionalInt) IsAbsent() bool {
	return !o.valid
}

// Or returns the value, or fallback when absent.
func (o OptionalInt) Or(fallback int64) int64 {
	if !o.valid {
		return fallback
	}
	return o.value
}

// String renders the value in decimal, or "-" when absent.
func (o OptionalInt) String() string {
	if !o.valid {
		return "-"
	}
	return strconv.FormatInt(o.value, 10)
}

// MarshalYAML renders absent values as null.
func (o OptionalInt) MarshalYAML() (interface{}, error) {
	if !o.valid {
		return nil, nil
	}
	return o.value, nil
}

// ParseIntOrAbsent decodes a field value as an integer.
//
// The base is taken from the prefix (0x, 0o, 0b, otherwise decimal) and
// underscores between digits are allowed. Decimal numbers with redundant
// leading zeros such as "010" are rejected rather than read as octal. Any
// value that cannot be decoded yields Absent.
func ParseIntOrAbsent(text string) OptionalInt {
	s := strings.TrimSpace(text)
	if s == "" {
		return Absent()
	}

	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 {
		return Absent()
	}
	if len(digits) > 1 && digits[0] == '0' && isDecimalDigitOrUnderscore(digits[1]) {
		// "00" and "0_0" are zero; anything else with a leading zero would be octal.
		if strings.Trim(digits, "0_") != "" {
			return Absent()
		}
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return Absent()
	}
	return Some(v)
}

func isDecimalDigitOrUnderscore(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9')
}
