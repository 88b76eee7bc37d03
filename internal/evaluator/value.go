package evaluator

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the variants a tracked value can take
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindList
	KindDict
	KindObject
)

// Value is one tracked value in the evaluation environment. Numbers carry
// an integer flag so output can distinguish 4 from 4.0 the way Python does.
type Value struct {
	Kind  Kind
	Num   float64
	IsInt bool
	Str   string
	List  []Value

	// Dict preserves insertion order via DictKeys
	DictKeys []string
	Dict     map[string]Value

	// Objects (datetime values) expose attributes and a display form
	Attrs   map[string]Value
	Display string
}

// NumberValue builds an integer or float number value
func NumberValue(n float64, isInt bool) Value {
	return Value{Kind: KindNumber, Num: n, IsInt: isInt}
}

// IntValue builds an integer number value
func IntValue(n int) Value {
	return Value{Kind: KindNumber, Num: float64(n), IsInt: true}
}

// FloatValue builds a float number value
func FloatValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// StringValue builds a string value
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Format renders the value the way Python's print would
func (v Value) Format() string {
	if v.Kind == KindString {
		return v.Str
	}
	return v.repr()
}

// repr renders the value the way Python shows it inside containers:
// strings keep their quotes
func (v Value) repr() string {
	switch v.Kind {
	case KindNumber:
		return formatNumber(v.Num, v.IsInt)
	case KindString:
		return "'" + v.Str + "'"
	case KindList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = item.repr()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindDict:
		parts := make([]string, len(v.DictKeys))
		for i, key := range v.DictKeys {
			parts[i] = "'" + key + "': " + v.Dict[key].repr()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindObject:
		return v.Display
	}
	return ""
}

// formatNumber matches Python's printing: integers bare, integral floats
// with a trailing .0, everything else in shortest form
func formatNumber(n float64, isInt bool) string {
	if isInt {
		return strconv.FormatInt(int64(n), 10)
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e16 {
		return strconv.FormatFloat(n, 'f', 1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
