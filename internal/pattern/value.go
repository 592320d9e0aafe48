package pattern

import "strings"

// Value is a single captured result: either one string or, for a trailing
// variadic token, the list of every remaining argument.
type Value struct {
	scalar   string
	vector   []string
	isVector bool
}

// Scalar wraps a single captured argument.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// Vector wraps a variadic capture. The slice is copied and never nil.
func Vector(items []string) Value {
	v := make([]string, len(items))
	copy(v, items)
	return Value{vector: v, isVector: true}
}

// IsVector reports whether the value came from a variadic token.
func (v Value) IsVector() bool {
	return v.isVector
}

// String returns the scalar value. Vectors are joined with single spaces.
func (v Value) String() string {
	if v.isVector {
		return strings.Join(v.vector, " ")
	}
	return v.scalar
}

// Strings returns the vector items, or a one-element slice for scalars.
func (v Value) Strings() []string {
	if !v.isVector {
		return []string{v.scalar}
	}
	out := make([]string, len(v.vector))
	copy(out, v.vector)
	return out
}

// Captures is the ordered list of values produced by a successful match,
// aligned with the pattern's non-literal tokens.
type Captures []Value

// String returns the i-th capture as a string, or "" when out of range.
func (c Captures) String(i int) string {
	if i < 0 || i >= len(c) {
		return ""
	}
	return c[i].String()
}

// Strings returns the i-th capture as a list, or nil when out of range.
func (c Captures) Strings(i int) []string {
	if i < 0 || i >= len(c) {
		return nil
	}
	return c[i].Strings()
}
