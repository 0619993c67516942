// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonvalue

// Kind identifies which alternative of the JSON union a [Value] holds.
type Kind uint8

const (
	// KindNull is the JSON null literal. It is the kind of the zero Value.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindInt is a number written without fraction or exponent.
	KindInt
	// KindDouble is a number written with a fraction or an exponent, or an
	// integer literal too large for int64.
	KindDouble
	// KindString is a JSON string.
	KindString
	// KindArray is an ordered sequence of values.
	KindArray
	// KindObject is a mapping from keys to values in insertion order.
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindDouble: "double",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is an immutable JSON value. The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *Map
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer JSON number.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Double returns a fractional JSON number.
func Double(f float64) Value { return Value{kind: KindDouble, f: f} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a JSON array holding elems. The slice is not copied and must
// not be modified afterwards.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// Object returns a JSON object backed by m. A nil map yields an empty object.
// The map must not be modified afterwards.
func Object(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindObject, obj: m}
}

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v. Fractional numbers are not converted,
// even when they are whole.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsDouble returns the fractional number held by v.
func (v Value) AsDouble() (float64, bool) { return v.f, v.kind == KindDouble }

// AsNumber returns v as a float64 when it holds either kind of number.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindDouble:
		return v.f, true
	}
	return 0, false
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns the elements held by v. Callers must not modify them.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the members held by v.
func (v Value) AsObject() (*Map, bool) { return v.obj, v.kind == KindObject }

// String renders v as compact JSON. A value that cannot be serialized
// (a non-finite double) renders as the serialization error in angle brackets.
func (v Value) String() string {
	b, err := Serialize(v)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}
