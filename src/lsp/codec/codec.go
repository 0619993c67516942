// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import (
	"math"
	"strconv"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
)

// Codec converts one field shape between JSON and Go.
type Codec[T any] interface {
	// Decode converts v, failing with an *Error when v does not fit.
	Decode(v jsonvalue.Value) (T, error)
	// Encode converts x, re-validating values that may have been modified
	// since construction.
	Encode(x T) (jsonvalue.Value, error)
	// Accepts reports whether a value of kind k has the head shape this codec
	// decodes. Variants use it to pick an alternative.
	Accepts(k jsonvalue.Kind) bool
	// Name describes the shape in error messages.
	Name() string
}

// Primitive codecs.
var (
	String     Codec[string]            = stringCodec{}
	Bool       Codec[bool]              = boolCodec{}
	Int        Codec[int]               = intCodec{}
	Double     Codec[float64]           = doubleCodec{}
	Raw        Codec[jsonvalue.Value]   = rawCodec{}
	NullMarker Codec[Null]              = nullCodec{}
	RawArray   Codec[[]jsonvalue.Value] = Array(Raw)
)

// Null is the explicit JSON null marker. It is distinct from an absent value.
type Null struct{}

type stringCodec struct{}

func (stringCodec) Decode(v jsonvalue.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", typeError("string", v)
	}
	return s, nil
}

func (stringCodec) Encode(s string) (jsonvalue.Value, error) { return jsonvalue.String(s), nil }
func (stringCodec) Accepts(k jsonvalue.Kind) bool            { return k == jsonvalue.KindString }
func (stringCodec) Name() string                             { return "string" }

type boolCodec struct{}

func (boolCodec) Decode(v jsonvalue.Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, typeError("bool", v)
	}
	return b, nil
}

func (boolCodec) Encode(b bool) (jsonvalue.Value, error) { return jsonvalue.Bool(b), nil }
func (boolCodec) Accepts(k jsonvalue.Kind) bool          { return k == jsonvalue.KindBool }
func (boolCodec) Name() string                           { return "bool" }

// intCodec rejects every fractional literal, including whole ones like 2.0.
type intCodec struct{}

func (intCodec) Decode(v jsonvalue.Value) (int, error) {
	i, ok := v.AsInt()
	if !ok || i < math.MinInt || i > math.MaxInt {
		return 0, typeError("int", v)
	}
	return int(i), nil
}

func (intCodec) Encode(i int) (jsonvalue.Value, error) { return jsonvalue.Int(int64(i)), nil }
func (intCodec) Accepts(k jsonvalue.Kind) bool         { return k == jsonvalue.KindInt }
func (intCodec) Name() string                          { return "int" }

type doubleCodec struct{}

func (doubleCodec) Decode(v jsonvalue.Value) (float64, error) {
	f, ok := v.AsNumber()
	if !ok {
		return 0, typeError("double", v)
	}
	return f, nil
}

func (doubleCodec) Encode(f float64) (jsonvalue.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return jsonvalue.Value{}, NewError(ErrJSONType, "finite double", strconv.FormatFloat(f, 'g', -1, 64))
	}
	return jsonvalue.Double(f), nil
}

func (doubleCodec) Accepts(k jsonvalue.Kind) bool {
	return k == jsonvalue.KindInt || k == jsonvalue.KindDouble
}

func (doubleCodec) Name() string { return "double" }

type rawCodec struct{}

func (rawCodec) Decode(v jsonvalue.Value) (jsonvalue.Value, error) { return v, nil }
func (rawCodec) Encode(v jsonvalue.Value) (jsonvalue.Value, error) { return v, nil }
func (rawCodec) Accepts(jsonvalue.Kind) bool                       { return true }
func (rawCodec) Name() string                                      { return "any" }

type nullCodec struct{}

func (nullCodec) Decode(v jsonvalue.Value) (Null, error) {
	if !v.IsNull() {
		return Null{}, typeError("null", v)
	}
	return Null{}, nil
}

func (nullCodec) Encode(Null) (jsonvalue.Value, error) { return jsonvalue.Null(), nil }
func (nullCodec) Accepts(k jsonvalue.Kind) bool        { return k == jsonvalue.KindNull }
func (nullCodec) Name() string                         { return "null" }

// Constant returns a codec for a string field that must always equal literal.
// Any other string fails with [ErrInvalidConstantValue] on decode and encode.
func Constant(literal string) Codec[string] { return constantCodec{literal: literal} }

type constantCodec struct{ literal string }

func (c constantCodec) Decode(v jsonvalue.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", typeError(strconv.Quote(c.literal), v)
	}
	if s != c.literal {
		return "", NewError(ErrInvalidConstantValue, strconv.Quote(c.literal), strconv.Quote(s))
	}
	return s, nil
}

func (c constantCodec) Encode(s string) (jsonvalue.Value, error) {
	if s != c.literal {
		return jsonvalue.Value{}, NewError(ErrInvalidConstantValue, strconv.Quote(c.literal), strconv.Quote(s))
	}
	return jsonvalue.String(s), nil
}

func (c constantCodec) Accepts(k jsonvalue.Kind) bool { return k == jsonvalue.KindString }
func (c constantCodec) Name() string                  { return strconv.Quote(c.literal) }

// Array returns a codec for a JSON array whose elements all use elem. The first
// failing element aborts decoding; its index is part of the error path.
func Array[T any](elem Codec[T]) Codec[[]T] { return arrayCodec[T]{elem: elem} }

type arrayCodec[T any] struct{ elem Codec[T] }

func (c arrayCodec[T]) Decode(v jsonvalue.Value) ([]T, error) {
	elems, ok := v.AsArray()
	if !ok {
		return nil, typeError(c.Name(), v)
	}
	out := make([]T, 0, len(elems))
	for i, e := range elems {
		x, err := c.elem.Decode(e)
		if err != nil {
			return nil, At(err, Index(i))
		}
		out = append(out, x)
	}
	return out, nil
}

func (c arrayCodec[T]) Encode(xs []T) (jsonvalue.Value, error) {
	out := make([]jsonvalue.Value, 0, len(xs))
	for i, x := range xs {
		v, err := c.elem.Encode(x)
		if err != nil {
			return jsonvalue.Value{}, At(err, Index(i))
		}
		out = append(out, v)
	}
	return jsonvalue.Array(out...), nil
}

func (c arrayCodec[T]) Accepts(k jsonvalue.Kind) bool { return k == jsonvalue.KindArray }
func (c arrayCodec[T]) Name() string                  { return "array of " + c.elem.Name() }
