// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import "github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"

// Optional holds the value of a field whose key may be absent.
//
// The zero Optional is absent. Decoding treats an explicit JSON null like an
// absent key, since some editors send null instead of omitting the member.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Valid: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.Value, o.Valid }

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.Valid {
		return o.Value
	}
	return def
}

// Presence is the state of a [Clearable] field.
type Presence uint8

const (
	// Absent means the key is not emitted.
	Absent Presence = iota
	// Cleared means the key is emitted with an explicit null.
	Cleared
	// Present means the key is emitted with Value.
	Present
)

// Clearable holds the value of an optional field whose explicit null carries
// meaning ("cleared") distinct from the key being absent ("not specified").
type Clearable[T any] struct {
	Value T
	State Presence
}

// Set returns a Clearable holding v.
func Set[T any](v T) Clearable[T] { return Clearable[T]{Value: v, State: Present} }

// Clear returns a Clearable carrying an explicit null.
func Clear[T any]() Clearable[T] { return Clearable[T]{State: Cleared} }

// Get returns the value and whether one is present.
func (c Clearable[T]) Get() (T, bool) { return c.Value, c.State == Present }

// IsCleared reports whether the field holds an explicit null.
func (c Clearable[T]) IsCleared() bool { return c.State == Cleared }

// Nullable holds the value of a required field that may be JSON null.
type Nullable[T any] struct {
	Value T
	Null  bool
}

// NullValue returns a Nullable holding null.
func NullValue[T any]() Nullable[T] { return Nullable[T]{Null: true} }

// ValueOf returns a non-null Nullable holding v.
func ValueOf[T any](v T) Nullable[T] { return Nullable[T]{Value: v} }

// Get returns the value and whether it is non-null.
func (n Nullable[T]) Get() (T, bool) { return n.Value, !n.Null }

// NullableOf returns a codec accepting either null or a value decoded by c.
func NullableOf[T any](c Codec[T]) Codec[Nullable[T]] { return nullableCodec[T]{inner: c} }

type nullableCodec[T any] struct{ inner Codec[T] }

func (c nullableCodec[T]) Decode(v jsonvalue.Value) (Nullable[T], error) {
	if v.IsNull() {
		return NullValue[T](), nil
	}
	x, err := c.inner.Decode(v)
	if err != nil {
		return Nullable[T]{}, err
	}
	return ValueOf(x), nil
}

func (c nullableCodec[T]) Encode(n Nullable[T]) (jsonvalue.Value, error) {
	if n.Null {
		return jsonvalue.Null(), nil
	}
	return c.inner.Encode(n.Value)
}

func (c nullableCodec[T]) Accepts(k jsonvalue.Kind) bool {
	return k == jsonvalue.KindNull || c.inner.Accepts(k)
}

func (c nullableCodec[T]) Name() string { return c.inner.Name() + " or null" }
