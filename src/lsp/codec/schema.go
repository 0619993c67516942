// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import (
	"fmt"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
)

// Field describes one member of a message of type T: its wire key, its
// codec, and which Go field of T it reads and writes.
type Field[T any] interface {
	// Key returns the wire key.
	Key() string
	decode(obj *jsonvalue.Map, dst *T) error
	encode(obj *jsonvalue.Map, src *T) error
}

// Required describes a field whose key must be present. The accessor at
// returns the address of the Go field, whose name is independent of key.
func Required[T, V any](key string, c Codec[V], at func(*T) *V) Field[T] {
	return requiredField[T, V]{key: key, codec: c, at: at}
}

type requiredField[T, V any] struct {
	key   string
	codec Codec[V]
	at    func(*T) *V
}

func (f requiredField[T, V]) Key() string { return f.key }

func (f requiredField[T, V]) decode(obj *jsonvalue.Map, dst *T) error {
	v, ok := obj.Get(f.key)
	if !ok {
		return &Error{Kind: ErrMissingField, Path: Path{Key(f.key)}, Expected: f.codec.Name()}
	}
	x, err := f.codec.Decode(v)
	if err != nil {
		return At(err, Key(f.key))
	}
	*f.at(dst) = x
	return nil
}

func (f requiredField[T, V]) encode(obj *jsonvalue.Map, src *T) error {
	v, err := f.codec.Encode(*f.at(src))
	if err != nil {
		return At(err, Key(f.key))
	}
	obj.Set(f.key, v)
	return nil
}

// OptionalField describes a field whose key may be absent. An explicit null
// decodes as absent; an absent value is never emitted.
func OptionalField[T, V any](key string, c Codec[V], at func(*T) *Optional[V]) Field[T] {
	return optionalField[T, V]{key: key, codec: c, at: at}
}

type optionalField[T, V any] struct {
	key   string
	codec Codec[V]
	at    func(*T) *Optional[V]
}

func (f optionalField[T, V]) Key() string { return f.key }

func (f optionalField[T, V]) decode(obj *jsonvalue.Map, dst *T) error {
	v, ok := obj.Get(f.key)
	if !ok || v.IsNull() {
		*f.at(dst) = None[V]()
		return nil
	}
	x, err := f.codec.Decode(v)
	if err != nil {
		return At(err, Key(f.key))
	}
	*f.at(dst) = Some(x)
	return nil
}

func (f optionalField[T, V]) encode(obj *jsonvalue.Map, src *T) error {
	x, ok := f.at(src).Get()
	if !ok {
		return nil
	}
	v, err := f.codec.Encode(x)
	if err != nil {
		return At(err, Key(f.key))
	}
	obj.Set(f.key, v)
	return nil
}

// ClearableField describes a field whose key may be absent and whose explicit
// null is kept as [Cleared].
func ClearableField[T, V any](key string, c Codec[V], at func(*T) *Clearable[V]) Field[T] {
	return clearableField[T, V]{key: key, codec: c, at: at}
}

type clearableField[T, V any] struct {
	key   string
	codec Codec[V]
	at    func(*T) *Clearable[V]
}

func (f clearableField[T, V]) Key() string { return f.key }

func (f clearableField[T, V]) decode(obj *jsonvalue.Map, dst *T) error {
	v, ok := obj.Get(f.key)
	switch {
	case !ok:
		*f.at(dst) = Clearable[V]{}
	case v.IsNull():
		*f.at(dst) = Clear[V]()
	default:
		x, err := f.codec.Decode(v)
		if err != nil {
			return At(err, Key(f.key))
		}
		*f.at(dst) = Set(x)
	}
	return nil
}

func (f clearableField[T, V]) encode(obj *jsonvalue.Map, src *T) error {
	c := f.at(src)
	switch c.State {
	case Cleared:
		obj.Set(f.key, jsonvalue.Null())
	case Present:
		v, err := f.codec.Encode(c.Value)
		if err != nil {
			return At(err, Key(f.key))
		}
		obj.Set(f.key, v)
	}
	return nil
}

// Schema converts between JSON objects and values of the message type T. A
// *Schema[T] is itself a Codec[*T], so schemas nest through [Object].
type Schema[T any] struct {
	name   string
	fields []Field[T]
}

// NewSchema returns a schema named name with fields in wire order. It panics
// on duplicate wire keys, which are programming errors in a message table.
func NewSchema[T any](name string, fields ...Field[T]) *Schema[T] {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Key()]; dup {
			panic(fmt.Sprintf("codec: schema %s declares key %q twice", name, f.Key()))
		}
		seen[f.Key()] = struct{}{}
	}
	return &Schema[T]{name: name, fields: fields}
}

// Object returns s as the codec of a nested message field.
func Object[T any](s *Schema[T]) Codec[*T] { return s }

// Name returns the message type name.
func (s *Schema[T]) Name() string { return s.name }

// Keys returns the wire keys in emission order.
func (s *Schema[T]) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key()
	}
	return keys
}

// Accepts reports whether k is an object.
func (s *Schema[T]) Accepts(k jsonvalue.Kind) bool { return k == jsonvalue.KindObject }

// Decode builds a new *T from a JSON object. Unknown keys are ignored.
func (s *Schema[T]) Decode(v jsonvalue.Value) (*T, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, typeError(s.name, v)
	}
	out := new(T)
	for _, f := range s.fields {
		if err := f.decode(obj, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Encode converts x to a JSON object. A nil x fails with [ErrNullPointer].
func (s *Schema[T]) Encode(x *T) (jsonvalue.Value, error) {
	if x == nil {
		return jsonvalue.Value{}, NewError(ErrNullPointer, s.name, "nil")
	}
	obj := jsonvalue.NewMap()
	for _, f := range s.fields {
		if err := f.encode(obj, x); err != nil {
			return jsonvalue.Value{}, err
		}
	}
	return jsonvalue.Object(obj), nil
}

// Unmarshal parses data and decodes it into a new *T.
func (s *Schema[T]) Unmarshal(data []byte, opts ...jsonvalue.ParseOption) (*T, error) {
	v, err := jsonvalue.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return s.Decode(v)
}

// UnmarshalInto decodes data into *dst, leaving dst untouched on failure.
func (s *Schema[T]) UnmarshalInto(data []byte, dst *T) error {
	x, err := s.Unmarshal(data)
	if err != nil {
		return err
	}
	*dst = *x
	return nil
}

// Marshal encodes x and renders it as compact JSON.
func (s *Schema[T]) Marshal(x *T) ([]byte, error) {
	v, err := s.Encode(x)
	if err != nil {
		return nil, err
	}
	return jsonvalue.Serialize(v)
}
