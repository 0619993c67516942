// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import (
	"strconv"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
)

// IntEnum returns a codec for an enum carried as a JSON integer. Only the
// listed members decode or encode; anything else, however plausible its
// numeric value, fails with [ErrInvalidEnumValue].
func IntEnum[E ~int](name string, members ...E) Codec[E] {
	set := make(map[E]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return intEnumCodec[E]{name: name, members: set}
}

type intEnumCodec[E ~int] struct {
	name    string
	members map[E]struct{}
}

func (c intEnumCodec[E]) Decode(v jsonvalue.Value) (E, error) {
	i, err := Int.Decode(v)
	if err != nil {
		return 0, err
	}
	e := E(i)
	if _, ok := c.members[e]; !ok {
		return 0, NewError(ErrInvalidEnumValue, c.name, strconv.Itoa(i))
	}
	return e, nil
}

func (c intEnumCodec[E]) Encode(e E) (jsonvalue.Value, error) {
	if _, ok := c.members[e]; !ok {
		return jsonvalue.Value{}, NewError(ErrInvalidEnumValue, c.name, strconv.Itoa(int(e)))
	}
	return jsonvalue.Int(int64(e)), nil
}

func (c intEnumCodec[E]) Accepts(k jsonvalue.Kind) bool { return k == jsonvalue.KindInt }
func (c intEnumCodec[E]) Name() string                  { return c.name }

// StringEnum returns a codec for an enum carried as a JSON string. Decoding a
// non-member fails with [ErrInvalidStringEnum]; encoding one fails with
// [ErrInvalidEnumValue].
func StringEnum[E ~string](name string, members ...E) Codec[E] {
	set := make(map[E]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return stringEnumCodec[E]{name: name, members: set}
}

type stringEnumCodec[E ~string] struct {
	name    string
	members map[E]struct{}
}

func (c stringEnumCodec[E]) Decode(v jsonvalue.Value) (E, error) {
	s, err := String.Decode(v)
	if err != nil {
		return "", err
	}
	e := E(s)
	if _, ok := c.members[e]; !ok {
		return "", NewError(ErrInvalidStringEnum, c.name, strconv.Quote(s))
	}
	return e, nil
}

func (c stringEnumCodec[E]) Encode(e E) (jsonvalue.Value, error) {
	if _, ok := c.members[e]; !ok {
		return jsonvalue.Value{}, NewError(ErrInvalidEnumValue, c.name, strconv.Quote(string(e)))
	}
	return jsonvalue.String(string(e)), nil
}

func (c stringEnumCodec[E]) Accepts(k jsonvalue.Kind) bool { return k == jsonvalue.KindString }
func (c stringEnumCodec[E]) Name() string                  { return c.name }
