// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import "github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"

// Variant holds exactly one of two alternatives, or none when zero.
//
// The alternative is replaced as a whole by SetFirst or SetSecond: the caller
// builds the new value completely before it is installed, so a Variant is
// never left half-assigned. Encoding a Variant with no alternative fails with
// [ErrMissingVariantValue].
type Variant[A, B any] struct {
	first  A
	second B
	which  uint8
}

// VariantOfFirst returns a Variant holding a.
func VariantOfFirst[A, B any](a A) Variant[A, B] { return Variant[A, B]{first: a, which: 1} }

// VariantOfSecond returns a Variant holding b.
func VariantOfSecond[A, B any](b B) Variant[A, B] { return Variant[A, B]{second: b, which: 2} }

// SetFirst installs a as the active alternative.
func (v *Variant[A, B]) SetFirst(a A) {
	var zero B
	*v = Variant[A, B]{first: a, second: zero, which: 1}
}

// SetSecond installs b as the active alternative.
func (v *Variant[A, B]) SetSecond(b B) {
	var zero A
	*v = Variant[A, B]{first: zero, second: b, which: 2}
}

// First returns the first alternative and whether it is active.
func (v Variant[A, B]) First() (A, bool) { return v.first, v.which == 1 }

// Second returns the second alternative and whether it is active.
func (v Variant[A, B]) Second() (B, bool) { return v.second, v.which == 2 }

// IsEmpty reports whether no alternative is active.
func (v Variant[A, B]) IsEmpty() bool { return v.which == 0 }

// OneOf returns a codec for a two-way variant. Alternatives are tried in
// order by the kind of the incoming value; the first whose Accepts matches is
// decoded and its error, if any, is final.
func OneOf[A, B any](a Codec[A], b Codec[B]) Codec[Variant[A, B]] {
	return variantCodec[A, B]{a: a, b: b}
}

type variantCodec[A, B any] struct {
	a Codec[A]
	b Codec[B]
}

func (c variantCodec[A, B]) Decode(v jsonvalue.Value) (Variant[A, B], error) {
	switch k := v.Kind(); {
	case c.a.Accepts(k):
		x, err := c.a.Decode(v)
		if err != nil {
			return Variant[A, B]{}, err
		}
		return VariantOfFirst[A, B](x), nil
	case c.b.Accepts(k):
		x, err := c.b.Decode(v)
		if err != nil {
			return Variant[A, B]{}, err
		}
		return VariantOfSecond[A](x), nil
	}
	return Variant[A, B]{}, typeError(c.Name(), v)
}

func (c variantCodec[A, B]) Encode(x Variant[A, B]) (jsonvalue.Value, error) {
	switch x.which {
	case 1:
		return c.a.Encode(x.first)
	case 2:
		return c.b.Encode(x.second)
	}
	return jsonvalue.Value{}, NewError(ErrMissingVariantValue, c.Name(), "")
}

func (c variantCodec[A, B]) Accepts(k jsonvalue.Kind) bool { return c.a.Accepts(k) || c.b.Accepts(k) }
func (c variantCodec[A, B]) Name() string                  { return c.a.Name() + " or " + c.b.Name() }
