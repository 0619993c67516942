// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import (
	"math"
	"testing"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(text))
	require.NoError(t, err)
	return v
}

func TestScalarDecode(t *testing.T) {
	tests := []struct {
		name    string
		decode  func(jsonvalue.Value) (any, error)
		input   string
		want    any
		wantErr error
	}{
		{name: "string", decode: decodeAny(String), input: `"hi"`, want: "hi"},
		{name: "string from number", decode: decodeAny(String), input: `4.0`, wantErr: ErrJSONType},
		{name: "bool", decode: decodeAny(Bool), input: `true`, want: true},
		{name: "bool from int", decode: decodeAny(Bool), input: `4`, wantErr: ErrJSONType},
		{name: "int", decode: decodeAny(Int), input: `-12`, want: -12},
		{name: "int from whole fraction", decode: decodeAny(Int), input: `2.0`, wantErr: ErrJSONType},
		{name: "int from fraction", decode: decodeAny(Int), input: `1.1`, wantErr: ErrJSONType},
		{name: "int from bool", decode: decodeAny(Int), input: `true`, wantErr: ErrJSONType},
		{name: "double from int", decode: decodeAny(Double), input: `2`, want: 2.0},
		{name: "double from fraction", decode: decodeAny(Double), input: `2.0`, want: 2.0},
		{name: "double from string", decode: decodeAny(Double), input: `"2"`, wantErr: ErrJSONType},
		{name: "null marker", decode: decodeAny(NullMarker), input: `null`, want: Null{}},
		{name: "null marker from object", decode: decodeAny(NullMarker), input: `{}`, wantErr: ErrJSONType},
		{name: "constant", decode: decodeAny(Constant("create")), input: `"create"`, want: "create"},
		{name: "constant mismatch", decode: decodeAny(Constant("create")), input: `"delete"`, wantErr: ErrInvalidConstantValue},
		{name: "constant from int", decode: decodeAny(Constant("create")), input: `4`, wantErr: ErrJSONType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.decode(parse(t, tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func decodeAny[T any](c Codec[T]) func(jsonvalue.Value) (any, error) {
	return func(v jsonvalue.Value) (any, error) {
		x, err := c.Decode(v)
		return x, err
	}
}

func TestDoubleEncodeRejectsNonFinite(t *testing.T) {
	_, err := Double.Encode(math.Inf(-1))
	assert.ErrorIs(t, err, ErrJSONType)
}

func TestConstantEncode(t *testing.T) {
	c := Constant("create")

	v, err := c.Encode("create")
	require.NoError(t, err)
	assert.Equal(t, `"create"`, v.String())

	_, err = c.Encode("delete")
	assert.ErrorIs(t, err, ErrInvalidConstantValue)
}

type color int

const (
	red   color = 1
	green color = 2
)

type flavor string

func TestIntEnum(t *testing.T) {
	c := IntEnum("color", red, green)

	got, err := c.Decode(parse(t, `2`))
	require.NoError(t, err)
	assert.Equal(t, green, got)

	for _, input := range []string{`0`, `-1`, `3`, `1000`} {
		_, err := c.Decode(parse(t, input))
		assert.ErrorIs(t, err, ErrInvalidEnumValue, input)
	}

	_, err = c.Decode(parse(t, `2.1`))
	assert.ErrorIs(t, err, ErrJSONType)

	_, err = c.Encode(color(-1))
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestStringEnum(t *testing.T) {
	c := StringEnum[flavor]("flavor", "plaintext", "markdown")

	got, err := c.Decode(parse(t, `"markdown"`))
	require.NoError(t, err)
	assert.Equal(t, flavor("markdown"), got)

	_, err = c.Decode(parse(t, `"foobar"`))
	assert.ErrorIs(t, err, ErrInvalidStringEnum)

	_, err = c.Decode(parse(t, `4`))
	assert.ErrorIs(t, err, ErrJSONType)

	_, err = c.Encode("html")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestArray(t *testing.T) {
	c := Array(IntEnum("color", red, green))

	got, err := c.Decode(parse(t, `[1, 2, 1]`))
	require.NoError(t, err)
	assert.Equal(t, []color{red, green, red}, got)

	_, err = c.Decode(parse(t, `{}`))
	assert.ErrorIs(t, err, ErrJSONType)

	_, err = c.Decode(parse(t, `[1, 2, true]`))
	require.ErrorIs(t, err, ErrJSONType)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "[2]", ce.Path.String())

	_, err = c.Encode([]color{red, color(7)})
	assert.ErrorIs(t, err, ErrInvalidEnumValue)

	v, err := c.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, v.String())
}

func TestNullable(t *testing.T) {
	c := NullableOf(Int)

	got, err := c.Decode(parse(t, `null`))
	require.NoError(t, err)
	assert.True(t, got.Null)

	got, err = c.Decode(parse(t, `3`))
	require.NoError(t, err)
	n, ok := got.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, err = c.Decode(parse(t, `"3"`))
	assert.ErrorIs(t, err, ErrJSONType)

	v, err := c.Encode(NullValue[int]())
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestVariant(t *testing.T) {
	c := OneOf(Int, String)

	t.Run("int alternative", func(t *testing.T) {
		got, err := c.Decode(parse(t, `4`))
		require.NoError(t, err)
		i, ok := got.First()
		assert.True(t, ok)
		assert.Equal(t, 4, i)
		_, ok = got.Second()
		assert.False(t, ok)
	})

	t.Run("string alternative", func(t *testing.T) {
		got, err := c.Decode(parse(t, `"iamanid"`))
		require.NoError(t, err)
		s, ok := got.Second()
		assert.True(t, ok)
		assert.Equal(t, "iamanid", s)
		_, ok = got.First()
		assert.False(t, ok)
	})

	t.Run("no alternative matches", func(t *testing.T) {
		for _, input := range []string{`true`, `4.1`, `null`, `{}`} {
			_, err := c.Decode(parse(t, input))
			assert.ErrorIs(t, err, ErrJSONType, input)
		}
	})

	t.Run("empty variant fails to encode", func(t *testing.T) {
		_, err := c.Encode(Variant[int, string]{})
		assert.ErrorIs(t, err, ErrMissingVariantValue)
	})

	t.Run("assignment replaces the alternative", func(t *testing.T) {
		v := VariantOfFirst[int, string](1)
		v.SetSecond("x")
		_, ok := v.First()
		assert.False(t, ok)

		out, err := c.Encode(v)
		require.NoError(t, err)
		assert.Equal(t, `"x"`, out.String())
	})
}

func TestErrorMessage(t *testing.T) {
	err := &Error{
		Kind:     ErrJSONType,
		Path:     Path{Key("params"), Key("valueSet"), Index(2)},
		Expected: "int",
		Actual:   "bool",
	}
	assert.Equal(t, "JSON type mismatch at params.valueSet[2]: expected int, got bool", err.Error())

	missing := &Error{Kind: ErrMissingVariantValue}
	assert.Equal(t, "missing variant value", missing.Error())
}
