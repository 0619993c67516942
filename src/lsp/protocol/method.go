// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

//go:generate go run ../../../tools/codegen

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
)

// Method is the discriminant of requests and notifications. The registered
// methods are the Method* constants.
type Method string

// MethodKind is the set of envelope forms a method may appear in.
type MethodKind uint8

const (
	// KindRequest methods carry an id and expect a response.
	KindRequest MethodKind = iota + 1
	// KindNotification methods never carry an id.
	KindNotification
	// KindEither methods may be sent both ways.
	KindEither
)

// String returns "request", "notification" or "either".
func (k MethodKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindEither:
		return "either"
	}
	return "MethodKind(" + strconv.Itoa(int(k)) + ")"
}

// AllowsRequest reports whether the method may be sent with an id.
func (k MethodKind) AllowsRequest() bool { return k == KindRequest || k == KindEither }

// AllowsNotification reports whether the method may be sent without an id.
func (k MethodKind) AllowsNotification() bool { return k == KindNotification || k == KindEither }

// Payload is the params or result shape a method declares.
type Payload struct {
	name      string
	nullOnly  bool
	allowNull bool
	decode    func(jsonvalue.Value) (any, error)
	encode    func(any) (jsonvalue.Value, bool, error)
}

// payloadOf declares values of the Go type T, converted by c.
func payloadOf[T any](c codec.Codec[T]) Payload {
	return Payload{
		name: c.Name(),
		decode: func(v jsonvalue.Value) (any, error) {
			x, err := c.Decode(v)
			if err != nil {
				return nil, err
			}
			return x, nil
		},
		encode: func(x any) (jsonvalue.Value, bool, error) {
			t, ok := x.(T)
			if !ok {
				return jsonvalue.Value{}, false, nil
			}
			v, err := c.Encode(t)
			return v, true, err
		},
	}
}

// nullPayload declares that null (or, for params, absence) is the only
// legal value.
func nullPayload() Payload { return Payload{name: "null", nullOnly: true} }

// orNull additionally allows an explicit null.
func (p Payload) orNull() Payload {
	p.allowNull = true
	p.name += " or null"
	return p
}

// Name describes the shape, e.g. "DocumentSymbolParams" or "null".
func (p Payload) Name() string {
	if p.name == "" {
		return "none"
	}
	return p.name
}

// NullOnly reports whether null is the only legal value.
func (p Payload) NullOnly() bool { return p.nullOnly }

// Nullable reports whether an explicit null is legal.
func (p Payload) Nullable() bool { return p.nullOnly || p.allowNull }

// Defined reports whether the method declares this payload at all.
// Notification methods declare no result.
func (p Payload) Defined() bool { return p.nullOnly || p.decode != nil }

// MethodInfo is one entry of the method registry.
type MethodInfo struct {
	Method Method
	Kind   MethodKind
	Params Payload
	Result Payload
	// Doc is a one-line description of the method.
	Doc string
}

// LookupMethod returns the registry entry for m.
func LookupMethod(m Method) (MethodInfo, bool) {
	info, ok := methodTable[m]
	return info, ok
}

// Methods returns every registered method sorted by name.
func Methods() []MethodInfo {
	out := make([]MethodInfo, 0, len(methodTable))
	for _, info := range methodTable {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b MethodInfo) int { return cmp.Compare(a.Method, b.Method) })
	return out
}

// Info returns the registry entry for m, failing with
// [codec.ErrInvalidDiscriminantValue] when m is not registered.
func (m Method) Info() (MethodInfo, error) {
	info, ok := LookupMethod(m)
	if !ok {
		return MethodInfo{}, &codec.Error{
			Kind:     codec.ErrInvalidDiscriminantValue,
			Path:     codec.Path{codec.Key("method")},
			Expected: "registered method",
			Actual:   strconv.Quote(string(m)),
		}
	}
	return info, nil
}

// lookupAs resolves m and checks that it may appear as a request (or, when
// asRequest is false, as a notification).
func lookupAs(m Method, asRequest bool) (MethodInfo, error) {
	info, err := m.Info()
	if err != nil {
		return MethodInfo{}, err
	}
	form, ok := "request", info.Kind.AllowsRequest()
	if !asRequest {
		form, ok = "notification", info.Kind.AllowsNotification()
	}
	if !ok {
		return MethodInfo{}, &codec.Error{
			Kind:     codec.ErrInvalidDiscriminantValue,
			Path:     codec.Path{codec.Key("method")},
			Expected: fmt.Sprintf("%s method", form),
			Actual:   fmt.Sprintf("%s (%s)", m, info.Kind),
		}
	}
	return info, nil
}

func unionError(member string, p Payload, x any) error {
	actual := "nil"
	if x != nil {
		actual = fmt.Sprintf("%T", x)
	}
	return &codec.Error{
		Kind:     codec.ErrInvalidDiscriminatedUnionValue,
		Path:     codec.Path{codec.Key(member)},
		Expected: p.Name(),
		Actual:   actual,
	}
}

// decodeParams converts the params member of obj.
func (p Payload) decodeParams(obj *jsonvalue.Map) (any, error) {
	v, ok := obj.Get("params")
	switch {
	case !ok && p.nullOnly:
		return nil, nil
	case !ok:
		return nil, &codec.Error{Kind: codec.ErrJSONType, Path: codec.Path{codec.Key("params")}, Expected: p.Name(), Actual: "absent"}
	case v.IsNull() && p.nullOnly:
		// Some clients send null for a parameterless method; it reads as absent.
		return nil, nil
	}
	return p.decodeValue("params", v)
}

// decodeResult converts a result member. Null stays an explicit codec.Null.
func (p Payload) decodeResult(v jsonvalue.Value) (any, error) {
	if !p.Defined() {
		return nil, &codec.Error{Kind: codec.ErrInvalidDiscriminatedUnionValue, Path: codec.Path{codec.Key("result")}, Expected: "no result"}
	}
	return p.decodeValue("result", v)
}

func (p Payload) decodeValue(member string, v jsonvalue.Value) (any, error) {
	switch {
	case v.IsNull() && p.Nullable():
		return codec.Null{}, nil
	case p.nullOnly:
		return nil, &codec.Error{Kind: codec.ErrJSONType, Path: codec.Path{codec.Key(member)}, Expected: "null", Actual: v.Kind().String()}
	}
	x, err := p.decode(v)
	if err != nil {
		return nil, codec.At(err, codec.Key(member))
	}
	return x, nil
}

// encodeValue converts a params or result value. The boolean is false when
// the member is to be omitted.
func (p Payload) encodeValue(member string, x any) (jsonvalue.Value, bool, error) {
	switch x.(type) {
	case nil:
		if member == "params" && p.nullOnly {
			return jsonvalue.Value{}, false, nil
		}
		return jsonvalue.Value{}, false, unionError(member, p, x)
	case codec.Null:
		if p.Nullable() {
			return jsonvalue.Null(), true, nil
		}
		return jsonvalue.Value{}, false, unionError(member, p, x)
	}
	if p.nullOnly || p.encode == nil {
		return jsonvalue.Value{}, false, unionError(member, p, x)
	}
	v, ok, err := p.encode(x)
	if !ok {
		return jsonvalue.Value{}, false, unionError(member, p, x)
	}
	if err != nil {
		return jsonvalue.Value{}, false, codec.At(err, codec.Key(member))
	}
	return v, true, nil
}
