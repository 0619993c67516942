// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
	"github.com/mark3labs/mcp-go/mcp"
)

// JSONRPCVersion is the only value accepted in the jsonrpc member.
const JSONRPCVersion = mcp.JSONRPC_VERSION

var (
	versionCodec       = codec.Constant(JSONRPCVersion)
	nullableIDCodec    = codec.NullableOf(idCodec)
	responseErrorCodec = codec.Object(responseErrorSchema)
	methodCodec        = codec.String
)

// RequestMessage is a call that expects a response.
type RequestMessage struct {
	JSONRPC string
	ID      ID
	Method  Method
	// Params is nil when absent, codec.Null{} for an explicit null, or the
	// pointer type declared by Method.
	Params any
}

// NewRequest returns a request for method with the given params.
func NewRequest(id ID, method Method, params any) *RequestMessage {
	return &RequestMessage{JSONRPC: JSONRPCVersion, ID: id, Method: method, Params: params}
}

// NotificationMessage is a one-way message without an id.
type NotificationMessage struct {
	JSONRPC string
	Method  Method
	// Params follows the same convention as RequestMessage.Params.
	Params any
}

// NewNotification returns a notification for method with the given params.
func NewNotification(method Method, params any) *NotificationMessage {
	return &NotificationMessage{JSONRPC: JSONRPCVersion, Method: method, Params: params}
}

// ResponseMessage answers a request. Exactly one of Result and Error is set.
type ResponseMessage struct {
	JSONRPC string
	// ID is null when the request id could not be determined.
	ID codec.Nullable[ID]
	// RequestMethod is the method of the request being answered. It is not on
	// the wire; when empty, Result stays a raw jsonvalue.Value.
	RequestMethod Method
	// Result is codec.Null{} for a null result, a jsonvalue.Value when not
	// yet resolved, or the type declared by RequestMethod.
	Result any
	Error  *ResponseError
}

// NewResponse returns a successful response to a request of method.
func NewResponse(id ID, method Method, result any) *ResponseMessage {
	return &ResponseMessage{JSONRPC: JSONRPCVersion, ID: codec.ValueOf(id), RequestMethod: method, Result: result}
}

// NewErrorResponse returns a failed response. A nil id is written as null.
func NewErrorResponse(id *ID, method Method, err *ResponseError) *ResponseMessage {
	r := &ResponseMessage{JSONRPC: JSONRPCVersion, ID: codec.NullValue[ID](), RequestMethod: method, Error: err}
	if id != nil {
		r.ID = codec.ValueOf(*id)
	}
	return r
}

// member decodes the required key of obj with c.
func member[T any](obj *jsonvalue.Map, key string, c codec.Codec[T]) (T, error) {
	v, ok := obj.Get(key)
	if !ok {
		var zero T
		return zero, &codec.Error{Kind: codec.ErrMissingField, Path: codec.Path{codec.Key(key)}, Expected: c.Name()}
	}
	x, err := c.Decode(v)
	if err != nil {
		var zero T
		return zero, codec.At(err, codec.Key(key))
	}
	return x, nil
}

// encodeMember encodes x with c and stores it under key.
func encodeMember[T any](obj *jsonvalue.Map, key string, c codec.Codec[T], x T) error {
	v, err := c.Encode(x)
	if err != nil {
		return codec.At(err, codec.Key(key))
	}
	obj.Set(key, v)
	return nil
}

func decodeRequest(obj *jsonvalue.Map) (*RequestMessage, error) {
	version, err := member(obj, "jsonrpc", versionCodec)
	if err != nil {
		return nil, err
	}
	id, err := member(obj, "id", idCodec)
	if err != nil {
		return nil, err
	}
	name, err := member(obj, "method", methodCodec)
	if err != nil {
		return nil, err
	}
	info, err := lookupAs(Method(name), true)
	if err != nil {
		return nil, err
	}
	params, err := info.Params.decodeParams(obj)
	if err != nil {
		return nil, err
	}
	return &RequestMessage{JSONRPC: version, ID: id, Method: info.Method, Params: params}, nil
}

// Encode converts r to a JSON object, checking Params against the method.
func (r *RequestMessage) Encode() (jsonvalue.Value, error) {
	info, err := lookupAs(r.Method, true)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	obj := jsonvalue.NewMap()
	if err := encodeMember(obj, "jsonrpc", versionCodec, r.JSONRPC); err != nil {
		return jsonvalue.Value{}, err
	}
	if err := encodeMember(obj, "id", idCodec, r.ID); err != nil {
		return jsonvalue.Value{}, err
	}
	obj.Set("method", jsonvalue.String(string(r.Method)))
	if err := encodeParams(obj, info, r.Params); err != nil {
		return jsonvalue.Value{}, err
	}
	return jsonvalue.Object(obj), nil
}

func decodeNotification(obj *jsonvalue.Map) (*NotificationMessage, error) {
	version, err := member(obj, "jsonrpc", versionCodec)
	if err != nil {
		return nil, err
	}
	name, err := member(obj, "method", methodCodec)
	if err != nil {
		return nil, err
	}
	info, err := lookupAs(Method(name), false)
	if err != nil {
		return nil, err
	}
	params, err := info.Params.decodeParams(obj)
	if err != nil {
		return nil, err
	}
	return &NotificationMessage{JSONRPC: version, Method: info.Method, Params: params}, nil
}

// Encode converts n to a JSON object, checking Params against the method.
func (n *NotificationMessage) Encode() (jsonvalue.Value, error) {
	info, err := lookupAs(n.Method, false)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	obj := jsonvalue.NewMap()
	if err := encodeMember(obj, "jsonrpc", versionCodec, n.JSONRPC); err != nil {
		return jsonvalue.Value{}, err
	}
	obj.Set("method", jsonvalue.String(string(n.Method)))
	if err := encodeParams(obj, info, n.Params); err != nil {
		return jsonvalue.Value{}, err
	}
	return jsonvalue.Object(obj), nil
}

func encodeParams(obj *jsonvalue.Map, info MethodInfo, params any) error {
	v, emit, err := info.Params.encodeValue("params", params)
	if err != nil {
		return err
	}
	if emit {
		obj.Set("params", v)
	}
	return nil
}

func decodeResponse(obj *jsonvalue.Map) (*ResponseMessage, error) {
	version, err := member(obj, "jsonrpc", versionCodec)
	if err != nil {
		return nil, err
	}
	id, err := member(obj, "id", nullableIDCodec)
	if err != nil {
		return nil, err
	}

	result, hasResult := obj.Get("result")
	errValue, hasError := obj.Get("error")
	if hasResult == hasError {
		return nil, &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "exactly one of result or error", Actual: "response"}
	}

	r := &ResponseMessage{JSONRPC: version, ID: id}
	if hasError {
		e, err := responseErrorCodec.Decode(errValue)
		if err != nil {
			return nil, codec.At(err, codec.Key("error"))
		}
		r.Error = e
		return r, nil
	}
	r.Result = result
	return r, nil
}

// requestInfo returns the registry entry of the request r answers.
func (r *ResponseMessage) requestInfo() (MethodInfo, error) {
	return lookupAs(r.RequestMethod, true)
}

// ResolveResult records method as the request being answered and converts a
// raw result to the type that method declares.
func (r *ResponseMessage) ResolveResult(method Method) error {
	info, err := lookupAs(method, true)
	if err != nil {
		return err
	}
	if raw, ok := r.Result.(jsonvalue.Value); ok && r.Error == nil {
		x, err := info.Result.decodeResult(raw)
		if err != nil {
			return err
		}
		r.Result = x
	}
	r.RequestMethod = method
	return nil
}

// Encode converts r to a JSON object. When RequestMethod is set, Result is
// checked against the type it declares, raw jsonvalue.Value results included.
// Without a method only a raw or null result is accepted.
func (r *ResponseMessage) Encode() (jsonvalue.Value, error) {
	if (r.Result == nil) == (r.Error == nil) {
		return jsonvalue.Value{}, &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "exactly one of result or error", Actual: "response"}
	}

	var info MethodInfo
	if r.RequestMethod != "" {
		var err error
		if info, err = r.requestInfo(); err != nil {
			return jsonvalue.Value{}, err
		}
	}

	obj := jsonvalue.NewMap()
	if err := encodeMember(obj, "jsonrpc", versionCodec, r.JSONRPC); err != nil {
		return jsonvalue.Value{}, err
	}
	if err := encodeMember(obj, "id", nullableIDCodec, r.ID); err != nil {
		return jsonvalue.Value{}, err
	}

	if r.Error != nil {
		if err := encodeMember(obj, "error", responseErrorCodec, r.Error); err != nil {
			return jsonvalue.Value{}, err
		}
		return jsonvalue.Object(obj), nil
	}

	raw, isRaw := r.Result.(jsonvalue.Value)
	_, isNull := r.Result.(codec.Null)
	switch {
	case isRaw && r.RequestMethod != "":
		if _, err := info.Result.decodeResult(raw); err != nil {
			return jsonvalue.Value{}, &codec.Error{
				Kind:     codec.ErrInvalidDiscriminatedUnionValue,
				Path:     codec.Path{codec.Key("result")},
				Expected: info.Result.Name(),
				Actual:   raw.Kind().String(),
			}
		}
		obj.Set("result", raw)
	case isRaw:
		obj.Set("result", raw)
	case r.RequestMethod == "" && isNull:
		obj.Set("result", jsonvalue.Null())
	case r.RequestMethod == "":
		return jsonvalue.Value{}, unionError("result", Payload{name: "raw or null result"}, r.Result)
	default:
		v, _, err := info.Result.encodeValue("result", r.Result)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		obj.Set("result", v)
	}
	return jsonvalue.Object(obj), nil
}
