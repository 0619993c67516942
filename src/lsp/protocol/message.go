// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
)

// Message is one decoded envelope: a request, a response or a notification.
type Message struct {
	request      *RequestMessage
	response     *ResponseMessage
	notification *NotificationMessage
}

// FromRequest wraps r.
func FromRequest(r *RequestMessage) *Message { return &Message{request: r} }

// FromResponse wraps r.
func FromResponse(r *ResponseMessage) *Message { return &Message{response: r} }

// FromNotification wraps n.
func FromNotification(n *NotificationMessage) *Message { return &Message{notification: n} }

// DecodeMessage parses one JSON document and classifies it.
//
// An object with both id and method is a request, one with only id is a
// response, one with only method is a notification. Anything else fails with
// [codec.ErrInvalidEnvelope].
func DecodeMessage(data []byte, opts ...jsonvalue.ParseOption) (*Message, error) {
	v, err := jsonvalue.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeMessageValue(v)
}

// DecodeMessageValue classifies an already parsed document.
func DecodeMessageValue(v jsonvalue.Value) (*Message, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "object", Actual: v.Kind().String()}
	}

	hasID, hasMethod := obj.Has("id"), obj.Has("method")
	switch {
	case hasID && hasMethod:
		r, err := decodeRequest(obj)
		if err != nil {
			return nil, err
		}
		return FromRequest(r), nil
	case hasID:
		r, err := decodeResponse(obj)
		if err != nil {
			return nil, err
		}
		return FromResponse(r), nil
	case hasMethod:
		n, err := decodeNotification(obj)
		if err != nil {
			return nil, err
		}
		return FromNotification(n), nil
	}
	return nil, &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "id or method", Actual: "neither"}
}

// DecodeResponse decodes a response to a request of method, converting its
// result to the type method declares.
func DecodeResponse(data []byte, method Method) (*ResponseMessage, error) {
	m, err := DecodeMessage(data)
	if err != nil {
		return nil, err
	}
	r, ok := m.AsResponse()
	if !ok {
		return nil, &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "response", Actual: m.Type()}
	}
	if err := r.ResolveResult(method); err != nil {
		return nil, err
	}
	return r, nil
}

// IsRequest reports whether m is a request.
func (m *Message) IsRequest() bool { return m.request != nil }

// IsResponse reports whether m is a response.
func (m *Message) IsResponse() bool { return m.response != nil }

// IsNotification reports whether m is a notification.
func (m *Message) IsNotification() bool { return m.notification != nil }

// AsRequest returns the request held by m.
func (m *Message) AsRequest() (*RequestMessage, bool) { return m.request, m.request != nil }

// AsResponse returns the response held by m.
func (m *Message) AsResponse() (*ResponseMessage, bool) { return m.response, m.response != nil }

// AsNotification returns the notification held by m.
func (m *Message) AsNotification() (*NotificationMessage, bool) {
	return m.notification, m.notification != nil
}

// Type returns "request", "response" or "notification".
func (m *Message) Type() string {
	switch {
	case m.request != nil:
		return "request"
	case m.response != nil:
		return "response"
	case m.notification != nil:
		return "notification"
	}
	return "empty"
}

// Method returns the method of a request or notification, or the request
// method a response was resolved against (possibly empty).
func (m *Message) Method() Method {
	switch {
	case m.request != nil:
		return m.request.Method
	case m.response != nil:
		return m.response.RequestMethod
	case m.notification != nil:
		return m.notification.Method
	}
	return ""
}

// ID returns the id of a request or response. It reports false for
// notifications and for responses with a null id.
func (m *Message) ID() (ID, bool) {
	switch {
	case m.request != nil:
		return m.request.ID, true
	case m.response != nil:
		return m.response.ID.Get()
	}
	return ID{}, false
}

// Encode converts m to a JSON object.
func (m *Message) Encode() (jsonvalue.Value, error) {
	switch {
	case m.request != nil:
		return m.request.Encode()
	case m.response != nil:
		return m.response.Encode()
	case m.notification != nil:
		return m.notification.Encode()
	}
	return jsonvalue.Value{}, &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "request, response or notification", Actual: "empty"}
}

// Marshal encodes m as compact JSON.
func (m *Message) Marshal() ([]byte, error) { return marshal(m.Encode()) }

// MarshalJSON implements json.Marshaler.
func (m *Message) MarshalJSON() ([]byte, error) { return m.Marshal() }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Message) UnmarshalJSON(data []byte) error {
	x, err := DecodeMessage(data)
	if err != nil {
		return err
	}
	*m = *x
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *RequestMessage) MarshalJSON() ([]byte, error) { return marshal(r.Encode()) }

// UnmarshalJSON decodes a request, failing with [codec.ErrInvalidEnvelope]
// for any other envelope.
func (r *RequestMessage) UnmarshalJSON(data []byte) error {
	m, err := DecodeMessage(data)
	if err != nil {
		return err
	}
	x, ok := m.AsRequest()
	if !ok {
		return &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "request", Actual: m.Type()}
	}
	*r = *x
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n *NotificationMessage) MarshalJSON() ([]byte, error) { return marshal(n.Encode()) }

// UnmarshalJSON decodes a notification, failing with
// [codec.ErrInvalidEnvelope] for any other envelope.
func (n *NotificationMessage) UnmarshalJSON(data []byte) error {
	m, err := DecodeMessage(data)
	if err != nil {
		return err
	}
	x, ok := m.AsNotification()
	if !ok {
		return &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "notification", Actual: m.Type()}
	}
	*n = *x
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *ResponseMessage) MarshalJSON() ([]byte, error) { return marshal(r.Encode()) }

// UnmarshalJSON decodes a response with an unresolved result, failing with
// [codec.ErrInvalidEnvelope] for any other envelope.
func (r *ResponseMessage) UnmarshalJSON(data []byte) error {
	m, err := DecodeMessage(data)
	if err != nil {
		return err
	}
	x, ok := m.AsResponse()
	if !ok {
		return &codec.Error{Kind: codec.ErrInvalidEnvelope, Expected: "response", Actual: m.Type()}
	}
	*r = *x
	return nil
}

func marshal(v jsonvalue.Value, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return jsonvalue.Serialize(v)
}
