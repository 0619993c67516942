// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package protocol defines the typed Language Server Protocol messages and
// the envelope dispatcher that turns one JSON-RPC document into a request,
// response or notification.
//
// Each message structure is backed by a [codec.Schema] that fixes its wire
// keys, so in-memory field names may differ from the JSON (for example
// WatchmanQueryResponse.IsFreshInstance is "is_fresh_instance" on the wire).
// Structures implement [json.Marshaler] and [json.Unmarshaler] through those
// schemas.
//
// The method registry maps every [Method] to the envelope forms it allows
// and the params and result shapes it carries. It is generated from
// tools/codegen/config/methods.json and is read-only after package
// initialization.
//
// Decoding a message:
//
//	msg, err := protocol.DecodeMessage(data)
//	if err != nil {
//		// errors.Is(err, codec.ErrInvalidDiscriminantValue), ...
//	}
//	if req, ok := msg.AsRequest(); ok {
//		params := req.Params.(*protocol.DocumentSymbolParams)
//		...
//	}
//
// Params and results are held as any: nil means absent, [codec.Null] means
// an explicit JSON null, and otherwise the value is the pointer type the
// method declares. Responses decoded without knowing their request keep the
// result as a raw [jsonvalue.Value] until [ResponseMessage.ResolveResult].
package protocol
