// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codec implements strict, bidirectional conversion between
// [jsonvalue.Value] trees and typed Go message values.
//
// A [Codec] decodes one field shape and encodes it back. Primitives cover
// strings, booleans, integers (fractional literals rejected), doubles
// (integers widened), int- and string-backed enums, string constants, the
// null marker, arrays, nested messages and two-way variants. A [Schema]
// combines field descriptors into a message codec: required fields,
// [Optional] fields whose absence is distinct from a value, and [Clearable]
// fields whose explicit null is distinct from absence.
//
// Every failure is an [*Error] that unwraps to one of the sentinel kinds
// ([ErrMissingField], [ErrJSONType], ...) and carries the field path at which
// it happened. The first failure aborts the whole call.
//
// Codecs hold no mutable state and may be shared by any number of goroutines.
package codec
