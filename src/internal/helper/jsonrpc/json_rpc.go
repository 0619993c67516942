// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/protocol"
	"github.com/mark3labs/mcp-go/mcp"
)

// Code returns the JSON-RPC error code for a decode or encode failure.
//
// Syntax, size and number range failures are parse errors, envelope failures are invalid
// requests and unknown or misused methods are method-not-found. Shape errors
// under params are invalid params; shape errors elsewhere in the envelope
// are invalid requests. Encode-side consistency failures are internal errors.
//
// Parameters:
//   - err: Error returned by jsonvalue, codec or protocol
//
// Returns:
//   - int: One of the mcp-go JSON-RPC error code constants
func Code(err error) int {
	switch {
	case errors.Is(err, jsonvalue.ErrSyntax),
		errors.Is(err, jsonvalue.ErrTooDeep),
		errors.Is(err, jsonvalue.ErrTooLarge),
		errors.Is(err, jsonvalue.ErrNumberRange):
		return mcp.PARSE_ERROR
	case errors.Is(err, codec.ErrInvalidEnvelope):
		return mcp.INVALID_REQUEST
	case errors.Is(err, codec.ErrInvalidDiscriminantValue):
		return mcp.METHOD_NOT_FOUND
	case errors.Is(err, codec.ErrMissingField),
		errors.Is(err, codec.ErrJSONType),
		errors.Is(err, codec.ErrInvalidStringEnum),
		errors.Is(err, codec.ErrInvalidEnumValue),
		errors.Is(err, codec.ErrInvalidConstantValue):
		if underParams(err) {
			return mcp.INVALID_PARAMS
		}
		return mcp.INVALID_REQUEST
	}
	return mcp.INTERNAL_ERROR
}

func underParams(err error) bool {
	var ce *codec.Error
	if !errors.As(err, &ce) || len(ce.Path) == 0 {
		return false
	}
	return !ce.Path[0].IsIndex && ce.Path[0].Key == "params"
}

// ErrorFor converts err to the error member of a response.
//
// For codec errors the data member carries the error kind and, when known,
// the path of the offending value.
//
// Parameters:
//   - err: Error returned by jsonvalue, codec or protocol
//
// Returns:
//   - *protocol.ResponseError: Error object with code, message and data
func ErrorFor(err error) *protocol.ResponseError {
	re := protocol.NewResponseError(Code(err), err.Error())

	var ce *codec.Error
	if errors.As(err, &ce) {
		data := jsonvalue.NewMap()
		data.Set("kind", jsonvalue.String(ce.Kind.Error()))
		if len(ce.Path) > 0 {
			data.Set("path", jsonvalue.String(ce.Path.String()))
		}
		re.Data = codec.Some(jsonvalue.Object(data))
	}
	return re
}

// ErrorResponse builds the response to a payload the codec rejected.
//
// The id is recovered leniently from data, so that a request with a bad
// params member still gets an answer the client can correlate. When no id
// can be recovered the response carries a null id.
//
// Parameters:
//   - data: Raw payload that failed to decode
//   - err: Decode error
//
// Returns:
//   - *protocol.ResponseMessage: Error response ready to encode
func ErrorResponse(data []byte, err error) *protocol.ResponseMessage {
	return protocol.NewErrorResponse(RecoverID(data), "", ErrorFor(err))
}

// RecoverID extracts a usable request id from a payload without validating
// the rest of it.
//
// Parameters:
//   - data: Raw JSON payload
//
// Returns:
//   - *protocol.ID: Recovered id, or nil when absent or unusable
func RecoverID(data []byte) *protocol.ID {
	var temp map[string]any
	if err := json.Unmarshal(data, &temp); err != nil {
		return nil
	}

	var id protocol.ID
	switch v := Map(temp)["id"].(type) {
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return nil
		}
		id = protocol.IntID(int(v))
	case string:
		id = protocol.StringID(v)
	default:
		return nil
	}
	return &id
}

// Map converts a decoded JSON-RPC map to canonical lowercase key form.
//
// It processes a map of arbitrary keys and values, converting all keys to
// lowercase. It handles specific JSON-RPC fields like "id" and "jsonrpc"
// with special logic:
//   - "id": Preserves values, converting whole number floats to int64
//   - "jsonrpc": Adds default version "2.0" if missing
//
// Parameters:
//   - temp: Input map with potentially mixed-case keys
//
// Returns:
//   - map[string]any: Normalized map with lowercase keys
func Map(temp map[string]any) map[string]any {
	fixed := make(map[string]any)
	for k, v := range temp {
		key := strings.ToLower(k)
		switch key {
		case "id":
			if idMap, ok := v.(map[string]any); ok && len(idMap) == 0 {
				fixed["id"] = nil
			} else {
				fixed["id"] = normalizeIDValue(v)
			}
		default:
			fixed[key] = v
		}
	}

	if _, ok := fixed["jsonrpc"]; !ok {
		fixed["jsonrpc"] = mcp.JSONRPC_VERSION
	}

	return fixed
}

// normalizeIDValue converts whole number float64 values to int64 for JSON-RPC ID fields.
func normalizeIDValue(v any) any {
	if f, ok := v.(float64); ok {
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
	}
	return v
}
