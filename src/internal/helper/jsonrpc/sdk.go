// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"fmt"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/protocol"
	sdkjsonrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
)

// ToSDK converts a validated message to the MCP SDK representation, so it
// can be written to any SDK transport.
//
// Parameters:
//   - m: Decoded or constructed message
//
// Returns:
//   - sdkjsonrpc.Message: *sdkjsonrpc.Request or *sdkjsonrpc.Response
//   - error: Error if m fails to encode or the SDK rejects the result
func ToSDK(m *protocol.Message) (sdkjsonrpc.Message, error) {
	data, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	msg, err := sdkjsonrpc.DecodeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("sdk decode: %w", err)
	}
	return msg, nil
}

// FromSDK validates an SDK message against the LSP schema.
//
// Parameters:
//   - msg: Message read from an SDK transport
//
// Returns:
//   - *protocol.Message: Typed message
//   - error: Error if the SDK cannot encode msg or the codec rejects it
func FromSDK(msg sdkjsonrpc.Message) (*protocol.Message, error) {
	data, err := sdkjsonrpc.EncodeMessage(msg)
	if err != nil {
		return nil, fmt.Errorf("sdk encode: %w", err)
	}
	return protocol.DecodeMessage(data)
}
