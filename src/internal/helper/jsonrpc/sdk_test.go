// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"testing"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/protocol"
	sdkjsonrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSDKRoundTrip(t *testing.T) {
	hover := &protocol.TextDocumentPositionParams{
		TextDocument: &protocol.TextDocumentIdentifier{URI: "file:///a.rb"},
		Position:     &protocol.Position{Line: 1, Character: 2},
	}

	t.Run("request", func(t *testing.T) {
		m := protocol.FromRequest(protocol.NewRequest(protocol.IntID(5), protocol.MethodTextDocumentHover, hover))

		msg, err := ToSDK(m)
		require.NoError(t, err)
		req, ok := msg.(*sdkjsonrpc.Request)
		require.True(t, ok)
		assert.True(t, req.IsCall())
		assert.Equal(t, "textDocument/hover", req.Method)

		back, err := FromSDK(msg)
		require.NoError(t, err)
		r, ok := back.AsRequest()
		require.True(t, ok)
		assert.Equal(t, protocol.MethodTextDocumentHover, r.Method)
		assert.Equal(t, hover, r.Params)
		id, ok := back.ID()
		require.True(t, ok)
		n, _ := id.First()
		assert.Equal(t, 5, n)
	})

	t.Run("notification", func(t *testing.T) {
		m := protocol.FromNotification(protocol.NewNotification(protocol.MethodExit, nil))

		msg, err := ToSDK(m)
		require.NoError(t, err)
		req, ok := msg.(*sdkjsonrpc.Request)
		require.True(t, ok)
		assert.False(t, req.IsCall())

		back, err := FromSDK(msg)
		require.NoError(t, err)
		assert.True(t, back.IsNotification())
		assert.Equal(t, protocol.MethodExit, back.Method())
	})

	t.Run("response", func(t *testing.T) {
		locs := []*protocol.Location{{URI: "file:///b.rb", Range: protocol.NewRange(3, 0, 3, 4)}}
		m := protocol.FromResponse(protocol.NewResponse(protocol.StringID("x"), protocol.MethodTextDocumentDefinition, locs))

		msg, err := ToSDK(m)
		require.NoError(t, err)
		_, ok := msg.(*sdkjsonrpc.Response)
		require.True(t, ok)

		back, err := FromSDK(msg)
		require.NoError(t, err)
		r, ok := back.AsResponse()
		require.True(t, ok)
		require.NoError(t, r.ResolveResult(protocol.MethodTextDocumentDefinition))
		assert.Equal(t, locs, r.Result)
	})
}

func TestToSDKRejectsInvalidMessage(t *testing.T) {
	m := protocol.FromRequest(protocol.NewRequest(protocol.IntID(1), protocol.MethodTextDocumentHover, "not params"))
	_, err := ToSDK(m)
	assert.ErrorIs(t, err, codec.ErrInvalidDiscriminatedUnionValue)
}
