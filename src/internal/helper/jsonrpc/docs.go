// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC 2.0] error handling
// around the LSP codec. It maps codec failures to JSON-RPC error codes, builds
// error responses whose id is recovered from the rejected payload, and
// converts decoded messages to and from the [Official MCP SDK] jsonrpc
// representation.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
// [Official MCP SDK]: https://pkg.go.dev/github.com/modelcontextprotocol/go-sdk
package jsonrpc
