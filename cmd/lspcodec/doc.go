// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// lspcodec is a command-line tool for validating Language Server Protocol
// JSON-RPC messages against the typed method registry.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/lsp-message-codec/cmd/lspcodec@latest
//
// # Usage
//
//	lspcodec decode [FILE] [--method METHOD]
//	lspcodec methods
//	lspcodec sdk [FILE]
//
// # Flags
//
//	-c, --config   JSON or YAML config file (default: $LSPCODEC_CONFIG_FILE)
//	-m, --method   Request method used to resolve a response result (decode)
//
// # Examples
//
// Validate a request and print its canonical form:
//
//	echo '{"jsonrpc":"2.0","id":1,"method":"shutdown"}' | lspcodec decode
//
// Check a hover response:
//
//	lspcodec decode response.json --method textDocument/hover
//
// List the registered methods as a markdown table:
//
//	lspcodec methods
package main
