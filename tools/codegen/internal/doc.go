// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codegen generates the method registry and the JSON method set of
// the protocol package.
//
// The input is config/methods.json, checked against config/methods.schema.json
// before any semantic validation. Templates live in templates/ and the
// output is gofmt-formatted into src/lsp/protocol.
package codegen
