// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the LSP message codec.
// It implements a Cobra-based CLI with three subcommands: decode validates a
// message and prints its canonical encoding, methods lists the method
// registry as a markdown table, and sdk round-trips a message through the MCP
// SDK JSON-RPC types. Configuration is read from JSON or YAML and diagnostics
// go to stderr through the logger package.
package cli
