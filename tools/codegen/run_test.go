// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"testing"

	"github.com/H0llyW00dzZ/lsp-message-codec/tools/codegen/internal"
)

func TestMain_NoArgs(t *testing.T) {
	// main writes into src/lsp/protocol, so only check the entry points exist.
	_ = codegen.GenerateMethods
	_ = codegen.GenerateMessages
}
