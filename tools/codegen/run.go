// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/lsp-message-codec/tools/codegen/internal"
)

func main() {
	if err := codegen.GenerateMethods(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating methods: %v\n", err)
		os.Exit(1)
	}

	if err := codegen.GenerateMessages(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating messages: %v\n", err)
		os.Exit(1)
	}
}
