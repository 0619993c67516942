// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutableNameFromArg(t *testing.T) {
	tests := []struct {
		name     string
		arg0     string
		expected string
	}{
		{"bare name", "lspcodec", "lspcodec"},
		{"relative path", "./bin/lspcodec", "lspcodec"},
		{"absolute path", "/usr/local/bin/lspcodec", "lspcodec"},
		{"windows path", `C:\tools\lspcodec.exe`, "lspcodec"},
		{"renamed binary", "/opt/lsp-validate", "lsp-validate"},
		{"empty", "", DefaultExecutableName},
		{"only exe suffix", ".exe", DefaultExecutableName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, executableName(tt.arg0))
		})
	}
}

func TestExecutableName(t *testing.T) {
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })

	os.Args = []string{"/usr/bin/lspcodec"}
	assert.Equal(t, "lspcodec", ExecutableName())

	os.Args = nil
	assert.Equal(t, DefaultExecutableName, ExecutableName())
}
