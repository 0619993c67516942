// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/cli"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

// run executes the command tree with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(cli.ConfigEnv, "")

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd(version)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantOut    string
		wantStderr string
	}{
		{
			name:       "request without params",
			stdin:      `{"jsonrpc":"2.0","id":1,"method":"shutdown"}`,
			args:       []string{"decode"},
			wantOut:    `{"jsonrpc":"2.0","id":1,"method":"shutdown"}` + "\n",
			wantStderr: `decoded request "shutdown" id=1`,
		},
		{
			name:       "canonical key order",
			stdin:      `{"params":{"position":{"character":2,"line":1},"textDocument":{"uri":"file:///a"}},"method":"textDocument/hover","id":"x","jsonrpc":"2.0"}`,
			args:       []string{"decode"},
			wantOut:    `{"jsonrpc":"2.0","id":"x","method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"},"position":{"line":1,"character":2}}}` + "\n",
			wantStderr: `decoded request "textDocument/hover" id="x"`,
		},
		{
			name:       "notification",
			stdin:      `{"jsonrpc":"2.0","method":"exit","params":null}`,
			args:       []string{"decode"},
			wantOut:    `{"jsonrpc":"2.0","method":"exit"}` + "\n",
			wantStderr: `decoded notification "exit"`,
		},
		{
			name:       "resolved response",
			stdin:      `{"jsonrpc":"2.0","id":4,"result":null}`,
			args:       []string{"decode", "--method", "shutdown"},
			wantOut:    `{"jsonrpc":"2.0","id":4,"result":null}` + "\n",
			wantStderr: `decoded response "shutdown" id=4`,
		},
		{
			name:       "stdin dash",
			stdin:      `{"jsonrpc":"2.0","id":2,"method":"shutdown","params":null}`,
			args:       []string{"decode", "-"},
			wantOut:    `{"jsonrpc":"2.0","id":2,"method":"shutdown"}` + "\n",
			wantStderr: `decoded request`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stderr, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"jsonrpc":"2.0","method":"initialized","params":{}}`), 0644))

	out, _, err := run(t, "", "decode", path)
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","method":"initialized","params":{}}`+"\n", out)

	_, _, err = run(t, "", "decode", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
		wantOut []string
	}{
		{
			name:    "unknown method",
			stdin:   `{"jsonrpc":"2.0","id":7,"method":"textDocument/rename"}`,
			args:    []string{"decode"},
			wantErr: codec.ErrInvalidDiscriminantValue,
			wantOut: []string{`"id":7`, `"code":-32601`},
		},
		{
			name:    "bad params",
			stdin:   `{"jsonrpc":"2.0","id":"q","method":"textDocument/hover","params":{"textDocument":{"uri":"file:///a"}}}`,
			args:    []string{"decode"},
			wantErr: codec.ErrMissingField,
			wantOut: []string{`"id":"q"`, `"code":-32602`, `"path":"params.position"`},
		},
		{
			name:    "syntax error",
			stdin:   `{"jsonrpc":"2.0",`,
			args:    []string{"decode"},
			wantErr: jsonvalue.ErrSyntax,
			wantOut: []string{`"id":null`, `"code":-32700`},
		},
		{
			name:    "response to notification method",
			stdin:   `{"jsonrpc":"2.0","id":1,"result":null}`,
			args:    []string{"decode", "--method", "textDocument/didOpen"},
			wantErr: codec.ErrInvalidDiscriminantValue,
			wantOut: []string{`"id":1`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stderr, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
			assert.Contains(t, stderr, "decode failed")
		})
	}
}

func TestDecodeMethodOnRequest(t *testing.T) {
	_, _, err := run(t, `{"jsonrpc":"2.0","id":1,"method":"shutdown"}`, "decode", "--method", "shutdown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--method applies to responses")
}

func TestDecodeWithConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lspcodec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codec:\n  maxDepth: 2\nlog:\n  format: json\n"), 0644))

	out, stderr, err := run(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{"textDocument":{}}}}`, "decode", "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonvalue.ErrTooDeep)
	assert.Contains(t, out, `"code":-32700`)
	assert.Contains(t, stderr, `"level":"error"`)
}

func TestMethods(t *testing.T) {
	out, _, err := run(t, "", "methods")
	require.NoError(t, err)

	for _, want := range []string{
		"textDocument/hover",
		"Hover or null",
		"sorbet/watchmanFileChange",
		"either",
		"$/cancelRequest",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "|"), "expected a markdown table")
}

func TestSDK(t *testing.T) {
	out, stderr, err := run(t, `{"jsonrpc":"2.0","id":3,"method":"textDocument/definition","params":{"textDocument":{"uri":"file:///a"},"position":{"line":0,"character":0}}}`, "sdk")
	require.NoError(t, err)
	assert.Contains(t, out, `"method":"textDocument/definition"`)
	assert.Contains(t, out, `"id":3`)
	assert.Contains(t, stderr, `converted request "textDocument/definition"`)

	_, _, err = run(t, `[]`, "sdk")
	assert.ErrorIs(t, err, codec.ErrInvalidEnvelope)
}

func TestVersionFlag(t *testing.T) {
	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
