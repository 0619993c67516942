// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/logger"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/protocol"
	sdkjsonrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// app carries the state shared by subcommands once configuration is loaded.
type app struct {
	configPath string
	method     string
	config     *Config
	log        logger.Logger
}

// Execute runs the root command, handling any errors that occur during execution.
func Execute(ctx context.Context, version string) error {
	return NewRootCmd(version).ExecuteContext(ctx)
}

// NewRootCmd builds the lspcodec command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}
	name := posix.ExecutableName()

	rootCmd := &cobra.Command{
		Use:   name,
		Short: "Strongly typed LSP JSON-RPC message codec",
		Example: fmt.Sprintf(`  echo '{"jsonrpc":"2.0","id":1,"method":"shutdown"}' | %[1]s decode
  %[1]s decode response.json --method textDocument/hover
  %[1]s methods`, name),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			log, err := config.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.config, a.log = config, log
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (JSON or YAML; default $"+ConfigEnv+")")

	decodeCmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Validate one message and print its canonical encoding",
		Long: "Decode reads one JSON-RPC message from FILE or stdin, validates it against the\n" +
			"LSP method registry and prints the canonical re-encoded JSON. On failure it prints\n" +
			"the JSON-RPC error response a server would send and exits non-zero.",
		Args: cobra.MaximumNArgs(1),
		RunE: a.runDecode,
	}
	decodeCmd.Flags().StringVarP(&a.method, "method", "m", "", "request method used to resolve a response result")

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "List the registered LSP methods",
		Args:  cobra.NoArgs,
		RunE:  a.runMethods,
	}

	sdkCmd := &cobra.Command{
		Use:   "sdk [FILE]",
		Short: "Round-trip a message through the MCP SDK JSON-RPC representation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runSDK,
	}

	rootCmd.AddCommand(decodeCmd, methodsCmd, sdkCmd)
	return rootCmd
}

// readMessage decodes one message from the file named in args or stdin.
// The raw bytes are returned alongside so a failure can still be answered.
func (a *app) readMessage(cmd *cobra.Command, args []string) (*protocol.Message, []byte, error) {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("error reading input file: %w", err)
		}
		defer f.Close()
		in = f
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	v, err := jsonvalue.ParseReader(io.TeeReader(in, buf), a.config.ParseOptions()...)
	raw := append([]byte(nil), buf.Bytes()...)
	if err != nil {
		return nil, raw, err
	}

	m, err := protocol.DecodeMessageValue(v)
	if err != nil {
		return nil, raw, err
	}

	if a.method != "" {
		r, ok := m.AsResponse()
		if !ok {
			return nil, raw, fmt.Errorf("--method applies to responses, got a %s", m.Type())
		}
		if err := r.ResolveResult(protocol.Method(a.method)); err != nil {
			return nil, raw, err
		}
	}
	return m, raw, nil
}

// fail reports err and writes the matching error response to stdout.
func (a *app) fail(cmd *cobra.Command, raw []byte, err error) error {
	a.log.Error("decode failed", err)
	if out, encErr := jsonrpc.ErrorResponse(raw, err).MarshalJSON(); encErr == nil {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}
	return fmt.Errorf("decode: %w", err)
}

func (a *app) runDecode(cmd *cobra.Command, args []string) error {
	m, raw, err := a.readMessage(cmd, args)
	if err != nil {
		return a.fail(cmd, raw, err)
	}

	out, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if id, ok := m.ID(); ok {
		a.log.Printf("decoded %s %q id=%s", m.Type(), m.Method(), formatID(id))
	} else {
		a.log.Printf("decoded %s %q", m.Type(), m.Method())
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func formatID(id protocol.ID) string {
	if n, ok := id.First(); ok {
		return fmt.Sprint(n)
	}
	s, _ := id.Second()
	return fmt.Sprintf("%q", s)
}

func (a *app) runMethods(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Method", "Kind", "Params", "Result", "Description"})

	var rows [][]string
	for _, info := range protocol.Methods() {
		rows = append(rows, []string{
			string(info.Method),
			info.Kind.String(),
			info.Params.Name(),
			info.Result.Name(),
			info.Doc,
		})
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("rendering methods: %w", err)
	}
	return table.Render()
}

func (a *app) runSDK(cmd *cobra.Command, args []string) error {
	m, raw, err := a.readMessage(cmd, args)
	if err != nil {
		return a.fail(cmd, raw, err)
	}

	msg, err := jsonrpc.ToSDK(m)
	if err != nil {
		return fmt.Errorf("sdk: %w", err)
	}
	if _, err := jsonrpc.FromSDK(msg); err != nil {
		return fmt.Errorf("sdk round trip: %w", err)
	}

	out, err := sdkjsonrpc.EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("sdk encode: %w", err)
	}

	a.log.Printf("converted %s %q to %T", m.Type(), m.Method(), msg)
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
