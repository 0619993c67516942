// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
)

// ID identifies a request: an integer or a string.
type ID = codec.Variant[int, string]

// IntID returns an integer request ID.
func IntID(id int) ID { return codec.VariantOfFirst[int, string](id) }

// StringID returns a string request ID.
func StringID(id string) ID { return codec.VariantOfSecond[int](id) }

var idCodec = codec.OneOf(codec.Int, codec.String)

// SymbolKindOptions lists the symbol kinds a client understands.
type SymbolKindOptions struct {
	ValueSet codec.Optional[[]SymbolKind]
}

// WorkspaceSymbolClientCapabilities describes workspace/symbol support.
type WorkspaceSymbolClientCapabilities struct {
	DynamicRegistration codec.Optional[bool]
	SymbolKind          codec.Optional[*SymbolKindOptions]
}

// HoverClientCapabilities describes textDocument/hover support.
type HoverClientCapabilities struct {
	DynamicRegistration codec.Optional[bool]
	ContentFormat       codec.Optional[[]MarkupKind]
}

// TextDocumentClientCapabilities groups the text document capabilities.
type TextDocumentClientCapabilities struct {
	Hover codec.Optional[*HoverClientCapabilities]
}

// WorkspaceClientCapabilities groups the workspace capabilities.
type WorkspaceClientCapabilities struct {
	ApplyEdit     codec.Optional[bool]
	Symbol        codec.Optional[*WorkspaceSymbolClientCapabilities]
	Configuration codec.Optional[bool]
}

// ClientCapabilities is what the client announces in initialize.
type ClientCapabilities struct {
	Workspace    codec.Optional[*WorkspaceClientCapabilities]
	TextDocument codec.Optional[*TextDocumentClientCapabilities]
}

// InitializeParams are the params of initialize.
//
// RootPath is deprecated in favor of RootURI; clients may send null to say
// no folder is open, which is kept apart from omitting the key.
type InitializeParams struct {
	ProcessID             codec.Nullable[int]
	RootPath              codec.Clearable[string]
	RootURI               codec.Nullable[string]
	InitializationOptions codec.Optional[jsonvalue.Value]
	Capabilities          *ClientCapabilities
	Trace                 codec.Optional[TraceKind]
}

// ServerCapabilities is what the server announces in its initialize result.
type ServerCapabilities struct {
	TextDocumentSync       codec.Optional[TextDocumentSyncKind]
	HoverProvider          codec.Optional[bool]
	DefinitionProvider     codec.Optional[bool]
	DocumentSymbolProvider codec.Optional[bool]
}

// InitializeResult is the result of initialize.
type InitializeResult struct {
	Capabilities *ServerCapabilities
}

// InitializedParams are the (empty) params of initialized.
type InitializedParams struct{}

// CancelParams are the params of $/cancelRequest.
type CancelParams struct {
	ID ID
}

var (
	symbolKindOptionsSchema = codec.NewSchema("SymbolKindOptions",
		codec.OptionalField("valueSet", codec.Array(symbolKindCodec),
			func(o *SymbolKindOptions) *codec.Optional[[]SymbolKind] { return &o.ValueSet }),
	)

	workspaceSymbolClientCapabilitiesSchema = codec.NewSchema("WorkspaceSymbolClientCapabilities",
		codec.OptionalField("dynamicRegistration", codec.Bool,
			func(c *WorkspaceSymbolClientCapabilities) *codec.Optional[bool] { return &c.DynamicRegistration }),
		codec.OptionalField("symbolKind", codec.Object(symbolKindOptionsSchema),
			func(c *WorkspaceSymbolClientCapabilities) *codec.Optional[*SymbolKindOptions] { return &c.SymbolKind }),
	)

	hoverClientCapabilitiesSchema = codec.NewSchema("HoverClientCapabilities",
		codec.OptionalField("dynamicRegistration", codec.Bool,
			func(c *HoverClientCapabilities) *codec.Optional[bool] { return &c.DynamicRegistration }),
		codec.OptionalField("contentFormat", codec.Array(markupKindCodec),
			func(c *HoverClientCapabilities) *codec.Optional[[]MarkupKind] { return &c.ContentFormat }),
	)

	textDocumentClientCapabilitiesSchema = codec.NewSchema("TextDocumentClientCapabilities",
		codec.OptionalField("hover", codec.Object(hoverClientCapabilitiesSchema),
			func(c *TextDocumentClientCapabilities) *codec.Optional[*HoverClientCapabilities] { return &c.Hover }),
	)

	workspaceClientCapabilitiesSchema = codec.NewSchema("WorkspaceClientCapabilities",
		codec.OptionalField("applyEdit", codec.Bool,
			func(c *WorkspaceClientCapabilities) *codec.Optional[bool] { return &c.ApplyEdit }),
		codec.OptionalField("symbol", codec.Object(workspaceSymbolClientCapabilitiesSchema),
			func(c *WorkspaceClientCapabilities) *codec.Optional[*WorkspaceSymbolClientCapabilities] { return &c.Symbol }),
		codec.OptionalField("configuration", codec.Bool,
			func(c *WorkspaceClientCapabilities) *codec.Optional[bool] { return &c.Configuration }),
	)

	clientCapabilitiesSchema = codec.NewSchema("ClientCapabilities",
		codec.OptionalField("workspace", codec.Object(workspaceClientCapabilitiesSchema),
			func(c *ClientCapabilities) *codec.Optional[*WorkspaceClientCapabilities] { return &c.Workspace }),
		codec.OptionalField("textDocument", codec.Object(textDocumentClientCapabilitiesSchema),
			func(c *ClientCapabilities) *codec.Optional[*TextDocumentClientCapabilities] { return &c.TextDocument }),
	)

	initializeParamsSchema = codec.NewSchema("InitializeParams",
		codec.Required("processId", codec.NullableOf(codec.Int),
			func(p *InitializeParams) *codec.Nullable[int] { return &p.ProcessID }),
		codec.ClearableField("rootPath", codec.String,
			func(p *InitializeParams) *codec.Clearable[string] { return &p.RootPath }),
		codec.Required("rootUri", codec.NullableOf(codec.String),
			func(p *InitializeParams) *codec.Nullable[string] { return &p.RootURI }),
		codec.OptionalField("initializationOptions", codec.Raw,
			func(p *InitializeParams) *codec.Optional[jsonvalue.Value] { return &p.InitializationOptions }),
		codec.Required("capabilities", codec.Object(clientCapabilitiesSchema),
			func(p *InitializeParams) **ClientCapabilities { return &p.Capabilities }),
		codec.OptionalField("trace", traceKindCodec,
			func(p *InitializeParams) *codec.Optional[TraceKind] { return &p.Trace }),
	)

	serverCapabilitiesSchema = codec.NewSchema("ServerCapabilities",
		codec.OptionalField("textDocumentSync", textDocumentSyncKindCodec,
			func(c *ServerCapabilities) *codec.Optional[TextDocumentSyncKind] { return &c.TextDocumentSync }),
		codec.OptionalField("hoverProvider", codec.Bool,
			func(c *ServerCapabilities) *codec.Optional[bool] { return &c.HoverProvider }),
		codec.OptionalField("definitionProvider", codec.Bool,
			func(c *ServerCapabilities) *codec.Optional[bool] { return &c.DefinitionProvider }),
		codec.OptionalField("documentSymbolProvider", codec.Bool,
			func(c *ServerCapabilities) *codec.Optional[bool] { return &c.DocumentSymbolProvider }),
	)

	initializeResultSchema = codec.NewSchema("InitializeResult",
		codec.Required("capabilities", codec.Object(serverCapabilitiesSchema),
			func(r *InitializeResult) **ServerCapabilities { return &r.Capabilities }),
	)

	initializedParamsSchema = codec.NewSchema[InitializedParams]("InitializedParams")

	cancelParamsSchema = codec.NewSchema("CancelParams",
		codec.Required("id", idCodec, func(p *CancelParams) *ID { return &p.ID }),
	)
)
