// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"

// DidOpenTextDocumentParams are the params of textDocument/didOpen.
type DidOpenTextDocumentParams struct {
	TextDocument *TextDocumentItem
}

// TextDocumentContentChangeEvent is one edit to a document. Without Range it
// replaces the whole text.
type TextDocumentContentChangeEvent struct {
	Range       codec.Optional[*Range]
	RangeLength codec.Optional[int]
	Text        string
}

// DidChangeTextDocumentParams are the params of textDocument/didChange.
type DidChangeTextDocumentParams struct {
	TextDocument   *VersionedTextDocumentIdentifier
	ContentChanges []*TextDocumentContentChangeEvent
}

// DidCloseTextDocumentParams are the params of textDocument/didClose.
type DidCloseTextDocumentParams struct {
	TextDocument *TextDocumentIdentifier
}

// DocumentSymbolParams are the params of textDocument/documentSymbol.
type DocumentSymbolParams struct {
	TextDocument *TextDocumentIdentifier
}

// SymbolInformation describes a symbol in a document.
type SymbolInformation struct {
	Name          string
	Kind          SymbolKind
	Deprecated    codec.Optional[bool]
	Location      *Location
	ContainerName codec.Optional[string]
}

// DiagnosticCode is a diagnostic code: an integer or a string.
type DiagnosticCode = codec.Variant[int, string]

// Diagnostic is a compiler error or warning.
type Diagnostic struct {
	Range    *Range
	Severity codec.Optional[DiagnosticSeverity]
	Code     codec.Optional[DiagnosticCode]
	Source   codec.Optional[string]
	Message  string
}

// PublishDiagnosticsParams are the params of textDocument/publishDiagnostics.
type PublishDiagnosticsParams struct {
	URI         string
	Diagnostics []*Diagnostic
}

var (
	didOpenTextDocumentParamsSchema = codec.NewSchema("DidOpenTextDocumentParams",
		codec.Required("textDocument", codec.Object(textDocumentItemSchema),
			func(p *DidOpenTextDocumentParams) **TextDocumentItem { return &p.TextDocument }),
	)

	textDocumentContentChangeEventSchema = codec.NewSchema("TextDocumentContentChangeEvent",
		codec.OptionalField("range", codec.Object(rangeSchema),
			func(e *TextDocumentContentChangeEvent) *codec.Optional[*Range] { return &e.Range }),
		codec.OptionalField("rangeLength", codec.Int,
			func(e *TextDocumentContentChangeEvent) *codec.Optional[int] { return &e.RangeLength }),
		codec.Required("text", codec.String, func(e *TextDocumentContentChangeEvent) *string { return &e.Text }),
	)

	didChangeTextDocumentParamsSchema = codec.NewSchema("DidChangeTextDocumentParams",
		codec.Required("textDocument", codec.Object(versionedTextDocumentIdentifierSchema),
			func(p *DidChangeTextDocumentParams) **VersionedTextDocumentIdentifier { return &p.TextDocument }),
		codec.Required("contentChanges", codec.Array(codec.Object(textDocumentContentChangeEventSchema)),
			func(p *DidChangeTextDocumentParams) *[]*TextDocumentContentChangeEvent { return &p.ContentChanges }),
	)

	didCloseTextDocumentParamsSchema = codec.NewSchema("DidCloseTextDocumentParams",
		codec.Required("textDocument", codec.Object(textDocumentIdentifierSchema),
			func(p *DidCloseTextDocumentParams) **TextDocumentIdentifier { return &p.TextDocument }),
	)

	documentSymbolParamsSchema = codec.NewSchema("DocumentSymbolParams",
		codec.Required("textDocument", codec.Object(textDocumentIdentifierSchema),
			func(p *DocumentSymbolParams) **TextDocumentIdentifier { return &p.TextDocument }),
	)

	symbolInformationSchema = codec.NewSchema("SymbolInformation",
		codec.Required("name", codec.String, func(s *SymbolInformation) *string { return &s.Name }),
		codec.Required("kind", symbolKindCodec, func(s *SymbolInformation) *SymbolKind { return &s.Kind }),
		codec.OptionalField("deprecated", codec.Bool,
			func(s *SymbolInformation) *codec.Optional[bool] { return &s.Deprecated }),
		codec.Required("location", codec.Object(locationSchema), func(s *SymbolInformation) **Location { return &s.Location }),
		codec.OptionalField("containerName", codec.String,
			func(s *SymbolInformation) *codec.Optional[string] { return &s.ContainerName }),
	)

	diagnosticSchema = codec.NewSchema("Diagnostic",
		codec.Required("range", codec.Object(rangeSchema), func(d *Diagnostic) **Range { return &d.Range }),
		codec.OptionalField("severity", diagnosticSeverityCodec,
			func(d *Diagnostic) *codec.Optional[DiagnosticSeverity] { return &d.Severity }),
		codec.OptionalField("code", codec.OneOf(codec.Int, codec.String),
			func(d *Diagnostic) *codec.Optional[DiagnosticCode] { return &d.Code }),
		codec.OptionalField("source", codec.String, func(d *Diagnostic) *codec.Optional[string] { return &d.Source }),
		codec.Required("message", codec.String, func(d *Diagnostic) *string { return &d.Message }),
	)

	publishDiagnosticsParamsSchema = codec.NewSchema("PublishDiagnosticsParams",
		codec.Required("uri", codec.String, func(p *PublishDiagnosticsParams) *string { return &p.URI }),
		codec.Required("diagnostics", codec.Array(codec.Object(diagnosticSchema)),
			func(p *PublishDiagnosticsParams) *[]*Diagnostic { return &p.Diagnostics }),
	)
)
