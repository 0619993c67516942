// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"

// Position is a zero-based line and character offset in a document.
type Position struct {
	Line      int
	Character int
}

// Range is a span between two positions.
type Range struct {
	Start *Position
	End   *Position
}

// Location is a range inside a document.
type Location struct {
	URI   string
	Range *Range
}

// TextEdit replaces Range with NewText.
type TextEdit struct {
	Range   *Range
	NewText string
}

// TextDocumentIdentifier names a document by URI.
type TextDocumentIdentifier struct {
	URI string
}

// VersionedTextDocumentIdentifier names a document at a version. A null
// version means the client does not track versions for it.
type VersionedTextDocumentIdentifier struct {
	URI     string
	Version codec.Nullable[int]
}

// TextDocumentItem is a document transferred from the client on open.
type TextDocumentItem struct {
	URI        string
	LanguageID string
	Version    int
	Text       string
}

// TextDocumentPositionParams is a position inside a document.
type TextDocumentPositionParams struct {
	TextDocument *TextDocumentIdentifier
	Position     *Position
}

// MarkupContent is text in plaintext or markdown.
type MarkupContent struct {
	Kind  MarkupKind
	Value string
}

// Hover is the result of textDocument/hover.
type Hover struct {
	Contents *MarkupContent
	Range    codec.Optional[*Range]
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64
}

var (
	positionSchema = codec.NewSchema("Position",
		codec.Required("line", codec.Int, func(p *Position) *int { return &p.Line }),
		codec.Required("character", codec.Int, func(p *Position) *int { return &p.Character }),
	)

	rangeSchema = codec.NewSchema("Range",
		codec.Required("start", codec.Object(positionSchema), func(r *Range) **Position { return &r.Start }),
		codec.Required("end", codec.Object(positionSchema), func(r *Range) **Position { return &r.End }),
	)

	locationSchema = codec.NewSchema("Location",
		codec.Required("uri", codec.String, func(l *Location) *string { return &l.URI }),
		codec.Required("range", codec.Object(rangeSchema), func(l *Location) **Range { return &l.Range }),
	)

	textEditSchema = codec.NewSchema("TextEdit",
		codec.Required("range", codec.Object(rangeSchema), func(e *TextEdit) **Range { return &e.Range }),
		codec.Required("newText", codec.String, func(e *TextEdit) *string { return &e.NewText }),
	)

	textDocumentIdentifierSchema = codec.NewSchema("TextDocumentIdentifier",
		codec.Required("uri", codec.String, func(d *TextDocumentIdentifier) *string { return &d.URI }),
	)

	versionedTextDocumentIdentifierSchema = codec.NewSchema("VersionedTextDocumentIdentifier",
		codec.Required("uri", codec.String, func(d *VersionedTextDocumentIdentifier) *string { return &d.URI }),
		codec.Required("version", codec.NullableOf(codec.Int),
			func(d *VersionedTextDocumentIdentifier) *codec.Nullable[int] { return &d.Version }),
	)

	textDocumentItemSchema = codec.NewSchema("TextDocumentItem",
		codec.Required("uri", codec.String, func(d *TextDocumentItem) *string { return &d.URI }),
		codec.Required("languageId", codec.String, func(d *TextDocumentItem) *string { return &d.LanguageID }),
		codec.Required("version", codec.Int, func(d *TextDocumentItem) *int { return &d.Version }),
		codec.Required("text", codec.String, func(d *TextDocumentItem) *string { return &d.Text }),
	)

	textDocumentPositionParamsSchema = codec.NewSchema("TextDocumentPositionParams",
		codec.Required("textDocument", codec.Object(textDocumentIdentifierSchema),
			func(p *TextDocumentPositionParams) **TextDocumentIdentifier { return &p.TextDocument }),
		codec.Required("position", codec.Object(positionSchema),
			func(p *TextDocumentPositionParams) **Position { return &p.Position }),
	)

	markupContentSchema = codec.NewSchema("MarkupContent",
		codec.Required("kind", markupKindCodec, func(m *MarkupContent) *MarkupKind { return &m.Kind }),
		codec.Required("value", codec.String, func(m *MarkupContent) *string { return &m.Value }),
	)

	hoverSchema = codec.NewSchema("Hover",
		codec.Required("contents", codec.Object(markupContentSchema), func(h *Hover) **MarkupContent { return &h.Contents }),
		codec.OptionalField("range", codec.Object(rangeSchema), func(h *Hover) *codec.Optional[*Range] { return &h.Range }),
	)

	colorSchema = codec.NewSchema("Color",
		codec.Required("red", codec.Double, func(c *Color) *float64 { return &c.Red }),
		codec.Required("green", codec.Double, func(c *Color) *float64 { return &c.Green }),
		codec.Required("blue", codec.Double, func(c *Color) *float64 { return &c.Blue }),
		codec.Required("alpha", codec.Double, func(c *Color) *float64 { return &c.Alpha }),
	)
)

// NewRange returns the range between two line/character pairs.
func NewRange(startLine, startChar, endLine, endChar int) *Range {
	return &Range{
		Start: &Position{Line: startLine, Character: startChar},
		End:   &Position{Line: endLine, Character: endChar},
	}
}
