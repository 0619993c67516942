// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"encoding/json"
	"testing"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRange = `{"start": {"line": 0, "character": 1}, "end": {"line": 2, "character": 3}}`

// roundTrip decodes input, re-encodes it and decodes the output again,
// checking that both decodes agree.
func roundTrip[T any](t *testing.T, s *codec.Schema[T], input string) *T {
	t.Helper()
	x, err := s.Unmarshal([]byte(input))
	require.NoError(t, err)

	out, err := s.Marshal(x)
	require.NoError(t, err)

	again, err := s.Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, x, again)
	return x
}

func requireCodecError(t *testing.T, err error, kind error, path string) {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var ce *codec.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, path, ce.Path.String())
}

func TestRange(t *testing.T) {
	r := roundTrip(t, rangeSchema, sampleRange)
	assert.Equal(t, NewRange(0, 1, 2, 3), r)

	tests := []struct {
		name  string
		input string
		kind  error
		path  string
	}{
		{"missing field", `{"start": {"line": 0, "character": 1}, "end": {"line": 2}}`, codec.ErrMissingField, "end.character"},
		{"not an object", `4`, codec.ErrJSONType, ""},
		{"bool for int", `{"start": {"line": 0, "character": true}, "end": {"line": 2, "character": 3}}`, codec.ErrJSONType, "start.character"},
		{"fraction for int", `{"start": {"line": 0, "character": 1.1}, "end": {"line": 2, "character": 3}}`, codec.ErrJSONType, "start.character"},
		{"whole fraction for int", `{"start": {"line": 2.0, "character": 1}, "end": {"line": 2, "character": 3}}`, codec.ErrJSONType, "start.line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rangeSchema.Unmarshal([]byte(tt.input))
			requireCodecError(t, err, tt.kind, tt.path)
		})
	}
}

func TestRangeNilSubObject(t *testing.T) {
	bad := &Range{Start: &Position{Line: 1}}
	_, err := rangeSchema.Marshal(bad)
	requireCodecError(t, err, codec.ErrNullPointer, "end")
}

func TestTextEdit(t *testing.T) {
	edit := roundTrip(t, textEditSchema, `{"range": `+sampleRange+`, "newText": "foobar"}`)
	assert.Equal(t, "foobar", edit.NewText)

	_, err := textEditSchema.Unmarshal([]byte(`{"range": ` + sampleRange + `, "newText": 4.0}`))
	requireCodecError(t, err, codec.ErrJSONType, "newText")
}

func TestMarkupContent(t *testing.T) {
	content := roundTrip(t, markupContentSchema, `{"kind": "markdown", "value": "Hello"}`)
	assert.Equal(t, MarkupKindMarkdown, content.Kind)

	_, err := markupContentSchema.Unmarshal([]byte(`{"kind": "foobar", "value": "Hello"}`))
	requireCodecError(t, err, codec.ErrInvalidStringEnum, "kind")

	_, err = markupContentSchema.Unmarshal([]byte(`{"kind": 4, "value": "Hello"}`))
	requireCodecError(t, err, codec.ErrJSONType, "kind")

	content.Kind = "foobar"
	_, err = markupContentSchema.Marshal(content)
	requireCodecError(t, err, codec.ErrInvalidEnumValue, "kind")
}

func TestVersionedTextDocumentIdentifierNullVersion(t *testing.T) {
	id := roundTrip(t, versionedTextDocumentIdentifierSchema, `{"uri": "file://foo", "version": null}`)
	assert.True(t, id.Version.Null)

	out, err := versionedTextDocumentIdentifierSchema.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"uri": "file://foo", "version": null}`, string(out))

	id = roundTrip(t, versionedTextDocumentIdentifierSchema, `{"uri": "file://foo", "version": 7}`)
	v, ok := id.Version.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, err = versionedTextDocumentIdentifierSchema.Unmarshal([]byte(`{"uri": "file://foo"}`))
	requireCodecError(t, err, codec.ErrMissingField, "version")
}

func TestCreateOrRenameFileOptions(t *testing.T) {
	opts := roundTrip(t, createOrRenameFileOptionsSchema, `{"overwrite": true}`)
	assert.Equal(t, codec.Some(true), opts.Overwrite)
	assert.False(t, opts.IgnoreIfExists.Valid)

	opts = roundTrip(t, createOrRenameFileOptionsSchema, `{}`)
	assert.False(t, opts.Overwrite.Valid)

	out, err := createOrRenameFileOptionsSchema.Marshal(opts)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	_, err = createOrRenameFileOptionsSchema.Unmarshal([]byte(`{"overwrite": 4}`))
	requireCodecError(t, err, codec.ErrJSONType, "overwrite")
}

func TestColorAcceptsIntsAndDoubles(t *testing.T) {
	const input = `{"red": 0, "green": 1.1, "blue": 2.0, "alpha": 3}`
	color := roundTrip(t, colorSchema, input)
	assert.Equal(t, &Color{Red: 0, Green: 1.1, Blue: 2, Alpha: 3}, color)

	out, err := colorSchema.Marshal(color)
	require.NoError(t, err)
	assert.Equal(t, `{"red":0.0,"green":1.1,"blue":2.0,"alpha":3.0}`, string(out))

	want, err := jsonvalue.Parse([]byte(input))
	require.NoError(t, err)
	got, err := jsonvalue.Parse(out)
	require.NoError(t, err)
	assert.True(t, jsonvalue.Equal(want, got), "whole doubles re-encode equal to their int literals")
}

func TestCancelParams(t *testing.T) {
	p := roundTrip(t, cancelParamsSchema, `{"id": 4}`)
	n, ok := p.ID.First()
	require.True(t, ok)
	assert.Equal(t, 4, n)
	_, ok = p.ID.Second()
	assert.False(t, ok)

	p = roundTrip(t, cancelParamsSchema, `{"id": "iamanid"}`)
	s, ok := p.ID.Second()
	require.True(t, ok)
	assert.Equal(t, "iamanid", s)
	_, ok = p.ID.First()
	assert.False(t, ok)

	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"missing id", `{}`, codec.ErrMissingField},
		{"bool id", `{"id": true}`, codec.ErrJSONType},
		{"fractional id", `{"id": 4.1}`, codec.ErrJSONType},
		{"null id", `{"id": null}`, codec.ErrJSONType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cancelParamsSchema.Unmarshal([]byte(tt.input))
			requireCodecError(t, err, tt.kind, "id")
		})
	}

	_, err := cancelParamsSchema.Marshal(&CancelParams{})
	requireCodecError(t, err, codec.ErrMissingVariantValue, "id")
}

func TestCreateFileConstant(t *testing.T) {
	f := roundTrip(t, createFileSchema, `{"kind": "create", "uri": "file://foo"}`)
	assert.Equal(t, ResourceOperationCreate, f.Kind)
	assert.Equal(t, "file://foo", f.URI)

	_, err := createFileSchema.Unmarshal([]byte(`{"kind": "delete", "uri": "file://foo"}`))
	requireCodecError(t, err, codec.ErrInvalidConstantValue, "kind")

	_, err = createFileSchema.Unmarshal([]byte(`{"kind": 4, "uri": "file://foo"}`))
	requireCodecError(t, err, codec.ErrJSONType, "kind")

	f.Kind = ResourceOperationDelete
	_, err = createFileSchema.Marshal(f)
	requireCodecError(t, err, codec.ErrInvalidConstantValue, "kind")

	out, err := createFileSchema.Marshal(NewCreateFile("file://bar"))
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"create","uri":"file://bar"}`, string(out))

	d := roundTrip(t, deleteFileSchema, `{"kind": "delete", "uri": "file://foo", "options": {"recursive": true}}`)
	assert.Equal(t, NewDeleteFile("file://foo").Kind, d.Kind)
}

func TestSymbolKindOptions(t *testing.T) {
	opts := roundTrip(t, symbolKindOptionsSchema, `{"valueSet": [1, 2, 3, 4, 5]}`)
	kinds, ok := opts.ValueSet.Get()
	require.True(t, ok)
	assert.Equal(t, []SymbolKind{SymbolKindFile, SymbolKindModule, SymbolKindNamespace, SymbolKindPackage, SymbolKindClass}, kinds)
	assert.Equal(t, SymbolKind(3), SymbolKindNamespace)
	assert.Equal(t, SymbolKind(21), SymbolKindNull)
	assert.Equal(t, SymbolKind(26), SymbolKindTypeParameter)

	roundTrip(t, symbolKindOptionsSchema, `{"valueSet": []}`)

	tests := []struct {
		name  string
		input string
		kind  error
		path  string
	}{
		{"object for array", `{"valueSet": {}}`, codec.ErrJSONType, "valueSet"},
		{"bool element", `{"valueSet": [1,2,true,4]}`, codec.ErrJSONType, "valueSet[2]"},
		{"negative member", `{"valueSet": [1,2,-1,10]}`, codec.ErrInvalidEnumValue, "valueSet[2]"},
		{"zero", `{"valueSet": [0]}`, codec.ErrInvalidEnumValue, "valueSet[0]"},
		{"past the last member", `{"valueSet": [27]}`, codec.ErrInvalidEnumValue, "valueSet[0]"},
		{"fraction element", `{"valueSet": [1,2.1]}`, codec.ErrJSONType, "valueSet[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := symbolKindOptionsSchema.Unmarshal([]byte(tt.input))
			requireCodecError(t, err, tt.kind, tt.path)
		})
	}

	kinds[1] = SymbolKind(-1)
	_, err := symbolKindOptionsSchema.Marshal(opts)
	requireCodecError(t, err, codec.ErrInvalidEnumValue, "valueSet[1]")
}

func TestWatchmanQueryResponseRenamedField(t *testing.T) {
	input := `{"version": "versionstring", "clock": "clockvalue", "is_fresh_instance": true, "files": ["foo.rb"]}`
	w := roundTrip(t, watchmanQueryResponseSchema, input)
	assert.Equal(t, "versionstring", w.Version)
	assert.Equal(t, "clockvalue", w.Clock)
	assert.True(t, w.IsFreshInstance)
	assert.Equal(t, []string{"foo.rb"}, w.Files)

	out, err := watchmanQueryResponseSchema.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"is_fresh_instance":true`)

	_, err = watchmanQueryResponseSchema.Unmarshal([]byte(`{"version": "v", "clock": "c", "isFreshInstance": true, "files": []}`))
	requireCodecError(t, err, codec.ErrMissingField, "is_fresh_instance")
}

func TestConfigurationItemAcceptsNull(t *testing.T) {
	item := roundTrip(t, configurationItemSchema, `{"scopeUri": null}`)
	assert.False(t, item.ScopeURI.Valid)
	assert.False(t, item.Section.Valid)

	item = roundTrip(t, configurationItemSchema, `{"scopeUri": "file://foo", "section": "sorbet"}`)
	assert.Equal(t, "file://foo", item.ScopeURI.OrElse(""))
	assert.Equal(t, "sorbet", item.Section.OrElse(""))
}

func TestInitializeParams(t *testing.T) {
	input := `{
		"processId": 42,
		"rootPath": null,
		"rootUri": null,
		"initializationOptions": {"supportsOperationNotifications": true},
		"capabilities": {
			"workspace": {"symbol": {"symbolKind": {"valueSet": [1, 2]}}, "configuration": true},
			"textDocument": {"hover": {"contentFormat": ["markdown", "plaintext"]}}
		},
		"trace": "verbose"
	}`
	p, err := initializeParamsSchema.Unmarshal([]byte(input))
	require.NoError(t, err)

	pid, ok := p.ProcessID.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, pid)
	assert.True(t, p.RootPath.IsCleared())
	assert.True(t, p.RootURI.Null)
	assert.Equal(t, codec.Some(TraceKindVerbose), p.Trace)

	ws, ok := p.Capabilities.Workspace.Get()
	require.True(t, ok)
	assert.Equal(t, codec.Some(true), ws.Configuration)

	opts, ok := p.InitializationOptions.Get()
	require.True(t, ok)
	assert.Equal(t, jsonvalue.KindObject, opts.Kind())

	out, err := initializeParamsSchema.Marshal(p)
	require.NoError(t, err)
	want, err := jsonvalue.Parse([]byte(input))
	require.NoError(t, err)
	got, err := jsonvalue.Parse(out)
	require.NoError(t, err)
	assert.True(t, jsonvalue.Equal(want, got), "re-encoded: %s", out)

	_, err = initializeParamsSchema.Unmarshal([]byte(`{"processId": null, "rootUri": null, "capabilities": {}, "trace": "loud"}`))
	requireCodecError(t, err, codec.ErrInvalidStringEnum, "trace")
}

func TestDiagnosticCodeVariant(t *testing.T) {
	d := roundTrip(t, diagnosticSchema, `{"range": `+sampleRange+`, "severity": 1, "code": "E100", "message": "bad"}`)
	code, ok := d.Code.Get()
	require.True(t, ok)
	s, ok := code.Second()
	assert.True(t, ok)
	assert.Equal(t, "E100", s)

	_, err := diagnosticSchema.Unmarshal([]byte(`{"range": ` + sampleRange + `, "severity": 5, "message": "bad"}`))
	requireCodecError(t, err, codec.ErrInvalidEnumValue, "severity")
}

func TestGeneratedJSONMethods(t *testing.T) {
	var r Range
	require.NoError(t, json.Unmarshal([]byte(sampleRange), &r))
	assert.Equal(t, *NewRange(0, 1, 2, 3), r)

	out, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.JSONEq(t, sampleRange, string(out))

	var item TextDocumentItem
	err = json.Unmarshal([]byte(`{"uri": "file://a.rb", "languageId": "ruby", "version": 1.5, "text": ""}`), &item)
	assert.ErrorIs(t, err, codec.ErrJSONType)
	assert.Equal(t, TextDocumentItem{}, item)

	_, err = json.Marshal(&Location{URI: "file://a.rb"})
	assert.ErrorIs(t, err, codec.ErrNullPointer)
}
