// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"

// MarkupKind is the format of a [MarkupContent] value.
type MarkupKind string

// Markup kinds a client may request for hover and documentation content.
const (
	MarkupKindPlainText MarkupKind = "plaintext"
	MarkupKindMarkdown  MarkupKind = "markdown"
)

// SymbolKind classifies a symbol in document and workspace symbol results.
type SymbolKind int

const (
	SymbolKindFile SymbolKind = iota + 1
	SymbolKindModule
	SymbolKindNamespace
	SymbolKindPackage
	SymbolKindClass
	SymbolKindMethod
	SymbolKindProperty
	SymbolKindField
	SymbolKindConstructor
	SymbolKindEnum
	SymbolKindInterface
	SymbolKindFunction
	SymbolKindVariable
	SymbolKindConstant
	SymbolKindString
	SymbolKindNumber
	SymbolKindBoolean
	SymbolKindArray
	SymbolKindObject
	SymbolKindKey
	SymbolKindNull
	SymbolKindEnumMember
	SymbolKindStruct
	SymbolKindEvent
	SymbolKindOperator
	SymbolKindTypeParameter
)

// TextDocumentSyncKind is how the client sends document changes.
type TextDocumentSyncKind int

const (
	TextDocumentSyncKindNone TextDocumentSyncKind = iota
	TextDocumentSyncKindFull
	TextDocumentSyncKindIncremental
)

// MessageType is the severity of a window/showMessage notification.
type MessageType int

const (
	MessageTypeError MessageType = iota + 1
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeLog
)

// DiagnosticSeverity is the severity of a [Diagnostic].
type DiagnosticSeverity int

const (
	DiagnosticSeverityError DiagnosticSeverity = iota + 1
	DiagnosticSeverityWarning
	DiagnosticSeverityInformation
	DiagnosticSeverityHint
)

// TraceKind is the trace setting requested by the client.
type TraceKind string

const (
	TraceKindOff      TraceKind = "off"
	TraceKindMessages TraceKind = "messages"
	TraceKindVerbose  TraceKind = "verbose"
)

var (
	markupKindCodec = codec.StringEnum("MarkupKind", MarkupKindPlainText, MarkupKindMarkdown)

	symbolKindCodec = codec.IntEnum("SymbolKind",
		SymbolKindFile, SymbolKindModule, SymbolKindNamespace, SymbolKindPackage,
		SymbolKindClass, SymbolKindMethod, SymbolKindProperty, SymbolKindField,
		SymbolKindConstructor, SymbolKindEnum, SymbolKindInterface, SymbolKindFunction,
		SymbolKindVariable, SymbolKindConstant, SymbolKindString, SymbolKindNumber,
		SymbolKindBoolean, SymbolKindArray, SymbolKindObject, SymbolKindKey,
		SymbolKindNull, SymbolKindEnumMember, SymbolKindStruct, SymbolKindEvent,
		SymbolKindOperator, SymbolKindTypeParameter,
	)

	textDocumentSyncKindCodec = codec.IntEnum("TextDocumentSyncKind",
		TextDocumentSyncKindNone, TextDocumentSyncKindFull, TextDocumentSyncKindIncremental)

	messageTypeCodec = codec.IntEnum("MessageType",
		MessageTypeError, MessageTypeWarning, MessageTypeInfo, MessageTypeLog)

	diagnosticSeverityCodec = codec.IntEnum("DiagnosticSeverity",
		DiagnosticSeverityError, DiagnosticSeverityWarning,
		DiagnosticSeverityInformation, DiagnosticSeverityHint)

	traceKindCodec = codec.StringEnum("TraceKind", TraceKindOff, TraceKindMessages, TraceKindVerbose)
)
