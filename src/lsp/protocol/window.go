// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import (
	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"
)

// ShowMessageParams are the params of window/showMessage.
type ShowMessageParams struct {
	Type    MessageType
	Message string
}

// SorbetErrorParams report a server-side failure to the client.
type SorbetErrorParams struct {
	Code    int
	Message string
}

// WatchmanQueryResponse is a file change batch forwarded from Watchman.
type WatchmanQueryResponse struct {
	Version         string
	Clock           string
	IsFreshInstance bool
	Files           []string
}

// ResponseError is the error member of a failed response.
type ResponseError struct {
	Code    int
	Message string
	Data    codec.Optional[jsonvalue.Value]
}

// NewResponseError returns a ResponseError without data.
func NewResponseError(code int, message string) *ResponseError {
	return &ResponseError{Code: code, Message: message}
}

// Error implements the error interface so a ResponseError can be returned
// from handlers directly.
func (e *ResponseError) Error() string { return e.Message }

var (
	showMessageParamsSchema = codec.NewSchema("ShowMessageParams",
		codec.Required("type", messageTypeCodec, func(p *ShowMessageParams) *MessageType { return &p.Type }),
		codec.Required("message", codec.String, func(p *ShowMessageParams) *string { return &p.Message }),
	)

	sorbetErrorParamsSchema = codec.NewSchema("SorbetErrorParams",
		codec.Required("code", codec.Int, func(p *SorbetErrorParams) *int { return &p.Code }),
		codec.Required("message", codec.String, func(p *SorbetErrorParams) *string { return &p.Message }),
	)

	watchmanQueryResponseSchema = codec.NewSchema("WatchmanQueryResponse",
		codec.Required("version", codec.String, func(w *WatchmanQueryResponse) *string { return &w.Version }),
		codec.Required("clock", codec.String, func(w *WatchmanQueryResponse) *string { return &w.Clock }),
		codec.Required("is_fresh_instance", codec.Bool, func(w *WatchmanQueryResponse) *bool { return &w.IsFreshInstance }),
		codec.Required("files", codec.Array(codec.String), func(w *WatchmanQueryResponse) *[]string { return &w.Files }),
	)

	responseErrorSchema = codec.NewSchema("ResponseError",
		codec.Required("code", codec.Int, func(e *ResponseError) *int { return &e.Code }),
		codec.Required("message", codec.String, func(e *ResponseError) *string { return &e.Message }),
		codec.OptionalField("data", codec.Raw, func(e *ResponseError) *codec.Optional[jsonvalue.Value] { return &e.Data }),
	)
)
