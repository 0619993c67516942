// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/internal/helper/gc"
	"github.com/buger/jsonparser"
)

const (
	// DefaultMaxDepth bounds the nesting of arrays and objects accepted by Parse.
	DefaultMaxDepth = 256
	// DefaultMaxBytes bounds the size of a document read by ParseReader.
	DefaultMaxBytes = 64 << 20
)

var (
	// ErrSyntax reports text that is not a single well-formed JSON document.
	ErrSyntax = errors.New("invalid JSON syntax")
	// ErrTooDeep reports a document nested deeper than the configured limit.
	ErrTooDeep = errors.New("JSON nesting too deep")
	// ErrTooLarge reports a document larger than the configured limit.
	ErrTooLarge = errors.New("JSON document too large")
	// ErrNumberRange reports a well-formed number that does not fit a float64.
	ErrNumberRange = errors.New("JSON number out of range")
)

type parseConfig struct {
	maxDepth int
	maxBytes int64
}

// ParseOption configures Parse and ParseReader.
type ParseOption func(*parseConfig)

// WithMaxDepth limits how deeply arrays and objects may nest. Values below 1
// restore the default.
func WithMaxDepth(depth int) ParseOption {
	return func(c *parseConfig) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		c.maxDepth = depth
	}
}

// WithMaxBytes limits the document size accepted by ParseReader. Values below
// 1 restore the default.
func WithMaxBytes(n int64) ParseOption {
	return func(c *parseConfig) {
		if n < 1 {
			n = DefaultMaxBytes
		}
		c.maxBytes = n
	}
}

func newParseConfig(opts []ParseOption) parseConfig {
	c := parseConfig{maxDepth: DefaultMaxDepth, maxBytes: DefaultMaxBytes}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Parse converts one complete JSON document into a Value.
//
// Parameters:
//   - data: The JSON text. It is not retained.
//   - opts: Optional limits (see [WithMaxDepth]).
//
// Returns:
//   - Value: The parsed document
//   - error: [ErrSyntax], [ErrTooDeep] or [ErrNumberRange], wrapped with detail
func Parse(data []byte, opts ...ParseOption) (Value, error) {
	c := newParseConfig(opts)

	// jsonparser skips over malformed regions it does not need, so the full
	// grammar is checked up front.
	if !json.Valid(data) {
		return Value{}, fmt.Errorf("%w: %s", ErrSyntax, describeSyntaxError(data))
	}

	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return c.build(raw, typ, 0)
}

// ParseReader reads one complete JSON document from r into a pooled buffer and
// parses it. Documents larger than the configured limit fail with [ErrTooLarge].
func ParseReader(r io.Reader, opts ...ParseOption) (Value, error) {
	c := newParseConfig(opts)

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(io.LimitReader(r, c.maxBytes+1)); err != nil {
		return Value{}, fmt.Errorf("reading JSON document: %w", err)
	}
	if int64(len(buf.Bytes())) > c.maxBytes {
		return Value{}, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, c.maxBytes)
	}

	return Parse(buf.Bytes(), opts...)
}

func describeSyntaxError(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err.Error()
	}
	return "malformed document"
}

func (c *parseConfig) build(raw []byte, typ jsonparser.ValueType, depth int) (Value, error) {
	switch typ {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return Bool(b), nil
	case jsonparser.Number:
		return parseNumber(raw)
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return parseEscapedString(raw)
		}
		return String(s), nil
	case jsonparser.Array:
		if depth >= c.maxDepth {
			return Value{}, fmt.Errorf("%w: limit is %d", ErrTooDeep, c.maxDepth)
		}
		return c.buildArray(raw, depth+1)
	case jsonparser.Object:
		if depth >= c.maxDepth {
			return Value{}, fmt.Errorf("%w: limit is %d", ErrTooDeep, c.maxDepth)
		}
		return c.buildObject(raw, depth+1)
	}
	return Value{}, fmt.Errorf("%w: unexpected token %q", ErrSyntax, raw)
}

func (c *parseConfig) buildArray(raw []byte, depth int) (Value, error) {
	elems := []Value{}
	var inner error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if inner != nil {
			return
		}
		if err != nil {
			inner = fmt.Errorf("%w: %v", ErrSyntax, err)
			return
		}
		v, err := c.build(value, typ, depth)
		if err != nil {
			inner = err
			return
		}
		elems = append(elems, v)
	})
	if inner != nil {
		return Value{}, inner
	}
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return Array(elems...), nil
}

func (c *parseConfig) buildObject(raw []byte, depth int) (Value, error) {
	m := NewMap()
	err := jsonparser.ObjectEach(raw, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		v, err := c.build(value, typ, depth)
		if err != nil {
			return err
		}
		m.Set(string(key), v)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTooDeep) || errors.Is(err, ErrSyntax) || errors.Is(err, ErrNumberRange) {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return Object(m), nil
}

// parseNumber keeps integer literals as KindInt. Literals carrying a fraction
// or an exponent, and integers overflowing int64, become KindDouble.
func parseNumber(raw []byte) (Value, error) {
	if !bytes.ContainsAny(raw, ".eE") {
		if i, err := jsonparser.ParseInt(raw); err == nil {
			return Int(i), nil
		}
	}
	f, err := jsonparser.ParseFloat(raw)
	if err != nil {
		if _, rangeErr := strconv.ParseFloat(string(raw), 64); errors.Is(rangeErr, strconv.ErrRange) {
			return Value{}, fmt.Errorf("%w: %s exceeds float64", ErrNumberRange, raw)
		}
		return Value{}, fmt.Errorf("%w: bad number %q", ErrSyntax, raw)
	}
	return Double(f), nil
}

// parseEscapedString decodes string contents jsonparser refuses, such as an
// unpaired UTF-16 surrogate escape. Like encoding/json, such escapes become
// U+FFFD. Parse has already checked the document with json.Valid.
func parseEscapedString(raw []byte) (Value, error) {
	quoted := make([]byte, 0, len(raw)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, raw...)
	quoted = append(quoted, '"')

	var s string
	if err := json.Unmarshal(quoted, &s); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return String(s), nil
}
