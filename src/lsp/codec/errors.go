// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import (
	"errors"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
)

// Error kinds. Use [errors.Is] against these to classify a failure.
var (
	// ErrMissingField: a required wire key is absent from an object.
	ErrMissingField = errors.New("missing field")
	// ErrJSONType: a JSON value has the wrong kind for its field, including an
	// int field given a fractional literal.
	ErrJSONType = errors.New("JSON type mismatch")
	// ErrInvalidStringEnum: a decoded string is not a member of its enum.
	ErrInvalidStringEnum = errors.New("invalid string enum")
	// ErrInvalidEnumValue: an int enum read from JSON, or any enum about to be
	// encoded, is not a declared member.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrInvalidConstantValue: a string constant field holds another value.
	ErrInvalidConstantValue = errors.New("invalid constant value")
	// ErrMissingVariantValue: a variant without an active alternative was
	// encoded.
	ErrMissingVariantValue = errors.New("missing variant value")
	// ErrInvalidDiscriminatedUnionValue: a params or result value is not one of
	// the shapes its method permits.
	ErrInvalidDiscriminatedUnionValue = errors.New("invalid discriminated union value")
	// ErrInvalidDiscriminantValue: a method name is unknown, or does not allow
	// the request, notification or response form it was used in.
	ErrInvalidDiscriminantValue = errors.New("invalid discriminant value")
	// ErrNullPointer: a nested message field was nil at encode time.
	ErrNullPointer = errors.New("uninitialized sub-object")
	// ErrInvalidEnvelope: a top-level value matches none of the request,
	// response and notification shapes.
	ErrInvalidEnvelope = errors.New("invalid envelope")
)

// PathElem is one step of a [Path]: an object key or an array index.
type PathElem struct {
	Key   string
	Index int
	// IsIndex selects Index over Key.
	IsIndex bool
}

// Key returns the path step for an object member.
func Key(name string) PathElem { return PathElem{Key: name} }

// Index returns the path step for an array element.
func Index(i int) PathElem { return PathElem{Index: i, IsIndex: true} }

// Path locates a value inside a message, outermost step first.
type Path []PathElem

// String renders the path as `params.valueSet[2]`.
func (p Path) String() string {
	var b strings.Builder
	for i, e := range p {
		if e.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(e.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(e.Key)
	}
	return b.String()
}

// Error describes a decode or encode failure.
type Error struct {
	// Kind is one of the package's sentinel errors.
	Kind error
	// Path locates the offending value; empty for the value passed in.
	Path Path
	// Expected names the required shape, enum or constant.
	Expected string
	// Actual describes what was found.
	Actual string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(e.Path.String())
	}
	if e.Expected != "" {
		b.WriteString(": expected ")
		b.WriteString(e.Expected)
		if e.Actual != "" {
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		}
	} else if e.Actual != "" {
		b.WriteString(": ")
		b.WriteString(e.Actual)
	}
	return b.String()
}

// Unwrap returns the error kind so that [errors.Is] matches the sentinels.
func (e *Error) Unwrap() error { return e.Kind }

// NewError builds an *Error of the given kind with no path.
func NewError(kind error, expected, actual string) *Error {
	return &Error{Kind: kind, Expected: expected, Actual: actual}
}

// At prefixes the path of a codec error with elem. Other errors are returned
// unchanged.
func At(err error, elem PathElem) error {
	var ce *Error
	if errors.As(err, &ce) {
		ce.Path = append(Path{elem}, ce.Path...)
	}
	return err
}

func typeError(expected string, v jsonvalue.Value) *Error {
	return NewError(ErrJSONType, expected, v.Kind().String())
}
