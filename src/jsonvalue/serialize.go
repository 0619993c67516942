// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonvalue

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mailru/easyjson/jwriter"
)

// ErrUnsupportedNumber reports a NaN or infinite double, which JSON cannot
// represent.
var ErrUnsupportedNumber = errors.New("unsupported JSON number")

// Serialize renders v as compact JSON text.
//
// Object members are written in insertion order, HTML characters are not
// escaped, and whole doubles keep a trailing ".0" so that a subsequent
// [Parse] yields a KindDouble again.
func Serialize(v Value) ([]byte, error) {
	w := jwriter.Writer{NoEscapeHTML: true}
	if err := write(&w, v); err != nil {
		return nil, err
	}
	return w.BuildBytes()
}

// Write renders v as compact JSON text to out.
func Write(out io.Writer, v Value) error {
	w := jwriter.Writer{NoEscapeHTML: true}
	if err := write(&w, v); err != nil {
		return err
	}
	_, err := w.DumpTo(out)
	return err
}

func write(w *jwriter.Writer, v Value) error {
	switch v.kind {
	case KindNull:
		w.RawString("null")
	case KindBool:
		w.Bool(v.b)
	case KindInt:
		w.Int64(v.i)
	case KindDouble:
		s, err := formatDouble(v.f)
		if err != nil {
			return err
		}
		w.RawString(s)
	case KindString:
		w.String(v.s)
	case KindArray:
		w.RawByte('[')
		for i, e := range v.arr {
			if i > 0 {
				w.RawByte(',')
			}
			if err := write(w, e); err != nil {
				return err
			}
		}
		w.RawByte(']')
	case KindObject:
		w.RawByte('{')
		first := true
		err := v.obj.Each(func(key string, member Value) error {
			if !first {
				w.RawByte(',')
			}
			first = false
			w.String(key)
			w.RawByte(':')
			return write(w, member)
		})
		if err != nil {
			return err
		}
		w.RawByte('}')
	default:
		return fmt.Errorf("jsonvalue: unknown kind %d", v.kind)
	}
	return w.Error
}

func formatDouble(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedNumber, f)
	}
	b := strconv.AppendFloat(make([]byte, 0, 24), f, 'g', -1, 64)
	for _, c := range b {
		if c == '.' || c == 'e' || c == 'E' {
			return string(b), nil
		}
	}
	return string(append(b, '.', '0')), nil
}
