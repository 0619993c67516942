// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonvalue

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map holds the members of a JSON object in insertion order.
//
// A Map is built once, either by [Parse] or by an encoder, and is treated as
// read-only once wrapped in a [Value].
type Map struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{m: orderedmap.New[string, Value]()}
}

// Set stores v under key. Re-setting an existing key replaces its value but
// keeps its original position.
func (m *Map) Set(key string, v Value) { m.m.Set(key, v) }

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) { return m.m.Get(key) }

// Has reports whether key is present, including keys holding null.
func (m *Map) Has(key string) bool {
	_, ok := m.m.Get(key)
	return ok
}

// Len returns the number of members.
func (m *Map) Len() int { return m.m.Len() }

// Keys returns the member keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.m.Len())
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every member in insertion order and stops at the first
// error, which it returns.
func (m *Map) Each(fn func(key string, v Value) error) error {
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}
