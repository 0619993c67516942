// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonvalue provides an immutable, generic in-memory representation of
// JSON documents together with a strict parser and a serializer.
//
// Two properties matter to the LSP codec built on top of it:
//   - numeric leaves remember whether they were written as integer or
//     fractional literals, so `2` and `2.0` are different values;
//   - objects keep their keys in insertion order, so serialized output is
//     stable and mirrors the order in which a message schema emitted it.
//
// Tokenizing is delegated to [jsonparser], object storage to [orderedmap] and
// output escaping to the easyjson [jwriter].
//
// [jsonparser]: https://github.com/buger/jsonparser
// [orderedmap]: https://github.com/wk8/go-ordered-map
// [jwriter]: https://github.com/mailru/easyjson
package jsonvalue
