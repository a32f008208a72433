// Copyright 2025 The x12d Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package x12

import "unicode/utf8"

// Element is a borrowed view of a single data element (or the segment ID,
// when obtained via Segment.Element(0)). Its backing bytes are only valid
// for the duration of the Handler call that received the enclosing Segment.
type Element struct {
	raw []byte
}

// newElement wraps raw without copying it.
func newElement(raw []byte) Element {
	return Element{raw: raw}
}

// Bytes returns the element's raw bytes. The caller must not retain the
// slice beyond the handler call that produced it; use Clone for that.
func (e Element) Bytes() []byte {
	return e.raw
}

// Clone returns a detached copy of the element's bytes.
func (e Element) Clone() []byte {
	if e.raw == nil {
		return nil
	}
	return append([]byte{}, e.raw...)
}

// IsEmpty reports whether the element carries zero bytes.
func (e Element) IsEmpty() bool {
	return len(e.raw) == 0
}

// Text decodes the element as UTF-8. The second return value is false if
// the bytes are not valid UTF-8; the string still holds the bytes
// unchanged in that case, left for the caller to decide whether to use it.
func (e Element) Text() (string, bool) {
	return string(e.raw), utf8.Valid(e.raw)
}

// Split lazily breaks the element into sub-parts on sep, e.g. the
// component separator for composite elements or the repetition separator
// for repeated elements. An empty element splits into zero parts; a
// trailing sep yields a trailing empty part.
func (e Element) Split(sep byte) []Element {
	parts := splitBytes(e.raw, sep)
	if parts == nil {
		return nil
	}
	out := make([]Element, len(parts))
	for i, p := range parts {
		out[i] = newElement(p)
	}
	return out
}

// Components splits the element on sep, the document's component
// (sub-element) separator.
func (e Element) Components(sep byte) []Element {
	return e.Split(sep)
}

// Repetitions splits the element on sep, the document's repetition
// separator.
func (e Element) Repetitions(sep byte) []Element {
	return e.Split(sep)
}

// splitBytes breaks data on sep. An empty data splits into zero parts;
// otherwise a trailing sep produces a trailing empty part.
func splitBytes(data []byte, sep byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	var out [][]byte
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] == sep {
			out = append(out, data[start:i])
			start = i + 1
		}
	}
	out = append(out, data[start:])
	return out
}
