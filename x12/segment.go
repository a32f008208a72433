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

import "bytes"

// Segment is a borrowed view of one segment: its ID, its data elements and
// the delimiters in effect when it was decoded. Like Element, it is only
// valid for the duration of the Handler call that received it.
type Segment struct {
	id     []byte
	data   []byte
	delims Delimiters
}

// ID returns the segment identifier, e.g. "ISA", "NM1", "SE".
func (s Segment) ID() string {
	return string(s.id)
}

// RawID returns the segment identifier's borrowed bytes.
func (s Segment) RawID() []byte {
	return s.id
}

// Delimiters returns the delimiters in effect for this segment.
func (s Segment) Delimiters() Delimiters {
	return s.delims
}

// dataElementCount returns the number of data elements following the ID,
// zero when there is no data at all.
func (s Segment) dataElementCount() int {
	if len(s.data) == 0 {
		return 0
	}
	return bytes.Count(s.data, []byte{s.delims.Element}) + 1
}

// ElementCount returns the segment's data element count plus one, to
// account for the ID occupying position 0.
func (s Segment) ElementCount() int {
	return s.dataElementCount() + 1
}

// Element returns the element at position n, where position 0 is the
// segment ID and positions 1..ElementCount()-1 are the data elements in
// order. The second return value is false if n is out of range.
func (s Segment) Element(n int) (Element, bool) {
	if n == 0 {
		return newElement(s.id), true
	}
	count := s.dataElementCount()
	if n < 1 || n > count {
		return Element{}, false
	}
	parts := splitBytes(s.data, s.delims.Element)
	return newElement(parts[n-1]), true
}

// Elements returns the segment's data elements, excluding the ID, in
// order starting at position 1.
func (s Segment) Elements() []Element {
	parts := splitBytes(s.data, s.delims.Element)
	out := make([]Element, len(parts))
	for i, p := range parts {
		out[i] = newElement(p)
	}
	return out
}
