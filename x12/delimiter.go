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

// Package x12 implements a streaming, zero-copy parser for ASC X12 EDI
// interchanges. It discovers the document's delimiters from the ISA header,
// then decodes segment after segment from a caller-managed byte buffer,
// delivering each one to a Handler without copying.
package x12

import "github.com/pkg/errors"

// Delimiters carries the four bytes discovered from a document's ISA
// header. They are immutable for the lifetime of a Processing parser.
type Delimiters struct {
	Element    byte // separates data elements within a segment
	SubElement byte // separates components within an element
	Segment    byte // terminates a segment
	Repetition byte // separates repeated occurrences of an element
}

// DefaultDelimiters returns the conventional suggested-to-writers set.
// Readers must still honor whatever the ISA header actually announces.
func DefaultDelimiters() Delimiters {
	return Delimiters{Element: '*', SubElement: ':', Segment: '~', Repetition: '^'}
}

var errCollidingDelimiters = errors.New("x12: colliding delimiters")

// Validate reports an error if any two of the four delimiters coincide.
func (d Delimiters) Validate() error {
	bs := [4]byte{d.Element, d.SubElement, d.Segment, d.Repetition}
	for i := 0; i < len(bs); i++ {
		for j := i + 1; j < len(bs); j++ {
			if bs[i] == bs[j] {
				return errCollidingDelimiters
			}
		}
	}
	return nil
}
