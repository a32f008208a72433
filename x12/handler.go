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

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/x12d/x12d/internal/bufbytes"
)

// Handler receives segments as the parser decodes them. Returning a
// non-nil error halts parsing; the parser propagates it verbatim to its
// caller.
type Handler interface {
	Handle(seg Segment) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(seg Segment) error

func (f HandlerFunc) Handle(seg Segment) error {
	return f(seg)
}

// ErrIncomplete signals that the parser needs more bytes before it can
// decode the next segment. It is recoverable: the caller should append
// more data to its buffer and call ParseSegments again with the same
// unconsumed bytes at the front.
var ErrIncomplete = errors.New("x12: incomplete segment")

// haltPreviewSize bounds how many raw bytes a HaltError retains around the
// point of failure.
const haltPreviewSize = 128

// HaltError reports a non-recoverable parse failure: malformed input that
// no amount of additional buffering will fix. Reset is required before the
// parser can be used again.
type HaltError struct {
	Reason  string
	Preview []byte
}

func (h *HaltError) Error() string {
	return fmt.Sprintf("x12: halt: %s", h.Reason)
}

// halt builds a HaltError carrying a bounded copy of around, the bytes
// surrounding the point of failure.
func halt(around []byte, format string, args ...any) error {
	b := bufbytes.New(haltPreviewSize)
	b.Write(around)
	return &HaltError{
		Reason:  fmt.Sprintf(format, args...),
		Preview: b.Clone(),
	}
}
