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

// Package bufbytes provides a fixed-capacity byte accumulator that silently
// truncates instead of growing, for capturing bounded previews of data that
// must not be retained at unbounded length (e.g. the raw bytes around a
// parser halt).
package bufbytes

// Bytes accumulates up to size bytes; anything written past the cap is
// dropped rather than causing a reallocation.
type Bytes struct {
	size int
	buf  []byte
}

// New returns a *Bytes capped at size bytes.
func New(size int) *Bytes {
	return &Bytes{
		size: size,
	}
}

// Write appends p, truncating at the configured cap. It never fails.
func (b *Bytes) Write(p []byte) {
	n := (b.size - len(b.buf)) - len(p)
	if n >= 0 {
		b.buf = append(b.buf, p...)
		return
	}

	l := b.size - len(b.buf)
	if l > 0 {
		b.buf = append(b.buf, p[:l]...)
	}
}

// Len returns the number of bytes currently held.
func (b *Bytes) Len() int {
	return len(b.buf)
}

// Text returns the held bytes as a string, verbatim.
func (b *Bytes) Text() string {
	return string(b.buf)
}

// Clone returns a detached copy of the held bytes, safe to retain past the
// next Write/Reset.
func (b *Bytes) Clone() []byte {
	if b.buf == nil {
		return nil
	}
	return append([]byte{}, b.buf...)
}

// Reset empties the buffer without releasing its backing array.
func (b *Bytes) Reset() {
	b.buf = b.buf[:0]
}
