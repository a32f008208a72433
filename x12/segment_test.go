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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentElementCount(t *testing.T) {
	delims := DefaultDelimiters()

	tests := []struct {
		name string
		data []byte
		want int
	}{
		{
			name: "no data elements",
			data: nil,
			want: 1,
		},
		{
			name: "three data elements, two empty",
			data: []byte("**VALUE3"),
			want: 4,
		},
		{
			name: "single populated data element",
			data: []byte("CLM0123"),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := Segment{id: []byte("NM1"), data: tt.data, delims: delims}
			assert.Equal(t, tt.want, seg.ElementCount())
		})
	}
}

func TestSegmentElementPositionZeroIsID(t *testing.T) {
	seg := Segment{id: []byte("NM1"), data: []byte("IL*SMITH"), delims: DefaultDelimiters()}

	el, ok := seg.Element(0)
	assert.True(t, ok)
	assert.Equal(t, "NM1", string(el.Bytes()))

	el, ok = seg.Element(1)
	assert.True(t, ok)
	assert.Equal(t, "IL", string(el.Bytes()))

	el, ok = seg.Element(2)
	assert.True(t, ok)
	assert.Equal(t, "SMITH", string(el.Bytes()))

	_, ok = seg.Element(3)
	assert.False(t, ok)
}

func TestSegmentElementsRoundTrip(t *testing.T) {
	delims := DefaultDelimiters()
	seg := Segment{id: []byte("NM1"), data: []byte("IL*1*SMITH*JOHN"), delims: delims}

	els := seg.Elements()
	assert.Len(t, els, 4)
	assert.Equal(t, "IL", string(els[0].Bytes()))
	assert.Equal(t, "JOHN", string(els[3].Bytes()))
}

func TestSegmentIDAndDelimiters(t *testing.T) {
	delims := DefaultDelimiters()
	seg := Segment{id: []byte("SE"), data: []byte("17*0001"), delims: delims}
	assert.Equal(t, "SE", seg.ID())
	assert.Equal(t, delims, seg.Delimiters())
}
