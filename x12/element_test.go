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

func TestElementBytesAndEmpty(t *testing.T) {
	e := newElement([]byte("HC"))
	assert.Equal(t, []byte("HC"), e.Bytes())
	assert.False(t, e.IsEmpty())

	empty := newElement(nil)
	assert.True(t, empty.IsEmpty())
}

func TestElementText(t *testing.T) {
	s, valid := newElement([]byte("SMITH")).Text()
	assert.Equal(t, "SMITH", s)
	assert.True(t, valid)

	_, valid = newElement([]byte{0xff, 0xfe}).Text()
	assert.False(t, valid)
}

func TestElementClone(t *testing.T) {
	raw := []byte("VALUE")
	e := newElement(raw)
	clone := e.Clone()
	assert.Equal(t, raw, clone)
	raw[0] = 'X'
	assert.Equal(t, byte('V'), clone[0])
}

func TestElementSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sep  byte
		want []string
	}{
		{
			name: "no separator present",
			raw:  "HC",
			sep:  ':',
			want: []string{"HC"},
		},
		{
			name: "two components",
			raw:  "HC:99213",
			sep:  ':',
			want: []string{"HC", "99213"},
		},
		{
			name: "trailing separator yields trailing empty part",
			raw:  "HC:",
			sep:  ':',
			want: []string{"HC", ""},
		},
		{
			name: "empty element splits into nothing",
			raw:  "",
			sep:  ':',
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := newElement([]byte(tt.raw)).Split(tt.sep)
			if tt.want == nil {
				assert.Nil(t, parts)
				return
			}
			got := make([]string, len(parts))
			for i, p := range parts {
				got[i] = string(p.Bytes())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElementComponentsAndRepetitions(t *testing.T) {
	e := newElement([]byte("A^B^C"))
	reps := e.Repetitions('^')
	assert.Len(t, reps, 3)
	assert.Equal(t, "B", string(reps[1].Bytes()))

	c := newElement([]byte("A:B"))
	comps := c.Components(':')
	assert.Len(t, comps, 2)
}
