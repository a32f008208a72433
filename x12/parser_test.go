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
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildISA returns a 106-byte ISA segment using the given delimiters.
func buildISA(elem, sub, seg, rep byte) []byte {
	fields := []string{
		"00",
		strings.Repeat(" ", 10),
		"00",
		strings.Repeat(" ", 10),
		"ZZ",
		fmt.Sprintf("%-15s", "SENDER"),
		"ZZ",
		fmt.Sprintf("%-15s", "RECEIVER"),
		"210101",
		"1253",
		string(rep),
		"00501",
		"000000001",
		"0",
		"T",
		string(sub),
	}
	data := strings.Join(fields, string(elem))
	return []byte("ISA" + string(elem) + data + string(seg))
}

// recordingHandler collects every segment it sees, cloning the bytes it
// needs since a Segment's views don't outlive the Handle call.
type recordingHandler struct {
	ids  []string
	data [][]byte
}

func (h *recordingHandler) Handle(seg Segment) error {
	h.ids = append(h.ids, seg.ID())
	h.data = append(h.data, append([]byte{}, seg.data...))
	return nil
}

type haltingHandler struct {
	after int
	err   error
	n     int
}

func (h *haltingHandler) Handle(seg Segment) error {
	h.n++
	if h.n > h.after {
		return h.err
	}
	return nil
}

func TestParseSegmentsMinimalISAOnly(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	require.Len(t, isa, isaLength)

	p := NewParser()
	h := &recordingHandler{}
	n, err := p.ParseSegments(isa, h)
	assert.NoError(t, err)
	assert.Equal(t, isaLength, n)
	assert.Equal(t, []string{"ISA"}, h.ids)

	delims, ok := p.Delimiters()
	assert.True(t, ok)
	assert.Equal(t, Delimiters{Element: '*', SubElement: ':', Segment: '~', Repetition: '^'}, delims)
}

func TestParseSegmentsAlternateDelimiters(t *testing.T) {
	isa := buildISA('|', '>', '\\', '^')
	p := NewParser()
	h := &recordingHandler{}
	n, err := p.ParseSegments(isa, h)
	assert.NoError(t, err)
	assert.Equal(t, isaLength, n)

	delims, ok := p.Delimiters()
	require.True(t, ok)
	assert.Equal(t, byte('|'), delims.Element)
	assert.Equal(t, byte('>'), delims.SubElement)
	assert.Equal(t, byte('\\'), delims.Segment)
	assert.Equal(t, byte('^'), delims.Repetition)
}

func TestParseSegmentsMultipleSegmentsOneCall(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	doc := append(append([]byte{}, isa...), []byte("GS*HC*SENDER*RECEIVER*20210101*1253*1*X*005010X222A1~ST*837*0001~SE*2*0001~GE*1*1~")...)

	p := NewParser()
	h := &recordingHandler{}
	n, err := p.ParseSegments(doc, h)
	assert.NoError(t, err)
	assert.Equal(t, len(doc), n)
	assert.Equal(t, []string{"ISA", "GS", "ST", "SE", "GE"}, h.ids)
}

func TestParseSegmentsIncompleteBeforeISA(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	p := NewParser()
	h := &recordingHandler{}
	n, err := p.ParseSegments(isa[:50], h)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, 0, n)
	assert.Empty(t, h.ids)
}

func TestParseSegmentsSplitMidSegmentEvery7Bytes(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	doc := append(append([]byte{}, isa...), []byte("GS*HC*SENDER*RECEIVER*20210101*1253*1*X*005010X222A1~ST*837*0001~SE*2*0001~GE*1*1~")...)

	p := NewParser()
	h := &recordingHandler{}

	var pending []byte
	total := 0
	for i := 0; i < len(doc); i += 7 {
		end := i + 7
		if end > len(doc) {
			end = len(doc)
		}
		pending = append(pending, doc[i:end]...)

		n, err := p.ParseSegments(pending, h)
		if err != nil && !errors.Is(err, ErrIncomplete) {
			t.Fatalf("unexpected error: %v", err)
		}
		pending = pending[n:]
		total += n
	}
	assert.Equal(t, len(doc), total)
	assert.Equal(t, []string{"ISA", "GS", "ST", "SE", "GE"}, h.ids)
}

func TestParseSegmentsNewlinesBetweenSegments(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	doc := append(append([]byte{}, isa...), []byte("\r\nGS*HC*SENDER*RECEIVER*20210101*1253*1*X*005010X222A1~\r\nST*837*0001~\r\n")...)

	p := NewParser()
	h := &recordingHandler{}
	n, err := p.ParseSegments(doc, h)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ISA", "GS", "ST"}, h.ids)
	assert.True(t, n <= len(doc))
}

func TestParseSegmentsHaltsOnMissingISAHeader(t *testing.T) {
	buf := make([]byte, isaLength)
	copy(buf, []byte("XYZ*"))

	p := NewParser()
	h := &recordingHandler{}
	_, err := p.ParseSegments(buf, h)

	var haltErr *HaltError
	assert.ErrorAs(t, err, &haltErr)
}

func TestParseSegmentsHaltsOnCollidingDelimiters(t *testing.T) {
	isa := buildISA('*', '*', '~', '^')
	p := NewParser()
	h := &recordingHandler{}
	_, err := p.ParseSegments(isa, h)

	var haltErr *HaltError
	assert.ErrorAs(t, err, &haltErr)
}

func TestParseSegmentsHandlerRequestedHalt(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	doc := append(append([]byte{}, isa...), []byte("GS*HC~ST*837*0001~")...)

	wantErr := errors.New("stop after GS")
	p := NewParser()
	h := &haltingHandler{after: 2, err: wantErr}

	n, err := p.ParseSegments(doc, h)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, len(isa)+len("GS*HC~"), n)
}

func TestParseSegmentsEmptySegmentIDHalts(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	doc := append(append([]byte{}, isa...), []byte("*HC~")...)

	p := NewParser()
	h := &recordingHandler{}
	_, err := p.ParseSegments(doc, h)

	var haltErr *HaltError
	assert.ErrorAs(t, err, &haltErr)
}

func TestParserResetReturnsToInitial(t *testing.T) {
	isa := buildISA('*', ':', '~', '^')
	p := NewParser()
	h := &recordingHandler{}
	_, err := p.ParseSegments(isa, h)
	require.NoError(t, err)

	_, ok := p.Delimiters()
	require.True(t, ok)

	p.Reset()
	_, ok = p.Delimiters()
	assert.False(t, ok)

	// After Reset, the parser again requires a complete ISA header.
	h2 := &recordingHandler{}
	n, err := p.ParseSegments(isa, h2)
	assert.NoError(t, err)
	assert.Equal(t, isaLength, n)
}
