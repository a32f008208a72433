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

package validate

import (
	"fmt"

	"github.com/x12d/x12d/x12"
)

// envelopeState tracks nesting inside the ISA/GS/ST hierarchy.
type envelopeState int

const (
	envelopeOutside envelopeState = iota
	envelopeInInterchange
	envelopeInGroup
	envelopeInTransaction
)

// minDataElements gives the fewest data elements a control segment must
// expose to be structurally plausible. ISA's width is fixed by the
// parser's ISA decoder at exactly 16; GS and ST are minimums only, since
// later X12 versions add trailing optional elements.
var minDataElements = map[string]int{
	"ISA": 16,
	"GS":  8,
	"ST":  2,
}

// StructuralValidator implements SNIP level 1: it walks the ISA/GS/ST
// envelope nesting, flagging a control segment that appears out of place
// as SegmentSequence, and a control segment with an implausible element
// count as InvalidSyntax. Non-control segments are never inspected here —
// transaction-set-specific content is out of scope for this layer.
type StructuralValidator struct {
	state envelopeState
}

// NewStructuralValidator builds a StructuralValidator. It takes no
// configuration; the envelope rules it enforces are fixed by the X12
// standard, not tunable per deployment.
func NewStructuralValidator(conf map[string]any) (*StructuralValidator, error) {
	return &StructuralValidator{}, nil
}

func (v *StructuralValidator) Name() string {
	return "structural"
}

func (v *StructuralValidator) Reset() {
	v.state = envelopeOutside
}

// Validate checks nesting and element count independently: a control
// segment that is simultaneously out of sequence and below its minimum
// element count (e.g. a GS with only one data element appearing without
// a preceding ISA) raises both findings, not just the first one hit.
func (v *StructuralValidator) Validate(seg x12.Segment) []*ValidationError {
	var findings []*ValidationError
	if finding := v.checkNesting(seg); finding != nil {
		findings = append(findings, finding)
	}
	if finding := v.checkElementCount(seg); finding != nil {
		findings = append(findings, finding)
	}
	return findings
}

// checkNesting transitions the envelope state machine on control segments
// and flags any transition not listed in the state table. Segment IDs
// other than ISA/GS/ST/SE/GE/IEA are ignored outright, at any state.
func (v *StructuralValidator) checkNesting(seg x12.Segment) *ValidationError {
	switch seg.ID() {
	case "ISA":
		if v.state != envelopeOutside {
			return v.sequenceError(seg, "ISA encountered while already inside an interchange")
		}
		v.state = envelopeInInterchange
	case "GS":
		if v.state != envelopeInInterchange {
			return v.sequenceError(seg, "GS encountered outside an open interchange")
		}
		v.state = envelopeInGroup
	case "ST":
		if v.state != envelopeInGroup {
			return v.sequenceError(seg, "ST encountered outside an open functional group")
		}
		v.state = envelopeInTransaction
	case "SE":
		if v.state != envelopeInTransaction {
			return v.sequenceError(seg, "SE encountered outside an open transaction set")
		}
		v.state = envelopeInGroup
	case "GE":
		if v.state != envelopeInGroup {
			return v.sequenceError(seg, "GE encountered outside an open functional group")
		}
		v.state = envelopeInInterchange
	case "IEA":
		if v.state != envelopeInInterchange {
			return v.sequenceError(seg, "IEA encountered outside an open interchange")
		}
		v.state = envelopeOutside
	}
	return nil
}

// checkElementCount enforces the per-control-segment minimums; it has
// nothing to say about non-control segments, which carry no fixed
// element-count contract at this layer.
func (v *StructuralValidator) checkElementCount(seg x12.Segment) *ValidationError {
	want, ok := minDataElements[seg.ID()]
	if !ok {
		return nil
	}

	got := seg.ElementCount() - 1
	if seg.ID() == "ISA" && got != want {
		return v.syntaxError(seg, fmt.Sprintf("ISA must expose exactly %d data elements, found %d", want, got))
	}
	if seg.ID() != "ISA" && got < want {
		return v.syntaxError(seg, fmt.Sprintf("%s must expose at least %d data elements, found %d", seg.ID(), want, got))
	}
	return nil
}

func (v *StructuralValidator) sequenceError(seg x12.Segment, msg string) *ValidationError {
	return &ValidationError{
		Severity:     SeverityError,
		Kind:         KindSegmentSequence,
		Validator:    v.Name(),
		SegmentID:    seg.ID(),
		ElementIndex: noElement,
		Position:     noPosition,
		Message:      msg,
	}
}

func (v *StructuralValidator) syntaxError(seg x12.Segment, msg string) *ValidationError {
	return &ValidationError{
		Severity:     SeverityError,
		Kind:         KindInvalidSyntax,
		Validator:    v.Name(),
		SegmentID:    seg.ID(),
		ElementIndex: noElement,
		Position:     noPosition,
		Message:      msg,
	}
}
