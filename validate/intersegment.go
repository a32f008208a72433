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
	"strconv"
	"strings"

	"github.com/x12d/x12d/x12"
)

// IntersegmentValidator implements SNIP level 7: it tracks the control
// numbers and declared counts carried by the ISA/GS/ST envelope and flags
// any mismatch against what was actually seen — ISA-13 against IEA-02,
// GS-06 against GE-02, ST-02 against SE-02, and the three declared counts
// (IEA-01 groups, GE-01 transaction sets, SE-01 segments) against what was
// counted while streaming. Controls and counts are compared as unsigned
// integers; a control that fails to parse raises no finding here, since
// malformed values are a structural concern, not an inter-segment one.
type IntersegmentValidator struct {
	isaControl   control
	groupControl control
	stControl    control

	groupCount int // functional groups closed since ISA
	transCount int // transaction sets opened (ST seen) since GS
	segCount   int // segments counted since ST, including ST itself
}

// control is a captured envelope control number: valid is false if the
// element was absent or did not parse as an unsigned integer.
type control struct {
	value uint64
	valid bool
}

// NewIntersegmentValidator returns a ready-to-use IntersegmentValidator.
func NewIntersegmentValidator() *IntersegmentValidator {
	return &IntersegmentValidator{}
}

func (v *IntersegmentValidator) Name() string {
	return "intersegment"
}

func (v *IntersegmentValidator) Reset() {
	*v = IntersegmentValidator{}
}

func (v *IntersegmentValidator) Validate(seg x12.Segment) []*ValidationError {
	switch seg.ID() {
	case "ISA":
		v.isaControl = parseControl(elementText(seg, 13))
		v.groupCount = 0

	case "GS":
		v.groupControl = parseControl(elementText(seg, 6))
		v.transCount = 0

	case "ST":
		v.stControl = parseControl(elementText(seg, 2))
		v.segCount = 1
		v.transCount++

	case "SE":
		v.segCount++
		var findings []*ValidationError
		if finding := v.checkCount(seg, "SE01", elementText(seg, 1), v.segCount, "segments in the transaction set"); finding != nil {
			findings = append(findings, finding)
		}
		if finding := v.checkControl(seg, "SE02", elementText(seg, 2), v.stControl, "ST02"); finding != nil {
			findings = append(findings, finding)
		}
		v.segCount = 0
		return findings

	case "GE":
		var findings []*ValidationError
		if finding := v.checkCount(seg, "GE01", elementText(seg, 1), v.transCount, "transaction sets in the group"); finding != nil {
			findings = append(findings, finding)
		}
		if finding := v.checkControl(seg, "GE02", elementText(seg, 2), v.groupControl, "GS06"); finding != nil {
			findings = append(findings, finding)
		}
		v.groupCount++
		return findings

	case "IEA":
		var findings []*ValidationError
		if finding := v.checkCount(seg, "IEA01", elementText(seg, 1), v.groupCount, "functional groups in the interchange"); finding != nil {
			findings = append(findings, finding)
		}
		if finding := v.checkControl(seg, "IEA02", elementText(seg, 2), v.isaControl, "ISA13"); finding != nil {
			findings = append(findings, finding)
		}
		return findings

	default:
		if v.segCount > 0 {
			v.segCount++
		}
	}
	return nil
}

// checkCount compares a trailer's declared count against counted,
// skipping the check entirely if the declared value does not parse.
func (v *IntersegmentValidator) checkCount(seg x12.Segment, field, declared string, counted int, what string) *ValidationError {
	got := parseControl(declared)
	if !got.valid {
		return nil
	}
	if got.value != uint64(counted) {
		return &ValidationError{
			Severity:     SeverityError,
			Kind:         KindCountMismatch,
			Validator:    v.Name(),
			SegmentID:    seg.ID(),
			ElementIndex: noElement,
			Position:     noPosition,
			Message:      fmt.Sprintf("%s declares %q %s, but %d were counted", field, declared, what, counted),
		}
	}
	return nil
}

// checkControl compares a trailer's control number against the one
// captured at the matching opening segment. Either side failing to parse
// skips the check.
func (v *IntersegmentValidator) checkControl(seg x12.Segment, field, gotText string, want control, wantField string) *ValidationError {
	got := parseControl(gotText)
	if !got.valid || !want.valid {
		return nil
	}
	if got.value != want.value {
		return &ValidationError{
			Severity:     SeverityError,
			Kind:         KindControlNumberMismatch,
			Validator:    v.Name(),
			SegmentID:    seg.ID(),
			ElementIndex: noElement,
			Position:     noPosition,
			Message:      fmt.Sprintf("%s (%q) does not match %s (%q)", field, gotText, wantField, want.text()),
		}
	}
	return nil
}

// text renders a control back for display in a finding message.
func (c control) text() string {
	if !c.valid {
		return ""
	}
	return strconv.FormatUint(c.value, 10)
}

// parseControl trims surrounding whitespace and parses s as an unsigned
// integer; overflow or non-digit content yields an invalid control.
func parseControl(s string) control {
	s = strings.TrimSpace(s)
	if s == "" {
		return control{}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return control{}
	}
	return control{value: n, valid: true}
}

// elementText returns the text of the segment's nth element (1-indexed
// data element position), or "" if it does not exist.
func elementText(seg x12.Segment, n int) string {
	el, ok := seg.Element(n)
	if !ok {
		return ""
	}
	s, _ := el.Text()
	return s
}
