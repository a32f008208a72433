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
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Severity classifies how seriously a finding should be treated. The
// validators in this package only ever raise Error.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// Kind is the closed set of validation finding categories, spelled exactly
// as spec.md's own error-kind enumeration names them. Only InvalidSyntax,
// SegmentSequence, ControlNumberMismatch and CountMismatch are produced by
// the validators in this package; the rest are reserved for validators
// this core does not implement (schema/code-value/business rule checks
// are explicitly out of scope).
type Kind string

const (
	KindInvalidSyntax          Kind = "InvalidSyntax"
	KindMissingSegment         Kind = "MissingSegment"
	KindSegmentSequence        Kind = "SegmentSequence"
	KindInvalidBusinessRule    Kind = "InvalidBusinessRule"
	KindImplementationLimit    Kind = "ImplementationLimit"
	KindInvalidCodeValue       Kind = "InvalidCodeValue"
	KindInvalidDataValue       Kind = "InvalidDataValue"
	KindOutOfRange             Kind = "OutOfRange"
	KindMissingRequiredElement Kind = "MissingRequiredElement"
	KindUnexpectedElement      Kind = "UnexpectedElement"
	KindControlNumberMismatch  Kind = "ControlNumberMismatch"
	KindCountMismatch          Kind = "CountMismatch"
	KindInvalidHierarchy       Kind = "InvalidHierarchy"
)

// noElement and noPosition mark ElementIndex/Position as absent: most
// findings are scoped to a whole segment, not one element or stream byte
// offset, and neither this package's validators thread a byte offset
// through from the driver.
const (
	noElement  = -1
	noPosition = -1
)

// ValidationError is one finding raised by a Validator against a single
// segment.
type ValidationError struct {
	Severity  Severity
	Kind      Kind
	Validator string
	SegmentID string
	// ElementIndex is the 1-based data-element position the finding is
	// scoped to, or noElement if the finding concerns the whole segment.
	ElementIndex int
	// Position is the byte offset in the stream the finding was raised
	// at, or noPosition if not tracked.
	Position int
	Message  string
}

func (e *ValidationError) Error() string {
	var loc strings.Builder
	fmt.Fprintf(&loc, "segment %s", e.SegmentID)
	if e.ElementIndex != noElement {
		fmt.Fprintf(&loc, " element %d", e.ElementIndex)
	}
	return fmt.Sprintf("[%s] %s at %s: %s", e.Severity, e.Kind, loc.String(), e.Message)
}

// MaxErrors bounds how many findings an accumulator retains before it
// stops allocating for new ones. Parsing and validation continue
// regardless; findings past the cap are simply not recorded.
const MaxErrors = 1000

// accumulator collects findings up to a fixed cap, using
// hashicorp/go-multierror to combine them into a single error.
type accumulator struct {
	cap     int
	errs    *multierror.Error
	records []*ValidationError
}

func newAccumulator(cap int) *accumulator {
	if cap <= 0 {
		cap = MaxErrors
	}
	return &accumulator{cap: cap}
}

func (a *accumulator) add(err *ValidationError) {
	if a.errs != nil && len(a.errs.Errors) >= a.cap {
		return
	}
	a.errs = multierror.Append(a.errs, err)
	a.errs.ErrorFormat = formatErrors
	a.records = append(a.records, err)
}

// Records returns the findings recorded so far, in the order raised.
func (a *accumulator) Records() []*ValidationError {
	return a.records
}

// Len reports how many findings have been recorded so far.
func (a *accumulator) Len() int {
	if a.errs == nil {
		return 0
	}
	return len(a.errs.Errors)
}

// Err returns the accumulated findings as a single error, or nil if none
// were recorded.
func (a *accumulator) Err() error {
	if a.errs == nil {
		return nil
	}
	return a.errs.ErrorOrNil()
}

// formatErrors renders accumulated findings one per line, the way a
// validation report is meant to be read rather than the default
// multierror bullet format.
func formatErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return fmt.Sprintf("%d validation finding(s):\n%s", len(errs), strings.Join(lines, "\n"))
}
