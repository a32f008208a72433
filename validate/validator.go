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

// Package validate implements composable structural validation for X12
// interchanges, the SNIP levels: each Validator inspects segments as they
// stream past and reports findings without itself halting the parse.
package validate

import "github.com/x12d/x12d/x12"

// Validator inspects one segment at a time and reports every finding it
// raises for it. A nil or empty return means the segment raised no
// concern for this validator. A single segment can fail more than one of
// a validator's checks at once (e.g. a GS that is both out of sequence
// and below its minimum element count), and both are reported rather
// than only the first.
//
// Validators see every segment the Suite they belong to receives,
// including ISA/GS/ST/SE/GE/IEA, and are expected to maintain whatever
// running state (envelope nesting, control numbers, counts) they need
// across calls.
type Validator interface {
	// Name identifies the validator, used to tag findings and to look it
	// up in the registry.
	Name() string

	// Validate inspects seg against the validator's running state.
	Validate(seg x12.Segment) []*ValidationError

	// Reset clears any running state, for reuse across interchanges.
	Reset()
}
