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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersegmentValidatorValidDocument(t *testing.T) {
	v := NewIntersegmentValidator()
	findings := runThroughValidator(t, validDocument(), v)
	assert.Empty(t, findings)
}

func TestIntersegmentValidatorSegmentCountMismatch(t *testing.T) {
	doc := strings.Replace(string(validDocument()), "SE*3*0001~", "SE*9*0001~", 1)

	v := NewIntersegmentValidator()
	findings := runThroughValidator(t, []byte(doc), v)
	assertSingleFinding(t, findings, KindCountMismatch, "SE")
}

func TestIntersegmentValidatorControlNumberMismatch(t *testing.T) {
	doc := strings.Replace(string(validDocument()), "SE*3*0001~", "SE*3*9999~", 1)

	v := NewIntersegmentValidator()
	findings := runThroughValidator(t, []byte(doc), v)
	assertSingleFinding(t, findings, KindControlNumberMismatch, "SE")
}

func TestIntersegmentValidatorGroupCountMismatch(t *testing.T) {
	doc := strings.Replace(string(validDocument()), "GE*1*1~", "GE*7*1~", 1)

	v := NewIntersegmentValidator()
	findings := runThroughValidator(t, []byte(doc), v)
	assertSingleFinding(t, findings, KindCountMismatch, "GE")
}

func TestIntersegmentValidatorInterchangeControlMismatch(t *testing.T) {
	doc := strings.Replace(string(validDocument()), "IEA*1*000000001~", "IEA*1*999999999~", 1)

	v := NewIntersegmentValidator()
	findings := runThroughValidator(t, []byte(doc), v)
	assertSingleFinding(t, findings, KindControlNumberMismatch, "IEA")
}

func assertSingleFinding(t *testing.T, findings []*ValidationError, kind Kind, segID string) {
	t.Helper()
	if assert.Len(t, findings, 1) {
		assert.Equal(t, kind, findings[0].Kind)
		assert.Equal(t, segID, findings[0].SegmentID)
	}
}
