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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x12d/x12d/x12"
)

func buildISA(elem, sub, seg, rep byte, isaControl string) []byte {
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
		isaControl,
		"0",
		"T",
		string(sub),
	}
	data := strings.Join(fields, string(elem))
	return []byte("ISA" + string(elem) + data + string(seg))
}

// validDocument returns a single-interchange, single-group,
// single-transaction-set document whose every declared count and control
// number is internally consistent.
func validDocument() []byte {
	var b strings.Builder
	b.Write(buildISA('*', ':', '~', '^', "000000001"))
	b.WriteString("GS*HC*SENDER*RECEIVER*20210101*1253*1*X*005010X222A1~")
	b.WriteString("ST*837*0001~")
	b.WriteString("NM1*IL*1*SMITH*JOHN~")
	b.WriteString("SE*3*0001~")
	b.WriteString("GE*1*1~")
	b.WriteString("IEA*1*000000001~")
	return []byte(b.String())
}

func runThroughValidator(t *testing.T, doc []byte, v Validator) []*ValidationError {
	t.Helper()

	var findings []*ValidationError
	p := x12.NewParser()
	handler := x12.HandlerFunc(func(seg x12.Segment) error {
		findings = append(findings, v.Validate(seg)...)
		return nil
	})
	_, err := p.ParseSegments(doc, handler)
	require.NoError(t, err)
	return findings
}

func TestSuiteHandleNeverHalts(t *testing.T) {
	doc := validDocument()
	// Corrupt the transaction set's segment count (SE01) so the intersegment validator has
	// something to report, and confirm the Suite still returns nil.
	corrupted := strings.ReplaceAll(string(doc), "SE*3*0001~", "SE*99*0001~")

	suite := NewSuite(0, NewStructuralValidator2(t), NewIntersegmentValidator())
	p := x12.NewParser()
	_, err := p.ParseSegments([]byte(corrupted), suite)
	assert.NoError(t, err)
	assert.Error(t, suite.Err())
	assert.Equal(t, 1, suite.Len())
}

// NewStructuralValidator2 is a test-only constructor avoiding the
// error-returning factory signature for table setup brevity.
func NewStructuralValidator2(t *testing.T) *StructuralValidator {
	t.Helper()
	v, err := NewStructuralValidator(nil)
	require.NoError(t, err)
	return v
}

func TestSuiteResetClearsFindingsAndValidatorState(t *testing.T) {
	doc := validDocument()
	bad := strings.ReplaceAll(string(doc), "GE*1*1~", "GE*5*1~")

	iv := NewIntersegmentValidator()
	suite := NewSuite(0, iv)
	p := x12.NewParser()
	_, err := p.ParseSegments([]byte(bad), suite)
	require.NoError(t, err)
	assert.Equal(t, 1, suite.Len())

	suite.Reset()
	assert.Equal(t, 0, suite.Len())
	assert.NoError(t, suite.Err())
	assert.Equal(t, IntersegmentValidator{}, *iv)
}

func TestSuiteBoundedAccumulation(t *testing.T) {
	var b strings.Builder
	b.Write(buildISA('*', ':', '~', '^', "000000001"))
	for i := 0; i < 5; i++ {
		b.WriteString("GS*HC*SENDER*RECEIVER*20210101*1253*1*X*005010X222A1~")
		b.WriteString(fmt.Sprintf("GE*9*%d~", i+1)) // every GE01 is wrong on purpose
	}

	suite := NewSuite(3, NewIntersegmentValidator())
	p := x12.NewParser()
	_, err := p.ParseSegments([]byte(b.String()), suite)
	require.NoError(t, err)
	assert.Equal(t, 3, suite.Len())
}
