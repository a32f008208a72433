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
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/x12d/x12d/confengine"
	"github.com/x12d/x12d/x12"
)

// Config names which validators a Suite assembles from the registry, and
// the per-validator free-form configuration passed to each factory.
type Config struct {
	Name   string         `config:"name"`
	Config map[string]any `config:"config"`
}

type Configs []Config

// Suite runs an ordered list of Validators over every segment it sees. It
// implements x12.Handler, so it can be passed directly to a parser or
// driver: it never itself halts parsing, only records findings, which the
// caller inspects afterward via Err.
type Suite struct {
	validators []Validator
	acc        *accumulator
}

// NewSuite returns a Suite running validators in order, capping
// accumulated findings at maxErrors (MaxErrors if maxErrors <= 0).
func NewSuite(maxErrors int, validators ...Validator) *Suite {
	return &Suite{
		validators: validators,
		acc:        newAccumulator(maxErrors),
	}
}

// Load builds a Suite from configuration, resolving each named validator
// through the package registry.
func Load(conf *confengine.Config, maxErrors int) (*Suite, error) {
	var configs Configs
	if err := conf.UnpackChild("validate", &configs); err != nil {
		return nil, err
	}

	var validators []Validator
	for _, c := range configs {
		f, err := Get(c.Name)
		if err != nil {
			return nil, err
		}
		v, err := f(c.Config)
		if err != nil {
			return nil, errors.Wrapf(err, "building validator %q", c.Name)
		}
		validators = append(validators, v)
	}
	return NewSuite(maxErrors, validators...), nil
}

// Handle runs every validator against seg, accumulating any findings. It
// always returns nil: a Suite never halts the underlying parse.
func (s *Suite) Handle(seg x12.Segment) error {
	for _, v := range s.validators {
		for _, finding := range v.Validate(seg) {
			s.acc.add(finding)
		}
	}
	return nil
}

// Err returns the accumulated findings as a single error, or nil if the
// interchange raised none.
func (s *Suite) Err() error {
	return s.acc.Err()
}

// Len reports how many findings have been recorded so far.
func (s *Suite) Len() int {
	return s.acc.Len()
}

// Findings returns the accumulated findings in the order raised.
func (s *Suite) Findings() []*ValidationError {
	return s.acc.Records()
}

// Reset clears every validator's running state and the findings
// accumulator, so the Suite can be reused for another interchange.
func (s *Suite) Reset() {
	cap := s.acc.cap
	s.acc = newAccumulator(cap)
	for _, v := range s.validators {
		v.Reset()
	}
}

// decodeConfig is a small helper validators use to decode their free-form
// configuration block into a concrete struct.
func decodeConfig(conf map[string]any, out any) error {
	if conf == nil {
		return nil
	}
	return mapstructure.Decode(conf, out)
}
