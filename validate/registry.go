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

import "github.com/pkg/errors"

// CreateFunc builds a Validator from free-form configuration, decoded by
// the caller (typically via mitchellh/mapstructure) into whatever shape
// the named validator expects.
type CreateFunc func(conf map[string]any) (Validator, error)

var factory = map[string]CreateFunc{}

// Register adds a validator constructor under name, for later lookup by
// configuration-driven Suite assembly. Intended to be called from an
// init() in the package defining the validator.
func Register(name string, f CreateFunc) {
	factory[name] = f
}

// Get looks up a previously Registered constructor.
func Get(name string) (CreateFunc, error) {
	f, ok := factory[name]
	if !ok {
		return nil, errors.Errorf("validator factory (%s) not found", name)
	}
	return f, nil
}

func init() {
	Register("structural", func(conf map[string]any) (Validator, error) {
		return NewStructuralValidator(conf)
	})
	Register("intersegment", func(conf map[string]any) (Validator, error) {
		return NewIntersegmentValidator(), nil
	})
}
