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

// Package driver hosts x12.Parser against a chunked byte source: an
// io.Reader that may deliver the document in arbitrarily small pieces. It
// owns the working buffer the parser reads from, growing it on demand up
// to a configured ceiling.
package driver

import "github.com/x12d/x12d/common"

// Config controls the Driver's working buffer.
type Config struct {
	// InitialCapacity is the buffer's first allocation size, in bytes.
	InitialCapacity int `config:"initial_capacity"`

	// MaxCapacity is the hard ceiling the buffer is never grown past. A
	// segment that would require more room than this halts the run.
	MaxCapacity int `config:"max_capacity"`

	// GrowthFactor multiplies the current capacity on each resize.
	GrowthFactor int `config:"growth_factor"`

	// ResetBetweenInterchanges, when true, resets the parser to rediscover
	// delimiters once a closing IEA leaves the working buffer empty,
	// letting one Run drive several back-to-back interchanges whose
	// delimiters may differ. Off by default: the conservative reading is
	// that a Driver handles exactly one interchange per Run.
	ResetBetweenInterchanges bool `config:"reset_between_interchanges"`
}

// withDefaults fills in zero fields with package defaults.
func (c Config) withDefaults() Config {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = common.DefaultInitialCapacity
	}
	if c.MaxCapacity <= 0 {
		c.MaxCapacity = common.DefaultMaxCapacity
	}
	if c.GrowthFactor <= 1 {
		c.GrowthFactor = common.DefaultGrowthFactor
	}
	if c.MaxCapacity < c.InitialCapacity {
		c.MaxCapacity = c.InitialCapacity
	}
	return c
}
