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

package common

const (
	// App is the program name used in metric namespaces and log tags.
	App = "x12d"

	// Version is the program version.
	Version = "v0.0.1"

	// DefaultInitialCapacity is the driver's first working-buffer allocation.
	DefaultInitialCapacity = 8 * 1024

	// DefaultMaxCapacity is the hard cap on the working buffer.
	DefaultMaxCapacity = 16 * 1024 * 1024

	// DefaultGrowthFactor is the multiplier applied on each buffer resize.
	DefaultGrowthFactor = 2
)
