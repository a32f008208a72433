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

package driver

import "github.com/pkg/errors"

// ErrBufferExceeded is returned when a single segment would require
// growing the working buffer past Config.MaxCapacity.
var ErrBufferExceeded = errors.New("driver: segment exceeds max buffer capacity")

// ErrTruncatedStream is returned when the byte source reaches EOF while
// the parser still holds unconsumed, incomplete segment bytes.
var ErrTruncatedStream = errors.New("driver: byte source closed mid-segment")
