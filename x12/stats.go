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

package x12

// Stats accumulates counters describing a parsing run. The Parser itself
// is stateless with respect to Stats; a driver populates one as it feeds
// bytes through ParseSegments.
type Stats struct {
	BytesRead      uint64
	SegmentsParsed uint64
	BufferResizes  uint64
	MaxBufferSize  int
}
