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

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/x12d/x12d/common"
)

var (
	bytesReadTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "bytes_read_total",
			Help:      "Bytes read from the underlying byte source",
		},
	)

	segmentsParsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "segments_parsed_total",
			Help:      "Segments successfully delivered to the handler",
		},
	)

	bufferResizesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "buffer_resizes_total",
			Help:      "Times the working buffer was grown",
		},
	)

	bufferSizeBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: common.App,
			Name:      "buffer_size_bytes",
			Help:      "Current working buffer capacity in bytes",
		},
	)
)
