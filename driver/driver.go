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
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/valyala/bytebufferpool"

	"github.com/x12d/x12d/logger"
	"github.com/x12d/x12d/x12"
)

// Driver feeds a chunked byte source through an x12.Parser, growing its
// working buffer on demand and reporting Stats once the source is
// exhausted or parsing fails.
//
// A Driver is built for a single Run; it is not reusable across streams.
type Driver struct {
	cfg     Config
	parser  *x12.Parser
	handler x12.Handler
	runID   string
	stats   x12.Stats
}

// New returns a Driver that will deliver segments from a fresh parser to
// handler, using cfg to size and grow its working buffer.
func New(cfg Config, handler x12.Handler) *Driver {
	return &Driver{
		cfg:     cfg.withDefaults(),
		parser:  x12.NewParser(),
		handler: handler,
		runID:   uuid.New().String(),
	}
}

// RunID identifies this Driver instance in logs and audit records.
func (d *Driver) RunID() string {
	return d.runID
}

// countingHandler wraps a Handler to maintain the SegmentsParsed stat and
// its matching metric without the core Parser needing to know about
// either. It also tracks ISA/IEA nesting depth so Run can tell when a
// complete interchange has just closed, for Config.ResetBetweenInterchanges.
type countingHandler struct {
	inner x12.Handler
	count uint64

	depth      int
	atBoundary bool
}

func (c *countingHandler) Handle(seg x12.Segment) error {
	if err := c.inner.Handle(seg); err != nil {
		return err
	}
	c.count++
	segmentsParsedTotal.Inc()

	switch seg.ID() {
	case "ISA":
		c.depth++
		c.atBoundary = false
	case "IEA":
		if c.depth > 0 {
			c.depth--
		}
		c.atBoundary = c.depth == 0
	}
	return nil
}

// Run reads from r until it is exhausted or parsing halts, delivering
// every decoded segment to the Driver's handler. It returns the
// accumulated Stats regardless of outcome, alongside any error: nil on a
// cleanly terminated interchange, ErrTruncatedStream if r closed with an
// incomplete segment still buffered, ErrBufferExceeded if a segment
// outgrew Config.MaxCapacity, or whatever error the parser or handler
// raised.
func (d *Driver) Run(ctx context.Context, r io.Reader) (x12.Stats, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	bb.B = growSlice(bb.B, d.cfg.InitialCapacity)
	d.stats.MaxBufferSize = len(bb.B)
	bufferSizeBytes.Set(float64(len(bb.B)))

	ch := &countingHandler{inner: d.handler}
	filled := 0

	for {
		select {
		case <-ctx.Done():
			return d.finalStats(ch), ctx.Err()
		default:
		}

		n, rerr := r.Read(bb.B[filled:])
		if n > 0 {
			filled += n
			d.stats.BytesRead += uint64(n)
			bytesReadTotal.Add(float64(n))
		}

		consumed, perr := d.parser.ParseSegments(bb.B[:filled], ch)
		if perr != nil && perr != x12.ErrIncomplete {
			return d.finalStats(ch), perr
		}
		if consumed > 0 {
			filled = copy(bb.B, bb.B[consumed:filled])
		}

		// A closed interchange with nothing left buffered is a safe point
		// to rediscover delimiters for whatever interchange follows. This
		// only fires between reads; several complete interchanges packed
		// into a single already-buffered read are not split apart here.
		if d.cfg.ResetBetweenInterchanges && ch.atBoundary && filled == 0 {
			d.parser.Reset()
			ch.atBoundary = false
		}

		if rerr == io.EOF {
			if filled > 0 {
				logger.Warnf("driver[%s]: byte source closed with %d unconsumed bytes buffered", d.runID, filled)
				return d.finalStats(ch), ErrTruncatedStream
			}
			return d.finalStats(ch), nil
		}
		if rerr != nil {
			return d.finalStats(ch), rerr
		}

		if perr == x12.ErrIncomplete && filled == len(bb.B) {
			if err := d.growBuffer(bb); err != nil {
				return d.finalStats(ch), err
			}
		}
	}
}

// growSlice returns b resliced to length n if its backing array is already
// large enough, or a fresh allocation otherwise.
func growSlice(b []byte, n int) []byte {
	if cap(b) >= n {
		return b[:n]
	}
	return make([]byte, n)
}

// growBuffer replaces bb's backing array with a larger one, or returns
// ErrBufferExceeded if it is already at Config.MaxCapacity. The pooled
// buffer is grown in place so the enlarged backing array, not just the
// original one, is what Put returns to the pool.
func (d *Driver) growBuffer(bb *bytebufferpool.ByteBuffer) error {
	cur := len(bb.B)
	if cur >= d.cfg.MaxCapacity {
		logger.Warnf("driver[%s]: buffer already at max capacity %d bytes", d.runID, cur)
		return ErrBufferExceeded
	}

	newCap := cur * d.cfg.GrowthFactor
	if newCap > d.cfg.MaxCapacity {
		newCap = d.cfg.MaxCapacity
	}

	grown := make([]byte, newCap)
	copy(grown, bb.B)
	bb.B = grown

	d.stats.BufferResizes++
	d.stats.MaxBufferSize = newCap
	bufferResizesTotal.Inc()
	bufferSizeBytes.Set(float64(newCap))

	logger.Debugf("driver[%s]: grew working buffer from %d to %d bytes", d.runID, cur, newCap)
	return nil
}

func (d *Driver) finalStats(ch *countingHandler) x12.Stats {
	d.stats.SegmentsParsed = ch.count
	return d.stats
}
