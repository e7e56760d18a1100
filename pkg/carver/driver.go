// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package carver

import "io"

// DefaultMinSize is the minimum candidate length, in bytes, below which a
// completed, corrupted, or exhausted candidate is dropped without being
// written to either sink (spec.md §6, "--min-size"). It filters out the flood
// of trivial "{}"-sized noise that a byte-oriented scout turns up in binary
// input.
const DefaultMinSize = 4

// Option configures a Carver at construction time. The functional-options
// shape keeps New's signature stable as configuration grows (mirrors
// simdjson-go's parser-option pattern).
type Option func(*Carver)

// WithMinSize sets the minimum candidate size that reaches either sink.
func WithMinSize(n int) Option {
	return func(c *Carver) { c.MinSize = n }
}

// WithFixIncomplete enables the repair writer: every corrupted or exhausted
// candidate that clears MinSize also gets a synthesized-closer reconstruction
// written to the JSON sink (spec.md §4.5).
func WithFixIncomplete(b bool) Option {
	return func(c *Carver) { c.FixIncomplete = b }
}

// WithReplaceNewlines substitutes raw '\n' bytes inside a candidate with a
// space as it is buffered (spec.md §3).
func WithReplaceNewlines(b bool) Option {
	return func(c *Carver) { c.t.replaceNewlines = b }
}

// WithMaxCandidateSize sets the candidate buffer's initial size. A candidate
// longer than that still grows the buffer, in defaultMaxSize increments.
func WithMaxCandidateSize(n int) Option {
	return func(c *Carver) { c.t.buf = make([]byte, n) }
}

// WithMaxIdentDepth bounds how deeply containers may nest before a candidate
// is treated as corrupted rather than growing the nest stack without bound
// (spec.md §9, Open Question 1).
func WithMaxIdentDepth(n int) Option {
	return func(c *Carver) {
		c.t.stack = make([]Kind, n)
		c.t.maxIdentDepth = n
	}
}

// Carver drives a single Source to exhaustion, writing completed candidates
// to jsonSink and reporting corrupted/exhausted ones to reportSink (spec.md
// §2, §6). One Carver is good for exactly one Source; it keeps no state
// useful across streams.
type Carver struct {
	t   *tracker
	src Source

	jsonSink   io.Writer
	reportSink io.Writer

	// MinSize is the minimum candidate length that reaches either sink.
	MinSize int
	// FixIncomplete enables repair-writer output for non-completed candidates.
	FixIncomplete bool
}

// New builds a Carver reading from src, writing completed candidates to
// jsonSink (one per line) and corrupted/exhausted reports to reportSink (CSV,
// one line per candidate, per spec.md §6).
func New(src Source, jsonSink, reportSink io.Writer, opts ...Option) *Carver {
	c := &Carver{
		t:          newTracker(defaultMaxSize, defaultMaxIdentDepth),
		src:        src,
		jsonSink:   jsonSink,
		reportSink: reportSink,
		MinSize:    DefaultMinSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run scans src to exhaustion. It returns only on a genuine I/O error from
// the source or either sink; reaching the end of the stream cleanly is not an
// error. Run is synchronous and single-threaded: it never spawns a goroutine
// and accepts no context.Context, by design (spec.md §7, §9).
func (c *Carver) Run() error {
	start := 0
	var lastb *byte

	for {
		var read int
		var ch byte

		if lastb != nil && (*lastb == charObjectOpen || *lastb == charArrayOpen) {
			read, ch = 0, *lastb
		} else {
			consumed, opener, ok, err := c.src.Scout()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			read, ch = consumed, opener
		}

		start = start + read - 1
		if lastb != nil {
			start++
		}

		o, err := c.hunt(ch)
		if err != nil {
			return err
		}

		switch o.tag {
		case tagCompleted:
			end := start + c.t.cur - 1
			if c.t.cur >= c.MinSize {
				if _, err := c.jsonSink.Write(c.t.buf[:c.t.cur]); err != nil {
					return err
				}
				if _, err := c.jsonSink.Write([]byte{charNewline}); err != nil {
					return err
				}
			}
			start = end + 1
			lastb = nil

		case tagCorrupted:
			corruptedEnd := start + c.t.cur - 1
			partialEnd := start + c.t.partialCloseEnd
			if c.t.partialCloseEnd >= c.MinSize {
				r := Report{Status: StatusCorrupted, Start: start, End: corruptedEnd, PartialEnd: partialEnd}
				if err := r.writeCSV(c.reportSink); err != nil {
					return err
				}
				if c.FixIncomplete {
					if err := c.writeRepaired(); err != nil {
						return err
					}
				}
			}
			start = corruptedEnd + 1
			b := o.b
			lastb = &b

		case tagExhausted:
			corruptedEnd := start + c.t.cur - 1
			partialEnd := start + c.t.partialCloseEnd
			if c.t.partialCloseEnd >= c.MinSize {
				r := Report{Status: StatusExhausted, Start: start, End: corruptedEnd, PartialEnd: partialEnd}
				if err := r.writeCSV(c.reportSink); err != nil {
					return err
				}
				if c.FixIncomplete {
					if err := c.writeRepaired(); err != nil {
						return err
					}
				}
			}
			return nil

		case tagFound:
			// hunt never returns with tagFound; it re-dispatches internally.
			panic("carver: hunt returned tagFound")
		}

		c.t.reset()
	}
}
