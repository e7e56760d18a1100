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

// outcomeTag discriminates the four ways a handler can end (spec.md §4.3).
// Modeled as an explicit tag + payload rather than an interface hierarchy:
// the hot loop dispatches on a direct comparison, never a virtual call
// (spec.md §9, "No dynamic dispatch in the hot loop").
type outcomeTag int

const (
	tagFound outcomeTag = iota
	tagCompleted
	tagCorrupted
	tagExhausted
)

// outcome is the sum-typed result of a handler or of hunt: accepted-and-found
// the next dispatch byte, the top-level value completed, a byte violated the
// grammar, or the source drained mid-value.
type outcome struct {
	tag outcomeTag
	b   byte // valid when tag == tagFound or tag == tagCorrupted
}

func found(b byte) outcome     { return outcome{tag: tagFound, b: b} }
func corrupted(b byte) outcome { return outcome{tag: tagCorrupted, b: b} }

var (
	completedOutcome = outcome{tag: tagCompleted}
	exhaustedOutcome = outcome{tag: tagExhausted}
)

// Status is the report status of a candidate that did not complete cleanly.
// It mirrors outcomeTag for the subset of outcomes that reach the report
// sink (spec.md §6): completed candidates are written to the JSON sink, not
// reported.
type Status string

const (
	// StatusCorrupted marks a candidate that violated the grammar at some byte.
	StatusCorrupted Status = "corrupted"
	// StatusExhausted marks a candidate still open when the source drained.
	StatusExhausted Status = "exhausted"
)
