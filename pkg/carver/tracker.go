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

import "errors"

// ErrNestTooDeep is returned by tracker.push when a candidate would nest
// containers deeper than the tracker's configured MaxIdentDepth. The driver
// turns this into a Corrupted outcome at the offending opener (spec.md §9,
// Open Question 1), rather than growing the nest stack without bound.
var ErrNestTooDeep = errors.New("carver: nest stack exceeds max ident depth")

// defaultMaxSize is the candidate buffer's initial capacity, and the size of
// each growth increment once it overflows.
const defaultMaxSize = 4 << 20 // 4 MiB

// defaultMaxIdentDepth bounds the nest stack.
const defaultMaxIdentDepth = 4 << 20 // 4 Mi entries

// tracker is the nesting tracker (spec.md §3/§4.2): an append-only buffer of
// the bytes of the candidate currently being accumulated, a stack of open
// container kinds, and partialCloseEnd, a bookmark naming the last buffer
// index at which every open container had just been closed.
//
// tracker is private to the state machine; callers interact with it only
// through Carver and Report.
type tracker struct {
	buf []byte // candidate buffer; grows by defaultMaxSize increments
	cur int    // number of bytes appended so far

	stack []Kind // open container kinds, top of stack last
	depth int    // len(stack) in use; stack's backing array never grows past MaxIdentDepth

	partialCloseEnd int // last index at which all open containers had just closed
	inKey           bool

	replaceNewlines bool
	maxIdentDepth   int
}

func newTracker(maxSize, maxIdentDepth int) *tracker {
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}
	if maxIdentDepth <= 0 {
		maxIdentDepth = defaultMaxIdentDepth
	}
	return &tracker{
		buf:           make([]byte, maxSize),
		stack:         make([]Kind, maxIdentDepth),
		maxIdentDepth: maxIdentDepth,
	}
}

// append places b at index cur, growing the buffer if needed, and increments
// cur. When replaceNewlines is set, a raw '\n' is substituted with a space
// before being placed — the carver's one permitted non-verbatim substitution
// (spec.md §1, §3).
func (t *tracker) append(b byte) {
	if t.replaceNewlines && b == charNewline {
		b = charSpace
	}
	if t.cur >= len(t.buf) {
		t.buf = append(t.buf, make([]byte, defaultMaxSize)...)
	}
	t.buf[t.cur] = b
	t.cur++
}

// push opens a new container. partialCloseEnd is set to cur *before* the
// opener is appended: it names the position just before the new opener, i.e.
// the last point at which every previously open container was closed
// (spec.md §9, "partial_close_end semantics").
func (t *tracker) push(k Kind) error {
	if t.depth >= t.maxIdentDepth {
		return ErrNestTooDeep
	}
	t.partialCloseEnd = t.cur
	t.stack[t.depth] = k
	t.depth++
	t.append(k.Opener())
	return nil
}

// pop closes the container on top of the stack. It fails if the stack is
// empty or its top does not match expected. On success, partialCloseEnd is
// set to cur *before* the closer is appended — on a pop this marks the
// position just before the closer byte, which per spec.md §9 is precisely
// why the repair writer emits buf[0 : partialCloseEnd+1]: that range includes
// the closer byte the pop just committed to writing.
//
// pop returns (completed, ok): completed is true iff the stack is now empty.
func (t *tracker) pop(expected Kind) (completed bool, ok bool) {
	if t.depth == 0 || t.stack[t.depth-1] != expected {
		return false, false
	}
	t.partialCloseEnd = t.cur
	t.depth--
	t.append(expected.Closer())
	return t.depth == 0, true
}

// top returns the container kind on top of the stack, or ok=false if empty.
func (t *tracker) top() (k Kind, ok bool) {
	if t.depth == 0 {
		return 0, false
	}
	return t.stack[t.depth-1], true
}

// lastByte returns the most recently appended byte, or ok=false if nothing
// has been appended yet.
func (t *tracker) lastByte() (b byte, ok bool) {
	if t.cur == 0 {
		return 0, false
	}
	return t.buf[t.cur-1], true
}

// reset clears the tracker between candidates. The underlying buffer and
// stack capacity are retained as a high-water mark (spec.md §3, "Lifecycle").
func (t *tracker) reset() {
	t.cur = 0
	t.partialCloseEnd = 0
	t.depth = 0
	t.inKey = false
}
