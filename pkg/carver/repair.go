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

// writeRepaired reconstructs a syntactically valid prefix of the candidate
// currently held by the tracker (spec.md §4.5). It writes the bytes buffered
// up to and including partialCloseEnd — the last position at which every
// then-open container had just closed — followed by a synthesized closer for
// each container still open, innermost first (LIFO order of the nest stack),
// then a trailing newline. It is only ever called while the candidate that
// produced the current tracker state is still loaded, i.e. before reset.
func (c *Carver) writeRepaired() error {
	if _, err := c.jsonSink.Write(c.t.buf[:c.t.partialCloseEnd+1]); err != nil {
		return err
	}
	for i := c.t.depth - 1; i >= 0; i-- {
		if _, err := c.jsonSink.Write([]byte{c.t.stack[i].Closer()}); err != nil {
			return err
		}
	}
	_, err := c.jsonSink.Write([]byte{charNewline})
	return err
}
