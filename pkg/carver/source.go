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

// Source is the byte source contract the carver drives (spec.md §6). It
// exposes exactly two primitives:
//
//   - Scout skips forward over bytes that cannot start a candidate, stopping
//     at the first container opener ('[' or '{'). It consumes bytes through
//     and including that opener and returns it directly so the caller never
//     re-reads it from the stream.
//   - ReadByte pulls the single next byte.
//
// Implementations are expected to retry transient interrupted-read errors
// internally and only return an error for a genuine I/O failure (spec.md
// §4.1, §7). See package internal/source for the concrete adapters (file,
// stdin, in-memory, transparently-decompressed).
type Source interface {
	// Scout returns the number of bytes consumed (including the opener),
	// the opener byte itself, and ok=true if one was found. ok=false with a
	// nil error means the source drained without any opener remaining
	// (clean EOF); a non-nil error means a genuine I/O failure.
	Scout() (consumed int, opener byte, ok bool, err error)

	// ReadByte returns the next byte, or io.EOF when the stream is exhausted.
	ReadByte() (byte, error)
}
