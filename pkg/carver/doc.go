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

// Package carver scans an arbitrary byte stream for embedded, structurally
// valid JSON values (RFC 8259), in the style of "strings(1)" specialized to
// JSON. The input is not assumed to be JSON: the scanner resynchronises past
// garbage bytes, reports partial/corrupted candidates instead of failing, and
// can reconstruct a syntactically valid prefix of a candidate that was cut
// short.
//
// The scanner is strictly single-threaded and synchronous: one Carver consumes
// one Source to exhaustion, blocking only on reads from the Source and writes
// to its two sinks. There are no cancellation tokens and no internal
// goroutines; callers that want concurrency run multiple Carvers, each on its
// own stream (see package pipeline and the cmd/carve batch mode for that).
package carver
