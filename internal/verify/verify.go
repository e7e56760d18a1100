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

// Package verify runs an optional semantic sanity pass over a completed
// candidate: a full JSON unmarshal, discarding the parsed value. This is
// strictly additional to pkg/carver, never part of it — the carver's own
// contract is purely syntactic (spec.md §1, Non-goals: "no semantic
// validation"). A candidate can be syntactically well-formed JSON and still
// be something no sane producer emitted (e.g. a number with 4,000 digits);
// --verify exists for operators who want that extra, slower filter and are
// willing to pay full-unmarshal cost for it.
package verify

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Semantic reports whether b unmarshals as a single JSON value with nothing
// left over. goccy/go-json is used instead of encoding/json because this
// runs once per completed candidate in the hot path of a large batch job,
// and the corpus consistently reaches for goccy/go-json wherever unmarshal
// throughput matters.
func Semantic(b []byte) bool {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&v); err != nil {
		return false
	}
	return !dec.More()
}
