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

package verify

import "testing"

func TestSemantic(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`{"a": 1}`, true},
		{`[1, 2, 3]`, true},
		{`"just a string"`, true},
		{`42`, true},
		{``, false},
		{`{"a": 1`, false},
		{`{"a": 1} trailing garbage`, false},
		{`{"a": 1}{"b": 2}`, false},
	}
	for _, c := range cases {
		if got := Semantic([]byte(c.in)); got != c.want {
			t.Errorf("Semantic(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
