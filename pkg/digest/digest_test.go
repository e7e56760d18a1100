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

package digest

import "testing"

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"", None, false},
		{"xxh3", XXH3, false},
		{"fnv1a", FNV1a, false},
		{"blake2b", Blake2b, false},
		{"sha256", None, true},
	}
	for _, c := range cases {
		got, err := ParseAlgorithm(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseAlgorithm(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
			continue
		}
		if got != c.want {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSumNoneIsEmpty(t *testing.T) {
	if got := Sum([]byte(`{"a":1}`), None); got != "" {
		t.Errorf("Sum(_, None) = %q, want \"\"", got)
	}
}

func TestSumIsDeterministicPerAlgorithm(t *testing.T) {
	b := []byte(`{"a": [1, 2, 3]}`)
	for _, alg := range []Algorithm{XXH3, FNV1a, Blake2b} {
		first := Sum(b, alg)
		second := Sum(b, alg)
		if first == "" {
			t.Errorf("Sum(_, %v) = \"\", want a non-empty digest", alg)
		}
		if first != second {
			t.Errorf("Sum(_, %v) not stable: %q != %q", alg, first, second)
		}
	}
}

func TestSumDiffersAcrossInput(t *testing.T) {
	a := Sum([]byte(`{"a":1}`), XXH3)
	b := Sum([]byte(`{"a":2}`), XXH3)
	if a == b {
		t.Errorf("Sum produced the same digest for different input: %q", a)
	}
}
