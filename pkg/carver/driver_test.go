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

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
)

// memSource is a minimal Source over an in-memory buffer, used only by this
// package's own tests so they don't have to reach into internal/source.
type memSource struct {
	br *bufio.Reader
}

func newMemSource(s string) *memSource {
	return &memSource{br: bufio.NewReader(strings.NewReader(s))}
}

func (m *memSource) Scout() (consumed int, opener byte, ok bool, err error) {
	for {
		b, err := m.br.ReadByte()
		if err == io.EOF {
			return consumed, 0, false, nil
		}
		if err != nil {
			return consumed, 0, false, err
		}
		consumed++
		if b == '[' || b == '{' {
			return consumed, b, true, nil
		}
	}
}

func (m *memSource) ReadByte() (byte, error) {
	return m.br.ReadByte()
}

// parseCollect runs a Carver over buf with MinSize 0 and returns every
// completed candidate line (the JSON sink's content, split on '\n', with the
// trailing empty line dropped). It mirrors the reference implementation's
// own `collect` test helper.
func parseCollect(t *testing.T, buf string) []string {
	t.Helper()
	var jsonOut, reportOut bytes.Buffer
	c := New(newMemSource(buf), &jsonOut, &reportOut, WithMinSize(0))
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := strings.TrimSuffix(jsonOut.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestParseFound(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`{}`, []string{`{}`}},
		{`[{}]`, []string{`[{}]`}},
		{`{ {} ]`, []string{`{}`}},
		{`{    []`, []string{`[]`}},
		{"hey\n{[]}", []string{`[]`}},
		{`hey`, nil},
		{`[[[[[[[{}]]]]]]]`, []string{`[[[[[[[{}]]]]]]]`}},
		{`I[{}]want[[]]moar`, []string{`[{}]`, `[[]]`}},
		{`{"hey": "there"}`, []string{`{"hey": "there"}`}},
		{
			`{"hey": "there"}{"how": "are", "you": "doing?"}`,
			[]string{`{"hey": "there"}`, `{"how": "are", "you": "doing?"}`},
		},
		{`["test", ["nested", {"json": "objs"}]]`, []string{`["test", ["nested", {"json": "objs"}]]`}},
		{`[1, 2]`, []string{`[1, 2]`}},
		{`[1, {"test": -2}]`, []string{`[1, {"test": -2}]`}},
		{`[1]{[-9]test: 9}`, []string{`[1]`, `[-9]`}},
		{
			`{"numbers": 9, "literals": true, "lists": ["1", false, {}]}`,
			[]string{`{"numbers": 9, "literals": true, "lists": ["1", false, {}]}`},
		},
		{`[trap, [nullify, 1], {"true": true}]`, []string{`{"true": true}`}},
		{`[1]{"key":"val":  [2],[fal[3]]]`, []string{`[1]`, `[2]`, `[3]`}},
	}

	for _, c := range cases {
		got := parseCollect(t, c.in)
		if !equalSlices(got, c.want) {
			t.Errorf("parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFail(t *testing.T) {
	badBuffers := []string{
		"hey",
		`{"hey", "there"}`,
		"{:}",
		"{]}",
		`{9: "9"}`,
		`{"more": "colons": "bad"}`,
		`{"test":, "bad"}`,
		`[:]`,
		`["a", "b",]`,
		`["a", "b", {": "test"}]`,
		"999",
		`{999: "666"}`,
		`[999: "666"]`,
		`[999   , ]`,
		`[trap]`,
		`[nullify]`,
		`{true: false}`,
		`[true`,
		`[false`,
		`[null`,
		`[9`,
		`["test`,
		`["test"`,
		"[{",
		"[",
		"{",
	}
	for _, buf := range badBuffers {
		if got := parseCollect(t, buf); len(got) != 0 {
			t.Errorf("parse(%q) = %v, want none", buf, got)
		}
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
