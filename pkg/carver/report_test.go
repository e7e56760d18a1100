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
	"bytes"
	"strings"
	"testing"
)

// reportIncomplete runs a Carver with FixIncomplete over buf and returns the
// JSON sink content and the report sink content, both with any single
// trailing newline stripped, mirroring the reference implementation's own
// `report_incomplete` test helper.
func reportIncomplete(t *testing.T, buf string) (string, string) {
	t.Helper()
	var jsonOut, reportOut bytes.Buffer
	c := New(newMemSource(buf), &jsonOut, &reportOut, WithMinSize(0), WithFixIncomplete(true))
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return strings.TrimSuffix(jsonOut.String(), "\n"), strings.TrimSuffix(reportOut.String(), "\n")
}

func TestReportIncomplete(t *testing.T) {
	cases := []struct {
		in         string
		wantJSON   string
		wantReport string
	}{
		{
			"{",
			"{}",
			"exhausted,0,0,0",
		},
		{
			"[{[{[[",
			"[{}]\n[{}]\n[[]]",
			"corrupted,0,1,1\ncorrupted,2,3,3\nexhausted,4,5,5",
		},
		{
			`{"test": {"inside": [1, 2]`,
			`{"test": {"inside": [1, 2]}}`,
			"exhausted,0,25,25",
		},
		{
			`[1, 2, 3, {"test"[true, null, far{"key": "value",[9]`,
			"[1, 2, 3, {}]\n[]\n{}\n[9]",
			"corrupted,0,16,10\ncorrupted,17,31,17\ncorrupted,33,48,33",
		},
		{
			`[1]{"key":"val":  [2],[fal[3]]]`,
			"[1]\n{}\n[2]\n[]\n[3]",
			"corrupted,3,14,3\ncorrupted,22,25,22",
		},
	}

	for _, c := range cases {
		gotJSON, gotReport := reportIncomplete(t, c.in)
		if gotJSON != c.wantJSON {
			t.Errorf("report_incomplete(%q) json = %q, want %q", c.in, gotJSON, c.wantJSON)
		}
		if gotReport != c.wantReport {
			t.Errorf("report_incomplete(%q) report = %q, want %q", c.in, gotReport, c.wantReport)
		}
	}
}
