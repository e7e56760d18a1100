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
	"fmt"
	"io"
)

// Report is one record describing a candidate that did not complete cleanly
// (spec.md §3, §6). Start, End, and PartialEnd are all inclusive absolute
// byte offsets into the original input stream.
type Report struct {
	Status     Status
	Start      int
	End        int
	PartialEnd int
}

// writeCSV writes one report line: "status,start,end,partial_end\n". The
// format is a header-less CSV with no quoting — every field is a bare
// identifier or a non-negative integer, so encoding/csv's quoting machinery
// would be pure overhead here; a direct Fprintf matches spec.md §6 exactly.
func (r Report) writeCSV(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s,%d,%d,%d\n", r.Status, r.Start, r.End, r.PartialEnd)
	return err
}
