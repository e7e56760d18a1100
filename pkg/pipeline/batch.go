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

package pipeline

import "context"

// Job names one input to carve: a path, or "-" for stdin. Index is the job's
// position among its siblings in the batch; carve functions don't need it,
// but RunBatch does, to hand results back in the original order regardless
// of which file happens to finish carving first.
type Job struct {
	Index int
	Path  string
}

// Result is what one worker reports back for a single Job. JSON and Report
// hold that job's complete sink output when the caller buffers per-job
// output (batch mode does this so concurrent carves never interleave a byte
// of output); callers that carve directly into a shared sink can leave them
// nil.
type Result struct {
	Index  int
	Path   string
	JSON   []byte
	Report []byte
	Err    error
}

// RunBatch carves every job in jobs using up to `workers` concurrent
// workers, calling carve for each one, and returns one Result per job, in
// the same order as jobs — not completion order. A carve that panics is
// recovered by FanOut and surfaced through the returned PanicStore rather
// than corrupting the result slice or crashing the batch.
//
// carve is expected to open its own Source, sinks, and Carver for job.Path —
// RunBatch only supplies the concurrency and the ordering guarantee; it has
// no opinion on how a single file is carved (that is pkg/carver's job, one
// Carver per file, never shared across workers).
func RunBatch(ctx context.Context, jobs []Job, workers int, carve func(Job) Result) ([]Result, *PanicStore) {
	if ctx == nil {
		ctx = context.Background()
	}

	in := make(chan Job)
	go func() {
		defer close(in)
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return
			case in <- j:
			}
		}
	}()

	out, ps := FanOut(ctx, workers, in, carve)

	results := make([]Result, len(jobs))
	for r := range out {
		results[r.Index] = r
	}
	return results, ps
}
