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

// Command carve scans one or more byte streams for embedded JSON values and
// writes completed candidates to a JSON sink and corrupted/exhausted
// candidates to a CSV report sink (spec.md §6).
//
// Usage:
//
//	carve --output found.jsonl --report report.csv input.bin
//	carve --fix-incomplete --min-size 8 --workers 4 *.bin
//	cat capture.bin | carve --output -
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/benoit-pereira-da-silva/carve/internal/config"
	"github.com/benoit-pereira-da-silva/carve/internal/source"
	"github.com/benoit-pereira-da-silva/carve/internal/verify"
	"github.com/benoit-pereira-da-silva/carve/pkg/carver"
	"github.com/benoit-pereira-da-silva/carve/pkg/digest"
	"github.com/benoit-pereira-da-silva/carve/pkg/pipeline"
)

func main() {
	var (
		configPath      = flag.String("config", "", "path to a YAML config file (optional)")
		inputList       = flag.String("input", "", "comma-separated input paths, carved before any positional ones (default: stdin)")
		outPath         = flag.String("output", "-", "JSON sink path, or \"-\" for stdout")
		reportPath      = flag.String("report", "-", "CSV report sink path, or \"-\" for stderr")
		minSize         = flag.Int("min-size", -1, "minimum candidate size in bytes (default from config, else 4)")
		fix             = flag.Bool("fix-incomplete", false, "reconstruct a valid prefix for corrupted/exhausted candidates")
		replaceNewlines = flag.Bool("replace-newlines", false, "replace raw newlines inside a candidate with a space")
		maxIdentDepth   = flag.Int("max-ident-depth", 0, "maximum container nesting depth (0 = default)")
		doVerify        = flag.Bool("verify", false, "run a full JSON unmarshal over every completed candidate; drop those that fail it")
		digestAlg       = flag.String("digest", "", "content digest for completed candidates: \"\", fnv1a, xxh3, blake2b")
		workers         = flag.Int("workers", 0, "batch-mode worker count for multiple input files (0 = from config, else 1)")
		logLevel        = flag.String("log-level", "", "log level: debug, info, warn, error (default from config, else info)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	applyFlagOverrides(cfg, *minSize, *fix, *replaceNewlines, *maxIdentDepth, *doVerify, *digestAlg, *workers, *logLevel)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	alg, err := digest.ParseAlgorithm(cfg.Digest)
	if err != nil {
		slog.Error("invalid digest algorithm", "err", err)
		os.Exit(2)
	}

	rawJSONSink, closeJSON, err := openSink(*outPath, os.Stdout)
	if err != nil {
		slog.Error("cannot open JSON sink", "path", *outPath, "err", err)
		os.Exit(1)
	}
	defer closeJSON()

	rawReportSink, closeReport, err := openSink(*reportPath, os.Stderr)
	if err != nil {
		slog.Error("cannot open report sink", "path", *reportPath, "err", err)
		os.Exit(1)
	}
	defer closeReport()

	paths := flag.Args()
	if *inputList != "" {
		paths = append(strings.Split(*inputList, ","), paths...)
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	// A single input (or cfg.Workers <= 1) carves directly into the real
	// sinks: there is only ever one writer, so ordering is trivially
	// preserved.
	if len(paths) == 1 || cfg.Workers <= 1 {
		failed := 0
		for _, p := range paths {
			n, err := carveOne(p, rawJSONSink, rawReportSink, cfg, alg)
			if err != nil {
				slog.Error("carve failed", "path", p, "err", err)
				failed++
			} else {
				slog.Info("carve finished", "path", p, "candidates_written", n)
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	// Multiple inputs: each worker carves into its own in-memory buffers so
	// concurrent carves never interleave a byte of output. RunBatch hands
	// results back indexed by original input order, and the results are then
	// written to the real sinks sequentially in that order — so the combined
	// output is deterministic across runs regardless of which file happens
	// to finish carving first.
	jobs := make([]pipeline.Job, len(paths))
	for i, p := range paths {
		jobs[i] = pipeline.Job{Index: i, Path: p}
	}
	results, ps := pipeline.RunBatch(context.Background(), jobs, cfg.Workers, func(j pipeline.Job) pipeline.Result {
		var jsonBuf, reportBuf bytes.Buffer
		n, err := carveOne(j.Path, &jsonBuf, &reportBuf, cfg, alg)
		if err != nil {
			slog.Error("carve failed", "path", j.Path, "err", err)
		} else {
			slog.Info("carve finished", "path", j.Path, "candidates_written", n)
		}
		return pipeline.Result{Index: j.Index, Path: j.Path, JSON: jsonBuf.Bytes(), Report: reportBuf.Bytes(), Err: err}
	})

	failed := 0
	for _, r := range results {
		if len(r.JSON) > 0 {
			rawJSONSink.Write(r.JSON)
		}
		if len(r.Report) > 0 {
			rawReportSink.Write(r.Report)
		}
		if r.Err != nil {
			failed++
		}
	}
	if info, ok := ps.Load(); ok {
		slog.Error("worker panicked", "value", info.Value)
		failed++
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// carveOne carves a single input (a file path, or "-" for stdin), applying
// --verify and --digest if configured. It returns the number of candidates
// actually written to jsonSink.
func carveOne(path string, jsonSink, reportSink io.Writer, cfg *config.Config, alg digest.Algorithm) (int, error) {
	raw, closeRaw, err := openInput(path)
	if err != nil {
		return 0, err
	}
	defer closeRaw()

	decompressed, err := source.Decompressed(raw)
	if err != nil {
		return 0, err
	}
	src := source.New(decompressed)

	counting := &countingSink{w: jsonSink, verify: cfg.Verify, alg: alg}

	opts := []carver.Option{
		carver.WithMinSize(cfg.MinSize),
		carver.WithFixIncomplete(cfg.FixIncomplete),
		carver.WithReplaceNewlines(cfg.ReplaceNewlines),
	}
	if cfg.MaxIdentDepth > 0 {
		opts = append(opts, carver.WithMaxIdentDepth(cfg.MaxIdentDepth))
	}

	c := carver.New(src, counting, reportSink, opts...)
	if err := c.Run(); err != nil {
		return counting.n, err
	}
	return counting.n, nil
}

// countingSink wraps the JSON sink to optionally run the --verify semantic
// check and compute a --digest fingerprint before forwarding each completed
// candidate line. Carver.Run and the repair writer (pkg/carver) always emit
// one candidate as a run of Write calls terminated by a standalone
// Write([]byte{'\n'}) call — never an embedded newline inside a larger
// write — so that one-byte write is the signal countingSink watches for,
// rather than scanning content for '\n' (a candidate's own bytes may
// legitimately contain a raw newline when --replace-newlines is off).
type countingSink struct {
	w      io.Writer
	verify bool
	alg    digest.Algorithm
	n      int
	buf    []byte
}

func (s *countingSink) Write(p []byte) (int, error) {
	if len(p) == 1 && p[0] == '\n' {
		line := s.buf
		s.buf = nil

		if s.verify && !verify.Semantic(line) {
			return len(p), nil
		}
		if s.alg != digest.None {
			slog.Debug("candidate digest", "sum", digest.Sum(line, s.alg))
		}
		if _, err := s.w.Write(line); err != nil {
			return 0, err
		}
		if _, err := s.w.Write(p); err != nil {
			return 0, err
		}
		s.n++
		return len(p), nil
	}

	s.buf = append(s.buf, p...)
	return len(p), nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openSink(path string, fallback *os.File) (io.Writer, func(), error) {
	if path == "-" {
		return fallback, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func applyFlagOverrides(cfg *config.Config, minSize int, fix, replaceNewlines bool, maxIdentDepth int, doVerify bool, digestAlg string, workers int, logLevel string) {
	if minSize >= 0 {
		cfg.MinSize = minSize
	}
	if fix {
		cfg.FixIncomplete = true
	}
	if replaceNewlines {
		cfg.ReplaceNewlines = true
	}
	if maxIdentDepth > 0 {
		cfg.MaxIdentDepth = maxIdentDepth
	}
	if doVerify {
		cfg.Verify = true
	}
	if digestAlg != "" {
		cfg.Digest = digestAlg
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
