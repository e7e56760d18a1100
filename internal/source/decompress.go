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

package source

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// gzip magic: 1f 8b. zstd magic: 28 b5 2f fd.
var (
	gzipMagic = [2]byte{0x1f, 0x8b}
	zstdMagic = [4]byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Decompressed peeks the first few bytes of r and, if they match a gzip or
// zstd magic number, wraps r in the matching decompressor so forensic input
// (captured memory dumps, log archives) can be carved without a separate
// unpacking step (SPEC_FULL.md, "internal/source"). Input that matches
// neither magic is returned unwrapped — the carver treats it as a raw byte
// stream, which is always a valid fallback since carving never assumes its
// input is well-formed to begin with.
func Decompressed(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	peek, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("source: peek magic: %w", err)
	}

	switch {
	case len(peek) >= 2 && peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1]:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("source: open gzip stream: %w", err)
		}
		return gz, nil
	case len(peek) >= 4 && peek[0] == zstdMagic[0] && peek[1] == zstdMagic[1] &&
		peek[2] == zstdMagic[2] && peek[3] == zstdMagic[3]:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("source: open zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return br, nil
	}
}
