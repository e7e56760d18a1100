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

// Package source adapts concrete byte origins — files, stdin, in-memory
// buffers, optionally gzip/zstd-compressed — into carver.Source.
package source

import (
	"bufio"
	"bytes"
	"io"

	"github.com/benoit-pereira-da-silva/carve/pkg/carver"
)

// Reader implements carver.Source over any io.Reader, buffered through
// bufio so Scout's byte-at-a-time scan over compressed or network streams
// doesn't turn into one syscall per byte.
type Reader struct {
	br *bufio.Reader
}

// New wraps r as a carver.Source.
func New(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 64*1024)}
}

// FromBytes builds a carver.Source directly over an in-memory buffer,
// without an intervening syscall-backed reader. The package's tests use it;
// cmd/carve, batch mode included, builds its sources with New.
func FromBytes(b []byte) *Reader {
	return New(bytes.NewReader(b))
}

// Scout skips forward until a '[' or '{' is found, consuming through and
// including it (carver.Source contract). It retries on io.ErrNoProgress-style
// transient conditions implicitly: bufio.Reader.ReadByte only ever returns a
// genuine error or io.EOF, never a partial read, so there is nothing to loop
// on here beyond the normal scan.
func (r *Reader) Scout() (consumed int, opener byte, ok bool, err error) {
	for {
		b, err := r.br.ReadByte()
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

// ReadByte returns the next byte, or io.EOF when the stream is exhausted.
func (r *Reader) ReadByte() (byte, error) {
	return r.br.ReadByte()
}

var _ carver.Source = (*Reader)(nil)
