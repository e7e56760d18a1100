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
	"io"
	"testing"
)

func TestScoutSkipsGarbageAndConsumesOpener(t *testing.T) {
	r := FromBytes([]byte("junk[rest"))
	consumed, opener, ok, err := r.Scout()
	if err != nil {
		t.Fatalf("Scout: %v", err)
	}
	if !ok {
		t.Fatal("Scout ok = false, want true")
	}
	if opener != '[' {
		t.Errorf("opener = %q, want '['", opener)
	}
	if consumed != 5 {
		t.Errorf("consumed = %d, want 5 (\"junk[\")", consumed)
	}

	next, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if next != 'r' {
		t.Errorf("next byte = %q, want 'r' (opener must not be re-readable)", next)
	}
}

func TestScoutFindsObjectOpener(t *testing.T) {
	r := FromBytes([]byte("xx{"))
	_, opener, ok, err := r.Scout()
	if err != nil || !ok {
		t.Fatalf("Scout: ok=%v err=%v", ok, err)
	}
	if opener != '{' {
		t.Errorf("opener = %q, want '{'", opener)
	}
}

func TestScoutExhaustedReturnsNotOK(t *testing.T) {
	r := FromBytes([]byte("no openers here"))
	_, _, ok, err := r.Scout()
	if err != nil {
		t.Fatalf("Scout: %v", err)
	}
	if ok {
		t.Error("Scout ok = true, want false on exhausted input with no opener")
	}
}

func TestScoutEmptyInput(t *testing.T) {
	r := FromBytes(nil)
	_, _, ok, err := r.Scout()
	if err != nil {
		t.Fatalf("Scout: %v", err)
	}
	if ok {
		t.Error("Scout ok = true, want false on empty input")
	}
}

func TestReadByteEOF(t *testing.T) {
	r := FromBytes([]byte{})
	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("ReadByte err = %v, want io.EOF", err)
	}
}
