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

// Package digest computes an optional, diagnostic content fingerprint for a
// carved candidate. It is never part of the CSV report contract and is never
// used to deduplicate candidates — spec.md's data model has no notion of a
// candidate identity beyond its byte offsets — it exists purely so an
// operator triaging a batch run can tell "did I already see this exact blob
// at a different offset" without diffing bytes by hand.
package digest

import (
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Algorithm selects which hash function Sum uses.
type Algorithm int

const (
	// None disables digest computation; Sum returns "".
	None Algorithm = iota
	// XXH3 is the fastest option, and the one the upstream corpus reaches
	// for first when raw throughput matters more than cryptographic strength.
	// It is not the default: ParseAlgorithm("") returns None, so digesting is
	// opt-in.
	XXH3
	// FNV1a needs no dependency beyond the standard library's hash/fnv.
	FNV1a
	// Blake2b trades speed for a cryptographically-regarded digest.
	Blake2b
)

// ParseAlgorithm maps a config/flag string ("", "xxh3", "fnv1a", "blake2b")
// to an Algorithm. An unrecognized name is reported as an error rather than
// silently falling back to None, since a typo'd flag should not silently
// disable the feature it named.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "":
		return None, nil
	case "xxh3":
		return XXH3, nil
	case "fnv1a":
		return FNV1a, nil
	case "blake2b":
		return Blake2b, nil
	default:
		return None, fmt.Errorf("digest: unknown algorithm %q", s)
	}
}

// Sum returns a 16 hex character digest of b under alg, or "" when
// alg is None.
func Sum(b []byte, alg Algorithm) string {
	switch alg {
	case XXH3:
		return fmt.Sprintf("%016x", xxh3.Hash(b))
	case FNV1a:
		h := fnv.New64a()
		h.Write(b)
		return fmt.Sprintf("%016x", h.Sum64())
	case Blake2b:
		h, _ := blake2b.New(8, nil)
		h.Write(b)
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
