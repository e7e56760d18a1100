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

import "io"

// handleString scans a JSON string whose opening quote was the dispatch byte;
// it appends that quote itself before reading further. It tracks two escape sub-states (spec.md §4.3, "String
// handler details"):
//
//   - inString: toggled false by an unescaped closing '"'.
//   - inEscape: set by a bare backslash; the following byte must be one of
//     ", \, /, b, f, n, r, t, u. A 'u' enters a 4-byte hex-digit run
//     (inEscapedUnicode) instead of clearing inEscape immediately.
//
// \uXXXX escapes are validated as four ASCII hex digits and nothing more:
// high/low surrogate pairing across two consecutive \u escapes is not
// checked (spec.md §9, Open Question 3 — documented non-goal).
//
// Once the closing quote is seen, the handler does not return immediately: it
// keeps consuming insignificant whitespace and then peeks the byte that
// disambiguates whether this string was a key, an object value, or an array
// element (spec.md §4.3, "this is how the scanner distinguishes
// key-vs-value-vs-array-element").
func (c *Carver) handleString() (outcome, error) {
	c.t.append(charQuote)
	inString := true
	inEscape := false
	inEscapedUnicode := 0

	for {
		b, err := c.src.ReadByte()
		if err == io.EOF {
			return exhaustedOutcome, nil
		}
		if err != nil {
			return outcome{}, err
		}

		if !inString {
			top, _ := c.t.top()
			if isInsignificantWhitespace(b) {
				c.t.append(b)
				continue
			}
			switch {
			case (b == charComma || b == charArrayClose) && top == KindArray:
				return found(b), nil
			case (b == charComma || b == charObjectClose) && top == KindObject && !c.t.inKey:
				return found(b), nil
			case b == charColon && top == KindObject && c.t.inKey:
				return found(b), nil
			default:
				return corrupted(b), nil
			}
		}

		switch {
		case b == charEscape && !inEscape && inEscapedUnicode == 0:
			inEscape = true
		case b == charQuote && !inEscape && inEscapedUnicode == 0:
			inString = false
		case b < 0x20:
			return corrupted(b), nil
		case !inEscape && inEscapedUnicode == 0:
			// ordinary byte; nothing to do beyond appending it below
		case b == charU && inEscape && inEscapedUnicode == 0:
			inEscapedUnicode = 4
			inEscape = false
		case inEscape && inEscapedUnicode == 0:
			if !byteCanEscape(b) {
				return corrupted(b), nil
			}
			inEscape = false
		case inEscapedUnicode > 0:
			if !isASCIIHexDigit(b) {
				return corrupted(b), nil
			}
			inEscapedUnicode--
		default:
			return corrupted(b), nil
		}
		c.t.append(b)
	}
}

func byteCanEscape(b byte) bool {
	switch b {
	case charQuote, charEscape, '/', 'b', 'f', 'n', 'r', 't', charU:
		return true
	default:
		return false
	}
}

func isASCIIHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
