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

// handleNumber scans a JSON number starting from its first byte (a '-' or a
// digit), which it appends before reading further. It enforces the leading-zero rule
// (spec.md §4.3, "Number handler details"): once the first post-sign digit is
// a '0', no further digit may immediately follow it — only '.', 'e'/'E',
// whitespace, or ',', ']', '}'.
func (c *Carver) handleNumber(start byte) (outcome, error) {
	c.t.append(start)
	inFrac := false
	inExp := false

	// leadingZero is nil until the digit right after an optional sign is
	// known; true while that digit was '0' and no further digit has been
	// seen yet; false once it's established the number does not have (or is
	// past) a leading zero.
	var leadingZero *bool

	for {
		b, err := c.src.ReadByte()
		if err == io.EOF {
			return exhaustedOutcome, nil
		}
		if err != nil {
			return outcome{}, err
		}

		last, _ := c.t.lastByte()

		if leadingZero == nil {
			switch last {
			case charMinus:
				// still waiting on the first digit
			case charZero:
				v := true
				leadingZero = &v
			default:
				v := false
				leadingZero = &v
			}
		}
		if leadingZero != nil && *leadingZero {
			if isDigit(b) {
				return corrupted(b), nil
			}
			v := false
			leadingZero = &v
		}

		switch {
		case (last == charMinus || last == charPlus || last == charDecimal) && isDigit(b):
			// ok
		case (last == charExpLo || last == charExpHi) && (isDigit(b) || b == charMinus || b == charPlus):
			// ok
		case isDigit(last) && isDigit(b):
			// ok
		case (isDigit(last) || isInsignificantWhitespace(last)) && isInsignificantWhitespace(b):
			// trailing whitespace before the closing ',' ']' '}'; spec.md §4.3
			// "Number handler details" allows whitespace to be followed by
			// more whitespace here (the reference implementation's hand-coded
			// match happens to omit this case).
			// ok
		case isDigit(last) && b == charDecimal:
			if inFrac || inExp {
				return corrupted(b), nil
			}
			inFrac = true
		case isDigit(last) && (b == charExpLo || b == charExpHi):
			if inExp {
				return corrupted(b), nil
			}
			inExp = true
		case (isInsignificantWhitespace(last) || isDigit(last)) &&
			(b == charComma || b == charArrayClose || b == charObjectClose):
			return found(b), nil
		default:
			return corrupted(b), nil
		}
		c.t.append(b)
	}
}
