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

// handleLiteral scans one of the three JSON literals (false/null/true),
// starting from its first byte, which it appends before reading further. Every
// subsequent byte must exactly match the literal's remaining characters;
// afterward, insignificant whitespace may follow, then the candidate must
// see ',', ']', or '}' (spec.md §4.3, "Literal handler details").
func (c *Carver) handleLiteral(start byte) (outcome, error) {
	c.t.append(start)

	var tail string
	switch start {
	case charFalseStart:
		tail = "alse"
	case charNullStart:
		tail = "ull"
	case charTrueStart:
		tail = "rue"
	}

	for i := 0; i < len(tail); i++ {
		b, err := c.src.ReadByte()
		if err == io.EOF {
			return exhaustedOutcome, nil
		}
		if err != nil {
			return outcome{}, err
		}
		if b != tail[i] {
			return corrupted(b), nil
		}
		c.t.append(b)
	}

	for {
		b, err := c.src.ReadByte()
		if err == io.EOF {
			return exhaustedOutcome, nil
		}
		if err != nil {
			return outcome{}, err
		}
		switch b {
		case charComma, charArrayClose, charObjectClose:
			return found(b), nil
		}
		if isInsignificantWhitespace(b) {
			c.t.append(b)
			continue
		}
		return corrupted(b), nil
	}
}
