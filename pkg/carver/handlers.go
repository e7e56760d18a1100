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

// hunt drives the syntactic state machine (spec.md §4.3) starting from ch, an
// opener byte already consumed from the source by scout. Each handler
// consumes further bytes and returns an outcome; tagFound re-dispatches on the
// byte it carries, without leaving this loop, so a single hunt call may visit
// many handlers for one candidate.
func (c *Carver) hunt(ch byte) (outcome, error) {
	for {
		var o outcome
		var err error

		switch {
		case ch == charArrayOpen:
			o, err = c.handleOpen(KindArray)
		case ch == charObjectOpen:
			o, err = c.handleOpen(KindObject)
		case ch == charArrayClose:
			o, err = c.handleClose(KindArray)
		case ch == charObjectClose:
			o, err = c.handleClose(KindObject)
		case ch == charColon:
			o, err = c.handleColon()
		case ch == charComma:
			o, err = c.handleComma()
		case ch == charQuote:
			o, err = c.handleString()
		case ch == charMinus || isDigit(ch):
			o, err = c.handleNumber(ch)
		case ch == charFalseStart || ch == charNullStart || ch == charTrueStart:
			o, err = c.handleLiteral(ch)
		default:
			// scout only ever hands hunt an opener; re-dispatch only ever
			// hands it a byte one of the handlers below declared legal. A
			// byte that matches none of the cases above is a corrupted
			// candidate, not a bug in this loop.
			return corrupted(ch), nil
		}
		if err != nil {
			return outcome{}, err
		}
		switch o.tag {
		case tagFound:
			ch = o.b
			continue
		default:
			return o, nil
		}
	}
}

// handleOpen pushes a new container and scans for the first legal byte
// inside it (spec.md §4.3 table, "[ opener" / "{ opener" rows).
func (c *Carver) handleOpen(k Kind) (outcome, error) {
	if err := c.t.push(k); err != nil {
		return corrupted(k.Opener()), nil
	}
	for {
		b, err := c.src.ReadByte()
		if err == io.EOF {
			return exhaustedOutcome, nil
		}
		if err != nil {
			return outcome{}, err
		}
		if k == KindObject {
			switch b {
			case charQuote:
				c.t.inKey = true
				return found(b), nil
			case charObjectClose:
				return found(b), nil
			}
			if isInsignificantWhitespace(b) {
				c.t.append(b)
				continue
			}
			return corrupted(b), nil
		}
		// KindArray
		switch {
		case b == charArrayOpen, b == charObjectOpen, b == charArrayClose,
			b == charQuote, b == charMinus, isDigit(b),
			b == charFalseStart, b == charNullStart, b == charTrueStart:
			return found(b), nil
		case isInsignificantWhitespace(b):
			c.t.append(b)
		default:
			return corrupted(b), nil
		}
	}
}

// afterClose is the alphabet every closer handler falls back on once it has
// closed a still-nested container: a comma continues the enclosing
// container, a closer closes another level.
func (c *Carver) afterClose() (outcome, error) {
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

// handleClose pops the container k from the nest stack (spec.md §4.3 table,
// "] closer" / "} closer" rows).
func (c *Carver) handleClose(k Kind) (outcome, error) {
	completed, ok := c.t.pop(k)
	if !ok {
		return corrupted(k.Closer()), nil
	}
	if completed {
		return completedOutcome, nil
	}
	return c.afterClose()
}

// handleColon appends ':', clears inKey, and scans for the first legal byte
// of the value that follows it.
func (c *Carver) handleColon() (outcome, error) {
	c.t.inKey = false
	c.t.append(charColon)
	for {
		b, err := c.src.ReadByte()
		if err == io.EOF {
			return exhaustedOutcome, nil
		}
		if err != nil {
			return outcome{}, err
		}
		switch {
		case b == charObjectOpen, b == charArrayOpen, b == charMinus, isDigit(b),
			b == charQuote, b == charFalseStart, b == charNullStart, b == charTrueStart:
			return found(b), nil
		case isInsignificantWhitespace(b):
			c.t.append(b)
		default:
			return corrupted(b), nil
		}
	}
}

// handleComma appends ',' and, depending on whether the enclosing container
// is an array or an object, scans for the next legal byte (spec.md §4.3
// table, "," row). A comma encountered with an empty nest stack, or whose
// enclosing container is neither, is corrupted (spec.md §9, Open Question 2).
func (c *Carver) handleComma() (outcome, error) {
	c.t.append(charComma)
	top, ok := c.t.top()
	if !ok {
		return corrupted(charComma), nil
	}
	switch top {
	case KindArray:
		for {
			b, err := c.src.ReadByte()
			if err == io.EOF {
				return exhaustedOutcome, nil
			}
			if err != nil {
				return outcome{}, err
			}
			switch {
			case b == charObjectOpen, b == charArrayOpen, b == charMinus, isDigit(b),
				b == charQuote, b == charFalseStart, b == charNullStart, b == charTrueStart:
				return found(b), nil
			case isInsignificantWhitespace(b):
				c.t.append(b)
			default:
				return corrupted(b), nil
			}
		}
	case KindObject:
		for {
			b, err := c.src.ReadByte()
			if err == io.EOF {
				return exhaustedOutcome, nil
			}
			if err != nil {
				return outcome{}, err
			}
			if b == charQuote {
				c.t.inKey = true
				return found(b), nil
			}
			if isInsignificantWhitespace(b) {
				c.t.append(b)
				continue
			}
			return corrupted(b), nil
		}
	default:
		return corrupted(charComma), nil
	}
}
