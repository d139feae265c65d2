// Copyright 2023 The go-mtudict Authors
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

package trk

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownInstruction indicates an instruction byte outside all
	// recognized ranges. The morpheme and prefix pass through unchanged.
	ErrUnknownInstruction = errors.New("unknown instruction")

	// ErrBadSuffixIndex indicates a suffix index outside the suffix table.
	ErrBadSuffixIndex = errors.New("suffix index out of range")
)

// prefixFor derives the two-letter prefix for a prefix index over the aa-zz
// prefix space.
func prefixFor(prefixIndex int) string {
	return string([]byte{
		byte('a' + prefixIndex/26),
		byte('a' + prefixIndex%26),
	})
}

// capitalize title-cases a two-letter prefix.
func capitalize(prefix string) string {
	return string(prefix[0]-'a'+'A') + prefix[1:]
}

// headOf returns the first n characters of the previous word. Entries near
// the start of a prefix bucket may refer to a shorter previous word.
func headOf(previousWord string, n int) string {
	r := []rune(previousWord)
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}

// Expand interprets an instruction byte and assembles a full headword from a
// morpheme. previousWord is the previous assembled headword with its prefix
// stripped; instructions in the 0x41-0x4F and related ranges splice its
// leading characters in front of the morpheme. suffixIndex selects an entry
// from suffixes for instructions 0x80 and above.
//
// Expand always returns a headword. For an unrecognized instruction the
// morpheme and prefix are left untransformed and the returned error wraps
// ErrUnknownInstruction.
func Expand(prefixIndex int, morpheme, previousWord string, instruction byte, suffixIndex int, suffixes []string) (string, error) {
	prefix := prefixFor(prefixIndex)

	suffix := func() (string, error) {
		if suffixIndex < 0 || suffixIndex >= len(suffixes) {
			return "", fmt.Errorf("%w: %d (table size %d)", ErrBadSuffixIndex, suffixIndex, len(suffixes))
		}
		return suffixes[suffixIndex], nil
	}

	switch {
	case instruction == 0x00 || instruction == 0x12:
		// Nothing to do here.
	case instruction == 0x20:
		prefix = capitalize(prefix)
	case 0x40 < instruction && instruction < 0x50:
		morpheme = headOf(previousWord, int(instruction-0x40)) + morpheme
	case 0x60 < instruction && instruction < 0x70:
		morpheme = headOf(previousWord, int(instruction-0x60)) + morpheme
		prefix = capitalize(prefix)
	case instruction == 0x80:
		s, err := suffix()
		if err != nil {
			return prefix + morpheme, err
		}
		morpheme += s
	case instruction == 0xA0:
		s, err := suffix()
		if err != nil {
			return capitalize(prefix) + morpheme, err
		}
		morpheme += s
		prefix = capitalize(prefix)
	case 0xC0 < instruction && instruction < 0xD0:
		s, err := suffix()
		if err != nil {
			return prefix + morpheme, err
		}
		morpheme = headOf(previousWord, int(instruction-0xC0)) + morpheme + s
	case 0xE0 < instruction && instruction < 0xF0:
		s, err := suffix()
		if err != nil {
			return capitalize(prefix) + morpheme, err
		}
		morpheme = headOf(previousWord, int(instruction-0xE0)) + morpheme + s
		prefix = capitalize(prefix)
	default:
		return prefix + morpheme, fmt.Errorf("%w: 0x%02x", ErrUnknownInstruction, instruction)
	}

	return prefix + morpheme, nil
}
