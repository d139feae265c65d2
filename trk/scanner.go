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
	"bytes"
	"errors"
	"fmt"
)

// Scanner scans the word record stream from start to end. Records are framed
// by the prefix offset map rather than delimiters: scanning walks prefix
// buckets in order and decodes records until each bucket's end offset is
// reached.
//
// Instructions can splice leading characters of the previously decoded word
// into the current one, so the previous headword is threaded through the
// scanner from entry to entry. Scanning is strictly sequential.
type Scanner struct {
	t *TRK

	// prefix is the current prefix index into the offset map.
	prefix int

	// pos is the absolute position of the next record.
	pos int

	// prev is the previously assembled headword with its prefix stripped.
	prev string

	entry *Entry
	err   error
	warns []error
}

// NewScanner returns a Scanner positioned at the first record.
func NewScanner(t *TRK) *Scanner {
	return &Scanner{
		t:   t,
		pos: t.base,
	}
}

// Scan advances to the next entry. It returns false when the scan stops,
// either by reaching the end of the word stream or on a fatal error.
// Entries whose text cannot be decoded are skipped with a diagnostic;
// record framing does not depend on decode success.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for {
		// Skip prefixes whose bucket is exhausted. Unused prefixes repeat
		// the previous cumulative offset.
		for s.prefix < prefixCount && s.pos >= s.t.base+int(s.t.offsets[s.prefix]) {
			s.prefix++
		}
		if s.prefix >= prefixCount {
			return false
		}

		data := s.t.data
		pos := s.pos

		instruction := data[pos]
		recordStart := pos
		pos++

		// Instructions 0x80 and above carry a suffix table index parameter.
		suffixIndex := 0
		if instruction >= 0x80 {
			if pos >= len(data) {
				s.err = fmt.Errorf("%w: suffix parameter at offset %d exceeds container size %d",
					ErrMalformed, pos, len(data))
				return false
			}
			suffixIndex = int(data[pos])
			pos++
		}

		term := bytes.IndexByte(data[pos:], morphemeTerm)
		if term < 0 {
			s.err = fmt.Errorf("%w: unterminated morpheme at offset %d", ErrMalformed, pos)
			return false
		}
		morpheme, decodeErr := s.t.decodeMorpheme(data[pos:pos+term], pos)
		pos += term + 1

		if pos+offsetWidth > len(data) {
			s.err = fmt.Errorf("%w: translation offset at offset %d exceeds container size %d",
				ErrMalformed, pos, len(data))
			return false
		}
		// Translation offsets are middle-endian: the high byte comes first,
		// followed by the low 16 bits in little-endian order.
		trOffset := uint32(data[pos+1]) | uint32(data[pos+2])<<8 | uint32(data[pos])<<16
		pos += offsetWidth

		// The record is fully framed now, so a decode failure skips just
		// this entry.
		if decodeErr != nil {
			s.warns = append(s.warns, fmt.Errorf("record at offset %d: %w", recordStart, decodeErr))
			s.pos = pos
			continue
		}

		headword, err := Expand(s.prefix, morpheme, s.prev, instruction, suffixIndex, s.t.opts.Suffixes)
		if err != nil {
			// Unrecognized instructions leave the morpheme untransformed;
			// record the diagnostic and keep going.
			s.warns = append(s.warns, fmt.Errorf("record at offset %d: %w", recordStart, err))
		}
		// The prefix is never spliced, only the word body.
		s.prev = headword[2:]

		translation, err := s.t.translation(trOffset)
		if err != nil {
			if errors.Is(err, ErrMalformed) {
				s.err = err
				return false
			}
			s.warns = append(s.warns, fmt.Errorf("record at offset %d: %w", recordStart, err))
			s.pos = pos
			continue
		}

		s.pos = pos
		s.entry = &Entry{
			Headword:    headword,
			Translation: translation,
		}
		return true
	}
}

// Entry returns the most recently scanned entry.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first fatal error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Warnings returns non-fatal diagnostics accumulated while scanning, such as
// unrecognized instruction bytes.
func (s *Scanner) Warnings() []error {
	return s.warns
}
