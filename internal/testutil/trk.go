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

// Package testutil builds synthetic MTU containers for tests.
package testutil

import (
	"testing"
)

const (
	trkHeaderSize    = 3
	trkPrefixCount   = 26 * 26
	trkOffsetMapSize = trkPrefixCount * 3
)

// TRKEntry describes one record of a synthetic MTU.TRK container.
type TRKEntry struct {
	// Prefix is the record's two-letter prefix (aa-zz).
	Prefix string

	// Instruction is the record's instruction byte.
	Instruction byte

	// SuffixIndex is the suffix parameter, written only when Instruction has
	// its high bit set.
	SuffixIndex byte

	// Morpheme is the stored morpheme. Must be code page 857 compatible
	// ASCII for test purposes.
	Morpheme string

	// Translation is the raw translation text, or empty for a zero
	// translation offset.
	Translation []byte

	// CorruptTranslation stores a translation record with length zero.
	CorruptTranslation bool
}

func trkPrefixIndex(t *testing.T, prefix string) int {
	t.Helper()
	if len(prefix) != 2 || prefix[0] < 'a' || prefix[0] > 'z' || prefix[1] < 'a' || prefix[1] > 'z' {
		t.Fatalf("bad prefix: %q", prefix)
	}
	return int(prefix[0]-'a')*26 + int(prefix[1]-'a')
}

// MakeTRK builds a synthetic MTU.TRK container. Entries are grouped under
// their prefixes in the given relative order.
func MakeTRK(t *testing.T, entries []TRKEntry) []byte {
	t.Helper()

	buckets := make([][]TRKEntry, trkPrefixCount)
	for _, e := range entries {
		i := trkPrefixIndex(t, e.Prefix)
		buckets[i] = append(buckets[i], e)
	}

	// First pass: word stream length, so translation offsets can be
	// assigned. Records are instruction (+ suffix parameter), morpheme,
	// 0xFF terminator and a 3-byte translation offset.
	streamLen := 0
	for _, bucket := range buckets {
		for _, e := range bucket {
			streamLen++
			if e.Instruction >= 0x80 {
				streamLen++
			}
			streamLen += len(e.Morpheme) + 1 + 3
		}
	}

	var stream []byte
	var trRegion []byte
	var offsets []uint32

	end := uint32(0)
	for _, bucket := range buckets {
		for _, e := range bucket {
			stream = append(stream, e.Instruction)
			if e.Instruction >= 0x80 {
				stream = append(stream, e.SuffixIndex)
			}
			stream = append(stream, []byte(e.Morpheme)...)
			stream = append(stream, 0xFF)

			var trOffset uint32
			if len(e.Translation) > 0 || e.CorruptTranslation {
				trOffset = uint32(streamLen + len(trRegion))
				n := len(e.Translation)
				if e.CorruptTranslation {
					n = 0
				}
				trRegion = append(trRegion, byte(n), byte(n>>8))
				if n > 0 {
					trRegion = append(trRegion, e.Translation...)
				}
			}
			// Middle-endian: high byte first, then the low 16 bits
			// little-endian.
			stream = append(stream,
				byte(trOffset>>16),
				byte(trOffset),
				byte(trOffset>>8),
			)
		}
		end = uint32(len(stream))
		offsets = append(offsets, end)
	}

	b := make([]byte, trkHeaderSize, trkHeaderSize+trkOffsetMapSize+len(stream)+len(trRegion))
	for _, off := range offsets {
		b = append(b, byte(off), byte(off>>8), byte(off>>16))
	}
	b = append(b, stream...)
	b = append(b, trRegion...)
	return b
}
