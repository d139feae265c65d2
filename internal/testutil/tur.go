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

package testutil

import (
	"encoding/binary"
	"testing"
)

const (
	turLetterCount    = 32
	turPrefixSlots    = turLetterCount * turLetterCount
	turStemRecordSize = 14
)

// TUREntry describes one suffix record of a synthetic MTU.TUR container.
type TUREntry struct {
	// PrefixIndex is the two-letter prefix slot (0-1023) the record is
	// bucketed under.
	PrefixIndex int

	// Record is the raw 4-byte suffix record.
	Record [4]byte
}

// TUROptions are optional sections of a synthetic MTU.TUR container.
type TUROptions struct {
	// Blob is the suffix blob.
	Blob []byte

	// Mods are the modification records. A single all-zero record is always
	// present at index 0 when none are given.
	Mods [][4]byte

	// Stems is the number of zero-filled stem records to include.
	Stems int
}

// MakeTUR builds a synthetic MTU.TUR container. Entries are bucketed by
// prefix index in the given relative order.
func MakeTUR(t *testing.T, entries []TUREntry, opts *TUROptions) []byte {
	t.Helper()
	if opts == nil {
		opts = &TUROptions{}
	}
	mods := opts.Mods
	if len(mods) == 0 {
		mods = [][4]byte{{}}
	}

	buckets := make([][]TUREntry, turPrefixSlots)
	for _, e := range entries {
		if e.PrefixIndex < 0 || e.PrefixIndex >= turPrefixSlots {
			t.Fatalf("bad prefix index: %d", e.PrefixIndex)
		}
		buckets[e.PrefixIndex] = append(buckets[e.PrefixIndex], e)
	}

	b := []byte{0x4D, 0x47, 0x32, 0x1A}
	b = appendUint16(b, uint16(len(entries)))
	b = appendUint16(b, uint16(opts.Stems))
	b = appendUint16(b, uint16(len(opts.Blob)))
	b = appendUint16(b, uint16(len(mods)))

	// Letter lookup table. The final value mirrors the stem record count as
	// in the original container.
	for i := 0; i < turLetterCount; i++ {
		b = appendUint16(b, 0)
	}
	b = appendUint16(b, uint16(opts.Stems))

	// Prefix table: cumulative offsets into the suffix record section.
	off := uint16(0)
	b = appendUint16(b, 0)
	for _, bucket := range buckets {
		off += uint16(len(bucket))
		b = appendUint16(b, off)
	}

	for i := 0; i < opts.Stems; i++ {
		b = append(b, make([]byte, turStemRecordSize)...)
	}

	for _, bucket := range buckets {
		for _, e := range bucket {
			b = append(b, e.Record[:]...)
		}
	}

	b = append(b, opts.Blob...)

	for _, m := range mods {
		b = append(b, m[:]...)
	}

	return b
}

func appendUint16(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}
