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

// Package tur implements reading the MTU.TUR Turkish dictionary container.
//
// The container consists of seven parts:
//  1. A 4-byte magic number followed by four 16-bit section length fields.
//  2. A 33-entry letter lookup table.
//  3. A 1025-entry two-letter prefix table holding cumulative offsets into
//     the suffix record section.
//  4. A stem record section (14 bytes per record).
//  5. A suffix record section (4 bytes per record) holding the instructions
//     that form each entry.
//  6. A suffix blob holding plain suffix text in the custom alphabet.
//  7. A modification record section governing capitalization and character
//     substitution.
//
// All text uses the container's custom alphabet, where 0x00 is 'a', 0x01 is
// 'b' and so on. Integers are little-endian.
package tur

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ekizer/go-mtudict/charset"
)

// Magic identifies an MTU.TUR container.
var Magic = []byte{0x4D, 0x47, 0x32, 0x1A}

const (
	letterCount = 32

	section1Count = letterCount + 1
	prefixSlots   = letterCount * letterCount
	section2Count = prefixSlots + 1

	stemRecordSize = 14
	recordSize     = 4
	modRecordSize  = 4
)

// ErrMalformed indicates a magic or header mismatch, or a declared section
// that would read past the end of the container.
var ErrMalformed = errors.New("malformed container")

// Entry is a decoded dictionary entry. The Turkish container backs a
// suffix-synonym feature, so entries carry no translation.
type Entry struct {
	Headword string
}

// Record is a 4-byte suffix record. Mod indexes the modification record
// table. Form selects the suffix length and reorder transform. Arg holds
// either two direct alphabet letters or a little-endian offset into the
// suffix blob, depending on the derived length.
type Record struct {
	Mod  byte
	Form byte
	Arg  [2]byte
}

// ModRecord is a 4-byte modification record. Only a subset of its byte
// values have confirmed semantics; see the rule tables in rules.go.
type ModRecord [4]byte

// Options are options for reading a container.
type Options struct {
	// Alphabet is the byte-to-rune table for all text in the container.
	Alphabet *charset.Alphabet
}

// DefaultOptions is the default options for a TUR.
var DefaultOptions = &Options{
	Alphabet: charset.Turkish,
}

// TUR is an MTU.TUR container.
type TUR struct {
	// header holds the four section length fields: suffix record count,
	// stem record count, suffix blob size and modification record count.
	header [4]uint16

	letters       []uint16
	prefixOffsets []uint16
	stemLinks     []uint16
	records       []Record
	blob          []byte
	mods          []ModRecord

	alphabet *charset.Alphabet
}

// Sniff reports whether the data looks like an MTU.TUR container.
func Sniff(data []byte) bool {
	return bytes.HasPrefix(data, Magic)
}

// New parses the container sections from data.
func New(data []byte, opts *Options) (*TUR, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	alphabet := opts.Alphabet
	if alphabet == nil {
		alphabet = DefaultOptions.Alphabet
	}

	if !bytes.HasPrefix(data, Magic) {
		return nil, fmt.Errorf("%w: bad magic number at offset 0", ErrMalformed)
	}

	t := &TUR{
		alphabet: alphabet,
	}

	pos := len(Magic)
	for i := range t.header {
		v, err := readUint16(data, pos)
		if err != nil {
			return nil, err
		}
		t.header[i] = v
		pos += 2
	}

	// Letter lookup table. The final value matches the stem record count.
	for i := 0; i < section1Count; i++ {
		v, err := readUint16(data, pos)
		if err != nil {
			return nil, err
		}
		t.letters = append(t.letters, v)
		pos += 2
	}

	// Prefix table. Values are cumulative offsets into the suffix record
	// section; a prefix with no entries repeats the previous offset.
	prev := uint16(0)
	for i := 0; i < section2Count; i++ {
		v, err := readUint16(data, pos)
		if err != nil {
			return nil, err
		}
		if v < prev {
			return nil, fmt.Errorf("%w: prefix table not increasing at offset %d", ErrMalformed, pos)
		}
		if v > t.header[0] {
			return nil, fmt.Errorf("%w: prefix offset %d at offset %d exceeds record count %d",
				ErrMalformed, v, pos, t.header[0])
		}
		t.prefixOffsets = append(t.prefixOffsets, v)
		prev = v
		pos += 2
	}

	// Stem records. Bytes 1-2 link a stem to its suffix data; the remaining
	// bytes are unresolved and skipped.
	for i := 0; i < int(t.header[1]); i++ {
		v, err := readUint16(data, pos+1)
		if err != nil {
			return nil, err
		}
		t.stemLinks = append(t.stemLinks, v)
		pos += stemRecordSize
	}

	// Suffix records.
	for i := 0; i < int(t.header[0]); i++ {
		if pos+recordSize > len(data) {
			return nil, sizeErr(data, pos, recordSize)
		}
		t.records = append(t.records, Record{
			Mod:  data[pos],
			Form: data[pos+1],
			Arg:  [2]byte{data[pos+2], data[pos+3]},
		})
		pos += recordSize
	}

	// Suffix blob.
	if pos+int(t.header[2]) > len(data) {
		return nil, sizeErr(data, pos, int(t.header[2]))
	}
	t.blob = data[pos : pos+int(t.header[2])]
	pos += int(t.header[2])

	// Modification records.
	for i := 0; i < int(t.header[3]); i++ {
		if pos+modRecordSize > len(data) {
			return nil, sizeErr(data, pos, modRecordSize)
		}
		t.mods = append(t.mods, ModRecord{data[pos], data[pos+1], data[pos+2], data[pos+3]})
		pos += modRecordSize
	}

	return t, nil
}

// EntryCount returns the number of suffix records in the container.
func (t *TUR) EntryCount() int {
	return int(t.header[0])
}

// LetterOffsets returns the letter lookup table. Its per-entry semantics are
// unresolved; it is exposed for analysis only.
func (t *TUR) LetterOffsets() []uint16 {
	return t.letters
}

// StemLinks returns the link fields of the stem records. Disrupting these
// in the original container detaches suffixes from their stems in the
// bilingual views, but how they do so is unresolved.
func (t *TUR) StemLinks() []uint16 {
	return t.stemLinks
}

// PrefixCount returns the number of entries under the given prefix index.
func (t *TUR) PrefixCount(prefixIndex int) int {
	return int(t.prefixOffsets[prefixIndex+1] - t.prefixOffsets[prefixIndex])
}

// prefixFor derives the two-letter prefix for a prefix index over the
// 32-letter alphabet.
func (t *TUR) prefixFor(prefixIndex int) (string, error) {
	hi, err := t.alphabet.Rune(byte(prefixIndex / letterCount))
	if err != nil {
		return "", err
	}
	lo, err := t.alphabet.Rune(byte(prefixIndex % letterCount))
	if err != nil {
		return "", err
	}
	return string(hi) + string(lo), nil
}

// Entries decodes all entries in container-native (prefix-then-occurrence)
// order. Entries whose suffix data has no mapping in the alphabet are
// skipped and reported; an error wrapping ErrMalformed is fatal and ends the
// returned entry list early.
func (t *TUR) Entries() ([]*Entry, []error) {
	var entries []*Entry
	var errs []error

	for p := 0; p < prefixSlots; p++ {
		count := t.PrefixCount(p)
		if count == 0 {
			continue
		}
		prefix, err := t.prefixFor(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("prefix %d: %w", p, err))
			continue
		}

		for i := int(t.prefixOffsets[p]); i < int(t.prefixOffsets[p+1]); i++ {
			rec := t.records[i]

			suffix, err := ResolveSuffix(rec, t.blob, t.alphabet)
			if err != nil {
				if errors.Is(err, ErrMalformed) {
					return entries, append(errs, fmt.Errorf("record %d: %w", i, err))
				}
				errs = append(errs, fmt.Errorf("record %d: %w", i, err))
				continue
			}

			if int(rec.Mod) >= len(t.mods) {
				return entries, append(errs, fmt.Errorf(
					"%w: record %d references modification record %d of %d",
					ErrMalformed, i, rec.Mod, len(t.mods)))
			}
			head, suffix := applyModifications(t.mods[rec.Mod], prefix, suffix)
			suffix = Devoice(suffix)

			entries = append(entries, &Entry{Headword: head + suffix})
		}
	}

	return entries, errs
}

func readUint16(data []byte, pos int) (uint16, error) {
	if pos < 0 || pos+2 > len(data) {
		return 0, sizeErr(data, pos, 2)
	}
	return binary.LittleEndian.Uint16(data[pos : pos+2]), nil
}

func sizeErr(data []byte, pos, n int) error {
	return fmt.Errorf("%w: %d bytes at offset %d exceed container size %d",
		ErrMalformed, n, pos, len(data))
}
