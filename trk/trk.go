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

// Package trk implements reading the MTU.TRK English-Turkish dictionary
// container.
//
// The container consists of four parts:
//  1. An empty 3-byte header.
//  2. An offset map with one 3-byte offset per two-letter prefix (aa-zz).
//  3. A stream of English word records interpreted by instruction bytes.
//  4. A region of Turkish translations addressed by 3-byte middle-endian
//     offsets relative to the end of the offset map.
package trk

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/transform"

	"github.com/ekizer/go-mtudict/charset"
)

const (
	headerSize  = 3
	prefixCount = 26 * 26
	offsetWidth = 3

	offsetMapSize = prefixCount * offsetWidth

	// morphemeTerm terminates each English morpheme in the word stream.
	morphemeTerm = 0xFF
)

// ErrMalformed indicates that a declared section would read past the end of
// the container.
var ErrMalformed = errors.New("malformed container")

// Entry is a decoded dictionary entry. Translation is empty for the small
// fixed set of entries whose translation data is corrupted in the original
// container.
type Entry struct {
	Headword    string
	Translation string
}

// Options are options for reading a container.
type Options struct {
	// Suffixes is the fixed suffix table referenced by instruction bytes
	// 0x80 and above.
	Suffixes []string

	// NewDecoder returns a transformer decoding morpheme text.
	NewDecoder func() transform.Transformer

	// NewTranslationDecoder returns a transformer decoding translation text.
	NewTranslationDecoder func() transform.Transformer
}

// DefaultOptions is the default options for a TRK.
var DefaultOptions = &Options{
	Suffixes:              Suffixes,
	NewDecoder:            charset.NewCodePageDecoder,
	NewTranslationDecoder: charset.NewTranslationDecoder,
}

// TRK is an MTU.TRK container.
type TRK struct {
	data []byte

	// offsets holds the cumulative end offset of each prefix bucket's word
	// records, relative to base.
	offsets []uint32

	// base is the position of the first word record. Translation offsets are
	// relative to it as well.
	base int

	opts *Options
}

// Sniff reports whether the data looks like an MTU.TRK container.
func Sniff(data []byte) bool {
	return len(data) >= headerSize+offsetMapSize &&
		data[0] == 0 && data[1] == 0 && data[2] == 0
}

// New parses the container's offset map and returns a TRK reading from data.
func New(data []byte, opts *Options) (*TRK, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	o := *opts
	if o.Suffixes == nil {
		o.Suffixes = DefaultOptions.Suffixes
	}
	if o.NewDecoder == nil {
		o.NewDecoder = DefaultOptions.NewDecoder
	}
	if o.NewTranslationDecoder == nil {
		o.NewTranslationDecoder = DefaultOptions.NewTranslationDecoder
	}

	if len(data) < headerSize+offsetMapSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d for the offset map",
			ErrMalformed, len(data), headerSize+offsetMapSize)
	}

	t := &TRK{
		data: data,
		base: headerSize + offsetMapSize,
		opts: &o,
	}

	pos := headerSize
	prev := uint32(0)
	for i := 0; i < prefixCount; i++ {
		off := uint32(data[pos]) | uint32(data[pos+1])<<8 | uint32(data[pos+2])<<16
		if off < prev {
			return nil, fmt.Errorf("%w: offset map not increasing at offset %d", ErrMalformed, pos)
		}
		if t.base+int(off) > len(data) {
			return nil, fmt.Errorf("%w: prefix offset %d at offset %d exceeds container size %d",
				ErrMalformed, off, pos, len(data))
		}
		t.offsets = append(t.offsets, off)
		prev = off
		pos += offsetWidth
	}

	return t, nil
}

// Entries decodes all entries in container-native order. Decoding continues
// past per-entry problems such as unrecognized instruction bytes or text
// that fails to decode; those are accumulated and returned alongside the
// entries. An error wrapping ErrMalformed is fatal and ends the returned
// entry list early.
func (t *TRK) Entries() ([]*Entry, []error) {
	var entries []*Entry
	s := NewScanner(t)
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	errs := s.Warnings()
	if err := s.Err(); err != nil {
		errs = append(errs, err)
	}
	return entries, errs
}

// translation resolves a translation region offset into decoded text. An
// offset of zero, or a stored length of zero, yields an empty translation.
// The original container has 14 such corrupted entries and the original
// application displays them as garbage; they are not an error.
func (t *TRK) translation(off uint32) (string, error) {
	if off == 0 {
		return "", nil
	}
	pos := t.base + int(off)
	if pos+2 > len(t.data) {
		return "", fmt.Errorf("%w: translation length at offset %d exceeds container size %d",
			ErrMalformed, pos, len(t.data))
	}
	n := int(binary.LittleEndian.Uint16(t.data[pos : pos+2]))
	pos += 2
	if n == 0 {
		return "", nil
	}
	if pos+n > len(t.data) {
		return "", fmt.Errorf("%w: translation of %d bytes at offset %d exceeds container size %d",
			ErrMalformed, n, pos, len(t.data))
	}

	b, _, err := transform.Bytes(t.opts.NewTranslationDecoder(), t.data[pos:pos+n])
	if err != nil {
		return "", fmt.Errorf("decoding translation at offset %d: %w", pos, err)
	}
	return string(b), nil
}

// decodeMorpheme decodes a raw morpheme via the configured text decoder.
func (t *TRK) decodeMorpheme(raw []byte, pos int) (string, error) {
	b, _, err := transform.Bytes(t.opts.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decoding morpheme at offset %d: %w", pos, err)
	}
	return string(b), nil
}
