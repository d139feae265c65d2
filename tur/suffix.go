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

package tur

import (
	"encoding/binary"
	"fmt"

	"github.com/ekizer/go-mtudict/charset"
)

// reorderBase is the form byte value above which suffixes are stored
// reordered and must be transformed back.
const reorderBase = 0xB8

// SuffixLength derives a suffix's length from a record's form byte. Form
// bytes below 0xB8 encode lengths 0 through 22 in steps of 8; form bytes
// from 0xB8 up encode lengths 3 through 5 in steps of 0x18, with the
// remainder selecting a reorder transform.
func SuffixLength(form byte) int {
	if form < reorderBase {
		return int(form) / 8
	}
	return 3 + int(form-reorderBase)/0x18
}

// ResolveSuffix derives a record's suffix text. One- and two-letter suffixes
// are formed directly from the record's argument bytes via the alphabet;
// longer suffixes are read from the shared suffix blob at the little-endian
// offset held in the argument bytes. The suffix is then reordered according
// to the form byte.
//
// A zero-length suffix yields the empty string. The argument bytes of such
// records hold data whose purpose is unresolved; they are passed over
// without interpretation.
//
// ResolveSuffix is a pure function of its inputs.
func ResolveSuffix(rec Record, blob []byte, alphabet *charset.Alphabet) (string, error) {
	n := SuffixLength(rec.Form)

	var suffix string
	switch {
	case n == 0:
		return "", nil
	case n <= 2:
		s, err := alphabet.Decode(rec.Arg[:n])
		if err != nil {
			return "", err
		}
		suffix = s
	default:
		off := int(binary.LittleEndian.Uint16(rec.Arg[:]))
		if off+n > len(blob) {
			return "", fmt.Errorf("%w: suffix of %d bytes at blob offset %d exceeds blob size %d",
				ErrMalformed, n, off, len(blob))
		}
		s, err := alphabet.Decode(blob[off : off+n])
		if err != nil {
			return "", fmt.Errorf("blob offset %d: %w", off, err)
		}
		suffix = s
	}

	return Reorder(suffix, rec.Form), nil
}

// Reorder applies the reorder transform selected by the form byte: the
// remainder of (form - 0xB8) over 0x18 buckets into rotate-right-by-one,
// rotate-left-by-one and full reversal. Form bytes below 0xB8 select the
// identity transform.
func Reorder(suffix string, form byte) string {
	if form < reorderBase || suffix == "" {
		return suffix
	}

	r := []rune(suffix)
	switch sel := (form - reorderBase) % 0x18; {
	case sel < 0x08:
		// 'abcd' -> 'dabc'
		r = append([]rune{r[len(r)-1]}, r[:len(r)-1]...)
	case sel < 0x10:
		// 'abcd' -> 'bcda'
		r = append(r[1:], r[0])
	default:
		// 'abcd' -> 'dcba'
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
	}
	return string(r)
}
