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

// Package folding implements text folding for headword search.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Folder folds text for search comparison. It lowercases using Turkish
// casing rules (I folds to ı, İ to i), removes spaces from the beginning and
// end of the input, and replaces internal whitespace spans with a single
// ASCII space.
type Folder struct {
	// notStart is true after encountering the first non-whitespace rune.
	notStart bool

	// wsSpan is true while handling a whitespace span.
	wsSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (f *Folder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if !f.notStart {
				// Ignore leading whitespace.
				continue
			}
			f.wsSpan = true
			continue
		}

		if f.wsSpan {
			// Emit a single space when leaving an internal whitespace span.
			// Trailing whitespace is never emitted.
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			f.wsSpan = false
		}
		f.notStart = true
		nSrc += size

		c = unicode.TurkishCase.ToLower(c)

		// c could be utf8.RuneError, whose encoded length is 3 regardless of
		// size.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *Folder) Reset() {
	*f = Folder{}
}
