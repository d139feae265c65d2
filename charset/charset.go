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

// Package charset implements the character encodings used by the MTU
// dictionary containers.
//
// The English-Turkish container (MTU.TRK) stores all text in code page 857.
// The Turkish container (MTU.TUR) uses its own alphabet where 0x00 is 'a',
// 0x01 is 'b' and so on. Both are supplied as lookup configuration so that
// the decoding logic never depends on a particular table.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ErrInvalidByte indicates that a byte has no mapping in the active alphabet.
var ErrInvalidByte = errors.New("no mapping for byte")

// Alphabet maps single bytes to runes. Unmapped slots are represented by '.'
// in the table string passed to NewAlphabet.
type Alphabet struct {
	runes []rune
}

// NewAlphabet returns an Alphabet for the given table string. The byte value
// b maps to the b'th rune of the table. A '.' marks an unmapped slot.
func NewAlphabet(table string) *Alphabet {
	a := &Alphabet{}
	for _, r := range table {
		if r == '.' {
			r = 0
		}
		a.runes = append(a.runes, r)
	}
	return a
}

// Turkish is the custom alphabet used by the MTU.TUR container. The first 32
// slots cover the combined English and Turkish letters; the circumflexed
// vowels â, î and û sit in otherwise unmapped space above them.
var Turkish = NewAlphabet("abcçdefgğhıijklmnoöpqrsştuüvwxyzâ..........î..............û")

// Len returns the number of slots in the alphabet, mapped or not.
func (a *Alphabet) Len() int {
	return len(a.runes)
}

// Rune returns the rune for the given byte value.
func (a *Alphabet) Rune(b byte) (rune, error) {
	if int(b) >= len(a.runes) || a.runes[b] == 0 {
		return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidByte, b)
	}
	return a.runes[b], nil
}

// Decode decodes a byte string via the alphabet. Decoding fails on the first
// unmapped byte and reports its index within b.
func (a *Alphabet) Decode(b []byte) (string, error) {
	var sb strings.Builder
	for i, c := range b {
		r, err := a.Rune(c)
		if err != nil {
			return "", fmt.Errorf("%w at index %d", err, i)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// cp857 maps byte values 0x80-0xFF of code page 857 (IBM Turkish) to runes.
// Byte values below 0x80 are ASCII. The three slots the code page leaves
// undefined (0xD5, 0xE7, 0xF2) decode to U+FFFD.
var cp857 = [128]rune{
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', // 0x80
	'ê', 'ë', 'è', 'ï', 'î', 'ı', 'Ä', 'Å', // 0x88
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', // 0x90
	'İ', 'Ö', 'Ü', 'ø', '£', 'Ø', 'Ş', 'ş', // 0x98
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'Ğ', 'ğ', // 0xA0
	'¿', '®', '¬', '½', '¼', '¡', '«', '»', // 0xA8
	'░', '▒', '▓', '│', '┤', 'Á', 'Â', 'À', // 0xB0
	'©', '╣', '║', '╗', '╝', '¢', '¥', '┐', // 0xB8
	'└', '┴', '┬', '├', '─', '┼', 'ã', 'Ã', // 0xC0
	'╚', '╔', '╩', '╦', '╠', '═', '╬', '¤', // 0xC8
	'º', 'ª', 'Ê', 'Ë', 'È', '�', 'Í', 'Î', // 0xD0
	'Ï', '┘', '┌', '█', '▄', '¦', 'Ì', '▀', // 0xD8
	'Ó', 'ß', 'Ô', 'Ò', 'õ', 'Õ', 'µ', '�', // 0xE0
	'×', 'Ú', 'Û', 'Ù', 'ì', 'ÿ', '¯', '´', // 0xE8
	'­', '±', '�', '¾', '¶', '§', '÷', '¸', // 0xF0
	'°', '¨', '·', '¹', '³', '²', '■', ' ', // 0xF8
}

// codePageDecoder decodes code page 857 bytes to UTF-8.
type codePageDecoder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (codePageDecoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for _, c := range src {
		r := rune(c)
		if c >= 0x80 {
			r = cp857[c-0x80]
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

// NewCodePageDecoder returns a transformer decoding code page 857 text. Every
// byte value decodes to a rune so the transform cannot fail.
func NewCodePageDecoder() transform.Transformer {
	return codePageDecoder{}
}

// NewTranslationDecoder returns a transformer decoding the translation fields
// of the English-Turkish container. On top of the code page it replaces
// backticks with apostrophes and the sense separator (0xFF in code page 857,
// U+00A0 after decoding) with '#'.
func NewTranslationDecoder() transform.Transformer {
	return transform.Chain(
		codePageDecoder{},
		runes.Map(func(r rune) rune {
			switch r {
			case '`':
				return '\''
			case '\u00a0':
				return '#'
			}
			return r
		}),
	)
}
