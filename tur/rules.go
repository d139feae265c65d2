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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// turkishUpper uppercases with Turkish casing rules (i to İ, ı to I).
var turkishUpper = cases.Upper(language.Turkish)

// Effect is the confirmed effect of a modification record byte value.
// Capitalize title-cases the first letter of the assembled headword. Final
// rewrites the suffix's final rune.
//
// Modification records are only partially reverse-engineered. Byte values
// without an entry in the rule tables below have unresolved semantics and
// are treated as a no-op rather than guessed at; the tables can be extended
// as further values are confirmed without touching the decode logic.
type Effect struct {
	Capitalize bool
	Final      map[rune]rune
}

// headEffects maps confirmed values of a modification record's first byte to
// their effect.
var headEffects = map[byte]Effect{
	0x0F: {Capitalize: true},
	0x80: {Final: map[rune]rune{'ğ': 'k'}},
}

// tailEffects maps confirmed values of a modification record's second byte
// to their effect.
var tailEffects = map[byte]Effect{
	0x41: {Capitalize: true},
	0x59: {Capitalize: true},
}

// devoiced maps voiced trailing consonants to their voiceless counterparts.
// Turkish devoices these at a morpheme boundary (b/p, c/ç, d/t, g/k, ğ/k).
var devoiced = map[rune]rune{
	'b': 'p',
	'c': 'ç',
	'd': 't',
	'g': 'k',
	'ğ': 'k',
}

// Devoice replaces a voiced trailing consonant of the suffix with its
// voiceless counterpart.
func Devoice(suffix string) string {
	r := []rune(suffix)
	if len(r) == 0 {
		return suffix
	}
	if c, ok := devoiced[r[len(r)-1]]; ok {
		r[len(r)-1] = c
	}
	return string(r)
}

// replaceFinal rewrites the suffix's final rune according to the effect's
// substitution table.
func replaceFinal(suffix string, final map[rune]rune) string {
	r := []rune(suffix)
	if len(r) == 0 {
		return suffix
	}
	if c, ok := final[r[len(r)-1]]; ok {
		r[len(r)-1] = c
	}
	return string(r)
}

// applyModifications applies the confirmed effects of a modification record
// to an assembled prefix and suffix.
func applyModifications(mod ModRecord, prefix, suffix string) (string, string) {
	capital := false
	for _, e := range []Effect{headEffects[mod[0]], tailEffects[mod[1]]} {
		if e.Capitalize {
			capital = true
		}
		if e.Final != nil {
			suffix = replaceFinal(suffix, e.Final)
		}
	}

	if capital && prefix != "" {
		r := []rune(prefix)
		first := turkishUpper.String(string(r[0]))
		prefix = first + string(r[1:])
	}
	return prefix, suffix
}
