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

package trk_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"

	"github.com/ekizer/go-mtudict/internal/testutil"
	"github.com/ekizer/go-mtudict/trk"
)

// TestNew tests structural validation of the offset map.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()

		_, err := trk.New(make([]byte, 100), nil)
		if got, want := err, trk.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})

	t.Run("offset past end", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTRK(t, []testutil.TRKEntry{
			{Prefix: "ab", Instruction: 0x00, Morpheme: "le"},
		})
		// Point the last prefix offset past the end of the container.
		b[3+675*3] = 0xFF
		b[3+675*3+1] = 0xFF
		b[3+675*3+2] = 0xFF
		_, err := trk.New(b, nil)
		if got, want := err, trk.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})

	t.Run("decreasing offsets", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTRK(t, []testutil.TRKEntry{
			{Prefix: "aa", Instruction: 0x00, Morpheme: "rdvark"},
		})
		// The first offset covers the record; rewind the second below it.
		copy(b[6:9], []byte{0x00, 0x00, 0x00})
		_, err := trk.New(b, nil)
		if got, want := err, trk.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})
}

// TestTRK_Entries tests decoding entries end to end.
func TestTRK_Entries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []testutil.TRKEntry

		expected  []*trk.Entry
		wantWarns int
	}{
		{
			name: "single entry no translation",
			entries: []testutil.TRKEntry{
				{Prefix: "ab", Instruction: 0x00, Morpheme: "le"},
			},

			expected: []*trk.Entry{
				{Headword: "able"},
			},
		},
		{
			name: "translation with separator and backtick",
			entries: []testutil.TRKEntry{
				{
					Prefix:      "ke",
					Instruction: 0x00,
					Morpheme:    "nnel",
					Translation: []byte{'k', 0x94, 'p', 'e', 'k', ' ', 'e', 'v', 'i', 0xFF, 'k', 'u', 'l', 0x81, 'b', 'e'},
				},
			},

			expected: []*trk.Entry{
				{Headword: "kennel", Translation: "köpek evi#kulübe"},
			},
		},
		{
			name: "corrupted translation",
			entries: []testutil.TRKEntry{
				{Prefix: "ae", Instruction: 0x00, Morpheme: "ze", CorruptTranslation: true},
			},

			expected: []*trk.Entry{
				{Headword: "aeze"},
			},
		},
		{
			name: "previous word splice within bucket",
			entries: []testutil.TRKEntry{
				{Prefix: "ca", Instruction: 0x00, Morpheme: "thood"},
				{Prefix: "ca", Instruction: 0x43, Morpheme: "ness"},
			},

			expected: []*trk.Entry{
				{Headword: "cathood"},
				{Headword: "cathoness"},
			},
		},
		{
			name: "previous word crosses prefix boundary",
			entries: []testutil.TRKEntry{
				{Prefix: "aa", Instruction: 0x00, Morpheme: "rgh"},
				{Prefix: "ab", Instruction: 0x42, Morpheme: "acus"},
			},

			expected: []*trk.Entry{
				{Headword: "aargh"},
				{Headword: "abrgacus"},
			},
		},
		{
			name: "fixed suffix",
			entries: []testutil.TRKEntry{
				{Prefix: "ab", Instruction: 0x80, SuffixIndex: 0, Morpheme: ""},
			},

			expected: []*trk.Entry{
				{Headword: "abability"},
			},
		},
		{
			name: "capitalized entry",
			entries: []testutil.TRKEntry{
				{Prefix: "an", Instruction: 0x20, Morpheme: "kara"},
			},

			expected: []*trk.Entry{
				{Headword: "Ankara"},
			},
		},
		{
			name: "unknown instruction continues",
			entries: []testutil.TRKEntry{
				{Prefix: "ab", Instruction: 0x33, Morpheme: "le"},
				{Prefix: "ab", Instruction: 0x00, Morpheme: "oard"},
			},

			expected: []*trk.Entry{
				{Headword: "able"},
				{Headword: "aboard"},
			},
			wantWarns: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := trk.New(testutil.MakeTRK(t, tc.entries), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			entries, errs := c.Entries()
			if got, want := len(errs), tc.wantWarns; got != want {
				t.Fatalf("unexpected errors: got: %v, want: %d", errs, want)
			}
			if diff := cmp.Diff(tc.expected, entries); diff != "" {
				t.Errorf("unexpected entries (-want +got):\n%s", diff)
			}
		})
	}
}

// TestTRK_Entries_count verifies that the number of decoded entries matches
// the per-prefix counts implied by the offset map.
func TestTRK_Entries_count(t *testing.T) {
	t.Parallel()

	var specs []testutil.TRKEntry
	for _, prefix := range []string{"aa", "ab", "ba", "zz"} {
		specs = append(specs,
			testutil.TRKEntry{Prefix: prefix, Instruction: 0x00, Morpheme: "one"},
			testutil.TRKEntry{Prefix: prefix, Instruction: 0x00, Morpheme: "two"},
		)
	}

	c, err := trk.New(testutil.MakeTRK(t, specs), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, errs := c.Entries()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, want := len(entries), len(specs); got != want {
		t.Errorf("unexpected entry count: got: %d, want: %d", got, want)
	}
}

// TestScanner_malformed tests fatal scan errors.
func TestScanner_malformed(t *testing.T) {
	t.Parallel()

	t.Run("unterminated morpheme", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTRK(t, []testutil.TRKEntry{
			{Prefix: "ab", Instruction: 0x00, Morpheme: "le"},
		})
		// Overwrite the morpheme terminator. No other 0xFF byte follows.
		b[3+676*3+3] = 'x'

		c, err := trk.New(b, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := trk.NewScanner(c)
		for s.Scan() {
		}
		if got, want := s.Err(), trk.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})
}

// badByteDecoder copies its input but fails on one byte value.
type badByteDecoder struct {
	transform.NopResetter
	bad byte
}

func (d badByteDecoder) Transform(dst, src []byte, _ bool) (int, int, error) {
	var nSrc, nDst int
	for _, c := range src {
		if c == d.bad {
			return nDst, nSrc, errNoMapping
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

var errNoMapping = errors.New("no mapping for byte")

// TestTRK_Entries_decodeError verifies that a text decode failure skips only
// the affected entry; well-formed entries around it still decode.
func TestTRK_Entries_decodeError(t *testing.T) {
	t.Parallel()

	t.Run("morpheme", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTRK(t, []testutil.TRKEntry{
			{Prefix: "ab", Instruction: 0x00, Morpheme: "le"},
			{Prefix: "ab", Instruction: 0x00, Morpheme: "qle"},
			{Prefix: "ac", Instruction: 0x00, Morpheme: "e"},
		})

		c, err := trk.New(b, &trk.Options{
			NewDecoder: func() transform.Transformer {
				return badByteDecoder{bad: 'q'}
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, errs := c.Entries()
		expected := []*trk.Entry{
			{Headword: "able"},
			{Headword: "ace"},
		}
		if diff := cmp.Diff(expected, entries); diff != "" {
			t.Errorf("unexpected entries (-want +got):\n%s", diff)
		}
		if got, want := len(errs), 1; got != want {
			t.Fatalf("unexpected error count: got: %d, want: %d", got, want)
		}
		if got, want := errs[0], errNoMapping; !errors.Is(got, want) {
			t.Errorf("unexpected error: got: %v, want: %v", got, want)
		}
	})

	t.Run("translation", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTRK(t, []testutil.TRKEntry{
			{Prefix: "ab", Instruction: 0x00, Morpheme: "le", Translation: []byte("qabil")},
			{Prefix: "ac", Instruction: 0x00, Morpheme: "e", Translation: []byte("as")},
		})

		c, err := trk.New(b, &trk.Options{
			NewTranslationDecoder: func() transform.Transformer {
				return badByteDecoder{bad: 'q'}
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, errs := c.Entries()
		expected := []*trk.Entry{
			{Headword: "ace", Translation: "as"},
		}
		if diff := cmp.Diff(expected, entries); diff != "" {
			t.Errorf("unexpected entries (-want +got):\n%s", diff)
		}
		if got, want := len(errs), 1; got != want {
			t.Fatalf("unexpected error count: got: %d, want: %d", got, want)
		}
		if got, want := errs[0], errNoMapping; !errors.Is(got, want) {
			t.Errorf("unexpected error: got: %v, want: %v", got, want)
		}
	})
}
