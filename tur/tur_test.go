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

package tur_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ekizer/go-mtudict/internal/testutil"
	"github.com/ekizer/go-mtudict/tur"
)

// TestNew tests structural validation of the container sections.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("bad magic", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTUR(t, nil, nil)
		b[0] = 'X'
		_, err := tur.New(b, nil)
		if got, want := err, tur.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})

	t.Run("truncated header", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTUR(t, nil, nil)
		_, err := tur.New(b[:8], nil)
		if got, want := err, tur.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})

	t.Run("truncated records", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTUR(t, []testutil.TUREntry{
			{PrefixIndex: 0, Record: [4]byte{0x00, 0x08, 0x00, 0x00}},
		}, nil)
		_, err := tur.New(b[:len(b)-8], nil)
		if got, want := err, tur.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})

	t.Run("decreasing prefix table", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTUR(t, []testutil.TUREntry{
			{PrefixIndex: 0, Record: [4]byte{0x00, 0x08, 0x00, 0x00}},
		}, nil)
		// The prefix table starts after the magic, header and letter table.
		// Slot 0 holds 0; bump it above the following cumulative offsets.
		pos := 4 + 8 + 33*2
		copy(b[pos:pos+2], []byte{0x05, 0x00})
		_, err := tur.New(b, nil)
		if got, want := err, tur.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})

	t.Run("prefix offset above record count", func(t *testing.T) {
		t.Parallel()

		b := testutil.MakeTUR(t, []testutil.TUREntry{
			{PrefixIndex: 0, Record: [4]byte{0x00, 0x08, 0x00, 0x00}},
		}, nil)
		pos := 4 + 8 + 33*2 + 1024*2
		copy(b[pos:pos+2], []byte{0xFF, 0x00})
		_, err := tur.New(b, nil)
		if got, want := err, tur.ErrMalformed; !errors.Is(got, want) {
			t.Fatalf("unexpected error: got: %v, want: %v", got, want)
		}
	})
}

// TestTUR_Entries tests decoding entries end to end.
func TestTUR_Entries(t *testing.T) {
	t.Parallel()

	// Alphabet indices: a=0x00, b=0x01, d=0x04, e=0x05, i=0x0B, l=0x0E,
	// m=0x0F, r=0x15. Prefix index 0 is "aa", 1 is "ab", 11*32 is "ia".
	tests := []struct {
		name    string
		entries []testutil.TUREntry
		opts    *testutil.TUROptions

		expected []*tur.Entry
	}{
		{
			name: "empty suffix",
			entries: []testutil.TUREntry{
				{PrefixIndex: 0, Record: [4]byte{0x00, 0x00, 0xAA, 0xBB}},
			},

			expected: []*tur.Entry{
				{Headword: "aa"},
			},
		},
		{
			name: "direct letters",
			entries: []testutil.TUREntry{
				{PrefixIndex: 1, Record: [4]byte{0x00, 0x10, 0x0E, 0x05}},
			},

			expected: []*tur.Entry{
				{Headword: "able"},
			},
		},
		{
			name: "blob suffix",
			entries: []testutil.TUREntry{
				{PrefixIndex: 0, Record: [4]byte{0x00, 0x18, 0x00, 0x00}},
			},
			opts: &testutil.TUROptions{
				Blob: []byte{0x0E, 0x00, 0x15},
			},

			expected: []*tur.Entry{
				{Headword: "aalar"},
			},
		},
		{
			name: "devoiced trailing consonant",
			entries: []testutil.TUREntry{
				// Suffix "ad" devoices to "at".
				{PrefixIndex: 0, Record: [4]byte{0x00, 0x10, 0x00, 0x04}},
			},

			expected: []*tur.Entry{
				{Headword: "aaat"},
			},
		},
		{
			name: "capitalized by modification record",
			entries: []testutil.TUREntry{
				{PrefixIndex: 11 * 32, Record: [4]byte{0x01, 0x10, 0x0E, 0x05}},
			},
			opts: &testutil.TUROptions{
				Mods: [][4]byte{{}, {0x0F, 0x00, 0x00, 0x00}},
			},

			// Turkish casing: i title-cases to İ.
			expected: []*tur.Entry{
				{Headword: "İale"},
			},
		},
		{
			name: "prefix order preserved",
			entries: []testutil.TUREntry{
				{PrefixIndex: 6, Record: [4]byte{0x00, 0x08, 0x00, 0x00}},
				{PrefixIndex: 6, Record: [4]byte{0x00, 0x08, 0x01, 0x00}},
				{PrefixIndex: 2, Record: [4]byte{0x00, 0x08, 0x04, 0x00}},
			},

			expected: []*tur.Entry{
				{Headword: "act"},
				{Headword: "afa"},
				{Headword: "afp"},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := tur.New(testutil.MakeTUR(t, tc.entries, tc.opts), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			entries, errs := c.Entries()
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if diff := cmp.Diff(tc.expected, entries); diff != "" {
				t.Errorf("unexpected entries (-want +got):\n%s", diff)
			}
		})
	}
}

// TestTUR_Entries_count verifies that the decoded entry count matches the
// container's record count.
func TestTUR_Entries_count(t *testing.T) {
	t.Parallel()

	var specs []testutil.TUREntry
	for _, p := range []int{0, 3, 3, 100, 1023} {
		specs = append(specs, testutil.TUREntry{
			PrefixIndex: p,
			Record:      [4]byte{0x00, 0x08, 0x00, 0x00},
		})
	}

	c, err := tur.New(testutil.MakeTUR(t, specs, nil), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, errs := c.Entries()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, want := len(entries), c.EntryCount(); got != want {
		t.Errorf("unexpected entry count: got: %d, want: %d", got, want)
	}
}

// TestTUR_Entries_skipsUnmapped verifies that entries with unmapped suffix
// bytes are reported and skipped without ending the decode.
func TestTUR_Entries_skipsUnmapped(t *testing.T) {
	t.Parallel()

	c, err := tur.New(testutil.MakeTUR(t, []testutil.TUREntry{
		{PrefixIndex: 0, Record: [4]byte{0x00, 0x08, 0x21, 0x00}},
		{PrefixIndex: 1, Record: [4]byte{0x00, 0x08, 0x00, 0x00}},
	}, nil), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, errs := c.Entries()
	if got, want := len(errs), 1; got != want {
		t.Fatalf("unexpected errors: got: %v, want: %d", errs, want)
	}
	expected := []*tur.Entry{
		{Headword: "aba"},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

// TestTUR_Entries_badModIndex verifies that a record referencing a missing
// modification record is fatal.
func TestTUR_Entries_badModIndex(t *testing.T) {
	t.Parallel()

	c, err := tur.New(testutil.MakeTUR(t, []testutil.TUREntry{
		{PrefixIndex: 0, Record: [4]byte{0x09, 0x08, 0x00, 0x00}},
	}, nil), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, errs := c.Entries()
	if len(errs) != 1 || !errors.Is(errs[0], tur.ErrMalformed) {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
