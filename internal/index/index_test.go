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

package index_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ekizer/go-mtudict/internal/index"
)

type word string

func (w word) Key() string {
	return string(w)
}

// TestIndex_Search tests Index.Search.
func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []word
		query string

		expected []word
	}{
		{
			name:  "empty index",
			query: "foo",
		},
		{
			name:  "no match",
			words: []word{"bar", "baz", "foo"},
			query: "hoge",
		},
		{
			name:     "single match",
			words:    []word{"bar", "baz", "foo"},
			query:    "baz",
			expected: []word{"baz"},
		},
		{
			name:     "multiple matches",
			words:    []word{"foo", "bar", "baz", "bar"},
			query:    "bar",
			expected: []word{"bar", "bar"},
		},
		{
			name:     "unsorted input",
			words:    []word{"zebra", "aardvark", "mole"},
			query:    "aardvark",
			expected: []word{"aardvark"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			idx := index.New(tc.words)
			if diff := cmp.Diff(tc.expected, idx.Search(tc.query)); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}
