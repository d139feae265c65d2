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

// Package index implements a generic sorted in-memory search index.
package index

import (
	"slices"
	"sort"
	"strings"
)

// Keyed is a value indexed under a string key.
type Keyed interface {
	Key() string
}

// Index is a sorted array index. Values sharing a key keep their insertion
// order relative to each other.
type Index[V Keyed] struct {
	values []V
}

// New creates an index over the given values.
func New[V Keyed](values []V) *Index[V] {
	sorted := make([]V, len(values))
	copy(sorted, values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return strings.Compare(a.Key(), b.Key())
	})

	return &Index[V]{
		values: sorted,
	}
}

// Search performs a binary search over the index and returns all values
// whose key matches the query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.values), func(i int) int {
		return strings.Compare(query, idx.values[i].Key())
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.values) && idx.values[j].Key() == query {
		j++
	}
	return idx.values[i:j]
}
