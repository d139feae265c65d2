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

// Package mtudict implements a library for reading MTU dictionary containers
// in pure Go.
//
// Two container formats are supported:
//  1. MTU.TRK holds the English-Turkish dictionary. Headwords are not stored
//     as literal strings but reconstructed from a two-letter prefix, a stored
//     morpheme fragment and a bytecode instruction that may splice in
//     characters from the previously decoded word and attach a suffix from a
//     fixed table. Text is encoded in code page 857.
//  2. MTU.TUR holds Turkish morphological suffix data backing the
//     suffix-synonym features. Suffixes are derived from 4-byte records,
//     either as direct alphabet letters or by offset into a shared suffix
//     blob, then reordered and devoiced. Text uses a custom alphabet.
//
// Containers may additionally be compressed with gzip or dictzip.
package mtudict
