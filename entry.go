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

package mtudict

// Entry is a dictionary entry. Each entry is a fully materialized string
// pair that shares no storage with the container or other entries.
type Entry struct {
	headword    string
	translation string
}

// Headword returns the entry's headword.
func (e *Entry) Headword() string {
	return e.headword
}

// Translation returns the entry's translation. It is empty for Turkish
// container entries and for the fixed set of corrupted bilingual entries.
func (e *Entry) Translation() string {
	return e.translation
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	if e.translation == "" {
		return e.headword
	}
	return e.headword + "\t" + e.translation
}
