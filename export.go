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

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// headwordColumn is the column width headwords are padded to in the
// bilingual text export. The width matches the original application's
// plain-text dump.
const headwordColumn = 30

// WriteText writes all entries to w as plain text, one entry per line, in
// container-native order. For the bilingual container the headword is padded
// with spaces to a fixed column followed by the translation; for the Turkish
// container each line is a single headword.
func (d *Dict) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	entries, _ := d.Entries()

	for _, e := range entries {
		if _, err := bw.WriteString(e.Headword()); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
		if d.format == FormatTRK {
			if pad := headwordColumn - utf8.RuneCountInString(e.Headword()); pad > 0 {
				if _, err := bw.WriteString(strings.Repeat(" ", pad)); err != nil {
					return fmt.Errorf("writing entry: %w", err)
				}
			}
			if _, err := bw.WriteString(e.Translation()); err != nil {
				return fmt.Errorf("writing entry: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing entries: %w", err)
	}
	return nil
}
