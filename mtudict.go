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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ekizer/go-mtudict/internal/folding"
	"github.com/ekizer/go-mtudict/internal/index"
	"github.com/ekizer/go-mtudict/trk"
	"github.com/ekizer/go-mtudict/tur"
)

// ErrUnknownFormat indicates that a file is not a recognized MTU container.
var ErrUnknownFormat = errors.New("unknown container format")

// Format identifies a container format.
type Format int

const (
	// FormatUnknown is an unrecognized container.
	FormatUnknown Format = iota

	// FormatTRK is the English-Turkish dictionary container (MTU.TRK).
	FormatTRK

	// FormatTUR is the Turkish suffix container (MTU.TUR).
	FormatTUR
)

// String returns the format's name.
func (f Format) String() string {
	switch f {
	case FormatTRK:
		return "TRK"
	case FormatTUR:
		return "TUR"
	default:
		return "unknown"
	}
}

// Dict is an opened MTU dictionary container.
type Dict struct {
	path   string
	format Format

	trk *trk.TRK
	tur *tur.TUR

	entries []*Entry
	errs    []error
	decoded bool

	index *index.Index[*foldedEntry]
}

type foldedEntry struct {
	folded string
	entry  *Entry
}

func (e *foldedEntry) Key() string {
	return e.folded
}

// OpenAll opens all containers under a directory. This function returns all
// successfully opened containers along with any errors that occurred.
func OpenAll(path string) ([]*Dict, []error) {
	var dicts []*Dict
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		name := strings.ToLower(info.Name())
		for _, ext := range []string{".trk", ".tur", ".trk.gz", ".tur.gz", ".trk.dz", ".tur.dz"} {
			if strings.HasSuffix(name, ext) {
				d, err := Open(path)
				if err != nil {
					errs = append(errs, err)
					return nil
				}
				dicts = append(dicts, d)
				break
			}
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens the MTU container at the given path. Containers compressed with
// gzip (.gz) or dictzip (.dz) are decompressed transparently. The format is
// detected from the container contents.
func Open(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".dz":
		zr, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}

	return New(data, path)
}

// New reads an MTU container from raw bytes. path is used in diagnostics
// only and may be empty.
func New(data []byte, path string) (*Dict, error) {
	d := &Dict{
		path: path,
	}

	switch {
	case tur.Sniff(data):
		t, err := tur.New(data, nil)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		d.format = FormatTUR
		d.tur = t
	case trk.Sniff(data):
		t, err := trk.New(data, nil)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		d.format = FormatTRK
		d.trk = t
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	return d, nil
}

// Path returns the path the container was opened from.
func (d *Dict) Path() string {
	return d.path
}

// Format returns the container format.
func (d *Dict) Format() Format {
	return d.format
}

// Entries decodes all entries in container-native order. The order is
// significant and preserved. Non-fatal per-entry problems are accumulated
// and returned alongside the entries; an error wrapping trk.ErrMalformed or
// tur.ErrMalformed ends the entry list early.
func (d *Dict) Entries() ([]*Entry, []error) {
	if d.decoded {
		return d.entries, d.errs
	}

	switch d.format {
	case FormatTRK:
		entries, errs := d.trk.Entries()
		for _, e := range entries {
			d.entries = append(d.entries, &Entry{
				headword:    e.Headword,
				translation: e.Translation,
			})
		}
		d.errs = errs
	case FormatTUR:
		entries, errs := d.tur.Entries()
		for _, e := range entries {
			d.entries = append(d.entries, &Entry{
				headword: e.Headword,
			})
		}
		d.errs = errs
	}

	d.decoded = true
	return d.entries, d.errs
}

// Search returns all entries whose folded headword matches the folded query.
// Folding lowercases with Turkish casing rules and collapses whitespace.
func (d *Dict) Search(query string) ([]*Entry, error) {
	if d.index == nil {
		entries, _ := d.Entries()

		var folded []*foldedEntry
		for _, e := range entries {
			w, _, err := transform.String(&folding.Folder{}, e.Headword())
			if err != nil {
				return nil, fmt.Errorf("folding headword %q: %w", e.Headword(), err)
			}
			folded = append(folded, &foldedEntry{
				folded: w,
				entry:  e,
			})
		}
		d.index = index.New(folded)
	}

	foldedQuery, _, err := transform.String(&folding.Folder{}, query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}

	var result []*Entry
	for _, w := range d.index.Search(foldedQuery) {
		result = append(result, w.entry)
	}
	return result, nil
}
