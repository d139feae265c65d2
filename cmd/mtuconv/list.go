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

package main

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ekizer/go-mtudict"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List containers in a directory",
		ArgsUsage: "DIR",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			dicts, errs := mtudict.OpenAll(c.Args().Get(0))
			for _, err := range errs {
				fmt.Fprintln(os.Stderr, err)
			}

			tbl := table.New("PATH", "FORMAT", "ENTRIES", "WARNINGS")
			tbl.WithWriter(c.App.Writer)
			for _, d := range dicts {
				entries, decodeErrs := d.Entries()
				tbl.AddRow(d.Path(), d.Format(), len(entries), len(decodeErrs))
			}
			tbl.Print()

			if len(errs) > 0 {
				return fmt.Errorf("%w: %d containers could not be opened", ErrMtuconv, len(errs))
			}
			return nil
		},
	}
}
