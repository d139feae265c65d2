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
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ekizer/go-mtudict"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a container to plain text",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write output to `FILE` instead of stdout",
				Aliases: []string{"o"},
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			d, err := mtudict.Open(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrMtuconv, err)
			}

			var w io.Writer = c.App.Writer
			if output := c.String("output"); output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrMtuconv, err)
				}
				defer f.Close()
				w = f
			}

			if err := d.WriteText(w); err != nil {
				return fmt.Errorf("%w: %w", ErrMtuconv, err)
			}

			_, errs := d.Entries()
			for _, err := range errs {
				fmt.Fprintln(os.Stderr, err)
			}
			return nil
		},
	}
}
