// seehuhn.de/go/charproof - proofing tools for font character sets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/charproof/accent"
	"seehuhn.de/go/charproof/charset"
)

var accentsCmd = struct {
	cobra.Command
	content string
	system  string
	font    string
	json    bool
}{
	Command: cobra.Command{
		Use:   "accents",
		Short: "Show example words for each accent",
		Args:  cobra.NoArgs,
	},
}

func init() {
	accentsCmd.RunE = runAccents
	flags := accentsCmd.Flags()
	flags.StringVarP(&accentsCmd.content, "content", "c", "", "corpus `directory`")
	flags.StringVarP(&accentsCmd.system, "system", "s", "lat",
		"writing systems (comma-separated list, or \"all\")")
	flags.StringVarP(&accentsCmd.font, "font", "f", "",
		"only show letters and words supported by the font in `file` (or go:regular etc.)")
	flags.BoolVar(&accentsCmd.json, "json", false, "write the result as JSON")
	rootCmd.AddCommand(&accentsCmd.Command)
}

func runAccents(cmd *cobra.Command, _ []string) error {
	systems, err := selectSystems(accentsCmd.system)
	if err != nil {
		return err
	}
	cache, err := newCache(accentsCmd.content)
	if err != nil {
		return err
	}
	font, err := loadFont(accentsCmd.font)
	if err != nil {
		return err
	}
	if font != nil && isAll(accentsCmd.system) {
		systems = supportedSystems(systems, font)
	}

	results, err := forEachSystem(systems, func(sys *charset.System) (*accent.Result, error) {
		c, err := cache.Get(sys)
		if err != nil {
			return nil, err
		}
		return accent.Collect(sys, c.Words(), &accent.Options{
			Font:   font,
			Logger: rootCmd.logger,
		}), nil
	})
	if err != nil {
		return err
	}

	for _, res := range results {
		var noEx *accent.NoExampleError
		for _, err := range unjoin(res.Err()) {
			if errors.As(err, &noEx) {
				rootCmd.logger.Warn("incomplete accent group",
					"system", noEx.System, "accent", noEx.Name)
			}
		}
	}

	out := cmd.OutOrStdout()
	if accentsCmd.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, res := range results {
		writeAccents(out, res)
	}
	return nil
}

func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func writeAccents(w io.Writer, res *accent.Result) {
	fmt.Fprintf(w, "== %s ==\n", res.System)
	for _, g := range res.Groups {
		examples := g.Upper
		if g.Lower != "" {
			if examples != "" {
				examples += " "
			}
			examples += g.Lower
		}
		for _, word := range g.Extra {
			if examples != "" {
				examples += " "
			}
			examples += word
		}
		if examples == "" {
			examples = "-"
		}
		fmt.Fprintf(w, "%s – %s\n", spaced(g.Members), examples)
		fmt.Fprintf(w, "    %s\n", g.Name)
	}
	fmt.Fprintln(w)
}
