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
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/corpus"
)

var checkCmd = struct {
	cobra.Command
	content string
	system  string
	rare    int
}{
	Command: cobra.Command{
		Use:   "check",
		Short: "Check the corpus for missing characters",
		Long: `Check the corpus for missing characters.

For every tier, the characters introduced at this tier which do not occur
in any corpus line are listed, together with the corpus lines which could
not be assigned to a tier.`,
		Args: cobra.NoArgs,
	},
}

func init() {
	checkCmd.RunE = runCheck
	flags := checkCmd.Flags()
	flags.StringVarP(&checkCmd.content, "content", "c", "", "corpus `directory`")
	flags.StringVarP(&checkCmd.system, "system", "s", "all",
		"writing systems (comma-separated list, or \"all\")")
	flags.IntVar(&checkCmd.rare, "rare", 0,
		"also list the characters with the `n` lowest occurrence counts")
	rootCmd.AddCommand(&checkCmd.Command)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	systems, err := selectSystems(checkCmd.system)
	if err != nil {
		return err
	}
	cache, err := newCache(checkCmd.content)
	if err != nil {
		return err
	}

	corpora, err := forEachSystem(systems, cache.Get)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := termWidth()
	for _, c := range corpora {
		writeCheck(out, c, width)
	}
	return nil
}

func writeCheck(w io.Writer, c *corpus.Corpus, width int) {
	sys := c.System
	fmt.Fprintf(w, "== %s (%d lines, digest %x) ==\n", sys.Tag(), len(c.Lines), c.Digest[:8])
	for idx := range sys.NumTiers() {
		rep := c.Check(idx)
		if len(rep.Missing) == 0 {
			fmt.Fprintf(w, "%s: %d lines, complete\n", rep.Tier, rep.Lines)
			continue
		}
		fmt.Fprintf(w, "%s: %d lines, %d characters missing\n",
			rep.Tier, rep.Lines, len(rep.Missing))
		for _, r := range rep.Missing {
			fmt.Fprintln(w, "    "+charset.Describe(r))
		}
	}

	if len(c.Dropped) > 0 {
		fmt.Fprintf(w, "%d lines dropped:\n", len(c.Dropped))
		for _, d := range c.Dropped {
			msg := d.File + ":" + strconv.Itoa(d.LineNo) + ": outside " + string(d.Outside)
			if d.Mixed != "" {
				msg += " (" + d.Mixed + ")"
			}
			for _, line := range wrap(msg, width, "    ") {
				fmt.Fprintln(w, line)
			}
		}
	}

	if checkCmd.rare > 0 {
		fmt.Fprintln(w, "rare characters:")
		for _, occ := range c.Rare(checkCmd.rare) {
			text := fmt.Sprintf("%d× %s", occ.Count, spaced(occ.Runes))
			for _, line := range wrap(text, width, "    ") {
				fmt.Fprintln(w, line)
			}
		}
	}
	fmt.Fprintln(w)
}
