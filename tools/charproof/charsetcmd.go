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

	"github.com/spf13/cobra"

	"seehuhn.de/go/charproof/charset"
)

var charsetCmd = struct {
	cobra.Command
	system     string
	tier       string
	cumulative bool
	font       string
}{
	Command: cobra.Command{
		Use:   "charset",
		Short: "List the characters of a character set tier",
		Args:  cobra.NoArgs,
	},
}

func init() {
	charsetCmd.RunE = runCharset
	flags := charsetCmd.Flags()
	flags.StringVarP(&charsetCmd.system, "system", "s", "lat", "writing system")
	flags.StringVarP(&charsetCmd.tier, "tier", "t", "",
		"tier name or level number (default: highest tier)")
	flags.BoolVar(&charsetCmd.cumulative, "cumulative", false,
		"include the characters of all lower tiers")
	flags.StringVarP(&charsetCmd.font, "font", "f", "",
		"mark the characters not supported by the font in `file` (or go:regular etc.)")
	rootCmd.AddCommand(&charsetCmd.Command)
}

func runCharset(cmd *cobra.Command, _ []string) error {
	sys, err := registry.System(charsetCmd.system)
	if err != nil {
		return err
	}
	tier, err := resolveTier(sys, charsetCmd.tier)
	if err != nil {
		return err
	}
	font, err := loadFont(charsetCmd.font)
	if err != nil {
		return err
	}

	var set charset.Set
	if charsetCmd.cumulative {
		set, err = registry.Cumulative(sys.Tag(), tier)
	} else {
		set, err = registry.TierCodePoints(sys.Tag(), tier)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var missing int
	for _, r := range set.Sorted() {
		mark := " "
		if font != nil && !font.Supports(r) {
			missing++
			mark = "-"
			if font.Unencoded(r) {
				mark = "?"
			}
		}
		fmt.Fprintf(out, "%s %s\n", mark, charset.Describe(r))
	}
	if font != nil {
		fmt.Fprintf(out, "%s: %d of %d characters missing\n", font.Name, missing, set.Len())
	}
	return nil
}
