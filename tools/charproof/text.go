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
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/corpus"
	"seehuhn.de/go/charproof/coverage"
	"seehuhn.de/go/charproof/fontinfo"
	"seehuhn.de/go/charproof/layout"
)

var textCmd = struct {
	cobra.Command
	content    string
	system     string
	tier       string
	mode       string
	seed       uint64
	budget     int
	budgetKind string
	font       string
	capitalize bool
	filter     string
	textFile   string
	json       bool
}{
	Command: cobra.Command{
		Use:   "text",
		Short: "Compose example text for a character set tier",
		Long: `Compose example text for a character set tier.

In random mode, a single page of randomly chosen corpus lines is shown.
In systematic mode, lines are chosen until every character introduced at
the tier is shown at least once, and the result is split into pages.`,
		Args: cobra.NoArgs,
	},
}

func init() {
	textCmd.RunE = runText
	flags := textCmd.Flags()
	flags.StringVarP(&textCmd.content, "content", "c", "", "corpus `directory`")
	flags.StringVarP(&textCmd.system, "system", "s", "lat",
		"writing systems (comma-separated list, or \"all\")")
	flags.StringVarP(&textCmd.tier, "tier", "t", "",
		"tier name or level number (default: highest tier)")
	flags.StringVarP(&textCmd.mode, "mode", "m", "random", "selection mode (random or systematic)")
	flags.Uint64Var(&textCmd.seed, "seed", 0, "random seed (default: time-based)")
	flags.IntVarP(&textCmd.budget, "budget", "b", 1200, "page size (0 for unlimited)")
	flags.StringVar(&textCmd.budgetKind, "budget-kind", "chars", "unit of the page size (chars or lines)")
	flags.StringVarP(&textCmd.font, "font", "f", "", "font `file` (or go:regular etc.) to check the text against")
	flags.BoolVar(&textCmd.capitalize, "capitalize", false, "convert the text to uppercase")
	flags.StringVar(&textCmd.filter, "filter", "",
		"`characters` which must be shown; matching lines are placed first")
	flags.StringVar(&textCmd.textFile, "text-file", "", "use the lines of `file` instead of the corpus")
	flags.BoolVar(&textCmd.json, "json", false, "write the result as JSON")
	rootCmd.AddCommand(&textCmd.Command)
}

// textResult is the outcome of the text command for one writing system.
type textResult struct {
	System    string         `json:"system,omitempty"`
	Tier      string         `json:"tier,omitempty"`
	Mode      string         `json:"mode"`
	Seed      uint64         `json:"seed,omitempty"`
	Pages     []layout.Page  `json:"pages"`
	Gap       []string       `json:"gap,omitempty"`
	Unmatched []string       `json:"unmatched,omitempty"`
	Font      *fontCheckInfo `json:"font,omitempty"`
}

type fontCheckInfo struct {
	Name    string   `json:"name"`
	Missing []string `json:"missing,omitempty"`
}

func runText(cmd *cobra.Command, _ []string) error {
	logger := rootCmd.logger

	mode, err := coverage.ParseMode(textCmd.mode)
	if err != nil {
		return err
	}
	kind, err := layout.ParseKind(textCmd.budgetKind)
	if err != nil {
		return err
	}
	budget := layout.Budget{Kind: kind, Max: textCmd.budget}

	seed := textCmd.seed
	if mode == coverage.Random && !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
		logger.Info("using random seed", "seed", seed)
	}

	font, err := loadFont(textCmd.font)
	if err != nil {
		return err
	}

	var results []*textResult
	if textCmd.textFile != "" {
		res, err := textFromFile(textCmd.textFile, mode, budget)
		if err != nil {
			return err
		}
		results = append(results, res)
	} else {
		systems, err := selectSystems(textCmd.system)
		if err != nil {
			return err
		}
		if font != nil && isAll(textCmd.system) {
			systems = supportedSystems(systems, font)
		}
		cache, err := newCache(textCmd.content)
		if err != nil {
			return err
		}
		results, err = forEachSystem(systems, func(sys *charset.System) (*textResult, error) {
			return textFromCorpus(cache, sys, mode, budget, seed)
		})
		if err != nil {
			return err
		}
	}

	upper := cases.Upper(language.Und)
	for _, res := range results {
		if textCmd.capitalize {
			for _, page := range res.Pages {
				for i, line := range page {
					page[i] = upper.String(line)
				}
			}
		}
		if font != nil {
			res.Font = checkFont(font, res.Pages)
			if len(res.Font.Missing) > 0 {
				logger.Warn("font does not support all characters of the text",
					"font", font.Name, "system", res.System, "missing", len(res.Font.Missing))
			}
		}
	}

	out := cmd.OutOrStdout()
	if textCmd.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, res := range results {
		writeTextResult(out, res)
	}
	return nil
}

func textFromCorpus(cache *corpus.Cache, sys *charset.System, mode coverage.Mode, budget layout.Budget, seed uint64) (*textResult, error) {
	tier, err := resolveTier(sys, textCmd.tier)
	if err != nil {
		return nil, err
	}
	c, err := cache.Get(sys)
	if err != nil {
		return nil, err
	}
	if len(c.Dropped) > 0 {
		rootCmd.logger.Warn("corpus lines dropped",
			"system", sys.Tag(), "count", len(c.Dropped))
	}

	sel, err := coverage.Select(&coverage.Request{
		System:  sys.Tag(),
		Tier:    tier,
		Mode:    mode,
		Budget:  budget,
		Seed:    seed,
		Require: []rune(textCmd.filter),
	}, c)
	if err != nil {
		return nil, err
	}

	res := &textResult{
		System: sel.System,
		Tier:   sel.Tier,
		Mode:   sel.Mode.String(),
		Pages:  sel.Pages(budget),
	}
	if mode == coverage.Random {
		res.Seed = seed
	}

	var gapErr *coverage.CoverageGapError
	if errors.As(sel.Err(), &gapErr) {
		rootCmd.logger.Warn("coverage incomplete",
			"system", gapErr.System, "tier", gapErr.Tier, "missing", string(gapErr.Missing))
		for _, r := range gapErr.Missing {
			res.Gap = append(res.Gap, charset.Describe(r))
		}
	}
	var unmatchedErr *coverage.UnmatchedError
	if errors.As(sel.Err(), &unmatchedErr) {
		rootCmd.logger.Warn("no lines for required characters",
			"system", unmatchedErr.System, "chars", string(unmatchedErr.Chars))
		for _, r := range unmatchedErr.Chars {
			res.Unmatched = append(res.Unmatched, charset.Describe(r))
		}
	}
	return res, nil
}

func textFromFile(fname string, mode coverage.Mode, budget layout.Budget) (*textResult, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	lines, err := corpus.ReadText(fd)
	if err != nil {
		return nil, err
	}

	res := &textResult{Mode: mode.String()}
	if mode == coverage.Random {
		res.Pages = []layout.Page{layout.SinglePage(lines, budget)}
	} else {
		res.Pages = layout.Paginate(lines, budget)
	}
	return res, nil
}

func checkFont(font *fontinfo.Info, pages []layout.Page) *fontCheckInfo {
	used := charset.Set{}
	for _, page := range pages {
		for _, line := range page {
			for _, r := range line {
				used[r] = struct{}{}
			}
		}
	}
	res := &fontCheckInfo{Name: font.Name}
	for _, r := range font.Missing(used) {
		res.Missing = append(res.Missing, charset.Describe(r))
	}
	return res
}

func writeTextResult(w io.Writer, res *textResult) {
	for i, page := range res.Pages {
		header := fmt.Sprintf("page %d/%d", i+1, len(res.Pages))
		if res.System != "" {
			header = fmt.Sprintf("%s %s %s, %s", res.System, res.Tier, res.Mode, header)
		}
		fmt.Fprintf(w, "== %s ==\n", header)
		for _, line := range page {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
	if len(res.Gap) > 0 {
		fmt.Fprintf(w, "no examples for %d characters:\n", len(res.Gap))
		for _, desc := range res.Gap {
			fmt.Fprintln(w, "  "+desc)
		}
		fmt.Fprintln(w)
	}
	if len(res.Unmatched) > 0 {
		fmt.Fprintf(w, "no lines contain %d required characters:\n", len(res.Unmatched))
		for _, desc := range res.Unmatched {
			fmt.Fprintln(w, "  "+desc)
		}
		fmt.Fprintln(w)
	}
	if res.Font != nil && len(res.Font.Missing) > 0 {
		fmt.Fprintf(w, "not supported by %s:\n", res.Font.Name)
		for _, desc := range res.Font.Missing {
			fmt.Fprintln(w, "  "+desc)
		}
		fmt.Fprintln(w)
	}
}
