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

// Package coverage selects corpus lines which exercise a character set tier.
//
// Two modes are supported.  Random mode draws a page-sized random sample of
// the lines available for a tier; it is meant for previews and gives no
// coverage guarantee.  Systematic mode selects lines until every code point
// introduced at the tier occurs in at least one selected line, using a
// greedy set cover.  The greedy cover is deterministic but not necessarily
// the smallest possible selection.
package coverage

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/corpus"
	"seehuhn.de/go/charproof/layout"
)

// Mode selects the selection strategy.
type Mode int

// These are the supported selection modes.
const (
	Random Mode = iota
	Systematic
)

func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Systematic:
		return "systematic"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode converts the output of [Mode.String] back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "random":
		return Random, nil
	case "systematic", "full":
		return Systematic, nil
	default:
		return 0, fmt.Errorf("coverage: invalid mode %q", s)
	}
}

// Request describes which lines to select.
type Request struct {
	// System is the tag of the writing system.  If this is empty, the
	// writing system of the corpus is used.
	System string

	Tier string
	Mode Mode

	// Budget limits the size of a random sample.  Systematic mode
	// ignores the budget.
	Budget layout.Budget

	// Seed initialises the random number generator.
	Seed uint64

	// Require lists characters which must be shown.  If some line
	// contains all of them, one such line is chosen.  Otherwise one line
	// is chosen for each character separately.
	Require []rune
}

// Selection is the result of [Select].
type Selection struct {
	System string
	Tier   string
	Mode   Mode

	// Matched holds the lines chosen for the required characters.  They
	// come before all other lines on the pages.
	Matched []*corpus.Line

	// Lines holds the remaining selected lines, in corpus order.
	Lines []*corpus.Line

	// Gap lists the code points introduced at the tier for which no
	// example was found.  Only systematic mode fills in this field.
	Gap []rune

	// Unmatched lists the required characters which occur in no line.
	Unmatched []rune
}

// Select chooses lines from c according to req.
//
// An unknown tier results in a *charset.UnknownTierError.  In systematic
// mode, the selection may be incomplete; use [Selection.Err] to check.
func Select(req *Request, c *corpus.Corpus) (*Selection, error) {
	sys := c.System
	if req.System != "" && !strings.EqualFold(req.System, sys.Tag()) {
		return nil, fmt.Errorf("coverage: request for writing system %q, but corpus is %q",
			req.System, sys.Tag())
	}
	target, err := sys.TierIndex(req.Tier)
	if err != nil {
		return nil, err
	}

	sel := &Selection{
		System: sys.Tag(),
		Tier:   sys.TierName(target),
		Mode:   req.Mode,
	}
	if req.Mode != Random && req.Mode != Systematic {
		return nil, fmt.Errorf("coverage: invalid mode %s", req.Mode)
	}

	rng := rand.New(rand.NewPCG(req.Seed, req.Seed^0x9e3779b97f4a7c15))
	pool := c.Pool(target)
	if len(req.Require) > 0 {
		sel.Matched, sel.Unmatched = match(sys, pool, req.Require, rng)
		pool = slices.DeleteFunc(slices.Clone(pool), func(line *corpus.Line) bool {
			return slices.Contains(sel.Matched, line)
		})
	}

	switch req.Mode {
	case Random:
		used := 0
		for _, line := range sel.Matched {
			used += req.Budget.Size(line.Text)
		}
		sel.Lines = sample(pool, req.Budget, rng, used)
	case Systematic:
		remaining := sys.Introduced(target)
		for _, line := range sel.Matched {
			for _, r := range line.Runes {
				delete(remaining, r)
			}
		}
		sel.Lines, sel.Gap = cover(pool, remaining)
	}

	slices.SortFunc(sel.Lines, func(a, b *corpus.Line) int {
		return a.Index - b.Index
	})
	return sel, nil
}

// match chooses random lines which show the required characters.
func match(sys *charset.System, pool []*corpus.Line, require []rune, rng *rand.Rand) ([]*corpus.Line, []rune) {
	var all []*corpus.Line
	for _, line := range pool {
		if !slices.ContainsFunc(require, func(r rune) bool { return !hasRune(sys, line, r) }) {
			all = append(all, line)
		}
	}
	if len(all) > 0 {
		return []*corpus.Line{all[rng.IntN(len(all))]}, nil
	}

	var matched []*corpus.Line
	var unmatched []rune
	for _, r := range require {
		var candidates []*corpus.Line
		for _, line := range pool {
			if hasRune(sys, line, r) {
				candidates = append(candidates, line)
			}
		}
		if len(candidates) == 0 {
			unmatched = append(unmatched, r)
			continue
		}
		line := candidates[rng.IntN(len(candidates))]
		if !slices.Contains(matched, line) {
			matched = append(matched, line)
		}
	}
	return matched, unmatched
}

func hasRune(sys *charset.System, line *corpus.Line, r rune) bool {
	return strings.ContainsRune(line.Text, r) ||
		slices.Contains(line.Runes, sys.Canonical(r))
}

// sample draws lines in random order until the next line would exceed the
// budget, where used is the part of the budget already taken.  Lines which
// do not even fit onto an empty page are skipped.
func sample(pool []*corpus.Line, b layout.Budget, rng *rand.Rand, used int) []*corpus.Line {
	var res []*corpus.Line
	total := used
	for _, i := range rng.Perm(len(pool)) {
		line := pool[i]
		h := b.Size(line.Text)
		if b.Max > 0 && total+h > b.Max {
			if total == 0 {
				continue
			}
			break
		}
		res = append(res, line)
		total += h
	}
	return res
}

// cover implements the greedy set cover.  In every step, the line covering
// the largest number of remaining code points is chosen.  Ties are broken
// by preferring lines with fewer code points, and then lines which come
// first in the corpus.
func cover(pool []*corpus.Line, target charset.Set) ([]*corpus.Line, []rune) {
	remaining := target
	used := make([]bool, len(pool))

	var res []*corpus.Line
	for len(remaining) > 0 {
		best := -1
		bestGain := 0
		for i, line := range pool {
			if used[i] {
				continue
			}
			gain := 0
			for _, r := range line.Runes {
				if remaining.Contains(r) {
					gain++
				}
			}
			if gain == 0 {
				continue
			}
			if gain > bestGain ||
				gain == bestGain && len(line.Runes) < len(pool[best].Runes) {
				best = i
				bestGain = gain
			}
		}
		if best < 0 {
			break
		}

		used[best] = true
		res = append(res, pool[best])
		for _, r := range pool[best].Runes {
			delete(remaining, r)
		}
	}

	if len(remaining) == 0 {
		return res, nil
	}
	return res, remaining.Sorted()
}

// Err reports problems with the selection.  The result joins a
// *CoverageGapError if some code points of the tier are not covered, and
// an *UnmatchedError if some required characters were not found.  If the
// selection is complete, nil is returned.
func (s *Selection) Err() error {
	var errs []error
	if len(s.Gap) > 0 {
		errs = append(errs, &CoverageGapError{
			System:  s.System,
			Tier:    s.Tier,
			Missing: s.Gap,
		})
	}
	if len(s.Unmatched) > 0 {
		errs = append(errs, &UnmatchedError{
			System: s.System,
			Tier:   s.Tier,
			Chars:  s.Unmatched,
		})
	}
	return errors.Join(errs...)
}

// all returns the matched lines followed by the other selected lines.
func (s *Selection) all() []*corpus.Line {
	return append(slices.Clip(s.Matched), s.Lines...)
}

// Runes returns the union of the code points of all selected lines,
// including the matched lines.
func (s *Selection) Runes() charset.Set {
	res := charset.Set{}
	for _, line := range s.all() {
		for _, r := range line.Runes {
			res[r] = struct{}{}
		}
	}
	return res
}

// Text returns the text of the matched lines, followed by the text of the
// other selected lines.
func (s *Selection) Text() []string {
	all := s.all()
	res := make([]string, len(all))
	for i, line := range all {
		res[i] = line.Text
	}
	return res
}

// Pages lays out the selection.  A random sample always results in a
// single page, truncated to fit the budget.  A systematic selection is
// broken into as many pages as needed.
func (s *Selection) Pages(b layout.Budget) []layout.Page {
	all := s.all()
	lines := make([]layout.Line, len(all))
	for i, line := range all {
		lines[i] = layout.Line{Text: line.Text}
	}
	if s.Mode == Random {
		return []layout.Page{layout.SinglePage(lines, b)}
	}
	return layout.Paginate(lines, b)
}

// CoverageGapError reports code points for which the corpus has no
// example.  The selection is still usable.
type CoverageGapError struct {
	System  string
	Tier    string
	Missing []rune
}

func (err *CoverageGapError) Error() string {
	return fmt.Sprintf("coverage: %s/%s: examples missing for %d characters: %s",
		err.System, err.Tier, len(err.Missing), string(err.Missing))
}

// UnmatchedError lists required characters which occur in no line of the
// tier's pool.
type UnmatchedError struct {
	System string
	Tier   string
	Chars  []rune
}

func (err *UnmatchedError) Error() string {
	return fmt.Sprintf("coverage: %s/%s: no lines contain %s",
		err.System, err.Tier, string(err.Chars))
}
