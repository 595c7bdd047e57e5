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

package corpus

import (
	"maps"
	"slices"
)

// Report summarises how well the corpus covers one tier.
type Report struct {
	Tier string

	// Lines is the number of lines available for the tier.
	Lines int

	// Missing lists the code points introduced at the tier which do not
	// occur in any available line.
	Missing []rune
}

// Check reports which code points introduced at tier idx are missing from
// the lines available for this tier.
func (c *Corpus) Check(idx int) *Report {
	pool := c.Pool(idx)
	present := make(map[rune]bool)
	for _, line := range pool {
		for _, r := range line.Runes {
			present[r] = true
		}
	}

	var missing []rune
	for _, r := range c.System.Introduced(idx).Sorted() {
		if !present[r] {
			missing = append(missing, r)
		}
	}
	return &Report{
		Tier:    c.System.TierName(idx),
		Lines:   len(pool),
		Missing: missing,
	}
}

// Occurrence groups the code points which occur equally often.
type Occurrence struct {
	Count int
	Runes []rune
}

// Occurrences counts how often each non-baseline code point occurs in the
// corpus.
func (c *Corpus) Occurrences() map[rune]int {
	res := make(map[rune]int)
	sys := c.System
	for _, line := range c.Lines {
		for _, r := range line.Text {
			r = sys.Canonical(r)
			if !sys.IsBaseline(r) {
				res[r]++
			}
		}
	}
	return res
}

// Rare returns the code points with the n lowest occurrence counts,
// lowest count first.
func (c *Corpus) Rare(n int) []Occurrence {
	byCount := make(map[int][]rune)
	for r, count := range c.Occurrences() {
		byCount[count] = append(byCount[count], r)
	}

	counts := slices.Sorted(maps.Keys(byCount))
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	res := make([]Occurrence, len(counts))
	for i, count := range counts {
		rr := byCount[count]
		slices.Sort(rr)
		res[i] = Occurrence{Count: count, Runes: rr}
	}
	return res
}
