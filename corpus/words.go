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
	"slices"
	"strings"
	"unicode"
)

// wordSeparators are the punctuation characters which separate words, in
// addition to white space.
const wordSeparators = "*,.;:(){}[]¹²³⁴⁵\"¿¡!?/'‘’“”„«»‹›-–—<>+="

// Words returns the distinct words of the corpus, most frequent first.
// Words with equal frequency are ordered by first occurrence.  Tokens
// without any letter are ignored.
func (c *Corpus) Words() []string {
	count := make(map[string]int)
	var order []string
	for _, line := range c.Lines {
		for _, w := range splitWords(line.Text) {
			if count[w] == 0 {
				order = append(order, w)
			}
			count[w]++
		}
	}

	// order is in first-occurrence order, so a stable sort by count
	// gives the required tie-break.
	slices.SortStableFunc(order, func(a, b string) int {
		return count[b] - count[a]
	})
	return order
}

func splitWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(wordSeparators, r)
	})
	res := fields[:0]
	for _, w := range fields {
		if strings.IndexFunc(w, unicode.IsLetter) >= 0 {
			res = append(res, w)
		}
	}
	return res
}
