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

package charset

import (
	"slices"
	"strings"
)

// Set is a set of code points.
type Set map[rune]struct{}

// NewSet returns the set of runes in s.
func NewSet(s string) Set {
	res := Set{}
	for _, r := range s {
		res[r] = struct{}{}
	}
	return res
}

// Contains reports whether r is in the set.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of code points in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the elements of the set in increasing order.
func (s Set) Sorted() []rune {
	res := make([]rune, 0, len(s))
	for r := range s {
		res = append(res, r)
	}
	slices.Sort(res)
	return res
}

// String returns the elements of the set in increasing order.
func (s Set) String() string {
	var b strings.Builder
	for _, r := range s.Sorted() {
		b.WriteRune(r)
	}
	return b.String()
}

func (s Set) clone() Set {
	res := make(Set, len(s))
	for r := range s {
		res[r] = struct{}{}
	}
	return res
}
