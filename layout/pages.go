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

// Package layout breaks sequences of text lines into pages.
package layout

import (
	"fmt"
	"unicode/utf8"
)

// Line is a single line of text to be placed on a page.
type Line struct {
	Text string

	// Break forces the line to start a new page.
	Break bool
}

// Kind selects how the size of a line is measured.
type Kind int

// These are the supported budget kinds.
const (
	Chars Kind = iota // count characters (runes)
	Lines             // count lines
)

func (k Kind) String() string {
	switch k {
	case Chars:
		return "chars"
	case Lines:
		return "lines"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts the output of [Kind.String] back into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "chars":
		return Chars, nil
	case "lines":
		return Lines, nil
	default:
		return 0, fmt.Errorf("layout: invalid budget kind %q", s)
	}
}

// Budget limits the amount of text on a single page.
// A Max of zero means that pages are unlimited.
type Budget struct {
	Kind Kind
	Max  int
}

// Size returns the amount of budget used by the given text.
func (b Budget) Size(text string) int {
	if b.Kind == Lines {
		return 1
	}
	return utf8.RuneCountInString(text)
}

func (b Budget) exceeds(total int) bool {
	return b.Max > 0 && total > b.Max
}

// Page is the list of lines on a single page.
type Page []string

// Paginate breaks a sequence of lines into pages.
//
// Lines are added to the current page until the next line would exceed
// the budget, or until a line with Break set is found.  A line which on
// its own exceeds the budget is placed on a page of its own.  The order of
// lines is preserved.
func Paginate(lines []Line, b Budget) []Page {
	var pages []Page
	var body Page
	var total int
	for _, line := range lines {
		h := b.Size(line.Text)
		if len(body) > 0 && (line.Break || b.exceeds(total+h)) {
			pages = append(pages, body)
			body = nil
			total = 0
		}
		body = append(body, line.Text)
		total += h
	}
	if len(body) > 0 {
		pages = append(pages, body)
	}
	return pages
}

// SinglePage returns the lines which fit onto the first page.  The
// remaining lines are discarded.  If the first line exceeds the budget
// on its own, the page consists of this line only.
func SinglePage(lines []Line, b Budget) Page {
	page := Page{}
	var total int
	for _, line := range lines {
		h := b.Size(line.Text)
		if len(page) > 0 && (line.Break || b.exceeds(total+h)) {
			break
		}
		page = append(page, line.Text)
		total += h
	}
	return page
}
