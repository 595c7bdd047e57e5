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
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/runenames"
)

// UnknownSystemError is returned when a writing system tag is not
// registered.
type UnknownSystemError struct {
	System string
}

func (err *UnknownSystemError) Error() string {
	return "charset: unknown writing system " + strconv.Quote(err.System)
}

// UnknownTierError is returned when a tier name is not registered for a
// writing system.
type UnknownTierError struct {
	System string
	Tier   string
}

func (err *UnknownTierError) Error() string {
	return "charset: unknown tier " + strconv.Quote(err.Tier) +
		" for writing system " + strconv.Quote(err.System)
}

// Describe returns a one-line description of r, consisting of the
// character itself, its code point and its Unicode name.
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		name = "XXXX"
	}
	return fmt.Sprintf("%c U+%04X %s", r, r, name)
}
