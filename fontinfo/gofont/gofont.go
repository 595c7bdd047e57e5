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

// Package gofont provides the Go font family as built-in fonts.
package gofont

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"seehuhn.de/go/charproof/fontinfo"
)

// Prefix marks font names which refer to the Go fonts, for example
// "go:regular".
const Prefix = "go:"

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular         Font = iota // Go Regular
	Bold                        // Go Semi Bold
	BoldItalic                  // Go Semi Bold Italic
	Italic                      // Go Italic
	Medium                      // Go Medium Regular
	MediumItalic                // Go Medium Italic
	Smallcaps                   // Go Smallcaps Regular
	SmallcapsItalic             // Go Smallcaps Italic
	Mono                        // Go Mono Regular
	MonoBold                    // Go Mono Semi Bold
	MonoBoldItalic              // Go Mono Semi Bold Italic
	MonoItalic                  // Go Mono Italic
)

var fontNames = map[Font]string{
	Regular:         "regular",
	Bold:            "bold",
	BoldItalic:      "bolditalic",
	Italic:          "italic",
	Medium:          "medium",
	MediumItalic:    "mediumitalic",
	Smallcaps:       "smallcaps",
	SmallcapsItalic: "smallcapsitalic",
	Mono:            "mono",
	MonoBold:        "monobold",
	MonoBoldItalic:  "monobolditalic",
	MonoItalic:      "monoitalic",
}

func (f Font) String() string {
	if name, ok := fontNames[f]; ok {
		return Prefix + name
	}
	return fmt.Sprintf("gofont.Font(%d)", int(f))
}

// Parse converts a name like "go:bold" into a Font.
// The second return value is false if name does not refer to a Go font.
func Parse(name string) (Font, bool) {
	rest, ok := strings.CutPrefix(strings.ToLower(name), Prefix)
	if !ok {
		return 0, false
	}
	for f, fName := range fontNames {
		if fName == rest {
			return f, true
		}
	}
	return 0, false
}

// Info returns the character coverage of the font.
func (f Font) Info() (*fontinfo.Info, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	return fontinfo.FromBytes(data)
}

// Load reads a font given either by a file name or by a Go font name.
func Load(name string) (*fontinfo.Info, error) {
	if f, ok := Parse(name); ok {
		return f.Info()
	}
	return fontinfo.ReadFile(name)
}

var ttf = map[Font][]byte{
	Bold:            gobold.TTF,
	BoldItalic:      gobolditalic.TTF,
	Italic:          goitalic.TTF,
	Medium:          gomedium.TTF,
	MediumItalic:    gomediumitalic.TTF,
	Regular:         goregular.TTF,
	Smallcaps:       gosmallcaps.TTF,
	SmallcapsItalic: gosmallcapsitalic.TTF,
	Mono:            gomono.TTF,
	MonoBold:        gomonobold.TTF,
	MonoBoldItalic:  gomonobolditalic.TTF,
	MonoItalic:      gomonoitalic.TTF,
}

// All contains all the Go font family fonts available in this package.
var All = []Font{
	Bold,
	BoldItalic,
	Italic,
	Medium,
	MediumItalic,
	Regular,
	Smallcaps,
	SmallcapsItalic,
	Mono,
	MonoBold,
	MonoBoldItalic,
	MonoItalic,
}
