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

// Package fontinfo reports which characters a font can display.
//
// Only the character map and the glyph names of the font are used.
// The information can be used to annotate or filter proofing output,
// it never changes which corpus lines are selected.
package fontinfo

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/charproof/charset"
)

// Info describes the character coverage of a font.
type Info struct {
	Name string

	runes  charset.Set
	glyphs map[string]glyph.ID
}

// ReadFile reads an OpenType or TrueType font from a file.
func ReadFile(fname string) (*Info, error) {
	f, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("fontinfo: %w", err)
	}
	return New(f)
}

// FromBytes reads an OpenType or TrueType font from memory.
func FromBytes(data []byte) (*Info, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontinfo: %w", err)
	}
	return New(f)
}

// New extracts the supported code points and glyph names from f.
func New(f *sfnt.Font) (*Info, error) {
	cmap, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("fontinfo: %s: %w", f.PostScriptName(), err)
	}

	info := &Info{
		Name:   f.PostScriptName(),
		runes:  charset.Set{},
		glyphs: make(map[string]glyph.ID),
	}

	low, high := cmap.CodeRange()
	for r := low; r <= high; r++ {
		if cmap.Lookup(r) != 0 {
			info.runes[r] = struct{}{}
		}
	}

	numGlyphs := f.NumGlyphs()
	for i := 1; i < numGlyphs; i++ {
		gid := glyph.ID(i)
		name := f.GlyphName(gid)
		if name == "" {
			continue
		}
		if _, seen := info.glyphs[name]; !seen {
			info.glyphs[name] = gid
		}
	}

	return info, nil
}

// Supports reports whether the font maps r to a glyph.  White space
// and control characters are always considered to be supported.
func (info *Info) Supports(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return true
	}
	return info.runes.Contains(r)
}

// SupportsText reports whether all characters in s are supported.
func (info *Info) SupportsText(s string) bool {
	for _, r := range s {
		if !info.Supports(r) {
			return false
		}
	}
	return true
}

// Runes returns the code points mapped by the font.
// The caller must not modify the returned set.
func (info *Info) Runes() charset.Set {
	return info.runes
}

// Missing returns the elements of set which are not supported,
// in increasing order.
func (info *Info) Missing(set charset.Set) []rune {
	var res []rune
	for _, r := range set.Sorted() {
		if !info.Supports(r) {
			res = append(res, r)
		}
	}
	return res
}

// SupportsSystem reports whether the font supports the lowercase
// alphabet of the given writing system.
func (info *Info) SupportsSystem(sys *charset.System) bool {
	alphabet := strings.ToLower(sys.Alphabet())
	if alphabet == "" {
		return false
	}
	return info.SupportsText(alphabet)
}

// HasGlyph reports whether the font contains a glyph with the given name.
func (info *Info) HasGlyph(name string) bool {
	_, ok := info.glyphs[name]
	return ok
}

// Unencoded reports whether the font contains a glyph for r, named
// according to the Adobe glyph list conventions, but the character map
// does not map r to any glyph.
func (info *Info) Unencoded(r rune) bool {
	if info.runes.Contains(r) {
		return false
	}
	return info.HasGlyph(names.FromUnicode(r))
}
