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

// Package accent groups the letters of a writing system by their accents
// and finds example words for each accent.
//
// Letters are decomposed into a base letter followed by combining marks,
// using the canonical decomposition.  All letters with the same sequence
// of combining marks form one group.  Letters like æ or ł, which have no
// decomposition, are taken from a fixed list and each form a group of
// their own, shared by the uppercase and lowercase forms.
package accent

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/fontinfo"
	"seehuhn.de/go/charproof/internal/logging"
)

// Options control the grouping.
type Options struct {
	// Font, if set, restricts the groups to letters supported by the font.
	// Example words must then be renderable with the font.
	Font *fontinfo.Info

	Logger *slog.Logger
}

// Case identifies the context in which an example word shows an accent.
type Case int

// These are the two contexts for example words.
const (
	LowerCase Case = iota
	UpperCase
)

func (c Case) String() string {
	switch c {
	case LowerCase:
		return "lowercase"
	case UpperCase:
		return "uppercase"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Group is the set of letters which share an accent.
type Group struct {
	// Key is the sequence of combining marks shared by all members.  For
	// letters from the list of atomic letters, Key is the lowercase form
	// of the letter.
	Key string

	// Name is the Unicode name of the key.
	Name string

	Atomic bool

	// Members lists the letters of the group, in increasing order.
	Members []rune

	// Glyphs gives the glyph names of the members.
	Glyphs []string

	Upper string // example word showing an uppercase member
	Lower string // example word showing a lowercase member

	// Extra holds additional example words for letters whose shape
	// differs from the other members, like the apostrophe-style caron.
	Extra []string

	// Missing lists the contexts for which no example word was found.
	Missing []Case
}

// Result is the outcome of [Collect].
type Result struct {
	System string
	Groups []*Group
}

// Collect finds the accent groups of a writing system and chooses example
// words from words, which should be ordered by decreasing frequency.
//
// Groups for which not all example words could be found are still
// included in the result.  [Result.Err] reports these groups.
func Collect(sys *charset.System, words []string, opt *Options) *Result {
	if opt == nil {
		opt = &Options{}
	}
	logger := logging.OrDiscard(opt.Logger).With("system", sys.Tag())

	groups := make(map[string]*Group)
	for _, r := range sys.Full().Sorted() {
		if opt.Font != nil && !opt.Font.Supports(r) {
			continue
		}
		key, isAtomic := classify(r)
		if key == "" {
			continue
		}
		g := groups[key]
		if g == nil {
			g = &Group{
				Key:    key,
				Name:   keyName(key),
				Atomic: isAtomic,
			}
			groups[key] = g
		}
		g.Members = append(g.Members, r)
		g.Glyphs = append(g.Glyphs, names.FromUnicode(r))
	}

	res := &Result{System: sys.Tag()}
	for _, g := range groups {
		res.Groups = append(res.Groups, g)
	}
	slices.SortFunc(res.Groups, func(a, b *Group) int {
		if a.Atomic != b.Atomic {
			if a.Atomic {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Key, b.Key)
	})

	s := &searcher{
		font:  opt.Font,
		upper: cases.Upper(language.Und),
	}
	for _, g := range res.Groups {
		s.fill(g, words)
		if len(g.Missing) > 0 {
			logger.Debug("incomplete accent group",
				"accent", g.Name, "missing", fmt.Sprint(g.Missing))
		}
	}

	return res
}

// classify returns the group key for a letter.  The empty string is
// returned for code points which do not carry an accent.
func classify(r rune) (string, bool) {
	if rep, ok := atomic[r]; ok {
		return string(rep), true
	}

	d := []rune(norm.NFD.String(string(r)))
	if len(d) < 2 || !unicode.IsLetter(d[0]) {
		return "", false
	}
	for _, m := range d[1:] {
		if !unicode.Is(unicode.Mn, m) {
			return "", false
		}
	}
	return string(d[1:]), false
}

func keyName(key string) string {
	var parts []string
	for _, r := range key {
		parts = append(parts, runenames.Name(r))
	}
	return strings.Join(parts, " + ")
}

type searcher struct {
	font  *fontinfo.Info
	upper cases.Caser
}

func (s *searcher) fill(g *Group, words []string) {
	var upper, lower []rune
	for _, r := range g.Members {
		switch {
		case unicode.IsUpper(r):
			upper = append(upper, r)
		case unicode.IsLower(r):
			lower = append(lower, r)
		}
	}

	if len(lower) > 0 {
		g.Lower = s.find(words, lower, g.Key == string(longS))
	}
	if len(upper) > 0 {
		g.Upper = s.find(words, upper, false)
		if g.Upper == "" && g.Lower != "" {
			candidate := s.upper.String(g.Lower)
			if containsAny(candidate, upper) && s.renderable(candidate) {
				g.Upper = candidate
			}
		}
	}

	if e, ok := extra[g.Key]; ok && containsAny(e.trigger, g.Members) {
		for _, word := range e.words {
			if showsOnly(word, g) && s.renderable(word) {
				g.Extra = append(g.Extra, word)
			}
		}
	}

	if g.Lower == "" && len(lower) > 0 {
		g.Missing = append(g.Missing, LowerCase)
	}
	if g.Upper == "" && needsUpper(upper) {
		g.Missing = append(g.Missing, UpperCase)
	}
}

// needsUpper reports whether an uppercase example is required.  This is
// the case if some uppercase member is the regular uppercase form of a
// lowercase letter.  Letters like ẞ, whose lowercase form is normally
// uppercased differently, do not require an example.
func needsUpper(upper []rune) bool {
	for _, r := range upper {
		if unicode.ToUpper(unicode.ToLower(r)) == r {
			return true
		}
	}
	return false
}

// find returns the first word which contains one of the given letters.
// If longS is set, the word is instead searched for a non-final s, and all
// non-final letters s are replaced by ſ.
func (s *searcher) find(words []string, members []rune, longS bool) string {
	for _, word := range words {
		word = norm.NFC.String(word)
		if longS {
			var ok bool
			word, ok = substituteLongS(word)
			if !ok {
				continue
			}
		} else if !containsAny(word, members) {
			continue
		}
		if s.renderable(word) {
			return word
		}
	}
	return ""
}

func (s *searcher) renderable(word string) bool {
	return s.font == nil || s.font.SupportsText(word)
}

// showsOnly reports whether all letters of word which carry the accent of g
// are members of g.
func showsOnly(word string, g *Group) bool {
	found := false
	for _, r := range word {
		if key, _ := classify(r); key != g.Key {
			continue
		}
		if !slices.Contains(g.Members, r) {
			return false
		}
		found = true
	}
	return found
}

func containsAny(word string, members []rune) bool {
	return strings.ContainsFunc(word, func(r rune) bool {
		return slices.Contains(members, r)
	})
}

// substituteLongS replaces every letter s which is followed by another
// letter with ſ.  The second return value reports whether any
// substitution was made.
func substituteLongS(word string) (string, bool) {
	rr := []rune(word)
	changed := false
	for i := 0; i < len(rr)-1; i++ {
		if rr[i] == 's' && unicode.IsLetter(rr[i+1]) {
			rr[i] = longS
			changed = true
		}
	}
	return string(rr), changed
}

// Err returns an error which lists all groups with missing examples,
// or nil if all groups are complete.  The returned error joins one
// *NoExampleError per incomplete group.
func (res *Result) Err() error {
	var errs []error
	for _, g := range res.Groups {
		if len(g.Missing) == 0 {
			continue
		}
		errs = append(errs, &NoExampleError{
			System:  res.System,
			Key:     g.Key,
			Name:    g.Name,
			Missing: g.Missing,
		})
	}
	return errors.Join(errs...)
}

// Complete returns the groups which have all required example words.
func (res *Result) Complete() []*Group {
	var out []*Group
	for _, g := range res.Groups {
		if len(g.Missing) == 0 {
			out = append(out, g)
		}
	}
	return out
}

// NoExampleError is used when the word list contains no suitable example
// word for an accent group.
type NoExampleError struct {
	System  string
	Key     string
	Name    string
	Missing []Case
}

func (err *NoExampleError) Error() string {
	var cc []string
	for _, c := range err.Missing {
		cc = append(cc, c.String())
	}
	return fmt.Sprintf("accent: %s: no %s example for %s",
		err.System, strings.Join(cc, " or "), err.Name)
}
