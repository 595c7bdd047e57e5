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

// Package charset implements registries of tiered character sets.
//
// A writing system (for example "lat" for Latin) has a sequence of tiers
// (AL1 < AL2 < ... < AL5).  Every code point of the writing system is
// introduced at exactly one tier, and the cumulative set of a tier is the
// union of the code points introduced at this tier and all lower tiers.
// Code points in the baseline of a writing system, like ASCII letters and
// spaces, are assumed to be always available and belong to no tier.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/xdg-go/stringprep"
)

// Listing gives the characters of a single tier.  The listing may repeat
// characters of lower tiers.
type Listing struct {
	Name  string
	Chars string
}

// Definition describes a writing system for use with [New].
type Definition struct {
	// Tag identifies the writing system, e.g. "lat".
	Tag string

	// Script is the Unicode script of the writing system.
	Script language.Script

	// BaseFile, if set, names an extra corpus file which is read before
	// the tier files.
	BaseFile string

	// Baseline lists characters which are always available.
	Baseline string

	// Alphabet is a lowercase alphabet, used to test whether a font
	// supports the writing system at all.
	Alphabet string

	// Aliases lists clusters of code points which are treated as
	// equivalent.  The first entry of each cluster is canonical.
	Aliases [][]rune

	// Tiers lists the tiers in increasing order.
	Tiers []Listing
}

// Registry holds a fixed set of writing systems.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	systems map[string]*System
	tags    []string
}

// New constructs a registry from the given definitions.
func New(defs ...Definition) (*Registry, error) {
	reg := &Registry{
		systems: make(map[string]*System, len(defs)),
	}
	for _, def := range defs {
		if def.Tag == "" {
			return nil, errors.New("charset: missing writing system tag")
		}
		tag := strings.ToLower(def.Tag)
		if _, dup := reg.systems[tag]; dup {
			return nil, fmt.Errorf("charset: duplicate writing system %q", def.Tag)
		}
		sys, err := newSystem(tag, def)
		if err != nil {
			return nil, err
		}
		reg.systems[tag] = sys
		reg.tags = append(reg.tags, tag)
	}
	return reg, nil
}

// Systems returns the tags of all writing systems, in definition order.
func (reg *Registry) Systems() []string {
	return append([]string(nil), reg.tags...)
}

// System returns the writing system with the given tag.
func (reg *Registry) System(tag string) (*System, error) {
	sys, ok := reg.systems[strings.ToLower(tag)]
	if !ok {
		return nil, &UnknownSystemError{System: tag}
	}
	return sys, nil
}

// TierCodePoints returns the code points introduced at the given tier.
// Code points of lower tiers are not included.
func (reg *Registry) TierCodePoints(ws, tier string) (Set, error) {
	sys, err := reg.System(ws)
	if err != nil {
		return nil, err
	}
	idx, err := sys.TierIndex(tier)
	if err != nil {
		return nil, err
	}
	return sys.Introduced(idx), nil
}

// Cumulative returns the union of the code points introduced at all tiers
// up to and including the given tier.
func (reg *Registry) Cumulative(ws, tier string) (Set, error) {
	sys, err := reg.System(ws)
	if err != nil {
		return nil, err
	}
	idx, err := sys.TierIndex(tier)
	if err != nil {
		return nil, err
	}
	return sys.Cumulative(idx), nil
}

// System is a writing system together with its tiers.
type System struct {
	tag      string
	script   language.Script
	baseFile string
	alphabet string

	names      []string
	introduced []Set
	tierOf     map[rune]int
	baseline   Set
	canonical  map[rune]rune
}

func newSystem(tag string, def Definition) (*System, error) {
	if len(def.Tiers) == 0 {
		return nil, fmt.Errorf("charset: writing system %q has no tiers", tag)
	}

	sys := &System{
		tag:       tag,
		script:    def.Script,
		baseFile:  def.BaseFile,
		alphabet:  def.Alphabet,
		tierOf:    make(map[rune]int),
		baseline:  Set{'\t': {}, '\n': {}, '\r': {}},
		canonical: make(map[rune]rune),
	}
	for _, cluster := range def.Aliases {
		for _, r := range cluster[1:] {
			sys.canonical[r] = cluster[0]
		}
	}
	for _, r := range def.Baseline {
		// Look-alikes of own letters, like MICRO SIGN for Greek, stay
		// distinct from the letter.
		c := sys.Canonical(r)
		if c != r && language.LookupScript(c) == sys.script {
			c = r
		}
		sys.baseline[c] = struct{}{}
	}

	for i, tier := range def.Tiers {
		name := strings.ToUpper(tier.Name)
		for _, prev := range sys.names {
			if prev == name {
				return nil, fmt.Errorf("charset: %s: duplicate tier %q", tag, name)
			}
		}
		sys.names = append(sys.names, name)

		introduced := Set{}
		for _, r := range tier.Chars {
			r = sys.Canonical(r)
			if sys.IsBaseline(r) {
				continue
			}
			if _, seen := sys.tierOf[r]; seen {
				continue
			}
			sys.tierOf[r] = i
			introduced[r] = struct{}{}
		}
		sys.introduced = append(sys.introduced, introduced)
	}
	return sys, nil
}

// Tag returns the tag of the writing system, e.g. "lat".
func (sys *System) Tag() string {
	return sys.tag
}

// Script returns the Unicode script of the writing system.
func (sys *System) Script() language.Script {
	return sys.script
}

// BaseFile returns the name of the corpus file which holds text using only
// baseline characters.  The result is empty if there is no such file.
func (sys *System) BaseFile() string {
	return sys.baseFile
}

// Alphabet returns the lowercase alphabet of the writing system.
func (sys *System) Alphabet() string {
	return sys.alphabet
}

// Tiers returns the tier names in increasing order.
func (sys *System) Tiers() []string {
	return append([]string(nil), sys.names...)
}

// NumTiers returns the number of tiers.
func (sys *System) NumTiers() int {
	return len(sys.names)
}

// TierName returns the name of the tier with the given index.
func (sys *System) TierName(idx int) string {
	return sys.names[idx]
}

// TierIndex returns the position of the named tier.  Tier names are
// matched case-insensitively.
func (sys *System) TierIndex(name string) (int, error) {
	for i, n := range sys.names {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return 0, &UnknownTierError{System: sys.tag, Tier: name}
}

// TierOf returns the index of the tier which introduces r.
// The rune must already be in canonical form.
func (sys *System) TierOf(r rune) (int, bool) {
	idx, ok := sys.tierOf[r]
	return idx, ok
}

// Introduced returns the code points introduced at tier idx.
func (sys *System) Introduced(idx int) Set {
	return sys.introduced[idx].clone()
}

// Cumulative returns the code points of all tiers up to and including idx.
func (sys *System) Cumulative(idx int) Set {
	res := Set{}
	for i := 0; i <= idx && i < len(sys.introduced); i++ {
		for r := range sys.introduced[i] {
			res[r] = struct{}{}
		}
	}
	return res
}

// Full returns the cumulative set of the highest tier.
func (sys *System) Full() Set {
	return sys.Cumulative(len(sys.introduced) - 1)
}

// IsBaseline reports whether r is always available in this writing system.
// Non-ASCII space characters (RFC 3454, table C.1.2) are always part of
// the baseline.
func (sys *System) IsBaseline(r rune) bool {
	if sys.baseline.Contains(r) {
		return true
	}
	return stringprep.TableC1_2.Contains(r)
}

// Canonical maps double-mapped code points to their canonical form.
func (sys *System) Canonical(r rune) rune {
	if c, ok := sys.canonical[r]; ok {
		return c
	}
	return r
}
