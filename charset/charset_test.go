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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/go-text/typesetting/language"
)

func TestTiersDisjoint(t *testing.T) {
	reg := Adobe()
	for _, tag := range reg.Systems() {
		sys, err := reg.System(tag)
		if err != nil {
			t.Fatal(err)
		}

		union := Set{}
		for i := range sys.NumTiers() {
			for r := range sys.Introduced(i) {
				if _, dup := union[r]; dup {
					t.Errorf("%s: %s introduced twice", tag, Describe(r))
				}
				union[r] = struct{}{}
			}
		}

		full := sys.Full()
		if d := cmp.Diff(full.Sorted(), union.Sorted()); d != "" {
			t.Errorf("%s: union of tiers differs from full set (-want +got):\n%s", tag, d)
		}
	}
}

func TestCumulativeNested(t *testing.T) {
	reg := Adobe()
	sys, err := reg.System("lat")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < sys.NumTiers(); i++ {
		lower := sys.Cumulative(i - 1)
		upper := sys.Cumulative(i)
		for r := range lower {
			if !upper.Contains(r) {
				t.Errorf("%s missing from %s", Describe(r), sys.TierName(i))
			}
		}
		if upper.Len() != lower.Len()+sys.Introduced(i).Len() {
			t.Errorf("%s: wrong size %d", sys.TierName(i), upper.Len())
		}
	}
}

func TestAdobeLatin(t *testing.T) {
	reg := Adobe()

	al1, err := reg.TierCodePoints("lat", "AL1")
	if err != nil {
		t.Fatal(err)
	}
	if !al1.Contains('À') {
		t.Error("AL1 does not introduce À")
	}
	if al1.Contains('A') || al1.Contains(' ') {
		t.Error("AL1 contains baseline characters")
	}

	al3, err := reg.TierCodePoints("lat", "al3")
	if err != nil {
		t.Fatal(err)
	}
	if !al3.Contains('Ā') || al3.Contains('À') {
		t.Error("wrong code points introduced at AL3")
	}

	cum, err := reg.Cumulative("lat", "AL3")
	if err != nil {
		t.Fatal(err)
	}
	if !cum.Contains('À') || !cum.Contains('Ā') || cum.Contains('ẞ') {
		t.Error("wrong cumulative set for AL3")
	}
}

func TestAliases(t *testing.T) {
	reg := Adobe()
	sys, err := reg.System("lat")
	if err != nil {
		t.Fatal(err)
	}

	if c := sys.Canonical('\u00AD'); c != '-' {
		t.Errorf("soft hyphen maps to %q", c)
	}
	if !sys.IsBaseline(sys.Canonical('\u00A0')) {
		t.Error("no-break space is not part of the baseline")
	}
	if !sys.IsBaseline('\u2009') {
		t.Error("thin space is not part of the baseline")
	}
	idx, ok := sys.TierOf(sys.Canonical('\u2126'))
	if !ok || sys.TierName(idx) != "AL2" {
		t.Errorf("ohm sign: got tier %d, %t", idx, ok)
	}
}

func TestCyrillicBaseline(t *testing.T) {
	reg := Adobe()
	sys, err := reg.System("cyr")
	if err != nil {
		t.Fatal(err)
	}
	if sys.Script() != language.Cyrillic {
		t.Errorf("wrong script %s", sys.Script())
	}
	for _, r := range "É\u0301" {
		if !sys.IsBaseline(r) {
			t.Errorf("%s is not part of the Cyrillic baseline", Describe(r))
		}
	}
	if idx, ok := sys.TierOf('Ж'); !ok || idx != 0 {
		t.Errorf("Ж: got tier %d, %t", idx, ok)
	}
}

func TestGreekMu(t *testing.T) {
	reg := Adobe()
	grk, err := reg.System("grk")
	if err != nil {
		t.Fatal(err)
	}
	if grk.Script() != language.Greek {
		t.Errorf("wrong script %s", grk.Script())
	}

	ag1, err := reg.TierCodePoints("grk", "AG1")
	if err != nil {
		t.Fatal(err)
	}
	if !ag1.Contains('\u03BC') {
		t.Error("GREEK SMALL LETTER MU missing from AG1")
	}
	if grk.IsBaseline('\u03BC') {
		t.Error("GREEK SMALL LETTER MU is part of the Greek baseline")
	}
	if !grk.IsBaseline('\u00B5') {
		t.Error("MICRO SIGN is not part of the Greek baseline")
	}

	// In Cyrillic text, MICRO SIGN and MU are both baseline characters.
	cyr, err := reg.System("cyr")
	if err != nil {
		t.Fatal(err)
	}
	if !cyr.IsBaseline(cyr.Canonical('\u00B5')) {
		t.Error("MICRO SIGN is not part of the Cyrillic baseline")
	}
}

func TestUnknown(t *testing.T) {
	reg := Adobe()

	_, err := reg.TierCodePoints("lat", "AL9")
	var tierErr *UnknownTierError
	if !errors.As(err, &tierErr) {
		t.Fatalf("expected UnknownTierError, got %v", err)
	}
	if tierErr.Tier != "AL9" || tierErr.System != "lat" {
		t.Errorf("wrong error details: %v", tierErr)
	}

	_, err = reg.Cumulative("lat", "AC1")
	if !errors.As(err, &tierErr) {
		t.Errorf("expected UnknownTierError, got %v", err)
	}

	_, err = reg.System("arab")
	var sysErr *UnknownSystemError
	if !errors.As(err, &sysErr) {
		t.Errorf("expected UnknownSystemError, got %v", err)
	}
}

func TestNew(t *testing.T) {
	reg, err := New(Definition{
		Tag:      "toy",
		Baseline: " ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
		Tiers: []Listing{
			{Name: "T1", Chars: "ÀÉ"},
			{Name: "T2", Chars: "ÀÉÖ"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	t2, err := reg.TierCodePoints("toy", "T2")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("Ö", t2.String()); d != "" {
		t.Errorf("T2 (-want +got):\n%s", d)
	}

	_, err = New(Definition{
		Tag:   "bad",
		Tiers: []Listing{{Name: "T1"}, {Name: "t1"}},
	})
	if err == nil {
		t.Error("duplicate tier names not detected")
	}

	_, err = New(Definition{Tag: "empty"})
	if err == nil {
		t.Error("missing tiers not detected")
	}
}

func TestDescribe(t *testing.T) {
	got := Describe('À')
	want := "À U+00C0 LATIN CAPITAL LETTER A WITH GRAVE"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
