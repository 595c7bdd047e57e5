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
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/go-text/typesetting/language"
	"github.com/ulikunitz/xz"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/layout"
)

const toyBaseline = " .,0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func toySystem(t *testing.T) *charset.System {
	t.Helper()
	reg, err := charset.New(charset.Definition{
		Tag:      "toy",
		Script:   language.Latin,
		Baseline: toyBaseline,
		Tiers: []charset.Listing{
			{Name: "T1", Chars: "ÀÉ"},
			{Name: "T2", Chars: "ÀÉÖü"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	sys, err := reg.System("toy")
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func toyFS() fstest.MapFS {
	return fstest.MapFS{
		"T1.txt": {Data: []byte("ALPHA\r\nÀ and É appear here\n\n# comment\nALPHA\n")},
		"T2.txt": {Data: []byte("Österreich\nΩmega\nÖl über alles\n")},
	}
}

func TestLoad(t *testing.T) {
	sys := toySystem(t)
	c, err := Load(toyFS(), sys, nil)
	if err != nil {
		t.Fatal(err)
	}

	type summary struct {
		Text  string
		Runes string
		Tier  int
	}
	var got []summary
	for i, line := range c.Lines {
		if line.Index != i {
			t.Errorf("line %d has index %d", i, line.Index)
		}
		got = append(got, summary{line.Text, string(line.Runes), line.Tier})
	}
	want := []summary{
		{"ALPHA", "", 0},
		{"À and É appear here", "ÀÉ", 0},
		{"Österreich", "Ö", 1},
		{"Öl über alles", "Öü", 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", d)
	}

	if len(c.Dropped) != 1 {
		t.Fatalf("expected 1 dropped line, got %d", len(c.Dropped))
	}
	dropped := c.Dropped[0]
	if dropped.File != "T2.txt" || dropped.LineNo != 2 || string(dropped.Outside) != "Ω" {
		t.Errorf("wrong details for dropped line: %+v", dropped)
	}
	if dropped.Mixed == "" {
		t.Error("mixed writing system not flagged")
	}
}

func TestLoadMissingFiles(t *testing.T) {
	sys := toySystem(t)
	c, err := Load(fstest.MapFS{}, sys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Lines) != 0 {
		t.Errorf("got %d lines from an empty directory", len(c.Lines))
	}
}

func TestLoadXZ(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := xz.NewWriter(buf)
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Write([]byte("Österreich\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}

	fsys := fstest.MapFS{
		"T1.txt":    {Data: []byte("À and É appear here\n")},
		"T2.txt.xz": {Data: buf.Bytes()},
	}
	sys := toySystem(t)
	c, err := Load(fsys, sys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Lines) != 2 || c.Lines[1].Text != "Österreich" || c.Lines[1].File != "T2.txt.xz" {
		t.Errorf("compressed file not read correctly: %+v", c.Lines)
	}
}

func TestDigest(t *testing.T) {
	sys := toySystem(t)
	fsys := toyFS()
	c1, err := Load(fsys, sys, nil)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := Load(fsys, sys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c1.Digest != c2.Digest {
		t.Error("digest is not deterministic")
	}

	fsys["T2.txt"] = &fstest.MapFile{Data: []byte("Österreich\n")}
	c3, err := Load(fsys, sys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c1.Digest == c3.Digest {
		t.Error("digest does not depend on the content")
	}
}

// TestClassifyMinimal checks that the assigned tier is the unique minimal
// tier which covers a line.
func TestClassifyMinimal(t *testing.T) {
	reg := charset.Adobe()
	sys, err := reg.System("lat")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		text string
		tier string
	}{
		{"plain ASCII text", "AL1"},
		{"Ça va très bien", "AL1"},
		{"Pi is about 3.14, or π", "AL2"},
		{"Čeština je krásný jazyk", "AL3"},
		{"Việt Nam", "AL4"},
		{"ɓalé ŋgɔ", "AL5"},
	}
	for _, c := range cases {
		runes, tier, err := Classify(sys, c.text)
		if err != nil {
			t.Errorf("%q: %v", c.text, err)
			continue
		}
		if got := sys.TierName(tier); got != c.tier {
			t.Errorf("%q: got %s, want %s", c.text, got, c.tier)
		}

		cum := sys.Cumulative(tier)
		for _, r := range runes {
			if !cum.Contains(r) {
				t.Errorf("%q: %s not in %s", c.text, charset.Describe(r), c.tier)
			}
		}
		if tier > 0 {
			lower := sys.Cumulative(tier - 1)
			covered := true
			for _, r := range runes {
				covered = covered && lower.Contains(r)
			}
			if covered {
				t.Errorf("%q: tier %s is not minimal", c.text, c.tier)
			}
		}

		_, tier2, _ := Classify(sys, c.text)
		if tier2 != tier {
			t.Errorf("%q: classification is not deterministic", c.text)
		}
	}
}

func TestClassifyAliases(t *testing.T) {
	reg := charset.Adobe()
	sys, err := reg.System("lat")
	if err != nil {
		t.Fatal(err)
	}

	// soft hyphen and no-break space are baseline characters via their
	// canonical forms
	runes, tier, err := Classify(sys, "hy\u00ADphen\u00A0here")
	if err != nil {
		t.Fatal(err)
	}
	if len(runes) != 0 || tier != 0 {
		t.Errorf("got runes %q, tier %d", string(runes), tier)
	}
}

func TestClassifyUnclassifiable(t *testing.T) {
	reg := charset.Adobe()
	sys, err := reg.System("grk")
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = Classify(sys, "Καλημέρα Москва")
	var uErr *UnclassifiableLineError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected UnclassifiableLineError, got %v", err)
	}
	if uErr.Mixed == "" {
		t.Error("Cyrillic text in Greek corpus not flagged")
	}
	if !strings.Contains(uErr.Error(), "grk") {
		t.Errorf("unexpected message %q", uErr.Error())
	}
}

func TestCache(t *testing.T) {
	sys := toySystem(t)
	cache := NewCache(toyFS(), nil)

	var wg sync.WaitGroup
	results := make([]*Corpus, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := cache.Get(sys)
			if err != nil {
				t.Error(err)
			}
			results[i] = c
		}()
	}
	wg.Wait()

	for _, c := range results[1:] {
		if c != results[0] {
			t.Fatal("corpus loaded more than once")
		}
	}
}

func TestPool(t *testing.T) {
	sys := toySystem(t)
	c, err := Load(toyFS(), sys, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(c.Pool(0)); n != 2 {
		t.Errorf("T1 pool has %d lines", n)
	}
	if n := len(c.Pool(1)); n != 4 {
		t.Errorf("T2 pool has %d lines", n)
	}
}

func TestWords(t *testing.T) {
	sys := toySystem(t)
	fsys := fstest.MapFS{
		"T1.txt": {Data: []byte("Étage, Étage. À la\nÀ la Étage 42\n")},
	}
	c, err := Load(fsys, sys, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := c.Words()
	want := []string{"Étage", "À", "la"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected words (-want +got):\n%s", d)
	}
}

func TestCheck(t *testing.T) {
	sys := toySystem(t)
	fsys := fstest.MapFS{
		"T1.txt": {Data: []byte("À la carte\n")},
		"T2.txt": {Data: []byte("Öl\nÖsterreich\n")},
	}
	c, err := Load(fsys, sys, nil)
	if err != nil {
		t.Fatal(err)
	}

	r1 := c.Check(0)
	if r1.Tier != "T1" || r1.Lines != 1 || string(r1.Missing) != "É" {
		t.Errorf("T1: unexpected report %+v", r1)
	}
	r2 := c.Check(1)
	if r2.Lines != 3 || string(r2.Missing) != "ü" {
		t.Errorf("T2: unexpected report %+v", r2)
	}

	rare := c.Rare(1)
	want := []Occurrence{{Count: 1, Runes: []rune("À")}}
	if d := cmp.Diff(want, rare); d != "" {
		t.Errorf("unexpected rare characters (-want +got):\n%s", d)
	}
}

func TestReadText(t *testing.T) {
	in := "# heading comment\n\nfirst\nsecond\n\n\nthird\r\n"
	got, err := ReadText(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []layout.Line{
		{Text: "first"},
		{Text: "second"},
		{Text: "third", Break: true},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", d)
	}
}
