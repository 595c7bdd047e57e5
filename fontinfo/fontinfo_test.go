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

package fontinfo_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/charproof/charset"
	"seehuhn.de/go/charproof/fontinfo"
)

func TestGoRegular(t *testing.T) {
	info, err := fontinfo.FromBytes(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	if !info.Supports('A') {
		t.Error("A not supported")
	}
	if info.Supports('漢') {
		t.Error("unexpected support for CJK ideographs")
	}
	if !info.Supports('\n') || !info.Supports('\t') {
		t.Error("white space should always be supported")
	}

	if !info.SupportsText("Hello, World!") {
		t.Error("ASCII text not supported")
	}
	if info.SupportsText("Kanji 漢字") {
		t.Error("CJK text supported")
	}

	got := info.Missing(charset.NewSet("AB漢字"))
	if d := cmp.Diff([]rune{'字', '漢'}, got); d != "" {
		t.Errorf("unexpected missing characters (-want +got):\n%s", d)
	}

	lat, err := charset.Adobe().System("lat")
	if err != nil {
		t.Fatal(err)
	}
	if !info.SupportsSystem(lat) {
		t.Error("Latin alphabet not supported")
	}

	if info.Unencoded('A') {
		t.Error("A is encoded")
	}
	if info.Runes().Len() < 256 {
		t.Errorf("only %d code points mapped", info.Runes().Len())
	}
}

func TestFromBytesInvalid(t *testing.T) {
	_, err := fontinfo.FromBytes([]byte("not a font"))
	if err == nil {
		t.Error("invalid font data accepted")
	}
}
