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

package buildinfo

import "testing"

func TestLabel(t *testing.T) {
	cases := []struct {
		info Info
		want string
	}{
		{Info{Version: "v0.2.0", Revision: "0123456789abcdef"}, "v0.2.0"},
		{Info{Revision: "0123456789abcdef"}, "01234567"},
		{Info{Revision: "abc", Dirty: true}, "abc+dirty"},
		{Info{}, ""},
	}
	for _, test := range cases {
		if got := test.info.Label(); got != test.want {
			t.Errorf("%+v: got %q, want %q", test.info, got, test.want)
		}
	}
}

func TestShort(t *testing.T) {
	got := Short("charproof")
	if len(got) < len("charproof") || got[:len("charproof")] != "charproof" {
		t.Errorf("Short() = %q", got)
	}
}
