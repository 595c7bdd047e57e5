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

package accent

// atomic lists letters which are treated as distinct letters in their own
// right, even though they have no canonical decomposition into a base
// letter and a combining mark.  Each letter is mapped to the lowercase
// representative of its group.
var atomic = map[rune]rune{
	'Æ': 'æ', 'æ': 'æ',
	'Ð': 'ð', 'ð': 'ð',
	'Ø': 'ø', 'ø': 'ø',
	'Þ': 'þ', 'þ': 'þ',
	'ẞ': 'ß', 'ß': 'ß',
	'Đ': 'đ', 'đ': 'đ',
	'Ħ': 'ħ', 'ħ': 'ħ',
	'ı': 'ı',
	'Ĳ': 'ĳ', 'ĳ': 'ĳ',
	'ĸ': 'ĸ',
	'Ŀ': 'ŀ', 'ŀ': 'ŀ',
	'Ł': 'ł', 'ł': 'ł',
	'ŉ': 'ŉ',
	'Ŋ': 'ŋ', 'ŋ': 'ŋ',
	'Œ': 'œ', 'œ': 'œ',
	'Ŧ': 'ŧ', 'ŧ': 'ŧ',
	'ſ': 'ſ',
	'Ƒ': 'ƒ', 'ƒ': 'ƒ',
	'Ǝ': 'ǝ', 'ǝ': 'ǝ',
	'Ə': 'ə', 'ə': 'ə',
	'Ɛ': 'ɛ', 'ɛ': 'ɛ',
	'Ɔ': 'ɔ', 'ɔ': 'ɔ',
	'Ɲ': 'ɲ', 'ɲ': 'ɲ',
	'Ʒ': 'ʒ', 'ʒ': 'ʒ',
	'ȷ': 'ȷ',
}

const longS = 'ſ'

// extra lists additional example words for some accents.  The words are
// shown when a group contains one of the trigger letters.  For the caron,
// the lowercase forms ď, ľ and ť take an apostrophe-like shape, which
// needs its own examples.
var extra = map[string]struct {
	trigger string
	words   []string
}{
	"\u030C": {trigger: "ďľť", words: []string{"neďeľné", "šťastný"}},
}
