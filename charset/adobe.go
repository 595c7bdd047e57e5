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

import "github.com/go-text/typesetting/language"

// The tier listings below are the Adobe character sets, see
// https://github.com/adobe-type-tools/adobe-latin-charsets and the
// corresponding Cyrillic and Greek repositories.  Each listing is
// cumulative: it repeats all characters of the lower tiers.

// Adobe returns a registry with the Adobe Latin (lat), Cyrillic (cyr) and
// Greek (grk) character sets.  The registry is immutable; construct it once
// and pass it to the components which need it.
func Adobe() *Registry {
	reg, err := New(adobeLatin(), adobeCyrillic(), adobeGreek())
	if err != nil {
		panic("charset: invalid built-in tables: " + err.Error())
	}
	return reg
}

// doubleMapped lists code points which fonts commonly map to the same
// glyph.  The first entry of each cluster is used as the canonical form.
var doubleMapped = [][]rune{
	{0x0020, 0x00A0},         // SPACE | NO-BREAK SPACE
	{0x0060, 0x02CB},         // GRAVE ACCENT | MODIFIER LETTER GRAVE ACCENT
	{0x00B4, 0x02CA},         // ACUTE ACCENT | MODIFIER LETTER ACUTE ACCENT
	{0x00AF, 0x02C9},         // MACRON | MODIFIER LETTER MACRON
	{0x0394, 0x2206},         // GREEK CAPITAL LETTER DELTA | INCREMENT
	{0x03A9, 0x2126},         // GREEK CAPITAL LETTER OMEGA | OHM SIGN
	{0x03BC, 0x00B5},         // GREEK SMALL LETTER MU | MICRO SIGN
	{0x2018, 0x02BB},         // LEFT SINGLE QUOTATION MARK | MODIFIER LETTER TURNED COMMA
	{0x2019, 0x02BC},         // RIGHT SINGLE QUOTATION MARK | MODIFIER LETTER APOSTROPHE
	{0x2044, 0x2215},         // FRACTION SLASH | DIVISION SLASH
	{0x002D, 0x00AD, 0x2010}, // HYPHEN-MINUS | SOFT HYPHEN | HYPHEN
	{0x00B7, 0x2219},         // MIDDLE DOT | BULLET OPERATOR
	{0x003B, 0x037E},         // SEMICOLON | GREEK QUESTION MARK
}

func adobeLatin() Definition {
	return Definition{
		Tag:      "lat",
		Script:   language.Latin,
		BaseFile: "ASCII",
		Baseline: ascii,
		Alphabet: "abcdefghijklmnopqrstuvwxyz",
		Aliases:  doubleMapped,
		Tiers: []Listing{
			{Name: "AL1", Chars: al1},
			{Name: "AL2", Chars: al2},
			{Name: "AL3", Chars: al3},
			{Name: "AL4", Chars: al4},
			{Name: "AL5", Chars: al5},
		},
	}
}

// Latin text is expected to occur in Cyrillic and Greek text, so AL1 is
// part of the baseline there.  The combining grave and acute accents are
// used for stress marks in Cyrillic text but are not part of the AC sets.
func adobeCyrillic() Definition {
	return Definition{
		Tag:      "cyr",
		Script:   language.Cyrillic,
		Baseline: al1 + "\u0300\u0301",
		Alphabet: "абвгдежзийклмнопрстуфхцчшщъыьэюя",
		Aliases:  doubleMapped,
		Tiers: []Listing{
			{Name: "AC1", Chars: ac1},
			{Name: "AC2", Chars: ac2},
			{Name: "AC3", Chars: ac3},
		},
	}
}

func adobeGreek() Definition {
	return Definition{
		Tag:      "grk",
		Script:   language.Greek,
		Baseline: al1,
		Alphabet: "αβγδεζηθικλμνξοπρστυφχψως",
		Aliases:  doubleMapped,
		Tiers: []Listing{
			{Name: "AG1", Chars: ag1},
			{Name: "AG2", Chars: ag2},
		},
	}
}

const (
	ascii = "\u0020!\u0022#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLM" +
		"NOPQRSTUVWXYZ[\u005C]^_`abcdefghijklmnopqrstuvwxyz{|}~"

	al1 = "\u0020!\u0022#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLM" +
		"NOPQRSTUVWXYZ[\u005C]^_`abcdefghijklmnopqrstuvwxyz{|}~¡¢" +
		"£¤¥¦§¨©ª«¬®¯°±²³´µ¶·¸¹º»¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖ×ØÙÚÛ" +
		"ÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüýþÿıŁłŒœŠšŸŽžƒˆˇ˘˙˚˛˜˝–" +
		"—‘’‚“”„†‡•…‰‹›⁄€™−ﬁﬂ"

	al2 = "\u0020!\u0022#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLM" +
		"NOPQRSTUVWXYZ[\u005C]^_`abcdefghijklmnopqrstuvwxyz{|}~¡¢" +
		"£¤¥¦§¨©ª«¬\u00AD®¯°±²³´µ¶·¸¹º»¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕ" +
		"Ö×ØÙÚÛÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüýþÿıŁłŒœŠšŸŽžƒˆˇˉ" +
		"˘˙˚˛˜˝π–—‘’‚“”„†‡•…‰‹›⁄€ℓ™Ω℮∂∆∏∑−∕∙√∞∫≈≠≤≥◊ﬁﬂ"

	al3 = "\u0020!\u0022#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLM" +
		"NOPQRSTUVWXYZ[\u005C]^_`abcdefghijklmnopqrstuvwxyz{|}~¡¢" +
		"£¤¥¦§¨©ª«¬\u00AD®¯°±²³´µ¶·¸¹º»¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕ" +
		"Ö×ØÙÚÛÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüýþÿĀāĂăĄąĆćČčĎďĐđ" +
		"ĒēĖėĘęĚěĞğĢģĪīĮįİıĶķĹĺĻļĽľŁłŃńŅņŇňŌōŐőŒœŔŕŖŗŘřŚśŞşŠšŢţŤť" +
		"ŪūŮůŰűŲųŸŹźŻżŽžƒȘșȚțˆˇˉ˘˙˚˛˜˝π–—‘’‚“”„†‡•…‰‹›⁄€₺₽ℓ™Ω℮∂∆∏" +
		"∑−∕∙√∞∫≈≠≤≥◊ﬁﬂ"

	al4 = "\u0020!\u0022#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLM" +
		"NOPQRSTUVWXYZ[\u005C]^_`abcdefghijklmnopqrstuvwxyz{|}~\u00A0" +
		"¡¢£¤¥¦§¨©ª«¬\u00AD®¯°±²³´µ¶·¸¹º»¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓ" +
		"ÔÕÖ×ØÙÚÛÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüýþÿĀāĂăĄąĆćĈĉĊċ" +
		"ČčĎďĐđĒēĔĕĖėĘęĚěĜĝĞğĠġĢģĤĥĦħĨĩĪīĮįİıĴĵĶķĸĹĺĻļĽľĿŀŁłŃńŅņŇ" +
		"ňŉŌōŐőŒœŔŕŖŗŘřŚśŜŝŞşŠšŢţŤťŨũŪūŬŭŮůŰűŲųŴŵŶŷŸŹźŻżŽžƏƒƠơƯưǍ" +
		"ǎǏǐǑǒǓǔǕǖǗǘǙǚǛǜǦǧȘșȚțȷɑəɡʻʼʾʿˆˇˈˉˊˋˌ˘˙˚˛˜˝\u0300\u0301\u0302" +
		"\u0303\u0304\u0306\u0307\u0308\u0309\u030A\u030B\u030C\u031B" +
		"\u0323\u0324\u0326\u0327\u0328\u032E\u0331πḌḍḎḏḠḡḤḥḪḫḶḷḸ" +
		"ḹḺḻṂṃṄṅṆṇṈṉṚṛṜṝṞṟṠṡṢṣṬṭṮṯẀẁẂẃẄẅẎẏẒẓẗẞẠạẢảẤấẦầẨẩẪẫẬậẮắẰằẲ" +
		"ẳẴẵẶặẸẹẺẻẼẽẾếỀềỂểỄễỆệỈỉỊịỌọỎỏỐốỒồỔổỖỗỘộỚớỜờỞởỠỡỢợỤụỦủỨứỪ" +
		"ừỬửỮữỰựỲỳỴỵỶỷỸỹ\u2007‐‒–—―‘’‚“”„†‡•…‰′″‹›⁄⁰⁴⁵⁶⁷⁸⁹⁽⁾ⁿ₀₁₂₃" +
		"₄₅₆₇₈₉₍₎₡₤₦₧₫€₱₲₵₹₺₽ℓ℗℠™Ω℮⅓⅔⅛⅜⅝⅞←↑→↓∂∆∏∑−∕∙√∞∫≈≠≤≥■▲△▶▷▼" +
		"▽◀◁◆◊ﬁﬂ"

	al5 = "\u0020!\u0022#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLM" +
		"NOPQRSTUVWXYZ[\u005C]^_`abcdefghijklmnopqrstuvwxyz{|}~\u00A0" +
		"¡¢£¤¥¦§¨©ª«¬\u00AD®¯°±²³´µ¶·¸¹º»¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓ" +
		"ÔÕÖ×ØÙÚÛÜÝÞßàáâãäåæçèéêëìíîïðñòóôõö÷øùúûüýþÿĀāĂăĄąĆćĈĉĊċ" +
		"ČčĎďĐđĒēĔĕĖėĘęĚěĜĝĞğĠġĢģĤĥĦħĨĩĪīĬĭĮįİıĲĳĴĵĶķĸĹĺĻļĽľĿŀŁłŃ" +
		"ńŅņŇňŉŊŋŌōŎŏŐőŒœŔŕŖŗŘřŚśŜŝŞşŠšŢţŤťŦŧŨũŪūŬŭŮůŰűŲųŴŵŶŷŸŹźŻ" +
		"żŽžſƀƁƆƇƈƉƊƎƏƐƑƒƓƔƖƗƘƙƚƛƜƝƞƟƠơƤƥƩƬƭƮƯưƱƲƳƴƵƶƷƸƹǀǁǂǃǄǅǆǇǈ" +
		"ǉǊǋǌǍǎǏǐǑǒǓǔǕǖǗǘǙǚǛǜǝǞǟǠǡǢǣǤǥǦǧǨǩǪǫǬǭǮǯǰǱǲǳǴǵǸǹǺǻǼǽǾǿȀȁȂ" +
		"ȃȄȅȆȇȈȉȊȋȌȍȎȏȐȑȒȓȔȕȖȗȘșȚțȜȝȞȟȠȦȧȨȩȪȫȬȭȮȯȰȱȲȳȷȽɁɂɃɄɅɈɉɊɋɌ" +
		"ɍɎɏɐɑɒɓɔɕɖɗɘəɚɛɜɝɞɟɠɡɢɣɤɥɦɧɨɩɪɫɬɭɮɯɰɱɲɳɴɵɶɷɸɹɺɻɼɽɾɿʀʁʂʃʄ" +
		"ʅʆʇʈʉʊʋʌʍʎʏʐʑʒʓʔʕʖʗʘʙʚʛʜʝʞʟʠʡʢʣʤʥʦʧʨʩʪʫʬʭʮʯʰʱʲʳʴʵʶʷʸʹʺʻʼ" +
		"ʽʾʿˀˁ˂˃˄˅ˆˇˈˉˊˋˌˍˎˏːˑ˒˓˔˕˖˗˘˙˚˛˜˝˞˟ˠˡˢˣˤ˥˦˧˨˩˪˫ˬ˭ˮ˯˰˱˲˳˴" +
		"˵˶˷˸˹˺˻˼˽˾˿\u0300\u0301\u0302\u0303\u0304\u0305\u0306\u0307" +
		"\u0308\u0309\u030A\u030B\u030C\u030D\u030E\u030F\u0311\u0312" +
		"\u0313\u0314\u0315\u0316\u0317\u0318\u0319\u031A\u031B\u031C" +
		"\u031D\u031E\u031F\u0320\u0321\u0322\u0323\u0324\u0325\u0326" +
		"\u0327\u0328\u0329\u032A\u032B\u032C\u032D\u032E\u032F\u0330" +
		"\u0331\u0332\u0333\u0334\u0335\u0336\u0337\u0338\u0339\u033A" +
		"\u033B\u033C\u033D\u033E\u033F\u0340\u0341\u0342\u0343\u0344" +
		"\u0345\u0346\u0347\u0348\u0349\u034A\u034B\u034C\u034D\u034E" +
		"\u0350\u0351\u0352\u0353\u0354\u0355\u0356\u0357\u0358\u0359" +
		"\u035A\u035B\u035C\u035D\u035E\u035F\u0360\u0361\u0362\u0363" +
		"\u0364\u0365\u0366\u0367\u0368\u0369\u036A\u036B\u036C\u036D" +
		"\u036E\u036FΩβγθλπφχᴅᵚᵛᵝᵞᵠᵡᵻᵼᵽᶜᶞᶠᶨᶻᶿ\u1DC4\u1DC5\u1DC6\u1DC7" +
		"ḀḁḂḃḄḅḆḇḈḉḊḋḌḍḎḏḐḑḒḓḔḕḖḗḘḙḚḛḜḝḞḟḠḡḢḣḤḥḦḧḨḩḪḫḬḭḮḯḰḱḲḳḴḵḶḷ" +
		"ḸḹḺḻḼḽḾḿṀṁṂṃṄṅṆṇṈṉṊṋṌṍṎṏṐṑṒṓṔṕṖṗṘṙṚṛṜṝṞṟṠṡṢṣṤṥṦṧṨṩṪṫṬṭṮṯ" +
		"ṰṱṲṳṴṵṶṷṸṹṺṻṼṽṾṿẀẁẂẃẄẅẆẇẈẉẊẋẌẍẎẏẐẑẒẓẔẕẖẗẙẞẠạẢảẤấẦầẨẩẪẫẬậ" +
		"ẮắẰằẲẳẴẵẶặẸẹẺẻẼẽẾếỀềỂểỄễỆệỈỉỊịỌọỎỏỐốỒồỔổỖỗỘộỚớỜờỞởỠỡỢợỤụ" +
		"ỦủỨứỪừỬửỮữỰựỲỳỴỵỶỷỸỹ\u2007\u200C\u200D\u200E\u200F‐‑‒–—―" +
		"‖‗‘’‚‛“”„‟†‡•…‰′″‹›‼‾⁄⁰⁴⁵⁶⁷⁸⁹⁺⁻⁼⁽⁾ⁿ₀₁₂₃₄₅₆₇₈₉₍₎₊₋₌₡₣₤₦₧₨" +
		"₩₪₫€₭₮₰₱₲₳₵₹₺₽℅ℓ℗℞℠™Ω℮⅓⅔⅛⅜⅝⅞←↑→↓↔↕↨∂∆∏∑−∕∙√∞∟∩∫≈≠≡≤≥⌂⌐■□" +
		"▪▫▲△▶▷▼▽◀◁◆◉◊○◌●◦☐☑☺☻☼♀♂♠♣♥♦♪♫♬♾✓❒⟨⟩ⱢⱣⱤⱭⱮⱯⱰⱱⱲⱳ꞉꞊ꞋꞌꞍꞎꞪꞫꞬꞭ" +
		"ꞮꞰꞱꞲꞳꞴꞵꞶꞷꭓﬁﬂ\uFFFD"

	ac1 = "\u0020ЀЁЂЃЄЅІЇЈЉЊЋЌЍЎЏАБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯаб" +
		"вгдежзийклмнопрстуфхцчшщъыьэюяѐёђѓєѕіїјљњћќѝўџѢѣѲѳѴѵҐґ₴₽" +
		"№"

	ac2 = "\u0020ЀЁЂЃЄЅІЇЈЉЊЋЌЍЎЏАБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯаб" +
		"вгдежзийклмнопрстуфхцчшщъыьэюяѐёђѓєѕіїјљњћќѝўџѢѣѲѳѴѵҐґҒғ" +
		"ҖҗҘҙҚқҠҡҢңҪҫҮүҰұҲҳҶҷҺһӀӁӂӏӐӑӔӕӖӗӘәӢӣӦӧӨөӮӯӲӳ₮₴₸₽№"

	ac3 = "\u0020ЀЁЂЃЄЅІЇЈЉЊЋЌЍЎЏАБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯаб" +
		"вгдежзийклмнопрстуфхцчшщъыьэюяѐёђѓєѕіїјљњћќѝўџѢѣѪѫѲѳѴѵҐґ" +
		"ҒғҔҕҖҗҘҙҚқҜҝҞҟҠҡҢңҤҥҦҧҨҩҪҫҬҭҮүҰұҲҳҴҵҶҷҸҹҺһҼҽҾҿӀӁӂӋӌӏӐӑӒӓ" +
		"ӔӕӖӗӘәӜӝӞӟӠӡӢӣӤӥӦӧӨөӮӯӰӱӲӳӴӵӶӷӸӹԚԛԜԝԤԥ₮₴₸₽№"

	ag1 = "\u0020;΄΅Ά·ΈΉΊΌΎΏΐΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩΪΫάέήίΰαβγδεζη" +
		"θικλμνξοπρςστυφχψωϊϋόύώ"

	ag2 = "\u0020\u0342\u0343\u0344\u0345ʹ͵ͺ;΄΅Ά·ΈΉΊΌΎΏΐΑΒΓΔΕΖΗΘΙΚΛ" +
		"ΜΝΞΟΠΡΣΤΥΦΧΨΩΪΫάέήίΰαβγδεζηθικλμνξοπρςστυφχψωϊϋόύώϗἀἁἂἃἄ" +
		"ἅἆἇἈἉἊἋἌἍἎἏἐἑἒἓἔἕἘἙἚἛἜἝἠἡἢἣἤἥἦἧἨἩἪἫἬἭἮἯἰἱἲἳἴἵἶἷἸἹἺἻἼἽἾἿὀ" +
		"ὁὂὃὄὅὈὉὊὋὌὍὐὑὒὓὔὕὖὗὙὛὝὟὠὡὢὣὤὥὦὧὨὩὪὫὬὭὮὯὰάὲέὴήὶίὸόὺύὼώᾀᾁᾂ" +
		"ᾃᾄᾅᾆᾇᾈᾉᾊᾋᾌᾍᾎᾏᾐᾑᾒᾓᾔᾕᾖᾗᾘᾙᾚᾛᾜᾝᾞᾟᾠᾡᾢᾣᾤᾥᾦᾧᾨᾩᾪᾫᾬᾭᾮᾯᾰᾱᾲᾳᾴᾶᾷᾸᾹᾺΆ" +
		"ᾼ᾽ι᾿῀῁ῂῃῄῆῇῈΈῊΉῌ῍῎῏ῐῑῒΐῖῗῘῙῚΊ῝῞῟ῠῡῢΰῤῥῦῧῨῩῪΎῬ῭΅`ῲῳῴῶῷῸΌῺ" +
		"Ώῼ´῾"
)
