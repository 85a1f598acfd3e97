package uniprop

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// Embedded property tables, emitted by ./internal/generator from the
// Unicode Character Database files UnicodeData.txt, Blocks.txt, Scripts.txt,
// ArabicShaping.txt, BidiBrackets.txt, BidiMirroring.txt,
// CompositionExclusions.txt, DerivedCoreProperties.txt, emoji-data.txt,
// IndicSyllabicCategory.txt, IndicPositionalCategory.txt,
// GraphemeBreakProperty.txt, WordBreakProperty.txt and LineBreak.txt.

// Version is the Unicode Character Database release all embedded tables
// and enumeration values are derived from. It is a compatibility contract:
// moving to another release changes raw discriminant values and table
// content and is a breaking change, never a silent update.
const Version = "15.0.0"

// Scripts, ordered as emitted by the generator: the Unknown/Common/Inherited
// specials first, then alphabetically.
const (
	Unknown Script = iota
	Common
	Inherited
	Adlam
	Arabic
	Armenian
	Bengali
	Bopomofo
	Cherokee
	Cyrillic
	Devanagari
	Ethiopic
	Georgian
	Greek
	Gujarati
	Gurmukhi
	Han
	Hangul
	Hebrew
	Hiragana
	Javanese
	Kannada
	Katakana
	Khmer
	Lao
	Latin
	Malayalam
	Mandaic
	Manichaean
	Mongolian
	Myanmar
	Nko
	Oriya
	PhagsPa
	PsalterPahlavi
	Sinhala
	Syriac
	Tamil
	Telugu
	Thaana
	Thai
	Tibetan
	Vai
	Yi
)

var scriptNames = [...]string{
	"Unknown",
	"Common",
	"Inherited",
	"Adlam",
	"Arabic",
	"Armenian",
	"Bengali",
	"Bopomofo",
	"Cherokee",
	"Cyrillic",
	"Devanagari",
	"Ethiopic",
	"Georgian",
	"Greek",
	"Gujarati",
	"Gurmukhi",
	"Han",
	"Hangul",
	"Hebrew",
	"Hiragana",
	"Javanese",
	"Kannada",
	"Katakana",
	"Khmer",
	"Lao",
	"Latin",
	"Malayalam",
	"Mandaic",
	"Manichaean",
	"Mongolian",
	"Myanmar",
	"Nko",
	"Oriya",
	"Phags_Pa",
	"Psalter_Pahlavi",
	"Sinhala",
	"Syriac",
	"Tamil",
	"Telugu",
	"Thaana",
	"Thai",
	"Tibetan",
	"Vai",
	"Yi",
}

var scriptTags = [...]Tag{
	0x7A7A7A7A, // Unknown         "zzzz"
	0x7A797979, // Common          "zyyy"
	0x7A696E68, // Inherited       "zinh"
	0x61646C6D, // Adlam           "adlm"
	0x61726162, // Arabic          "arab"
	0x61726D6E, // Armenian        "armn"
	0x62656E67, // Bengali         "beng"
	0x626F706F, // Bopomofo        "bopo"
	0x63686572, // Cherokee        "cher"
	0x6379726C, // Cyrillic        "cyrl"
	0x64657661, // Devanagari      "deva"
	0x65746869, // Ethiopic        "ethi"
	0x67656F72, // Georgian        "geor"
	0x6772656B, // Greek           "grek"
	0x67756A72, // Gujarati        "gujr"
	0x67757275, // Gurmukhi        "guru"
	0x68616E69, // Han             "hani"
	0x68616E67, // Hangul          "hang"
	0x68656272, // Hebrew          "hebr"
	0x6B616E61, // Hiragana        "kana"
	0x6A617661, // Javanese        "java"
	0x6B6E6461, // Kannada         "knda"
	0x6B616E61, // Katakana        "kana"
	0x6B686D72, // Khmer           "khmr"
	0x6C616F20, // Lao             "lao "
	0x6C61746E, // Latin           "latn"
	0x6D6C796D, // Malayalam       "mlym"
	0x6D616E64, // Mandaic         "mand"
	0x6D616E69, // Manichaean      "mani"
	0x6D6F6E67, // Mongolian       "mong"
	0x6D796D72, // Myanmar         "mymr"
	0x6E6B6F20, // Nko             "nko "
	0x6F727961, // Oriya           "orya"
	0x70686167, // Phags_Pa        "phag"
	0x70686C70, // Psalter_Pahlavi "phlp"
	0x73696E68, // Sinhala         "sinh"
	0x73797263, // Syriac          "syrc"
	0x74616D6C, // Tamil           "taml"
	0x74656C75, // Telugu          "telu"
	0x74686161, // Thaana          "thaa"
	0x74686169, // Thai            "thai"
	0x74696274, // Tibetan         "tibt"
	0x76616920, // Vai             "vai "
	0x79692020, // Yi              "yi  "
}

var scriptComplexity = [...]bool{
	false, // Unknown
	false, // Common
	false, // Inherited
	true,  // Adlam
	true,  // Arabic
	false, // Armenian
	true,  // Bengali
	false, // Bopomofo
	false, // Cherokee
	false, // Cyrillic
	true,  // Devanagari
	false, // Ethiopic
	false, // Georgian
	false, // Greek
	true,  // Gujarati
	true,  // Gurmukhi
	false, // Han
	true,  // Hangul
	false, // Hebrew
	false, // Hiragana
	true,  // Javanese
	true,  // Kannada
	false, // Katakana
	true,  // Khmer
	true,  // Lao
	false, // Latin
	true,  // Malayalam
	true,  // Mandaic
	true,  // Manichaean
	true,  // Mongolian
	true,  // Myanmar
	true,  // Nko
	true,  // Oriya
	true,  // Phags_Pa
	true,  // Psalter_Pahlavi
	true,  // Sinhala
	true,  // Syriac
	true,  // Tamil
	true,  // Telugu
	true,  // Thaana
	true,  // Thai
	true,  // Tibetan
	false, // Vai
	false, // Yi
}

type scriptTagEntry struct {
	tag    Tag
	script Script
}

// scriptsByTag is sorted by tag value; duplicate OpenType tags (Hiragana
// and Katakana share "kana") keep the first script in enumeration order.
var scriptsByTag = []scriptTagEntry{
	{0x61646C6D, Adlam},          // "adlm"
	{0x61726162, Arabic},         // "arab"
	{0x61726D6E, Armenian},       // "armn"
	{0x62656E67, Bengali},        // "beng"
	{0x626F706F, Bopomofo},       // "bopo"
	{0x63686572, Cherokee},       // "cher"
	{0x6379726C, Cyrillic},       // "cyrl"
	{0x64657661, Devanagari},     // "deva"
	{0x65746869, Ethiopic},       // "ethi"
	{0x67656F72, Georgian},       // "geor"
	{0x6772656B, Greek},          // "grek"
	{0x67756A72, Gujarati},       // "gujr"
	{0x67757275, Gurmukhi},       // "guru"
	{0x68616E67, Hangul},         // "hang"
	{0x68616E69, Han},            // "hani"
	{0x68656272, Hebrew},         // "hebr"
	{0x6A617661, Javanese},       // "java"
	{0x6B616E61, Hiragana},       // "kana"
	{0x6B686D72, Khmer},          // "khmr"
	{0x6B6E6461, Kannada},        // "knda"
	{0x6C616F20, Lao},            // "lao "
	{0x6C61746E, Latin},          // "latn"
	{0x6D616E64, Mandaic},        // "mand"
	{0x6D616E69, Manichaean},     // "mani"
	{0x6D6C796D, Malayalam},      // "mlym"
	{0x6D6F6E67, Mongolian},      // "mong"
	{0x6D796D72, Myanmar},        // "mymr"
	{0x6E6B6F20, Nko},            // "nko "
	{0x6F727961, Oriya},          // "orya"
	{0x70686167, PhagsPa},        // "phag"
	{0x70686C70, PsalterPahlavi}, // "phlp"
	{0x73696E68, Sinhala},        // "sinh"
	{0x73797263, Syriac},         // "syrc"
	{0x74616D6C, Tamil},          // "taml"
	{0x74656C75, Telugu},         // "telu"
	{0x74686161, Thaana},         // "thaa"
	{0x74686169, Thai},           // "thai"
	{0x74696274, Tibetan},        // "tibt"
	{0x76616920, Vai},            // "vai "
	{0x79692020, Yi},             // "yi  "
	{0x7A696E68, Inherited},      // "zinh"
	{0x7A797979, Common},         // "zyyy"
	{0x7A7A7A7A, Unknown},        // "zzzz"
}

// records holds one entry per distinct character behavior class. Record 0
// is the default record for unassigned and uncovered code-points.
var records = []Record{
	{}, // 0: default (Cn, no block, unknown script)
	{Category: Cc, Block: BasicLatin, BidiClass: BidiBN, ClusterBreak: ClusterControl, LineBreak: LineCM},                                                                                                                                                                                      // 1: C0 control
	{Category: Cc, Block: BasicLatin, BidiClass: BidiS, ClusterBreak: ClusterControl, LineBreak: LineBA},                                                                                                                                                                                       // 2: TAB
	{Category: Cc, Block: BasicLatin, BidiClass: BidiB, ClusterBreak: ClusterLF, WordBreak: WordLF, LineBreak: LineLF},                                                                                                                                                                         // 3: LF
	{Category: Cc, Block: BasicLatin, BidiClass: BidiS, ClusterBreak: ClusterControl, WordBreak: WordNewline, LineBreak: LineBK},                                                                                                                                                               // 4: VT
	{Category: Cc, Block: BasicLatin, BidiClass: BidiWS, ClusterBreak: ClusterControl, WordBreak: WordNewline, LineBreak: LineBK},                                                                                                                                                              // 5: FF
	{Category: Cc, Block: BasicLatin, BidiClass: BidiB, ClusterBreak: ClusterCR, WordBreak: WordCR, LineBreak: LineCR},                                                                                                                                                                         // 6: CR
	{Category: Zs, Block: BasicLatin, Script: Common, BidiClass: BidiWS, WordBreak: WordWSegSpace, LineBreak: LineSP},                                                                                                                                                                          // 7: SPACE
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineEX},                                                                                                                                                                                                    // 8: !
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, WordBreak: WordDoubleQuote, LineBreak: LineQU},                                                                                                                                                                        // 9: "
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiET, LineBreak: LineAL},                                                                                                                                                                                                    // 10: #
	{Category: Sc, Block: BasicLatin, Script: Common, BidiClass: BidiET, LineBreak: LinePR},                                                                                                                                                                                                    // 11: $
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiET, LineBreak: LinePO},                                                                                                                                                                                                    // 12: %
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                                    // 13: &
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, WordBreak: WordSingleQuote, LineBreak: LineQU},                                                                                                                                                                        // 14: '
	{Category: Ps, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineOP, Flags: FlagOpenBracket},                                                                                                                                                                            // 15: (
	{Category: Pe, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineCP, Flags: FlagCloseBracket},                                                                                                                                                                           // 16: )
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                                    // 17: *
	{Category: Sm, Block: BasicLatin, Script: Common, BidiClass: BidiES, LineBreak: LinePR},                                                                                                                                                                                                    // 18: +
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiCS, WordBreak: WordMidNum, LineBreak: LineIS},                                                                                                                                                                             // 19: ,
	{Category: Pd, Block: BasicLatin, Script: Common, BidiClass: BidiES, LineBreak: LineHY},                                                                                                                                                                                                    // 20: -
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiCS, WordBreak: WordMidNumLet, LineBreak: LineIS},                                                                                                                                                                          // 21: .
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiCS, LineBreak: LineSY},                                                                                                                                                                                                    // 22: /
	{Category: Nd, Block: BasicLatin, Script: Common, BidiClass: BidiEN, WordBreak: WordNumeric, LineBreak: LineNU},                                                                                                                                                                            // 23: 0-9
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiCS, WordBreak: WordMidLetter, LineBreak: LineIS},                                                                                                                                                                          // 24: :
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineIS},                                                                                                                                                                                                    // 25: ;
	{Category: Sm, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                                    // 26: < = >
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineEX},                                                                                                                                                                                                    // 27: ?
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                                    // 28: @
	{Category: Lu, Block: BasicLatin, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                                // 29: A-Z
	{Category: Ps, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineOP, Flags: FlagOpenBracket},                                                                                                                                                                            // 30: [
	{Category: Po, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LinePR},                                                                                                                                                                                                    // 31: \
	{Category: Pe, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineCP, Flags: FlagCloseBracket},                                                                                                                                                                           // 32: ]
	{Category: Sk, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                                    // 33: ^
	{Category: Pc, Block: BasicLatin, Script: Common, BidiClass: BidiON, WordBreak: WordExtendNumLet, LineBreak: LineAL},                                                                                                                                                                       // 34: _
	{Category: Sk, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                                    // 35: `
	{Category: Ll, Block: BasicLatin, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                                // 36: a-z
	{Category: Ps, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineOP, Flags: FlagOpenBracket},                                                                                                                                                                            // 37: {
	{Category: Sm, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineBA},                                                                                                                                                                                                    // 38: |
	{Category: Pe, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineCL, Flags: FlagCloseBracket},                                                                                                                                                                           // 39: }
	{Category: Sm, Block: BasicLatin, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                                    // 40: ~
	{Category: Cc, Block: Latin1Supplement, BidiClass: BidiB, ClusterBreak: ClusterControl, WordBreak: WordNewline, LineBreak: LineNL},                                                                                                                                                         // 41: NEL
	{Category: Zs, Block: Latin1Supplement, Script: Common, BidiClass: BidiCS, LineBreak: LineGL},                                                                                                                                                                                              // 42: NBSP
	{Category: So, Block: Latin1Supplement, Script: Common, BidiClass: BidiON, LineBreak: LineAL, Flags: FlagEmoji | FlagExtendedPictographic},                                                                                                                                                 // 43: ©
	{Category: Lu, Block: Latin1Supplement, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                           // 44: À-Ý decomposable
	{Category: Ll, Block: Latin1Supplement, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                           // 45: à-ÿ decomposable
	{Category: Lu, Block: Latin1Supplement, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                          // 46: Æ Ð Ø Þ
	{Category: Ll, Block: Latin1Supplement, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                          // 47: ß æ ð ø þ
	{Category: Mn, Block: CombiningDiacriticalMarks, Script: Inherited, CombiningClass: 230, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                      // 48: ccc 230
	{Category: Mn, Block: CombiningDiacriticalMarks, Script: Inherited, CombiningClass: 220, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                      // 49: ccc 220
	{Category: Mn, Block: CombiningDiacriticalMarks, Script: Inherited, CombiningClass: 202, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                      // 50: ccc 202
	{Category: Mn, Block: CombiningDiacriticalMarks, Script: Inherited, CombiningClass: 1, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                        // 51: ccc 1
	{Category: Mn, Block: CombiningDiacriticalMarks, Script: Inherited, CombiningClass: 240, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                      // 52: ccc 240
	{Category: Lu, Block: GreekAndCoptic, Script: Greek, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                            // 53: Greek upper
	{Category: Ll, Block: GreekAndCoptic, Script: Greek, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                            // 54: Greek lower
	{Category: Lu, Block: CyrillicBlock, Script: Cyrillic, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                          // 55: Cyrillic upper
	{Category: Ll, Block: CyrillicBlock, Script: Cyrillic, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                          // 56: Cyrillic lower
	{Category: Mn, Block: HebrewBlock, Script: Hebrew, CombiningClass: 220, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                       // 57: Hebrew accent
	{Category: Lo, Block: HebrewBlock, Script: Hebrew, BidiClass: BidiR, WordBreak: WordHebrewLetter, LineBreak: LineHL},                                                                                                                                                                       // 58: Hebrew letter
	{Category: Pd, Block: HebrewBlock, Script: Hebrew, BidiClass: BidiR, LineBreak: LineBA},                                                                                                                                                                                                    // 59: maqaf
	{Category: Cf, Block: ArabicBlock, Script: Arabic, BidiClass: BidiAN, LineBreak: LinePR},                                                                                                                                                                                                   // 60: Arabic number signs
	{Category: Po, Block: ArabicBlock, Script: Common, BidiClass: BidiCS, LineBreak: LineIS},                                                                                                                                                                                                   // 61: Arabic comma
	{Category: Mn, Block: ArabicBlock, Script: Arabic, CombiningClass: 230, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                       // 62: Arabic mark ccc 230
	{Category: Lo, Block: ArabicBlock, Script: Arabic, BidiClass: BidiAL, JoiningType: JoiningNone, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                 // 63: Arabic letter, non-joining
	{Category: Lo, Block: ArabicBlock, Script: Arabic, BidiClass: BidiAL, JoiningType: JoiningRight, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                // 64: Arabic letter, right-joining
	{Category: Lo, Block: ArabicBlock, Script: Arabic, BidiClass: BidiAL, JoiningType: JoiningDual, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                 // 65: Arabic letter, dual-joining
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 27, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 66: fathatan
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 28, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 67: dammatan
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 29, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 68: kasratan
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 30, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 69: fatha
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 31, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 70: damma
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 32, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 71: kasra
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 33, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 72: shadda
	{Category: Mn, Block: ArabicBlock, Script: Inherited, CombiningClass: 34, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, Flags: FlagContributesToShaping},                                                     // 73: sukun
	{Category: Nd, Block: ArabicBlock, Script: Arabic, BidiClass: BidiAN, WordBreak: WordNumeric, LineBreak: LineNU},                                                                                                                                                                           // 74: Arabic-Indic digit
	{Category: Mn, Block: DevanagariBlock, Script: Devanagari, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, UseClass: UseVMAbv, Flags: FlagContributesToShaping},                                                // 75: Devanagari sign
	{Category: Lo, Block: DevanagariBlock, Script: Devanagari, WordBreak: WordALetter, LineBreak: LineAL, UseClass: UseB},                                                                                                                                                                      // 76: Devanagari letter
	{Category: Mn, Block: DevanagariBlock, Script: Devanagari, CombiningClass: 7, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, UseClass: UseCMBlw, Flags: FlagContributesToShaping},                             // 77: nukta
	{Category: Mn, Block: DevanagariBlock, Script: Devanagari, CombiningClass: 9, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, UseClass: UseH, Flags: FlagContributesToShaping},                                 // 78: virama
	{Category: Nd, Block: DevanagariBlock, Script: Devanagari, WordBreak: WordNumeric, LineBreak: LineNU},                                                                                                                                                                                      // 79: Devanagari digit
	{Category: Lo, Block: ThaiBlock, Script: Thai, LineBreak: LineSA},                                                                                                                                                                                                                          // 80: Thai letter
	{Category: Mn, Block: ThaiBlock, Script: Thai, CombiningClass: 107, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, Flags: FlagContributesToShaping},                                                           // 81: Thai tone mark
	{Category: Lo, Block: HangulJamo, Script: Hangul, ClusterBreak: ClusterL, WordBreak: WordALetter, LineBreak: LineJL},                                                                                                                                                                       // 82: leading jamo
	{Category: Lo, Block: HangulJamo, Script: Hangul, ClusterBreak: ClusterV, WordBreak: WordALetter, LineBreak: LineJV},                                                                                                                                                                       // 83: vowel jamo
	{Category: Lo, Block: HangulJamo, Script: Hangul, ClusterBreak: ClusterT, WordBreak: WordALetter, LineBreak: LineJT},                                                                                                                                                                       // 84: trailing jamo
	{Category: Zs, Block: GeneralPunctuation, Script: Common, BidiClass: BidiWS, WordBreak: WordWSegSpace, LineBreak: LineBA},                                                                                                                                                                  // 85: en/em spaces
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiBN, LineBreak: LineZW, Flags: FlagIgnorable},                                                                                                                                                                      // 86: ZWSP
	{Category: Cf, Block: GeneralPunctuation, Script: Inherited, BidiClass: BidiBN, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, UseClass: UseZWNJ, MyanmarClass: MyanmarZWNJ, Flags: FlagIgnorable | FlagContributesToShaping},                                      // 87: ZWNJ
	{Category: Cf, Block: GeneralPunctuation, Script: Inherited, BidiClass: BidiBN, JoiningType: JoiningCausing, ClusterBreak: ClusterZWJ, WordBreak: WordZWJ, LineBreak: LineZWJ, MyanmarClass: MyanmarZWJ, Flags: FlagIgnorable | FlagContributesToShaping},                                  // 88: ZWJ
	{Category: Cf, Block: GeneralPunctuation, Script: Common, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                                    // 89: LRM
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiR, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                  // 90: RLM
	{Category: Pd, Block: GeneralPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineBA},                                                                                                                                                                                            // 91: hyphen
	{Category: Pi, Block: GeneralPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineQU},                                                                                                                                                                                            // 92: left single quote
	{Category: Pf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiON, WordBreak: WordMidNumLet, LineBreak: LineQU},                                                                                                                                                                  // 93: right single quote
	{Category: Pi, Block: GeneralPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineQU},                                                                                                                                                                                            // 94: left double quote
	{Category: Pf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineQU},                                                                                                                                                                                            // 95: right double quote
	{Category: Zl, Block: GeneralPunctuation, Script: Common, BidiClass: BidiWS, ClusterBreak: ClusterControl, WordBreak: WordNewline, LineBreak: LineBK},                                                                                                                                      // 96: LS
	{Category: Zp, Block: GeneralPunctuation, Script: Common, BidiClass: BidiB, ClusterBreak: ClusterControl, WordBreak: WordNewline, LineBreak: LineBK},                                                                                                                                       // 97: PS
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiLRE, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 98: LRE
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiRLE, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 99: RLE
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiPDF, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 100: PDF
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiLRO, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 101: LRO
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiRLO, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 102: RLO
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiLRI, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 103: LRI
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiRLI, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 104: RLI
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiFSI, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 105: FSI
	{Category: Cf, Block: GeneralPunctuation, Script: Common, BidiClass: BidiPDI, ClusterBreak: ClusterControl, WordBreak: WordFormat, LineBreak: LineCM, Flags: FlagIgnorable},                                                                                                                // 106: PDI
	{Category: Ps, Block: GeneralPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineOP, Flags: FlagOpenBracket},                                                                                                                                                                    // 107: square bracket with quill, open
	{Category: Pe, Block: GeneralPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineCL, Flags: FlagCloseBracket},                                                                                                                                                                   // 108: square bracket with quill, close
	{Category: Sc, Block: CurrencySymbols, Script: Common, BidiClass: BidiET, LineBreak: LinePR},                                                                                                                                                                                               // 109: currency sign
	{Category: So, Block: LetterlikeSymbols, Script: Common, BidiClass: BidiON, LineBreak: LineAL, Flags: FlagEmoji | FlagExtendedPictographic},                                                                                                                                                // 110: ™
	{Category: Sm, Block: Arrows, Script: Common, BidiClass: BidiON, LineBreak: LineAI},                                                                                                                                                                                                        // 111: arrow
	{Category: Sm, Block: MathematicalOperators, Script: Common, BidiClass: BidiON, LineBreak: LineAL},                                                                                                                                                                                         // 112: math operator
	{Category: Ps, Block: MiscellaneousTechnical, Script: Common, BidiClass: BidiON, LineBreak: LineOP, Flags: FlagOpenBracket},                                                                                                                                                                // 113: ceiling/floor, open
	{Category: Pe, Block: MiscellaneousTechnical, Script: Common, BidiClass: BidiON, LineBreak: LineCL, Flags: FlagCloseBracket},                                                                                                                                                               // 114: ceiling/floor, close
	{Category: Ps, Block: MiscellaneousTechnical, Script: Common, BidiClass: BidiON, LineBreak: LineOP, Flags: FlagOpenBracket | FlagNeedsDecomposition},                                                                                                                                       // 115: pointing angle bracket, open
	{Category: Pe, Block: MiscellaneousTechnical, Script: Common, BidiClass: BidiON, LineBreak: LineCL, Flags: FlagCloseBracket | FlagNeedsDecomposition},                                                                                                                                      // 116: pointing angle bracket, close
	{Category: So, Block: MiscellaneousSymbols, Script: Common, BidiClass: BidiON, LineBreak: LineID, Flags: FlagEmoji | FlagExtendedPictographic},                                                                                                                                             // 117: misc symbol
	{Category: So, Block: Dingbats, Script: Common, BidiClass: BidiON, LineBreak: LineID, Flags: FlagEmoji | FlagExtendedPictographic},                                                                                                                                                         // 118: dingbat
	{Category: Zs, Block: CJKSymbolsAndPunctuation, Script: Common, BidiClass: BidiWS, LineBreak: LineBA},                                                                                                                                                                                      // 119: ideographic space
	{Category: Po, Block: CJKSymbolsAndPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineCL},                                                                                                                                                                                      // 120: ideographic comma
	{Category: Po, Block: CJKSymbolsAndPunctuation, Script: Common, BidiClass: BidiON, WordBreak: WordMidNumLet, LineBreak: LineCL},                                                                                                                                                            // 121: ideographic full stop
	{Category: Ps, Block: CJKSymbolsAndPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineOP, Flags: FlagOpenBracket},                                                                                                                                                              // 122: CJK bracket, open
	{Category: Pe, Block: CJKSymbolsAndPunctuation, Script: Common, BidiClass: BidiON, LineBreak: LineCL, Flags: FlagCloseBracket},                                                                                                                                                             // 123: CJK bracket, close
	{Category: Lo, Block: HiraganaBlock, Script: Hiragana, LineBreak: LineID},                                                                                                                                                                                                                  // 124: hiragana
	{Category: Lo, Block: KatakanaBlock, Script: Katakana, WordBreak: WordKatakana, LineBreak: LineID},                                                                                                                                                                                         // 125: katakana
	{Category: Lm, Block: KatakanaBlock, Script: Common, WordBreak: WordKatakana, LineBreak: LineCJ},                                                                                                                                                                                           // 126: prolonged sound mark
	{Category: Lo, Block: CJKUnifiedIdeographs, Script: Han, LineBreak: LineID},                                                                                                                                                                                                                // 127: Han ideograph
	{Category: Lo, Block: HangulSyllables, Script: Hangul, ClusterBreak: ClusterLV, WordBreak: WordALetter, LineBreak: LineH2, Flags: FlagNeedsDecomposition},                                                                                                                                  // 128: Hangul LV syllable
	{Category: Lo, Block: HangulSyllables, Script: Hangul, ClusterBreak: ClusterLVT, WordBreak: WordALetter, LineBreak: LineH3, Flags: FlagNeedsDecomposition},                                                                                                                                 // 129: Hangul LVT syllable
	{Category: Ll, Block: AlphabeticPresentationForms, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                               // 130: Latin ligature
	{Category: Mn, Block: VariationSelectors, Script: Inherited, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineCM, MyanmarClass: MyanmarVS, Flags: FlagIgnorable | FlagVariationSelector | FlagContributesToShaping}, // 131: variation selector
	{Category: Nd, Block: HalfwidthAndFullwidthForms, Script: Common, BidiClass: BidiEN, WordBreak: WordNumeric, LineBreak: LineNU},                                                                                                                                                            // 132: fullwidth digit
	{Category: Lu, Block: HalfwidthAndFullwidthForms, Script: Latin, WordBreak: WordALetter, LineBreak: LineID},                                                                                                                                                                                // 133: fullwidth upper
	{Category: Ll, Block: HalfwidthAndFullwidthForms, Script: Latin, WordBreak: WordALetter, LineBreak: LineID},                                                                                                                                                                                // 134: fullwidth lower
	{Category: So, Block: EnclosedAlphanumericSupplement, Script: Common, ClusterBreak: ClusterRegionalIndicator, WordBreak: WordRegionalIndicator, LineBreak: LineRI, Flags: FlagEmoji},                                                                                                       // 135: regional indicator
	{Category: So, Block: MiscellaneousSymbolsAndPictographs, Script: Common, BidiClass: BidiON, LineBreak: LineID, Flags: FlagEmoji | FlagExtendedPictographic},                                                                                                                               // 136: pictograph
	{Category: So, Block: Emoticons, Script: Common, BidiClass: BidiON, LineBreak: LineID, Flags: FlagEmoji | FlagExtendedPictographic},                                                                                                                                                        // 137: emoticon
	{Category: So, Block: TransportAndMapSymbols, Script: Common, BidiClass: BidiON, LineBreak: LineID, Flags: FlagEmoji | FlagExtendedPictographic},                                                                                                                                           // 138: transport symbol
	{Category: Lu, Block: LatinExtendedAdditional, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                    // 139: extended Latin upper, decomposable
	{Category: Ll, Block: LatinExtendedAdditional, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                    // 140: extended Latin lower, decomposable
	{Category: Lu, Block: GreekAndCoptic, Script: Greek, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                             // 141: Greek upper, decomposable
	{Category: Ll, Block: GreekAndCoptic, Script: Greek, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                             // 142: Greek lower, decomposable
	{Category: Lu, Block: LetterlikeSymbols, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                          // 143: angstrom sign
	{Category: Lu, Block: LetterlikeSymbols, Script: Greek, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                          // 144: ohm sign
	{Category: Lo, Block: DevanagariBlock, Script: Devanagari, WordBreak: WordALetter, LineBreak: LineAL, UseClass: UseB, Flags: FlagNeedsDecomposition},                                                                                                                                       // 145: Devanagari nukta letter
	{Category: Lu, Block: LetterlikeSymbols, Script: Common, WordBreak: WordALetter, LineBreak: LineAL},                                                                                                                                                                                        // 146: double-struck letter
	{Category: Lm, Block: ArabicBlock, Script: Arabic, BidiClass: BidiAL, JoiningType: JoiningCausing, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagContributesToShaping},                                                                                                             // 147: tatweel
	{Category: Cc, Block: Latin1Supplement, BidiClass: BidiBN, ClusterBreak: ClusterControl, LineBreak: LineCM},                                                                                                                                                                                // 148: C1 control
	{Category: Lu, Block: LatinExtendedA, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                             // 149: extended Latin A upper, decomposable
	{Category: Ll, Block: LatinExtendedA, Script: Latin, WordBreak: WordALetter, LineBreak: LineAL, Flags: FlagNeedsDecomposition},                                                                                                                                                             // 150: extended Latin A lower, decomposable
	{Category: Lo, Script: Myanmar, LineBreak: LineSA, UseClass: UseB, MyanmarClass: MyanmarC},                                                                                                                                                                                                 // 151: Myanmar consonant
	{Category: Lo, Script: Myanmar, LineBreak: LineSA, UseClass: UseB, MyanmarClass: MyanmarV},                                                                                                                                                                                                 // 152: Myanmar independent vowel
	{Category: Mc, Script: Myanmar, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseVPst, MyanmarClass: MyanmarVPst},                                                                                                                                                                    // 153: Myanmar vowel sign aa
	{Category: Mn, Script: Myanmar, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseVAbv, MyanmarClass: MyanmarVAbv, Flags: FlagContributesToShaping},                                                 // 154: Myanmar vowel sign above
	{Category: Mn, Script: Myanmar, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseVBlw, MyanmarClass: MyanmarVBlw, Flags: FlagContributesToShaping},                                                 // 155: Myanmar vowel sign below
	{Category: Mc, Script: Myanmar, ClusterBreak: ClusterSpacingMark, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseVPre, MyanmarClass: MyanmarVPre},                                                                                                                                  // 156: Myanmar vowel sign e
	{Category: Mn, Script: Myanmar, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseVMAbv, MyanmarClass: MyanmarA, Flags: FlagContributesToShaping},                                                   // 157: Myanmar anusvara
	{Category: Mn, Script: Myanmar, CombiningClass: 7, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseCMBlw, MyanmarClass: MyanmarDB, Flags: FlagContributesToShaping},                               // 158: Myanmar dot below
	{Category: Mc, Script: Myanmar, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseSM, MyanmarClass: MyanmarSM},                                                                                                                                                                        // 159: Myanmar visarga
	{Category: Mn, Script: Myanmar, CombiningClass: 9, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseIS, MyanmarClass: MyanmarH, Flags: FlagContributesToShaping},                                   // 160: Myanmar virama
	{Category: Mn, Script: Myanmar, CombiningClass: 9, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseH, MyanmarClass: MyanmarAs, Flags: FlagContributesToShaping},                                   // 161: Myanmar asat
	{Category: Mc, Script: Myanmar, ClusterBreak: ClusterSpacingMark, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseMPst, MyanmarClass: MyanmarMY},                                                                                                                                    // 162: Myanmar medial ya
	{Category: Mc, Script: Myanmar, ClusterBreak: ClusterSpacingMark, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseMPre, MyanmarClass: MyanmarMR},                                                                                                                                    // 163: Myanmar medial ra
	{Category: Mn, Script: Myanmar, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseMBlw, MyanmarClass: MyanmarMW, Flags: FlagContributesToShaping},                                                   // 164: Myanmar medial wa
	{Category: Mn, Script: Myanmar, BidiClass: BidiNSM, JoiningType: JoiningTransparent, ClusterBreak: ClusterExtend, WordBreak: WordExtend, LineBreak: LineSA, UseClass: UseMBlw, MyanmarClass: MyanmarMH, Flags: FlagContributesToShaping},                                                   // 165: Myanmar medial ha
	{Category: Nd, Script: Myanmar, WordBreak: WordNumeric, LineBreak: LineNU, MyanmarClass: MyanmarD},                                                                                                                                                                                         // 166: Myanmar digit
	{Category: Po, Script: Myanmar, LineBreak: LineBA, MyanmarClass: MyanmarP},                                                                                                                                                                                                                 // 167: Myanmar section mark
}

type recordRange struct {
	lo, hi rune
	record uint16
}

// recordRanges maps code-point ranges to record indices; sorted by lo,
// non-overlapping, binary-searched by Lookup.
var recordRanges = []recordRange{
	{0x0000, 0x0008, 1},
	{0x0009, 0x0009, 2},
	{0x000A, 0x000A, 3},
	{0x000B, 0x000B, 4},
	{0x000C, 0x000C, 5},
	{0x000D, 0x000D, 6},
	{0x000E, 0x001F, 1},
	{0x0020, 0x0020, 7},
	{0x0021, 0x0021, 8},
	{0x0022, 0x0022, 9},
	{0x0023, 0x0023, 10},
	{0x0024, 0x0024, 11},
	{0x0025, 0x0025, 12},
	{0x0026, 0x0026, 13},
	{0x0027, 0x0027, 14},
	{0x0028, 0x0028, 15},
	{0x0029, 0x0029, 16},
	{0x002A, 0x002A, 17},
	{0x002B, 0x002B, 18},
	{0x002C, 0x002C, 19},
	{0x002D, 0x002D, 20},
	{0x002E, 0x002E, 21},
	{0x002F, 0x002F, 22},
	{0x0030, 0x0039, 23},
	{0x003A, 0x003A, 24},
	{0x003B, 0x003B, 25},
	{0x003C, 0x003E, 26},
	{0x003F, 0x003F, 27},
	{0x0040, 0x0040, 28},
	{0x0041, 0x005A, 29},
	{0x005B, 0x005B, 30},
	{0x005C, 0x005C, 31},
	{0x005D, 0x005D, 32},
	{0x005E, 0x005E, 33},
	{0x005F, 0x005F, 34},
	{0x0060, 0x0060, 35},
	{0x0061, 0x007A, 36},
	{0x007B, 0x007B, 37},
	{0x007C, 0x007C, 38},
	{0x007D, 0x007D, 39},
	{0x007E, 0x007E, 40},
	{0x007F, 0x007F, 1},
	{0x0080, 0x0084, 148},
	{0x0085, 0x0085, 41},
	{0x0086, 0x009F, 148},
	{0x00A0, 0x00A0, 42},
	{0x00A9, 0x00A9, 43},
	{0x00C0, 0x00C5, 44},
	{0x00C6, 0x00C6, 46},
	{0x00C7, 0x00CF, 44},
	{0x00D0, 0x00D0, 46},
	{0x00D1, 0x00D6, 44},
	{0x00D8, 0x00D8, 46},
	{0x00D9, 0x00DD, 44},
	{0x00DE, 0x00DE, 46},
	{0x00DF, 0x00DF, 47},
	{0x00E0, 0x00E5, 45},
	{0x00E6, 0x00E6, 47},
	{0x00E7, 0x00EF, 45},
	{0x00F0, 0x00F0, 47},
	{0x00F1, 0x00F6, 45},
	{0x00F8, 0x00F8, 47},
	{0x00F9, 0x00FD, 45},
	{0x00FE, 0x00FE, 47},
	{0x00FF, 0x00FF, 45},
	{0x0100, 0x0100, 149},
	{0x0101, 0x0101, 150},
	{0x0102, 0x0102, 149},
	{0x0103, 0x0103, 150},
	{0x0104, 0x0104, 149},
	{0x0105, 0x0105, 150},
	{0x0300, 0x0315, 48},
	{0x0316, 0x0319, 49},
	{0x0327, 0x0328, 50},
	{0x0334, 0x0338, 51},
	{0x0345, 0x0345, 52},
	{0x0386, 0x0386, 141},
	{0x0391, 0x03A1, 53},
	{0x03A3, 0x03A9, 53},
	{0x03AC, 0x03AC, 142},
	{0x03B1, 0x03C9, 54},
	{0x0400, 0x042F, 55},
	{0x0430, 0x045F, 56},
	{0x0591, 0x0591, 57},
	{0x05BE, 0x05BE, 59},
	{0x05D0, 0x05EA, 58},
	{0x0600, 0x0605, 60},
	{0x060C, 0x060C, 61},
	{0x0610, 0x0617, 62},
	{0x0621, 0x0621, 63},
	{0x0622, 0x0625, 64},
	{0x0626, 0x0626, 65},
	{0x0627, 0x0627, 64},
	{0x0628, 0x0628, 65},
	{0x0629, 0x0629, 64},
	{0x062A, 0x062E, 65},
	{0x062F, 0x0632, 64},
	{0x0633, 0x063A, 65},
	{0x0640, 0x0640, 147},
	{0x0641, 0x0647, 65},
	{0x0648, 0x0648, 64},
	{0x0649, 0x064A, 65},
	{0x064B, 0x064B, 66},
	{0x064C, 0x064C, 67},
	{0x064D, 0x064D, 68},
	{0x064E, 0x064E, 69},
	{0x064F, 0x064F, 70},
	{0x0650, 0x0650, 71},
	{0x0651, 0x0651, 72},
	{0x0652, 0x0652, 73},
	{0x0660, 0x0669, 74},
	{0x0900, 0x0902, 75},
	{0x0904, 0x0939, 76},
	{0x093C, 0x093C, 77},
	{0x094D, 0x094D, 78},
	{0x0958, 0x095F, 145},
	{0x0966, 0x096F, 79},
	{0x0E01, 0x0E2E, 80},
	{0x0E48, 0x0E4B, 81},
	{0x1000, 0x1020, 151},
	{0x1021, 0x102A, 152},
	{0x102B, 0x102C, 153},
	{0x102D, 0x102E, 154},
	{0x102F, 0x1030, 155},
	{0x1031, 0x1031, 156},
	{0x1032, 0x1035, 154},
	{0x1036, 0x1036, 157},
	{0x1037, 0x1037, 158},
	{0x1038, 0x1038, 159},
	{0x1039, 0x1039, 160},
	{0x103A, 0x103A, 161},
	{0x103B, 0x103B, 162},
	{0x103C, 0x103C, 163},
	{0x103D, 0x103D, 164},
	{0x103E, 0x103E, 165},
	{0x103F, 0x103F, 151},
	{0x1040, 0x1049, 166},
	{0x104A, 0x104B, 167},
	{0x1100, 0x1112, 82},
	{0x1161, 0x1175, 83},
	{0x11A8, 0x11C2, 84},
	{0x1E08, 0x1E08, 139},
	{0x1E09, 0x1E09, 140},
	{0x2000, 0x200A, 85},
	{0x200B, 0x200B, 86},
	{0x200C, 0x200C, 87},
	{0x200D, 0x200D, 88},
	{0x200E, 0x200E, 89},
	{0x200F, 0x200F, 90},
	{0x2010, 0x2010, 91},
	{0x2018, 0x2018, 92},
	{0x2019, 0x2019, 93},
	{0x201C, 0x201C, 94},
	{0x201D, 0x201D, 95},
	{0x2028, 0x2028, 96},
	{0x2029, 0x2029, 97},
	{0x202A, 0x202A, 98},
	{0x202B, 0x202B, 99},
	{0x202C, 0x202C, 100},
	{0x202D, 0x202D, 101},
	{0x202E, 0x202E, 102},
	{0x2045, 0x2045, 107},
	{0x2046, 0x2046, 108},
	{0x2066, 0x2066, 103},
	{0x2067, 0x2067, 104},
	{0x2068, 0x2068, 105},
	{0x2069, 0x2069, 106},
	{0x20A0, 0x20BF, 109},
	{0x2115, 0x2115, 146},
	{0x2122, 0x2122, 110},
	{0x2126, 0x2126, 144},
	{0x212B, 0x212B, 143},
	{0x2190, 0x21FF, 111},
	{0x2200, 0x22FF, 112},
	{0x2308, 0x2308, 113},
	{0x2309, 0x2309, 114},
	{0x230A, 0x230A, 113},
	{0x230B, 0x230B, 114},
	{0x2329, 0x2329, 115},
	{0x232A, 0x232A, 116},
	{0x2600, 0x26FF, 117},
	{0x2700, 0x27BF, 118},
	{0x3000, 0x3000, 119},
	{0x3001, 0x3001, 120},
	{0x3002, 0x3002, 121},
	{0x3008, 0x3008, 122},
	{0x3009, 0x3009, 123},
	{0x300A, 0x300A, 122},
	{0x300B, 0x300B, 123},
	{0x300C, 0x300C, 122},
	{0x300D, 0x300D, 123},
	{0x300E, 0x300E, 122},
	{0x300F, 0x300F, 123},
	{0x3010, 0x3010, 122},
	{0x3011, 0x3011, 123},
	{0x3041, 0x3096, 124},
	{0x30A1, 0x30FA, 125},
	{0x30FC, 0x30FC, 126},
	{0x4E00, 0x9FFF, 127},
	{0xAC00, 0xAC00, 128},
	{0xAC01, 0xAC1B, 129},
	{0xAC1C, 0xAC1C, 128},
	{0xAC1D, 0xAC37, 129},
	{0xAC38, 0xAC38, 128},
	{0xAC39, 0xAC53, 129},
	{0xAC54, 0xAC54, 128},
	{0xAC55, 0xAC6F, 129},
	{0xAC70, 0xAC70, 128},
	{0xAC71, 0xAC8B, 129},
	{0xAC8C, 0xAC8C, 128},
	{0xAC8D, 0xACA7, 129},
	{0xACA8, 0xACA8, 128},
	{0xACA9, 0xACC3, 129},
	{0xACC4, 0xACC4, 128},
	{0xACC5, 0xACDF, 129},
	{0xACE0, 0xACE0, 128},
	{0xACE1, 0xACFB, 129},
	{0xACFC, 0xACFC, 128},
	{0xACFD, 0xAD17, 129},
	{0xAD18, 0xAD18, 128},
	{0xAD19, 0xAD33, 129},
	{0xAD34, 0xAD34, 128},
	{0xAD35, 0xAD4F, 129},
	{0xAD50, 0xAD50, 128},
	{0xAD51, 0xAD6B, 129},
	{0xAD6C, 0xAD6C, 128},
	{0xAD6D, 0xAD87, 129},
	{0xAD88, 0xAD88, 128},
	{0xAD89, 0xADA3, 129},
	{0xADA4, 0xADA4, 128},
	{0xADA5, 0xADBF, 129},
	{0xADC0, 0xADC0, 128},
	{0xADC1, 0xADDB, 129},
	{0xADDC, 0xADDC, 128},
	{0xADDD, 0xADF7, 129},
	{0xADF8, 0xADF8, 128},
	{0xADF9, 0xAE13, 129},
	{0xAE14, 0xAE14, 128},
	{0xAE15, 0xAE2F, 129},
	{0xAE30, 0xAE30, 128},
	{0xAE31, 0xAE4B, 129},
	{0xAE4C, 0xAE4C, 128},
	{0xAE4D, 0xAE67, 129},
	{0xAE68, 0xAE68, 128},
	{0xAE69, 0xAE83, 129},
	{0xAE84, 0xAE84, 128},
	{0xAE85, 0xAE9F, 129},
	{0xAEA0, 0xAEA0, 128},
	{0xAEA1, 0xAEBB, 129},
	{0xAEBC, 0xAEBC, 128},
	{0xAEBD, 0xAED7, 129},
	{0xAED8, 0xAED8, 128},
	{0xAED9, 0xAEF3, 129},
	{0xAEF4, 0xAEF4, 128},
	{0xAEF5, 0xAF0F, 129},
	{0xAF10, 0xAF10, 128},
	{0xAF11, 0xAF2B, 129},
	{0xAF2C, 0xAF2C, 128},
	{0xAF2D, 0xAF47, 129},
	{0xAF48, 0xAF48, 128},
	{0xAF49, 0xAF63, 129},
	{0xAF64, 0xAF64, 128},
	{0xAF65, 0xAF7F, 129},
	{0xAF80, 0xAF80, 128},
	{0xAF81, 0xAF9B, 129},
	{0xAF9C, 0xAF9C, 128},
	{0xAF9D, 0xAFB7, 129},
	{0xAFB8, 0xAFB8, 128},
	{0xAFB9, 0xAFD3, 129},
	{0xAFD4, 0xAFD4, 128},
	{0xAFD5, 0xAFEF, 129},
	{0xAFF0, 0xAFF0, 128},
	{0xAFF1, 0xB00B, 129},
	{0xB00C, 0xB00C, 128},
	{0xB00D, 0xB027, 129},
	{0xB028, 0xB028, 128},
	{0xB029, 0xB043, 129},
	{0xB044, 0xB044, 128},
	{0xB045, 0xB05F, 129},
	{0xB060, 0xB060, 128},
	{0xB061, 0xB07B, 129},
	{0xB07C, 0xB07C, 128},
	{0xB07D, 0xB097, 129},
	{0xB098, 0xB098, 128},
	{0xB099, 0xB0B3, 129},
	{0xB0B4, 0xB0B4, 128},
	{0xB0B5, 0xB0CF, 129},
	{0xB0D0, 0xB0D0, 128},
	{0xB0D1, 0xB0EB, 129},
	{0xB0EC, 0xB0EC, 128},
	{0xB0ED, 0xB107, 129},
	{0xB108, 0xB108, 128},
	{0xB109, 0xB123, 129},
	{0xB124, 0xB124, 128},
	{0xB125, 0xB13F, 129},
	{0xB140, 0xB140, 128},
	{0xB141, 0xB15B, 129},
	{0xB15C, 0xB15C, 128},
	{0xB15D, 0xB177, 129},
	{0xB178, 0xB178, 128},
	{0xB179, 0xB193, 129},
	{0xB194, 0xB194, 128},
	{0xB195, 0xB1AF, 129},
	{0xB1B0, 0xB1B0, 128},
	{0xB1B1, 0xB1CB, 129},
	{0xB1CC, 0xB1CC, 128},
	{0xB1CD, 0xB1E7, 129},
	{0xB1E8, 0xB1E8, 128},
	{0xB1E9, 0xB203, 129},
	{0xB204, 0xB204, 128},
	{0xB205, 0xB21F, 129},
	{0xB220, 0xB220, 128},
	{0xB221, 0xB23B, 129},
	{0xB23C, 0xB23C, 128},
	{0xB23D, 0xB257, 129},
	{0xB258, 0xB258, 128},
	{0xB259, 0xB273, 129},
	{0xB274, 0xB274, 128},
	{0xB275, 0xB28F, 129},
	{0xB290, 0xB290, 128},
	{0xB291, 0xB2AB, 129},
	{0xB2AC, 0xB2AC, 128},
	{0xB2AD, 0xB2C7, 129},
	{0xB2C8, 0xB2C8, 128},
	{0xB2C9, 0xB2E3, 129},
	{0xB2E4, 0xB2E4, 128},
	{0xB2E5, 0xB2FF, 129},
	{0xB300, 0xB300, 128},
	{0xB301, 0xB31B, 129},
	{0xB31C, 0xB31C, 128},
	{0xB31D, 0xB337, 129},
	{0xB338, 0xB338, 128},
	{0xB339, 0xB353, 129},
	{0xB354, 0xB354, 128},
	{0xB355, 0xB36F, 129},
	{0xB370, 0xB370, 128},
	{0xB371, 0xB38B, 129},
	{0xB38C, 0xB38C, 128},
	{0xB38D, 0xB3A7, 129},
	{0xB3A8, 0xB3A8, 128},
	{0xB3A9, 0xB3C3, 129},
	{0xB3C4, 0xB3C4, 128},
	{0xB3C5, 0xB3DF, 129},
	{0xB3E0, 0xB3E0, 128},
	{0xB3E1, 0xB3FB, 129},
	{0xB3FC, 0xB3FC, 128},
	{0xB3FD, 0xB417, 129},
	{0xB418, 0xB418, 128},
	{0xB419, 0xB433, 129},
	{0xB434, 0xB434, 128},
	{0xB435, 0xB44F, 129},
	{0xB450, 0xB450, 128},
	{0xB451, 0xB46B, 129},
	{0xB46C, 0xB46C, 128},
	{0xB46D, 0xB487, 129},
	{0xB488, 0xB488, 128},
	{0xB489, 0xB4A3, 129},
	{0xB4A4, 0xB4A4, 128},
	{0xB4A5, 0xB4BF, 129},
	{0xB4C0, 0xB4C0, 128},
	{0xB4C1, 0xB4DB, 129},
	{0xB4DC, 0xB4DC, 128},
	{0xB4DD, 0xB4F7, 129},
	{0xB4F8, 0xB4F8, 128},
	{0xB4F9, 0xB513, 129},
	{0xB514, 0xB514, 128},
	{0xB515, 0xB52F, 129},
	{0xB530, 0xB530, 128},
	{0xB531, 0xB54B, 129},
	{0xB54C, 0xB54C, 128},
	{0xB54D, 0xB567, 129},
	{0xB568, 0xB568, 128},
	{0xB569, 0xB583, 129},
	{0xB584, 0xB584, 128},
	{0xB585, 0xB59F, 129},
	{0xB5A0, 0xB5A0, 128},
	{0xB5A1, 0xB5BB, 129},
	{0xB5BC, 0xB5BC, 128},
	{0xB5BD, 0xB5D7, 129},
	{0xB5D8, 0xB5D8, 128},
	{0xB5D9, 0xB5F3, 129},
	{0xB5F4, 0xB5F4, 128},
	{0xB5F5, 0xB60F, 129},
	{0xB610, 0xB610, 128},
	{0xB611, 0xB62B, 129},
	{0xB62C, 0xB62C, 128},
	{0xB62D, 0xB647, 129},
	{0xB648, 0xB648, 128},
	{0xB649, 0xB663, 129},
	{0xB664, 0xB664, 128},
	{0xB665, 0xB67F, 129},
	{0xB680, 0xB680, 128},
	{0xB681, 0xB69B, 129},
	{0xB69C, 0xB69C, 128},
	{0xB69D, 0xB6B7, 129},
	{0xB6B8, 0xB6B8, 128},
	{0xB6B9, 0xB6D3, 129},
	{0xB6D4, 0xB6D4, 128},
	{0xB6D5, 0xB6EF, 129},
	{0xB6F0, 0xB6F0, 128},
	{0xB6F1, 0xB70B, 129},
	{0xB70C, 0xB70C, 128},
	{0xB70D, 0xB727, 129},
	{0xB728, 0xB728, 128},
	{0xB729, 0xB743, 129},
	{0xB744, 0xB744, 128},
	{0xB745, 0xB75F, 129},
	{0xB760, 0xB760, 128},
	{0xB761, 0xB77B, 129},
	{0xB77C, 0xB77C, 128},
	{0xB77D, 0xB797, 129},
	{0xB798, 0xB798, 128},
	{0xB799, 0xB7B3, 129},
	{0xB7B4, 0xB7B4, 128},
	{0xB7B5, 0xB7CF, 129},
	{0xB7D0, 0xB7D0, 128},
	{0xB7D1, 0xB7EB, 129},
	{0xB7EC, 0xB7EC, 128},
	{0xB7ED, 0xB807, 129},
	{0xB808, 0xB808, 128},
	{0xB809, 0xB823, 129},
	{0xB824, 0xB824, 128},
	{0xB825, 0xB83F, 129},
	{0xB840, 0xB840, 128},
	{0xB841, 0xB85B, 129},
	{0xB85C, 0xB85C, 128},
	{0xB85D, 0xB877, 129},
	{0xB878, 0xB878, 128},
	{0xB879, 0xB893, 129},
	{0xB894, 0xB894, 128},
	{0xB895, 0xB8AF, 129},
	{0xB8B0, 0xB8B0, 128},
	{0xB8B1, 0xB8CB, 129},
	{0xB8CC, 0xB8CC, 128},
	{0xB8CD, 0xB8E7, 129},
	{0xB8E8, 0xB8E8, 128},
	{0xB8E9, 0xB903, 129},
	{0xB904, 0xB904, 128},
	{0xB905, 0xB91F, 129},
	{0xB920, 0xB920, 128},
	{0xB921, 0xB93B, 129},
	{0xB93C, 0xB93C, 128},
	{0xB93D, 0xB957, 129},
	{0xB958, 0xB958, 128},
	{0xB959, 0xB973, 129},
	{0xB974, 0xB974, 128},
	{0xB975, 0xB98F, 129},
	{0xB990, 0xB990, 128},
	{0xB991, 0xB9AB, 129},
	{0xB9AC, 0xB9AC, 128},
	{0xB9AD, 0xB9C7, 129},
	{0xB9C8, 0xB9C8, 128},
	{0xB9C9, 0xB9E3, 129},
	{0xB9E4, 0xB9E4, 128},
	{0xB9E5, 0xB9FF, 129},
	{0xBA00, 0xBA00, 128},
	{0xBA01, 0xBA1B, 129},
	{0xBA1C, 0xBA1C, 128},
	{0xBA1D, 0xBA37, 129},
	{0xBA38, 0xBA38, 128},
	{0xBA39, 0xBA53, 129},
	{0xBA54, 0xBA54, 128},
	{0xBA55, 0xBA6F, 129},
	{0xBA70, 0xBA70, 128},
	{0xBA71, 0xBA8B, 129},
	{0xBA8C, 0xBA8C, 128},
	{0xBA8D, 0xBAA7, 129},
	{0xBAA8, 0xBAA8, 128},
	{0xBAA9, 0xBAC3, 129},
	{0xBAC4, 0xBAC4, 128},
	{0xBAC5, 0xBADF, 129},
	{0xBAE0, 0xBAE0, 128},
	{0xBAE1, 0xBAFB, 129},
	{0xBAFC, 0xBAFC, 128},
	{0xBAFD, 0xBB17, 129},
	{0xBB18, 0xBB18, 128},
	{0xBB19, 0xBB33, 129},
	{0xBB34, 0xBB34, 128},
	{0xBB35, 0xBB4F, 129},
	{0xBB50, 0xBB50, 128},
	{0xBB51, 0xBB6B, 129},
	{0xBB6C, 0xBB6C, 128},
	{0xBB6D, 0xBB87, 129},
	{0xBB88, 0xBB88, 128},
	{0xBB89, 0xBBA3, 129},
	{0xBBA4, 0xBBA4, 128},
	{0xBBA5, 0xBBBF, 129},
	{0xBBC0, 0xBBC0, 128},
	{0xBBC1, 0xBBDB, 129},
	{0xBBDC, 0xBBDC, 128},
	{0xBBDD, 0xBBF7, 129},
	{0xBBF8, 0xBBF8, 128},
	{0xBBF9, 0xBC13, 129},
	{0xBC14, 0xBC14, 128},
	{0xBC15, 0xBC2F, 129},
	{0xBC30, 0xBC30, 128},
	{0xBC31, 0xBC4B, 129},
	{0xBC4C, 0xBC4C, 128},
	{0xBC4D, 0xBC67, 129},
	{0xBC68, 0xBC68, 128},
	{0xBC69, 0xBC83, 129},
	{0xBC84, 0xBC84, 128},
	{0xBC85, 0xBC9F, 129},
	{0xBCA0, 0xBCA0, 128},
	{0xBCA1, 0xBCBB, 129},
	{0xBCBC, 0xBCBC, 128},
	{0xBCBD, 0xBCD7, 129},
	{0xBCD8, 0xBCD8, 128},
	{0xBCD9, 0xBCF3, 129},
	{0xBCF4, 0xBCF4, 128},
	{0xBCF5, 0xBD0F, 129},
	{0xBD10, 0xBD10, 128},
	{0xBD11, 0xBD2B, 129},
	{0xBD2C, 0xBD2C, 128},
	{0xBD2D, 0xBD47, 129},
	{0xBD48, 0xBD48, 128},
	{0xBD49, 0xBD63, 129},
	{0xBD64, 0xBD64, 128},
	{0xBD65, 0xBD7F, 129},
	{0xBD80, 0xBD80, 128},
	{0xBD81, 0xBD9B, 129},
	{0xBD9C, 0xBD9C, 128},
	{0xBD9D, 0xBDB7, 129},
	{0xBDB8, 0xBDB8, 128},
	{0xBDB9, 0xBDD3, 129},
	{0xBDD4, 0xBDD4, 128},
	{0xBDD5, 0xBDEF, 129},
	{0xBDF0, 0xBDF0, 128},
	{0xBDF1, 0xBE0B, 129},
	{0xBE0C, 0xBE0C, 128},
	{0xBE0D, 0xBE27, 129},
	{0xBE28, 0xBE28, 128},
	{0xBE29, 0xBE43, 129},
	{0xBE44, 0xBE44, 128},
	{0xBE45, 0xBE5F, 129},
	{0xBE60, 0xBE60, 128},
	{0xBE61, 0xBE7B, 129},
	{0xBE7C, 0xBE7C, 128},
	{0xBE7D, 0xBE97, 129},
	{0xBE98, 0xBE98, 128},
	{0xBE99, 0xBEB3, 129},
	{0xBEB4, 0xBEB4, 128},
	{0xBEB5, 0xBECF, 129},
	{0xBED0, 0xBED0, 128},
	{0xBED1, 0xBEEB, 129},
	{0xBEEC, 0xBEEC, 128},
	{0xBEED, 0xBF07, 129},
	{0xBF08, 0xBF08, 128},
	{0xBF09, 0xBF23, 129},
	{0xBF24, 0xBF24, 128},
	{0xBF25, 0xBF3F, 129},
	{0xBF40, 0xBF40, 128},
	{0xBF41, 0xBF5B, 129},
	{0xBF5C, 0xBF5C, 128},
	{0xBF5D, 0xBF77, 129},
	{0xBF78, 0xBF78, 128},
	{0xBF79, 0xBF93, 129},
	{0xBF94, 0xBF94, 128},
	{0xBF95, 0xBFAF, 129},
	{0xBFB0, 0xBFB0, 128},
	{0xBFB1, 0xBFCB, 129},
	{0xBFCC, 0xBFCC, 128},
	{0xBFCD, 0xBFE7, 129},
	{0xBFE8, 0xBFE8, 128},
	{0xBFE9, 0xC003, 129},
	{0xC004, 0xC004, 128},
	{0xC005, 0xC01F, 129},
	{0xC020, 0xC020, 128},
	{0xC021, 0xC03B, 129},
	{0xC03C, 0xC03C, 128},
	{0xC03D, 0xC057, 129},
	{0xC058, 0xC058, 128},
	{0xC059, 0xC073, 129},
	{0xC074, 0xC074, 128},
	{0xC075, 0xC08F, 129},
	{0xC090, 0xC090, 128},
	{0xC091, 0xC0AB, 129},
	{0xC0AC, 0xC0AC, 128},
	{0xC0AD, 0xC0C7, 129},
	{0xC0C8, 0xC0C8, 128},
	{0xC0C9, 0xC0E3, 129},
	{0xC0E4, 0xC0E4, 128},
	{0xC0E5, 0xC0FF, 129},
	{0xC100, 0xC100, 128},
	{0xC101, 0xC11B, 129},
	{0xC11C, 0xC11C, 128},
	{0xC11D, 0xC137, 129},
	{0xC138, 0xC138, 128},
	{0xC139, 0xC153, 129},
	{0xC154, 0xC154, 128},
	{0xC155, 0xC16F, 129},
	{0xC170, 0xC170, 128},
	{0xC171, 0xC18B, 129},
	{0xC18C, 0xC18C, 128},
	{0xC18D, 0xC1A7, 129},
	{0xC1A8, 0xC1A8, 128},
	{0xC1A9, 0xC1C3, 129},
	{0xC1C4, 0xC1C4, 128},
	{0xC1C5, 0xC1DF, 129},
	{0xC1E0, 0xC1E0, 128},
	{0xC1E1, 0xC1FB, 129},
	{0xC1FC, 0xC1FC, 128},
	{0xC1FD, 0xC217, 129},
	{0xC218, 0xC218, 128},
	{0xC219, 0xC233, 129},
	{0xC234, 0xC234, 128},
	{0xC235, 0xC24F, 129},
	{0xC250, 0xC250, 128},
	{0xC251, 0xC26B, 129},
	{0xC26C, 0xC26C, 128},
	{0xC26D, 0xC287, 129},
	{0xC288, 0xC288, 128},
	{0xC289, 0xC2A3, 129},
	{0xC2A4, 0xC2A4, 128},
	{0xC2A5, 0xC2BF, 129},
	{0xC2C0, 0xC2C0, 128},
	{0xC2C1, 0xC2DB, 129},
	{0xC2DC, 0xC2DC, 128},
	{0xC2DD, 0xC2F7, 129},
	{0xC2F8, 0xC2F8, 128},
	{0xC2F9, 0xC313, 129},
	{0xC314, 0xC314, 128},
	{0xC315, 0xC32F, 129},
	{0xC330, 0xC330, 128},
	{0xC331, 0xC34B, 129},
	{0xC34C, 0xC34C, 128},
	{0xC34D, 0xC367, 129},
	{0xC368, 0xC368, 128},
	{0xC369, 0xC383, 129},
	{0xC384, 0xC384, 128},
	{0xC385, 0xC39F, 129},
	{0xC3A0, 0xC3A0, 128},
	{0xC3A1, 0xC3BB, 129},
	{0xC3BC, 0xC3BC, 128},
	{0xC3BD, 0xC3D7, 129},
	{0xC3D8, 0xC3D8, 128},
	{0xC3D9, 0xC3F3, 129},
	{0xC3F4, 0xC3F4, 128},
	{0xC3F5, 0xC40F, 129},
	{0xC410, 0xC410, 128},
	{0xC411, 0xC42B, 129},
	{0xC42C, 0xC42C, 128},
	{0xC42D, 0xC447, 129},
	{0xC448, 0xC448, 128},
	{0xC449, 0xC463, 129},
	{0xC464, 0xC464, 128},
	{0xC465, 0xC47F, 129},
	{0xC480, 0xC480, 128},
	{0xC481, 0xC49B, 129},
	{0xC49C, 0xC49C, 128},
	{0xC49D, 0xC4B7, 129},
	{0xC4B8, 0xC4B8, 128},
	{0xC4B9, 0xC4D3, 129},
	{0xC4D4, 0xC4D4, 128},
	{0xC4D5, 0xC4EF, 129},
	{0xC4F0, 0xC4F0, 128},
	{0xC4F1, 0xC50B, 129},
	{0xC50C, 0xC50C, 128},
	{0xC50D, 0xC527, 129},
	{0xC528, 0xC528, 128},
	{0xC529, 0xC543, 129},
	{0xC544, 0xC544, 128},
	{0xC545, 0xC55F, 129},
	{0xC560, 0xC560, 128},
	{0xC561, 0xC57B, 129},
	{0xC57C, 0xC57C, 128},
	{0xC57D, 0xC597, 129},
	{0xC598, 0xC598, 128},
	{0xC599, 0xC5B3, 129},
	{0xC5B4, 0xC5B4, 128},
	{0xC5B5, 0xC5CF, 129},
	{0xC5D0, 0xC5D0, 128},
	{0xC5D1, 0xC5EB, 129},
	{0xC5EC, 0xC5EC, 128},
	{0xC5ED, 0xC607, 129},
	{0xC608, 0xC608, 128},
	{0xC609, 0xC623, 129},
	{0xC624, 0xC624, 128},
	{0xC625, 0xC63F, 129},
	{0xC640, 0xC640, 128},
	{0xC641, 0xC65B, 129},
	{0xC65C, 0xC65C, 128},
	{0xC65D, 0xC677, 129},
	{0xC678, 0xC678, 128},
	{0xC679, 0xC693, 129},
	{0xC694, 0xC694, 128},
	{0xC695, 0xC6AF, 129},
	{0xC6B0, 0xC6B0, 128},
	{0xC6B1, 0xC6CB, 129},
	{0xC6CC, 0xC6CC, 128},
	{0xC6CD, 0xC6E7, 129},
	{0xC6E8, 0xC6E8, 128},
	{0xC6E9, 0xC703, 129},
	{0xC704, 0xC704, 128},
	{0xC705, 0xC71F, 129},
	{0xC720, 0xC720, 128},
	{0xC721, 0xC73B, 129},
	{0xC73C, 0xC73C, 128},
	{0xC73D, 0xC757, 129},
	{0xC758, 0xC758, 128},
	{0xC759, 0xC773, 129},
	{0xC774, 0xC774, 128},
	{0xC775, 0xC78F, 129},
	{0xC790, 0xC790, 128},
	{0xC791, 0xC7AB, 129},
	{0xC7AC, 0xC7AC, 128},
	{0xC7AD, 0xC7C7, 129},
	{0xC7C8, 0xC7C8, 128},
	{0xC7C9, 0xC7E3, 129},
	{0xC7E4, 0xC7E4, 128},
	{0xC7E5, 0xC7FF, 129},
	{0xC800, 0xC800, 128},
	{0xC801, 0xC81B, 129},
	{0xC81C, 0xC81C, 128},
	{0xC81D, 0xC837, 129},
	{0xC838, 0xC838, 128},
	{0xC839, 0xC853, 129},
	{0xC854, 0xC854, 128},
	{0xC855, 0xC86F, 129},
	{0xC870, 0xC870, 128},
	{0xC871, 0xC88B, 129},
	{0xC88C, 0xC88C, 128},
	{0xC88D, 0xC8A7, 129},
	{0xC8A8, 0xC8A8, 128},
	{0xC8A9, 0xC8C3, 129},
	{0xC8C4, 0xC8C4, 128},
	{0xC8C5, 0xC8DF, 129},
	{0xC8E0, 0xC8E0, 128},
	{0xC8E1, 0xC8FB, 129},
	{0xC8FC, 0xC8FC, 128},
	{0xC8FD, 0xC917, 129},
	{0xC918, 0xC918, 128},
	{0xC919, 0xC933, 129},
	{0xC934, 0xC934, 128},
	{0xC935, 0xC94F, 129},
	{0xC950, 0xC950, 128},
	{0xC951, 0xC96B, 129},
	{0xC96C, 0xC96C, 128},
	{0xC96D, 0xC987, 129},
	{0xC988, 0xC988, 128},
	{0xC989, 0xC9A3, 129},
	{0xC9A4, 0xC9A4, 128},
	{0xC9A5, 0xC9BF, 129},
	{0xC9C0, 0xC9C0, 128},
	{0xC9C1, 0xC9DB, 129},
	{0xC9DC, 0xC9DC, 128},
	{0xC9DD, 0xC9F7, 129},
	{0xC9F8, 0xC9F8, 128},
	{0xC9F9, 0xCA13, 129},
	{0xCA14, 0xCA14, 128},
	{0xCA15, 0xCA2F, 129},
	{0xCA30, 0xCA30, 128},
	{0xCA31, 0xCA4B, 129},
	{0xCA4C, 0xCA4C, 128},
	{0xCA4D, 0xCA67, 129},
	{0xCA68, 0xCA68, 128},
	{0xCA69, 0xCA83, 129},
	{0xCA84, 0xCA84, 128},
	{0xCA85, 0xCA9F, 129},
	{0xCAA0, 0xCAA0, 128},
	{0xCAA1, 0xCABB, 129},
	{0xCABC, 0xCABC, 128},
	{0xCABD, 0xCAD7, 129},
	{0xCAD8, 0xCAD8, 128},
	{0xCAD9, 0xCAF3, 129},
	{0xCAF4, 0xCAF4, 128},
	{0xCAF5, 0xCB0F, 129},
	{0xCB10, 0xCB10, 128},
	{0xCB11, 0xCB2B, 129},
	{0xCB2C, 0xCB2C, 128},
	{0xCB2D, 0xCB47, 129},
	{0xCB48, 0xCB48, 128},
	{0xCB49, 0xCB63, 129},
	{0xCB64, 0xCB64, 128},
	{0xCB65, 0xCB7F, 129},
	{0xCB80, 0xCB80, 128},
	{0xCB81, 0xCB9B, 129},
	{0xCB9C, 0xCB9C, 128},
	{0xCB9D, 0xCBB7, 129},
	{0xCBB8, 0xCBB8, 128},
	{0xCBB9, 0xCBD3, 129},
	{0xCBD4, 0xCBD4, 128},
	{0xCBD5, 0xCBEF, 129},
	{0xCBF0, 0xCBF0, 128},
	{0xCBF1, 0xCC0B, 129},
	{0xCC0C, 0xCC0C, 128},
	{0xCC0D, 0xCC27, 129},
	{0xCC28, 0xCC28, 128},
	{0xCC29, 0xCC43, 129},
	{0xCC44, 0xCC44, 128},
	{0xCC45, 0xCC5F, 129},
	{0xCC60, 0xCC60, 128},
	{0xCC61, 0xCC7B, 129},
	{0xCC7C, 0xCC7C, 128},
	{0xCC7D, 0xCC97, 129},
	{0xCC98, 0xCC98, 128},
	{0xCC99, 0xCCB3, 129},
	{0xCCB4, 0xCCB4, 128},
	{0xCCB5, 0xCCCF, 129},
	{0xCCD0, 0xCCD0, 128},
	{0xCCD1, 0xCCEB, 129},
	{0xCCEC, 0xCCEC, 128},
	{0xCCED, 0xCD07, 129},
	{0xCD08, 0xCD08, 128},
	{0xCD09, 0xCD23, 129},
	{0xCD24, 0xCD24, 128},
	{0xCD25, 0xCD3F, 129},
	{0xCD40, 0xCD40, 128},
	{0xCD41, 0xCD5B, 129},
	{0xCD5C, 0xCD5C, 128},
	{0xCD5D, 0xCD77, 129},
	{0xCD78, 0xCD78, 128},
	{0xCD79, 0xCD93, 129},
	{0xCD94, 0xCD94, 128},
	{0xCD95, 0xCDAF, 129},
	{0xCDB0, 0xCDB0, 128},
	{0xCDB1, 0xCDCB, 129},
	{0xCDCC, 0xCDCC, 128},
	{0xCDCD, 0xCDE7, 129},
	{0xCDE8, 0xCDE8, 128},
	{0xCDE9, 0xCE03, 129},
	{0xCE04, 0xCE04, 128},
	{0xCE05, 0xCE1F, 129},
	{0xCE20, 0xCE20, 128},
	{0xCE21, 0xCE3B, 129},
	{0xCE3C, 0xCE3C, 128},
	{0xCE3D, 0xCE57, 129},
	{0xCE58, 0xCE58, 128},
	{0xCE59, 0xCE73, 129},
	{0xCE74, 0xCE74, 128},
	{0xCE75, 0xCE8F, 129},
	{0xCE90, 0xCE90, 128},
	{0xCE91, 0xCEAB, 129},
	{0xCEAC, 0xCEAC, 128},
	{0xCEAD, 0xCEC7, 129},
	{0xCEC8, 0xCEC8, 128},
	{0xCEC9, 0xCEE3, 129},
	{0xCEE4, 0xCEE4, 128},
	{0xCEE5, 0xCEFF, 129},
	{0xCF00, 0xCF00, 128},
	{0xCF01, 0xCF1B, 129},
	{0xCF1C, 0xCF1C, 128},
	{0xCF1D, 0xCF37, 129},
	{0xCF38, 0xCF38, 128},
	{0xCF39, 0xCF53, 129},
	{0xCF54, 0xCF54, 128},
	{0xCF55, 0xCF6F, 129},
	{0xCF70, 0xCF70, 128},
	{0xCF71, 0xCF8B, 129},
	{0xCF8C, 0xCF8C, 128},
	{0xCF8D, 0xCFA7, 129},
	{0xCFA8, 0xCFA8, 128},
	{0xCFA9, 0xCFC3, 129},
	{0xCFC4, 0xCFC4, 128},
	{0xCFC5, 0xCFDF, 129},
	{0xCFE0, 0xCFE0, 128},
	{0xCFE1, 0xCFFB, 129},
	{0xCFFC, 0xCFFC, 128},
	{0xCFFD, 0xD017, 129},
	{0xD018, 0xD018, 128},
	{0xD019, 0xD033, 129},
	{0xD034, 0xD034, 128},
	{0xD035, 0xD04F, 129},
	{0xD050, 0xD050, 128},
	{0xD051, 0xD06B, 129},
	{0xD06C, 0xD06C, 128},
	{0xD06D, 0xD087, 129},
	{0xD088, 0xD088, 128},
	{0xD089, 0xD0A3, 129},
	{0xD0A4, 0xD0A4, 128},
	{0xD0A5, 0xD0BF, 129},
	{0xD0C0, 0xD0C0, 128},
	{0xD0C1, 0xD0DB, 129},
	{0xD0DC, 0xD0DC, 128},
	{0xD0DD, 0xD0F7, 129},
	{0xD0F8, 0xD0F8, 128},
	{0xD0F9, 0xD113, 129},
	{0xD114, 0xD114, 128},
	{0xD115, 0xD12F, 129},
	{0xD130, 0xD130, 128},
	{0xD131, 0xD14B, 129},
	{0xD14C, 0xD14C, 128},
	{0xD14D, 0xD167, 129},
	{0xD168, 0xD168, 128},
	{0xD169, 0xD183, 129},
	{0xD184, 0xD184, 128},
	{0xD185, 0xD19F, 129},
	{0xD1A0, 0xD1A0, 128},
	{0xD1A1, 0xD1BB, 129},
	{0xD1BC, 0xD1BC, 128},
	{0xD1BD, 0xD1D7, 129},
	{0xD1D8, 0xD1D8, 128},
	{0xD1D9, 0xD1F3, 129},
	{0xD1F4, 0xD1F4, 128},
	{0xD1F5, 0xD20F, 129},
	{0xD210, 0xD210, 128},
	{0xD211, 0xD22B, 129},
	{0xD22C, 0xD22C, 128},
	{0xD22D, 0xD247, 129},
	{0xD248, 0xD248, 128},
	{0xD249, 0xD263, 129},
	{0xD264, 0xD264, 128},
	{0xD265, 0xD27F, 129},
	{0xD280, 0xD280, 128},
	{0xD281, 0xD29B, 129},
	{0xD29C, 0xD29C, 128},
	{0xD29D, 0xD2B7, 129},
	{0xD2B8, 0xD2B8, 128},
	{0xD2B9, 0xD2D3, 129},
	{0xD2D4, 0xD2D4, 128},
	{0xD2D5, 0xD2EF, 129},
	{0xD2F0, 0xD2F0, 128},
	{0xD2F1, 0xD30B, 129},
	{0xD30C, 0xD30C, 128},
	{0xD30D, 0xD327, 129},
	{0xD328, 0xD328, 128},
	{0xD329, 0xD343, 129},
	{0xD344, 0xD344, 128},
	{0xD345, 0xD35F, 129},
	{0xD360, 0xD360, 128},
	{0xD361, 0xD37B, 129},
	{0xD37C, 0xD37C, 128},
	{0xD37D, 0xD397, 129},
	{0xD398, 0xD398, 128},
	{0xD399, 0xD3B3, 129},
	{0xD3B4, 0xD3B4, 128},
	{0xD3B5, 0xD3CF, 129},
	{0xD3D0, 0xD3D0, 128},
	{0xD3D1, 0xD3EB, 129},
	{0xD3EC, 0xD3EC, 128},
	{0xD3ED, 0xD407, 129},
	{0xD408, 0xD408, 128},
	{0xD409, 0xD423, 129},
	{0xD424, 0xD424, 128},
	{0xD425, 0xD43F, 129},
	{0xD440, 0xD440, 128},
	{0xD441, 0xD45B, 129},
	{0xD45C, 0xD45C, 128},
	{0xD45D, 0xD477, 129},
	{0xD478, 0xD478, 128},
	{0xD479, 0xD493, 129},
	{0xD494, 0xD494, 128},
	{0xD495, 0xD4AF, 129},
	{0xD4B0, 0xD4B0, 128},
	{0xD4B1, 0xD4CB, 129},
	{0xD4CC, 0xD4CC, 128},
	{0xD4CD, 0xD4E7, 129},
	{0xD4E8, 0xD4E8, 128},
	{0xD4E9, 0xD503, 129},
	{0xD504, 0xD504, 128},
	{0xD505, 0xD51F, 129},
	{0xD520, 0xD520, 128},
	{0xD521, 0xD53B, 129},
	{0xD53C, 0xD53C, 128},
	{0xD53D, 0xD557, 129},
	{0xD558, 0xD558, 128},
	{0xD559, 0xD573, 129},
	{0xD574, 0xD574, 128},
	{0xD575, 0xD58F, 129},
	{0xD590, 0xD590, 128},
	{0xD591, 0xD5AB, 129},
	{0xD5AC, 0xD5AC, 128},
	{0xD5AD, 0xD5C7, 129},
	{0xD5C8, 0xD5C8, 128},
	{0xD5C9, 0xD5E3, 129},
	{0xD5E4, 0xD5E4, 128},
	{0xD5E5, 0xD5FF, 129},
	{0xD600, 0xD600, 128},
	{0xD601, 0xD61B, 129},
	{0xD61C, 0xD61C, 128},
	{0xD61D, 0xD637, 129},
	{0xD638, 0xD638, 128},
	{0xD639, 0xD653, 129},
	{0xD654, 0xD654, 128},
	{0xD655, 0xD66F, 129},
	{0xD670, 0xD670, 128},
	{0xD671, 0xD68B, 129},
	{0xD68C, 0xD68C, 128},
	{0xD68D, 0xD6A7, 129},
	{0xD6A8, 0xD6A8, 128},
	{0xD6A9, 0xD6C3, 129},
	{0xD6C4, 0xD6C4, 128},
	{0xD6C5, 0xD6DF, 129},
	{0xD6E0, 0xD6E0, 128},
	{0xD6E1, 0xD6FB, 129},
	{0xD6FC, 0xD6FC, 128},
	{0xD6FD, 0xD717, 129},
	{0xD718, 0xD718, 128},
	{0xD719, 0xD733, 129},
	{0xD734, 0xD734, 128},
	{0xD735, 0xD74F, 129},
	{0xD750, 0xD750, 128},
	{0xD751, 0xD76B, 129},
	{0xD76C, 0xD76C, 128},
	{0xD76D, 0xD787, 129},
	{0xD788, 0xD788, 128},
	{0xD789, 0xD7A3, 129},
	{0xFB00, 0xFB06, 130},
	{0xFE00, 0xFE0F, 131},
	{0xFF10, 0xFF19, 132},
	{0xFF21, 0xFF3A, 133},
	{0xFF41, 0xFF5A, 134},
	{0x1F1E6, 0x1F1FF, 135},
	{0x1F300, 0x1F5FF, 136},
	{0x1F600, 0x1F64F, 137},
	{0x1F680, 0x1F6FF, 138},
}

type bracketPair struct {
	open, close rune
}

// bracketPairs is the bidi paired-bracket table from BidiBrackets.txt,
// sorted by the opening code-point. The closing column is monotonic as
// well; both columns are binary-searchable.
var bracketPairs = []bracketPair{
	{0x0028, 0x0029},
	{0x005B, 0x005D},
	{0x007B, 0x007D},
	{0x0F3A, 0x0F3B},
	{0x0F3C, 0x0F3D},
	{0x169B, 0x169C},
	{0x2045, 0x2046},
	{0x207D, 0x207E},
	{0x208D, 0x208E},
	{0x2308, 0x2309},
	{0x230A, 0x230B},
	{0x2329, 0x232A},
	{0x2768, 0x2769},
	{0x276A, 0x276B},
	{0x276C, 0x276D},
	{0x276E, 0x276F},
	{0x2770, 0x2771},
	{0x2772, 0x2773},
	{0x2774, 0x2775},
	{0x27C5, 0x27C6},
	{0x27E6, 0x27E7},
	{0x27E8, 0x27E9},
	{0x27EA, 0x27EB},
	{0x27EC, 0x27ED},
	{0x27EE, 0x27EF},
	{0x2983, 0x2984},
	{0x2985, 0x2986},
	{0x2987, 0x2988},
	{0x2989, 0x298A},
	{0x298B, 0x298C},
	{0x2991, 0x2992},
	{0x2993, 0x2994},
	{0x2995, 0x2996},
	{0x2997, 0x2998},
	{0x29D8, 0x29D9},
	{0x29DA, 0x29DB},
	{0x29FC, 0x29FD},
	{0x2E22, 0x2E23},
	{0x2E24, 0x2E25},
	{0x2E26, 0x2E27},
	{0x2E28, 0x2E29},
	{0x3008, 0x3009},
	{0x300A, 0x300B},
	{0x300C, 0x300D},
	{0x300E, 0x300F},
	{0x3010, 0x3011},
	{0x3014, 0x3015},
	{0x3016, 0x3017},
	{0x3018, 0x3019},
	{0x301A, 0x301B},
	{0xFE59, 0xFE5A},
	{0xFE5B, 0xFE5C},
	{0xFE5D, 0xFE5E},
	{0xFF08, 0xFF09},
	{0xFF3B, 0xFF3D},
	{0xFF5B, 0xFF5D},
	{0xFF5F, 0xFF60},
	{0xFF62, 0xFF63},
}

type mirrorPair struct {
	ch, mirror rune
}

// mirrorPairs is the bidi mirroring table from BidiMirroring.txt, sorted
// by character.
var mirrorPairs = []mirrorPair{
	{0x0028, 0x0029},
	{0x0029, 0x0028},
	{0x003C, 0x003E},
	{0x003E, 0x003C},
	{0x005B, 0x005D},
	{0x005D, 0x005B},
	{0x007B, 0x007D},
	{0x007D, 0x007B},
	{0x2045, 0x2046},
	{0x2046, 0x2045},
	{0x2208, 0x220B},
	{0x2209, 0x220C},
	{0x220A, 0x220D},
	{0x220B, 0x2208},
	{0x220C, 0x2209},
	{0x220D, 0x220A},
	{0x2264, 0x2265},
	{0x2265, 0x2264},
	{0x2308, 0x230B},
	{0x2309, 0x230A},
	{0x230A, 0x2309},
	{0x230B, 0x2308},
	{0x2329, 0x232A},
	{0x232A, 0x2329},
	{0x3008, 0x3009},
	{0x3009, 0x3008},
	{0x300A, 0x300B},
	{0x300B, 0x300A},
	{0x3010, 0x3011},
	{0x3011, 0x3010},
	{0x3014, 0x3015},
	{0x3015, 0x3014},
	{0x3016, 0x3017},
	{0x3017, 0x3016},
	{0x3018, 0x3019},
	{0x3019, 0x3018},
	{0x301A, 0x301B},
	{0x301B, 0x301A},
}

type decompEntry struct {
	ch     rune
	compat bool   // mapping is compatibility-only
	seq    []rune // single-step replacement sequence
}

// decompositions holds the tabulated single-step mappings from
// UnicodeData.txt, sorted by character. Hangul syllables are absent by
// design; they decompose arithmetically.
var decompositions = []decompEntry{
	{ch: 0x00C0, seq: []rune{0x0041, 0x0300}},
	{ch: 0x00C1, seq: []rune{0x0041, 0x0301}},
	{ch: 0x00C2, seq: []rune{0x0041, 0x0302}},
	{ch: 0x00C3, seq: []rune{0x0041, 0x0303}},
	{ch: 0x00C4, seq: []rune{0x0041, 0x0308}},
	{ch: 0x00C5, seq: []rune{0x0041, 0x030A}},
	{ch: 0x00C7, seq: []rune{0x0043, 0x0327}},
	{ch: 0x00C8, seq: []rune{0x0045, 0x0300}},
	{ch: 0x00C9, seq: []rune{0x0045, 0x0301}},
	{ch: 0x00CA, seq: []rune{0x0045, 0x0302}},
	{ch: 0x00CB, seq: []rune{0x0045, 0x0308}},
	{ch: 0x00CC, seq: []rune{0x0049, 0x0300}},
	{ch: 0x00CD, seq: []rune{0x0049, 0x0301}},
	{ch: 0x00CE, seq: []rune{0x0049, 0x0302}},
	{ch: 0x00CF, seq: []rune{0x0049, 0x0308}},
	{ch: 0x00D1, seq: []rune{0x004E, 0x0303}},
	{ch: 0x00D2, seq: []rune{0x004F, 0x0300}},
	{ch: 0x00D3, seq: []rune{0x004F, 0x0301}},
	{ch: 0x00D4, seq: []rune{0x004F, 0x0302}},
	{ch: 0x00D5, seq: []rune{0x004F, 0x0303}},
	{ch: 0x00D6, seq: []rune{0x004F, 0x0308}},
	{ch: 0x00D9, seq: []rune{0x0055, 0x0300}},
	{ch: 0x00DA, seq: []rune{0x0055, 0x0301}},
	{ch: 0x00DB, seq: []rune{0x0055, 0x0302}},
	{ch: 0x00DC, seq: []rune{0x0055, 0x0308}},
	{ch: 0x00DD, seq: []rune{0x0059, 0x0301}},
	{ch: 0x00E0, seq: []rune{0x0061, 0x0300}},
	{ch: 0x00E1, seq: []rune{0x0061, 0x0301}},
	{ch: 0x00E2, seq: []rune{0x0061, 0x0302}},
	{ch: 0x00E3, seq: []rune{0x0061, 0x0303}},
	{ch: 0x00E4, seq: []rune{0x0061, 0x0308}},
	{ch: 0x00E5, seq: []rune{0x0061, 0x030A}},
	{ch: 0x00E7, seq: []rune{0x0063, 0x0327}},
	{ch: 0x00E8, seq: []rune{0x0065, 0x0300}},
	{ch: 0x00E9, seq: []rune{0x0065, 0x0301}},
	{ch: 0x00EA, seq: []rune{0x0065, 0x0302}},
	{ch: 0x00EB, seq: []rune{0x0065, 0x0308}},
	{ch: 0x00EC, seq: []rune{0x0069, 0x0300}},
	{ch: 0x00ED, seq: []rune{0x0069, 0x0301}},
	{ch: 0x00EE, seq: []rune{0x0069, 0x0302}},
	{ch: 0x00EF, seq: []rune{0x0069, 0x0308}},
	{ch: 0x00F1, seq: []rune{0x006E, 0x0303}},
	{ch: 0x00F2, seq: []rune{0x006F, 0x0300}},
	{ch: 0x00F3, seq: []rune{0x006F, 0x0301}},
	{ch: 0x00F4, seq: []rune{0x006F, 0x0302}},
	{ch: 0x00F5, seq: []rune{0x006F, 0x0303}},
	{ch: 0x00F6, seq: []rune{0x006F, 0x0308}},
	{ch: 0x00F9, seq: []rune{0x0075, 0x0300}},
	{ch: 0x00FA, seq: []rune{0x0075, 0x0301}},
	{ch: 0x00FB, seq: []rune{0x0075, 0x0302}},
	{ch: 0x00FC, seq: []rune{0x0075, 0x0308}},
	{ch: 0x00FD, seq: []rune{0x0079, 0x0301}},
	{ch: 0x00FF, seq: []rune{0x0079, 0x0308}},
	{ch: 0x0100, seq: []rune{0x0041, 0x0304}},
	{ch: 0x0101, seq: []rune{0x0061, 0x0304}},
	{ch: 0x0102, seq: []rune{0x0041, 0x0306}},
	{ch: 0x0103, seq: []rune{0x0061, 0x0306}},
	{ch: 0x0104, seq: []rune{0x0041, 0x0328}},
	{ch: 0x0105, seq: []rune{0x0061, 0x0328}},
	{ch: 0x0386, seq: []rune{0x0391, 0x0301}},
	{ch: 0x03AC, seq: []rune{0x03B1, 0x0301}},
	{ch: 0x0958, seq: []rune{0x0915, 0x093C}},
	{ch: 0x0959, seq: []rune{0x0916, 0x093C}},
	{ch: 0x095A, seq: []rune{0x0917, 0x093C}},
	{ch: 0x095B, seq: []rune{0x091C, 0x093C}},
	{ch: 0x095C, seq: []rune{0x0921, 0x093C}},
	{ch: 0x095D, seq: []rune{0x0922, 0x093C}},
	{ch: 0x095E, seq: []rune{0x092B, 0x093C}},
	{ch: 0x095F, seq: []rune{0x092F, 0x093C}},
	{ch: 0x1E08, seq: []rune{0x00C7, 0x0301}},
	{ch: 0x1E09, seq: []rune{0x00E7, 0x0301}},
	{ch: 0x2115, compat: true, seq: []rune{0x004E}},
	{ch: 0x2122, compat: true, seq: []rune{0x0054, 0x004D}},
	{ch: 0x2126, seq: []rune{0x03A9}},
	{ch: 0x212B, seq: []rune{0x00C5}},
	{ch: 0x2329, seq: []rune{0x3008}},
	{ch: 0x232A, seq: []rune{0x3009}},
	{ch: 0xFB00, compat: true, seq: []rune{0x0066, 0x0066}},
	{ch: 0xFB01, compat: true, seq: []rune{0x0066, 0x0069}},
	{ch: 0xFB02, compat: true, seq: []rune{0x0066, 0x006C}},
	{ch: 0xFB03, compat: true, seq: []rune{0x0066, 0x0066, 0x0069}},
	{ch: 0xFB04, compat: true, seq: []rune{0x0066, 0x0066, 0x006C}},
	{ch: 0xFF01, compat: true, seq: []rune{0x0021}},
	{ch: 0xFF10, compat: true, seq: []rune{0x0030}},
	{ch: 0xFF11, compat: true, seq: []rune{0x0031}},
	{ch: 0xFF12, compat: true, seq: []rune{0x0032}},
	{ch: 0xFF13, compat: true, seq: []rune{0x0033}},
	{ch: 0xFF14, compat: true, seq: []rune{0x0034}},
	{ch: 0xFF15, compat: true, seq: []rune{0x0035}},
	{ch: 0xFF16, compat: true, seq: []rune{0x0036}},
	{ch: 0xFF17, compat: true, seq: []rune{0x0037}},
	{ch: 0xFF18, compat: true, seq: []rune{0x0038}},
	{ch: 0xFF19, compat: true, seq: []rune{0x0039}},
	{ch: 0xFF21, compat: true, seq: []rune{0x0041}},
	{ch: 0xFF22, compat: true, seq: []rune{0x0042}},
	{ch: 0xFF23, compat: true, seq: []rune{0x0043}},
	{ch: 0xFF24, compat: true, seq: []rune{0x0044}},
	{ch: 0xFF25, compat: true, seq: []rune{0x0045}},
	{ch: 0xFF26, compat: true, seq: []rune{0x0046}},
	{ch: 0xFF41, compat: true, seq: []rune{0x0061}},
	{ch: 0xFF42, compat: true, seq: []rune{0x0062}},
	{ch: 0xFF43, compat: true, seq: []rune{0x0063}},
	{ch: 0xFF44, compat: true, seq: []rune{0x0064}},
	{ch: 0xFF45, compat: true, seq: []rune{0x0065}},
	{ch: 0xFF46, compat: true, seq: []rune{0x0066}},
}

type compEntry struct {
	first, second, composed rune
}

// compositions holds the canonically composable pairs, sorted by
// (first, second). Pairs excluded from composition are already filtered
// out by the generator.
var compositions = []compEntry{
	{0x0041, 0x0300, 0x00C0},
	{0x0041, 0x0301, 0x00C1},
	{0x0041, 0x0302, 0x00C2},
	{0x0041, 0x0303, 0x00C3},
	{0x0041, 0x0304, 0x0100},
	{0x0041, 0x0306, 0x0102},
	{0x0041, 0x0308, 0x00C4},
	{0x0041, 0x030A, 0x00C5},
	{0x0041, 0x0328, 0x0104},
	{0x0043, 0x0327, 0x00C7},
	{0x0045, 0x0300, 0x00C8},
	{0x0045, 0x0301, 0x00C9},
	{0x0045, 0x0302, 0x00CA},
	{0x0045, 0x0308, 0x00CB},
	{0x0049, 0x0300, 0x00CC},
	{0x0049, 0x0301, 0x00CD},
	{0x0049, 0x0302, 0x00CE},
	{0x0049, 0x0308, 0x00CF},
	{0x004E, 0x0303, 0x00D1},
	{0x004F, 0x0300, 0x00D2},
	{0x004F, 0x0301, 0x00D3},
	{0x004F, 0x0302, 0x00D4},
	{0x004F, 0x0303, 0x00D5},
	{0x004F, 0x0308, 0x00D6},
	{0x0055, 0x0300, 0x00D9},
	{0x0055, 0x0301, 0x00DA},
	{0x0055, 0x0302, 0x00DB},
	{0x0055, 0x0308, 0x00DC},
	{0x0059, 0x0301, 0x00DD},
	{0x0061, 0x0300, 0x00E0},
	{0x0061, 0x0301, 0x00E1},
	{0x0061, 0x0302, 0x00E2},
	{0x0061, 0x0303, 0x00E3},
	{0x0061, 0x0304, 0x0101},
	{0x0061, 0x0306, 0x0103},
	{0x0061, 0x0308, 0x00E4},
	{0x0061, 0x030A, 0x00E5},
	{0x0061, 0x0328, 0x0105},
	{0x0063, 0x0327, 0x00E7},
	{0x0065, 0x0300, 0x00E8},
	{0x0065, 0x0301, 0x00E9},
	{0x0065, 0x0302, 0x00EA},
	{0x0065, 0x0308, 0x00EB},
	{0x0069, 0x0300, 0x00EC},
	{0x0069, 0x0301, 0x00ED},
	{0x0069, 0x0302, 0x00EE},
	{0x0069, 0x0308, 0x00EF},
	{0x006E, 0x0303, 0x00F1},
	{0x006F, 0x0300, 0x00F2},
	{0x006F, 0x0301, 0x00F3},
	{0x006F, 0x0302, 0x00F4},
	{0x006F, 0x0303, 0x00F5},
	{0x006F, 0x0308, 0x00F6},
	{0x0075, 0x0300, 0x00F9},
	{0x0075, 0x0301, 0x00FA},
	{0x0075, 0x0302, 0x00FB},
	{0x0075, 0x0308, 0x00FC},
	{0x0079, 0x0301, 0x00FD},
	{0x0079, 0x0308, 0x00FF},
	{0x00C7, 0x0301, 0x1E08},
	{0x00E7, 0x0301, 0x1E09},
	{0x0391, 0x0301, 0x0386},
	{0x03B1, 0x0301, 0x03AC},
}

// compositionExclusions lists characters with a canonical decomposition
// which must never be re-composed: script-specific exclusions from
// CompositionExclusions.txt plus singleton decompositions. Sorted.
var compositionExclusions = []rune{
	0x0958, 0x0959, 0x095A, 0x095B, 0x095C, 0x095D, 0x095E, 0x095F,
	0x2126, 0x212B, 0x2329, 0x232A,
}
