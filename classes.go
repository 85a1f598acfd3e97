package uniprop

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// Enumeration types for the per-character classification properties, derived
// from the Unicode Character Database, version 15.0.0. The numeric values of
// the constants are part of the generated-table contract: they index the name
// tables below and are embedded in the record table. Changing the underlying
// UCD release is a breaking change for clients persisting raw values.

import "strconv"

// Category is the Unicode general category of a character.
type Category int8

// General categories. Cn (unassigned) is the zero value, so that the
// default record classifies as unassigned.
const (
	Cn Category = iota // Unassigned
	Lu                 // Uppercase_Letter
	Ll                 // Lowercase_Letter
	Lt                 // Titlecase_Letter
	Lm                 // Modifier_Letter
	Lo                 // Other_Letter
	Mn                 // Nonspacing_Mark
	Mc                 // Spacing_Mark
	Me                 // Enclosing_Mark
	Nd                 // Decimal_Number
	Nl                 // Letter_Number
	No                 // Other_Number
	Pc                 // Connector_Punctuation
	Pd                 // Dash_Punctuation
	Ps                 // Open_Punctuation
	Pe                 // Close_Punctuation
	Pi                 // Initial_Punctuation
	Pf                 // Final_Punctuation
	Po                 // Other_Punctuation
	Sm                 // Math_Symbol
	Sc                 // Currency_Symbol
	Sk                 // Modifier_Symbol
	So                 // Other_Symbol
	Zs                 // Space_Separator
	Zl                 // Line_Separator
	Zp                 // Paragraph_Separator
	Cc                 // Control
	Cf                 // Format
	Cs                 // Surrogate
	Co                 // Private_Use
)

var categoryNames = [...]string{"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn",
	"Mc", "Me", "Nd", "Nl", "No", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So", "Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Block identifies the Unicode block containing a character.
type Block int16

// Unicode blocks referenced by the embedded record table. NoBlock is the
// zero value used by the default record.
const (
	NoBlock Block = iota
	BasicLatin
	Latin1Supplement
	LatinExtendedA
	LatinExtendedB
	CombiningDiacriticalMarks
	GreekAndCoptic
	CyrillicBlock
	HebrewBlock
	ArabicBlock
	DevanagariBlock
	ThaiBlock
	HangulJamo
	LatinExtendedAdditional
	GeneralPunctuation
	CurrencySymbols
	LetterlikeSymbols
	Arrows
	MathematicalOperators
	MiscellaneousTechnical
	MiscellaneousSymbols
	Dingbats
	CJKSymbolsAndPunctuation
	HiraganaBlock
	KatakanaBlock
	CJKUnifiedIdeographs
	HangulSyllables
	AlphabeticPresentationForms
	VariationSelectors
	HalfwidthAndFullwidthForms
	EnclosedAlphanumericSupplement
	MiscellaneousSymbolsAndPictographs
	Emoticons
	TransportAndMapSymbols
)

var blockNames = [...]string{"No_Block", "Basic Latin", "Latin-1 Supplement",
	"Latin Extended-A", "Latin Extended-B", "Combining Diacritical Marks",
	"Greek and Coptic", "Cyrillic", "Hebrew", "Arabic", "Devanagari", "Thai",
	"Hangul Jamo", "Latin Extended Additional", "General Punctuation",
	"Currency Symbols",
	"Letterlike Symbols", "Arrows", "Mathematical Operators",
	"Miscellaneous Technical", "Miscellaneous Symbols", "Dingbats",
	"CJK Symbols and Punctuation", "Hiragana", "Katakana",
	"CJK Unified Ideographs", "Hangul Syllables",
	"Alphabetic Presentation Forms", "Variation Selectors",
	"Halfwidth and Fullwidth Forms", "Enclosed Alphanumeric Supplement",
	"Miscellaneous Symbols and Pictographs", "Emoticons",
	"Transport and Map Symbols"}

func (b Block) String() string {
	if b < 0 || int(b) >= len(blockNames) {
		return "Block(" + strconv.Itoa(int(b)) + ")"
	}
	return blockNames[b]
}

// JoiningType is the Arabic-style cursive joining type of a character,
// from ArabicShaping.txt.
type JoiningType int8

// Joining types. Non-joining is the zero value.
const (
	JoiningNone        JoiningType = iota // U: non-joining
	JoiningLeft                           // L: left-joining
	JoiningRight                          // R: right-joining
	JoiningDual                           // D: dual-joining
	JoiningCausing                        // C: join-causing (e.g. ZWJ, tatweel)
	JoiningTransparent                    // T: transparent (marks)
)

var joiningTypeNames = [...]string{"U", "L", "R", "D", "C", "T"}

func (t JoiningType) String() string {
	if t < 0 || int(t) >= len(joiningTypeNames) {
		return "JoiningType(" + strconv.Itoa(int(t)) + ")"
	}
	return joiningTypeNames[t]
}

// ClusterBreak is the UAX#29 grapheme cluster break class of a character.
type ClusterBreak int8

// Grapheme cluster break classes.
const (
	ClusterAny ClusterBreak = iota
	ClusterCR
	ClusterLF
	ClusterControl
	ClusterExtend
	ClusterZWJ
	ClusterRegionalIndicator
	ClusterPrepend
	ClusterSpacingMark
	ClusterL   // Hangul leading consonant
	ClusterV   // Hangul vowel
	ClusterT   // Hangul trailing consonant
	ClusterLV  // Hangul LV syllable
	ClusterLVT // Hangul LVT syllable
)

var clusterBreakNames = [...]string{"Any", "CR", "LF", "Control", "Extend",
	"ZWJ", "Regional_Indicator", "Prepend", "SpacingMark", "L", "V", "T",
	"LV", "LVT"}

func (c ClusterBreak) String() string {
	if c < 0 || int(c) >= len(clusterBreakNames) {
		return "ClusterBreak(" + strconv.Itoa(int(c)) + ")"
	}
	return clusterBreakNames[c]
}

// WordBreak is the UAX#29 word break class of a character.
type WordBreak int8

// Word break classes.
const (
	WordOther WordBreak = iota
	WordCR
	WordLF
	WordNewline
	WordExtend
	WordZWJ
	WordRegionalIndicator
	WordFormat
	WordKatakana
	WordHebrewLetter
	WordALetter
	WordSingleQuote
	WordDoubleQuote
	WordMidNumLet
	WordMidLetter
	WordMidNum
	WordNumeric
	WordExtendNumLet
	WordWSegSpace
)

var wordBreakNames = [...]string{"Other", "CR", "LF", "Newline", "Extend",
	"ZWJ", "Regional_Indicator", "Format", "Katakana", "Hebrew_Letter",
	"ALetter", "Single_Quote", "Double_Quote", "MidNumLet", "MidLetter",
	"MidNum", "Numeric", "ExtendNumLet", "WSegSpace"}

func (w WordBreak) String() string {
	if w < 0 || int(w) >= len(wordBreakNames) {
		return "WordBreak(" + strconv.Itoa(int(w)) + ")"
	}
	return wordBreakNames[w]
}

// Mask returns the word break class as a 32 bit bitmask. Segmenters use
// unions of masks to test run membership cheaply.
func (w WordBreak) Mask() uint32 {
	return 1 << uint32(w)
}

// LineBreak is the UAX#14 line break class of a character.
type LineBreak int8

// Line break classes. XX (unknown) is the zero value.
const (
	LineXX  LineBreak = iota // unknown
	LineAI                   // ambiguous (alphabetic or ideographic)
	LineAL                   // ordinary alphabetic
	LineB2                   // break opportunity before and after
	LineBA                   // break after
	LineBB                   // break before
	LineBK                   // mandatory break
	LineCB                   // contingent break
	LineCJ                   // conditional Japanese starter
	LineCL                   // close punctuation
	LineCM                   // combining mark
	LineCP                   // close parenthesis
	LineCR                   // carriage return
	LineEB                   // emoji base
	LineEM                   // emoji modifier
	LineEX                   // exclamation
	LineGL                   // glue / non-breaking
	LineH2                   // Hangul LV syllable
	LineH3                   // Hangul LVT syllable
	LineHL                   // Hebrew letter
	LineHY                   // hyphen
	LineID                   // ideographic
	LineIN                   // inseparable
	LineIS                   // infix numeric separator
	LineJL                   // Hangul leading jamo
	LineJT                   // Hangul trailing jamo
	LineJV                   // Hangul vowel jamo
	LineLF                   // line feed
	LineNL                   // next line
	LineNS                   // nonstarter
	LineNU                   // numeric
	LineOP                   // open punctuation
	LinePO                   // postfix numeric
	LinePR                   // prefix numeric
	LineQU                   // quotation
	LineRI                   // regional indicator
	LineSA                   // complex-context dependent (South East Asian)
	LineSG                   // surrogate
	LineSP                   // space
	LineSY                   // symbols allowing break after
	LineWJ                   // word joiner
	LineZW                   // zero width space
	LineZWJ                  // zero width joiner
)

var lineBreakNames = [...]string{"XX", "AI", "AL", "B2", "BA", "BB", "BK",
	"CB", "CJ", "CL", "CM", "CP", "CR", "EB", "EM", "EX", "GL", "H2", "H3",
	"HL", "HY", "ID", "IN", "IS", "JL", "JT", "JV", "LF", "NL", "NS", "NU",
	"OP", "PO", "PR", "QU", "RI", "SA", "SG", "SP", "SY", "WJ", "ZW", "ZWJ"}

func (l LineBreak) String() string {
	if l < 0 || int(l) >= len(lineBreakNames) {
		return "LineBreak(" + strconv.Itoa(int(l)) + ")"
	}
	return lineBreakNames[l]
}
