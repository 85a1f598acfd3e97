package uniprop

// Codepoint is the classification capability set. Any scalar-value-like
// type can take part in classification by providing its Properties; all
// other accessors have the obvious derived meaning. Char implements the
// interface for plain runes; a shaper's glyph type or a segmenter's token
// type may implement it as well.
//
// The interface is intentionally not exhaustive. Capabilities with no
// per-code-point reading stay off it: pairwise composition takes two runes
// and lives in the package function ComposePair, and the boolean flag set
// (bracket sidedness, ignorability, variation selectors and friends, see
// PropertyFlags) as well as the shaping sub-classes are read through the
// accessors of Properties().
type Codepoint interface {
	Properties() Properties
	Category() Category
	Block() Block
	Script() Script
	CombiningClass() uint8
	BidiClass() BidiClass
	JoiningType() JoiningType
	ClusterBreak() ClusterBreak
	WordBreak() WordBreak
	LineBreak() LineBreak
	IsEmoji() bool
	IsExtendedPictographic() bool
	BracketType() BracketType
	OpeningBracket() (rune, bool)
	ClosingBracket() (rune, bool)
	Mirror() (rune, bool)
	Decompose() Decompose
	DecomposeCompat() Decompose
}

// Char attaches the full classification surface to a rune.
type Char rune

var _ Codepoint = Char(0)

// Properties returns the code-point properties.
func (c Char) Properties() Properties {
	return Lookup(rune(c))
}

// Category returns the general category of the character.
func (c Char) Category() Category {
	return c.Properties().Category()
}

// Block returns the Unicode block that contains the character.
func (c Char) Block() Block {
	return c.Properties().Block()
}

// Script returns the script to which the character belongs.
func (c Char) Script() Script {
	return c.Properties().Script()
}

// CombiningClass returns the canonical combining class of the character.
func (c Char) CombiningClass() uint8 {
	return c.Properties().CombiningClass()
}

// BidiClass returns the bidirectional class of the character.
func (c Char) BidiClass() BidiClass {
	return c.Properties().BidiClass()
}

// JoiningType returns the cursive joining type of the character.
func (c Char) JoiningType() JoiningType {
	return c.Properties().JoiningType()
}

// ClusterBreak returns the grapheme cluster break class of the character.
func (c Char) ClusterBreak() ClusterBreak {
	return c.Properties().ClusterBreak()
}

// WordBreak returns the word break class of the character.
func (c Char) WordBreak() WordBreak {
	return c.Properties().WordBreak()
}

// LineBreak returns the line break class of the character.
func (c Char) LineBreak() LineBreak {
	return c.Properties().LineBreak()
}

// IsEmoji returns true if the character is an emoji.
func (c Char) IsEmoji() bool {
	return c.Properties().IsEmoji()
}

// IsExtendedPictographic returns true if the character is an extended
// pictographic symbol.
func (c Char) IsExtendedPictographic() bool {
	return c.Properties().IsExtendedPictographic()
}

// BracketType classifies the character against the paired-bracket table.
func (c Char) BracketType() BracketType {
	return BracketTypeOf(rune(c))
}

// OpeningBracket returns the opening partner if the character is a closing
// bracket.
func (c Char) OpeningBracket() (rune, bool) {
	return OpeningBracket(rune(c))
}

// ClosingBracket returns the closing partner if the character is an opening
// bracket.
func (c Char) ClosingBracket() (rune, bool) {
	return ClosingBracket(rune(c))
}

// Mirror returns the bidi-mirrored counterpart of the character, if any.
func (c Char) Mirror() (rune, bool) {
	return Mirror(rune(c))
}

// Decompose returns the canonical decomposition of the character.
func (c Char) Decompose() Decompose {
	return DecomposeRune(rune(c))
}

// DecomposeCompat returns the compatibility decomposition of the character.
func (c Char) DecomposeCompat() Decompose {
	return DecomposeCompat(rune(c))
}
