package uniprop

// Record is the set of intrinsic Unicode properties shared by all
// code-points of one behavior class. Records are deduplicated by the table
// generator: many code-points index the same record, and record 0 is the
// default record for unassigned code-points.
//
// Records are immutable and shared read-only for the lifetime of the
// process. Clients do not normally handle records directly, but read their
// fields through the accessors of Properties.
type Record struct {
	Category       Category     // general category
	Block          Block        // containing Unicode block
	Script         Script       // script membership
	CombiningClass uint8        // canonical combining class (ccc)
	BidiClass      BidiClass    // UAX#9 bidi class
	JoiningType    JoiningType  // Arabic-style cursive joining type
	ClusterBreak   ClusterBreak // UAX#29 grapheme cluster break class
	WordBreak      WordBreak    // UAX#29 word break class
	LineBreak      LineBreak    // UAX#14 line break class
	UseClass       UseClass     // Universal Shaping Engine class
	MyanmarClass   MyanmarClass // Myanmar shaper class
	Flags          PropertyFlags
}

// PropertyFlags is a bitset of boolean per-character properties carried by
// a Record.
type PropertyFlags uint16

// Flag bits, as emitted by the table generator.
const (
	FlagEmoji                PropertyFlags = 1 << iota // Emoji=Yes
	FlagExtendedPictographic                           // Extended_Pictographic=Yes
	FlagOpenBracket                                    // Bidi_Paired_Bracket_Type=Open
	FlagCloseBracket                                   // Bidi_Paired_Bracket_Type=Close
	FlagIgnorable                                      // Default_Ignorable_Code_Point=Yes
	FlagVariationSelector                              // Variation_Selector=Yes
	FlagContributesToShaping                           // mark or joiner relevant during shaping
	FlagNeedsDecomposition                             // has a canonical decomposition
)

// IsEmoji returns true if the emoji flag is set.
func (f PropertyFlags) IsEmoji() bool {
	return f&FlagEmoji != 0
}

// IsExtendedPictographic returns true if the extended pictographic flag is set.
func (f PropertyFlags) IsExtendedPictographic() bool {
	return f&FlagExtendedPictographic != 0
}

// IsOpenBracket returns true if the character class is an opening paired bracket.
func (f PropertyFlags) IsOpenBracket() bool {
	return f&FlagOpenBracket != 0
}

// IsCloseBracket returns true if the character class is a closing paired bracket.
func (f PropertyFlags) IsCloseBracket() bool {
	return f&FlagCloseBracket != 0
}

// IsIgnorable returns true for default-ignorable code-points.
func (f PropertyFlags) IsIgnorable() bool {
	return f&FlagIgnorable != 0
}

// IsVariationSelector returns true for variation selectors.
func (f PropertyFlags) IsVariationSelector() bool {
	return f&FlagVariationSelector != 0
}

// ContributesToShaping returns true for code-points a shaper must not
// simply pass through, i.e. marks and joining controls.
func (f PropertyFlags) ContributesToShaping() bool {
	return f&FlagContributesToShaping != 0
}

// NeedsDecomposition returns true if the character class carries a
// canonical decomposition mapping.
func (f PropertyFlags) NeedsDecomposition() bool {
	return f&FlagNeedsDecomposition != 0
}
