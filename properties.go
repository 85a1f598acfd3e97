package uniprop

import (
	"fmt"
	"sort"
)

// Properties is a compact, constant-time reference to the Unicode
// properties of a single character.
//
// The low 13 bits hold a validated index into the embedded record table and
// are only ever produced by Lookup. The top 2 bits are a transient
// "boundary" scratch field owned by the caller: segmentation algorithms use
// it to annotate code-points between passes. The scratch field carries no
// Unicode semantics, is never shared and never persisted.
//
// Properties is a plain value; copies are independent and reads require no
// synchronization.
type Properties uint16

const (
	recordMask    = 0x1FFF // low 13 bits: record index
	boundaryShift = 13     // top 2 bits: caller-owned scratch
	boundaryMask  = 0x3
)

// Lookup returns the properties of a code-point.
//
// r must be a Unicode scalar value, i.e. in 0…0x10FFFF and not a surrogate.
// Passing anything else violates the calling contract and panics: callers
// are expected to have decoded well-formed text before consulting this
// layer. Unassigned code-points are a normal input and resolve to the
// default record.
func Lookup(r rune) Properties {
	if !isScalarValue(r) {
		tracer().Errorf("uniprop: lookup of invalid scalar value %#U", r)
		panic(fmt.Sprintf("uniprop: %#U is not a Unicode scalar value", r))
	}
	return Properties(recordIndexFor(r))
}

// isScalarValue reports whether r is in the valid code-point domain,
// excluding the surrogate range.
func isScalarValue(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && (r < 0xD800 || r > 0xDFFF)
}

// recordIndexFor finds the record index for a scalar value by binary search
// over the generated range table. Code-points not covered by any range get
// record 0, the default record.
func recordIndexFor(r rune) uint16 {
	n := len(recordRanges)
	i := sort.Search(n, func(i int) bool { return recordRanges[i].hi >= r })
	if i < n && recordRanges[i].lo <= r {
		return recordRanges[i].record
	}
	return 0
}

// record resolves the handle to its shared record. The index is validated
// at construction time, so the slice access cannot fail for handles
// produced by Lookup.
func (p Properties) record() *Record {
	return &records[p&recordMask]
}

// Category returns the general category of the character.
func (p Properties) Category() Category {
	return p.record().Category
}

// Block returns the Unicode block that contains the character.
func (p Properties) Block() Block {
	return p.record().Block
}

// Script returns the script to which the character belongs.
func (p Properties) Script() Script {
	return p.record().Script
}

// CombiningClass returns the canonical combining class of the character.
func (p Properties) CombiningClass() uint8 {
	return p.record().CombiningClass
}

// BidiClass returns the bidirectional class of the character.
func (p Properties) BidiClass() BidiClass {
	return p.record().BidiClass
}

// JoiningType returns the cursive joining type of the character.
func (p Properties) JoiningType() JoiningType {
	return p.record().JoiningType
}

// ClusterBreak returns the grapheme cluster break class of the character.
func (p Properties) ClusterBreak() ClusterBreak {
	return p.record().ClusterBreak
}

// WordBreak returns the word break class of the character.
func (p Properties) WordBreak() WordBreak {
	return p.record().WordBreak
}

// LineBreak returns the line break class of the character.
func (p Properties) LineBreak() LineBreak {
	return p.record().LineBreak
}

// IsEmoji returns true if the character is an emoji.
func (p Properties) IsEmoji() bool {
	return p.record().Flags.IsEmoji()
}

// IsExtendedPictographic returns true if the character is an extended
// pictographic symbol.
func (p Properties) IsExtendedPictographic() bool {
	return p.record().Flags.IsExtendedPictographic()
}

// IsOpenBracket returns true if the character is an opening paired bracket.
func (p Properties) IsOpenBracket() bool {
	return p.record().Flags.IsOpenBracket()
}

// IsCloseBracket returns true if the character is a closing paired bracket.
func (p Properties) IsCloseBracket() bool {
	return p.record().Flags.IsCloseBracket()
}

// IsIgnorable returns true for default-ignorable code-points.
func (p Properties) IsIgnorable() bool {
	return p.record().Flags.IsIgnorable()
}

// IsVariationSelector returns true for variation selectors.
func (p Properties) IsVariationSelector() bool {
	return p.record().Flags.IsVariationSelector()
}

// ContributesToShaping returns true for code-points which take part in
// contextual shaping, i.e. marks and joining controls.
func (p Properties) ContributesToShaping() bool {
	return p.record().Flags.ContributesToShaping()
}

// UseClass returns the Universal Shaping Engine class of the character,
// together with the decomposition and extended-pictographic indicators a
// USE shaper consults next to it: a base that carries a canonical
// decomposition is decomposed before syllable analysis, and pictographic
// sequences bypass the syllable machine altogether.
func (p Properties) UseClass() (UseClass, bool, bool) {
	r := p.record()
	return r.UseClass, r.Flags.NeedsDecomposition(), r.Flags.IsExtendedPictographic()
}

// MyanmarClass returns the Myanmar shaper class of the character and the
// extended-pictographic indicator.
func (p Properties) MyanmarClass() (MyanmarClass, bool) {
	r := p.record()
	return r.MyanmarClass, r.Flags.IsExtendedPictographic()
}

// ClusterClass returns the grapheme cluster break class together with the
// extended-pictographic indicator, the pair the default cluster-based
// shaping strategy works from.
func (p Properties) ClusterClass() (ClusterBreak, bool) {
	r := p.record()
	return r.ClusterBreak, r.Flags.IsExtendedPictographic()
}

// Boundary returns the caller-owned 2 bit scratch field.
func (p Properties) Boundary() uint16 {
	return uint16(p) >> boundaryShift
}

// WithBoundary returns a copy of p with the scratch field set to the low
// 2 bits of b. The receiver is unchanged; no shared state is involved.
func (p Properties) WithBoundary(b uint16) Properties {
	p.SetBoundary(b)
	return p
}

// SetBoundary sets the scratch field on the caller's local value.
func (p *Properties) SetBoundary(b uint16) {
	*p = Properties(uint16(*p)&recordMask | (b&boundaryMask)<<boundaryShift)
}
