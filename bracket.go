package uniprop

import "sort"

// BracketKind discriminates the three outcomes of bracket classification.
type BracketKind int8

// Bracket kinds.
const (
	BracketNone  BracketKind = iota // not a paired bracket
	BracketOpen                     // opening bracket
	BracketClose                    // closing bracket
)

// BracketType is the result of classifying a character against the bidi
// paired-bracket table. For an opening bracket, Partner is the associated
// closing bracket, and vice versa.
type BracketType struct {
	Kind    BracketKind
	Partner rune
}

// ClosingBracket returns the closing partner of an opening paired bracket.
// The second return value is false if r is not registered as an opening
// bracket; this is the normal outcome for most characters, not an error.
func ClosingBracket(r rune) (rune, bool) {
	n := len(bracketPairs)
	i := sort.Search(n, func(i int) bool { return bracketPairs[i].open >= r })
	if i < n && bracketPairs[i].open == r {
		return bracketPairs[i].close, true
	}
	return 0, false
}

// OpeningBracket returns the opening partner of a closing paired bracket,
// or false if r is not registered as a closing bracket.
//
// The closing column of the pair table is monotonically increasing (pairs
// are adjacent code-points), so it can be searched directly.
func OpeningBracket(r rune) (rune, bool) {
	n := len(bracketPairs)
	i := sort.Search(n, func(i int) bool { return bracketPairs[i].close >= r })
	if i < n && bracketPairs[i].close == r {
		return bracketPairs[i].open, true
	}
	return 0, false
}

// BracketTypeOf classifies r as an opening bracket, a closing bracket, or
// neither. A character is tested as an opener first and only then as a
// closer; a code-point present in both columns therefore always resolves
// as BracketOpen. This ordering is kept for parity with the reference
// bracket matching and must not be reordered.
func BracketTypeOf(r rune) BracketType {
	if c, ok := ClosingBracket(r); ok {
		return BracketType{Kind: BracketOpen, Partner: c}
	}
	if o, ok := OpeningBracket(r); ok {
		return BracketType{Kind: BracketClose, Partner: o}
	}
	return BracketType{Kind: BracketNone}
}

// Mirror returns the bidi-mirrored counterpart of r, as used when rendering
// neutral characters in right-to-left runs. The second return value is
// false if r has no mirrored form.
func Mirror(r rune) (rune, bool) {
	n := len(mirrorPairs)
	i := sort.Search(n, func(i int) bool { return mirrorPairs[i].ch >= r })
	if i < n && mirrorPairs[i].ch == r {
		return mirrorPairs[i].mirror, true
	}
	return 0, false
}
