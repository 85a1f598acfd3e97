package uniprop

import "strconv"

// BidiClass is the UAX#9 bidirectional class of a character.
//
// Each class occupies a distinct bit position below 32, so that class sets
// can be represented as 32 bit masks (see Mask).
type BidiClass int8

// Bidi classes. L (left-to-right) is the zero value and the class of the
// default record.
const (
	BidiL   BidiClass = iota // left-to-right
	BidiR                    // right-to-left
	BidiAL                   // Arabic letter
	BidiAN                   // Arabic number
	BidiEN                   // European number
	BidiES                   // European number separator
	BidiET                   // European number terminator
	BidiNSM                  // nonspacing mark
	BidiBN                   // boundary neutral
	BidiB                    // paragraph separator
	BidiS                    // segment separator
	BidiWS                   // whitespace
	BidiON                   // other neutral
	BidiCS                   // common number separator
	BidiLRE                  // left-to-right embedding
	BidiRLE                  // right-to-left embedding
	BidiLRO                  // left-to-right override
	BidiRLO                  // right-to-left override
	BidiPDF                  // pop directional format
	BidiLRI                  // left-to-right isolate
	BidiRLI                  // right-to-left isolate
	BidiFSI                  // first strong isolate
	BidiPDI                  // pop directional isolate
)

var bidiClassNames = [...]string{"L", "R", "AL", "AN", "EN", "ES", "ET",
	"NSM", "BN", "B", "S", "WS", "ON", "CS", "LRE", "RLE", "LRO", "RLO",
	"PDF", "LRI", "RLI", "FSI", "PDI"}

func (c BidiClass) String() string {
	if c < 0 || int(c) >= len(bidiClassNames) {
		return "BidiClass(" + strconv.Itoa(int(c)) + ")"
	}
	return bidiClassNames[c]
}

// Mask returns the bidi class as a 32 bit bitmask.
func (c BidiClass) Mask() uint32 {
	return 1 << uint32(c)
}

// Class sets relevant to NeedsResolution. Overrides and embeddings, the
// isolates, and the strong right-to-left classes.
const (
	bidiOverrideMask = (1 << uint32(BidiRLE)) | (1 << uint32(BidiLRE)) |
		(1 << uint32(BidiRLO)) | (1 << uint32(BidiLRO))
	bidiIsolateMask  = (1 << uint32(BidiRLI)) | (1 << uint32(BidiLRI)) | (1 << uint32(BidiFSI))
	bidiExplicitMask = bidiOverrideMask | bidiIsolateMask
	bidiStrongRMask  = (1 << uint32(BidiR)) | (1 << uint32(BidiAL)) | (1 << uint32(BidiAN))
	bidiResolveMask  = bidiExplicitMask | bidiStrongRMask
)

// NeedsResolution returns true iff the presence of this bidi class in a run
// of text requires running the UAX#9 resolution algorithm. A run whose
// classes all answer false may be treated as plain left-to-right, skipping
// bidi processing entirely.
func (c BidiClass) NeedsResolution() bool {
	return c.Mask()&bidiResolveMask != 0
}
