package uniprop

import "strconv"

// Per-script sub-classifications used to pick and drive a shaping strategy.
// Complex-script shapers do not work off the general category alone: the
// Universal Shaping Engine parses syllables over its own character classes,
// and the Myanmar script carries a dedicated classification of its medials
// and tone marks. Both classes are carried in the character record and read
// through Properties.

// UseClass is the character class of the Universal Shaping Engine, derived
// from the UCD's Indic syllabic and positional categories. The zero value
// UseO marks characters that take no part in USE syllables.
type UseClass uint8

// USE character classes. Positional variants (Abv, Blw, Pre, Pst) follow
// the Indic positional category of the mark.
const (
	UseO    UseClass = iota // other
	UseB                    // base consonant
	UseN                    // base number
	UseGB                   // generic base (placeholder)
	UseCGJ                  // combining grapheme joiner
	UseWJ                   // word joiner
	UseZWNJ                 // zero width non-joiner
	UseR                    // repha
	UseCS                   // consonant with stacker
	UseIS                   // invisible stacker
	UseSk                   // sakot
	UseH                    // halant / pure killer
	UseHN                   // halant number
	UseHVM                  // halant or vowel modifier
	UseSUB                  // subjoined consonant
	UseV                    // dependent vowel, no position
	UseVPre                 // dependent vowel, pre-base
	UseVAbv                 // dependent vowel, above base
	UseVBlw                 // dependent vowel, below base
	UseVPst                 // dependent vowel, post-base
	UseVM                   // vowel modifier, no position
	UseVMPre
	UseVMAbv
	UseVMBlw
	UseVMPst
	UseCM // consonant modifier, no position
	UseCMAbv
	UseCMBlw
	UseF // final consonant, no position
	UseFAbv
	UseFBlw
	UseFPst
	UseFM // final consonant modifier, no position
	UseFMAbv
	UseFMBlw
	UseFMPst
	UseM // medial consonant, no position
	UseMPre
	UseMAbv
	UseMBlw
	UseMPst
	UseSM // syllable modifier, no position
	UseSMAbv
	UseSMBlw
)

var useClassNames = [...]string{"O", "B", "N", "GB", "CGJ", "WJ", "ZWNJ",
	"R", "CS", "IS", "Sk", "H", "HN", "HVM", "SUB", "V", "VPre", "VAbv",
	"VBlw", "VPst", "VM", "VMPre", "VMAbv", "VMBlw", "VMPst", "CM", "CMAbv",
	"CMBlw", "F", "FAbv", "FBlw", "FPst", "FM", "FMAbv", "FMBlw", "FMPst",
	"M", "MPre", "MAbv", "MBlw", "MPst", "SM", "SMAbv", "SMBlw"}

func (u UseClass) String() string {
	if int(u) >= len(useClassNames) {
		return "UseClass(" + strconv.Itoa(int(u)) + ")"
	}
	return useClassNames[u]
}

// MyanmarClass is the character classification the Myanmar shaper parses
// syllables over. It discriminates the four medial consonants and the
// Myanmar-specific signs which the USE classes collapse. The zero value
// MyanmarO marks characters outside the Myanmar syllable model.
type MyanmarClass uint8

// Myanmar character classes.
const (
	MyanmarO    MyanmarClass = iota // other
	MyanmarC                        // consonant
	MyanmarV                        // independent vowel
	MyanmarA                        // anusvara
	MyanmarAs                       // asat (visible killer)
	MyanmarD                        // digit
	MyanmarDB                       // dot below
	MyanmarGB                       // generic base
	MyanmarH                        // halant (stacking virama)
	MyanmarMH                       // medial ha
	MyanmarMR                       // medial ra
	MyanmarMW                       // medial wa
	MyanmarMY                       // medial ya
	MyanmarP                        // punctuation
	MyanmarPT                       // pwo tone mark
	MyanmarSM                       // syllable modifier (visarga, Shan tones)
	MyanmarVAbv                     // vowel sign above
	MyanmarVBlw                     // vowel sign below
	MyanmarVPre                     // vowel sign pre-base
	MyanmarVPst                     // vowel sign post-base
	MyanmarVS                       // variation selector
	MyanmarZWJ                      // zero width joiner
	MyanmarZWNJ                     // zero width non-joiner
)

var myanmarClassNames = [...]string{"O", "C", "V", "A", "As", "D", "DB",
	"GB", "H", "MH", "MR", "MW", "MY", "P", "PT", "SM", "VAbv", "VBlw",
	"VPre", "VPst", "VS", "ZWJ", "ZWNJ"}

func (m MyanmarClass) String() string {
	if int(m) >= len(myanmarClassNames) {
		return "MyanmarClass(" + strconv.Itoa(int(m)) + ")"
	}
	return myanmarClassNames[m]
}
