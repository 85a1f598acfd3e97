package uniprop

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/unicode/norm"
)

func TestLookupReferenceValues(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		ch       rune
		category Category
		script   Script
		bidi     BidiClass
	}{
		{'A', Lu, Latin, BidiL},
		{'z', Ll, Latin, BidiL},
		{'7', Nd, Common, BidiEN},
		{' ', Zs, Common, BidiWS},
		{0x05D0, Lo, Hebrew, BidiR},      // ALEF
		{0x0628, Lo, Arabic, BidiAL},     // BEH
		{0x0660, Nd, Arabic, BidiAN},     // ARABIC-INDIC ZERO
		{0x0301, Mn, Inherited, BidiNSM}, // COMBINING ACUTE
		{0x4E2D, Lo, Han, BidiL},
		{0x3042, Lo, Hiragana, BidiL},
		{0xAC00, Lo, Hangul, BidiL},
	}
	for _, c := range cases {
		props := Lookup(c.ch)
		if cat := props.Category(); cat != c.category {
			t.Errorf("category of %#U should be %s, is %s", c.ch, c.category, cat)
		}
		if s := props.Script(); s != c.script {
			t.Errorf("script of %#U should be %s, is %s", c.ch, c.script, s)
		}
		if b := props.BidiClass(); b != c.bidi {
			t.Errorf("bidi class of %#U should be %s, is %s", c.ch, c.bidi, b)
		}
	}
}

func TestLookupBlocks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if b := Lookup('A').Block(); b != BasicLatin {
		t.Errorf("block of 'A' should be Basic Latin, is %s", b)
	}
	if b := Lookup(0x1F600).Block(); b != Emoticons {
		t.Errorf("block of U+1F600 should be Emoticons, is %s", b)
	}
	if b := Lookup(0x0591).Block(); b != HebrewBlock {
		t.Errorf("block of U+0591 should be Hebrew, is %s", b)
	}
}

func TestLookupLatinExtendedA(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	props := Lookup(0x0100) // LATIN CAPITAL LETTER A WITH MACRON
	if props.Category() != Lu || props.Script() != Latin {
		t.Errorf("%#U should be an uppercase Latin letter", rune(0x0100))
	}
	if props.Block() != LatinExtendedA {
		t.Errorf("block of %#U should be Latin Extended-A, is %s", rune(0x0100), props.Block())
	}
	if !props.record().Flags.NeedsDecomposition() {
		t.Errorf("%#U should carry a decomposition", rune(0x0100))
	}
	if c := Lookup(0x0105).Category(); c != Ll {
		t.Errorf("%#U should be a lowercase letter, is %s", rune(0x0105), c)
	}
	if composed, ok := ComposePair(0x0041, 0x0304); !ok || composed != 0x0100 {
		t.Errorf("A + macron should compose to %#U, got %#U (ok=%v)", rune(0x0100), composed, ok)
	}
}

func TestLookupCombiningClass(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	marks := []rune{0x0300, 0x0301, 0x0316, 0x0327, 0x0334, 0x0345, 0x064B, 0x0651}
	for _, m := range marks {
		want := norm.NFD.PropertiesString(string(m)).CCC()
		if got := Lookup(m).CombiningClass(); got != want {
			t.Errorf("combining class of %#U should be %d, is %d", m, want, got)
		}
	}
	if ccc := Lookup('A').CombiningClass(); ccc != 0 {
		t.Errorf("combining class of 'A' should be 0, is %d", ccc)
	}
}

func TestLookupJoiningTypes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		ch rune
		jt JoiningType
	}{
		{0x0621, JoiningNone},    // HAMZA
		{0x0627, JoiningRight},   // ALEF
		{0x0628, JoiningDual},    // BEH
		{0x0640, JoiningCausing}, // TATWEEL
		{0x0301, JoiningTransparent},
		{0x200D, JoiningCausing}, // ZWJ
		{'A', JoiningNone},
	}
	for _, c := range cases {
		if jt := Lookup(c.ch).JoiningType(); jt != c.jt {
			t.Errorf("joining type of %#U should be %s, is %s", c.ch, c.jt, jt)
		}
	}
}

func TestLookupBreakClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if cb := Lookup('\r').ClusterBreak(); cb != ClusterCR {
		t.Errorf("cluster class of CR should be ClusterCR, is %s", cb)
	}
	if cb := Lookup(0x200D).ClusterBreak(); cb != ClusterZWJ {
		t.Errorf("cluster class of ZWJ should be ClusterZWJ, is %s", cb)
	}
	if cb := Lookup(0xAC00).ClusterBreak(); cb != ClusterLV {
		t.Errorf("cluster class of U+AC00 should be ClusterLV, is %s", cb)
	}
	if cb := Lookup(0xAC01).ClusterBreak(); cb != ClusterLVT {
		t.Errorf("cluster class of U+AC01 should be ClusterLVT, is %s", cb)
	}
	if cb := Lookup(0x1100).ClusterBreak(); cb != ClusterL {
		t.Errorf("cluster class of U+1100 should be ClusterL, is %s", cb)
	}
	if wb := Lookup('7').WordBreak(); wb != WordNumeric {
		t.Errorf("word class of '7' should be WordNumeric, is %s", wb)
	}
	if wb := Lookup(0x05D0).WordBreak(); wb != WordHebrewLetter {
		t.Errorf("word class of U+05D0 should be WordHebrewLetter, is %s", wb)
	}
	if lb := Lookup('A').LineBreak(); lb != LineAL {
		t.Errorf("line class of 'A' should be LineAL, is %s", lb)
	}
	if lb := Lookup('(').LineBreak(); lb != LineOP {
		t.Errorf("line class of '(' should be LineOP, is %s", lb)
	}
	if lb := Lookup(0x00A0).LineBreak(); lb != LineGL {
		t.Errorf("line class of NBSP should be LineGL, is %s", lb)
	}
}

func TestLookupFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if !Lookup(0x1F600).IsEmoji() {
		t.Error("U+1F600 should be flagged as emoji")
	}
	if !Lookup(0x1F600).IsExtendedPictographic() {
		t.Error("U+1F600 should be flagged as extended pictographic")
	}
	if Lookup('A').IsEmoji() {
		t.Error("'A' should not be flagged as emoji")
	}
	if !Lookup('(').IsOpenBracket() || Lookup('(').IsCloseBracket() {
		t.Error("'(' should be an opening paired bracket only")
	}
	if !Lookup(')').IsCloseBracket() {
		t.Error("')' should be a closing paired bracket")
	}
	if !Lookup(0xFE0F).IsVariationSelector() {
		t.Error("U+FE0F should be flagged as variation selector")
	}
	if !Lookup(0xFE0F).IsIgnorable() || !Lookup(0x200B).IsIgnorable() {
		t.Error("variation selectors and ZWSP should be default-ignorable")
	}
	if !Lookup(0x0301).ContributesToShaping() {
		t.Error("combining marks should contribute to shaping")
	}
	if Lookup('A').ContributesToShaping() {
		t.Error("'A' should not contribute to shaping")
	}
}

func TestLookupUnassigned(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	props := Lookup(0x0378) // unassigned
	if cat := props.Category(); cat != Cn {
		t.Errorf("category of unassigned code-point should be Cn, is %s", cat)
	}
	if s := props.Script(); s != Unknown {
		t.Errorf("script of unassigned code-point should be Unknown, is %s", s)
	}
	if props.IsEmoji() || props.IsOpenBracket() {
		t.Error("unassigned code-point should carry no flags")
	}
}

func TestLookupRejectsSurrogate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Error("lookup of a surrogate should panic")
		}
	}()
	Lookup(0xD800)
}

func TestBoundaryScratchField(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	props := Lookup(0x0628)
	if props.Boundary() != 0 {
		t.Errorf("fresh handle should have scratch field 0, is %d", props.Boundary())
	}
	marked := props.WithBoundary(3)
	if marked.Boundary() != 3 {
		t.Errorf("scratch field should be 3, is %d", marked.Boundary())
	}
	if marked.Category() != props.Category() || marked.Script() != props.Script() {
		t.Error("setting the scratch field must not change property resolution")
	}
	if props.Boundary() != 0 {
		t.Error("WithBoundary must not mutate the receiver")
	}
	marked.SetBoundary(5) // only low 2 bits kept
	if marked.Boundary() != 1 {
		t.Errorf("scratch field should be truncated to 1, is %d", marked.Boundary())
	}
}

func TestLookupConcurrent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	probe := []rune{'A', 0x0301, 0x0628, 0xAC00, 0x1F600, 0x0378}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				for _, r := range probe {
					p := Lookup(r)
					_ = p.Category()
					_ = p.Script()
					_ = p.BidiClass()
				}
			}
		}()
	}
	wg.Wait()
}

func TestCharImplementsCodepoint(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var c Codepoint = Char('ب')
	if c.Script() != Arabic {
		t.Errorf("script of %#U should be Arabic, is %s", rune('ب'), c.Script())
	}
	if c.BidiClass() != BidiAL {
		t.Errorf("bidi class of %#U should be AL, is %s", rune('ب'), c.BidiClass())
	}
	bt := Char('(').BracketType()
	if bt.Kind != BracketOpen || bt.Partner != ')' {
		t.Errorf("bracket type of '(' should be open with partner ')', is %v", bt)
	}
	// Flag reads go through Properties(), as documented on the interface.
	if !Char('(').Properties().IsOpenBracket() || !Char(')').Properties().IsCloseBracket() {
		t.Error("bracket sidedness should be readable through Properties()")
	}
}
