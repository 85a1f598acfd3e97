package uniprop

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestCategoryNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if Cn.String() != "Cn" {
		t.Errorf("String(Cn) should be 'Cn', is %s", Cn)
	}
	if Lu.String() != "Lu" {
		t.Errorf("String(Lu) should be 'Lu', is %s", Lu)
	}
	if Category(-1).String() != "Category(-1)" {
		t.Errorf("out-of-range category should fall back to numeric form, is %s", Category(-1))
	}
}

func TestBlockNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if NoBlock.String() != "No_Block" {
		t.Errorf("String(NoBlock) should be 'No_Block', is %s", NoBlock)
	}
	if Latin1Supplement.String() != "Latin-1 Supplement" {
		t.Errorf("unexpected name for Latin-1 Supplement: %s", Latin1Supplement)
	}
	if HangulSyllables.String() != "Hangul Syllables" {
		t.Errorf("unexpected name for Hangul Syllables: %s", HangulSyllables)
	}
}

func TestBreakClassNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if ClusterZWJ.String() != "ZWJ" {
		t.Errorf("String(ClusterZWJ) should be 'ZWJ', is %s", ClusterZWJ)
	}
	if WordALetter.String() != "ALetter" {
		t.Errorf("String(WordALetter) should be 'ALetter', is %s", WordALetter)
	}
	if LineOP.String() != "OP" {
		t.Errorf("String(LineOP) should be 'OP', is %s", LineOP)
	}
	if JoiningDual.String() != "D" {
		t.Errorf("String(JoiningDual) should be 'D', is %s", JoiningDual)
	}
}

func TestWordBreakMask(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seen := uint32(0)
	for w := WordOther; w <= WordWSegSpace; w++ {
		m := w.Mask()
		if m == 0 {
			t.Errorf("mask of %s should not be empty", w)
		}
		if m&seen != 0 {
			t.Errorf("mask of %s collides with a previous class", w)
		}
		seen |= m
	}
	wordish := Lookup('x').WordBreak().Mask() | Lookup('7').WordBreak().Mask()
	if wordish&WordALetter.Mask() == 0 || wordish&WordNumeric.Mask() == 0 {
		t.Error("letter and digit classes should be present in the combined mask")
	}
}

func TestPropertyFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f := FlagEmoji | FlagOpenBracket
	if !f.IsEmoji() || !f.IsOpenBracket() {
		t.Error("set flags should test true")
	}
	if f.IsCloseBracket() || f.IsIgnorable() || f.NeedsDecomposition() {
		t.Error("unset flags should test false")
	}
	if !Lookup(0x00C0).record().Flags.NeedsDecomposition() {
		t.Error("U+00C0 should be marked as needing decomposition")
	}
	if !Lookup(0xAC00).record().Flags.NeedsDecomposition() {
		t.Error("Hangul syllables should be marked as needing decomposition")
	}
}
