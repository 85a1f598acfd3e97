package uniprop

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestUseClassLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		ch  rune
		use UseClass
	}{
		{0x0915, UseB},     // DEVANAGARI KA
		{0x0901, UseVMAbv}, // DEVANAGARI CANDRABINDU
		{0x093C, UseCMBlw}, // DEVANAGARI NUKTA
		{0x094D, UseH},     // DEVANAGARI VIRAMA
		{0x1000, UseB},     // MYANMAR KA
		{0x1031, UseVPre},  // MYANMAR VOWEL SIGN E
		{0x1039, UseIS},    // MYANMAR VIRAMA
		{0x103A, UseH},     // MYANMAR ASAT
		{0x200C, UseZWNJ},
		{'A', UseO},
	}
	for _, c := range cases {
		use, _, _ := Lookup(c.ch).UseClass()
		if use != c.use {
			t.Errorf("USE class of %#U should be %s, is %s", c.ch, c.use, use)
		}
	}
}

func TestUseClassIndicators(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if _, decomp, _ := Lookup(0x00C0).UseClass(); !decomp {
		t.Errorf("%#U should report a pending decomposition", rune(0x00C0))
	}
	if _, _, pict := Lookup(0x1F600).UseClass(); !pict {
		t.Errorf("%#U should report extended pictographic", rune(0x1F600))
	}
	if _, decomp, pict := Lookup('x').UseClass(); decomp || pict {
		t.Errorf("%#U should report neither indicator", rune('x'))
	}
}

func TestMyanmarClassLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		ch rune
		mm MyanmarClass
	}{
		{0x1000, MyanmarC},    // KA
		{0x1021, MyanmarV},    // A
		{0x102D, MyanmarVAbv}, // VOWEL SIGN I
		{0x102F, MyanmarVBlw}, // VOWEL SIGN U
		{0x1031, MyanmarVPre}, // VOWEL SIGN E
		{0x102C, MyanmarVPst}, // VOWEL SIGN AA
		{0x1036, MyanmarA},    // ANUSVARA
		{0x1037, MyanmarDB},   // DOT BELOW
		{0x1038, MyanmarSM},   // VISARGA
		{0x1039, MyanmarH},    // VIRAMA
		{0x103A, MyanmarAs},   // ASAT
		{0x103B, MyanmarMY},   // MEDIAL YA
		{0x103C, MyanmarMR},   // MEDIAL RA
		{0x103D, MyanmarMW},   // MEDIAL WA
		{0x103E, MyanmarMH},   // MEDIAL HA
		{0x1040, MyanmarD},    // DIGIT ZERO
		{0x104A, MyanmarP},    // LITTLE SECTION
		{0x200D, MyanmarZWJ},
		{0x200C, MyanmarZWNJ},
		{0xFE00, MyanmarVS},
		{'A', MyanmarO},
	}
	for _, c := range cases {
		mm, _ := Lookup(c.ch).MyanmarClass()
		if mm != c.mm {
			t.Errorf("Myanmar class of %#U should be %s, is %s", c.ch, c.mm, mm)
		}
	}
}

func TestMyanmarScriptProperties(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	props := Lookup(0x1000)
	if props.Script() != Myanmar {
		t.Errorf("script of %#U should be Myanmar, is %s", rune(0x1000), props.Script())
	}
	if props.LineBreak() != LineSA {
		t.Errorf("line break class of %#U should be SA, is %s", rune(0x1000), props.LineBreak())
	}
	// UAX#29 excludes the Myanmar signs AA and visarga from SpacingMark,
	// while the pre-base vowel sign E keeps it.
	if cb := Lookup(0x102C).ClusterBreak(); cb != ClusterAny {
		t.Errorf("cluster break of %#U should be Any, is %s", rune(0x102C), cb)
	}
	if cb := Lookup(0x1031).ClusterBreak(); cb != ClusterSpacingMark {
		t.Errorf("cluster break of %#U should be SpacingMark, is %s", rune(0x1031), cb)
	}
}

func TestClusterClass(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if cb, pict := Lookup(0x1F600).ClusterClass(); pict != true || cb != ClusterAny {
		t.Errorf("cluster class of %#U should be (Any, pictographic), is (%s, %v)",
			rune(0x1F600), cb, pict)
	}
	if cb, pict := Lookup(0x0300).ClusterClass(); pict || cb != ClusterExtend {
		t.Errorf("cluster class of %#U should be (Extend, plain), is (%s, %v)",
			rune(0x0300), cb, pict)
	}
}

func TestShapeClassNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if UseVMAbv.String() != "VMAbv" {
		t.Errorf("expected USE class name VMAbv, got %s", UseVMAbv)
	}
	if UseO.String() != "O" {
		t.Errorf("expected USE class name O, got %s", UseO)
	}
	if MyanmarAs.String() != "As" {
		t.Errorf("expected Myanmar class name As, got %s", MyanmarAs)
	}
	if MyanmarClass(200).String() != "MyanmarClass(200)" {
		t.Errorf("out-of-range Myanmar class should fall back to numeric form")
	}
}
