package uniprop

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestBracketPairing(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		open, close rune
	}{
		{'(', ')'},
		{'[', ']'},
		{'{', '}'},
		{0x2045, 0x2046},
		{0x2308, 0x2309},
		{0x3008, 0x3009},
		{0xFF08, 0xFF09},
	}
	for _, c := range cases {
		if partner, ok := ClosingBracket(c.open); !ok || partner != c.close {
			t.Errorf("closing bracket of %#U should be %#U, is %#U (ok=%v)",
				c.open, c.close, partner, ok)
		}
		if partner, ok := OpeningBracket(c.close); !ok || partner != c.open {
			t.Errorf("opening bracket of %#U should be %#U, is %#U (ok=%v)",
				c.close, c.open, partner, ok)
		}
	}
	if _, ok := ClosingBracket('A'); ok {
		t.Error("'A' is not an opening bracket")
	}
	if _, ok := OpeningBracket('A'); ok {
		t.Error("'A' is not a closing bracket")
	}
}

func TestBracketTypeOf(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	bt := BracketTypeOf('(')
	if bt.Kind != BracketOpen || bt.Partner != ')' {
		t.Errorf("'(' should be open with partner ')', is %v", bt)
	}
	bt = BracketTypeOf(')')
	if bt.Kind != BracketClose || bt.Partner != '(' {
		t.Errorf("')' should be close with partner '(', is %v", bt)
	}
	bt = BracketTypeOf('A')
	if bt.Kind != BracketNone {
		t.Errorf("'A' should have bracket kind none, is %v", bt)
	}
}

func TestMirror(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		ch, mirror rune
	}{
		{'(', ')'},
		{')', '('},
		{'<', '>'},
		{0x2264, 0x2265}, // LESS-THAN OR EQUAL TO
		{0x2208, 0x220B}, // ELEMENT OF
		{0x3008, 0x3009},
	}
	for _, c := range cases {
		if m, ok := Mirror(c.ch); !ok || m != c.mirror {
			t.Errorf("mirror of %#U should be %#U, is %#U (ok=%v)", c.ch, c.mirror, m, ok)
		}
	}
	if _, ok := Mirror('A'); ok {
		t.Error("'A' has no mirror")
	}
	// Corner quotation marks are brackets but not mirrored.
	if _, ok := Mirror(0x300C); ok {
		t.Error("U+300C has no mirror")
	}
	if _, ok := ClosingBracket(0x300C); !ok {
		t.Error("U+300C should still pair as a bracket")
	}
}

func TestMirrorInvolution(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, p := range mirrorPairs {
		back, ok := Mirror(p.mirror)
		if !ok {
			t.Errorf("mirror image %#U of %#U has no mirror itself", p.mirror, p.ch)
			continue
		}
		if back != p.ch {
			t.Errorf("mirroring %#U twice should return it, yields %#U", p.ch, back)
		}
	}
}

func TestBracketTableOrdering(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Both columns have to be strictly increasing for the binary searches
	// of ClosingBracket and OpeningBracket. The UCD's cross-mapped
	// tick-corner pairs U+298D..U+2990 would violate this and may not be
	// part of the table.
	for i, b := range bracketPairs {
		if b.open >= 0x298D && b.open <= 0x2990 {
			t.Errorf("cross-mapped bracket %#U must not be in the pairing table", b.open)
		}
		if i == 0 {
			continue
		}
		if bracketPairs[i-1].open >= b.open {
			t.Errorf("opening column not strictly increasing at %#U", b.open)
		}
		if bracketPairs[i-1].close >= b.close {
			t.Errorf("closing column not strictly increasing at %#U", b.close)
		}
	}
}

func TestBracketTableAgreesWithFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	probe := []rune{'(', '[', '{', 0x2045, 0x2308, 0x3008, 0x3010}
	for _, r := range probe {
		if !Lookup(r).IsOpenBracket() {
			t.Errorf("%#U is in the pairing table but not flagged as open bracket", r)
		}
	}
}
