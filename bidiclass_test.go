package uniprop

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestBidiClassNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if BidiAL.String() != "AL" {
		t.Errorf("String(BidiAL) should be 'AL', is %s", BidiAL)
	}
	if BidiPDI.String() != "PDI" {
		t.Errorf("String(BidiPDI) should be 'PDI', is %s", BidiPDI)
	}
	if BidiClass(99).String() != "BidiClass(99)" {
		t.Errorf("out-of-range class should fall back to numeric form, is %s", BidiClass(99))
	}
}

func TestBidiClassMask(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	seen := uint32(0)
	for c := BidiL; c <= BidiPDI; c++ {
		m := c.Mask()
		if m&seen != 0 {
			t.Errorf("mask of %s collides with a previous class", c)
		}
		seen |= m
	}
}

func TestNeedsResolution(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	resolving := []BidiClass{BidiR, BidiAL, BidiAN, BidiRLE, BidiLRE,
		BidiRLO, BidiLRO, BidiRLI, BidiLRI, BidiFSI}
	for _, c := range resolving {
		if !c.NeedsResolution() {
			t.Errorf("class %s should require bidi resolution", c)
		}
	}
	plain := []BidiClass{BidiL, BidiEN, BidiES, BidiET, BidiNSM, BidiBN,
		BidiB, BidiS, BidiWS, BidiON, BidiCS, BidiPDF, BidiPDI}
	for _, c := range plain {
		if c.NeedsResolution() {
			t.Errorf("class %s should not require bidi resolution on its own", c)
		}
	}
}

func TestNeedsResolutionFromText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	ltr := "hello, world"
	for _, r := range ltr {
		if Lookup(r).BidiClass().NeedsResolution() {
			t.Errorf("%#U should not trigger bidi resolution", r)
		}
	}
	rtl := "שלום"
	triggered := false
	for _, r := range rtl {
		if Lookup(r).BidiClass().NeedsResolution() {
			triggered = true
		}
	}
	if !triggered {
		t.Error("Hebrew text should trigger bidi resolution")
	}
}
