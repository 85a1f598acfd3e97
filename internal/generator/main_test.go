package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/uniprop"
)

func TestScriptIdentClosedSet(t *testing.T) {
	if id := scriptIdent("Phags_Pa"); id != "PhagsPa" {
		t.Errorf("expected Phags_Pa to map onto PhagsPa, got %q", id)
	}
	if id := scriptIdent("Latin"); id != "Latin" {
		t.Errorf("expected Latin to map onto Latin, got %q", id)
	}
	// Scripts.txt values outside the enumeration must collapse onto the
	// zero value instead of producing an undefined identifier.
	for _, name := range []string{"", "Ogham", "Runic", "Linear_B", "Tangut"} {
		if id := scriptIdent(name); id != "Unknown" {
			t.Errorf("expected %q to collapse onto Unknown, got %q", name, id)
		}
	}
}

func TestScriptMetadataAgreesWithTables(t *testing.T) {
	for i, s := range scripts {
		sc := uniprop.Script(i)
		if sc.Name() != s.name {
			t.Errorf("script #%d: generator says %q, table says %q", i, s.name, sc.Name())
		}
		tag := uniprop.MakeTag(s.tag[0], s.tag[1], s.tag[2], s.tag[3])
		if sc.OpenTypeTag() != tag {
			t.Errorf("script %s: generator tag %q, table tag %q", s.name, s.tag, sc.OpenTypeTag())
		}
		if sc.IsComplex() != s.complex {
			t.Errorf("script %s: complexity mismatch", s.name)
		}
	}
}

func TestCanonicalBracketFiltering(t *testing.T) {
	pairs := []bracketPair{
		{0x3008, 0x3009},
		{0x0028, 0x0029},
		{0x298D, 0x2990}, // tick-corner brackets, cross-mapped in the UCD
		{0x298F, 0x298E},
		{0x005B, 0x005D},
	}
	kept := canonicalBrackets(pairs)
	if len(kept) != 3 {
		t.Fatalf("expected 3 pairs to survive, got %d", len(kept))
	}
	for i, p := range kept {
		if p.open >= 0x298D && p.open <= 0x2990 {
			t.Errorf("cross-mapped pair %#U survived filtering", p.open)
		}
		if i > 0 {
			if kept[i-1].open >= p.open || kept[i-1].close >= p.close {
				t.Errorf("pair columns not strictly increasing at #%d", i)
			}
		}
	}
}

func TestEmitScriptTables(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	emitScripts(w)
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Unknown Script = iota",
		"var scriptNames = [...]string{",
		"var scriptTags = [...]Tag{",
		"var scriptComplexity = [...]bool{",
		"type scriptTagEntry struct {",
		"var scriptsByTag = []scriptTagEntry{",
		"\tPsalterPahlavi\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("emitted script tables lack %q", want)
		}
	}
	// "kana" is shared by Hiragana and Katakana; the index keeps one entry.
	if n := strings.Count(out, `"kana"`); n != 3 {
		t.Errorf("expected the kana tag twice in scriptTags and once in the index, got %d occurrences", n)
	}
}

func TestUseClassDerivation(t *testing.T) {
	cases := []struct {
		r    rune
		ci   charInfo
		want string
	}{
		{0x0915, charInfo{indicSyl: "Consonant"}, "UseB"},
		{0x094D, charInfo{indicSyl: "Virama", indicPos: "Bottom"}, "UseH"},
		{0x1039, charInfo{indicSyl: "Invisible_Stacker"}, "UseIS"},
		{0x093C, charInfo{indicSyl: "Nukta", indicPos: "Bottom"}, "UseCMBlw"},
		{0x0901, charInfo{indicSyl: "Bindu", indicPos: "Top"}, "UseVMAbv"},
		{0x093F, charInfo{indicSyl: "Vowel_Dependent", indicPos: "Left"}, "UseVPre"},
		{0x200C, charInfo{indicSyl: "Non_Joiner"}, "UseZWNJ"},
		{0x034F, charInfo{}, "UseCGJ"},
		{0x0041, charInfo{category: "Lu"}, "UseO"},
	}
	for _, c := range cases {
		if got := useClassFor(c.r, &c.ci); got != c.want {
			t.Errorf("%#U: expected %s, got %s", c.r, c.want, got)
		}
	}
}

func TestMyanmarClassDerivation(t *testing.T) {
	cases := []struct {
		r    rune
		ci   charInfo
		want string
	}{
		{0x1000, charInfo{script: "Myanmar", indicSyl: "Consonant"}, "MyanmarC"},
		{0x103A, charInfo{script: "Myanmar", indicSyl: "Pure_Killer"}, "MyanmarAs"},
		{0x1039, charInfo{script: "Myanmar", indicSyl: "Invisible_Stacker"}, "MyanmarH"},
		{0x103C, charInfo{script: "Myanmar", indicSyl: "Consonant_Medial"}, "MyanmarMR"},
		{0x103E, charInfo{script: "Myanmar", indicSyl: "Consonant_Medial"}, "MyanmarMH"},
		{0x1031, charInfo{script: "Myanmar", indicSyl: "Vowel_Dependent", indicPos: "Left"}, "MyanmarVPre"},
		{0x1040, charInfo{script: "Myanmar", indicSyl: "Number"}, "MyanmarD"},
		{0x200D, charInfo{indicSyl: "Joiner"}, "MyanmarZWJ"},
		{0xFE00, charInfo{flags: []string{"FlagVariationSelector"}}, "MyanmarVS"},
		{0x0915, charInfo{script: "Devanagari", indicSyl: "Consonant"}, "MyanmarO"},
	}
	for _, c := range cases {
		if got := myanmarClassFor(c.r, &c.ci); got != c.want {
			t.Errorf("%#U: expected %s, got %s", c.r, c.want, got)
		}
	}
}
