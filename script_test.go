package uniprop

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestScriptFromOpenType(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		tag    Tag
		script Script
	}{
		{MakeTag('a', 'r', 'a', 'b'), Arabic},
		{MakeTag('l', 'a', 't', 'n'), Latin},
		{MakeTag('h', 'e', 'b', 'r'), Hebrew},
		{MakeTag('d', 'e', 'v', 'a'), Devanagari},
		{MakeTag('l', 'a', 'o', ' '), Lao},
		{MakeTag('z', 'y', 'y', 'y'), Common},
	}
	for _, c := range cases {
		s, ok := ScriptFromOpenType(c.tag)
		if !ok || s != c.script {
			t.Errorf("tag %q should resolve to %s, is %s (ok=%v)", c.tag, c.script, s, ok)
		}
	}
	if _, ok := ScriptFromOpenType(MakeTag('x', 'x', 'x', 'x')); ok {
		t.Error("unknown tag should not resolve")
	}
}

func TestScriptTagDedup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Hiragana and Katakana share the OpenType tag "kana"; resolution picks
	// the first of the two, round-tripping the tag stays stable.
	s, ok := ScriptFromOpenType(MakeTag('k', 'a', 'n', 'a'))
	if !ok || s != Hiragana {
		t.Errorf("tag 'kana' should resolve to Hiragana, is %s", s)
	}
	if Katakana.OpenTypeTag() != Hiragana.OpenTypeTag() {
		t.Error("Hiragana and Katakana should share their OpenType tag")
	}
}

func TestScriptMetadata(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if Arabic.Name() != "Arabic" {
		t.Errorf("name of Arabic should be 'Arabic', is %q", Arabic.Name())
	}
	if PhagsPa.Name() != "Phags_Pa" {
		t.Errorf("name of PhagsPa should be 'Phags_Pa', is %q", PhagsPa.Name())
	}
	if tag := Arabic.OpenTypeTag(); tag.String() != "arab" {
		t.Errorf("tag of Arabic should be 'arab', is %q", tag)
	}
	if !Arabic.IsComplex() || !Thai.IsComplex() || !Devanagari.IsComplex() {
		t.Error("Arabic, Thai and Devanagari require complex shaping")
	}
	if Latin.IsComplex() || Han.IsComplex() {
		t.Error("Latin and Han do not require complex shaping")
	}
}

func TestScriptJoining(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	joined := []Script{Arabic, Mongolian, Syriac, Nko, PhagsPa, Mandaic,
		Manichaean, PsalterPahlavi, Adlam}
	for _, s := range joined {
		if !s.IsJoined() {
			t.Errorf("%s should be cursively joined", s)
		}
	}
	for _, s := range []Script{Latin, Hebrew, Thai, Hangul, Common, Unknown} {
		if s.IsJoined() {
			t.Errorf("%s should not be cursively joined", s)
		}
	}
}

func TestScriptISO15924(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		script Script
		iso    string
	}{
		{Arabic, "Arab"},
		{Latin, "Latn"},
		{Lao, "Laoo"},
		{Nko, "Nkoo"},
		{Vai, "Vaii"},
		{Yi, "Yiii"},
	}
	for _, c := range cases {
		if iso := c.script.ISO15924(); iso != c.iso {
			t.Errorf("ISO 15924 code of %s should be %q, is %q", c.script, c.iso, iso)
		}
	}
}

func TestScriptLanguage(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sc, err := Arabic.Language()
	if err != nil {
		t.Fatalf("BCP 47 conversion of Arabic failed: %v", err)
	}
	if sc.String() != "Arab" {
		t.Errorf("BCP 47 script of Arabic should be 'Arab', is %q", sc)
	}
}

func TestScriptFromEnvironment(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Detection must always yield a usable script, whatever the host locale.
	s := ScriptFromEnvironment()
	if s == Unknown {
		t.Errorf("environment script should never be Unknown")
	}
	t.Logf("environment resolves to script %s", s)
}
