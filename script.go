package uniprop

import (
	"sort"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Script identifies the script a character belongs to. The enumeration is
// closed and generated from Scripts.txt; there is no dynamic registration.
// Unknown is the zero value and the script of the default record.
type Script uint8

// Tag is a 4-byte OpenType tag, as used for script and language
// identification in font tables.
type Tag uint32

// MakeTag builds a Tag from its four bytes.
func MakeTag(a, b, c, d byte) Tag {
	return Tag(a)<<24 | Tag(b)<<16 | Tag(c)<<8 | Tag(d)
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// ScriptFromOpenType resolves an OpenType script tag to the script
// enumeration. Unrecognized tags return false; this is a normal outcome
// for tags outside the closed set, not an error.
func ScriptFromOpenType(tag Tag) (Script, bool) {
	n := len(scriptsByTag)
	i := sort.Search(n, func(i int) bool { return scriptsByTag[i].tag >= tag })
	if i < n && scriptsByTag[i].tag == tag {
		return scriptsByTag[i].script, true
	}
	return Unknown, false
}

// Name returns the UCD name of the script.
func (s Script) Name() string {
	if int(s) >= len(scriptNames) {
		return scriptNames[Unknown]
	}
	return scriptNames[s]
}

func (s Script) String() string {
	return s.Name()
}

// OpenTypeTag returns the script as an OpenType script tag.
func (s Script) OpenTypeTag() Tag {
	if int(s) >= len(scriptTags) {
		return scriptTags[Unknown]
	}
	return scriptTags[s]
}

// IsComplex returns true if the script requires a complex shaping path,
// i.e. contextual substitution or reordering beyond simple glyph mapping.
func (s Script) IsComplex() bool {
	if int(s) >= len(scriptComplexity) {
		return false
	}
	return scriptComplexity[s]
}

// IsJoined returns true if the script connects its letters cursively. The
// membership is a closed set of Arabic-family scripts.
func (s Script) IsJoined() bool {
	switch s {
	case Arabic, Mongolian, Syriac, Nko, PhagsPa, Mandaic, Manichaean,
		PsalterPahlavi, Adlam:
		return true
	}
	return false
}

// ISO 15924 codes mostly equal the OpenType tag with the first letter
// uppercased; a handful of short tags are padded with blanks in OpenType
// and need their full ISO form restored.
var isoFixup = map[Tag]string{
	MakeTag('l', 'a', 'o', ' '): "Laoo",
	MakeTag('n', 'k', 'o', ' '): "Nkoo",
	MakeTag('v', 'a', 'i', ' '): "Vaii",
	MakeTag('y', 'i', ' ', ' '): "Yiii",
}

// ISO15924 returns the four-letter ISO 15924 code of the script.
func (s Script) ISO15924() string {
	tag := s.OpenTypeTag()
	if iso, ok := isoFixup[tag]; ok {
		return iso
	}
	b := []byte(tag.String())
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// Language returns the script as a BCP 47 script identifier.
func (s Script) Language() (language.Script, error) {
	return language.ParseScript(s.ISO15924())
}

// ScriptFromEnvironment detects the user's locale and resolves the script
// its language is customarily written in. If the locale cannot be detected
// or carries no script information, Latin is returned.
func ScriptFromEnvironment() Script {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("uniprop sets default user locale %v", userLocale)
	} else {
		tracer().Infof("uniprop detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	iso := script.String()
	if iso == "Zzzz" { // undetermined
		return Latin
	}
	for s := range scriptNames {
		if Script(s).ISO15924() == iso {
			return Script(s)
		}
	}
	return Latin
}
