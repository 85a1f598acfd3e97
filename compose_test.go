package uniprop

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/unicode/norm"
)

func collect(d *Decompose) []rune {
	var out []rune
	for {
		r, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

func TestDecomposeIdentity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	d := DecomposeRune('a')
	if d.Len() != 1 {
		t.Fatalf("decomposition of 'a' should have length 1, has %d", d.Len())
	}
	if seq := collect(&d); len(seq) != 1 || seq[0] != 'a' {
		t.Errorf("decomposition of 'a' should be ['a'], is %v", seq)
	}
	if d.Source() != 'a' {
		t.Errorf("source should be 'a', is %#U", d.Source())
	}
}

func TestDecomposeTabulated(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	d := DecomposeRune(0x00C0) // À
	if seq := collect(&d); len(seq) != 2 || seq[0] != 0x0041 || seq[1] != 0x0300 {
		t.Errorf("decomposition of U+00C0 should be [A, U+0300], is %v", seq)
	}
}

func TestDecomposeRecursive(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// U+1E08 maps to Ç + acute; Ç in turn maps to C + cedilla.
	d := DecomposeRune(0x1E08)
	want := []rune{0x0043, 0x0327, 0x0301}
	seq := collect(&d)
	if len(seq) != len(want) {
		t.Fatalf("decomposition of U+1E08 should have length 3, is %v", seq)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("element %d of U+1E08 decomposition should be %#U, is %#U",
				i, want[i], seq[i])
		}
	}
	if nfd := []rune(norm.NFD.String(string(rune(0x1E08)))); len(nfd) != len(seq) {
		t.Errorf("x/text NFD disagrees: %v vs %v", nfd, seq)
	}
}

func TestDecomposeSingleton(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	d := DecomposeRune(0x212B) // ANGSTROM SIGN
	want := []rune{0x0041, 0x030A}
	if seq := collect(&d); len(seq) != 2 || seq[0] != want[0] || seq[1] != want[1] {
		t.Errorf("decomposition of U+212B should be [A, ring], is %v", seq)
	}
}

func TestDecomposeCompat(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	canon := DecomposeRune(0xFB01)
	if seq := collect(&canon); len(seq) != 1 || seq[0] != 0xFB01 {
		t.Errorf("canonical decomposition of U+FB01 should be the identity, is %v", seq)
	}
	compat := DecomposeCompat(0xFB01)
	if seq := collect(&compat); len(seq) != 2 || seq[0] != 'f' || seq[1] != 'i' {
		t.Errorf("compatibility decomposition of U+FB01 should be [f, i], is %v", seq)
	}
	tm := DecomposeCompat(0x2122)
	if seq := collect(&tm); len(seq) != 2 || seq[0] != 'T' || seq[1] != 'M' {
		t.Errorf("compatibility decomposition of U+2122 should be [T, M], is %v", seq)
	}
}

func TestDecomposeHangul(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	d := DecomposeRune(0xAC00) // 가
	if seq := collect(&d); len(seq) != 2 || seq[0] != 0x1100 || seq[1] != 0x1161 {
		t.Errorf("decomposition of U+AC00 should be [U+1100, U+1161], is %v", seq)
	}
	d = DecomposeRune(0xAC01) // 각, LVT
	if seq := collect(&d); len(seq) != 3 || seq[0] != 0x1100 || seq[1] != 0x1161 || seq[2] != 0x11A8 {
		t.Errorf("decomposition of U+AC01 should be [U+1100, U+1161, U+11A8], is %v", seq)
	}
	d = DecomposeRune(0xD7A3) // last syllable
	if seq := collect(&d); len(seq) != 3 {
		t.Errorf("decomposition of U+D7A3 should have 3 jamo, is %v", seq)
	}
}

func TestDecomposeReset(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	d := DecomposeRune(0x00C0)
	first := collect(&d)
	if _, ok := d.Next(); ok {
		t.Error("sequence should be exhausted")
	}
	d.Reset()
	second := collect(&d)
	if len(first) != len(second) {
		t.Fatalf("restarted sequence differs: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("restarted sequence differs at %d: %#U vs %#U", i, first[i], second[i])
		}
	}
}

func TestComposePair(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if c, ok := ComposePair(0x0041, 0x0300); !ok || c != 0x00C0 {
		t.Errorf("A + grave should compose to U+00C0, is %#U (ok=%v)", c, ok)
	}
	if _, ok := ComposePair(0x0041, 0x0328); ok {
		t.Error("A + ogonek has no canonical composition")
	}
	if _, ok := ComposePair(0x0300, 0x0041); ok {
		t.Error("composition must respect pair order")
	}
}

func TestComposePairRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, e := range compositions {
		d := DecomposeRune(e.composed)
		if d.Len() < 2 {
			continue // recursive mapping, pairwise step not its inverse
		}
		c, ok := ComposePair(e.first, e.second)
		if !ok || c != e.composed {
			t.Errorf("pair (%#U, %#U) should compose to %#U, is %#U (ok=%v)",
				e.first, e.second, e.composed, c, ok)
		}
	}
}

func TestComposeHangul(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if c, ok := ComposePair(0x1100, 0x1161); !ok || c != 0xAC00 {
		t.Errorf("L+V should compose to U+AC00, is %#U (ok=%v)", c, ok)
	}
	if c, ok := ComposePair(0xAC00, 0x11A8); !ok || c != 0xAC01 {
		t.Errorf("LV+T should compose to U+AC01, is %#U (ok=%v)", c, ok)
	}
	if _, ok := ComposePair(0xAC01, 0x11A8); ok {
		t.Error("an LVT syllable must not accept another trailing jamo")
	}
	if _, ok := ComposePair(0x1100, 0x11A8); ok {
		t.Error("L+T is not a valid composition")
	}
}

func TestCompositionExclusions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if !IsCompositionExclusion(0x0958) {
		t.Error("U+0958 should be excluded from composition")
	}
	if !IsCompositionExclusion(0x2126) {
		t.Error("singleton U+2126 should be excluded from composition")
	}
	if IsCompositionExclusion(0x00C0) {
		t.Error("U+00C0 should not be excluded from composition")
	}
	// Excluded characters decompose but never re-compose pairwise.
	d := DecomposeRune(0x0958)
	seq := collect(&d)
	if len(seq) != 2 {
		t.Fatalf("decomposition of U+0958 should have length 2, is %v", seq)
	}
	if _, ok := ComposePair(seq[0], seq[1]); ok {
		t.Error("the decomposition of U+0958 must not re-compose")
	}
}

func TestAppendDecomposed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out := AppendDecomposed(nil, "Àb", false)
	want := []rune{0x0041, 0x0300, 'b'}
	if len(out) != len(want) {
		t.Fatalf("expansion of 'Àb' should be %v, is %v", want, out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("element %d should be %#U, is %#U", i, want[i], out[i])
		}
	}
	out = AppendDecomposed(out, "ﬁ", true)
	if len(out) != 5 || out[3] != 'f' || out[4] != 'i' {
		t.Errorf("compat expansion should append [f, i], is %v", out[3:])
	}
}

func TestAppendDecomposedConcurrent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			for n := 0; n < 200; n++ {
				out := AppendDecomposed(nil, "Ç각x", false)
				if len(out) != 6 {
					t.Errorf("expected 6 runes, got %v", out)
					break
				}
			}
			done <- true
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
