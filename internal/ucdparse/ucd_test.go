package ucdparse

import (
	"strings"
	"testing"
)

func TestParseRangeLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Logf("token = %v", sc.Token)
		t.Fatal(sc.Token.Error)
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.TokenType != RangeDataItem {
		t.Errorf("expected a range data item, got type %d", sc.Token.TokenType)
	}
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
}

func TestParseUnicodeDataLine(t *testing.T) {
	input := strings.NewReader("00C0;LATIN CAPITAL LETTER A WITH GRAVE;Lu;0;L;0041 0300;;;;N;LATIN CAPITAL LETTER A GRAVE;;;00E0;")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Fatal(sc.Token.Error)
	}
	if sc.Token.TokenType != SingleDataItem {
		t.Errorf("expected a single data item, got type %d", sc.Token.TokenType)
	}
	from, to := sc.Token.Range()
	if from != 0x00C0 || to != 0x00C0 {
		t.Errorf("expected single code-point 00C0, is %04X..%04X", from, to)
	}
	if sc.Token.Field(2) != "Lu" {
		t.Errorf("expected category field to be 'Lu', is %q", sc.Token.Field(2))
	}
	if sc.Token.Field(5) != "0041 0300" {
		t.Errorf("expected decomposition field '0041 0300', is %q", sc.Token.Field(5))
	}
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	input := strings.NewReader("# heading\n\n0041..005A ; Latin # L& [26]\n")
	count := 0
	err := Parse(input, func(token *Token) {
		count++
		if token.Field(1) != "Latin" {
			t.Errorf("expected field #1 to be 'Latin', is %q", token.Field(1))
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 data item, saw %d", count)
	}
}

func TestParseBadHex(t *testing.T) {
	input := strings.NewReader("XYZ;oops\n")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Next() {
		t.Error("expected scanning to stop on a malformed code-point column")
	}
	if sc.LastError == nil {
		t.Error("expected a hex decoding error, got none")
	}
}
