/*
	Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Two line formats occur in the UCD. Property files carry a code-point or a
code-point range, followed by semicolon-separated fields and an optional
rest-of-line comment:

	0600..0605    ; Arabic # Cf   [6] ARABIC NUMBER SIGN..ARABIC NUMBER MARK ABOVE

UnicodeData.txt carries a single code-point followed by 14 fields and no
comments. The parser handles both; clients inspect Token for the content of
the current line.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and its
// clients. The scanner reads lines and wraps their content into tokens for
// clients to perform their operations on.
type Token struct {
	LineNo    int       // line of the data item within the input source
	TokenType TokenType // type of token
	runeFrom  rune      // first/single rune
	runeTo    rune      // final rune of range (may be identical to runeFrom)
	Fields    []string  // data fields of the line, without the code-point column
	Comment   string    // rest-of-line comment of data item lines
	Error     error     // error condition, if any
}

// TokenType classifies a scanned line.
type TokenType int8

// Token types produced by the scanner.
const (
	Undefined TokenType = iota
	EOF
	SingleDataItem
	RangeDataItem
)

// newToken creates a token initialized with a line number.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at(%d) %#U..%#U type=%d %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field 1 is the first
// column after the code-point column. Out-of-range indices yield "".
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
