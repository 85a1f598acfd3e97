package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Parser is a line-level scanner over a UCD file. Comment-only and blank
// lines are skipped transparently; every call to Next advances to the next
// data item line.
type Parser struct {
	buf       *bufio.Scanner
	lineno    int
	LastError error  // last error, if any
	Token     *Token // last token produced by the scanner
}

// New creates a parser for an input reader.
func New(inputReader io.Reader) (*Parser, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	p := &Parser{buf: bufio.NewScanner(inputReader)}
	p.Token = newToken(0)
	return p, nil
}

// Parse iterates over each data item line of a UCD file and calls the
// callback f on it. The first error encountered is returned after the
// iteration stops.
func Parse(r io.Reader, f func(token *Token)) error {
	p, err := New(r)
	if err != nil {
		return err
	}
	for p.Next() {
		f(p.Token)
	}
	return p.LastError
}

// Next is called to receive the next line-level token. A token subsumes the
// properties of one data item line of UCD input. It returns false at EOF or
// after a scan error; the error, if any, is left in LastError.
func (p *Parser) Next() bool {
	for p.buf.Scan() {
		p.lineno++
		line := strings.TrimRight(p.buf.Text(), " \t")
		if line == "" || line[0] == '#' {
			continue
		}
		p.Token = newToken(p.lineno)
		p.scanItem(line)
		if p.Token.Error != nil {
			p.LastError = p.Token.Error
			return false
		}
		return true
	}
	p.Token = newToken(p.lineno)
	p.Token.TokenType = EOF
	if err := p.buf.Err(); err != nil {
		p.LastError = err
	}
	return false
}

// scanItem recognizes a single data item line:
//
//	item:
//	  -> hex:          singleDataItem
//	  -> hex ".." hex: rangeDataItem
//	followed by ";"-separated fields and an optional "#" comment.
func (p *Parser) scanItem(line string) {
	token := p.Token
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	fields := strings.Split(line, ";")
	codepoints := strings.TrimSpace(fields[0])
	token.Fields = fields[1:]
	for i, f := range token.Fields {
		token.Fields[i] = strings.TrimSpace(f)
	}
	from, to, isRange, err := scanRuneRange(codepoints)
	if err != nil {
		token.Error = fmt.Errorf("ucd line %d: %w", token.LineNo, err)
		return
	}
	token.runeFrom, token.runeTo = from, to
	if isRange {
		token.TokenType = RangeDataItem
	} else {
		token.TokenType = SingleDataItem
	}
}

// scanRuneRange decodes "XXXX" or "XXXX..YYYY" hex code-point notation.
func scanRuneRange(s string) (from, to rune, isRange bool, err error) {
	lo, hi, found := s, "", false
	if i := strings.Index(s, ".."); i >= 0 {
		lo, hi, found = s[:i], s[i+2:], true
	}
	n, err := strconv.ParseInt(lo, 16, 32)
	if err != nil {
		return 0, 0, false, fmt.Errorf("hex decoding error: %w", err)
	}
	from, to = rune(n), rune(n)
	if found {
		n, err = strconv.ParseInt(hi, 16, 32)
		if err != nil {
			return 0, 0, false, fmt.Errorf("hex decoding error: %w", err)
		}
		to = rune(n)
	}
	return from, to, found, nil
}
