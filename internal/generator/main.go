/*
Package for a generator for Unicode character property tables.

# Content

Generator for the embedded per-code-point property records, bracket pairing,
mirroring, decomposition and composition tables of the uniprop package. For
more information see http://www.unicode.org/reports/tr44/

Tables are generated from the following Unicode Character Database files:

	UnicodeData.txt
	Blocks.txt
	Scripts.txt
	ArabicShaping.txt
	BidiBrackets.txt
	BidiMirroring.txt
	CompositionExclusions.txt
	DerivedCoreProperties.txt
	PropList.txt
	IndicSyllabicCategory.txt
	IndicPositionalCategory.txt
	emoji/emoji-data.txt
	auxiliary/GraphemeBreakProperty.txt
	auxiliary/WordBreakProperty.txt
	LineBreak.txt

# Usage

The generator downloads the UCD archive into a cache directory on first use.

	generator [-v] [-ucd <cachedir>] [-o <outfile>]

This creates a file "tables.go" in the current directory. It is designed to
be called from the module's root directory.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"golang.org/x/text/unicode/rangetable"

	"github.com/npillmayer/uniprop/internal/ucdfiles"
	"github.com/npillmayer/uniprop/internal/ucdparse"
)

var logger = log.New(os.Stderr, "uniprop generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// ucdVersion must match the Version constant emitted into the tables.
const ucdVersion = "15.0.0"

// --- Property collection ----------------------------------------------

// charInfo subsumes everything the UCD says about one code-point.
type charInfo struct {
	category string
	block    string
	script   string
	ccc      int
	bidi     string
	joining  string
	cluster  string
	word     string
	line     string
	indicSyl string // Indic syllabic category
	indicPos string // Indic positional category
	flags    []string
	decomp   []rune
	compat   bool
}

// codePoints maps assigned code-points to their collected properties.
var codePoints = map[rune]*charInfo{}

func info(r rune) *charInfo {
	ci := codePoints[r]
	if ci == nil {
		ci = &charInfo{category: "Cn", bidi: "L"}
		codePoints[r] = ci
	}
	return ci
}

func addFlag(ci *charInfo, flag string) {
	for _, f := range ci.flags {
		if f == flag {
			return
		}
	}
	ci.flags = append(ci.flags, flag)
}

// parseEach opens a UCD file from the cache and feeds every data item line
// to the callback.
func parseEach(dir, file string, f func(token *ucdparse.Token)) error {
	if verbose {
		logger.Printf("reading %s", file)
	}
	defer timeTrack(time.Now(), "loading "+file)
	rc, err := ucdfiles.Open(dir, file)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ucdparse.Parse(rc, f)
}

// loadUnicodeData reads the principal database file: general category,
// canonical combining class, bidi class and decomposition mappings.
func loadUnicodeData(dir string) error {
	var rangeFirst rune = -1
	var rangeInfo charInfo
	return parseEach(dir, "UnicodeData.txt", func(token *ucdparse.Token) {
		r, _ := token.Range()
		name := token.Field(1)
		ci := charInfo{
			category: token.Field(2),
			bidi:     token.Field(4),
		}
		ci.ccc, _ = strconv.Atoi(token.Field(3))
		ci.decomp, ci.compat = parseDecomposition(token.Field(5))
		if strings.HasSuffix(name, "First>") {
			rangeFirst, rangeInfo = r, ci
			return
		}
		if strings.HasSuffix(name, "Last>") && rangeFirst >= 0 {
			for c := rangeFirst; c <= r; c++ {
				cc := rangeInfo
				*info(c) = cc
			}
			rangeFirst = -1
			return
		}
		*info(r) = ci
	})
}

// parseDecomposition decodes UnicodeData field 5, e.g. "0041 0300" or
// "<compat> 0054 004D".
func parseDecomposition(s string) (seq []rune, compat bool) {
	if s == "" {
		return nil, false
	}
	for _, part := range strings.Fields(s) {
		if strings.HasPrefix(part, "<") {
			compat = true
			continue
		}
		n, err := strconv.ParseInt(part, 16, 32)
		if err != nil {
			return nil, false
		}
		seq = append(seq, rune(n))
	}
	return seq, compat
}

// loadRangeProperty reads a file in the common "range ; value" format and
// stores field 1 via the setter.
func loadRangeProperty(dir, file string, set func(ci *charInfo, value string)) error {
	return parseEach(dir, file, func(token *ucdparse.Token) {
		from, to := token.Range()
		value := token.Field(1)
		for r := from; r <= to; r++ {
			if ci, ok := codePoints[r]; ok {
				set(ci, value)
			}
		}
	})
}

// bracketPair and mirrorPair mirror the table rows of the output file.
type bracketPair struct {
	open, close rune
}

type mirrorPair struct {
	ch, mirror rune
}

var brackets []bracketPair
var mirrors []mirrorPair
var exclusions []rune

func loadBidiBrackets(dir string) error {
	err := parseEach(dir, "BidiBrackets.txt", func(token *ucdparse.Token) {
		if token.Field(2) != "o" {
			return
		}
		r, _ := token.Range()
		partner, err := strconv.ParseInt(token.Field(1), 16, 32)
		if err != nil {
			return
		}
		brackets = append(brackets, bracketPair{r, rune(partner)})
	})
	if err != nil {
		return err
	}
	brackets = canonicalBrackets(brackets)
	return nil
}

// canonicalBrackets sorts the pair table by opening bracket and drops
// cross-mapped pairs. The UCD pairs the four tick-corner brackets
// U+298D..U+2990 with each other crosswise; both columns of the emitted
// table must be strictly increasing for binary search, so crossing pairs
// are removed entirely.
func canonicalBrackets(pairs []bracketPair) []bracketPair {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].open < pairs[j].open })
	drop := make([]bool, len(pairs))
	for i := range pairs {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[j].close < pairs[i].close {
				drop[i], drop[j] = true, true
			}
		}
	}
	kept := pairs[:0]
	for i, p := range pairs {
		if drop[i] {
			if verbose {
				logger.Printf("dropping cross-mapped bracket pair %#U / %#U", p.open, p.close)
			}
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func loadBidiMirroring(dir string) error {
	return parseEach(dir, "BidiMirroring.txt", func(token *ucdparse.Token) {
		r, _ := token.Range()
		partner, err := strconv.ParseInt(token.Field(1), 16, 32)
		if err != nil {
			return
		}
		mirrors = append(mirrors, mirrorPair{r, rune(partner)})
	})
}

func loadCompositionExclusions(dir string) error {
	err := parseEach(dir, "CompositionExclusions.txt", func(token *ucdparse.Token) {
		from, to := token.Range()
		for r := from; r <= to; r++ {
			exclusions = append(exclusions, r)
		}
	})
	if err != nil {
		return err
	}
	// Full exclusion set: add singleton and non-starter decompositions,
	// which the data file lists only as comments.
	for r, ci := range codePoints {
		if ci.compat || len(ci.decomp) == 0 {
			continue
		}
		if len(ci.decomp) == 1 {
			exclusions = append(exclusions, r)
		} else if first, ok := codePoints[ci.decomp[0]]; ok && first.ccc != 0 {
			exclusions = append(exclusions, r)
		}
	}
	sort.Slice(exclusions, func(i, j int) bool { return exclusions[i] < exclusions[j] })
	return nil
}

func isExcluded(r rune) bool {
	i := sort.Search(len(exclusions), func(i int) bool { return exclusions[i] >= r })
	return i < len(exclusions) && exclusions[i] == r
}

// --- Record deduplication ---------------------------------------------

// identifier mappings from UCD property values to the enumeration names of
// the output package. Unlisted blocks and scripts collapse onto the zero
// value; the record table only discriminates what the library exposes.
var blockIdents = map[string]string{
	"Basic Latin": "BasicLatin", "Latin-1 Supplement": "Latin1Supplement",
	"Latin Extended-A": "LatinExtendedA", "Latin Extended-B": "LatinExtendedB",
	"Combining Diacritical Marks": "CombiningDiacriticalMarks",
	"Greek and Coptic":            "GreekAndCoptic", "Cyrillic": "CyrillicBlock",
	"Hebrew": "HebrewBlock", "Arabic": "ArabicBlock",
	"Devanagari": "DevanagariBlock", "Thai": "ThaiBlock",
	"Hangul Jamo": "HangulJamo", "Latin Extended Additional": "LatinExtendedAdditional",
	"General Punctuation": "GeneralPunctuation", "Currency Symbols": "CurrencySymbols",
	"Letterlike Symbols": "LetterlikeSymbols", "Arrows": "Arrows",
	"Mathematical Operators":  "MathematicalOperators",
	"Miscellaneous Technical": "MiscellaneousTechnical",
	"Miscellaneous Symbols":   "MiscellaneousSymbols", "Dingbats": "Dingbats",
	"CJK Symbols and Punctuation": "CJKSymbolsAndPunctuation",
	"Hiragana":                    "HiraganaBlock", "Katakana": "KatakanaBlock",
	"CJK Unified Ideographs":                "CJKUnifiedIdeographs",
	"Hangul Syllables":                      "HangulSyllables",
	"Alphabetic Presentation Forms":         "AlphabeticPresentationForms",
	"Variation Selectors":                   "VariationSelectors",
	"Halfwidth and Fullwidth Forms":         "HalfwidthAndFullwidthForms",
	"Enclosed Alphanumeric Supplement":      "EnclosedAlphanumericSupplement",
	"Miscellaneous Symbols and Pictographs": "MiscellaneousSymbolsAndPictographs",
	"Emoticons":                             "Emoticons", "Transport and Map Symbols": "TransportAndMapSymbols",
}

var joiningIdents = map[string]string{
	"U": "JoiningNone", "L": "JoiningLeft", "R": "JoiningRight",
	"D": "JoiningDual", "C": "JoiningCausing", "T": "JoiningTransparent",
}

var clusterIdents = map[string]string{
	"CR": "ClusterCR", "LF": "ClusterLF", "Control": "ClusterControl",
	"Extend": "ClusterExtend", "ZWJ": "ClusterZWJ",
	"Regional_Indicator": "ClusterRegionalIndicator", "Prepend": "ClusterPrepend",
	"SpacingMark": "ClusterSpacingMark", "L": "ClusterL", "V": "ClusterV",
	"T": "ClusterT", "LV": "ClusterLV", "LVT": "ClusterLVT",
}

var wordIdents = map[string]string{
	"CR": "WordCR", "LF": "WordLF", "Newline": "WordNewline",
	"Extend": "WordExtend", "ZWJ": "WordZWJ",
	"Regional_Indicator": "WordRegionalIndicator", "Format": "WordFormat",
	"Katakana": "WordKatakana", "Hebrew_Letter": "WordHebrewLetter",
	"ALetter": "WordALetter", "Single_Quote": "WordSingleQuote",
	"Double_Quote": "WordDoubleQuote", "MidNumLet": "WordMidNumLet",
	"MidLetter": "WordMidLetter", "MidNum": "WordMidNum",
	"Numeric": "WordNumeric", "ExtendNumLet": "WordExtendNumLet",
	"WSegSpace": "WordWSegSpace",
}

// record is the dedup unit: one distinct character behavior class.
type record struct {
	Category, Block, Script            string
	CombiningClass                     int
	BidiClass, JoiningType             string
	ClusterBreak, WordBreak, LineBreak string
	UseClass, MyanmarClass             string
	Flags                              []string
}

func (rec *record) key() string {
	return fmt.Sprintf("%v", *rec)
}

func recordFor(r rune, ci *charInfo) record {
	rec := record{
		Category:       ci.category,
		Block:          blockIdents[ci.block],
		Script:         scriptIdent(ci.script),
		CombiningClass: ci.ccc,
		BidiClass:      "Bidi" + ci.bidi,
		JoiningType:    joiningIdents[ci.joining],
		ClusterBreak:   clusterIdents[ci.cluster],
		WordBreak:      wordIdents[ci.word],
		LineBreak:      "Line" + ci.line,
		UseClass:       useClassFor(r, ci),
		MyanmarClass:   myanmarClassFor(r, ci),
		Flags:          append([]string(nil), ci.flags...),
	}
	if rec.Block == "" {
		rec.Block = "NoBlock"
	}
	if rec.JoiningType == "" {
		rec.JoiningType = "JoiningNone"
	}
	if rec.ClusterBreak == "" {
		rec.ClusterBreak = "ClusterAny"
	}
	if rec.WordBreak == "" {
		rec.WordBreak = "WordOther"
	}
	if ci.line == "" {
		rec.LineBreak = "LineXX"
	}
	sort.Strings(rec.Flags)
	return rec
}

// posSuffix turns an Indic positional category into the Abv/Blw/Pre/Pst
// suffix of the positional USE class constants. Positions USE does not
// discriminate (Top_And_Bottom and friends) get the position-less class.
func posSuffix(pos string) string {
	switch pos {
	case "Top":
		return "Abv"
	case "Bottom":
		return "Blw"
	case "Left":
		return "Pre"
	case "Right":
		return "Pst"
	}
	return ""
}

// useClassFor derives the Universal Shaping Engine class from the Indic
// syllabic and positional categories, following the assignment of the USE
// specification. Characters outside the syllable model stay UseO.
func useClassFor(r rune, ci *charInfo) string {
	switch r {
	case 0x034F:
		return "UseCGJ"
	case 0x2060:
		return "UseWJ"
	case 0x1A60: // Tai Tham sakot
		return "UseSk"
	}
	switch ci.indicSyl {
	case "Consonant", "Vowel_Independent", "Consonant_Head_Letter":
		return "UseB"
	case "Consonant_Placeholder":
		return "UseGB"
	case "Consonant_Subjoined":
		return "UseSUB"
	case "Consonant_With_Stacker":
		return "UseCS"
	case "Consonant_Medial":
		return "UseM" + posSuffix(ci.indicPos)
	case "Consonant_Final":
		return "UseF" + posSuffix(ci.indicPos)
	case "Consonant_Succeeding_Repha", "Consonant_Preceding_Repha":
		return "UseR"
	case "Nukta":
		return "UseCM" + posSuffix(ci.indicPos)
	case "Virama", "Pure_Killer":
		return "UseH"
	case "Invisible_Stacker":
		return "UseIS"
	case "Vowel", "Vowel_Dependent":
		return "UseV" + posSuffix(ci.indicPos)
	case "Bindu":
		return "UseVM" + posSuffix(ci.indicPos)
	case "Visarga":
		return "UseSM"
	case "Syllable_Modifier", "Gemination_Mark", "Cantillation_Mark":
		return "UseSM" + posSuffix(ci.indicPos)
	case "Number_Joiner":
		return "UseHN"
	case "Number", "Brahmi_Joining_Number":
		return "UseN"
	case "Non_Joiner":
		return "UseZWNJ"
	}
	return "UseO"
}

// myanmarClassFor derives the Myanmar shaper class. The four medials are
// distinct code-points rather than a category of their own, so they are
// picked out directly.
func myanmarClassFor(r rune, ci *charInfo) string {
	switch ci.indicSyl {
	case "Non_Joiner":
		return "MyanmarZWNJ"
	case "Joiner":
		return "MyanmarZWJ"
	}
	for _, f := range ci.flags {
		if f == "FlagVariationSelector" {
			return "MyanmarVS"
		}
	}
	if ci.script != "Myanmar" {
		return "MyanmarO"
	}
	switch r {
	case 0x103B, 0x105E, 0x105F:
		return "MyanmarMY"
	case 0x103C:
		return "MyanmarMR"
	case 0x103D, 0x1082:
		return "MyanmarMW"
	case 0x103E, 0x1060:
		return "MyanmarMH"
	}
	switch ci.indicSyl {
	case "Consonant":
		return "MyanmarC"
	case "Consonant_Placeholder":
		return "MyanmarGB"
	case "Vowel_Independent":
		return "MyanmarV"
	case "Bindu":
		return "MyanmarA"
	case "Pure_Killer":
		return "MyanmarAs"
	case "Virama", "Invisible_Stacker":
		return "MyanmarH"
	case "Nukta":
		return "MyanmarDB"
	case "Visarga":
		return "MyanmarSM"
	case "Tone_Mark", "Syllable_Modifier":
		return "MyanmarPT"
	case "Vowel_Dependent":
		return "MyanmarV" + posSuffix(ci.indicPos)
	case "Number":
		return "MyanmarD"
	}
	if ci.category == "Po" {
		return "MyanmarP"
	}
	return "MyanmarO"
}

// scriptInfo is the per-script metadata emitted alongside the record table:
// constant name, Scripts.txt property value, OpenType script tag and shaping
// complexity. The enumeration is closed; the order below is the emitted
// constant order and must not change between releases.
type scriptInfo struct {
	ident   string
	name    string
	tag     string
	complex bool
}

var scripts = []scriptInfo{
	{"Unknown", "Unknown", "zzzz", false},
	{"Common", "Common", "zyyy", false},
	{"Inherited", "Inherited", "zinh", false},
	{"Adlam", "Adlam", "adlm", true},
	{"Arabic", "Arabic", "arab", true},
	{"Armenian", "Armenian", "armn", false},
	{"Bengali", "Bengali", "beng", true},
	{"Bopomofo", "Bopomofo", "bopo", false},
	{"Cherokee", "Cherokee", "cher", false},
	{"Cyrillic", "Cyrillic", "cyrl", false},
	{"Devanagari", "Devanagari", "deva", true},
	{"Ethiopic", "Ethiopic", "ethi", false},
	{"Georgian", "Georgian", "geor", false},
	{"Greek", "Greek", "grek", false},
	{"Gujarati", "Gujarati", "gujr", true},
	{"Gurmukhi", "Gurmukhi", "guru", true},
	{"Han", "Han", "hani", false},
	{"Hangul", "Hangul", "hang", true},
	{"Hebrew", "Hebrew", "hebr", false},
	{"Hiragana", "Hiragana", "kana", false},
	{"Javanese", "Javanese", "java", true},
	{"Kannada", "Kannada", "knda", true},
	{"Katakana", "Katakana", "kana", false},
	{"Khmer", "Khmer", "khmr", true},
	{"Lao", "Lao", "lao ", true},
	{"Latin", "Latin", "latn", false},
	{"Malayalam", "Malayalam", "mlym", true},
	{"Mandaic", "Mandaic", "mand", true},
	{"Manichaean", "Manichaean", "mani", true},
	{"Mongolian", "Mongolian", "mong", true},
	{"Myanmar", "Myanmar", "mymr", true},
	{"Nko", "Nko", "nko ", true},
	{"Oriya", "Oriya", "orya", true},
	{"PhagsPa", "Phags_Pa", "phag", true},
	{"PsalterPahlavi", "Psalter_Pahlavi", "phlp", true},
	{"Sinhala", "Sinhala", "sinh", true},
	{"Syriac", "Syriac", "syrc", true},
	{"Tamil", "Tamil", "taml", true},
	{"Telugu", "Telugu", "telu", true},
	{"Thaana", "Thaana", "thaa", true},
	{"Thai", "Thai", "thai", true},
	{"Tibetan", "Tibetan", "tibt", true},
	{"Vai", "Vai", "vai ", false},
	{"Yi", "Yi", "yi  ", false},
}

// scriptIdent maps a Scripts.txt value onto the closed script enumeration.
// Scripts the library does not discriminate collapse onto Unknown, the same
// way unlisted blocks collapse onto NoBlock.
func scriptIdent(name string) string {
	for _, s := range scripts {
		if s.name == name {
			return s.ident
		}
	}
	return "Unknown"
}

func tagValue(tag string) uint32 {
	return uint32(tag[0])<<24 | uint32(tag[1])<<16 | uint32(tag[2])<<8 | uint32(tag[3])
}

// --- Range assembly ----------------------------------------------------

// rangeRun is one output row of the record range table.
type rangeRun struct {
	lo, hi rune
	record int
}

// collectRanges walks the assigned code-points in order, deduplicates their
// records and merges adjacent code-points sharing a record into runs. The
// default record keeps index 0 and produces no run.
func collectRanges() (records []record, runs *arraylist.List) {
	records = []record{{Category: "Cn", Script: "Unknown", BidiClass: "BidiL",
		Block: "NoBlock", JoiningType: "JoiningNone", ClusterBreak: "ClusterAny",
		WordBreak: "WordOther", LineBreak: "LineXX",
		UseClass: "UseO", MyanmarClass: "MyanmarO"}}
	index := map[string]int{records[0].key(): 0}

	assigned := make([]rune, 0, len(codePoints))
	for r := range codePoints {
		assigned = append(assigned, r)
	}
	sort.Slice(assigned, func(i, j int) bool { return assigned[i] < assigned[j] })

	// A merged range table over all assigned code-points doubles as a
	// sanity check for the run assembly below.
	assignedTable := rangetable.New(assigned...)

	runs = arraylist.New()
	var current *rangeRun
	total := 0
	for _, r := range assigned {
		if !unicode.Is(assignedTable, r) {
			logger.Fatalf("assembled range table lost %#U", r)
		}
		rec := recordFor(r, codePoints[r])
		k := rec.key()
		ri, ok := index[k]
		if !ok {
			ri = len(records)
			index[k] = ri
			records = append(records, rec)
		}
		if ri == 0 {
			continue
		}
		if current != nil && current.record == ri && current.hi+1 == r {
			current.hi = r
			continue
		}
		if current != nil {
			runs.Add(*current)
			total++
		}
		current = &rangeRun{lo: r, hi: r, record: ri}
	}
	if current != nil {
		runs.Add(*current)
		total++
	}
	if verbose {
		logger.Printf("deduplicated %d code-points into %d records, %d ranges",
			len(assigned), len(records), total)
	}
	return records, runs
}

// --- Output ------------------------------------------------------------

var header = template.Must(template.New("header").Parse(
	`package uniprop

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// Embedded property tables, emitted by ./internal/generator from the
// Unicode Character Database files UnicodeData.txt, Blocks.txt, Scripts.txt,
// ArabicShaping.txt, BidiBrackets.txt, BidiMirroring.txt,
// CompositionExclusions.txt, DerivedCoreProperties.txt, emoji-data.txt,
// IndicSyllabicCategory.txt, IndicPositionalCategory.txt,
// GraphemeBreakProperty.txt, WordBreakProperty.txt and LineBreak.txt.

// Version is the Unicode Character Database release all embedded tables
// and enumeration values are derived from. It is a compatibility contract:
// moving to another release changes raw discriminant values and table
// content and is a breaking change, never a silent update.
const Version = "{{.}}"
`))

func emit(w *bufio.Writer, records []record, runs *arraylist.List) {
	defer timeTrack(time.Now(), "emitting tables")
	checkFatal(header.Execute(w, ucdVersion))

	emitScripts(w)

	fmt.Fprintf(w, "\nvar records = []Record{\n")
	for i, rec := range records {
		fmt.Fprintf(w, "\t{")
		fmt.Fprintf(w, "Category: %s, Block: %s, Script: %s", rec.Category, rec.Block, rec.Script)
		if rec.CombiningClass != 0 {
			fmt.Fprintf(w, ", CombiningClass: %d", rec.CombiningClass)
		}
		fmt.Fprintf(w, ", BidiClass: %s, JoiningType: %s", rec.BidiClass, rec.JoiningType)
		fmt.Fprintf(w, ", ClusterBreak: %s, WordBreak: %s, LineBreak: %s",
			rec.ClusterBreak, rec.WordBreak, rec.LineBreak)
		if rec.UseClass != "UseO" {
			fmt.Fprintf(w, ", UseClass: %s", rec.UseClass)
		}
		if rec.MyanmarClass != "MyanmarO" {
			fmt.Fprintf(w, ", MyanmarClass: %s", rec.MyanmarClass)
		}
		if len(rec.Flags) > 0 {
			fmt.Fprintf(w, ", Flags: %s", strings.Join(rec.Flags, " | "))
		}
		fmt.Fprintf(w, "}, // %d\n", i)
	}
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\ntype recordRange struct {\n\tlo, hi rune\n\trecord uint16\n}\n")
	fmt.Fprintf(w, "\nvar recordRanges = []recordRange{\n")
	runs.Each(func(_ int, value interface{}) {
		run := value.(rangeRun)
		fmt.Fprintf(w, "\t{0x%04X, 0x%04X, %d},\n", run.lo, run.hi, run.record)
	})
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\ntype bracketPair struct {\n\topen, close rune\n}\n")
	fmt.Fprintf(w, "\nvar bracketPairs = []bracketPair{\n")
	for _, b := range brackets {
		fmt.Fprintf(w, "\t{0x%04X, 0x%04X},\n", b.open, b.close)
	}
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\ntype mirrorPair struct {\n\tch, mirror rune\n}\n")
	fmt.Fprintf(w, "\nvar mirrorPairs = []mirrorPair{\n")
	for _, m := range mirrors {
		fmt.Fprintf(w, "\t{0x%04X, 0x%04X},\n", m.ch, m.mirror)
	}
	fmt.Fprintf(w, "}\n")

	emitDecompositions(w)
	emitCompositions(w)

	fmt.Fprintf(w, "\nvar compositionExclusions = []rune{\n")
	for _, r := range exclusions {
		fmt.Fprintf(w, "\t0x%04X,\n", r)
	}
	fmt.Fprintf(w, "}\n")
}

// emitScripts writes the script enumeration and its metadata tables. The
// library's Script type is declared by hand; its constant values and the
// name, tag and complexity tables are owned by the generator.
func emitScripts(w *bufio.Writer) {
	fmt.Fprintf(w, "\n// Scripts, ordered as emitted by the generator: the Unknown/Common/Inherited\n")
	fmt.Fprintf(w, "// specials first, then alphabetically.\n")
	fmt.Fprintf(w, "const (\n")
	for i, s := range scripts {
		if i == 0 {
			fmt.Fprintf(w, "\t%s Script = iota\n", s.ident)
		} else {
			fmt.Fprintf(w, "\t%s\n", s.ident)
		}
	}
	fmt.Fprintf(w, ")\n")

	fmt.Fprintf(w, "\nvar scriptNames = [...]string{\n")
	for _, s := range scripts {
		fmt.Fprintf(w, "\t%q,\n", s.name)
	}
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\nvar scriptTags = [...]Tag{\n")
	for _, s := range scripts {
		fmt.Fprintf(w, "\t0x%08X, // %-15s %q\n", tagValue(s.tag), s.name, s.tag)
	}
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\nvar scriptComplexity = [...]bool{\n")
	for _, s := range scripts {
		fmt.Fprintf(w, "\t%-6s // %s\n", strconv.FormatBool(s.complex)+",", s.name)
	}
	fmt.Fprintf(w, "}\n")

	fmt.Fprintf(w, "\ntype scriptTagEntry struct {\n\ttag    Tag\n\tscript Script\n}\n")

	// Index sorted by tag. Hiragana and Katakana share the OpenType tag
	// "kana"; the first script in enumeration order wins.
	byTag := make([]int, 0, len(scripts))
	seen := map[string]bool{}
	for i, s := range scripts {
		if seen[s.tag] {
			continue
		}
		seen[s.tag] = true
		byTag = append(byTag, i)
	}
	sort.Slice(byTag, func(i, j int) bool {
		return scripts[byTag[i]].tag < scripts[byTag[j]].tag
	})
	fmt.Fprintf(w, "\n// scriptsByTag is sorted by tag value; duplicate OpenType tags (Hiragana\n")
	fmt.Fprintf(w, "// and Katakana share \"kana\") keep the first script in enumeration order.\n")
	fmt.Fprintf(w, "var scriptsByTag = []scriptTagEntry{\n")
	for _, i := range byTag {
		s := scripts[i]
		fmt.Fprintf(w, "\t{0x%08X, %s}, // %q\n", tagValue(s.tag), s.ident, s.tag)
	}
	fmt.Fprintf(w, "}\n")
}

func emitDecompositions(w *bufio.Writer) {
	type entry struct {
		ch     rune
		compat bool
		seq    []rune
	}
	var entries []entry
	for r, ci := range codePoints {
		if len(ci.decomp) == 0 {
			continue
		}
		entries = append(entries, entry{r, ci.compat, ci.decomp})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ch < entries[j].ch })

	fmt.Fprintf(w, "\ntype decompEntry struct {\n\tch rune\n\tcompat bool\n\tseq []rune\n}\n")
	fmt.Fprintf(w, "\nvar decompositions = []decompEntry{\n")
	for _, e := range entries {
		fmt.Fprintf(w, "\t{ch: 0x%04X", e.ch)
		if e.compat {
			fmt.Fprintf(w, ", compat: true")
		}
		fmt.Fprintf(w, ", seq: []rune{")
		for i, r := range e.seq {
			if i > 0 {
				fmt.Fprintf(w, ", ")
			}
			fmt.Fprintf(w, "0x%04X", r)
		}
		fmt.Fprintf(w, "}},\n")
	}
	fmt.Fprintf(w, "}\n")
}

func emitCompositions(w *bufio.Writer) {
	type entry struct {
		first, second, composed rune
	}
	var entries []entry
	for r, ci := range codePoints {
		if ci.compat || len(ci.decomp) != 2 || isExcluded(r) {
			continue
		}
		entries = append(entries, entry{ci.decomp[0], ci.decomp[1], r})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].first != entries[j].first {
			return entries[i].first < entries[j].first
		}
		return entries[i].second < entries[j].second
	})

	fmt.Fprintf(w, "\ntype compEntry struct {\n\tfirst, second, composed rune\n}\n")
	fmt.Fprintf(w, "\nvar compositions = []compEntry{\n")
	for _, e := range entries {
		fmt.Fprintf(w, "\t{0x%04X, 0x%04X, 0x%04X},\n", e.first, e.second, e.composed)
	}
	fmt.Fprintf(w, "}\n")
}

// --- Main --------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	ucdDir := flag.String("ucd", "ucd", "cache directory for UCD files")
	outName := flag.String("o", "tables.go", "output file")
	flag.Parse()
	verbose = *doVerbose

	checkFatal(loadUnicodeData(*ucdDir))
	checkFatal(loadRangeProperty(*ucdDir, "Blocks.txt", func(ci *charInfo, v string) {
		ci.block = v
	}))
	checkFatal(loadRangeProperty(*ucdDir, "Scripts.txt", func(ci *charInfo, v string) {
		ci.script = v
	}))
	checkFatal(parseEach(*ucdDir, "ArabicShaping.txt", func(token *ucdparse.Token) {
		r, _ := token.Range()
		if ci, ok := codePoints[r]; ok {
			ci.joining = token.Field(2)
		}
	}))
	checkFatal(loadRangeProperty(*ucdDir, "auxiliary/GraphemeBreakProperty.txt",
		func(ci *charInfo, v string) { ci.cluster = v }))
	checkFatal(loadRangeProperty(*ucdDir, "auxiliary/WordBreakProperty.txt",
		func(ci *charInfo, v string) { ci.word = v }))
	checkFatal(loadRangeProperty(*ucdDir, "LineBreak.txt",
		func(ci *charInfo, v string) { ci.line = v }))
	checkFatal(loadRangeProperty(*ucdDir, "IndicSyllabicCategory.txt",
		func(ci *charInfo, v string) { ci.indicSyl = v }))
	checkFatal(loadRangeProperty(*ucdDir, "IndicPositionalCategory.txt",
		func(ci *charInfo, v string) { ci.indicPos = v }))
	checkFatal(loadRangeProperty(*ucdDir, "emoji/emoji-data.txt",
		func(ci *charInfo, v string) {
			switch v {
			case "Emoji":
				addFlag(ci, "FlagEmoji")
			case "Extended_Pictographic":
				addFlag(ci, "FlagExtendedPictographic")
			}
		}))
	checkFatal(loadRangeProperty(*ucdDir, "DerivedCoreProperties.txt",
		func(ci *charInfo, v string) {
			if v == "Default_Ignorable_Code_Point" {
				addFlag(ci, "FlagIgnorable")
			}
		}))
	checkFatal(loadRangeProperty(*ucdDir, "PropList.txt",
		func(ci *charInfo, v string) {
			switch v {
			case "Variation_Selector":
				addFlag(ci, "FlagVariationSelector")
			case "Join_Control":
				addFlag(ci, "FlagContributesToShaping")
			}
		}))
	checkFatal(loadBidiBrackets(*ucdDir))
	checkFatal(loadBidiMirroring(*ucdDir))
	checkFatal(loadCompositionExclusions(*ucdDir))

	// Derived flags.
	for r, ci := range codePoints {
		if ci.category == "Ps" {
			addFlag(ci, "FlagOpenBracket")
		}
		if ci.category == "Pe" {
			addFlag(ci, "FlagCloseBracket")
		}
		if ci.ccc != 0 || ci.category == "Mn" {
			addFlag(ci, "FlagContributesToShaping")
		}
		if !ci.compat && len(ci.decomp) > 0 {
			addFlag(ci, "FlagNeedsDecomposition")
		}
		if r >= 0xAC00 && r <= 0xD7A3 {
			addFlag(ci, "FlagNeedsDecomposition")
		}
	}

	records, runs := collectRanges()

	f, ioerr := os.Create(*outName)
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	emit(w, records, runs)
	checkFatal(w.Flush())
	if verbose {
		logger.Printf("wrote %s", *outName)
	}
}

// --- Util --------------------------------------------------------------

// Little helper for timing sections of work
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
