package numparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Table names accepted by ParserFor.
const (
	TableNone     = "none"
	TableBasic    = "basic"
	TableExtended = "extended"
)

const hundred = 100

var englishWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100,
}

var hindiWords = map[string]int64{
	"शून्य": 0, "एक": 1, "दो": 2, "तीन": 3, "चार": 4, "पांच": 5, "पाँच": 5,
	"छह": 6, "सात": 7, "आठ": 8, "नौ": 9, "दस": 10,
	"ग्यारह": 11, "बारह": 12, "तेरह": 13, "चौदह": 14, "पंद्रह": 15,
	"सोलह": 16, "सत्रह": 17, "अठारह": 18, "उन्नीस": 19, "बीस": 20,
	"तीस": 30, "चालीस": 40, "पचास": 50, "साठ": 60, "सत्तर": 70,
	"अस्सी": 80, "नब्बे": 90, "सौ": 100, "sau": 100,
}

// scale words flush the running sub-total instead of multiplying it.
var scaleWords = map[string]int64{
	"thousand": 1000, "hazaar": 1000, "hazar": 1000, "हजार": 1000, "हज़ार": 1000,
	"lakh": 100000, "lakhs": 100000, "lac": 100000, "lacs": 100000, "लाख": 100000,
	"crore": 10000000, "करोड़": 10000000,
}

var romanizedHindiWords = map[string]int64{
	"ek": 1, "do": 2, "teen": 3, "char": 4, "paanch": 5, "panch": 5,
	"chhe": 6, "saat": 7, "aath": 8, "nau": 9, "dus": 10, "das": 10,
	"gyarah": 11, "barah": 12, "terah": 13, "chaudah": 14, "pandrah": 15,
	"solah": 16, "satrah": 17, "atharah": 18, "unnis": 19, "bees": 20,
	"tees": 30, "chalis": 40, "pachas": 50, "saath": 60, "sattar": 70,
	"assi": 80, "nabbe": 90,
}

// Parser accumulates number words left to right. A word worth exactly one
// hundred multiplies the current sub-total (or 1 when it is zero); words of
// a thousand or more multiply the sub-total and flush it into the total;
// every other word is added to the sub-total.
type Parser struct {
	words map[string]int64
}

func newParser(tables ...map[string]int64) *Parser {
	words := make(map[string]int64)
	for _, t := range tables {
		for k, v := range t {
			words[norm.NFC.String(k)] = v
		}
	}
	return &Parser{words: words}
}

var (
	basicParser    = newParser(englishWords, hindiWords)
	extendedParser = newParser(englishWords, hindiWords, romanizedHindiWords, scaleWords)
)

// Basic returns the parser covering 0..100 in English and Hindi, with
// "hundred" as the only multiplier.
func Basic() *Parser { return basicParser }

// Extended adds thousand/lakh/crore scales and romanized Hindi numerals.
func Extended() *Parser { return extendedParser }

// ParserFor resolves a configured table name. TableNone yields nil.
func ParserFor(name string) (*Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", TableNone:
		return nil, nil
	case TableBasic:
		return basicParser, nil
	case TableExtended:
		return extendedParser, nil
	default:
		return nil, fmt.Errorf("unknown number word table %q", name)
	}
}

// Parse returns the value spelled by text and whether any number word was
// found with a total above zero.
func (p *Parser) Parse(text string) (int64, bool) {
	var total, current int64
	matched := false

	for _, tok := range Tokens(text) {
		val, ok := p.words[tok]
		if !ok {
			continue
		}
		matched = true

		switch {
		case val > hundred:
			total += max(1, current) * val
			current = 0
		case val == hundred:
			current = max(1, current) * val
		default:
			current += val
		}
	}
	total += current

	if !matched || total <= 0 {
		return 0, false
	}
	return total, true
}

// ParseString is Parse rendered as decimal digits, or "" when nothing parsed.
func (p *Parser) ParseString(text string) string {
	n, ok := p.Parse(text)
	if !ok {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// ParseNumberWords parses English and Hindi number words with the basic
// table. "twenty five" -> "25", "पांच सौ" -> "500", "hello" -> "".
func ParseNumberWords(text string) string {
	return basicParser.ParseString(text)
}

// Tokens lower-cases text, replaces everything except ASCII letters,
// Devanagari, whitespace and hyphens with a space, and splits on whitespace.
func Tokens(text string) []string {
	s := norm.NFC.String(strings.ToLower(strings.TrimSpace(text)))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		case r >= '\u0900' && r <= '\u097F':
			return r
		case r == '-', unicode.IsSpace(r):
			return r
		}
		return ' '
	}, s)
	return strings.Fields(s)
}
