// Package numparse turns spoken-style numbers into digits: Devanagari
// numerals, speech-recognition digit spacing and English/Hindi number words.
package numparse

import (
	"regexp"
	"strings"
	"unicode"
)

var devanagariDigits = strings.NewReplacer(
	"०", "0", "१", "1", "२", "2", "३", "3", "४", "4",
	"५", "5", "६", "6", "७", "7", "८", "8", "९", "9",
)

var asciiDigitRun = regexp.MustCompile(`[0-9]+`)

// NormalizeDigits maps Devanagari numerals to ASCII and removes whitespace
// found strictly between two digits ("1 2 3" -> "123"). Whitespace next to
// any non-digit is left alone.
func NormalizeDigits(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(devanagariDigits.Replace(text))

	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsSpace(r) && i > 0 && unicode.IsDigit(runes[i-1]) {
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j < len(runes) && unicode.IsDigit(runes[j]) {
				i = j - 1
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FirstDigitRun returns the first run of ASCII digits in text, or "".
func FirstDigitRun(text string) string {
	return asciiDigitRun.FindString(text)
}

// OnlyDigits drops every rune that is not an ASCII digit.
func OnlyDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}
