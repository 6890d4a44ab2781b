package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minTranslatedLength = 3
	shortLineLength     = 2
	maxSingleRuneTokens = 2
)

// IsSuspicious reports whether translated looks like a failed translation
// of source. The first matching rule wins:
//
//  1. translated is empty
//  2. trimmed translated equals trimmed source
//  3. translated is shorter than max(3, len(source)/3) runes
//  4. it has two or more lines and at least half of them are at most
//     two runes long
//  5. it contains two or more single-character words
func IsSuspicious(source, translated string) bool {
	if translated == "" {
		return true
	}

	src := strings.TrimSpace(source)
	dst := strings.TrimSpace(translated)
	if dst == src {
		return true
	}

	if utf8.RuneCountInString(dst) < max(minTranslatedLength, utf8.RuneCountInString(src)/3) {
		return true
	}

	lines := splitLines(translated)
	short := 0
	for _, line := range lines {
		if utf8.RuneCountInString(strings.TrimSpace(line)) <= shortLineLength {
			short++
		}
	}
	if len(lines) >= 2 && short >= len(lines)/2 {
		return true
	}

	return singleRuneTokens(translated) >= maxSingleRuneTokens
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// start an empty final line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// singleRuneTokens counts words made of exactly one letter or digit.
// Combining marks belong to the word, so a Devanagari consonant with a
// vowel sign is not a single-character word. This differs from a regexp
// \b\w\b count, where each mark splits a Devanagari word and most Hindi
// output would be flagged.
func singleRuneTokens(s string) int {
	count, run := 0, 0
	flush := func() {
		if run == 1 {
			count++
		}
		run = 0
	}
	for _, r := range s {
		switch {
		case unicode.IsMark(r):
			if run > 0 {
				run++
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			run++
		default:
			flush()
		}
	}
	flush()
	return count
}
