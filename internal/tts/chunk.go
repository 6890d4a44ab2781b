package tts

import (
	"strings"
	"unicode"
)

// splitText cuts text into pieces of at most maxRunes runes. Cuts prefer,
// in order, sentence ends (. ! ? and the Devanagari danda), then
// whitespace, then a hard cut at maxRunes.
func splitText(text string, maxRunes int) []string {
	text = strings.TrimSpace(text)
	if maxRunes <= 0 || len([]rune(text)) <= maxRunes {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	var parts []string
	remaining := []rune(text)
	for len(remaining) > maxRunes {
		cut := findCut(remaining[:maxRunes])
		if part := strings.TrimSpace(string(remaining[:cut])); part != "" {
			parts = append(parts, part)
		}
		remaining = []rune(strings.TrimSpace(string(remaining[cut:])))
	}
	if part := strings.TrimSpace(string(remaining)); part != "" {
		parts = append(parts, part)
	}
	return parts
}

// findCut returns the rune count to consume from window.
func findCut(window []rune) int {
	for i := len(window) - 1; i > 0; i-- {
		if isSentenceEnd(window[i]) && (i+1 == len(window) || unicode.IsSpace(window[i+1])) {
			return i + 1
		}
	}
	for i := len(window) - 1; i > 0; i-- {
		if unicode.IsSpace(window[i]) {
			return i
		}
	}
	return len(window)
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '।', '॥':
		return true
	}
	return false
}
