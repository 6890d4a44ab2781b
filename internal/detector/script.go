package detector

// Devanagari block bounds.
const (
	devanagariFirst = '\u0900'
	devanagariLast  = '\u097F'
)

// ContainsDevanagari reports whether any rune of text lies in the Devanagari
// block. Mixed-script strings return true as soon as one rune matches.
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if r >= devanagariFirst && r <= devanagariLast {
			return true
		}
	}
	return false
}

// SourceLanguage infers the default source language of an answer:
// "hi" when Devanagari is present, "en" otherwise.
func SourceLanguage(text string) string {
	if ContainsDevanagari(text) {
		return "hi"
	}
	return "en"
}
