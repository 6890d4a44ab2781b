// Package detector identifies the script and language of answer text.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// minDetectLength is the minimum rune count required before a statistical
// language guess is trusted. Shorter answers ("haan", "Rajesh") are ambiguous.
const minDetectLength = 20

// languages the product can encounter in spoken answers.
var languages = []lingua.Language{
	lingua.English,
	lingua.Hindi,
	lingua.Marathi,
	lingua.Bengali,
	lingua.Gujarati,
	lingua.Punjabi,
	lingua.Tamil,
	lingua.Telugu,
	lingua.Urdu,
}

// Detector wraps a lingua language detector limited to English and the
// Indian languages above. Building it loads language models; reuse the instance.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lower-case ISO 639-1 code of the detected language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Matches reports whether text plausibly is written in lang.
//
// Texts shorter than minDetectLength runes and texts whose language cannot
// be determined pass. Only a confident guess of a different language fails.
func (d *Detector) Matches(text, lang string) bool {
	if lang == "" {
		return true
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if len([]rune(text)) < minDetectLength {
		return true
	}

	detected, ok := d.DetectISO(text)
	if !ok {
		return true
	}
	return strings.EqualFold(detected, lang)
}
