package normalize

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/valpere/sahayak/internal/detector"
	"github.com/valpere/sahayak/internal/vocab"
)

// Translator is the part of the translation gateway the normalizer needs.
type Translator interface {
	TranslateToEnglish(ctx context.Context, text, assumedSource string) string
}

// Cutoffs are the fuzzy-match thresholds per domain. Skill cutoffs are
// tried in order.
type Cutoffs struct {
	Skill         []float64 `mapstructure:"skill"`
	Location      float64   `mapstructure:"location"`
	Gender        float64   `mapstructure:"gender"`
	Language      float64   `mapstructure:"language"`
	LanguageTitle float64   `mapstructure:"language_title"`
}

func DefaultCutoffs() Cutoffs {
	return Cutoffs{
		Skill:         []float64{0.80, 0.70},
		Location:      0.70,
		Gender:        0.80,
		Language:      0.75,
		LanguageTitle: 0.72,
	}
}

// genderMinFuzzy keeps two and three letter words ("am", "mr") out of the
// fuzzy tier for gender.
const genderMinFuzzy = 4

var locationFillers = map[string]bool{
	"from": true, "in": true, "at": true, "near": true, "i": true, "am": true, "live": true,
	"से": true, "में": true, "मैं": true, "हूं": true, "हूँ": true, "रहता": true, "रहती": true,
}

var languageSeparators = regexp.MustCompile(`[,|/]+|\s{2,}`)

var languageConnectors = map[string]bool{
	"and": true, "aur": true, "और": true, "&": true,
}

// Normalizer resolves answers for the skill, location, gender and
// language domains. It is safe for concurrent use.
type Normalizer struct {
	translator Translator
	skills     *Matcher
	locations  *Matcher
	gender     *Matcher
	languages  *vocab.Vocabulary
	langNames  []string
	cutoffs    Cutoffs
	logger     *zap.Logger
}

// New builds a Normalizer. translator may be nil, in which case Devanagari
// input is matched as is.
func New(set *vocab.Set, translator Translator, cutoffs Cutoffs, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	names := make([]string, 0, len(set.Languages.Entries()))
	for _, e := range set.Languages.Entries() {
		names = append(names, e.Display)
	}
	return &Normalizer{
		translator: translator,
		skills:     NewMatcher(set.Skills, cutoffs.Skill...),
		locations:  NewMatcher(set.Locations, cutoffs.Location),
		gender:     NewMatcher(set.Gender, cutoffs.Gender).WithMinFuzzyLength(genderMinFuzzy).WithoutReverseSubstring(),
		languages:  set.Languages,
		langNames:  names,
		cutoffs:    cutoffs,
		logger:     logger,
	}
}

// toEnglish translates text when src names a non-English language, or when
// src is empty and text contains Devanagari.
func (n *Normalizer) toEnglish(ctx context.Context, text, src string) string {
	if n.translator == nil || strings.EqualFold(src, "en") {
		return text
	}
	if src == "" {
		if !detector.ContainsDevanagari(text) {
			return text
		}
		src = "hi"
	}
	return n.translator.TranslateToEnglish(ctx, text, src)
}

// Skill resolves a job description. Non-English input is translated first;
// the untranslated text is tried again when the translation matches
// nothing. src may be empty. The second return value is the English text
// that was matched.
func (n *Normalizer) Skill(ctx context.Context, text, src string) (Match, string) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Match{}, ""
	}

	english := strings.TrimSpace(n.toEnglish(ctx, s, src))
	m := n.skills.Resolve(english)
	if !m.OK() && english != s {
		m = n.skills.Resolve(s)
	}

	n.logger.Debug("skill resolved",
		zap.String("input", s),
		zap.String("english", english),
		zap.String("value", m.Value),
		zap.Stringer("tier", m.Tier))
	return m, english
}

// Location resolves a city or state. Unmatched input that still contains a
// letter is accepted in Title Case; input that is empty after removing
// fillers is rejected.
func (n *Normalizer) Location(ctx context.Context, text, src string) (string, bool) {
	cleaned := stripFillers(text, locationFillers)
	if cleaned == "" {
		return "", false
	}

	english := cleaned
	if translated := n.toEnglish(ctx, cleaned, src); translated != cleaned {
		english = stripFillers(translated, locationFillers)
	}

	m := n.locations.Resolve(english)
	if !m.OK() && english != cleaned {
		m = n.locations.Resolve(cleaned)
	}
	if m.OK() {
		return m.Value, true
	}

	if english == "" {
		english = cleaned
	}
	if !strings.ContainsFunc(english, unicode.IsLetter) {
		return "", false
	}
	return Title(english), true
}

// Gender returns vocab.Male or vocab.Female.
func (n *Normalizer) Gender(text string) (string, bool) {
	m := n.gender.Resolve(text)
	return m.Value, m.OK()
}

// Languages normalizes a list of spoken languages into canonical names
// joined by single spaces, first occurrence first. Unrecognized items are
// kept as spoken.
func (n *Normalizer) Languages(ctx context.Context, text, src string) string {
	s := strings.TrimSpace(n.toEnglish(ctx, strings.TrimSpace(text), src))
	if s == "" {
		return ""
	}

	var out []string
	seen := make(map[string]bool)
	add := func(lang string) {
		if lang != "" && !seen[lang] {
			seen[lang] = true
			out = append(out, lang)
		}
	}

	for _, item := range languageSeparators.Split(s, -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if lang, ok := n.language(item); ok {
			add(lang)
			continue
		}

		// "hindi and english" arrives as one item from speech input
		var words []string
		for _, w := range strings.Fields(item) {
			if lang, ok := n.language(w); ok {
				words = append(words, lang)
			} else if !languageConnectors[strings.ToLower(w)] {
				words = nil
				break
			}
		}
		if len(words) == 0 {
			add(item)
			continue
		}
		for _, w := range words {
			add(w)
		}
	}
	return strings.Join(out, " ")
}

func (n *Normalizer) language(item string) (string, bool) {
	if lang, ok := n.languages.Synonym(vocab.Key(item)); ok {
		return lang, true
	}
	if lang, ok := CloseMatch(item, n.langNames, n.cutoffs.Language); ok {
		return lang, true
	}
	if lang, ok := CloseMatch(Title(item), n.langNames, n.cutoffs.LanguageTitle); ok {
		return lang, true
	}
	return "", false
}

// Title upper-cases the first letter of every word.
func Title(s string) string {
	// a Caser keeps state between calls and must not be shared
	return cases.Title(language.Und).String(s)
}

func stripFillers(text string, fillers map[string]bool) string {
	words := strings.Fields(vocab.Key(text))
	kept := words[:0]
	for _, w := range words {
		if !fillers[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
