// Package normalize maps free-text answers onto closed vocabularies.
package normalize

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/valpere/sahayak/internal/vocab"
)

// Tier records which resolution step produced a match.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierSubstring
	TierFuzzy
	TierSynonym
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSubstring:
		return "substring"
	case TierFuzzy:
		return "fuzzy"
	case TierSynonym:
		return "synonym"
	}
	return "none"
}

// shortEntry is the rune length up to which a vocabulary key must match
// whole tokens when searched inside longer input ("up" must not match
// "pickup").
const shortEntry = 3

// Match is the outcome of resolving text against a vocabulary.
type Match struct {
	Value string
	Tier  Tier
}

func (m Match) OK() bool { return m.Tier != TierNone }

// Matcher resolves text against one vocabulary in three tiers: exact or
// substring, fuzzy at each cutoff in turn, then synonyms.
type Matcher struct {
	vocab     *vocab.Vocabulary
	cutoffs   []float64
	byLen     []vocab.Entry
	minFuzzy  int
	noReverse bool
}

func NewMatcher(v *vocab.Vocabulary, cutoffs ...float64) *Matcher {
	byLen := append([]vocab.Entry(nil), v.Entries()...)
	sortEntries(byLen)
	return &Matcher{vocab: v, cutoffs: cutoffs, byLen: byLen}
}

// WithMinFuzzyLength returns a copy of m that skips fuzzy tiers for keys
// shorter than n runes.
func (m *Matcher) WithMinFuzzyLength(n int) *Matcher {
	c := *m
	c.minFuzzy = n
	return &c
}

// WithoutReverseSubstring returns a copy of m that never accepts input
// found inside a longer vocabulary key ("ale" in "female").
func (m *Matcher) WithoutReverseSubstring() *Matcher {
	c := *m
	c.noReverse = true
	return &c
}

func (m *Matcher) fuzzy(key string, candidates []string) (string, bool) {
	if utf8.RuneCountInString(key) < m.minFuzzy {
		return "", false
	}
	for _, cutoff := range m.cutoffs {
		if k, ok := CloseMatch(key, candidates, cutoff); ok {
			return k, true
		}
	}
	return "", false
}

// Resolve returns the first hit of exact, substring, fuzzy and synonym tiers.
func (m *Matcher) Resolve(text string) Match {
	key := vocab.Key(text)
	if key == "" {
		return Match{}
	}

	if d, ok := m.vocab.Lookup(key); ok {
		return Match{Value: d, Tier: TierExact}
	}
	for _, e := range m.byLen {
		if containsPhrase(key, e.Key) {
			return Match{Value: e.Display, Tier: TierSubstring}
		}
	}
	if !m.noReverse && utf8.RuneCountInString(key) >= shortEntry {
		for _, e := range m.byLen {
			if strings.Contains(e.Key, key) {
				return Match{Value: e.Display, Tier: TierSubstring}
			}
		}
	}

	if k, ok := m.fuzzy(key, m.vocab.Keys()); ok {
		d, _ := m.vocab.Lookup(k)
		return Match{Value: d, Tier: TierFuzzy}
	}

	return m.resolveSynonym(key)
}

func (m *Matcher) resolveSynonym(key string) Match {
	if d, ok := m.vocab.Synonym(key); ok {
		return Match{Value: d, Tier: TierSynonym}
	}
	for _, e := range m.vocab.Synonyms() {
		if containsPhrase(key, e.Key) {
			return Match{Value: e.Display, Tier: TierSynonym}
		}
	}

	if k, ok := m.fuzzy(key, m.vocab.SynonymKeys()); ok {
		d, _ := m.vocab.Synonym(k)
		return Match{Value: d, Tier: TierSynonym}
	}
	return Match{}
}

// containsPhrase reports whether phrase occurs in text starting at a token
// boundary. Short phrases must also end at one.
func containsPhrase(text, phrase string) bool {
	if utf8.RuneCountInString(phrase) <= shortEntry {
		return strings.Contains(" "+text+" ", " "+phrase+" ")
	}
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		i += from
		if i == 0 || text[i-1] == ' ' {
			return true
		}
		from = i + 1
	}
	return false
}

func sortEntries(entries []vocab.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return utf8.RuneCountInString(entries[i].Key) > utf8.RuneCountInString(entries[j].Key)
	})
}
