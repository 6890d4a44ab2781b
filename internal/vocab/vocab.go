// Package vocab holds the closed vocabularies answers are normalized
// against: job skills, Indian locations, spoken languages and gender terms.
//
// A Vocabulary is built once and never mutated. Extend returns a copy.
package vocab

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Domain names a vocabulary. It is also the key used for stored synonyms.
type Domain string

const (
	DomainSkill    Domain = "skill"
	DomainLocation Domain = "location"
	DomainLanguage Domain = "language"
	DomainGender   Domain = "gender"
)

// Domains lists every domain that accepts user-managed synonyms.
var Domains = []Domain{DomainSkill, DomainLocation, DomainLanguage, DomainGender}

// ParseDomain validates a domain name.
func ParseDomain(s string) (Domain, bool) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Domains {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Entry pairs a match key with the display form stored for it.
type Entry struct {
	Key     string
	Display string
}

type Vocabulary struct {
	domain   Domain
	entries  []Entry
	index    map[string]string
	synonyms []Entry
	synIndex map[string]string
}

// New builds a vocabulary from display forms and a synonym map whose values
// should be display forms from canonical. Keys are run through Key.
func New(domain Domain, canonical []string, synonyms map[string]string) *Vocabulary {
	v := &Vocabulary{
		domain:   domain,
		index:    make(map[string]string, len(canonical)),
		synIndex: make(map[string]string, len(synonyms)),
	}
	for _, display := range canonical {
		k := Key(display)
		if k == "" {
			continue
		}
		if _, dup := v.index[k]; dup {
			continue
		}
		v.index[k] = display
		v.entries = append(v.entries, Entry{Key: k, Display: display})
	}
	v.addSynonyms(synonyms)
	return v
}

func (v *Vocabulary) addSynonyms(synonyms map[string]string) {
	for raw, display := range synonyms {
		k := Key(raw)
		if k == "" || display == "" {
			continue
		}
		v.synIndex[k] = display
	}

	v.synonyms = v.synonyms[:0]
	for k, display := range v.synIndex {
		v.synonyms = append(v.synonyms, Entry{Key: k, Display: display})
	}
	sortLongestFirst(v.synonyms)
}

// Extend returns a copy of v with extra synonyms layered on top. Extra
// entries override built-in synonyms with the same key.
func (v *Vocabulary) Extend(extra map[string]string) *Vocabulary {
	if len(extra) == 0 {
		return v
	}
	out := &Vocabulary{
		domain:   v.domain,
		entries:  v.entries,
		index:    v.index,
		synIndex: make(map[string]string, len(v.synIndex)+len(extra)),
	}
	for k, d := range v.synIndex {
		out.synIndex[k] = d
	}
	out.addSynonyms(extra)
	return out
}

func (v *Vocabulary) Domain() Domain { return v.domain }

// Entries returns canonical entries in declaration order. Callers must not
// modify the returned slice.
func (v *Vocabulary) Entries() []Entry { return v.entries }

// Synonyms returns synonym entries, longest key first. Callers must not
// modify the returned slice.
func (v *Vocabulary) Synonyms() []Entry { return v.synonyms }

// Lookup finds the display form of an exact canonical key.
func (v *Vocabulary) Lookup(key string) (string, bool) {
	d, ok := v.index[key]
	return d, ok
}

// Synonym finds the canonical display form of an exact synonym key.
func (v *Vocabulary) Synonym(key string) (string, bool) {
	d, ok := v.synIndex[key]
	return d, ok
}

// Keys returns canonical keys in declaration order.
func (v *Vocabulary) Keys() []string {
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// SynonymKeys returns synonym keys, longest first.
func (v *Vocabulary) SynonymKeys() []string {
	keys := make([]string, len(v.synonyms))
	for i, e := range v.synonyms {
		keys[i] = e.Key
	}
	return keys
}

// Key folds text into the form vocabularies are indexed by: NFC, lower
// case, every rune that is not a letter, mark or digit replaced by a space,
// and whitespace collapsed.
func Key(text string) string {
	s := norm.NFC.String(strings.ToLower(text))
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func sortLongestFirst(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(entries[i].Key), utf8.RuneCountInString(entries[j].Key)
		if li != lj {
			return li > lj
		}
		return entries[i].Key < entries[j].Key
	})
}

// Set bundles the vocabularies used by the normalizer.
type Set struct {
	Skills    *Vocabulary
	Locations *Vocabulary
	Languages *Vocabulary
	Gender    *Vocabulary
}

// Default returns the built-in vocabularies.
func Default() *Set {
	return &Set{
		Skills:    Skills(),
		Locations: Locations(),
		Languages: Languages(),
		Gender:    Gender(),
	}
}

// Extend layers stored synonyms (domain -> key -> canonical) over s.
func (s *Set) Extend(extra map[Domain]map[string]string) *Set {
	return &Set{
		Skills:    s.Skills.Extend(extra[DomainSkill]),
		Locations: s.Locations.Extend(extra[DomainLocation]),
		Languages: s.Languages.Extend(extra[DomainLanguage]),
		Gender:    s.Gender.Extend(extra[DomainGender]),
	}
}

// Get returns the vocabulary for a domain, or nil.
func (s *Set) Get(d Domain) *Vocabulary {
	switch d {
	case DomainSkill:
		return s.Skills
	case DomainLocation:
		return s.Locations
	case DomainLanguage:
		return s.Languages
	case DomainGender:
		return s.Gender
	}
	return nil
}
