package validation

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/valpere/sahayak/internal/normalize"
	"github.com/valpere/sahayak/internal/numparse"
	"github.com/valpere/sahayak/internal/vocab"
)

var nameFillers = map[string]bool{
	"my": true, "name": true, "is": true, "i": true, "am": true,
	"मेरा": true, "नाम": true, "है": true, "मैं": true, "हूं": true, "हूँ": true,
}

func (e *Engine) validateName(text string) Result {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsMark(r) && !unicode.IsDigit(r)
		})
		if w != "" && !nameFillers[w] {
			words = append(words, w)
		}
	}

	if len(words) == 0 {
		return fail(ReasonEmpty)
	}
	if len(words) > e.rules.MaxNameWords {
		return fail(ReasonTooManyWords)
	}

	cleaned := strings.Join(words, " ")
	if strings.ContainsFunc(cleaned, unicode.IsDigit) {
		return fail(ReasonHasDigits)
	}

	// vowel signs are marks, so Devanagari names count as alphabetic
	total, alpha := 0, 0
	for _, r := range cleaned {
		total++
		if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsSpace(r) {
			alpha++
		}
	}
	if float64(alpha) < float64(total)*e.rules.MinNameLetterRatio {
		return fail(ReasonNotAlphabetic)
	}

	return accept(normalize.Title(cleaned))
}

func (e *Engine) validateAge(text string) Result {
	n, ok := firstNumber(text, e.ageWords)
	if !ok {
		return fail(ReasonNoNumber)
	}
	if n < int64(e.rules.MinAge) || n > int64(e.rules.MaxAge) {
		return fail(ReasonOutOfRange)
	}
	return accept(strconv.FormatInt(n, 10))
}

// firstNumber reads the first digit run after digit normalization, then
// falls back to number words when words is not nil.
func firstNumber(text string, words *numparse.Parser) (int64, bool) {
	if run := numparse.FirstDigitRun(numparse.NormalizeDigits(text)); run != "" {
		n, err := strconv.ParseInt(run, 10, 64)
		return n, err == nil
	}
	if words == nil {
		return 0, false
	}
	return words.Parse(text)
}

func (e *Engine) validateSkill(ctx context.Context, text, src string) Result {
	m, english := e.normalizer.Skill(ctx, text, src)
	if m.OK() {
		return accept(m.Value)
	}
	words := strings.Fields(english)
	if len(words) == 0 {
		return fail(ReasonEmpty)
	}
	if len(words) > e.rules.MaxFreeSkillWords {
		return fail(ReasonNoMatch)
	}
	return accept(normalize.Title(strings.Join(words, " ")))
}

var fresherPhrases = []string{
	"fresher", "no experience", "zero", "new", "naya", "koi nahi",
	"नया", "फ्रेशर", "कोई नहीं", "कोई अनुभव नहीं",
}

var monthWords = []string{"month", "महीने", "महीना", "mahine", "mahina"}

var (
	yearAmount  = regexp.MustCompile(`([0-9]+)\s*(?:years?|yrs?|साल|saal|वर्ष|baras)`)
	monthAmount = regexp.MustCompile(`([0-9]+)\s*(?:months?|महीने|महीना|mahine|mahina)`)
)

func (e *Engine) validateExperience(text string) Result {
	lower := strings.ToLower(text)
	key := " " + vocab.Key(lower) + " "
	for _, p := range fresherPhrases {
		if strings.Contains(key, " "+vocab.Key(p)+" ") {
			return accept("Fresher")
		}
	}

	normalized := numparse.NormalizeDigits(lower)

	// "2 years 6 months"
	if y, m := yearAmount.FindStringSubmatch(normalized), monthAmount.FindStringSubmatch(normalized); y != nil && m != nil {
		years, yerr := strconv.Atoi(y[1])
		months, merr := strconv.Atoi(m[1])
		if yerr != nil || merr != nil || years > e.rules.MaxExperienceYears || months > e.rules.MaxExperienceYears*12 {
			return fail(ReasonOutOfRange)
		}
		return e.experienceMonths(years*12 + months)
	}

	n, ok := firstNumber(normalized, e.expWords)
	if !ok {
		return fail(ReasonNoNumber)
	}
	if n == 0 {
		return accept("Fresher")
	}
	if n > math.MaxInt32 {
		return fail(ReasonOutOfRange)
	}
	value := int(n)

	if containsAny(lower, monthWords) {
		return e.experienceMonths(value)
	}
	// a year unit or no unit at all
	if value > e.rules.MaxExperienceYears {
		return fail(ReasonOutOfRange)
	}
	return accept(strconv.Itoa(value) + " years")
}

func (e *Engine) experienceMonths(total int) Result {
	if total < 0 {
		return fail(ReasonOutOfRange)
	}
	if total == 0 {
		return accept("Fresher")
	}
	if total < 12 {
		return accept(strconv.Itoa(total) + " months")
	}
	years, months := total/12, total%12
	if years > e.rules.MaxExperienceYears || (years == e.rules.MaxExperienceYears && months > 0) {
		return fail(ReasonOutOfRange)
	}
	if months == 0 {
		return accept(strconv.Itoa(years) + " years")
	}
	return accept(strconv.Itoa(years) + " years " + strconv.Itoa(months) + " months")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (e *Engine) validateLocation(ctx context.Context, text, src string) Result {
	loc, ok := e.normalizer.Location(ctx, text, src)
	if !ok {
		return fail(ReasonEmpty)
	}
	return accept(loc)
}

func (e *Engine) validateGender(text string) Result {
	g, ok := e.normalizer.Gender(text)
	if !ok {
		return fail(ReasonNoMatch)
	}
	return accept(g)
}

func (e *Engine) validatePhone(text string) Result {
	digits := numparse.OnlyDigits(numparse.NormalizeDigits(text))
	if len(digits) != 10 {
		return fail(ReasonBadLength)
	}
	if !strings.ContainsRune("6789", rune(digits[0])) {
		return fail(ReasonBadPrefix)
	}
	return accept(digits)
}

func (e *Engine) validateWage(text string) Result {
	amount, ok := e.wageWords.ParseAmount(text)
	if !ok {
		return fail(ReasonNoNumber)
	}
	rounded := math.Round(amount)
	if rounded <= 0 || rounded > float64(e.rules.MaxWage) {
		return fail(ReasonOutOfRange)
	}
	return accept(strconv.FormatInt(int64(rounded), 10))
}

func (e *Engine) validateLanguages(ctx context.Context, text, src string) Result {
	langs := e.normalizer.Languages(ctx, text, src)
	if langs == "" {
		return fail(ReasonEmpty)
	}
	return accept(langs)
}
