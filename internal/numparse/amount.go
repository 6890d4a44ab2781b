package numparse

import (
	"regexp"
	"strconv"
	"strings"
)

var decimalRun = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// multiplier words that may follow a digit amount ("15 hazaar", "2 लाख").
var amountMultipliers = map[string]float64{
	"hundred": 100, "sau": 100, "सौ": 100,
	"thousand": 1000, "hazaar": 1000, "hazar": 1000, "k": 1000, "हजार": 1000, "हज़ार": 1000,
	"lakh": 100000, "lakhs": 100000, "lac": 100000, "lacs": 100000, "लाख": 100000,
}

// ParseAmount extracts a money amount from text. A digit amount wins and is
// scaled by the largest multiplier word present ("15 hazaar" -> 15000);
// otherwise number words are parsed with p. Amounts must be positive.
func (p *Parser) ParseAmount(text string) (float64, bool) {
	normalized := NormalizeDigits(strings.ToLower(text))

	if m := decimalRun.FindString(normalized); m != "" {
		base, err := strconv.ParseFloat(m, 64)
		if err != nil || base <= 0 {
			return 0, false
		}
		var factor float64 = 1
		for _, tok := range Tokens(normalized) {
			if f, ok := amountMultipliers[tok]; ok && f > factor {
				factor = f
			}
		}
		return base * factor, true
	}

	if p == nil {
		return 0, false
	}
	n, ok := p.Parse(normalized)
	if !ok {
		return 0, false
	}
	return float64(n), true
}
