package numparse

import (
	"strconv"
	"testing"
)

func TestParseNumberWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "english compound", in: "twenty five", want: "25"},
		{name: "hindi hundreds", in: "पांच सौ", want: "500"},
		{name: "hindi chandrabindu spelling", in: "पाँच", want: "5"},
		{name: "bare hundred", in: "hundred", want: "100"},
		{name: "two hundred fifty", in: "two hundred fifty", want: "250"},
		{name: "romanized sau", in: "sau", want: "100"},
		{name: "embedded in sentence", in: "I am Thirty-two? no, thirty two years old", want: "32"},
		{name: "no number words", in: "hello", want: ""},
		{name: "zero only", in: "zero", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "thousand not in basic table", in: "five thousand", want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseNumberWords(tt.in); got != tt.want {
				t.Errorf("ParseNumberWords(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtendedParser(t *testing.T) {
	p := Extended()

	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{in: "fifteen thousand", want: 15000, ok: true},
		{in: "पंद्रह हजार", want: 15000, ok: true},
		{in: "do lakh pachas hazaar", want: 250000, ok: true},
		{in: "ek sau bees", want: 120, ok: true},
		{in: "thousand", want: 1000, ok: true},
		{in: "nothing", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := p.Parse(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Parse(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParserFor(t *testing.T) {
	for _, name := range []string{"", "none", "NONE"} {
		p, err := ParserFor(name)
		if err != nil || p != nil {
			t.Errorf("ParserFor(%q) = %v, %v; want nil, nil", name, p, err)
		}
	}
	if p, err := ParserFor("basic"); err != nil || p != Basic() {
		t.Errorf("ParserFor(basic) = %v, %v", p, err)
	}
	if p, err := ParserFor("extended"); err != nil || p != Extended() {
		t.Errorf("ParserFor(extended) = %v, %v", p, err)
	}
	if _, err := ParserFor("roman"); err == nil {
		t.Error("expected error for unknown table")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "plain digits", in: "500 rupees", want: "500", ok: true},
		{name: "devanagari digits", in: "₹ ५००", want: "500", ok: true},
		{name: "digits with hazaar", in: "15 hazaar", want: "15000", ok: true},
		{name: "digits with k", in: "12k per month", want: "12000", ok: true},
		{name: "decimal lakh", in: "1.5 lakh", want: "150000", ok: true},
		{name: "hindi multiplier", in: "20 हजार", want: "20000", ok: true},
		{name: "words only", in: "five hundred", want: "500", ok: true},
		{name: "zero rejected", in: "0", want: "", ok: false},
		{name: "nothing", in: "as per company", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extended().ParseAmount(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if s := strconv.FormatFloat(got, 'f', -1, 64); ok && s != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, s, tt.want)
			}
		})
	}
}
