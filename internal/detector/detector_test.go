package detector

import (
	"testing"
)

func TestContainsDevanagari(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty", text: "", want: false},
		{name: "latin only", text: "My name is Rajesh", want: false},
		{name: "hindi only", text: "मेरा नाम राजेश है", want: true},
		{name: "mixed script", text: "I am from दिल्ली", want: true},
		{name: "devanagari digit", text: "२८", want: true},
		{name: "bengali is not devanagari", text: "আমি", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsDevanagari(tt.text); got != tt.want {
				t.Errorf("ContainsDevanagari(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSourceLanguage(t *testing.T) {
	if got := SourceLanguage("पेंटर"); got != "hi" {
		t.Errorf("SourceLanguage(hindi) = %q, want %q", got, "hi")
	}
	if got := SourceLanguage("painter"); got != "en" {
		t.Errorf("SourceLanguage(english) = %q, want %q", got, "en")
	}
	if got := SourceLanguage(""); got != "en" {
		t.Errorf("SourceLanguage(empty) = %q, want %q", got, "en")
	}
}

func TestDetector_DetectISO(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "empty text",
			text:     "",
			wantCode: "",
			wantOK:   false,
		},
		{
			name:     "english text",
			text:     "I have been working as a painter for five years in Mumbai.",
			wantCode: "en",
			wantOK:   true,
		},
		{
			name:     "hindi text",
			text:     "मैं पिछले पांच साल से मुंबई में पेंटर का काम कर रहा हूं।",
			wantCode: "hi",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := d.DetectISO(tt.text)
			if ok != tt.wantOK {
				t.Errorf("DetectISO(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if tt.wantOK && code != tt.wantCode {
				t.Errorf("DetectISO(%q) = %q, want %q", tt.text, code, tt.wantCode)
			}
		})
	}
}

func TestDetector_Matches(t *testing.T) {
	d := New()

	long := "I have been working as a painter for five years in Mumbai."

	if !d.Matches(long, "") {
		t.Error("expected match for empty target language")
	}
	if d.Matches("   ", "en") {
		t.Error("expected no match for whitespace-only text")
	}
	if !d.Matches("Hi", "hi") {
		t.Error("expected short text to pass")
	}
	if !d.Matches(long, "EN") {
		t.Error("expected case-insensitive match for English")
	}
	if d.Matches(long, "hi") {
		t.Error("expected English text not to match Hindi")
	}
}
