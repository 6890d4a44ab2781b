package validation

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/valpere/sahayak/internal/normalize"
	"github.com/valpere/sahayak/internal/vocab"
)

type fakeTranslator map[string]string

func (f fakeTranslator) TranslateToEnglish(_ context.Context, text, _ string) string {
	if out, ok := f[text]; ok {
		return out
	}
	return text
}

func newTestEngine(t *testing.T, tr normalize.Translator) *Engine {
	t.Helper()
	logger := zaptest.NewLogger(t)
	n := normalize.New(vocab.Default(), tr, normalize.DefaultCutoffs(), logger)
	e, err := New(DefaultRules(), n, logger)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e
}

type validateCase struct {
	name       string
	key        string
	text       string
	wantValid  bool
	wantValue  string
	wantReason Reason
}

func runValidateCases(t *testing.T, e *Engine, tests []validateCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Validate(context.Background(), tt.key, tt.text)

			if got.Valid != tt.wantValid {
				t.Fatalf("Validate(%q, %q).Valid = %v, want %v (%+v)", tt.key, tt.text, got.Valid, tt.wantValid, got)
			}
			if tt.wantValid {
				if got.Value != tt.wantValue {
					t.Errorf("Value = %q, want %q", got.Value, tt.wantValue)
				}
				if got.ErrorMessage != "" || got.Reason != "" {
					t.Errorf("valid result carries error fields: %+v", got)
				}
				return
			}
			if got.Value != "" {
				t.Errorf("invalid result carries value %q", got.Value)
			}
			if got.ErrorMessage == "" {
				t.Error("expected error message")
			}
			if got.ErrorLanguage != "hi" {
				t.Errorf("ErrorLanguage = %q, want hi", got.ErrorLanguage)
			}
			if tt.wantReason != "" && got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestEngine_Name(t *testing.T) {
	runValidateCases(t, newTestEngine(t, nil), []validateCase{
		{name: "with fillers", key: "name", text: "My name is Rajesh Kumar", wantValid: true, wantValue: "Rajesh Kumar"},
		{name: "single word", key: "name", text: "sunita", wantValid: true, wantValue: "Sunita"},
		{name: "punctuation trimmed", key: "name", text: "Rajesh.", wantValid: true, wantValue: "Rajesh"},
		{name: "hindi", key: "name", text: "मेरा नाम राजेश है", wantValid: true, wantValue: "राजेश"},
		{name: "digits", key: "name", text: "123 invalid", wantReason: ReasonHasDigits},
		{name: "only fillers", key: "name", text: "my name is", wantReason: ReasonEmpty},
		{name: "too long", key: "name", text: "Ram Shyam Mohan Sohan Rohan", wantReason: ReasonTooManyWords},
		{name: "symbols", key: "name", text: "a@#$%b", wantReason: ReasonNotAlphabetic},
		{name: "blank", key: "name", text: "   ", wantReason: ReasonEmpty},
	})
}

func TestEngine_Age(t *testing.T) {
	runValidateCases(t, newTestEngine(t, nil), []validateCase{
		{name: "sentence", key: "age", text: "I am 28 years old", wantValid: true, wantValue: "28"},
		{name: "devanagari digits", key: "age", text: "मेरी उम्र २५ साल है", wantValid: true, wantValue: "25"},
		{name: "spaced digits", key: "age", text: "3 5", wantValid: true, wantValue: "35"},
		{name: "lower bound", key: "age", text: "16", wantValid: true, wantValue: "16"},
		{name: "upper bound", key: "age", text: "70", wantValid: true, wantValue: "70"},
		{name: "words only", key: "age", text: "I am five", wantReason: ReasonNoNumber},
		{name: "too old", key: "age", text: "150", wantReason: ReasonOutOfRange},
		{name: "too young", key: "age", text: "15", wantReason: ReasonOutOfRange},
	})
}

func TestEngine_AgeWithNumberWords(t *testing.T) {
	logger := zaptest.NewLogger(t)
	rules := DefaultRules()
	rules.NumberWords.Age = "basic"
	e, err := New(rules, normalize.New(vocab.Default(), nil, normalize.DefaultCutoffs(), logger), logger)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	runValidateCases(t, e, []validateCase{
		{name: "english words", key: "age", text: "twenty five", wantValid: true, wantValue: "25"},
		{name: "hindi words", key: "age", text: "पच्चीस नहीं तीस", wantValid: true, wantValue: "30"},
		{name: "five is too young", key: "age", text: "I am five", wantReason: ReasonOutOfRange},
	})
}

func TestEngine_Skill(t *testing.T) {
	e := newTestEngine(t, fakeTranslator{"मैं बिजली का काम करता हूं": "I do electrician work"})

	runValidateCases(t, e, []validateCase{
		{name: "sentence", key: "skill", text: "I am a painter", wantValid: true, wantValue: "Painter"},
		{name: "typo", key: "skill", text: "electrishian", wantValid: true, wantValue: "Electrician"},
		{name: "synonym", key: "skill", text: "vaidya", wantValid: true, wantValue: "Doctor"},
		{name: "hindi translated", key: "skill", text: "मैं बिजली का काम करता हूं", wantValid: true, wantValue: "Electrician"},
		{name: "hindi synonym", key: "skill", text: "दर्जी", wantValid: true, wantValue: "Tailor"},
		{name: "free text accepted", key: "skill", text: "xyz random job", wantValid: true, wantValue: "Xyz Random Job"},
		{name: "long free text rejected", key: "skill", text: "I really do not know what to say", wantReason: ReasonNoMatch},
		{name: "alias", key: "job_title", text: "driver", wantValid: true, wantValue: "Driver"},
	})
}

func TestEngine_Experience(t *testing.T) {
	runValidateCases(t, newTestEngine(t, nil), []validateCase{
		{name: "years", key: "experience", text: "5 years", wantValid: true, wantValue: "5 years"},
		{name: "hindi years", key: "experience", text: "५ साल", wantValid: true, wantValue: "5 years"},
		{name: "bare number", key: "experience", text: "7", wantValid: true, wantValue: "7 years"},
		{name: "few months", key: "experience", text: "6 months", wantValid: true, wantValue: "6 months"},
		{name: "months to years", key: "experience", text: "18 months", wantValid: true, wantValue: "1 years 6 months"},
		{name: "whole years of months", key: "experience", text: "24 महीने", wantValid: true, wantValue: "2 years"},
		{name: "years and months", key: "experience", text: "2 years 3 months", wantValid: true, wantValue: "2 years 3 months"},
		{name: "fresher", key: "experience", text: "I am a fresher", wantValid: true, wantValue: "Fresher"},
		{name: "no experience", key: "experience", text: "no experience", wantValid: true, wantValue: "Fresher"},
		{name: "hindi fresher", key: "experience", text: "कोई नहीं", wantValid: true, wantValue: "Fresher"},
		{name: "zero years", key: "experience", text: "0 years", wantValid: true, wantValue: "Fresher"},
		{name: "unrealistic years", key: "experience", text: "60 years", wantReason: ReasonOutOfRange},
		{name: "unrealistic bare", key: "experience", text: "51", wantReason: ReasonOutOfRange},
		{name: "unrealistic months", key: "experience", text: "700 months", wantReason: ReasonOutOfRange},
		{name: "no number", key: "experience", text: "a lot", wantReason: ReasonNoNumber},
		{name: "overflowing years", key: "experience", text: "99999999999999999999 years 3 months", wantReason: ReasonOutOfRange},
		{name: "overflowing months", key: "experience", text: "3 years 99999999999999999999 months", wantReason: ReasonOutOfRange},
		{name: "too many years with months", key: "experience", text: "51 years 2 months", wantReason: ReasonOutOfRange},
	})
}

func TestEngine_Location(t *testing.T) {
	e := newTestEngine(t, fakeTranslator{"पुणे": "Pune"})

	runValidateCases(t, e, []validateCase{
		{name: "sentence", key: "location", text: "I am from Mumbai", wantValid: true, wantValue: "Mumbai"},
		{name: "state abbreviation", key: "location", text: "UP", wantValid: true, wantValue: "Uttar Pradesh"},
		{name: "hindi", key: "location", text: "पुणे में", wantValid: true, wantValue: "Pune"},
		{name: "unknown place accepted", key: "location", text: "Gurgaon", wantValid: true, wantValue: "Gurgaon"},
		{name: "alias", key: "city", text: "delhi", wantValid: true, wantValue: "Delhi"},
		{name: "only fillers", key: "location", text: "from", wantReason: ReasonEmpty},
	})
}

func TestEngine_Gender(t *testing.T) {
	runValidateCases(t, newTestEngine(t, nil), []validateCase{
		{name: "woman", key: "gender", text: "I am a woman", wantValid: true, wantValue: "Female"},
		{name: "male", key: "gender", text: "male", wantValid: true, wantValue: "Male"},
		{name: "hindi", key: "gender", text: "महिला", wantValid: true, wantValue: "Female"},
		{name: "alias", key: "sex", text: "boy", wantValid: true, wantValue: "Male"},
		{name: "unknown", key: "gender", text: "unknown", wantReason: ReasonNoMatch},
		{name: "fragment of female", key: "gender", text: "ale", wantReason: ReasonNoMatch},
	})
}

func TestEngine_Phone(t *testing.T) {
	runValidateCases(t, newTestEngine(t, nil), []validateCase{
		{name: "dashes", key: "phone", text: "98-76-54-32-10", wantValid: true, wantValue: "9876543210"},
		{name: "devanagari", key: "phone", text: "९८७६५ ४३२१०", wantValid: true, wantValue: "9876543210"},
		{name: "bad prefix", key: "phone", text: "1234567890", wantReason: ReasonBadPrefix},
		{name: "too short", key: "phone", text: "98765", wantReason: ReasonBadLength},
		{name: "country code", key: "phone", text: "+91 98765 43210", wantReason: ReasonBadLength},
	})
}

func TestEngine_Wage(t *testing.T) {
	runValidateCases(t, newTestEngine(t, nil), []validateCase{
		{name: "digits", key: "wage", text: "15000", wantValid: true, wantValue: "15000"},
		{name: "thousand", key: "wage", text: "15 thousand", wantValid: true, wantValue: "15000"},
		{name: "hindi multiplier", key: "wage", text: "10 हजार", wantValid: true, wantValue: "10000"},
		{name: "words", key: "wage_expected", text: "five hundred", wantValid: true, wantValue: "500"},
		{name: "none", key: "wage", text: "as per company", wantReason: ReasonNoNumber},
		{name: "huge digit run", key: "wage", text: "100000000000000000000", wantReason: ReasonOutOfRange},
		{name: "huge lakh amount", key: "wage", text: "99999999999 lakh", wantReason: ReasonOutOfRange},
		{name: "above ceiling", key: "wage", text: "50000000", wantReason: ReasonOutOfRange},
	})
}

func TestEngine_Languages(t *testing.T) {
	runValidateCases(t, newTestEngine(t, nil), []validateCase{
		{name: "list", key: "languages_known", text: "Hindi, English, kanada", wantValid: true, wantValue: "Hindi English Kannada"},
		{name: "alias", key: "languages", text: "हिंदी", wantValid: true, wantValue: "Hindi"},
		{name: "separators only", key: "languages_known", text: ", / |", wantReason: ReasonEmpty},
	})
}

func TestEngine_UnknownKey(t *testing.T) {
	e := newTestEngine(t, nil)

	got := e.Validate(context.Background(), "favourite_food", "  dal chawal  ")
	if !got.Valid || got.Value != "dal chawal" {
		t.Errorf("unknown key result = %+v, want valid 'dal chawal'", got)
	}
}

func TestEngine_ErrorLanguage(t *testing.T) {
	logger := zaptest.NewLogger(t)
	rules := DefaultRules()
	rules.ErrorLanguage = "en"
	e, err := New(rules, normalize.New(vocab.Default(), nil, normalize.DefaultCutoffs(), logger), logger)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got := e.Validate(context.Background(), "phone", "123")
	if got.ErrorLanguage != "en" || got.ErrorMessage != "Please tell a valid 10 digit mobile number." {
		t.Errorf("unexpected error fields: %+v", got)
	}

	rules.ErrorLanguage = "ta"
	e, _ = New(rules, normalize.New(vocab.Default(), nil, normalize.DefaultCutoffs(), logger), logger)
	got = e.Validate(context.Background(), "phone", "123")
	if got.ErrorLanguage != "hi" {
		t.Errorf("expected Hindi fallback, got %q", got.ErrorLanguage)
	}
}

func TestEngine_SourceLanguageHint(t *testing.T) {
	e := newTestEngine(t, fakeTranslator{"pintor": "painter"})

	got := e.ValidateAnswer(context.Background(), RawAnswer{QuestionKey: "skill", Text: "pintor", SourceLanguage: "es"})
	if !got.Valid || got.Value != "Painter" {
		t.Errorf("ValidateAnswer with source hint = %+v, want Painter", got)
	}
}

func TestNew_UnknownNumberTable(t *testing.T) {
	rules := DefaultRules()
	rules.NumberWords.Wage = "roman"
	if _, err := New(rules, nil, nil); err == nil {
		t.Error("expected error for unknown number word table")
	}
}

func TestMessagesCoverEveryField(t *testing.T) {
	for _, f := range Fields {
		for _, lang := range []string{"hi", "en"} {
			if msg, got := Message(f, lang); msg == "" || got != lang {
				t.Errorf("Message(%s, %s) = %q, %q", f, lang, msg, got)
			}
		}
	}
}

func TestQuestionsCoverEveryField(t *testing.T) {
	qs := Questions()
	if len(qs) != len(Fields) {
		t.Fatalf("len(Questions) = %d, want %d", len(qs), len(Fields))
	}
	for i, q := range qs {
		if q.Key != Fields[i] {
			t.Errorf("question %d key = %s, want %s", i, q.Key, Fields[i])
		}
		if q.Prompt["hi"] == "" || q.Prompt["en"] == "" {
			t.Errorf("question %s missing prompt", q.Key)
		}
	}
}
