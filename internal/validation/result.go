package validation

// Field is a canonical question key.
type Field string

const (
	FieldName       Field = "name"
	FieldAge        Field = "age"
	FieldSkill      Field = "skill"
	FieldExperience Field = "experience"
	FieldLocation   Field = "location"
	FieldGender     Field = "gender"
	FieldPhone      Field = "phone"
	FieldWage       Field = "wage"
	FieldLanguages  Field = "languages_known"
)

// Fields lists every validated field in interview order.
var Fields = []Field{
	FieldName, FieldPhone, FieldAge, FieldGender, FieldSkill,
	FieldExperience, FieldLocation, FieldWage, FieldLanguages,
}

var aliases = map[string]Field{
	"sex":           FieldGender,
	"wage_expected": FieldWage,
	"city":          FieldLocation,
	"job_title":     FieldSkill,
	"languages":     FieldLanguages,
}

// ResolveField maps a question key or one of its aliases to a Field.
func ResolveField(key string) (Field, bool) {
	if f, ok := aliases[key]; ok {
		return f, true
	}
	for _, f := range Fields {
		if Field(key) == f {
			return f, true
		}
	}
	return "", false
}

// Reason is a machine-readable rejection cause.
type Reason string

const (
	ReasonEmpty         Reason = "empty"
	ReasonNoNumber      Reason = "no_number"
	ReasonOutOfRange    Reason = "out_of_range"
	ReasonNoMatch       Reason = "no_match"
	ReasonTooManyWords  Reason = "too_many_words"
	ReasonHasDigits     Reason = "contains_digits"
	ReasonNotAlphabetic Reason = "not_alphabetic"
	ReasonBadLength     Reason = "bad_length"
	ReasonBadPrefix     Reason = "bad_prefix"
)

// RawAnswer is one answer as produced by speech recognition or typed input.
type RawAnswer struct {
	QuestionKey    string `json:"question_key"`
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language,omitempty"`
}

// Result is the outcome of validating one answer. Value is set only when
// Valid; ErrorMessage and Reason only when not.
type Result struct {
	Valid         bool   `json:"is_valid"`
	Value         string `json:"cleaned_value,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
	ErrorLanguage string `json:"error_language,omitempty"`
	Reason        Reason `json:"reason,omitempty"`
}

func accept(value string) Result {
	return Result{Valid: true, Value: value}
}
