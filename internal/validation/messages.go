package validation

// messages holds the pre-authored rejection text per field and language.
var messages = map[Field]map[string]string{
	FieldName: {
		"en": "Please tell only your name.",
		"hi": "कृपया केवल अपना नाम बताएं।",
	},
	FieldAge: {
		"en": "Please tell your correct age between 16 and 70.",
		"hi": "कृपया 16 से 70 के बीच अपनी सही उम्र बताएं।",
	},
	FieldSkill: {
		"en": "Please tell a job type like painter, electrician, driver, or cook.",
		"hi": "कृपया पेंटर, इलेक्ट्रीशियन, ड्राइवर या रसोइया जैसे काम का नाम बताएं।",
	},
	FieldExperience: {
		"en": "Please tell your experience in years or months.",
		"hi": "कृपया अपना अनुभव साल या महीने में बताएं।",
	},
	FieldLocation: {
		"en": "Please tell your city or state name.",
		"hi": "कृपया अपना शहर या राज्य का नाम बताएं।",
	},
	FieldGender: {
		"en": "Please say male or female.",
		"hi": "कृपया पुरुष या महिला बताएं।",
	},
	FieldPhone: {
		"en": "Please tell a valid 10 digit mobile number.",
		"hi": "कृपया 10 अंको का सही मोबाइल नंबर बताएं।",
	},
	FieldWage: {
		"en": "Please tell the expected wage in rupees.",
		"hi": "कृपया सही मजदूरी रुपये में बताएं।",
	},
	FieldLanguages: {
		"en": "Please tell which languages you know.",
		"hi": "कृपया बताएं कि आप कौन सी भाषाएं जानते हैं।",
	},
}

// DefaultErrorLanguage is the language rejections are reported in.
const DefaultErrorLanguage = "hi"

// Message returns the rejection text for field and the language it is in.
// Hindi is used when lang has no translation.
func Message(field Field, lang string) (string, string) {
	byLang := messages[field]
	if msg, ok := byLang[lang]; ok {
		return msg, lang
	}
	return byLang[DefaultErrorLanguage], DefaultErrorLanguage
}
