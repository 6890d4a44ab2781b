package vocab

var languageNames = []string{
	"Hindi", "English", "Kannada", "Telugu", "Marathi", "Bengali", "Tamil",
	"Gujarati", "Urdu", "Punjabi", "Malayalam", "Odia", "Assamese", "Konkani",
}

var languageSynonyms = map[string]string{
	"canada": "Kannada", "kanada": "Kannada", "kannad": "Kannada",
	"hinglish": "English", "eng": "English", "hin": "Hindi",
	"हिंदी": "Hindi", "हिन्दी": "Hindi", "अंग्रेजी": "English", "अंग्रेज़ी": "English",
	"इंग्लिश": "English", "कन्नड़": "Kannada", "तेलुगु": "Telugu", "मराठी": "Marathi",
	"बंगाली": "Bengali", "बांग्ला": "Bengali", "तमिल": "Tamil", "गुजराती": "Gujarati",
	"उर्दू": "Urdu", "पंजाबी": "Punjabi", "मलयालम": "Malayalam", "ओड़िया": "Odia",
	"उड़िया": "Odia", "असमिया": "Assamese", "कोंकणी": "Konkani",
}

// Languages returns the spoken languages a worker may list.
func Languages() *Vocabulary {
	return New(DomainLanguage, languageNames, languageSynonyms)
}
