package validation

// Question is one onboarding prompt.
type Question struct {
	Key    Field             `json:"key"`
	Prompt map[string]string `json:"prompt"`
}

var questions = []Question{
	{Key: FieldName, Prompt: map[string]string{"en": "What is your name?", "hi": "आपका नाम क्या है?"}},
	{Key: FieldPhone, Prompt: map[string]string{"en": "What is your mobile number?", "hi": "आपका मोबाइल नंबर क्या है?"}},
	{Key: FieldAge, Prompt: map[string]string{"en": "How old are you?", "hi": "आपकी उम्र क्या है?"}},
	{Key: FieldGender, Prompt: map[string]string{"en": "Are you male or female?", "hi": "आप पुरुष हैं या महिला?"}},
	{Key: FieldSkill, Prompt: map[string]string{"en": "What work do you do?", "hi": "आप क्या काम करते हैं?"}},
	{Key: FieldExperience, Prompt: map[string]string{"en": "How much experience do you have?", "hi": "आपके पास कितने साल का अनुभव है?"}},
	{Key: FieldLocation, Prompt: map[string]string{"en": "Which city do you live in?", "hi": "आप किस शहर में रहते हैं?"}},
	{Key: FieldWage, Prompt: map[string]string{"en": "How much wage do you expect per month?", "hi": "आप महीने की कितनी मजदूरी चाहते हैं?"}},
	{Key: FieldLanguages, Prompt: map[string]string{"en": "Which languages do you know?", "hi": "आप कौन सी भाषाएं जानते हैं?"}},
}

// Questions returns the onboarding questions in interview order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
