package vocab

const (
	Male   = "Male"
	Female = "Female"
)

var genderTerms = map[string]string{
	"male": Male, "man": Male, "men": Male, "boy": Male, "mr": Male,
	"पुरुष": Male, "आदमी": Male, "लड़का": Male, "मर्द": Male,
	"female": Female, "woman": Female, "women": Female, "girl": Female,
	"mrs": Female, "miss": Female, "lady": Female,
	"महिला": Female, "औरत": Female, "लड़की": Female, "स्त्री": Female,
}

// Gender returns the two canonical genders with English and Hindi terms as
// synonyms.
func Gender() *Vocabulary {
	return New(DomainGender, []string{Male, Female}, genderTerms)
}
