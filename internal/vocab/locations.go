package vocab

var locationNames = []string{
	// cities
	"Mumbai", "Delhi", "Bangalore", "Bengaluru", "Hyderabad", "Ahmedabad",
	"Chennai", "Kolkata", "Surat", "Pune", "Jaipur", "Lucknow", "Kanpur",
	"Nagpur", "Indore", "Thane", "Bhopal", "Visakhapatnam", "Pimpri",
	"Patna", "Vadodara", "Ghaziabad", "Ludhiana", "Agra", "Nashik",
	"Faridabad", "Meerut", "Rajkot", "Kalyan", "Vasai", "Varanasi",
	"Srinagar", "Aurangabad", "Dhanbad", "Amritsar", "Navi Mumbai",
	"Allahabad", "Prayagraj", "Ranchi", "Howrah", "Coimbatore", "Jabalpur",
	// states
	"Maharashtra", "Karnataka", "Tamil Nadu", "Kerala", "Gujarat",
	"Rajasthan", "Punjab", "Haryana", "Uttar Pradesh", "Bihar",
	"West Bengal", "Odisha", "Telangana", "Andhra Pradesh", "Madhya Pradesh",
	"Jharkhand", "Assam", "Chhattisgarh", "Uttarakhand", "Goa",
	"Himachal Pradesh", "Jammu and Kashmir",
}

var locationSynonyms = map[string]string{
	"up": "Uttar Pradesh", "mp": "Madhya Pradesh", "hp": "Himachal Pradesh",
	"jk": "Jammu and Kashmir", "j&k": "Jammu and Kashmir",
	"bombay": "Mumbai", "calcutta": "Kolkata", "madras": "Chennai",
	"new delhi": "Delhi", "dilli": "Delhi", "banaras": "Varanasi", "benaras": "Varanasi",
	"मुंबई": "Mumbai", "दिल्ली": "Delhi", "बेंगलुरु": "Bengaluru", "बैंगलोर": "Bangalore",
	"हैदराबाद": "Hyderabad", "अहमदाबाद": "Ahmedabad", "चेन्नई": "Chennai",
	"कोलकाता": "Kolkata", "पुणे": "Pune", "जयपुर": "Jaipur", "लखनऊ": "Lucknow",
	"कानपुर": "Kanpur", "नागपुर": "Nagpur", "इंदौर": "Indore", "भोपाल": "Bhopal",
	"पटना": "Patna", "आगरा": "Agra", "वाराणसी": "Varanasi", "प्रयागराज": "Prayagraj",
	"रांची": "Ranchi", "गाजियाबाद": "Ghaziabad", "मेरठ": "Meerut",
	"महाराष्ट्र": "Maharashtra", "कर्नाटक": "Karnataka", "गुजरात": "Gujarat",
	"राजस्थान": "Rajasthan", "पंजाब": "Punjab", "हरियाणा": "Haryana",
	"उत्तर प्रदेश": "Uttar Pradesh", "बिहार": "Bihar", "मध्य प्रदेश": "Madhya Pradesh",
	"पश्चिम बंगाल": "West Bengal", "झारखंड": "Jharkhand", "उत्तराखंड": "Uttarakhand",
}

// Locations returns Indian cities and states.
func Locations() *Vocabulary {
	return New(DomainLocation, locationNames, locationSynonyms)
}
