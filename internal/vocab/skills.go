package vocab

var skillNames = []string{
	// construction
	"Painter", "Plumber", "Electrician", "Carpenter", "Mason", "Welder",
	"Construction Worker", "Contractor", "Tile Setter", "Roofer",
	// domestic
	"Cook", "Chef", "Maid", "Housekeeper", "Cleaner", "Nanny", "Babysitter",
	"Security Guard", "Watchman", "Gardener", "Driver",
	// delivery and transport
	"Delivery Boy", "Courier", "Auto Driver", "Taxi Driver", "Truck Driver",
	"Loader", "Warehouse Worker", "Packer",
	// retail
	"Salesman", "Shopkeeper", "Cashier", "Helper", "Assistant",
	// repair
	"Mechanic", "AC Technician", "Refrigerator Technician", "Mobile Repair",
	"Computer Repair", "Bike Mechanic", "Car Mechanic",
	// textiles
	"Tailor", "Seamstress", "Embroidery Worker", "Textile Worker",
	// hospitality
	"Waiter", "Server", "Bartender", "Dishwasher", "Kitchen Helper",
	// beauty
	"Beautician", "Barber", "Salon Worker", "Spa Worker", "Masseuse",
	// agriculture
	"Farmer", "Farm Worker", "Agricultural Worker",
	// manufacturing
	"Factory Worker", "Machine Operator", "Production Worker", "Assembler",
	// professional
	"Doctor", "Software Engineer",
	// other
	"Labourer", "Worker", "Office Boy", "Peon", "Attendant",
}

var skillSynonyms = map[string]string{
	"पेंटर": "Painter", "रंगकर्मी": "Painter",
	"प्लंबर": "Plumber", "नलसाज": "Plumber",
	"इलेक्ट्रीशियन": "Electrician", "बिजली मिस्त्री": "Electrician", "bijli mistri": "Electrician",
	"बढ़ई": "Carpenter", "लकड़ी का काम": "Carpenter", "badhai": "Carpenter",
	"राजमिस्त्री": "Mason", "rajmistri": "Mason",
	"वेल्डर": "Welder", "वेल्डिंग": "Welder", "welding": "Welder",
	"रसोइया": "Cook", "खाना बनाने वाला": "Cook",
	"ड्राइवर": "Driver", "चालक": "Driver",
	"माली": "Gardener", "गार्डनर": "Gardener",
	"सिक्योरिटी": "Security Guard", "चौकीदार": "Security Guard", "chowkidar": "Security Guard",
	"मैकेनिक": "Mechanic", "मिस्त्री": "Mechanic", "mistri": "Mechanic",
	"दर्जी": "Tailor", "टेलर": "Tailor", "darzi": "Tailor",
	"नाई": "Barber", "हजाम": "Barber",
	"सफाई कर्मी": "Cleaner", "क्लीनर": "Cleaner",
	"नौकर": "Helper", "हेल्पर": "Helper",
	"मजदूर": "Labourer", "लेबर": "Labourer", "mazdoor": "Labourer", "laborer": "Labourer",
	"vaidya": "Doctor", "vaidhya": "Doctor", "vaid": "Doctor", "vedya": "Doctor",
	"physician": "Doctor", "डॉक्टर": "Doctor", "वैद्य": "Doctor",
}

// Skills returns the job/skill vocabulary.
func Skills() *Vocabulary {
	return New(DomainSkill, skillNames, skillSynonyms)
}
