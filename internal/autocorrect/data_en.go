package autocorrect

// englishCorrections returns the built-in English word-boundary
// correction map: common letter-transposition typos, double/missing
// letter slips, and programming-vocabulary typos.
func englishCorrections() map[string]string {
	m := make(map[string]string, 96)

	// Letter-order swaps.
	for k, v := range map[string]string{
		"teh": "the", "taht": "that", "wiht": "with", "waht": "what",
		"fomr": "from", "adn": "and", "nad": "and", "hte": "the",
		"thn": "then", "htat": "that", "thsi": "this", "tihs": "this",
		"hwat": "what", "whta": "what", "htis": "this",
	} {
		m[k] = v
	}

	// Double/missing-letter typos on common words.
	for k, v := range map[string]string{
		"occured": "occurred", "occuring": "occurring", "occurance": "occurrence",
		"occurence": "occurrence", "seperate": "separate", "seperately": "separately",
		"seperator": "separator", "definately": "definitely", "definatly": "definitely",
		"definitly": "definitely", "defintely": "definitely", "accomodate": "accommodate",
		"accomodation": "accommodation", "neccessary": "necessary", "necessery": "necessary",
		"neccesary": "necessary", "recieve": "receive", "reciever": "receiver",
		"recieved": "received", "beleive": "believe", "beleif": "belief",
		"acheive": "achieve", "acheived": "achieved", "acheiving": "achieving",
		"occassion": "occasion", "occassional": "occasional", "embarass": "embarrass",
		"embarassing": "embarrassing", "embarassment": "embarrassment",
		"millenium": "millennium", "millenia": "millennia", "begining": "beginning",
		"comming": "coming", "runing": "running", "writting": "writing",
		"refered": "referred", "refering": "referring", "referance": "reference",
		"prefered": "preferred", "prefering": "preferring", "commited": "committed",
		"commiting": "committing", "submited": "submitted", "submiting": "submitting",
		"omited": "omitted", "omiting": "omitting",
	} {
		m[k] = v
	}

	// Everyday-vocabulary typos.
	for k, v := range map[string]string{
		"goverment": "government", "govermental": "governmental",
		"enviroment": "environment", "enviromental": "environmental",
		"restarant": "restaurant", "resturant": "restaurant", "restraunt": "restaurant",
		"libary": "library", "libaray": "library", "calender": "calendar",
		"calandar": "calendar", "grammer": "grammar", "gramer": "grammar",
	} {
		m[k] = v
	}

	// Programming-vocabulary typos.
	for k, v := range map[string]string{
		"fucntion": "function", "funciton": "function", "funtion": "function",
		"functoin": "function", "fnuction": "function", "funcation": "function",
		"retrun": "return", "reutrn": "return", "retrn": "return", "reutn": "return",
		"pubilc": "public", "publc": "public", "pubic": "public",
		"priavte": "private", "privte": "private", "pivate": "private",
		"proected": "protected", "protcted": "protected",
		"vlaue": "value", "vluae": "value", "valeu": "value", "vaule": "value",
		"lenght": "length", "legnth": "length", "lenth": "length",
		"widht": "width", "wdith": "width", "heigth": "height", "hieght": "height",
		"hight": "height", "calss": "class", "clss": "class", "classs": "class",
		"improt": "import", "ipmort": "import", "imort": "import",
		"exprot": "export", "exoprt": "export", "exort": "export",
		"cosnt": "const", "conts": "const", "ocnst": "const",
		"interfce": "interface", "inteface": "interface", "intrface": "interface",
	} {
		m[k] = v
	}

	return m
}
