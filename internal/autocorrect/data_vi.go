package autocorrect

// vietnameseCorrections returns the built-in Vietnamese word-boundary
// correction map, grouped by the confusion/typo class it fixes. Only
// single-word pairs are included: the engine's word-boundary trigger
// never sees multi-word spans.
func vietnameseCorrections() map[string]string {
	m := make(map[string]string, 96)

	// n/l confusion, common in several regional dialects.
	for k, v := range map[string]string{
		"nà": "là", "nàm": "làm", "nên": "lên", "nời": "lời", "nại": "lại",
		"nấy": "lấy", "nắm": "lắm", "nâu": "lâu", "nớn": "lớn", "núc": "lúc",
		"nưng": "lưng", "nửa": "lửa",
		"lăm": "năm", "lày": "này", "lói": "nói", "lếu": "nếu", "lơi": "nơi",
		"lhà": "nhà", "lhư": "như", "lhững": "những",
	} {
		m[k] = v
	}

	// i/y normalization (Hán-Việt words conventionally spelled with y).
	for k, v := range map[string]string{
		"lí": "lý", "kí": "ký", "quí": "quý", "mĩ": "mỹ", "tỉ": "tỷ", "vĩ": "vỹ",
		"kì": "kỳ",
	} {
		m[k] = v
	}

	// Common tone-mark typos.
	for k, v := range map[string]string{
		"dể": "dễ", "củng": "cũng", "giử": "giữ", "dử": "dữ",
	} {
		m[k] = v
	}

	// Telex typed without the diacritic keys ever landing (missed shift
	// timing, or habitually typed bare ASCII).
	for k, v := range map[string]string{
		"duoc": "được", "nguoi": "người", "khong": "không", "viec": "việc",
		"den": "đến", "mot": "một", "hoi": "hỏi", "tra": "trả", "loi": "lỗi",
		"cung": "cũng", "nhu": "như", "nhung": "nhưng", "dung": "đúng",
		"muon": "muốn", "dau": "đầu", "truoc": "trước", "tren": "trên",
		"duoi": "dưới", "ngoai": "ngoài",
	} {
		m[k] = v
	}

	// Telex key-timing slips: a modifier or mark key typed in the wrong
	// order relative to the letter it was meant to transform.
	for k, v := range map[string]string{
		"ddeesn": "đến", "coó": "có", "thij": "thì", "moojt": "một",
		"hooij": "hỏi", "trarl": "trả", "loif": "lỗi",
		"rùi": "rồi", "ròi": "rồi", "bit": "biết", "bik": "biết",
		"chùua": "chùa", "muua": "mua", "chuua": "chưa", "nhaa": "nhà", "thaa": "tha",
	} {
		m[k] = v
	}

	// Common chat-register abbreviations.
	for k, v := range map[string]string{
		"ko": "không", "hok": "không", "dc": "được", "dk": "được",
		"đc": "được", "đk": "được", "vs": "với", "cx": "cũng",
		"j": "gì", "z": "vậy", "v": "vậy",
	} {
		m[k] = v
	}

	return m
}
