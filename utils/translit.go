package utils

// translitMap is the fixed Cyrillic-to-Latin phonetic table used for slug
// generation. It covers the lowercase Russian alphabet only; input is
// case-folded before lookup. The soft and hard signs carry no sound and
// map to the empty string.
var translitMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ы': "y", 'э': "e",
	'ю': "yu", 'я': "ya",
	'ь': "", 'ъ': "",
}

// Transliterate returns the Latin transcription of a single rune, or the
// rune unchanged when the table has no entry for it.
func Transliterate(r rune) string {
	if latin, ok := translitMap[r]; ok {
		return latin
	}
	return string(r)
}
