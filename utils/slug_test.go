package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterateTable(t *testing.T) {
	cases := map[rune]string{
		'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
		'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
		'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
		'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
		'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
		'ш': "sh", 'щ': "shch", 'ы': "y", 'э': "e",
		'ю': "yu", 'я': "ya",
		'ь': "", 'ъ': "",
	}
	for r, want := range cases {
		assert.Equal(t, want, Transliterate(r), "rune %q", r)
	}
}

func TestTransliteratePassThrough(t *testing.T) {
	for _, r := range []rune{'a', 'z', '0', '9', '-', ' ', '!', '№', 'é'} {
		assert.Equal(t, string(r), Transliterate(r), "rune %q", r)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"cyrillic with number sign", "Стикер №1", "stiker-1"},
		{"soft sign dropped", "Дождь", "dozhd"},
		{"hard sign dropped", "Подъезд", "podezd"},
		{"latin passthrough", "Hello World", "hello-world"},
		{"mixed scripts", "Наклейка BMW M5", "nakleyka-bmw-m5"},
		{"punctuation collapsed", "Рамка -- номерная!!", "ramka-nomernaya"},
		{"leading and trailing junk", "  ---Одежда---  ", "odezhda"},
		{"multi-letter transliterations", "Щётка", "shchetka"},
		{"digits kept", "Ароматизатор 2.0", "aromatizator-2-0"},
		{"empty input", "", ""},
		{"signs only", "ьъ", ""},
		{"punctuation only", "№!-- ", ""},
		{"already a slug", "tovar-2", "tovar-2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Стикер №1", "Дождь", "Подъезд", "Hello World", "tovar-2",
		"Наклейка BMW M5", "  ---Одежда---  ", "Щётка", "ьъ", "",
		"Ёлка & гирлянда", "100% хлопок",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestSlugifyAlphabetClosure(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	inputs := []string{
		"Стикер №1", "Hello, World!", "Наклейка BMW M5", "Ёлка & гирлянда",
		"a--b---c", "-prefix", "suffix-", "100% хлопок", "ъ ь", "日本語 товар",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if got == "" {
			continue
		}
		assert.Regexp(t, shape, got, "input %q", in)
	}
}
