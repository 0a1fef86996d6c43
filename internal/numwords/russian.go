package numwords

import "strings"

var ruUnits = []string{"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}

var ruTeens = []string{
	"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
	"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
}

var ruTens = []string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"}

var ruHundreds = []string{"", "сто", "двести", "триста", "четыреста", "пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"}

// Scale words in the forms used after 1, after 2-4 and after 5+.
var ruScales = [][3]string{
	{"", "", ""},
	{"тысяча", "тысячи", "тысяч"},
	{"миллион", "миллиона", "миллионов"},
	{"миллиард", "миллиарда", "миллиардов"},
	{"триллион", "триллиона", "триллионов"},
	{"квадриллион", "квадриллиона", "квадриллионов"},
	{"квинтиллион", "квинтиллиона", "квинтиллионов"},
	{"секстиллион", "секстиллиона", "секстиллионов"},
	{"септиллион", "септиллиона", "септиллионов"},
	{"октиллион", "октиллиона", "октиллионов"},
	{"нониллион", "нониллиона", "нониллионов"},
	{"дециллион", "дециллиона", "дециллионов"},
}

// Nominative masculine ordinals keyed by the last cardinal word.
var ruOrdinalWords = map[string]string{
	"ноль": "нулевой", "один": "первый", "два": "второй", "три": "третий",
	"четыре": "четвёртый", "пять": "пятый", "шесть": "шестой", "семь": "седьмой",
	"восемь": "восьмой", "девять": "девятый",
	"десять": "десятый", "одиннадцать": "одиннадцатый", "двенадцать": "двенадцатый",
	"тринадцать": "тринадцатый", "четырнадцать": "четырнадцатый", "пятнадцать": "пятнадцатый",
	"шестнадцать": "шестнадцатый", "семнадцать": "семнадцатый", "восемнадцать": "восемнадцатый",
	"девятнадцать": "девятнадцатый",
	"двадцать": "двадцатый", "тридцать": "тридцатый", "сорок": "сороковой",
	"пятьдесят": "пятидесятый", "шестьдесят": "шестидесятый", "семьдесят": "семидесятый",
	"восемьдесят": "восьмидесятый", "девяносто": "девяностый",
	"сто": "сотый", "двести": "двухсотый", "триста": "трёхсотый", "четыреста": "четырёхсотый",
	"пятьсот": "пятисотый", "шестьсот": "шестисотый", "семьсот": "семисотый",
	"восемьсот": "восьмисотый", "девятьсот": "девятисотый",
	"тысяча": "тысячный", "тысячи": "тысячный", "тысяч": "тысячный",
	"миллион": "миллионный", "миллиона": "миллионный", "миллионов": "миллионный",
	"миллиард": "миллиардный", "миллиарда": "миллиардный", "миллиардов": "миллиардный",
}

// ruPluralForm picks the index into a ruScales entry for a count.
func ruPluralForm(n int) int {
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return 2
	case n%10 == 1:
		return 0
	case n%10 >= 2 && n%10 <= 4:
		return 1
	}
	return 2
}

func ruBelow1000(n int, feminine bool) string {
	h, r := n/100, n%100
	var parts []string
	if h > 0 {
		parts = append(parts, ruHundreds[h])
	}
	switch {
	case r >= 10 && r < 20:
		parts = append(parts, ruTeens[r-10])
	case r > 0:
		if r/10 > 0 {
			parts = append(parts, ruTens[r/10])
		}
		if u := r % 10; u > 0 {
			w := ruUnits[u]
			if feminine && u == 1 {
				w = "одна"
			} else if feminine && u == 2 {
				w = "две"
			}
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}

func ruCardinal(digits string) (string, error) {
	if digits == "0" {
		return ruUnits[0], nil
	}
	groups, err := triplets(digits, len(ruScales))
	if err != nil {
		return "", err
	}
	var words []string
	for k := len(groups) - 1; k >= 0; k-- {
		g := groups[k]
		if g == 0 {
			continue
		}
		w := ruBelow1000(g, k == 1)
		if k > 0 {
			w += " " + ruScales[k][ruPluralForm(g)]
		}
		words = append(words, w)
	}
	return strings.Join(words, " "), nil
}

func ruOrdinal(digits string) (string, error) {
	c, err := ruCardinal(digits)
	if err != nil {
		return "", err
	}
	head, last := splitLast(c)
	if o, ok := ruOrdinalWords[last]; ok {
		return head + o, nil
	}
	return c, nil
}
