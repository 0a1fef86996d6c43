package textnorm

import (
	"log/slog"
	"regexp"
	"strings"
)

type ruRoot struct {
	root, alt string
}

// ruOrdinalRoots maps a cardinal root to its ordinal stem, first match wins.
var ruOrdinalRoots = []ruRoot{
	{"сто", "сот"}, {"сот", "сот"}, {"дцать", "дцат"}, {"один", "перв"},
	{"два", "втор"}, {"три", "трет"}, {"четыре", "четверт"}, {"пять", "пят"},
	{"шесть", "шест"}, {"семь", "седьм"}, {"восемь", "восьм"}, {"девять", "девят"},
	{"десять", "десят"}, {"сорок", "сорок"},
}

// ruOrdinalWords covers last words the root table gets wrong.
var ruOrdinalWords = map[string]string{
	"ноль": "нулевого", "сто": "сотого", "сорок": "сорокового",
	"двести": "двухсотого", "триста": "трёхсотого", "четыреста": "четырёхсотого",
	"пятьсот": "пятисотого", "шестьсот": "шестисотого", "семьсот": "семисотого",
	"восемьсот": "восьмисотого", "девятьсот": "девятисотого",
	"пятьдесят": "пятидесятого", "шестьдесят": "шестидесятого",
	"семьдесят": "семидесятого", "восемьдесят": "восьмидесятого", "девяносто": "девяностого",
	"тысяча": "тысячного", "тысячи": "тысячного", "тысяч": "тысячного",
	"миллион": "миллионного", "миллиона": "миллионного", "миллионов": "миллионного",
	"миллиард": "миллиардного", "миллиарда": "миллиардного", "миллиардов": "миллиардного",
}

// ruStem is the ordinal stem plus the masculine genitive ending.
func ruStem(r ruRoot) string {
	if r.root == "три" {
		return r.alt + "ьего"
	}
	return r.alt + "ого"
}

// ruMascGen turns a spelled cardinal into the masculine genitive ordinal,
// the form dates use: "двадцать пять" becomes "двадцать пятого".
func ruMascGen(cardinal string) string {
	words := strings.Split(cardinal, " ")
	last := words[len(words)-1]
	if w, ok := ruOrdinalWords[last]; ok {
		words[len(words)-1] = w
		return strings.Join(words, " ")
	}
	for _, r := range ruOrdinalRoots {
		if strings.Contains(last, r.root) {
			last = strings.ReplaceAll(last, r.root, ruStem(r))
			break
		}
	}
	words[len(words)-1] = last
	return strings.Join(words, " ")
}

func ruOrdinal(p *Profile, digits string, log *slog.Logger) (string, error) {
	cardinal, err := p.spell(digits, Cardinal, log)
	if err != nil {
		return "", err
	}
	return ruMascGen(cardinal), nil
}

var ruSuffixRoots = []ruRoot{
	{"один", "перв"}, {"два", "втор"}, {"три", "трет"}, {"четыре", "четверт"},
	{"пять", "пят"}, {"шесть", "шест"}, {"семь", "седьм"}, {"восемь", "восьм"},
	{"девять", "девят"}, {"десять", "десят"}, {"десят", "десят"}, {"дцать", "дцат"},
	{"сорок", "сорок"}, {"сто", "сот"},
}

var ruSuffixRes = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(ruSuffixRoots))
	for i, r := range ruSuffixRoots {
		out[i] = regexp.MustCompile(r.root + `(?:\s+|-)(ый|ой|ий|го|ая|ые|ых)`)
	}
	return out
}()

// ruFixOrdinals merges a spelled number with a detached ordinal ending,
// as produced by "10-го" or "16 ая".
func ruFixOrdinals(text string) string {
	for i, r := range ruSuffixRoots {
		if !strings.Contains(text, r.root) {
			continue
		}
		accept := func(s string, start, end int) bool {
			if r.root == "семь" && !leftBounded(s, start) {
				return false
			}
			return rightBounded(s, end)
		}
		text = replaceMatches(ruSuffixRes[i], text, accept, func(g []string) string {
			if g[1] == "го" {
				return ruStem(r)
			}
			return r.alt + g[1]
		})
	}
	return text
}

var (
	ruMonthAlt   = strings.Join(monthNames(ruMonths), "|")
	ruDayMonthRe = regexp.MustCompile(`(\d{1,2})\s+(` + ruMonthAlt + `)`)
	ruMonthYear  = regexp.MustCompile(`(` + ruMonthAlt + `)\s(\d{4})`)
	ruYearRe     = regexp.MustCompile(`(\d{4})\s+г`)
)

func monthNames(months map[int]string) []string {
	names := make([]string, 0, len(months))
	for m := 1; m <= 12; m++ {
		names = append(names, months[m])
	}
	return names
}

// ruConvertDates spells day and year numbers next to month names as
// ordinals: "5 мая 1945 г" becomes "пятого мая тысяча девятьсот сорок
// пятого года".
func ruConvertDates(p *Profile, text string, log *slog.Logger) (string, error) {
	var err error
	ordinal := func(digits string) string {
		w, e := p.undigit(digits, Ordinal, log)
		if e != nil && err == nil {
			err = e
		}
		return w
	}
	text = replaceMatches(ruDayMonthRe, text, bounded, func(g []string) string {
		return ordinal(g[1]) + " " + g[2]
	})
	text = replaceMatches(ruMonthYear, text, bounded, func(g []string) string {
		return g[1] + " " + ordinal(g[2])
	})
	text = replaceMatches(ruYearRe, text, bounded, func(g []string) string {
		return ordinal(g[1]) + " года"
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
