package numwords

import "strings"

var arUnits = []string{
	"صفر", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة", "عشرة",
}

var arTens = []string{"", "عشرة", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون"}

var arHundreds = []string{
	"", "مائة", "مئتان", "ثلاثمائة", "أربعمائة", "خمسمائة", "ستمائة", "سبعمائة", "ثمانمائة", "تسعمائة",
}

// Scale words as singular, dual and plural (3 to 10).
var arScales = [][3]string{
	{"", "", ""},
	{"ألف", "ألفان", "آلاف"},
	{"مليون", "مليونان", "ملايين"},
	{"مليار", "ملياران", "مليارات"},
	{"تريليون", "تريليونان", "تريليونات"},
	{"كوادريليون", "كوادريليونان", "كوادريليونات"},
	{"كوينتليون", "كوينتليونان", "كوينتليونات"},
}

var arOrdinals = []string{
	"", "الأول", "الثاني", "الثالث", "الرابع", "الخامس", "السادس", "السابع", "الثامن", "التاسع", "العاشر",
}

func arBelow100(n int) string {
	switch {
	case n <= 10:
		return arUnits[n]
	case n == 11:
		return "أحد عشر"
	case n == 12:
		return "اثنا عشر"
	case n < 20:
		return arUnits[n-10] + " عشر"
	case n%10 == 0:
		return arTens[n/10]
	}
	return arUnits[n%10] + " و" + arTens[n/10]
}

func arBelow1000(n int) string {
	h, r := n/100, n%100
	var parts []string
	if h > 0 {
		parts = append(parts, arHundreds[h])
	}
	if r > 0 || h == 0 {
		parts = append(parts, arBelow100(r))
	}
	return strings.Join(parts, " و")
}

func arCardinal(digits string) (string, error) {
	if digits == "0" {
		return arUnits[0], nil
	}
	groups, err := triplets(digits, len(arScales))
	if err != nil {
		return "", err
	}
	var words []string
	for k := len(groups) - 1; k >= 0; k-- {
		g := groups[k]
		if g == 0 {
			continue
		}
		if k == 0 {
			words = append(words, arBelow1000(g))
			continue
		}
		switch {
		case g == 1:
			words = append(words, arScales[k][0])
		case g == 2:
			words = append(words, arScales[k][1])
		case g <= 10:
			words = append(words, arBelow1000(g)+" "+arScales[k][2])
		default:
			words = append(words, arBelow1000(g)+" "+arScales[k][0])
		}
	}
	return strings.Join(words, " و"), nil
}

func arOrdinal(digits string) (string, error) {
	if len(digits) <= 2 {
		n := 0
		for i := 0; i < len(digits); i++ {
			n = n*10 + int(digits[i]-'0')
		}
		if n >= 1 && n <= 10 {
			return arOrdinals[n], nil
		}
	}
	return arCardinal(digits)
}
