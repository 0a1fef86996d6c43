package numwords

import "strings"

var enBelow20 = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var enTens = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

var enScales = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	"sextillion", "septillion", "octillion", "nonillion", "decillion",
}

var enIrregularOrdinals = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

func enBelow100(n int) string {
	if n < 20 {
		return enBelow20[n]
	}
	if n%10 == 0 {
		return enTens[n/10]
	}
	return enTens[n/10] + "-" + enBelow20[n%10]
}

func enBelow1000(n int) string {
	h, r := n/100, n%100
	if h == 0 {
		return enBelow100(r)
	}
	s := enBelow20[h] + " hundred"
	if r > 0 {
		s += " and " + enBelow100(r)
	}
	return s
}

func enCardinal(digits string) (string, error) {
	if digits == "0" {
		return enBelow20[0], nil
	}
	groups, err := triplets(digits, len(enScales))
	if err != nil {
		return "", err
	}
	var words []string
	for k := len(groups) - 1; k >= 0; k-- {
		g := groups[k]
		if g == 0 {
			continue
		}
		w := enBelow1000(g)
		if k > 0 {
			w += " " + enScales[k]
		} else if g < 100 && len(words) > 0 {
			w = "and " + w
		}
		words = append(words, w)
	}
	return strings.Join(words, " "), nil
}

func enOrdinal(digits string) (string, error) {
	c, err := enCardinal(digits)
	if err != nil {
		return "", err
	}
	head, last := splitLast(c)
	if irr, ok := enIrregularOrdinals[last]; ok {
		return head + irr, nil
	}
	if strings.HasSuffix(last, "y") {
		return head + strings.TrimSuffix(last, "y") + "ieth", nil
	}
	return head + last + "th", nil
}
