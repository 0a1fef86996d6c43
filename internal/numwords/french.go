package numwords

import "strings"

var frUnits = []string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

var frTens = []string{"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante"}

var frScales = []string{
	"", "mille", "million", "milliard", "billion", "billiard", "trillion",
	"trilliard", "quadrillion", "quadrilliard", "quintillion", "quintilliard",
}

func frBelow100(n int) string {
	switch {
	case n <= 16:
		return frUnits[n]
	case n < 20:
		return "dix-" + frUnits[n-10]
	case n < 70:
		t, u := n/10, n%10
		switch u {
		case 0:
			return frTens[t]
		case 1:
			return frTens[t] + " et un"
		}
		return frTens[t] + "-" + frUnits[u]
	case n < 80:
		if n == 71 {
			return "soixante et onze"
		}
		return "soixante-" + frBelow100(n-60)
	case n == 80:
		return "quatre-vingts"
	}
	return "quatre-vingt-" + frBelow100(n-80)
}

// frBelow1000 spells 1..999. Before "mille" the plural s of "cents" and
// "quatre-vingts" is dropped.
func frBelow1000(n int, beforeMille bool) string {
	h, r := n/100, n%100
	var parts []string
	switch {
	case h == 1:
		parts = append(parts, "cent")
	case h > 1:
		w := frUnits[h] + " cent"
		if r == 0 && !beforeMille {
			w += "s"
		}
		parts = append(parts, w)
	}
	if r > 0 {
		w := frBelow100(r)
		if r == 80 && beforeMille {
			w = "quatre-vingt"
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " ")
}

func frCardinal(digits string) (string, error) {
	if digits == "0" {
		return frUnits[0], nil
	}
	groups, err := triplets(digits, len(frScales))
	if err != nil {
		return "", err
	}
	var words []string
	for k := len(groups) - 1; k >= 0; k-- {
		g := groups[k]
		if g == 0 {
			continue
		}
		switch k {
		case 0:
			words = append(words, frBelow1000(g, false))
		case 1:
			if g == 1 {
				words = append(words, "mille")
			} else {
				words = append(words, frBelow1000(g, true)+" mille")
			}
		default:
			w := frBelow1000(g, false) + " " + frScales[k]
			if g > 1 {
				w += "s"
			}
			words = append(words, w)
		}
	}
	return strings.Join(words, " "), nil
}

func frOrdinal(digits string) (string, error) {
	if digits == "1" {
		return "premier", nil
	}
	c, err := frCardinal(digits)
	if err != nil {
		return "", err
	}
	switch {
	case strings.HasSuffix(c, "cinq"):
		return c + "uième", nil
	case strings.HasSuffix(c, "neuf"):
		return strings.TrimSuffix(c, "f") + "vième", nil
	case strings.HasSuffix(c, "e"):
		return strings.TrimSuffix(c, "e") + "ième", nil
	}
	return c + "ième", nil
}
