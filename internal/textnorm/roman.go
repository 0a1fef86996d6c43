package textnorm

import (
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	romanLettersRe = regexp.MustCompile(`^[XVI]+`)
	romanValidRe   = regexp.MustCompile(`^X{0,4}(?:IX|IV|V?I{0,3})$`)
)

// romanToDecimal reads a numeral made of I, V and X.
func romanToDecimal(s string) int {
	value := func(c byte) int {
		switch c {
		case 'I':
			return 1
		case 'V':
			return 5
		case 'X':
			return 10
		}
		return 0
	}
	n := 0
	for i := 0; i < len(s); i++ {
		v := value(s[i])
		if i+1 < len(s) && v < value(s[i+1]) {
			n -= v
		} else {
			n += v
		}
	}
	return n
}

// romanNumerals spells roman numerals up to XLIX. A numeral with an
// ordinal suffix ("XIXe", "IIIrd") becomes an ordinal.
func (p *Profile) romanNumerals(text string, log *slog.Logger) (string, error) {
	if p.romanCandidate == nil || !strings.ContainsAny(text, "IVX") {
		return text, nil
	}
	var numerals []string
	for _, m := range findBounded(p.romanCandidate, text) {
		letters := romanLettersRe.FindString(m)
		if letters == "" || !romanValidRe.MatchString(letters) {
			continue
		}
		suffixed := len(letters) < len(m)
		if strings.Contains(letters, "X") || suffixed || (p.romanBare && len(letters) >= 2) {
			numerals = append(numerals, m)
		}
	}
	slices.SortFunc(numerals, byLengthDesc)
	for _, m := range numerals {
		letters := romanLettersRe.FindString(m)
		mode := Cardinal
		if len(letters) < len(m) {
			mode = Ordinal
		}
		word, err := p.undigit(strconv.Itoa(romanToDecimal(letters)), mode, log)
		if err != nil {
			return "", err
		}
		text = ReplaceWholeWord(text, m, word)
	}
	return text, nil
}
