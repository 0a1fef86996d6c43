package textnorm

import (
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	decimalCommaRe = regexp.MustCompile(`(\d+)[,،](\d+)`)
	decimalPointRe = regexp.MustCompile(`(\d+)\.(\d+)`)
	letterTwoRe    = regexp.MustCompile(`([a-z])2([a-z])`)
	digitLetterRe  = regexp.MustCompile(`(\d)([a-zA-Z])`)
	digitDashRe    = regexp.MustCompile(`(\d)-`)
	numeralSpanRe  = regexp.MustCompile(`(?:-?\b[\d/]*\d+(?: \d\d\d)+\b)|(?:-?\d[/\d]*)`)
	slashesRe      = regexp.MustCompile(`/+`)
)

// CardinalNumbersToLetters spells the numerals of text in lang without
// running the rest of the pipeline.
func CardinalNumbersToLetters(text, lang string) (string, error) {
	p, err := Lookup(lang)
	if err != nil {
		return "", err
	}
	return p.numeralsToWords(text, slog.Default())
}

// numeralsToWords spells every remaining digit run of text. Decimal
// numbers, fractions and slash dates get their spoken forms; everything
// else is a cardinal.
func (p *Profile) numeralsToWords(text string, log *slog.Logger) (string, error) {
	text = replaceMatches(decimalCommaRe, text, func(s string, start, _ int) bool {
		return leftBounded(s, start)
	}, func(g []string) string {
		return g[1] + " " + p.PunctuationWord(",") + " " + g[2]
	})
	text = replaceMatches(decimalPointRe, text, bounded, func(g []string) string {
		return g[1] + " " + p.PunctuationWord(".") + " " + g[2]
	})
	text = letterTwoRe.ReplaceAllString(text, "$1 to $2")
	text = digitLetterRe.ReplaceAllString(text, "$1 $2")
	text = digitDashRe.ReplaceAllString(text, "$1 ")

	tokens := numeralTokens(text)

	if p.convertDates != nil {
		var err error
		if text, err = p.convertDates(p, text, log); err != nil {
			return "", err
		}
	}

	for _, tok := range tokens {
		word, err := p.spellToken(slashesRe.ReplaceAllString(tok, "/"), log)
		if err != nil {
			return "", err
		}
		if word == "" {
			continue
		}
		if strings.Contains(tok, " ") {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(tok) + `\b`)
			text = re.ReplaceAllLiteralString(text, " "+word+" ")
		} else {
			text = strings.ReplaceAll(text, tok, " "+word+" ")
		}
	}

	if p.fixOrdinals != nil {
		text = p.fixOrdinals(text)
	}
	return text, nil
}

// numeralTokens lists the numeral spans of text with their space and
// slash separated parts, longest first.
func numeralTokens(text string) []string {
	seen := map[string]bool{}
	var tokens []string
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			tokens = append(tokens, t)
		}
	}
	for _, m := range numeralSpanRe.FindAllString(text, -1) {
		add(strings.Trim(m, "/ "))
	}
	for _, t := range slices.Clone(tokens) {
		if strings.Contains(t, " ") {
			for _, part := range strings.Fields(t) {
				add(part)
			}
		}
	}
	for _, t := range slices.Clone(tokens) {
		if strings.Contains(t, "/") {
			for _, part := range strings.Split(t, "/") {
				add(part)
			}
		}
	}
	slices.SortFunc(tokens, byLengthDesc)
	return tokens
}

// spellToken spells one numeral span. An empty token yields "".
func (p *Profile) spellToken(tok string, log *slog.Logger) (string, error) {
	if tok == "" {
		return "", nil
	}
	parts := strings.Split(tok, "/")
	switch len(parts) {
	case 1:
		return p.undigit(tok, Cardinal, log)
	case 2:
		if day, month, ok := p.dayMonth(parts[0], parts[1]); ok {
			first, err := p.spellDay(day, log)
			if err != nil {
				return "", err
			}
			return first + " " + month, nil
		}
		return p.fraction(parts[0], parts[1], log)
	case 3:
		if w, ok, err := p.fullDate(parts, log); ok || err != nil {
			return w, err
		}
	}
	words := make([]string, len(parts))
	for i, part := range parts {
		w, err := p.undigit(part, Cardinal, log)
		if err != nil {
			return "", err
		}
		words[i] = w
	}
	return strings.Join(words, " / "), nil
}

// dayMonth recognizes "dd/mm" with a two-digit month.
func (p *Profile) dayMonth(sday, smonth string) (string, string, bool) {
	if len(smonth) != 2 {
		return "", "", false
	}
	day, err1 := strconv.Atoi(sday)
	month, err2 := strconv.Atoi(smonth)
	if err1 != nil || err2 != nil || day <= 0 || day >= 32 || month <= 0 || month >= 13 {
		return "", "", false
	}
	name := p.Month(month)
	if name == "" {
		name = smonth
	}
	return strings.TrimLeft(sday, "0"), name, true
}

func (p *Profile) spellDay(day string, log *slog.Logger) (string, error) {
	mode := Cardinal
	if p.dayOrdinal != nil && p.dayOrdinal(day) {
		mode = Ordinal
	}
	return p.undigit(day, mode, log)
}

func (p *Profile) fraction(num, den string, log *slog.Logger) (string, error) {
	first, err := p.undigit(num, Cardinal, log)
	if err != nil {
		return "", err
	}
	second, err := p.undigit(den, Denominator, log)
	if err != nil {
		return "", err
	}
	if n, err := strconv.ParseFloat(num, 64); err == nil && n > 2 && p.pluralDenominator && !strings.HasSuffix(second, "s") {
		second += "s"
	}
	return first + " " + second, nil
}

// fullDate recognizes dd/mm/yyyy and yyyy/mm/dd. Arabic dates with a year
// below 1600 are Hijri and use the Islamic month names.
func (p *Profile) fullDate(parts []string, log *slog.Logger) (string, bool, error) {
	sday, smonth, syear := parts[0], parts[1], parts[2]
	if len(smonth) < 1 || len(smonth) > 2 {
		return "", false, nil
	}
	first, err1 := strconv.Atoi(sday)
	month, err2 := strconv.Atoi(smonth)
	third, err3 := strconv.Atoi(syear)
	if err1 != nil || err2 != nil || err3 != nil || month <= 0 || month >= 13 {
		return "", false, nil
	}
	hijri := false
	switch {
	case len(syear) == 4:
		if first <= 0 || first >= 32 || third <= 1000 {
			return "", false, nil
		}
	case len(sday) == 4:
		if third <= 0 || third >= 32 || first <= 1000 {
			return "", false, nil
		}
		hijri = p.altMonths != nil && first < 1600
		sday, syear = syear, sday
	default:
		return "", false, nil
	}

	day, err := p.spellDay(strings.TrimLeft(sday, "0"), log)
	if err != nil {
		return "", false, err
	}
	months := p.months
	if hijri {
		months = p.altMonths
	}
	name := months[month]
	if name == "" {
		name = smonth
	}
	yearMode := Cardinal
	if p.yearOrdinal {
		yearMode = Ordinal
	}
	year, err := p.undigit(syear, yearMode, log)
	if err != nil {
		return "", false, err
	}
	if hijri {
		return year + " " + name + " " + day, true, nil
	}
	return day + " " + name + " " + year, true, nil
}
