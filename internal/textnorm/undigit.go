package textnorm

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chaz8081/gostt-eval/internal/numwords"
)

// NumeralMode selects how Undigit speaks a digit string.
type NumeralMode int

const (
	Cardinal NumeralMode = iota
	Ordinal
	// Denominator is the divisor of a fraction: "demi", "tiers", then
	// ordinals.
	Denominator
)

func (m NumeralMode) String() string {
	switch m {
	case Ordinal:
		return "ordinal"
	case Denominator:
		return "denominator"
	}
	return "cardinal"
}

// Undigit spells the digit string s in lang. Spaces inside s are ignored,
// so "10 000" is ten thousand. Leading zeros of a cardinal are spoken one
// by one before the rest of the number. Numbers too large for the
// converter degrade to digit-by-digit spelling with a logged warning.
func Undigit(s, lang string, mode NumeralMode) (string, error) {
	p, err := Lookup(lang)
	if err != nil {
		return "", err
	}
	return p.undigit(s, mode, slog.Default())
}

func (p *Profile) undigit(s string, mode NumeralMode, log *slog.Logger) (string, error) {
	s = strings.ReplaceAll(s, " ", "")
	if mode == Denominator {
		if w, ok := p.denominators[s]; ok {
			return w, nil
		}
		mode = Ordinal
	}
	if p.cardinalOnly {
		mode = Cardinal
	}
	if mode == Ordinal && p.ordinal != nil {
		return p.ordinal(p, s, log)
	}
	if mode == Cardinal && strings.HasPrefix(s, "0") {
		zeros := len(s) - len(strings.TrimLeft(s, "0"))
		if zeros < len(s) {
			zero, err := p.spell("0", Cardinal, log)
			if err != nil {
				return "", err
			}
			rest, err := p.spell(s, Cardinal, log)
			if err != nil {
				return "", err
			}
			return strings.Repeat(zero+" ", zeros) + rest, nil
		}
	}
	return p.spell(s, mode, log)
}

// spell runs the converter and applies the profile's ordinal patch.
func (p *Profile) spell(s string, mode NumeralMode, log *slog.Logger) (string, error) {
	nm := numwords.Cardinal
	if mode == Ordinal {
		nm = numwords.Ordinal
	}
	out, err := numwords.Convert(p.Code, s, nm)
	if errors.Is(err, numwords.ErrOverflow) {
		log.Warn("numeral overflow, spelling digits", "lang", p.Code, "digits", s)
		out, err = p.spellDigits(s)
	}
	if err != nil {
		return "", fmt.Errorf("spelling %q: %w", s, err)
	}
	if mode == Ordinal && p.ordinalPatch != nil {
		out = p.ordinalPatch(out)
	}
	return out, nil
}

// spellDigits is the overflow fallback: one cardinal word per digit.
func (p *Profile) spellDigits(s string) (string, error) {
	digits := strings.TrimPrefix(s, "-")
	words := make([]string, 0, len(digits))
	for _, d := range digits {
		w, err := numwords.Convert(p.Code, string(d), numwords.Cardinal)
		if err != nil {
			return "", err
		}
		words = append(words, w)
	}
	out := strings.Join(words, " ")
	if strings.HasPrefix(s, "-") {
		out = numwords.Minus(p.Code) + " " + out
	}
	return out, nil
}
