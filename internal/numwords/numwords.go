// Package numwords spells out decimal digit strings as words in French,
// English, Spanish, Arabic and Russian.
//
// Numbers are handled as digit strings grouped by thousands, so the only
// size limit is the largest scale word each language knows. Past that
// limit Convert returns ErrOverflow and the caller decides how to degrade.
package numwords

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the grammatical form of the spelled number.
type Mode int

const (
	Cardinal Mode = iota
	Ordinal
)

func (m Mode) String() string {
	if m == Ordinal {
		return "ordinal"
	}
	return "cardinal"
}

var (
	ErrUnsupported = errors.New("numwords: unsupported language")
	ErrOverflow    = errors.New("numwords: number too large")
	ErrInvalid     = errors.New("numwords: not a decimal number")
)

// language bundles the spelling rules for one language. Both functions
// receive a non-empty digit string without leading zeros ("0" for zero).
type language struct {
	minus    string
	cardinal func(digits string) (string, error)
	ordinal  func(digits string) (string, error)
}

var languages = map[string]language{
	"fr": {minus: "moins", cardinal: frCardinal, ordinal: frOrdinal},
	"en": {minus: "minus", cardinal: enCardinal, ordinal: enOrdinal},
	"es": {minus: "menos", cardinal: esCardinal, ordinal: esOrdinal},
	"ar": {minus: "سالب", cardinal: arCardinal, ordinal: arOrdinal},
	"ru": {minus: "минус", cardinal: ruCardinal, ordinal: ruOrdinal},
}

// Supported reports whether lang has spelling rules.
func Supported(lang string) bool {
	_, ok := languages[lang]
	return ok
}

// Minus returns the word spoken before negative numbers, or "" for an
// unsupported language.
func Minus(lang string) string {
	return languages[lang].minus
}

// Convert spells number in lang. number is an optional "-" followed by
// ASCII digits; leading zeros are ignored.
func Convert(lang, number string, mode Mode) (string, error) {
	l, ok := languages[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, lang)
	}
	neg := strings.HasPrefix(number, "-")
	if neg {
		number = number[1:]
	}
	if !isDigits(number) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, number)
	}
	digits := strings.TrimLeft(number, "0")
	if digits == "" {
		digits = "0"
	}

	var (
		s   string
		err error
	)
	if mode == Ordinal {
		s, err = l.ordinal(digits)
	} else {
		s, err = l.cardinal(digits)
	}
	if err != nil {
		return "", err
	}
	if neg {
		s = l.minus + " " + s
	}
	return s, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// triplets splits digits into groups of three from the right, lowest group
// first. It fails with ErrOverflow when more than maxGroups are needed.
func triplets(digits string, maxGroups int) ([]int, error) {
	n := (len(digits) + 2) / 3
	if n > maxGroups {
		return nil, fmt.Errorf("%w: %d digits", ErrOverflow, len(digits))
	}
	groups := make([]int, 0, n)
	for end := len(digits); end > 0; end -= 3 {
		start := max(end-3, 0)
		v := 0
		for i := start; i < end; i++ {
			v = v*10 + int(digits[i]-'0')
		}
		groups = append(groups, v)
	}
	return groups, nil
}

// splitLast splits s before its last space or hyphen separated word.
func splitLast(s string) (head, last string) {
	i := strings.LastIndexAny(s, " -")
	return s[:i+1], s[i+1:]
}
