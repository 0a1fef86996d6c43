package textnorm

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
)

// Script selects the pipeline variant and the final character filter.
type Script int

const (
	Latin Script = iota
	Arabic
	Cyrillic
)

func (s Script) String() string {
	switch s {
	case Arabic:
		return "arabic"
	case Cyrillic:
		return "cyrillic"
	}
	return "latin"
}

// Replacement is one ordered substitution rule.
type Replacement struct {
	From string
	To   string
}

type regexRule struct {
	re   *regexp.Regexp
	repl string
}

type urlWords struct {
	dot, colon, slash, dash string
}

type timeWords struct {
	hours, minutes, seconds string
}

// Profile holds the read-only tables and hooks of one language. Profiles
// are built once at package init and shared by every Normalizer.
type Profile struct {
	Code   string
	Script Script

	symbols      []Replacement
	currencies   []Replacement
	specialChars []Replacement
	abbrevs      []Replacement
	spellings    []Replacement
	titles       []regexRule
	corrections  []regexRule

	punctWords   map[string]string
	months       map[int]string
	altMonths    map[int]string
	denominators map[string]string
	numberWords  map[string]bool

	url  *urlWords
	time *timeWords

	// decimalComma marks languages writing "1,20 €" rather than "1.20 $".
	decimalComma bool
	// letters is the lowercase letter class used by the punctuation rules.
	letters string

	romanCandidate *regexp.Regexp
	// romanBare allows suffix-less numerals without an X, like "II".
	romanBare     bool
	ordinalDigits *regexp.Regexp

	// dayOrdinal reports whether a date's day number is spoken as an ordinal.
	dayOrdinal func(day string) bool
	// yearOrdinal speaks the year of a full date as an ordinal.
	yearOrdinal bool
	// pluralDenominator adds "s" to denominators after numerators above two.
	pluralDenominator bool
	// cardinalOnly forces cardinal spelling for every mode.
	cardinalOnly bool
	// ordinalPatch fixes converter output for ordinals.
	ordinalPatch func(string) string
	// ordinal overrides the converter for ordinals.
	ordinal func(p *Profile, digits string, log *slog.Logger) (string, error)
	// convertDates rewrites language-specific date shapes before numerals.
	convertDates func(p *Profile, text string, log *slog.Logger) (string, error)
	// fixOrdinals rewrites spelled numbers glued to ordinal endings.
	fixOrdinals func(text string) string
}

var profiles = map[string]*Profile{}

func register(p *Profile) {
	profiles[p.Code] = p
}

// Lookup returns the profile registered for code.
func Lookup(code string) (*Profile, error) {
	p, ok := profiles[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return p, nil
}

// Languages returns the supported language codes, sorted.
func Languages() []string {
	codes := make([]string, 0, len(profiles))
	for c := range profiles {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// SymbolTable returns a copy of the ordered symbol-to-word table of lang.
// More specific keys come first, so "cm²" is tried before "²".
func SymbolTable(lang string) ([]Replacement, error) {
	p, err := Lookup(lang)
	if err != nil {
		return nil, err
	}
	return p.SymbolTable(), nil
}

// SymbolTable returns a copy of the profile's ordered symbol table.
func (p *Profile) SymbolTable() []Replacement {
	return append([]Replacement(nil), p.symbols...)
}

// Month returns the month name for m, or "" when unknown.
func (p *Profile) Month(m int) string {
	return p.months[m]
}

// PunctuationWord returns the spoken form of a decimal separator.
func (p *Profile) PunctuationWord(sep string) string {
	return p.punctWords[sep]
}

func compileRules(pattern string, pairs []Replacement) []regexRule {
	rules := make([]regexRule, 0, len(pairs))
	for _, r := range pairs {
		rules = append(rules, regexRule{
			re:   regexp.MustCompile(fmt.Sprintf(pattern, r.From)),
			repl: r.To,
		})
	}
	return rules
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// lastDigitOneToThree is the day rule of languages saying "1st", "2nd", "3rd".
func lastDigitOneToThree(day string) bool {
	if day == "" {
		return false
	}
	switch day[len(day)-1] {
	case '1', '2', '3':
		return true
	}
	return false
}
