// Package textnorm rewrites raw transcripts into a canonical spoken form
// for error-rate scoring: lowercase, digits spelled out, symbols named and
// foreign characters removed.
//
// Supported languages are fr, en, es, ru and ar. Each language is a
// Profile of tables and hooks; a Normalizer runs the ordered stages of the
// profile's script over one line of text.
package textnorm

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// Config selects the optional behaviours of a Normalizer.
type Config struct {
	LowerCase       bool
	KeepPunctuation bool
	RemoveLigatures bool
	// ExtractParenthesis moves parenthesized spans to lines of their own.
	ExtractParenthesis bool
	// RemoveSuspiciousEntries drops lines that look like broken encodings.
	RemoveSuspiciousEntries bool
	// SafetyChecks fails when a digit survives numeral spelling.
	SafetyChecks bool
	// KeepLatinChars keeps Latin words in Arabic text.
	KeepLatinChars bool
	// Buckwalter transliterates Arabic output to ASCII. Arabic only.
	Buckwalter bool

	// Acronyms receives each upper-case acronym met in the input.
	Acronyms *Seen
	// SpecialChars receives each character removed by the script filter.
	SpecialChars *Seen
}

// DefaultConfig returns the settings used for scoring.
func DefaultConfig() Config {
	return Config{
		LowerCase:       true,
		RemoveLigatures: true,
		SafetyChecks:    true,
		KeepLatinChars:  true,
	}
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger for warnings and failures.
func WithLogger(l *slog.Logger) Option {
	return func(n *Normalizer) {
		n.log = l
	}
}

type stage struct {
	name string
	fn   func(string) (string, error)
}

// Normalizer normalizes text of one language. It is safe for concurrent
// use when its Seen sinks are.
type Normalizer struct {
	p      *Profile
	cfg    Config
	log    *slog.Logger
	stages []stage

	// Precompiled per-language rules.
	currencyRes []*regexp.Regexp
	punctRes    []regexRule
	symbols     []Replacement
}

// New returns a Normalizer for lang.
func New(lang string, cfg Config, opts ...Option) (*Normalizer, error) {
	p, err := Lookup(lang)
	if err != nil {
		return nil, err
	}
	if cfg.Buckwalter && p.Script != Arabic {
		return nil, fmt.Errorf("%w: buckwalter transliteration needs arabic text, got %q", ErrConfiguration, lang)
	}
	n := &Normalizer{p: p, cfg: cfg}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = slog.Default()
	}

	n.symbols = p.SymbolTable()
	if cfg.LowerCase && p.Script != Arabic {
		for i, r := range n.symbols {
			n.symbols[i] = Replacement{From: strings.ToLower(r.From), To: strings.ToLower(r.To)}
		}
	}

	if p.Script == Arabic {
		n.stages = n.arabicStages()
	} else {
		n.compileLatin()
		n.stages = n.latinStages()
	}
	return n, nil
}

// Format normalizes text with a one-off Normalizer.
func Format(text, lang string, cfg Config) (string, error) {
	n, err := New(lang, cfg)
	if err != nil {
		return "", err
	}
	return n.Normalize(text)
}

// Language returns the profile code.
func (n *Normalizer) Language() string { return n.p.Code }

// Stages returns the names of the enabled stages in execution order.
func (n *Normalizer) Stages() []string {
	names := make([]string, len(n.stages))
	for i, s := range n.stages {
		names[i] = s.name
	}
	return names
}

var parenthesisRe = regexp.MustCompile(`\(([^()]*?)\)`)

// Normalize returns the normalized form of text. Lines are normalized
// independently and keep their line breaks. A suspicious line yields ""
// with a nil error.
func (n *Normalizer) Normalize(text string) (string, error) {
	if strings.Contains(text, "\n") {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			out, err := n.Normalize(line)
			if err != nil {
				return "", err
			}
			lines[i] = out
		}
		return strings.Join(lines, "\n"), nil
	}

	if n.cfg.ExtractParenthesis && strings.Contains(text, "(") && strings.Contains(text, ")") {
		inner := parenthesisRe.FindAllStringSubmatch(text, -1)
		without := parenthesisRe.ReplaceAllString(text, "")
		if len(inner) > 0 && without != text {
			parts := []string{without}
			for _, m := range inner {
				parts = append(parts, m[1])
			}
			return n.Normalize(strings.Join(parts, "\n"))
		}
	}

	return n.run(text)
}

// NormalizeAll normalizes each text, stopping at the first failure.
func (n *Normalizer) NormalizeAll(texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i, t := range texts {
		s, err := n.Normalize(t)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (n *Normalizer) run(input string) (string, error) {
	text := input
	for _, s := range n.stages {
		out, err := s.fn(text)
		if errors.Is(err, errDrop) {
			n.log.Debug("dropping suspicious entry", "stage", s.name, "input", input)
			return "", nil
		}
		if err != nil {
			n.log.Error("normalization failed", "lang", n.p.Code, "stage", s.name, "input", input, "err", err)
			return "", &NormalizationError{Stage: s.name, Input: input, Output: text, Err: err}
		}
		text = out
	}
	return text, nil
}

func (n *Normalizer) latinStages() []stage {
	var stages []stage
	add := func(name string, fn func(string) (string, error)) {
		stages = append(stages, stage{name, fn})
	}
	pure := func(name string, fn func(string) string) {
		add(name, func(s string) (string, error) { return fn(s), nil })
	}

	if n.cfg.RemoveSuspiciousEntries {
		add("suspicious", n.rejectSuspicious)
	}
	pure("currencies", n.reorderCurrencies)
	add("roman", func(s string) (string, error) { return n.p.romanNumerals(s, n.log) })
	if n.cfg.Acronyms != nil {
		pure("acronyms", n.collectAcronyms)
	}
	pure("case", n.foldCase)
	pure("characters", n.canonicalize)
	if n.p.url != nil {
		pure("websites", n.spellWebsites)
	}
	pure("titles", func(s string) string { return applyRules(n.p.titles, s) })
	pure("punctuation", n.spacePunctuation)
	if n.p.time != nil {
		pure("time", n.spellTime)
	}
	add("ordinals", n.spellOrdinalDigits)
	add("numerals", func(s string) (string, error) { return n.p.numeralsToWords(s, n.log) })
	if n.cfg.SafetyChecks {
		add("safety", checkDigits)
	}
	pure("symbols", n.replaceSymbols)
	if n.p.Script == Latin {
		pure("dashes", n.splitDashes)
	}
	pure("dictionary", n.applyDictionary)
	pure("cleanup", n.cleanup)
	pure("script", n.filterScript)
	pure("whitespace", CollapseWhitespace)
	return stages
}

func applyRules(rules []regexRule, text string) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

// rejectSuspicious drops text with three identical letters in a row, a
// word starting with a doubled letter, or a known corruption marker.
func (n *Normalizer) rejectSuspicious(text string) (string, error) {
	for i := 0; i+2 < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' && text[i+1] == c && text[i+2] == c {
			return "", errDrop
		}
	}
	folded := strings.ToLower(Transliterate(text))
	for i := 0; i+1 < len(folded); i++ {
		c := folded[i]
		if c >= 'a' && c <= 'z' && folded[i+1] == c && leftBounded(folded, i) {
			return "", errDrop
		}
	}
	if strings.Contains(text, "familyfont") {
		return "", errDrop
	}
	return text, nil
}

var currencySymbols = []string{"€", "$", "£", "¥", "₽"}

func (n *Normalizer) reorderCurrencies(text string) string {
	for i, c := range currencySymbols {
		if !strings.Contains(text, c) {
			continue
		}
		text = replaceMatches(n.currencyRes[i], text, func(s string, start, _ int) bool {
			return leftBounded(s, start)
		}, func(g []string) string {
			return g[1] + " " + c + " " + g[2]
		})
	}
	return text
}

var acronymRe = regexp.MustCompile(`[A-Z][A-Z0-9]+`)

// FindAcronyms returns the distinct all-caps tokens of text. The leading
// run of upper-case words is skipped as a header.
func FindAcronyms(text string) []string {
	start := 0
	for j, r := range text {
		if r == ' ' {
			start = j
		}
		if unicode.ToUpper(r) != r {
			break
		}
	}
	return findBounded(acronymRe, text[start:])
}

func (n *Normalizer) collectAcronyms(text string) string {
	for _, a := range FindAcronyms(text) {
		n.cfg.Acronyms.Add(a)
	}
	return text
}

var (
	ligatures      = strings.NewReplacer("œ", "oe", "æ", "ae", "ﬁ", "fi", "ﬂ", "fl", "ĳ", "ij")
	upperLigatures = strings.NewReplacer("œ", "oe", "æ", "ae", "ﬁ", "fi", "ﬂ", "fl", "ĳ", "ij", "Œ", "OE", "Æ", "AE")
)

func (n *Normalizer) foldCase(text string) string {
	switch {
	case n.cfg.LowerCase:
		text = strings.ToLower(text)
		if n.cfg.RemoveLigatures {
			text = ligatures.Replace(text)
		}
	case n.cfg.RemoveLigatures:
		text = upperLigatures.Replace(text)
	}
	return text
}

var (
	dashRunRe   = regexp.MustCompile(`-+`)
	thousandsRe = regexp.MustCompile(`(\d+)[,.](000)`)
)

// easternDigits maps Arabic-Indic and extended Arabic-Indic digits to ASCII.
func easternDigits(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩':
		return '0' + r - '٠'
	case r >= '۰' && r <= '۹':
		return '0' + r - '۰'
	}
	return r
}

func (n *Normalizer) canonicalize(text string) string {
	text = strings.ReplaceAll(text, "``", `"`)
	text = strings.ReplaceAll(text, "''", `"`)
	text = dashRunRe.ReplaceAllString(text, "-")
	text = composeNFC(text)
	for _, r := range n.p.specialChars {
		text = strings.ReplaceAll(text, r.From, r.To)
	}
	text = strings.Map(easternDigits, text)
	text = " " + text + " "
	for {
		next := thousandsRe.ReplaceAllString(text, "$1$2")
		if next == text {
			break
		}
		text = next
	}
	return text
}

var websiteRe = regexp.MustCompile(`(?:(?:https?|ftp)://)?[\p{L}\p{N}_/\-?=%.]+\.[\p{L}\p{N}_/\-&?=%.]+`)

// spellWebsites spells the separators of addresses and dotted tokens.
func (n *Normalizer) spellWebsites(text string) string {
	seen := map[string]bool{}
	var sites []string
	for _, w := range websiteRe.FindAllString(text, -1) {
		if !strings.Contains(w, "..") && !seen[w] {
			seen[w] = true
			sites = append(sites, w)
		}
	}
	sortByLengthDesc(sites)
	u := n.p.url
	spell := strings.NewReplacer(".", " "+u.dot+" ", ":", " "+u.colon+" ", "/", " "+u.slash+" ", "-", " "+u.dash+" ")
	for _, w := range sites {
		text = strings.ReplaceAll(text, w, spell.Replace(w))
	}
	return text
}

var (
	curlyApostropheRe = regexp.MustCompile(`[’‘]`)
	caretRe           = regexp.MustCompile(`\^+`)
	spacedDashesRe    = regexp.MustCompile(` +(- +)+`)
	ellipsisRe        = regexp.MustCompile(`\.{2,}`)
	finalDotRe        = regexp.MustCompile(`\. *$`)
	digitDotRe        = regexp.MustCompile(`(\d)\. `)
	angleRe           = regexp.MustCompile(`<([^<>]*)>`)
	bracketSpacer     = strings.NewReplacer("{", " { ", "}", " } ", "(", " ( ", ")", " ) ", "[", " [ ", "]", " ] ")
)

func (n *Normalizer) compileLatin() {
	sep := `,`
	if !n.p.decimalComma {
		sep = `\.`
	}
	n.currencyRes = make([]*regexp.Regexp, len(currencySymbols))
	for i, c := range currencySymbols {
		n.currencyRes[i] = regexp.MustCompile(`(\d+)` + sep + `(\d+)\s*` + regexp.QuoteMeta(c))
	}
	letters := n.p.letters
	if letters == "" {
		letters = latinLetters
	}
	n.punctRes = []regexRule{
		{regexp.MustCompile(`([,;:!?.]) -([` + letters + `]+)`), "$1 $2"},
		{regexp.MustCompile(`([` + letters + `]{3,})' `), "$1 "},
		{regexp.MustCompile(`([` + letters + `]{2,})' *[,;:!?.]`), "$1 "},
	}
}

// spacePunctuation detaches punctuation from words and drops apostrophes
// that only close a word.
func (n *Normalizer) spacePunctuation(text string) string {
	text = curlyApostropheRe.ReplaceAllString(text, "'")
	text = strings.ReplaceAll(text, "'", "' ")
	text = strings.ReplaceAll(text, `"`, ` " `)
	text = strings.ReplaceAll(text, "' '", "''")
	text = strings.ReplaceAll(text, ":", " : ")
	text = strings.ReplaceAll(text, ";", " ; ")
	text = strings.ReplaceAll(text, "¸", ",")
	text = strings.ReplaceAll(text, ", ", " , ")
	text = strings.ReplaceAll(text, "!", " ! ")
	text = strings.ReplaceAll(text, "?", " ? ")
	text = caretRe.ReplaceAllString(text, "")
	text = spacedDashesRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "- ", " ")
	text = applyRules(n.punctRes, text)
	text = ellipsisRe.ReplaceAllString(text, " ")
	text = finalDotRe.ReplaceAllString(text, " . ")
	text = digitDotRe.ReplaceAllString(text, "$1 . ")
	text = bracketSpacer.Replace(text)
	text = angleRe.ReplaceAllString(text, "$1")
	return applyRules(n.p.corrections, text)
}

var (
	hourRe    = regexp.MustCompile(`\d+ *h *\d+`)
	secondsRe = regexp.MustCompile(`(\d+)''`)
	minutesRe = regexp.MustCompile(`(\d+)'`)
)

func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" || s[0] == ' ' {
		s = "0" + s
	}
	return s
}

// spellTime reads "14h05" as "14 heures 5" and marks minutes and seconds.
func (n *Normalizer) spellTime(text string) string {
	t := n.p.time
	text = hourRe.ReplaceAllStringFunc(text, func(m string) string {
		h, mins, _ := strings.Cut(m, "h")
		return trimZeros(h) + " " + t.hours + " " + trimZeros(strings.TrimSpace(mins))
	})
	text = secondsRe.ReplaceAllString(text, "$1 "+t.seconds+" ")
	return minutesRe.ReplaceAllString(text, "$1 "+t.minutes+" ")
}

var digitsRe = regexp.MustCompile(`\d+`)

// spellOrdinalDigits spells "1er", "2nd", "21st" and the like.
func (n *Normalizer) spellOrdinalDigits(text string) (string, error) {
	if n.p.ordinalDigits == nil {
		return text, nil
	}
	seen := map[string]bool{}
	var tokens []string
	for _, loc := range n.p.ordinalDigits.FindAllStringIndex(text, -1) {
		tok := text[loc[0]:loc[1]]
		if rightBounded(text, loc[1]) && !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	sortByLengthDesc(tokens)
	for _, tok := range tokens {
		word, err := n.p.undigit(digitsRe.FindString(tok), Ordinal, n.log)
		if err != nil {
			return "", err
		}
		text = ReplaceWholeWord(text, tok, word)
	}
	return text, nil
}

func checkDigits(text string) (string, error) {
	if strings.IndexFunc(text, unicode.IsDigit) >= 0 {
		return "", ErrResidualDigits
	}
	return text, nil
}

func (n *Normalizer) replaceSymbols(text string) string {
	for _, r := range n.symbols {
		text = strings.ReplaceAll(text, r.From, " "+r.To+" ")
	}
	return text
}

var (
	leadingDashRe = regexp.MustCompile(`(^|[^\p{L}\p{N}_])[-_]`)
	compoundRe    = regexp.MustCompile(`[a-z]+(?:-[a-z]+){3,}`)
)

// splitDashes turns loose dashes into commas and splits long hyphenated
// chains, except place names and spelled numbers. Only chains of four or
// more words (three hyphens) are split, so "peut-être" and
// "arc-en-ciel" stay whole.
func (n *Normalizer) splitDashes(text string) string {
	text = leadingDashRe.ReplaceAllString(text, "$1, ")
	words := findBounded(compoundRe, text)
	sortByLengthDesc(words)
	for _, w := range words {
		if strings.Contains(w, "http") || strings.Contains(w, "www") {
			continue
		}
		parts := strings.Split(w, "-")
		if len(parts) == 4 && hyphenFunctionWords[parts[len(parts)-2]] {
			continue
		}
		if n.allNumberWords(parts) {
			continue
		}
		text = ReplaceWholeWord(text, w, strings.ReplaceAll(w, "-", " "))
	}
	return text
}

func (n *Normalizer) allNumberWords(parts []string) bool {
	if len(n.p.numberWords) == 0 {
		return false
	}
	for _, w := range parts {
		if !n.p.numberWords[w] && !(strings.HasSuffix(w, "s") && n.p.numberWords[strings.TrimSuffix(w, "s")]) {
			return false
		}
	}
	return true
}

func (n *Normalizer) applyDictionary(text string) string {
	for _, r := range n.p.abbrevs {
		text = strings.ReplaceAll(text, " "+r.From+" ", " "+r.To+" ")
	}
	for _, r := range n.p.spellings {
		text = ReplaceWholeWord(text, r.From, r.To)
	}
	return text
}

var (
	looseDashRe     = regexp.MustCompile(` - | -$|^- `)
	apostropheRunRe = regexp.MustCompile(`'+`)
	doubleDashRe    = regexp.MustCompile(`--+`)
	emDashRe        = regexp.MustCompile(`—+`)
	starsRe         = regexp.MustCompile(`\*+`)
	openQuoteRe     = regexp.MustCompile(`[«“]\s*`)
	closeQuoteRe    = regexp.MustCompile(`\s*[»”″„]`)
	hashRe          = regexp.MustCompile(`#+`)
	enclosingRe     = regexp.MustCompile(`[{}()\[\]"=]`)
	punctDashRe     = regexp.MustCompile(`([.?!,;:])-`)
	punctuationRe   = regexp.MustCompile(`[,;:!?/.]`)
	cleanupReplacer = strings.NewReplacer(
		"_", " ", "–", " ", "…", "...", "‚", ",",
		"’", "'", "‘", "'", "‛", "'",
		"\u00a0", " ", "\u202f", " ", "\u2009", " ", "\u200b", " ",
	)
	superscriptReplacer = strings.NewReplacer("ᵉʳ", "er", "ᵉ", "e", "·", "")
)

// cleanup removes leftover dashes, quotes, brackets and, unless kept,
// punctuation.
func (n *Normalizer) cleanup(text string) string {
	text = looseDashRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, " '", " ")
	text = apostropheRunRe.ReplaceAllString(text, "'")
	text = doubleDashRe.ReplaceAllString(text, " ")
	text = emDashRe.ReplaceAllString(text, " ")
	text = starsRe.ReplaceAllString(text, " ")
	text = openQuoteRe.ReplaceAllString(text, `"`)
	text = closeQuoteRe.ReplaceAllString(text, `"`)
	text = cleanupReplacer.Replace(text)
	text = hashRe.ReplaceAllString(text, " ")
	text = enclosingRe.ReplaceAllString(text, " ")
	text = punctDashRe.ReplaceAllString(text, "$1 ")
	text = superscriptReplacer.Replace(text)
	if !n.cfg.KeepPunctuation {
		text = punctuationRe.ReplaceAllString(text, " ")
	}
	return text
}

func isScriptPunct(r rune) bool {
	return strings.ContainsRune("-'.?!,;: ", r)
}

func (n *Normalizer) keepRune(r rune) bool {
	if isScriptPunct(r) {
		return true
	}
	if n.p.Script == Cyrillic {
		return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= 0xC0 && r <= 0xFF)
}

// filterScript deletes every character outside the profile's alphabet and
// reports it to the SpecialChars sink.
func (n *Normalizer) filterScript(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if n.keepRune(r) {
			return r
		}
		if n.cfg.SpecialChars != nil {
			n.cfg.SpecialChars.Add(string(r))
		}
		return -1
	}, text)
}
