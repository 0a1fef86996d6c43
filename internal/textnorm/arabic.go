package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	arabicPunctuation = "؟!،.؛\"'-_:"
	latinPunctuation  = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" + "。，！？：”、…" + "؟،؛" + "—"
	// maxArabicWordLen drops glued runs longer than any real word.
	maxArabicWordLen = 15
)

func isArabicLetter(r rune) bool {
	return (r >= 0x0621 && r <= 0x063A) || (r >= 0x0640 && r <= 0x064A)
}

func isLatinLetter(r rune) bool {
	switch {
	case r == '\'':
		return true
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return true
	case r >= 'À' && r <= 'Ö', r >= 'Ø' && r <= 'ö', r >= 'ø' && r <= 'ÿ', r >= 'Ā' && r <= 'ž':
		return true
	}
	return false
}

func (n *Normalizer) arabicStages() []stage {
	var stages []stage
	add := func(name string, fn func(string) (string, error)) {
		stages = append(stages, stage{name, fn})
	}
	pure := func(name string, fn func(string) string) {
		add(name, func(s string) (string, error) { return fn(s), nil })
	}

	pure("urls", removeURLs)
	pure("symbols", n.replaceSymbols)
	pure("currencies", n.replaceCurrencies)
	add("numerals", func(s string) (string, error) {
		return n.p.numeralsToWords(strings.Map(easternDigits, s), n.log)
	})
	if n.cfg.SafetyChecks {
		add("safety", checkDigits)
	}
	pure("diacritics", removeDiacritics)
	pure("letters", foldArabicLetters)
	pure("punctuation", arabicPunctuationMarks.Replace)
	pure("repeats", squeezeRepeats)
	pure("long-words", dropLongWords)
	if n.cfg.KeepLatinChars {
		pure("unglue", unglueScripts)
	}
	pure("script", n.keepArabic)
	if n.cfg.KeepLatinChars && !n.cfg.KeepPunctuation {
		pure("strip-punctuation", stripPunctuation)
	}
	if n.cfg.Buckwalter {
		pure("buckwalter", Buckwalter)
	}
	pure("whitespace", CollapseWhitespace)
	return stages
}

var urlRe = regexp.MustCompile(`https?://\S+`)

func removeURLs(text string) string {
	return urlRe.ReplaceAllString(text, " ")
}

func (n *Normalizer) replaceCurrencies(text string) string {
	for _, r := range n.p.currencies {
		text = strings.ReplaceAll(text, r.From, " "+r.To+" ")
	}
	return text
}

// Harakat, tanwin, shadda, sukun and tatweel.
var arabicDiacritics = runes.Predicate(func(r rune) bool {
	return (r >= 0x064B && r <= 0x0652) || r == 0x0640
})

func removeDiacritics(text string) string {
	out, _, err := transform.String(runes.Remove(arabicDiacritics), text)
	if err != nil {
		return text
	}
	return out
}

var letterVariants = map[rune]rune{
	'ک': 'ك', 'ی': 'ي', 'ې': 'ي', 'ۀ': 'ه',
}

func isPresentationForm(r rune) bool {
	return (r >= 0xFB50 && r <= 0xFDFF) || (r >= 0xFE70 && r <= 0xFEFF)
}

// foldArabicLetters maps Persian and Urdu letter variants and presentation
// forms to the base Arabic letters.
func foldArabicLetters(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if v, ok := letterVariants[r]; ok {
			b.WriteRune(v)
			continue
		}
		if isPresentationForm(r) {
			b.WriteString(norm.NFKC.String(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var arabicPunctuationMarks = strings.NewReplacer(";", "؛", ",", "،")

// squeezeRepeats shortens runs of one Arabic letter to two.
func squeezeRepeats(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run > 2 && isArabicLetter(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func dropLongWords(text string) string {
	words := strings.Split(text, " ")
	kept := words[:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) < maxArabicWordLen {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// unglueScripts puts a space between an Arabic letter and an adjacent
// non-Arabic word character.
func unglueScripts(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	var prev rune
	for i, r := range text {
		if i > 0 {
			a, c := isArabicLetter(prev), isArabicLetter(r)
			if (a && !c && IsWordRune(r)) || (c && !a && IsWordRune(prev)) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// keepArabic replaces every run of characters outside the kept set with a
// space. The kept set is Arabic letters, plus Latin letters and
// punctuation when configured.
func (n *Normalizer) keepArabic(text string) string {
	keep := func(r rune) bool {
		switch {
		case isArabicLetter(r):
			return true
		case n.cfg.KeepLatinChars && isLatinLetter(r):
			return true
		case n.cfg.KeepPunctuation && n.cfg.KeepLatinChars:
			return strings.ContainsRune(latinPunctuation+arabicPunctuation, r)
		case n.cfg.KeepPunctuation:
			return strings.ContainsRune(arabicPunctuation, r)
		}
		return false
	}
	var b strings.Builder
	b.Grow(len(text))
	gap := false
	for _, r := range text {
		if keep(r) {
			b.WriteRune(r)
			gap = false
			continue
		}
		if !unicode.IsSpace(r) && n.cfg.SpecialChars != nil {
			n.cfg.SpecialChars.Add(string(r))
		}
		if !gap {
			b.WriteByte(' ')
			gap = true
		}
	}
	return b.String()
}

func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(latinPunctuation, r) {
			return -1
		}
		return r
	}, text)
}

var buckwalterTable = map[rune]rune{
	'ء': '\'', 'آ': '|', 'أ': '>', 'ؤ': '&', 'إ': '<', 'ئ': '}', 'ا': 'A', 'ب': 'b',
	'ة': 'p', 'ت': 't', 'ث': 'v', 'ج': 'j', 'ح': 'H', 'خ': 'x', 'د': 'd', 'ذ': '*',
	'ر': 'r', 'ز': 'z', 'س': 's', 'ش': '$', 'ص': 'S', 'ض': 'D', 'ط': 'T', 'ظ': 'Z',
	'ع': 'E', 'غ': 'g', 'ـ': '_', 'ف': 'f', 'ق': 'q', 'ك': 'k', 'ل': 'l', 'م': 'm',
	'ن': 'n', 'ه': 'h', 'و': 'w', 'ى': 'Y', 'ي': 'y', 'ً': 'F', 'ٌ': 'N', 'ٍ': 'K',
	'َ': 'a', 'ُ': 'u', 'ِ': 'i', 'ّ': '~', 'ْ': 'o', 'ٰ': '`', 'ٱ': '{',
}

// Buckwalter transliterates Arabic letters and marks to the Buckwalter
// ASCII scheme. Other characters are kept.
func Buckwalter(text string) string {
	return strings.Map(func(r rune) rune {
		if b, ok := buckwalterTable[r]; ok {
			return b
		}
		return r
	}, text)
}
