package textnorm

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWordRune matches the Unicode notion of a word character: letters,
// numbers, underscore and combining marks. RE2's \b and \w are ASCII-only.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r)
}

func leftBounded(s string, start int) bool {
	if start <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:start])
	return !IsWordRune(r)
}

func rightBounded(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !IsWordRune(r)
}

func bounded(s string, start, end int) bool {
	return leftBounded(s, start) && rightBounded(s, end)
}

// ReplaceWholeWord replaces occurrences of word not glued to other word
// characters.
func ReplaceWholeWord(text, word, repl string) string {
	if word == "" || !strings.Contains(text, word) {
		return text
	}
	var b strings.Builder
	i := 0
	for {
		j := strings.Index(text[i:], word)
		if j < 0 {
			break
		}
		j += i
		end := j + len(word)
		if bounded(text, j, end) {
			b.WriteString(text[i:j])
			b.WriteString(repl)
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[j:])
		b.WriteString(text[i : j+size])
		i = j + size
	}
	b.WriteString(text[i:])
	return b.String()
}

// ContainsWholeWord reports whether word occurs in text as a whole word.
func ContainsWholeWord(text, word string) bool {
	if word == "" {
		return false
	}
	for i := 0; ; {
		j := strings.Index(text[i:], word)
		if j < 0 {
			return false
		}
		j += i
		if bounded(text, j, j+len(word)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[j:])
		i = j + size
	}
}

// replaceMatches rewrites the matches of re accepted by accept. Rejected
// matches are kept verbatim. repl receives the submatches of the match.
func replaceMatches(re *regexp.Regexp, text string, accept func(s string, start, end int) bool, repl func(groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if accept != nil && !accept(text, start, end) {
			continue
		}
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = text[loc[2*g]:loc[2*g+1]]
			}
		}
		b.WriteString(text[last:start])
		b.WriteString(repl(groups))
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// findBounded returns the distinct matches of re that stand as whole words.
func findBounded(re *regexp.Regexp, text string) []string {
	var out []string
	seen := map[string]bool{}
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if !bounded(text, loc[0], loc[1]) {
			continue
		}
		m := text[loc[0]:loc[1]]
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// byLengthDesc orders tokens longest first, ties broken by reverse
// lexicographic order.
func byLengthDesc(a, b string) int {
	if len(a) != len(b) {
		return len(b) - len(a)
	}
	return strings.Compare(b, a)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace turns every whitespace run into one space and trims
// the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

func sortByLengthDesc(tokens []string) {
	slices.SortFunc(tokens, byLengthDesc)
}
