package wer

import (
	"fmt"
	"strings"

	"github.com/chaz8081/gostt-eval/internal/textnorm"
)

// Replacement is a whole-word rewrite rule.
type Replacement = textnorm.Replacement

// LoadReplacements reads one rule per line: a key and a value separated by
// whitespace, or by a tab when the value itself holds spaces. File order is
// kept.
func LoadReplacements(path string) ([]Replacement, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Replacement
	sc := newLineScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fields = strings.Split(line, "\t")
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s:%d: %q", ErrMalformedLine, path, n, line)
		}
		out = append(out, Replacement{From: strings.TrimSpace(fields[0]), To: strings.TrimSpace(fields[1])})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

// LoadWordList reads one word per line, ignoring blank lines.
func LoadWordList(path string) ([]string, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := newLineScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

func replaceAll(text string, rules []Replacement) string {
	for _, r := range rules {
		text = textnorm.ReplaceWholeWord(text, r.From, r.To)
	}
	return text
}

func replaceEach(texts []string, rules []Replacement) []string {
	if len(rules) == 0 {
		return texts
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = replaceAll(t, rules)
	}
	return out
}
