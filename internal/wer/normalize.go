package wer

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/chaz8081/gostt-eval/internal/textnorm"
)

// Intensity is the strength of the normalization applied before scoring.
type Intensity int

const (
	// Standard runs the language normalizer only.
	Standard Intensity = iota
	// Strong also turns every non-word character into a space.
	Strong
	// VeryStrong also drops a trailing "s" from every word.
	VeryStrong
)

// ParseNormalization splits a selector such as "fr", "fr+" or "fr++" into
// its language code and intensity.
func ParseNormalization(sel string) (lang string, level Intensity) {
	lang = sel
	if strings.HasSuffix(lang, "+") {
		lang, level = lang[:len(lang)-1], Strong
		if strings.HasSuffix(lang, "+") {
			lang, level = lang[:len(lang)-1], VeryStrong
		}
	}
	return lang, level
}

type textNormalizer struct {
	n     *textnorm.Normalizer
	lang  string
	level Intensity
}

func newTextNormalizer(sel string, log *slog.Logger) (*textNormalizer, error) {
	lang, level := ParseNormalization(sel)
	n, err := textnorm.New(lang, textnorm.DefaultConfig(), textnorm.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("normalization %q: %w", sel, err)
	}
	return &textNormalizer{n: n, lang: lang, level: level}, nil
}

func (t *textNormalizer) normalize(text string) (string, error) {
	out, err := t.n.Normalize(text)
	if err != nil {
		return "", err
	}
	if t.lang == "fr" {
		out = textnorm.ReplaceWholeWord(out, "une", "1")
		out = textnorm.ReplaceWholeWord(out, "un", "1")
	}
	if t.level >= Strong {
		out = textnorm.CollapseWhitespace(strings.Map(func(r rune) rune {
			if textnorm.IsWordRune(r) {
				return r
			}
			return ' '
		}, out))
	}
	if t.level >= VeryStrong {
		out = dropPluralS(out)
	}
	return out, nil
}

func (t *textNormalizer) normalizeAll(texts []string, what string) ([]string, error) {
	out := make([]string, len(texts))
	for i, s := range texts {
		v, err := t.normalize(s)
		if err != nil {
			return nil, fmt.Errorf("normalizing %s %d: %w", what, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (t *textNormalizer) normalizeRules(rules []Replacement) ([]Replacement, error) {
	out := make([]Replacement, 0, len(rules))
	for _, r := range rules {
		from, err := t.normalize(r.From)
		if err != nil {
			return nil, fmt.Errorf("normalizing replacement %q: %w", r.From, err)
		}
		to, err := t.normalize(r.To)
		if err != nil {
			return nil, fmt.Errorf("normalizing replacement %q: %w", r.To, err)
		}
		if from != "" {
			out = append(out, Replacement{From: from, To: to})
		}
	}
	return out, nil
}

// dropPluralS removes a final "s" from words of two or more characters.
func dropPluralS(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		if !strings.HasSuffix(w, "s") {
			continue
		}
		stem := w[:len(w)-1]
		if r, _ := utf8.DecodeLastRuneInString(stem); stem != "" && textnorm.IsWordRune(r) {
			words[i] = stem
		}
	}
	return strings.Join(words, " ")
}
