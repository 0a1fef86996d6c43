package textnorm

import (
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transliterate folds text to ASCII. Accents are stripped by
// decomposition first so "é" keeps its base letter; what does not
// decompose ("ł", "ß", "ø") goes through unidecode.
func Transliterate(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		out = text
	}
	for _, r := range out {
		if r > unicode.MaxASCII {
			return unidecode.Unidecode(out)
		}
	}
	return out
}

func composeNFC(text string) string {
	return norm.NFC.String(text)
}
