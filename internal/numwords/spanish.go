package numwords

import (
	"fmt"
	"strings"
)

var esBelow30 = []string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete",
	"dieciocho", "diecinueve", "veinte", "veintiuno", "veintidós", "veintitrés",
	"veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var esTens = []string{"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}

var esHundreds = []string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// Long scale: each word is worth a million of the previous one.
var esScales = [][2]string{
	{"", ""},
	{"millón", "millones"},
	{"billón", "billones"},
	{"trillón", "trillones"},
	{"cuatrillón", "cuatrillones"},
	{"quintillón", "quintillones"},
}

var esOrdUnits = []string{
	"", "primero", "segundo", "tercero", "cuarto", "quinto", "sexto", "séptimo", "octavo", "noveno",
}

var esOrdTeens = []string{
	"décimo", "undécimo", "duodécimo", "decimotercero", "decimocuarto", "decimoquinto",
	"decimosexto", "decimoséptimo", "decimoctavo", "decimonoveno",
}

var esOrdTens = []string{
	"", "décimo", "vigésimo", "trigésimo", "cuadragésimo", "quincuagésimo",
	"sexagésimo", "septuagésimo", "octogésimo", "nonagésimo",
}

var esOrdHundreds = []string{
	"", "centésimo", "ducentésimo", "tricentésimo", "cuadringentésimo", "quingentésimo",
	"sexcentésimo", "septingentésimo", "octingentésimo", "noningentésimo",
}

func esBelow100(n int) string {
	if n < 30 {
		return esBelow30[n]
	}
	if n%10 == 0 {
		return esTens[n/10]
	}
	return esTens[n/10] + " y " + esBelow30[n%10]
}

func esBelow1000(n int) string {
	if n == 100 {
		return "cien"
	}
	h, r := n/100, n%100
	var parts []string
	if h > 0 {
		parts = append(parts, esHundreds[h])
	}
	if r > 0 || h == 0 {
		parts = append(parts, esBelow100(r))
	}
	return strings.Join(parts, " ")
}

// esApocope shortens a trailing "uno" before a masculine noun.
func esApocope(s string) string {
	switch {
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case s == "uno" || strings.HasSuffix(s, " uno"):
		return strings.TrimSuffix(s, "o")
	}
	return s
}

// esBelowMillion spells 1..999999.
func esBelowMillion(n int) string {
	th, r := n/1000, n%1000
	var parts []string
	switch {
	case th == 1:
		parts = append(parts, "mil")
	case th > 1:
		parts = append(parts, esApocope(esBelow1000(th))+" mil")
	}
	if r > 0 {
		parts = append(parts, esBelow1000(r))
	}
	return strings.Join(parts, " ")
}

func esCardinal(digits string) (string, error) {
	if digits == "0" {
		return esBelow30[0], nil
	}
	groups, err := triplets(digits, 2*len(esScales))
	if err != nil {
		return "", err
	}
	var words []string
	for k := (len(groups) - 1) / 2; k >= 0; k-- {
		chunk := groups[2*k]
		if 2*k+1 < len(groups) {
			chunk += 1000 * groups[2*k+1]
		}
		if chunk == 0 {
			continue
		}
		switch {
		case k == 0:
			words = append(words, esBelowMillion(chunk))
		case chunk == 1:
			words = append(words, "un "+esScales[k][0])
		default:
			words = append(words, esApocope(esBelowMillion(chunk))+" "+esScales[k][1])
		}
	}
	return strings.Join(words, " "), nil
}

func esOrdinalBelow1000(n int) string {
	h, r := n/100, n%100
	var parts []string
	if h > 0 {
		parts = append(parts, esOrdHundreds[h])
	}
	switch {
	case r >= 10 && r < 20:
		parts = append(parts, esOrdTeens[r-10])
	case r > 0:
		if r/10 > 0 {
			parts = append(parts, esOrdTens[r/10])
		}
		if r%10 > 0 {
			parts = append(parts, esOrdUnits[r%10])
		}
	}
	return strings.Join(parts, " ")
}

func esOrdinal(digits string) (string, error) {
	if len(digits) > 6 {
		return "", fmt.Errorf("%w: spanish ordinal of %d digits", ErrOverflow, len(digits))
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	if n == 0 {
		return esBelow30[0], nil
	}
	th, r := n/1000, n%1000
	var parts []string
	switch {
	case th == 1:
		parts = append(parts, "milésimo")
	case th > 1:
		parts = append(parts, esApocope(esBelow1000(th))+" milésimo")
	}
	if r > 0 {
		parts = append(parts, esOrdinalBelow1000(r))
	}
	return strings.Join(parts, " "), nil
}
