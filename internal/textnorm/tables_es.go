package textnorm

import "regexp"

func init() {
	register(&Profile{
		Code:   "es",
		Script: Latin,
		symbols: []Replacement{
			{"%", "por ciento"}, {"٪", "por ciento"}, {"‰", "por mil"}, {"~", "aproximadamente"},
			{"÷", "dividido por"}, {"×", "por"}, {"±", "más o menos"}, {"+", "más"},
			{"⁺", "más"}, {"⁻", "menos"}, {"&", "y"}, {"@", "arroba"}, {"µ", "micro"},
			{"mm²", "milímetros cuadrados"}, {"mm³", "milímetros cúbicos"},
			{"cm²", "centímetros cuadrados"}, {"cm³", "centímetros cúbicos"},
			{"m²", "metros cuadrados"}, {"m³", "metros cúbicos"},
			{"²", "al cuadrado"}, {"³", "al cubo"}, {"⁵", "a la quinta potencia"}, {"⁷", "a la séptima potencia"},
			{"½", "un medio"}, {"⅓", "un tercio"}, {"⅔", "dos tercios"}, {"¼", "un cuarto"}, {"¾", "tres cuartos"},
			{"§", "sección"},
			{"°C", "grados Celsius"}, {"°F", "grados Fahrenheit"}, {"°K", "kelvin"}, {"°", "grados"},
			{"€", "euros"}, {"¢", "centavos"}, {"$", "dólares"}, {"£", "libras"}, {"¥", "yenes"}, {"₹", "rupias"},
		},
		specialChars: concatReplacements(latinLookalikes, fullWidthLatin, greekLetters, esSymbolNames),
		abbrevs: []Replacement{
			{"g", "gramos"}, {"mg", "miligramos"}, {"kg", "kilogramos"},
			{"mm", "milímetros"}, {"cm", "centímetros"}, {"ml", "mililitros"},
		},
		titles: compileRules("%s", []Replacement{
			{` sr\.? `, " señor "},
			{` sra\.? `, " señora "},
		}),
		punctWords: map[string]string{",": "coma", ".": "punto"},
		months: map[int]string{
			1: "enero", 2: "febrero", 3: "marzo", 4: "abril", 5: "mayo", 6: "junio",
			7: "julio", 8: "agosto", 9: "septiembre", 10: "octubre", 11: "noviembre", 12: "diciembre",
		},
		denominators: map[string]string{"2": "mitad", "3": "tercio"},
		numberWords: wordSet(
			"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
			"diez", "once", "doce", "trece", "catorce", "quince", "veinte", "treinta", "cuarenta",
			"cincuenta", "sesenta", "setenta", "ochenta", "noventa", "cien", "ciento", "mil",
			"millón", "millones",
		),
		url:            &urlWords{dot: "punto", colon: "dos puntos", slash: "barra", dash: "guion"},
		time:           &timeWords{hours: "horas", minutes: "minutos", seconds: "segundos"},
		decimalComma:   true,
		letters:        latinLetters,
		romanCandidate: regexp.MustCompile(`[XVI]+`),
		ordinalDigits:  regexp.MustCompile(`\b\d+(?:º|ª)`),
		dayOrdinal:     lastDigitOneToThree,

		pluralDenominator: true,
	})
}
