package textnorm

import "regexp"

func init() {
	register(&Profile{
		Code:   "en",
		Script: Latin,
		symbols: []Replacement{
			{"%", "percent"}, {"٪", "percent"}, {"‰", "per mille"}, {"~", "about"},
			{"÷", "divided by"}, {"×", "times"}, {"±", "plus or minus"}, {"+", "plus"},
			{"⁺", "plus"}, {"⁻", "minus"}, {"&", "and"}, {"@", "at"}, {"µ", "micro"},
			{"mm²", "square millimeters"}, {"mm³", "cubic millimeters"},
			{"cm²", "square centimeters"}, {"cm³", "cubic centimeters"},
			{"m²", "square meters"}, {"m³", "cubic meters"},
			{"²", "squared"}, {"³", "cubed"}, {"⁵", "to the fifth power"}, {"⁷", "to the seventh power"},
			{"½", "one half"}, {"⅓", "one third"}, {"⅔", "two thirds"}, {"¼", "one quarter"}, {"¾", "three quarters"},
			{"§", "section"},
			{"°C", "degrees Celsius"}, {"°F", "degrees Fahrenheit"}, {"°K", "kelvins"}, {"°", "degrees"},
			{"€", "euros"}, {"¢", "cents"}, {"$", "dollars"}, {"£", "pounds"}, {"¥", "yens"}, {"₹", "rupees"},
		},
		specialChars: concatReplacements(latinLookalikes, fullWidthLatin, greekLetters, enSymbolNames),
		abbrevs: []Replacement{
			{"g", "grams"}, {"µg", "micrograms"}, {"μg", "micrograms"}, {"mg", "milligrams"},
			{"kg", "kilograms"}, {"mm", "millimeters"}, {"cm", "centimeters"},
			{"ml", "milliliters"}, {"cm2", "square centimeters"},
		},
		spellings: []Replacement{
			{"etc", "et cetera"},
		},
		titles: compileRules("%s", []Replacement{
			{` mr\.? `, " mister "},
			{` mrs\.? `, " missus "},
			{` dr\.? `, " doctor "},
		}),
		punctWords: map[string]string{",": "comma", ".": "dot"},
		months: map[int]string{
			1: "january", 2: "february", 3: "march", 4: "april", 5: "may", 6: "june",
			7: "july", 8: "august", 9: "september", 10: "october", 11: "november", 12: "december",
		},
		denominators: map[string]string{"2": "half", "4": "quarter"},
		numberWords: wordSet(
			"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
			"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen",
			"eighteen", "nineteen", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
			"eighty", "ninety", "hundred", "thousand", "million", "billion", "trillion",
		),
		url:            &urlWords{dot: "dot", colon: "colon", slash: "slash", dash: "dash"},
		time:           &timeWords{hours: "hours", minutes: "minutes", seconds: "seconds"},
		letters:        latinLetters,
		romanCandidate: regexp.MustCompile(`[XVI]+(?:st|nd|rd|th|º)?`),
		ordinalDigits:  regexp.MustCompile(`\b\d*1st|\b\d*2nd|\b\d*3rd|\b\d+(?:º|th)`),
		dayOrdinal:     lastDigitOneToThree,

		pluralDenominator: true,
	})
}
