package textnorm

import "regexp"

var frOrdinalPlural = regexp.MustCompile(`(vingt|cent|million|milliard)sième`)

func init() {
	register(&Profile{
		Code:   "fr",
		Script: Latin,
		symbols: []Replacement{
			{"%", "pour cent"}, {"٪", "pour cent"}, {"‰", "pour mille"}, {"~", "environ"},
			{"÷", "divisé par"}, {"×", "fois"}, {"±", "plus ou moins"}, {"+", "plus"},
			{"⁺", "plus"}, {"⁻", "moins"}, {"&", "et"}, {"@", "arobase"}, {"µ", "micro"},
			{"mm²", "millimètres carrés"}, {"mm³", "millimètres cubes"},
			{"cm²", "centimètres carrés"}, {"cm³", "centimètres cubes"},
			{"m²", "mètres carrés"}, {"m³", "mètres cubes"},
			{"²", "au carré"}, {"³", "au cube"}, {"⁵", "à la puissance cinq"}, {"⁷", "à la puissance sept"},
			{"½", "un demi"}, {"⅓", "un tiers"}, {"⅔", "deux tiers"}, {"¼", "un quart"}, {"¾", "trois quarts"},
			{"§", "paragraphe"},
			{"°C", "degrés Celsius"}, {"°F", "degrés Fahrenheit"}, {"°K", "kelvins"}, {"°", "degrés"},
			{"€", "euros"}, {"¢", "cents"}, {"$", "dollars"}, {"£", "livres"}, {"¥", "yens"}, {"₹", "roupies"},
		},
		specialChars: concatReplacements(latinLookalikes, fullWidthLatin, greekLetters, frSymbolNames),
		abbrevs: []Replacement{
			{"g", "grammes"}, {"µg", "microgrammes"}, {"μg", "microgrammes"}, {"mg", "milligrammes"},
			{"kg", "kilogrammes"}, {"mm", "millimètres"}, {"cm", "centimètres"},
			{"ml", "millilitres"}, {"cm2", "centimètres carrés"},
		},
		spellings: []Replacement{
			{"ailloli", "aïoli"}, {"aillolis", "aïolis"}, {"aulne", "aune"}, {"aulnes", "aunes"},
			{"bâiller", "bayer"}, {"bagout", "bagou"}, {"balluchon", "baluchon"}, {"balluchons", "baluchons"},
			{"becqueter", "béqueter"}, {"bistrot", "bistro"}, {"bistrots", "bistros"},
			{"bonbonne", "bombonne"}, {"bonbonnes", "bombonnes"},
			{"cacahouète", "cacahuète"}, {"cacahouètes", "cacahuètes"},
			{"cannette", "canette"}, {"cannettes", "canettes"},
			{"caryatide", "cariatide"}, {"caryatides", "cariatides"},
			{"chausse-trape", "chausse-trappe"}, {"chausse-trapes", "chausse-trappes"},
			{"clef", "clé"}, {"clefs", "clés"}, {"cuiller", "cuillère"}, {"cuillers", "cuillères"},
			{"démarcage", "démarquage"}, {"égrener", "égrainer"},
			{"etc", "et cetera"}, {"caetera", "cetera"}, {"cætera", "cetera"},
			{"feignant", "fainéant"}, {"feignants", "fainéants"},
			{"gri-gri", "grigri"}, {"gri-gris", "grigris"}, {"gris-gris", "grigris"},
			{"hawaiien", "hawaïen"}, {"hawaiiens", "hawaïens"},
			{"iraquien", "irakien"}, {"iraquiens", "irakiens"}, {"isle", "île"}, {"isles", "îles"},
			{"khôl", "kohl"}, {"kohol", "kohl"}, {"koheul", "kohl"},
			{"laïc", "laïque"}, {"laïcs", "laïques"}, {"lettonne", "lettone"}, {"lettonnes", "lettones"},
			{"lis", "lys"}, {"nénuphar", "nénufar"}, {"nénuphars", "nénufars"},
			{"ognon", "oignon"}, {"ognons", "oignons"},
			{"orang-outan", "orang-outang"}, {"orangs-outans", "orangs-outangs"},
			{"parafe", "paraphe"}, {"parafes", "paraphes"}, {"paye", "paie"}, {"payes", "paies"},
			{"phantasme", "fantasme"}, {"phantasmes", "fantasmes"},
			{"pizzéria", "pizzeria"}, {"pizzérias", "pizzerias"},
			{"rapeur", "rappeur"}, {"rapeurs", "rappeurs"}, {"rencard", "rancard"}, {"rencards", "rancards"},
			{"resurgir", "ressurgir"}, {"soûl", "saoul"}, {"soûls", "saouls"},
			{"tannin", "tanin"}, {"tannins", "tanins"}, {"tartufe", "tartuffe"}, {"tartufes", "tartuffes"},
			{"trimballer", "trimbaler"}, {"tzar", "tsar"}, {"tzars", "tsars"},
			{"tzigane", "tsigane"}, {"tziganes", "tsiganes"}, {"ululer", "hululer"},
			{"vantail", "ventail"}, {"yoghourt", "yogourt"}, {"yoghourts", "yogourts"},
		},
		titles: compileRules("%s", []Replacement{
			{` m\. `, " monsieur "},
			{` mme\.? `, " madame "},
			{` mlle\.? `, " mademoiselle "},
		}),
		corrections: compileRules(`(?i) %s `, []Replacement{
			{"nº", " numéro "}, {"n°", " numéro "},
			{"jus +qu'", " jusqu' "}, {"pres +qu'", " presqu' "}, {"lors +qu'", " lorsqu' "},
			{"quel +qu'", " quelqu' "}, {"puis +qu'", " puisqu' "}, {"aujour +d'", " aujourd' "},
			{"jusqu", " jusqu' "}, {"presqu", " presqu' "}, {"lorsqu", " lorsqu' "},
			{"quelqu", " quelqu' "}, {"puisqu", " puisqu' "}, {"aujourd", " aujourd' "},
			{"aujourd' +hui", " aujourd'hui "}, {"quoiqu", " quoiqu' "},
			{"°", " degrés "},
		}),
		punctWords: map[string]string{",": "virgule", ".": "point"},
		months: map[int]string{
			1: "janvier", 2: "février", 3: "mars", 4: "avril", 5: "mai", 6: "juin",
			7: "juillet", 8: "août", 9: "septembre", 10: "octobre", 11: "novembre", 12: "décembre",
		},
		denominators: map[string]string{"2": "demi", "3": "tiers", "4": "quart"},
		numberWords: wordSet(
			"un", "dix", "six", "sept", "onze", "cinq", "huit", "cent", "neuf", "deux", "zéro",
			"mille", "trois", "seize", "vingt", "douze", "treize", "quatre", "trente", "quinze",
			"million", "billion", "trillion", "quarante", "soixante", "quatorze", "milliard",
			"billiard", "trilliard", "cinquante", "quadrillion", "quadrilliard", "quintillion",
			"quintilliard", "et",
		),
		url:            &urlWords{dot: "point", colon: "deux points", slash: "slash", dash: "tiret"},
		time:           &timeWords{hours: "heures", minutes: "minutes", seconds: "secondes"},
		decimalComma:   true,
		letters:        latinLetters,
		romanCandidate: regexp.MustCompile(`[XVI]+(?:ème|eme|ère|er|e|º)?`),
		romanBare:      true,
		ordinalDigits:  regexp.MustCompile(`\b1(?:ère|ere|er|re|r)|\b2(?:nde|nd)|\b\d+(?:º|ème|eme|e)`),
		dayOrdinal:     func(day string) bool { return day == "1" },

		pluralDenominator: true,
		ordinalPatch: func(s string) string {
			return frOrdinalPlural.ReplaceAllString(s, "${1}ième")
		},
	})
}
