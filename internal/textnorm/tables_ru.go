package textnorm

import "regexp"

var ruMonths = map[int]string{
	1: "января", 2: "февраля", 3: "марта", 4: "апреля", 5: "мая", 6: "июня",
	7: "июля", 8: "августа", 9: "сентября", 10: "октября", 11: "ноября", 12: "декабря",
}

func init() {
	register(&Profile{
		Code:   "ru",
		Script: Cyrillic,
		symbols: []Replacement{
			{"№", "номер"}, {"%", "процентов"}, {"٪", "процентов"}, {"=", "равно"},
			{"‰", "промилле"}, {"~", "примерно"}, {"÷", "разделить на"}, {"*", "умножить на"},
			{"×", "умножить на"}, {"±", "плюс минус"}, {"+", "плюс"}, {"⁺", "плюс"}, {"⁻", "минус"},
			{"&", "энд"}, {"@", "собака"},
			{"мм²", "квадратный миллиметр"}, {"мм³", "миллиметр в кубе"},
			{"см²", "квадратный сантиметр"}, {"см³", "сантиметр в кубе"},
			{"м²", "квадратный метр"}, {"м³", "метр в кубе"},
			{"²", "в квадрате"}, {"³", "в кубе"}, {"⁵", "в пятой степени"}, {"⁷", "в седьмой степени"},
			{"½", "одна вторая"}, {"⅓", "одна треть"}, {"⅔", "две трети"}, {"¼", "одна четверть"}, {"¾", "три четверти"},
			{"§", "параграф"},
			{"°C", "градус цельсия"}, {"°F", "градус по фаренгейту"}, {"°K", "градус кельвина"}, {"°", "градус"},
			{"€", "евро"}, {"¢", "цент"}, {"$", "доллар"}, {"£", "фунт"}, {"¥", "йен"}, {"₹", "рупий"}, {"₽", "рубль"},
		},
		specialChars: fullWidthLatin,
		abbrevs: []Replacement{
			{"кг", "килограмм"}, {"мл", "миллилитр"},
		},
		punctWords:   map[string]string{",": "запятая", ".": "точка"},
		months:       ruMonths,
		denominators: map[string]string{"2": "вторых", "3": "третьих", "4": "четверти"},
		url:          &urlWords{dot: "точка", colon: "двоеточие", slash: "слэш", dash: "дефис"},
		time:         &timeWords{hours: "часов", minutes: "минут", seconds: "секунд"},
		decimalComma: true,
		letters:      `а-яё`,

		romanCandidate: regexp.MustCompile(`[XVI]+`),
		dayOrdinal:     func(string) bool { return true },
		yearOrdinal:    true,
		ordinal:        ruOrdinal,
		convertDates:   ruConvertDates,
		fixOrdinals:    ruFixOrdinals,
	})
}
