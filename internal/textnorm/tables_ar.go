package textnorm

func init() {
	register(&Profile{
		Code:   "ar",
		Script: Arabic,
		symbols: []Replacement{
			{"%", "في المئة"}, {"٪", "في المئة"}, {"‰", "بالألف"}, {"~", "حوالي"}, {"=", "يساوي"},
			{"÷", "مقسوما على"}, {"×", "مضروبا بـ"}, {"±", "بالإضافة أو الطرح"},
			{"+", "بالإضافة"}, {"⁺", "بالإضافة"}, {"⁻", "بالطرح"}, {"&", "و"}, {"@", "على"},
			{"µ", "ميكرو"},
			{"mm²", "مم مربع"}, {"مم²", "مم مربع"}, {"mm³", "مم مكعب"}, {"مم³", "مم مكعب"},
			{"هـ", "هجري"}, {"ق.م", "قبل الميلاد"},
			{"cm²", "سم مربع"}, {"cm³", "سم مكعب"}, {"سم²", "سم مربع"}, {"سم³", "سم مكعب"},
			{"m²", "م مربع"}, {"m³", "م مكعب"}, {"م²", "م مربع"}, {"م³", "م مكعب"},
			{"²", "مربع"}, {"³", "مكعب"}, {"⁵", "الخامسة"}, {"⁷", "السابعة"},
			{"½", "نصف"}, {"⅓", "ثلث"}, {"⅔", "ثلثين"}, {"¼", "ربع"}, {"¾", "ربعين"},
			{"§", "فقرة"},
			{"°C", "درجة مئوية"}, {"°F", "درجة فهرنهايت"}, {"°K", "كيلفن"}, {"°", "درجة"},
			{"€", "يورو"}, {"¢", "سنت"}, {"C$", "دولار كندي"}, {"$", "دولار"}, {"£", "جنيه"},
			{"¥", "ين"}, {"₹", "روبية هندية"}, {"₽", "روبل روسي"},
		},
		currencies: []Replacement{
			{"EGP", "جنيه مصري"}, {"ج.م", "جنيه مصري"},
			{"IQD", "دينار عراقي"}, {"د.ع", "دينار عراقي"},
			{"SYP", "ليرة سورية"}, {"ل.س", "ليرة سورية"},
			{"ل.ل", "ليرة لبنانية"}, {"LBP", "ليرة لبنانية"},
			{"JOD", "دينار أردني"}, {"د.ا", "دينار أردني"},
			{"SAR", "ريال سعودي"}, {"ر.س", "ريال سعودي"},
			{"YER", "ريال يمني"}, {"ر.ي", "ريال يمني"},
			{"LYD", "دينار ليبي"}, {"د.ل", "دينار ليبي"},
			{"SDG", "جنيه سوداني"}, {"ج.س", "جنيه سوداني"},
			{"MAD", "درهم مغربي"}, {"د.م", "درهم مغربي"},
			{"TND", "دينار تونسي"}, {"د.ت", "دينار تونسي"},
			{"KWD", "دينار كويتي"}, {"د.ك", "دينار كويتي"},
			{"DZD", "دينار جزائري"}, {"د.ج", "دينار جزائري"},
			{"MRO", "أوقية موريتانية"}, {"أ.م", "أوقية موريتانية"},
			{"BHD", "دينار بحريني"}, {"د.ب", "دينار بحريني"},
			{"QAR", "ريال قطري"}, {"ر.ق", "ريال قطري"},
			{"AED", "درهم إماراتي"}, {"د.إ", "درهم إماراتي"},
			{"OMR", "ريال عماني"}, {"ر.ع", "ريال عماني"},
			{"SOS", "شلن صومالي"}, {"ش.ص", "شلن صومالي"},
			{"FDJ", "فرنك جيبوتي"}, {"ف.ج", "فرنك جيبوتي"},
			{"KMF", "فرنك قمري"}, {"EUR", "يورو"}, {"USD", "دولار أمريكي"},
		},
		punctWords: map[string]string{",": "فاصيله", ".": "فاصيله"},
		months: map[int]string{
			1: "يناير", 2: "فبراير", 3: "مارس", 4: "أبريل", 5: "مايو", 6: "يونيو",
			7: "يوليو", 8: "أغسطس", 9: "سبتمبر", 10: "أكتوبر", 11: "نوفمبر", 12: "ديسمبر",
		},
		altMonths: map[int]string{
			1: "محرم", 2: "صفر", 3: "ربيع الأول", 4: "ربيع الآخر", 5: "جمادى الأولى", 6: "جمادى الآخرة",
			7: "رجب", 8: "شعبان", 9: "رمضان", 10: "شوال", 11: "ذو القعدة", 12: "ذو الحجة",
		},
		cardinalOnly: true,
		dayOrdinal:   func(string) bool { return false },
	})
}
