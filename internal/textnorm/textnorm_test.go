package textnorm

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func mustNormalizer(t *testing.T, lang string, cfg Config) *Normalizer {
	t.Helper()
	n, err := New(lang, cfg)
	if err != nil {
		t.Fatalf("New(%q) error: %v", lang, err)
	}
	return n
}

func TestNormalizeFrench(t *testing.T) {
	n := mustNormalizer(t, "fr", DefaultConfig())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "decimal and glued digits",
			in:   "Ma grand-mère version 2.0 ne connaît pas wav2vec. Commande1",
			want: "ma grand-mère version deux point zéro ne connaît pas wav to vec commande un",
		},
		{
			name: "units and years",
			in:   "Elle pesait 67,5kg en 1995, et + en 1996.",
			want: "elle pesait soixante-sept virgule cinq kilogrammes en mille neuf cent quatre-vingt-quinze et plus en mille neuf cent quatre-vingt-seize",
		},
		{
			name: "fractions and exponents",
			in:   "¾ et 3/4 et 3 m² et 3m³ et 3.7cm² et 3,7 cm³",
			want: "trois quarts et trois quarts et trois mètres carrés et trois mètres cubes et trois point sept centimètres carrés et trois virgule sept centimètres cubes",
		},
		{
			name: "thousands groups and phone numbers",
			in:   "10 000 et 100 000 000 ne sont pas pareils que 06 12 34 56 78",
			want: "dix mille et cent millions ne sont pas pareils que zéro six douze trente-quatre cinquante-six soixante-dix-huit",
		},
		{
			name: "curly quotes",
			in:   "L’état “from scratch”.",
			want: "l' état from scratch",
		},
		{
			name: "websites",
			in:   "http://www.linagora.blah.com/page.html est un site. www.linagora.com en est un autre",
			want: "http deux points slash slash www point linagora point blah point com slash page point html est un site www point linagora point com en est un autre",
		},
		{
			name: "dotted run is not a website",
			in:   "www.len.com len.. ralenti",
			want: "www point len point com len ralenti",
		},
		{
			name: "titles",
			in:   "M. Dupont, Mme. Dupont, Mlle. Dupont",
			want: "monsieur dupont madame dupont mademoiselle dupont",
		},
		{
			name: "tags and short hyphen chains",
			in:   "C'est la <DATE> est au format aaaa-mm-dd. ça mesure 3mm",
			want: "c' est la date est au format aaaa-mm-dd ça mesure trois millimètres",
		},
		{
			name: "full date",
			in:   "le 14/07/1789",
			want: "le quatorze juillet mille sept cent quatre-vingt-neuf",
		},
		{
			name: "first of the month",
			in:   "le 1/12",
			want: "le premier décembre",
		},
		{
			name: "fraction with plural denominator",
			in:   "5/3",
			want: "cinq tiers",
		},
		{
			name: "ordinal suffixes",
			in:   "le 1er mai et le 3e jour",
			want: "le premier mai et le troisième jour",
		},
		{
			name: "time of day",
			in:   "à 14h30",
			want: "à quatorze heures trente",
		},
		{
			name: "currency reordering",
			in:   "1,20€",
			want: "un euros vingt",
		},
		{
			name: "roman numerals",
			in:   "Louis XIV au XIXe siècle",
			want: "louis quatorze au dix-neuvième siècle",
		},
		{
			name: "ligatures",
			in:   "Un cœur",
			want: "un coeur",
		},
		{
			name: "long hyphen chain is split",
			in:   "un va-et-vient-de-trop",
			want: "un va et vient de trop",
		},
		{
			name: "place name keeps hyphens",
			in:   "saint-germain-des-pres",
			want: "saint-germain-des-pres",
		},
		{
			name: "multi-spelling canonicalized",
			in:   "une clef",
			want: "une clé",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q)\n got: %q\nwant: %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeEnglish(t *testing.T) {
	n := mustNormalizer(t, "en", DefaultConfig())

	tests := []struct {
		in   string
		want string
	}{
		{"The 21st century", "the twenty-first century"},
		{"Mr. Smith has 3 cats", "mister smith has three cats"},
		{"50% off", "fifty percent off"},
	}
	for _, tt := range tests {
		got, err := n.Normalize(tt.in)
		if err != nil {
			t.Fatalf("Normalize(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRussian(t *testing.T) {
	n := mustNormalizer(t, "ru", DefaultConfig())

	got, err := n.Normalize("5 мая")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "пятого мая" {
		t.Errorf("Normalize(5 мая) = %q, want %q", got, "пятого мая")
	}
}

func TestNormalizeArabic(t *testing.T) {
	noLatin := DefaultConfig()
	noLatin.KeepLatinChars = false
	keepPunc := DefaultConfig()
	keepPunc.KeepPunctuation = true
	buckwalter := DefaultConfig()
	buckwalter.Buckwalter = true

	tests := []struct {
		name string
		cfg  Config
		in   string
		want string
	}{
		{"url removed", DefaultConfig(), "زوروا https://example.com الآن", "زوروا الآن"},
		{"diacritics", DefaultConfig(), "كَتَبَ الوَلَدُ", "كتب الولد"},
		{"tatweel", DefaultConfig(), "كـتـاب", "كتاب"},
		{"persian letters folded", DefaultConfig(), "کتاب یوم", "كتاب يوم"},
		{"repeated letters squeezed", DefaultConfig(), "ككككتاب", "ككتاب"},
		{"long glued word dropped", DefaultConfig(), "مرحبا ابتثجحخدذرزسشصض", "مرحبا"},
		{"eastern digits", DefaultConfig(), "٥ كتب", "خمسة كتب"},
		{"percent", DefaultConfig(), "5%", "خمسة في المئة"},
		{"hijri date", DefaultConfig(), "1440/05/12", "ألف وأربعمائة وأربعون جمادى الأولى اثنا عشر"},
		{"latin unglued", DefaultConfig(), "كتابABC", "كتاب ABC"},
		{"punctuation dropped", DefaultConfig(), "مرحبا, كيف؟", "مرحبا كيف"},
		{"latin dropped", noLatin, "مرحبا hello", "مرحبا"},
		{"punctuation kept", keepPunc, "مرحبا, كيف؟", "مرحبا، كيف؟"},
		{"buckwalter", buckwalter, "كتاب", "ktAb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustNormalizer(t, "ar", tt.cfg)
			got, err := n.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpanish(t *testing.T) {
	n := mustNormalizer(t, "es", DefaultConfig())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"titles", "Sr. García y Sra. López", "señor garcía y señora lópez"},
		{"half", "1/2", "uno mitad"},
		{"plural thirds", "5/3", "cinco tercios"},
		{"ordinal suffix", "el 13º piso", "el decimotercero piso"},
		{"decimal comma and percent", "3,5%", "tres coma cinco por ciento"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeMultiline(t *testing.T) {
	n := mustNormalizer(t, "fr", DefaultConfig())

	got, err := n.Normalize("Un\nDeux 2")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "un\ndeux deux" {
		t.Errorf("Normalize = %q, want %q", got, "un\ndeux deux")
	}
}

func TestNormalizeExtractParenthesis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExtractParenthesis = true
	n := mustNormalizer(t, "fr", cfg)

	got, err := n.Normalize("bonjour (salut) monde")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "bonjour monde\nsalut" {
		t.Errorf("Normalize = %q, want %q", got, "bonjour monde\nsalut")
	}
}

func TestNormalizeSuspicious(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RemoveSuspiciousEntries = true
	n := mustNormalizer(t, "fr", cfg)

	tests := []struct {
		in   string
		want string
	}{
		{"aaah non", ""},
		{"un llama", ""},
		{"la familyfont arial", ""},
		{"une phrase normale", "une phrase normale"},
	}
	for _, tt := range tests {
		got, err := n.Normalize(tt.in)
		if err != nil {
			t.Fatalf("Normalize(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSafetyCheck(t *testing.T) {
	n := mustNormalizer(t, "fr", DefaultConfig())

	in := "il reste ५ chiffres"
	_, err := n.Normalize(in)
	if err == nil {
		t.Fatal("expected error for residual digit")
	}
	if !errors.Is(err, ErrNormalization) {
		t.Errorf("error %v does not match ErrNormalization", err)
	}
	if !errors.Is(err, ErrResidualDigits) {
		t.Errorf("error %v does not match ErrResidualDigits", err)
	}
	var nerr *NormalizationError
	if !errors.As(err, &nerr) {
		t.Fatalf("error %T is not *NormalizationError", err)
	}
	if nerr.Stage != "safety" {
		t.Errorf("Stage = %q, want %q", nerr.Stage, "safety")
	}
	if nerr.Input != in {
		t.Errorf("Input = %q, want %q", nerr.Input, in)
	}
}

func TestNormalizeWithoutSafetyRecordsSpecialChars(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.SafetyChecks = false
	cfg.SpecialChars = NewCharSeen(&buf)
	n := mustNormalizer(t, "fr", cfg)

	got, err := n.Normalize("il reste ५ chiffres ५")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "il reste chiffres" {
		t.Errorf("Normalize = %q, want %q", got, "il reste chiffres")
	}
	if buf.String() != "002411 ५\n" {
		t.Errorf("special chars sink = %q", buf.String())
	}
}

func TestNormalizeAcronyms(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Acronyms = NewSeen(&buf)
	n := mustNormalizer(t, "fr", cfg)

	for _, in := range []string{"Le CNRS et la SNCF", "puis le CNRS"} {
		if _, err := n.Normalize(in); err != nil {
			t.Fatalf("Normalize(%q) error: %v", in, err)
		}
	}
	if got := strings.Join(cfg.Acronyms.Items(), ","); got != "CNRS,SNCF" {
		t.Errorf("acronyms = %q, want %q", got, "CNRS,SNCF")
	}
	if buf.String() != "CNRS\nSNCF\n" {
		t.Errorf("acronym sink = %q", buf.String())
	}
}

func TestFindAcronyms(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"BONJOUR le CNRS", []string{"CNRS"}},
		{"le PSG et l'OM", []string{"PSG", "OM"}},
		{"rien ici", nil},
	}
	for _, tt := range tests {
		got := FindAcronyms(tt.in)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("FindAcronyms(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := map[string][]string{
		"fr": {
			"Ma grand-mère version 2.0 ne connaît pas wav2vec. Commande1",
			"Elle pesait 67,5kg en 1995, et + en 1996.",
			"M. Dupont, Mme. Dupont, Mlle. Dupont",
			"L’état “from scratch”.",
		},
		"en": {"The 21st century", "Mr. Smith has 3 cats"},
		"ar": {"ذهبت إلى المدرسة"},
	}
	for lang, texts := range inputs {
		n := mustNormalizer(t, lang, DefaultConfig())
		for _, in := range texts {
			once, err := n.Normalize(in)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", in, err)
			}
			twice, err := n.Normalize(once)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", once, err)
			}
			if once != twice {
				t.Errorf("%s: not idempotent:\n once: %q\ntwice: %q", lang, once, twice)
			}
		}
	}
}

func TestNoDigitsSurvive(t *testing.T) {
	for _, lang := range Languages() {
		n := mustNormalizer(t, lang, DefaultConfig())
		for _, in := range []string{"0", "7", "42", "1000", "-15", "3/4", "12/05/2020", "123456789012345678901234567890123456789012"} {
			got, err := n.Normalize(in)
			if err != nil {
				t.Fatalf("%s: Normalize(%q) error: %v", lang, in, err)
			}
			if strings.ContainsAny(got, "0123456789") {
				t.Errorf("%s: Normalize(%q) = %q contains digits", lang, in, got)
			}
		}
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New("xx", DefaultConfig())
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("New(xx) error = %v, want ErrUnsupportedLanguage", err)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("New(xx) error = %v, want ErrConfiguration", err)
	}

	cfg := DefaultConfig()
	cfg.Buckwalter = true
	if _, err := New("fr", cfg); !errors.Is(err, ErrConfiguration) {
		t.Errorf("New(fr, buckwalter) error = %v, want ErrConfiguration", err)
	}
}

func TestStages(t *testing.T) {
	n := mustNormalizer(t, "fr", DefaultConfig())
	want := []string{
		"currencies", "roman", "case", "characters", "websites", "titles", "punctuation",
		"time", "ordinals", "numerals", "safety", "symbols", "dashes", "dictionary",
		"cleanup", "script", "whitespace",
	}
	if got := n.Stages(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Stages() = %v, want %v", got, want)
	}

	ru := mustNormalizer(t, "ru", DefaultConfig())
	for _, s := range ru.Stages() {
		if s == "dashes" {
			t.Error("cyrillic pipeline should not split dashes")
		}
	}
}

func TestFormat(t *testing.T) {
	got, err := Format("Deux 2", "fr", DefaultConfig())
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "deux deux" {
		t.Errorf("Format = %q, want %q", got, "deux deux")
	}
}

func TestSymbolTable(t *testing.T) {
	table, err := SymbolTable("fr")
	if err != nil {
		t.Fatalf("SymbolTable error: %v", err)
	}
	index := map[string]int{}
	for i, r := range table {
		index[r.From] = i
	}
	if index["cm²"] >= index["²"] {
		t.Error("cm² must come before ²")
	}
	table[0].To = "changed"
	again, _ := SymbolTable("fr")
	if again[0].To == "changed" {
		t.Error("SymbolTable returned shared storage")
	}
	if _, err := SymbolTable("xx"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("SymbolTable(xx) error = %v", err)
	}
}

func TestSeen(t *testing.T) {
	var buf bytes.Buffer
	s := NewSeen(&buf)
	if !s.Add("a") || !s.Add("b") || s.Add("a") {
		t.Error("Add did not report first sightings correctly")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if buf.String() != "a\nb\n" {
		t.Errorf("written = %q", buf.String())
	}

	buf.Reset()
	c := NewCharSeen(&buf)
	c.Add("é")
	c.Add("é")
	if buf.String() != "000233 é\n" {
		t.Errorf("char sink = %q", buf.String())
	}
	if c.Err() != nil {
		t.Errorf("Err() = %v", c.Err())
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \t b\n\nc  "); got != "a b c" {
		t.Errorf("CollapseWhitespace = %q", got)
	}
}

func TestTransliterate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"élève", "eleve"},
		{"Łódź", "Lodz"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUndigit(t *testing.T) {
	huge := "1" + strings.Repeat("0", 40)
	tests := []struct {
		name string
		lang string
		in   string
		mode NumeralMode
		want string
	}{
		{"cardinal", "en", "42", Cardinal, "forty-two"},
		{"inner spaces ignored", "en", "1 001", Cardinal, "one thousand and one"},
		{"leading zeros", "fr", "007", Cardinal, "zéro zéro sept"},
		{"denominator", "fr", "3", Denominator, "tiers"},
		{"overflow spells digits", "fr", huge, Cardinal, "un" + strings.Repeat(" zéro", 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Undigit(tt.in, tt.lang, tt.mode)
			if err != nil {
				t.Fatalf("Undigit(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Undigit(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if _, err := Undigit("1", "de", Cardinal); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Undigit(de) error = %v, want ErrUnsupportedLanguage", err)
	}
}
