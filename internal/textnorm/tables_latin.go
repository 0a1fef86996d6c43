package textnorm

// Accented and Cyrillic look-alikes folded to the plain Latin letter used in
// French. Decomposed accents are handled by NFC before this table runs.
var latinLookalikes = []Replacement{
	{"а", "a"}, {"ã", "à"}, {"ā", "a"}, {"ă", "a"}, {"ǎ", "a"},
	{"е", "e"}, {"ē", "e"}, {"ĕ", "e"}, {"ė", "e"}, {"ę", "e"}, {"ě", "e"}, {"ё", "e"},
	{"ϊ", "ï"}, {"ΐ", "ï"},
	{"ĩ", "i"}, {"ī", "i"}, {"ĭ", "i"}, {"į", "i"}, {"ı", "i"},
	{"ό", "ο"}, {"ǒ", "o"}, {"ō", "o"}, {"ő", "o"},
	{"ǔ", "u"}, {"ǜ", "ü"}, {"ύ", "u"}, {"ū", "u"},
	{"ŷ", "y"},
	{"ć", "c"}, {"č", "c"}, {"ƒ", "f"},
	{"ĝ", "g"}, {"ğ", "g"}, {"ġ", "g"}, {"ĥ", "h"}, {"ķ", "k"}, {"ł", "l"},
	{"ń", "n"}, {"ņ", "n"}, {"ň", "n"}, {"ř", "r"},
	{"ś", "s"}, {"ş", "s"}, {"š", "s"}, {"ș", "s"},
	{"ţ", "t"}, {"ț", "t"}, {"ť", "t"},
	{"ŵ", "w"}, {"ź", "z"}, {"ż", "z"}, {"ž", "z"},
	{"Ã", "a"},
}

var fullWidthLatin = []Replacement{
	{"ａ", "a"}, {"ｂ", "b"}, {"ｃ", "c"}, {"ｄ", "d"}, {"ｅ", "e"}, {"ｆ", "f"}, {"ｇ", "g"},
	{"ｈ", "h"}, {"ｉ", "i"}, {"ｊ", "j"}, {"ｋ", "k"}, {"ｌ", "l"}, {"ｍ", "m"}, {"ｎ", "n"},
	{"ｏ", "o"}, {"ｐ", "p"}, {"ｑ", "q"}, {"ｒ", "r"}, {"ｓ", "s"}, {"ｔ", "t"}, {"ｕ", "u"},
	{"ｖ", "v"}, {"ｗ", "w"}, {"ｘ", "x"}, {"ｙ", "y"}, {"ｚ", "z"},
}

var greekLetters = []Replacement{
	{"α", " alpha "}, {"β", " beta "}, {"γ", " gamma "}, {"δ", " delta "}, {"ε", " epsilon "},
	{"ζ", " zeta "}, {"η", " eta "}, {"θ", " theta "}, {"ι", " iota "}, {"κ", " kappa "},
	{"λ", " lambda "}, {"ν", " nu "}, {"ξ", " xi "}, {"ο", " omicron "}, {"π", " pi "},
	{"ρ", " rho "}, {"σ", " sigma "}, {"τ", " tau "}, {"υ", " upsilon "}, {"φ", " phi "},
	{"χ", " chi "}, {"ψ", " psi "}, {"ω", " omega "},
	{"Α", " alpha "}, {"Β", " beta "}, {"Γ", " gamma "}, {"Δ", " delta "}, {"Ε", " epsilon "},
	{"Ζ", " zeta "}, {"Η", " eta "}, {"Θ", " theta "}, {"Ι", " iota "}, {"Κ", " kappa "},
	{"Λ", " lambda "}, {"Μ", " micro "}, {"Ν", " nu "}, {"Ξ", " xi "}, {"Ο", " omicron "},
	{"Π", " pi "}, {"Ρ", " rho "}, {"Σ", " sigma "}, {"Τ", " tau "}, {"Υ", " upsilon "},
	{"Φ", " phi "}, {"Χ", " chi "}, {"Ψ", " psi "}, {"Ω", " omega "},
}

// French names of card, chess and math symbols.
var frSymbolNames = []Replacement{
	{"×", " fois "}, {"÷", " divisé par "},
	{"♠", " pique "}, {"♣", " trèfle "}, {"♥", " coeur "}, {"♦", " carreau "},
	{"♜", " tour "}, {"♞", " cavalier "}, {"♝", " fou "}, {"♛", " reine "}, {"♚", " roi "},
	{"♟", " pion "}, {"♔", " roi "}, {"♕", " reine "}, {"♖", " tour "}, {"♗", " fou "},
	{"♘", " cavalier "}, {"♙", " pion "},
	{"♭", " bémol "}, {"♮", " dièse "}, {"♂", " mâle "}, {"♀", " femelle "}, {"☿", " mercure "},
	{"∈", " appartient à "}, {"∉", " n'appartient pas à "}, {"∅", " vide "},
	{"∪", " union "}, {"∩", " intersection "}, {"∧", " et "}, {"∨", " ou "},
	{"∀", " pour tout "}, {"∃", " il existe "}, {"∂", " dérivée de "}, {"∇", " gradient de "},
	{"√", " racine carrée de "}, {"∫", " intégrale de "}, {"∬", " double intégrale de "},
	{"∭", " triple intégrale de "}, {"∮", " intégrale de surface de "},
	{"∯", " double intégrale de surface de "}, {"∰", " triple intégrale de surface de "},
	{"∴", " donc "}, {"∵", " car "}, {"∼", " environ "}, {"≈", " estime "},
	{"≠", " différent de "}, {"≡", " égal à "}, {"≤", " inférieur ou égal à "},
	{"≥", " supérieur ou égal à "}, {"⊂", " est inclus dans "}, {"⊃", " contient "},
	{"⊄", " n'est pas inclus dans "}, {"⊆", " est inclus dans ou égal à "},
	{"⊇", " contient ou est égal à "}, {"⊕", " addition "}, {"⊗", " multiplication "},
	{"⊥", " perpendiculaire à "}, {"∑", " somme de "}, {"∏", " produit de "},
	{"∐", " somme directe de "}, {"⇒", " implique "}, {"⇔", " équivaut à "},
	{"⇐", " est impliqué par "}, {"⇆", " est équivalent à "}, {"⇎", " est défini par "},
	{"ℤ", " entiers "}, {"ℚ", " rationnels "}, {"ℝ", " réels "}, {"ℂ", " complexes "},
	{"ℕ", " naturels "}, {"ℵ", " aleph "}, {"ℶ", " beth "}, {"ℷ", " gimel "},
	{"ℸ", " daleth "}, {"ℹ", " information "},
}

// English names for the few symbols common outside math texts.
var enSymbolNames = []Replacement{
	{"×", " times "}, {"÷", " divided by "},
	{"≠", " not equal to "}, {"≤", " less than or equal to "}, {"≥", " greater than or equal to "},
	{"≈", " approximately "}, {"∞", " infinity "}, {"√", " square root of "},
}

// Spanish names for the same symbols.
var esSymbolNames = []Replacement{
	{"×", " por "}, {"÷", " dividido por "},
	{"≠", " distinto de "}, {"≤", " menor o igual que "}, {"≥", " mayor o igual que "},
	{"≈", " aproximadamente "}, {"∞", " infinito "}, {"√", " raíz cuadrada de "},
}

func concatReplacements(tables ...[]Replacement) []Replacement {
	var out []Replacement
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Lowercase letters of the Latin profiles, used by punctuation rules.
const latinLetters = `a-zàâäçèéêëîïôùûüáíóúñ`

// Function words allowed as the second-to-last part of hyphenated names
// such as "saint-germain-des-prés".
var hyphenFunctionWords = wordSet(
	"de", "du", "des", "sur", "sous", "en", "au", "à", "le", "la", "les", "lès",
	"saint", "sainte", "grand", "t", "vous", "el", "al",
)
