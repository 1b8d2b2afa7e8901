package triage

import "strings"

// Classifier mapea la queja libre a una categoría.
// Implementaciones deben ser puras: mismo texto, misma categoría.
type Classifier interface {
	Classify(text string) Category
}

// KeywordClassifier puntúa cada categoría por cantidad de keywords distintas presentes.
type KeywordClassifier struct {
	keywords map[Category][]string
}

// Listas ya normalizadas (sin ZWNJ, en minúsculas).
var defaultKeywords = map[Category][]string{
	CategoryGI: {
		"استفراغ", "بالا میاره", "بالا آورد", "بالا آوردن", "تهوع",
		"اسهال", "دل درد", "شکم درد", "شکم", "یبوست",
		"نفخ", "بی اشتها", "اشتهاش کم", "مدفوع",
		"vomit", "diarrh", "nausea", "stomach", "belly",
		"abdominal", "constipat", "bloat", "stool",
	},
	CategoryResp: {
		"سرفه", "سرفه می کند", "نفس نفس", "نفس تند", "تنگی نفس",
		"خس خس", "صدای سینه", "تنفس سخت", "دهان باز",
		"cough", "breath", "panting", "wheez", "sneez", "open mouth",
	},
	CategoryGeneral: {
		"بی حال", "بیحاله", "کسل", "کم انرژی", "بی انرژی",
		"تب", "داغه", "لرزش", "می لرزه", "میلرزه",
		"نمی خوره", "اشتها نداره", "اشتهاش قطع شده", "خواب آلود", "زیاد می خوابه",
		"letharg", "tired", "weak", "fever", "shiver",
		"trembl", "sleepy", "low energy", "not eating", "no appetite",
	},
}

// NewKeywordClassifier usa las listas por defecto (persa + inglés).
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{keywords: defaultKeywords}
}

// NewKeywordClassifierWith permite listas propias; se normalizan al construir.
func NewKeywordClassifierWith(keywords map[Category][]string) *KeywordClassifier {
	out := make(map[Category][]string, len(keywords))
	for cat, list := range keywords {
		seen := map[string]struct{}{}
		for _, k := range list {
			k = strings.TrimSpace(Normalize(k))
			if k == "" {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out[cat] = append(out[cat], k)
		}
	}
	return &KeywordClassifier{keywords: out}
}

func (c *KeywordClassifier) Classify(text string) Category {
	t := Normalize(text)

	best := CategoryGeneral
	bestScore := 0
	for _, cat := range Categories {
		score := c.Score(cat, t)
		// estrictamente mayor: el empate queda en la primera categoría
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}
	if bestScore == 0 {
		return CategoryGeneral
	}
	return best
}

// Score cuenta keywords distintas de la categoría presentes en el texto ya normalizado.
func (c *KeywordClassifier) Score(cat Category, normalized string) int {
	n := 0
	for _, k := range c.keywords[cat] {
		if strings.Contains(normalized, k) {
			n++
		}
	}
	return n
}

var defaultClassifier = NewKeywordClassifier()

// Classify usa el clasificador por keywords por defecto.
func Classify(text string) Category {
	return defaultClassifier.Classify(text)
}
