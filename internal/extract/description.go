package extract

import (
	"regexp"
	"strings"

	"github.com/MrJamesThe3rd/texttx/internal/textnorm"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

const (
	DefaultExpenseDescription = "Compra"
	DefaultIncomeDescription  = "Receita"

	maxDescriptionWords = 3
)

const weekdayNames = `(?:segunda|terca|quarta|quinta|sexta)(?:\s*-?\s*feira)?|sabado|domingo`

// descriptionStages strip, in order: leading verbs and prepositions, the amount
// literal, installment phrases, value filler, date fragments and stray numbers.
var descriptionStages = []*regexp.Regexp{
	regexp.MustCompile(`^(?:(?:acabei|acabo|eu)\s+)?(?:de\s+)?(?:gastei|comprei|paguei|recebi|ganhei|vendi|adquiri|fiz uma compra de|fiz uma compra|fiz|gastar|comprar|pagar|receber)\s+`),
	regexp.MustCompile(`^(?:compra de uma|compra de um|compra de|compra)\s+`),
	regexp.MustCompile(`^(?:com|de|uma|um|o|a)\s+`),

	regexp.MustCompile(`(?:\bde\s+)?r\$\s*` + number),
	regexp.MustCompile(`(?:\bde\s+)?\b` + number + `\s*(?:reais?\b|rs\b|r\$)`),

	regexp.MustCompile(`\b(?:parcelad[oa]\s+)?(?:em\s+)?\d+\s*(?:x\b|vezes\b|parcelas?\b)`),
	regexp.MustCompile(`\b(?:primeira|segunda|ultima)\s+parcela\b`),
	regexp.MustCompile(`\bparcelad[oa]s?\b`),

	regexp.MustCompile(`\b(?:(?:o|no)\s+)?valor(?:\s+total)?(?:\s+de)?\b`),
	regexp.MustCompile(`\b(?:reais?|total)\b`),

	regexp.MustCompile(`\b(?:(?:no|na)\s+)?dia\s+\d{1,2}(?:\s+de\s+` + monthNames + `)?\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`),
	regexp.MustCompile(`\bcomecando(?:\s+(?:no|na|em|dia))*\b`),
	regexp.MustCompile(`\b(?:hoje|ontem|anteontem|ante-ontem|amanha)\b`),
	regexp.MustCompile(`\b(?:(?:na|no|nesta|neste|ultima|ultimo)\s+)?(?:` + weekdayNames + `)\b`),
	regexp.MustCompile(`\b(?:(?:em|de|para)\s+)?` + monthNames + `\b`),
	regexp.MustCompile(`\b(?:passad[oa]|retrasad[oa])\b`),

	regexp.MustCompile(`\d+(?:[.,]\d+)*`),
	regexp.MustCompile(`r?\$`),
}

var descriptionStopwords = map[string]struct{}{
	"com": {}, "de": {}, "do": {}, "da": {}, "uma": {}, "um": {}, "o": {}, "a": {}, "e": {},
	"no": {}, "na": {}, "em": {}, "para": {}, "x": {}, "-": {},
	"gastar": {}, "gastei": {}, "comprei": {}, "paguei": {}, "recebi": {}, "ganhei": {}, "acabei": {},
	"valor": {}, "reais": {}, "real": {},
}

// rejectedProducts are phrases the product patterns may capture that name nothing.
var rejectedProducts = map[string]struct{}{
	"compra": {}, "compras": {}, "gastar": {}, "comprar": {}, "pagar": {},
}

var productPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bcom\s+([a-z]{3,}(?:\s+[a-z]+)*?)(?:\s+(?:no valor|valor|de|em|r\$|\d)|$)`),
	regexp.MustCompile(`\bcompra\s+de\s+(?:um|uma)\s+([a-z]+(?:\s+[a-z]+)*?)(?:\s+(?:no valor|valor|de|em|r\$|\d)|$)`),
	regexp.MustCompile(`\b(?:uma|um|de)\s+([a-z]+(?:\s+[a-z]+)*?)\s+(?:no valor|valor|em|parcelado|r\$)`),
	regexp.MustCompile(`\b(?:acabei de|comprei|paguei|gastei|fiz uma compra de|fiz uma compra)\s+(?:(?:uma|um|com|de)\s+)?([a-z]+(?:\s+[a-z]+)*?)(?:\s+(?:de|no valor|valor|em|com|r\$|\d)|$)`),
	regexp.MustCompile(`\b([a-z]{3,}(?:\s+[a-z]+)*?)\s+(?:no valor|valor|de|em)\s+(?:de\s|r\$|\d)`),
}

var compraPrefix = regexp.MustCompile(`^compra(?:\s+de(?:\s+(?:um|uma))?)?\s+`)

// Description derives a short title-cased label from normalized text.
func Description(normalized string, typ transaction.Type) string {
	desc := stripNoise(normalized)

	if product := productPhrase(normalized); product != "" {
		desc = product
	}

	desc = compraPrefix.ReplaceAllString(desc, "")

	words := strings.Fields(desc)
	if len(words) > maxDescriptionWords {
		words = words[:maxDescriptionWords]
	}

	desc = textnorm.TitleCase(strings.Join(words, " "))
	if len(desc) < 3 {
		return DefaultDescription(typ)
	}

	return desc
}

// DefaultDescription is the label used when nothing descriptive survives.
func DefaultDescription(typ transaction.Type) string {
	if typ == transaction.TypeIncome {
		return DefaultIncomeDescription
	}

	return DefaultExpenseDescription
}

func stripNoise(text string) string {
	for _, re := range descriptionStages {
		text = strings.TrimSpace(re.ReplaceAllString(text, " "))
	}

	kept := make([]string, 0, 8)

	for _, w := range strings.Fields(text) {
		if _, stop := descriptionStopwords[w]; stop {
			continue
		}

		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

func productPhrase(text string) string {
	for _, re := range productPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		product := stripNoise(m[1])
		if len(product) < 3 || len(product) >= 50 {
			continue
		}

		if _, rejected := rejectedProducts[product]; rejected {
			continue
		}

		return product
	}

	return ""
}
