package extract

import (
	"regexp"
	"strings"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/textnorm"
)

// keywordGroup ties the words a user may type to the fragments expected in a
// category name. A group matches when any keyword appears in the text; then any
// fragment found inside a category name selects that category.
type keywordGroup struct {
	keywords  []*regexp.Regexp
	fragments []string
}

func group(words ...string) keywordGroup {
	g := keywordGroup{fragments: words}
	for _, w := range words {
		g.keywords = append(g.keywords, wordMatcher(w))
	}

	return g
}

var categoryGroups = []keywordGroup{
	group("mercado", "supermercado", "compras", "alimentacao"),
	group("televisao", "tv", "eletrodomesticos", "eletronicos"),
	group("restaurante", "comida", "lanche", "jantar", "almoco"),
	group("transporte", "combustivel", "gasolina", "uber", "taxi"),
	group("saude", "medico", "farmacia", "medicamento"),
	group("educacao", "curso", "escola", "faculdade"),
	group("lazer", "cinema", "viagem", "turismo"),
	group("vestuario", "roupa", "roupas", "calcado"),
	group("moradia", "aluguel", "condominio", "energia", "luz", "agua"),
	group("salario", "renda", "trabalho"),
	group("venda", "recebimento", "pagamento"),
}

// Category picks the category the text refers to. cats should already be limited
// to the user's categories of the detected type. Keyword groups are tried across
// the whole table before falling back to raw token containment.
func Category(normalized string, cats []category.Category) *category.Category {
	if len(cats) == 0 || normalized == "" {
		return nil
	}

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = textnorm.Normalize(c.Name)
	}

	for _, g := range categoryGroups {
		if !g.matches(normalized) {
			continue
		}

		for i, name := range names {
			if name == "" {
				continue
			}

			for _, f := range g.fragments {
				if strings.Contains(name, f) {
					return &cats[i]
				}
			}
		}
	}

	for _, tok := range textnorm.Words(normalized) {
		if len(tok) <= 3 {
			continue
		}

		for i, name := range names {
			if name != "" && strings.Contains(name, tok) {
				return &cats[i]
			}
		}
	}

	return nil
}

func (g keywordGroup) matches(text string) bool {
	for _, re := range g.keywords {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}
