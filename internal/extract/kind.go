package extract

import (
	"regexp"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

var (
	incomeKeywords = []string{
		"recebi", "ganhei", "entrou", "salario", "renda", "pagamento recebido", "venda", "vendi", "lucro",
	}

	expenseKeywords = []string{
		"gastei", "comprei", "paguei", "despesa", "compra", "gasto", "adquiri", "adquirir", "adquiriu", "adquirimos",
	}

	incomeMatchers  = wordPrefixMatchers(incomeKeywords)
	expenseMatchers = wordPrefixMatchers(expenseKeywords)
)

// Type classifies text as income or expense. Income keywords are checked first in
// list order; text with no keyword is an expense.
func Type(normalized string) transaction.Type {
	for _, re := range incomeMatchers {
		if re.MatchString(normalized) {
			return transaction.TypeIncome
		}
	}

	for _, re := range expenseMatchers {
		if re.MatchString(normalized) {
			return transaction.TypeExpense
		}
	}

	return transaction.TypeExpense
}

// wordPrefixMatchers anchors each keyword at a word start so "compra" matches
// "compras" but "renda" does not match "prendas".
func wordPrefixMatchers(keywords []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(keywords))
	for i, k := range keywords {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(k))
	}

	return out
}

func wordMatcher(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}
