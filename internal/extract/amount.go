package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

// number matches "1.500,00" style grouped values before plain "80", "80,5" or "166.67".
const number = `(\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d+(?:[,.]\d{1,2})?)`

var thousandsOnly = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)

// amountRule binds one pattern to the submatch holding the number. A rule with
// skip set rejects individual matches and moves on to the next one.
type amountRule struct {
	name    string
	pattern *regexp.Regexp
	skip    func(text string, loc []int) bool
}

// amountRules are tried in order; the first rule yielding a parseable number wins.
var amountRules = []amountRule{
	{name: "de_reais", pattern: regexp.MustCompile(`\bde\s+` + number + `\s*reais?\b`)},
	{name: "currency", pattern: regexp.MustCompile(`r\$\s*` + number + `|` + `\b` + number + `\s*(?:reais?\b|rs\b|r\$)`)},
	{name: "valor_de", pattern: regexp.MustCompile(`\bvalor\s+(?:de\s+)?(?:r\$\s*)?` + number)},
	{name: "before_installments", pattern: regexp.MustCompile(`\b` + number + `\s+em\s+\d+`)},
	{name: "bare", pattern: regexp.MustCompile(`\b(\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d{2,}(?:[,.]\d{1,2})?)\b`), skip: notAnAmount},
}

var (
	installmentSuffix = regexp.MustCompile(`^\s*(?:x\b|vezes\b|parcelas?\b)`)
	dayPrefix         = regexp.MustCompile(`\bdia\s*$`)
)

// notAnAmount rejects bare numbers that are installment counts, day numbers or
// parts of a D/M date.
func notAnAmount(text string, loc []int) bool {
	start, end := loc[2], loc[3]

	if start > 0 && text[start-1] == '/' {
		return true
	}

	if end < len(text) && text[end] == '/' {
		return true
	}

	if installmentSuffix.MatchString(text[end:]) {
		return true
	}

	return dayPrefix.MatchString(text[:start])
}

// Amount extracts a monetary amount from normalized text. It returns an invalid
// NullDecimal when no rule matches.
func Amount(normalized string) decimal.NullDecimal {
	for _, rule := range amountRules {
		for _, loc := range rule.pattern.FindAllStringSubmatchIndex(normalized, -1) {
			raw := firstGroup(normalized, loc)
			if raw == "" {
				continue
			}

			if rule.skip != nil && rule.skip(normalized, groupLoc(loc)) {
				continue
			}

			if d, ok := ParseNumber(raw); ok {
				return decimal.NewNullDecimal(d)
			}
		}
	}

	return decimal.NullDecimal{}
}

// ParseNumber parses a Brazilian formatted number: "1.500,00", "1.500", "80,5", "80.50".
func ParseNumber(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case thousandsOnly.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

var installmentRules = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d+)\s*x\b`),
	regexp.MustCompile(`\bem\s+(\d+)\s*x\b`),
	regexp.MustCompile(`\b(\d+)\s+vezes\b`),
	regexp.MustCompile(`\b(\d+)\s+parcelas?\b`),
}

// Installments returns the declared installment count, or 0 when the text does
// not describe between 2 and transaction.MaxInstallments installments.
func Installments(normalized string) int {
	for _, re := range installmentRules {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 1 || n > transaction.MaxInstallments {
			continue
		}

		return n
	}

	return 0
}

var (
	wordEm        = wordMatcher("em")
	wordParcelado = regexp.MustCompile(`\bparcelad[oa]\b`)
	wordValor     = wordMatcher("valor")
	hundred       = decimal.NewFromInt(100)
)

// Disambiguate decides whether amount is the purchase total or already the
// per-installment value and returns the per-installment amount. wasTotal reports
// whether amount was divided. Callers only use it when installments > 1.
func Disambiguate(amount decimal.Decimal, installments int, normalized string) (perInstallment decimal.Decimal, wasTotal bool) {
	if installments <= 1 {
		return amount, false
	}

	n := decimal.NewFromInt(int64(installments))
	integral := amount.Equal(amount.Truncate(0))
	hasEm := wordEm.MatchString(normalized)

	total := func() (decimal.Decimal, bool) {
		return amount.DivRound(n, 2), true
	}

	switch {
	case integral && hasEm:
		return total()
	case integral && wordParcelado.MatchString(normalized):
		return total()
	case integral && wordValor.MatchString(normalized):
		return total()
	case !integral && unevenSplit(amount, n):
		return amount, false
	case hasEm && amount.GreaterThan(hundred):
		return total()
	}

	return total()
}

// unevenSplit reports whether amount/n needs more than two decimal places.
func unevenSplit(amount, n decimal.Decimal) bool {
	q := amount.Div(n)
	return !q.Equal(q.Round(2))
}

func firstGroup(s string, loc []int) string {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 {
			return s[loc[i]:loc[i+1]]
		}
	}

	return ""
}

func groupLoc(loc []int) []int {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 {
			return []int{loc[0], loc[1], loc[i], loc[i+1]}
		}
	}

	return loc
}
