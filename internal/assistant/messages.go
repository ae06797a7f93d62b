package assistant

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

const (
	categoryPrompt = "Qual categoria para esta despesa?"
	successMessage = "Transação criada com sucesso!"
)

var (
	missingAmount = MissingInfo{
		Field:       "amount",
		Description: "Valor da transação",
		Suggestion:  "Por favor, informe o valor. Ex: '50 reais', 'R$ 1500', 'valor de 300'",
	}
	missingStartDate = MissingInfo{
		Field:       "startDate",
		Description: "Data de início das parcelas",
		Suggestion:  "Por favor, informe quando começa o pagamento. Ex: 'dia 15', 'no dia 10/12', 'hoje', 'ontem', 'começando em janeiro'",
	}
	missingDate = MissingInfo{
		Field:       "date",
		Description: "Data da transação",
		Suggestion:  "Por favor, informe a data. Ex: 'hoje', 'ontem', 'dia 15', '15/11', 'amanhã'",
	}
)

// brl renders an amount the way Brazilian users write it: "R$ 1500,00".
func brl(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func typeLabel(t transaction.Type) string {
	if t == transaction.TypeIncome {
		return "Receita"
	}

	return "Despesa"
}

func needsInfoPrompt(missing []MissingInfo, installments int, amount decimal.NullDecimal) string {
	var b strings.Builder

	b.WriteString("Para criar sua transação, preciso de mais algumas informações:\n\n")

	for i, m := range missing {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "• %s: %s", m.Description, m.Suggestion)
	}

	if installments > 1 {
		value := "[valor]"
		if amount.Valid {
			value = brl(amount.Decimal)
		}

		b.WriteString("\n\n💡 Dica: Para compras parceladas, você pode informar assim:\n")
		fmt.Fprintf(&b, "\"Fiz uma compra de %s em %dx começando no dia 15\"", value, installments)
	}

	return b.String()
}

func confirmationPrompt(d Draft) string {
	var b strings.Builder

	b.WriteString("Por favor, confirme os dados da transação:\n\n")
	fmt.Fprintf(&b, "• Descrição: %s\n", d.Description)

	if d.HasInstallments() {
		fmt.Fprintf(&b, "• Valor por parcela: %s\n", brl(d.Amount))
		fmt.Fprintf(&b, "• Parcelas: %dx de %s (Total: %s)\n", d.TotalInstallments, brl(d.Amount), brl(d.Total()))
	} else {
		fmt.Fprintf(&b, "• Valor: %s\n", brl(d.Amount))
	}

	fmt.Fprintf(&b, "• Data: %s\n", d.Date.Format("02/01/2006"))
	fmt.Fprintf(&b, "• Tipo: %s\n", typeLabel(d.Type))

	if d.Category != nil {
		fmt.Fprintf(&b, "• Categoria: %s\n", d.Category.Name)
	}

	b.WriteString("\nOs dados estão corretos?")

	return b.String()
}

func successPrompt(d Draft) string {
	if d.HasInstallments() {
		return fmt.Sprintf("%s Criada compra parcelada de %d parcelas de %s cada (total: %s).",
			successMessage, d.TotalInstallments, brl(d.Amount), brl(d.Total()))
	}

	return fmt.Sprintf("%s %s de %s registrada.", successMessage, typeLabel(d.Type), brl(d.Amount))
}
