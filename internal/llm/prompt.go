package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

const extractionSystemPrompt = "Você é um assistente especializado em análise de textos financeiros. " +
	"Sempre responda APENAS em JSON válido, sem texto adicional."

const spellingSystemPrompt = "Você é um corretor ortográfico. Corrija apenas erros de digitação e ortografia. " +
	"Mantenha o mesmo significado e formato. Retorne APENAS a palavra corrigida, sem explicações. " +
	"Use Title Case (primeira letra de cada palavra em maiúscula)."

const extractionInstructions = `INSTRUÇÕES:
1. Identifique o TIPO: EXPENSE (despesa) ou INCOME (receita)
2. Extraia o VALOR (número decimal)
3. Se mencionar parcelas, identifique o número de parcelas e se o valor é total ou por parcela
4. Extraia a DATA (hoje, ontem, segunda, dia 15, 15/11, etc.) no formato YYYY-MM-DD
5. Identifique a CATEGORIA mais apropriada (use o ID da categoria)
6. Extraia uma DESCRIÇÃO concisa (apenas o nome do item/produto, sem verbos ou valores)
7. Calcule um SCORE de confiança (0.0 a 1.0)
8. Identifique PADRÕES únicos no texto que podem ser reutilizados

RESPONDA APENAS EM JSON com este formato:
{
  "type": "EXPENSE" ou "INCOME",
  "amount": valor_total (se parcelado, use valor total),
  "amountPerInstallment": valor_por_parcela (se parcelado),
  "installments": número_parcelas (null se não parcelado),
  "description": "descrição_concisa",
  "date": "YYYY-MM-DD",
  "categoryId": "id_categoria" (null se não encontrada),
  "categoryName": "nome_categoria",
  "confidence": 0.0-1.0,
  "patterns": ["padrão1", "padrão2"],
  "notes": "observações sobre o processamento"
}
`

func buildExtractionPrompt(req ExtractionRequest) string {
	var b strings.Builder

	b.WriteString("Você é um assistente especializado em extrair informações financeiras de textos em português brasileiro.\n\n")
	b.WriteString("TAREFA: Analise o texto do usuário e extraia todas as informações relevantes para criar uma transação financeira.\n\n")

	if !req.Today.IsZero() {
		fmt.Fprintf(&b, "DATA DE HOJE: %s\n\n", req.Today.Format(time.DateOnly))
	}

	fmt.Fprintf(&b, "TEXTO ORIGINAL: %s\n\n", req.OriginalText)
	fmt.Fprintf(&b, "TEXTO NORMALIZADO: %s\n\n", req.NormalizedText)

	if len(req.History) > 0 {
		b.WriteString("PADRÕES HISTÓRICOS DO USUÁRIO (aprenda com estes exemplos):\n")

		for _, h := range req.History {
			amount := "null"
			if h.Amount.Valid {
				amount = h.Amount.Decimal.StringFixed(2)
			}

			fmt.Fprintf(&b, "- Texto: %q → Tipo: %s, Valor: %s, Descrição: %s\n",
				h.Text, providerType(h.Type), amount, h.Description)
		}

		b.WriteString("\n")
	}

	b.WriteString("CATEGORIAS DISPONÍVEIS:\n")

	if len(req.Categories) == 0 {
		b.WriteString("(nenhuma)\n")
	}

	for _, c := range req.Categories {
		fmt.Fprintf(&b, "- ID: %s, Nome: %s, Tipo: %s\n", c.ID, c.Name, providerType(c.Type))
	}

	b.WriteString("\n")
	b.WriteString(extractionInstructions)

	return b.String()
}

func buildSpellingPrompt(text string) string {
	return fmt.Sprintf("Corrija a ortografia desta palavra/item: %q. "+
		"Retorne APENAS a palavra corrigida no formato Title Case (ex: Video Game, Televisão, Gasolina).", text)
}

func providerType(t transaction.Type) string {
	return strings.ToUpper(string(t))
}
