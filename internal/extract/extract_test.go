package extract_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/extract"
	"github.com/MrJamesThe3rd/texttx/internal/textnorm"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

// Thursday.
var today = time.Date(2024, 11, 14, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestType(t *testing.T) {
	type testCase struct {
		name string
		text string
		want transaction.Type
	}

	tests := []testCase{
		{name: "Expense", text: "gastei 50 no mercado", want: transaction.TypeExpense},
		{name: "Income", text: "recebi 3000 de salario", want: transaction.TypeIncome},
		{name: "IncomeWinsOverExpense", text: "paguei a conta com a venda do carro", want: transaction.TypeIncome},
		{name: "DefaultExpense", text: "uber 25 reais", want: transaction.TypeExpense},
		{name: "PluralPrefix", text: "compras do mes", want: transaction.TypeExpense},
		{name: "NoMidWordMatch", text: "prendas de natal", want: transaction.TypeExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.Type(textnorm.Normalize(tt.text)))
		})
	}
}

func TestAmount(t *testing.T) {
	type testCase struct {
		name string
		text string
		want string
	}

	tests := []testCase{
		{name: "DeReaisBeatsCatchAll", text: "comprei um livro de 80 reais", want: "80"},
		{name: "CurrencyPrefix", text: "paguei R$ 45,90 na farmácia", want: "45.9"},
		{name: "CurrencySuffix", text: "uber 32,50 reais", want: "32.5"},
		{name: "Thousands", text: "comprei uma tv de R$ 1.500,00", want: "1500"},
		{name: "ValorDe", text: "gastei com mercado o valor de 120", want: "120"},
		{name: "BeforeInstallments", text: "comprei uma tv de 1500 em 10x", want: "1500"},
		{name: "CommaDecimalBeforeInstallments", text: "paguei 166,67 em 9x", want: "166.67"},
		{name: "BareNumber", text: "almoço 35", want: "35"},
		{name: "BareSkipsDate", text: "almoço dia 12 custou 48", want: "48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Amount(textnorm.Normalize(tt.text))
			require.True(t, got.Valid)
			assert.True(t, got.Decimal.Equal(decimal.RequireFromString(tt.want)), "got %s", got.Decimal)
		})
	}
}

func TestAmount_NoMatch(t *testing.T) {
	for _, text := range []string{"gastei com mercado", "comprei uma tv em 10x", "paguei 5", ""} {
		assert.False(t, extract.Amount(textnorm.Normalize(text)).Valid, text)
	}
}

func TestInstallments(t *testing.T) {
	type testCase struct {
		text string
		want int
	}

	tests := []testCase{
		{text: "comprei uma tv de 1500 em 10x", want: 10},
		{text: "geladeira 3 vezes", want: 3},
		{text: "sofa em 12 parcelas", want: 12},
		{text: "notebook 1x", want: 0},
		{text: "2 xicaras de cafe", want: 0},
		{text: "mercado 50 reais", want: 0},
		{text: "financiamento em 360x", want: 360},
		{text: "financiamento em 361x", want: 0},
		{text: "tv em 9223372036854775807x", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.Installments(textnorm.Normalize(tt.text)))
		})
	}
}

func TestDisambiguate(t *testing.T) {
	type testCase struct {
		name         string
		text         string
		amount       string
		installments int
		wantPer      string
		wantTotal    bool
	}

	tests := []testCase{
		{name: "IntegralWithEm", text: "comprei uma tv de 1500 em 10x", amount: "1500", installments: 10, wantPer: "150", wantTotal: true},
		{name: "UglySplitIsPerInstallment", text: "paguei 166,67 em 9x", amount: "166.67", installments: 9, wantPer: "166.67"},
		{name: "Parcelado", text: "geladeira 2000 parcelado 3x", amount: "2000", installments: 3, wantPer: "666.67", wantTotal: true},
		{name: "Valor", text: "valor 900 3x", amount: "900", installments: 3, wantPer: "300", wantTotal: true},
		{name: "EvenFractionalSplit", text: "curso 100,50 3x", amount: "100.50", installments: 3, wantPer: "33.5", wantTotal: true},
		{name: "FractionalOverHundredWithEm", text: "curso 300,30 em 3x", amount: "300.30", installments: 3, wantPer: "100.1", wantTotal: true},
		{name: "SingleInstallment", text: "mercado 50", amount: "50", installments: 1, wantPer: "50"},
		{name: "UnevenTotal", text: "gastei no mercado 1500 em 9x", amount: "1500", installments: 9, wantPer: "166.67", wantTotal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			per, total := extract.Disambiguate(decimal.RequireFromString(tt.amount), tt.installments, textnorm.Normalize(tt.text))
			assert.True(t, per.Equal(decimal.RequireFromString(tt.wantPer)), "got %s", per)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestDate(t *testing.T) {
	type testCase struct {
		name string
		text string
		want *time.Time
	}

	tests := []testCase{
		{name: "Yesterday", text: "gastei 20 ontem", want: new(day(2024, 11, 13))},
		{name: "DayBeforeYesterday", text: "paguei 20 anteontem", want: new(day(2024, 11, 12))},
		{name: "DayBeforeYesterdayHyphen", text: "paguei 20 ante-ontem", want: new(day(2024, 11, 12))},
		{name: "WeekdayPast", text: "gastei com uber na segunda", want: new(day(2024, 11, 11))},
		{name: "SameWeekdayIsLastWeek", text: "jantar na quinta", want: new(day(2024, 11, 7))},
		{name: "OrdinalIsNotWeekday", text: "segunda parcela hoje", want: new(day(2024, 11, 14))},
		{name: "DayOfMonth", text: "no dia 15 de dezembro", want: new(day(2024, 12, 15))},
		{name: "DayOfMonthRollsYear", text: "primeira parcela no dia 10 de março", want: new(day(2025, 3, 10))},
		{name: "DayOfMonthBeatsBareDay", text: "dia 3 vence, primeira no dia 15 de dezembro", want: new(day(2024, 12, 15))},
		{name: "MonthAlone", text: "começando em janeiro", want: new(day(2025, 1, 15))},
		{name: "MonthAloneCurrent", text: "curso em novembro", want: new(day(2024, 11, 15))},
		{name: "BareDayFuture", text: "conta de luz dia 20", want: new(day(2024, 11, 20))},
		{name: "BareDayRollsToNextMonth", text: "conta de luz dia 5", want: new(day(2024, 12, 5))},
		{name: "BareDayPastMarker", text: "paguei a luz dia 5", want: new(day(2024, 11, 5))},
		{name: "NumericFullYear", text: "mercado 15/10/2023", want: new(day(2023, 10, 15))},
		{name: "NumericShortYear", text: "mercado 15/10/24", want: new(day(2024, 10, 15))},
		{name: "NumericRollsYear", text: "consulta 10/02", want: new(day(2025, 2, 10))},
		{name: "NumericPastMarker", text: "gastei 30 em 10/02", want: new(day(2024, 2, 10))},
		{name: "Today", text: "almoço 30 hoje", want: new(day(2024, 11, 14))},
		{name: "Tomorrow", text: "boleto amanhã", want: new(day(2024, 11, 15))},
		{name: "None", text: "gastei com mercado", want: nil},
		{name: "InvalidNumericDate", text: "vence 31/02", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Date(textnorm.Normalize(tt.text), today)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestCategory(t *testing.T) {
	userID := uuid.New()
	cats := []category.Category{
		{ID: uuid.New(), UserID: userID, Name: "Alimentação", Type: transaction.TypeExpense},
		{ID: uuid.New(), UserID: userID, Name: "Supermercado", Type: transaction.TypeExpense},
		{ID: uuid.New(), UserID: userID, Name: "Transporte", Type: transaction.TypeExpense},
		{ID: uuid.New(), UserID: userID, Name: "Pets", Type: transaction.TypeExpense},
		{ID: uuid.New(), UserID: userID, Name: "", Type: transaction.TypeExpense},
	}

	type testCase struct {
		name string
		text string
		want string
	}

	tests := []testCase{
		{name: "KeywordGroupFirstCategoryInOrder", text: "gastei com mercado 50 reais", want: "Alimentação"},
		{name: "KeywordGroupSynonym", text: "uber 25 reais", want: "Transporte"},
		{name: "TokenFallback", text: "racao na loja de pets", want: "Pets"},
		{name: "NoMatch", text: "comprei um livro", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Category(textnorm.Normalize(tt.text), cats)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestCategory_EmptyInputs(t *testing.T) {
	assert.Nil(t, extract.Category("mercado", nil))
	assert.Nil(t, extract.Category("", []category.Category{{Name: "Mercado"}}))
}

func TestDescription(t *testing.T) {
	type testCase struct {
		name string
		text string
		typ  transaction.Type
		want string
	}

	tests := []testCase{
		{name: "VerbAnchored", text: "comprei um livro de 80 reais", want: "Livro"},
		{name: "InstallmentPurchase", text: "comprei uma tv de 1500 em 10x", want: "Tv"},
		{name: "ComPhrase", text: "gastei com mercado o valor de 50 reais", want: "Mercado"},
		{name: "ComPhraseDropsDate", text: "gastei com uber na segunda", want: "Uber"},
		{name: "CompraDeUma", text: "fiz uma compra de uma geladeira nova em 5x", want: "Geladeira Nova"},
		{name: "Truncated", text: "comprei uma mesa de jantar grande de madeira de 900 reais", want: "Mesa"},
		{name: "NothingLeft", text: "paguei 166,67 em 9x", want: "Compra"},
		{name: "IncomeDefault", text: "recebi 200", typ: transaction.TypeIncome, want: "Receita"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := tt.typ
			if typ == "" {
				typ = transaction.TypeExpense
			}

			assert.Equal(t, tt.want, extract.Description(textnorm.Normalize(tt.text), typ))
		})
	}
}

func TestSimilarity(t *testing.T) {
	type testCase struct {
		name    string
		a, b    string
		atLeast float64
		below   float64
	}

	tests := []testCase{
		{name: "Identical", a: "paguei internet 100", b: "paguei internet 100", atLeast: 1},
		{name: "SameBillDifferentWording", a: "paguei internet vivo mensal", b: "paguei internet vivo mensalidade", atLeast: 0.8},
		{name: "Unrelated", a: "comprei tenis novo", b: "paguei aluguel apartamento", below: 0.5},
		{name: "Empty", a: "", b: "mercado", below: 0.01},
		{name: "ContainedWordCounts", a: "supermercado", b: "mercado", atLeast: 1},
		{name: "ShortContainedWordIgnored", a: "compras", b: "com", below: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Similarity(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)

			if tt.atLeast > 0 {
				assert.GreaterOrEqual(t, got, tt.atLeast)
			}

			if tt.below > 0 {
				assert.Less(t, got, tt.below)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	cats := []category.Category{
		{ID: uuid.New(), Name: "Eletrônicos", Type: transaction.TypeExpense},
		{ID: uuid.New(), Name: "Salário", Type: transaction.TypeIncome},
	}

	got := extract.Analyze(textnorm.Normalize("comprei uma TV de 1500 em 10x hoje"), today, cats)

	assert.Equal(t, transaction.TypeExpense, got.Type)
	assert.Equal(t, 10, got.Installments)
	require.True(t, got.HasAmount())
	assert.True(t, got.Amount.Decimal.Equal(decimal.NewFromInt(150)))
	require.NotNil(t, got.Date)
	assert.Equal(t, day(2024, 11, 14), *got.Date)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, cats[0].ID, *got.CategoryID)
	assert.Equal(t, "Tv", got.Description)
	require.True(t, got.Total.Valid)
	assert.True(t, got.Total.Decimal.Equal(decimal.NewFromInt(1500)))
}

func TestAnalyze_PerInstallmentHasNoTotal(t *testing.T) {
	got := extract.Analyze(textnorm.Normalize("paguei 166,67 em 9x hoje"), today, nil)

	assert.Equal(t, 9, got.Installments)
	assert.True(t, got.Amount.Decimal.Equal(decimal.RequireFromString("166.67")))
	assert.False(t, got.Total.Valid)
}
