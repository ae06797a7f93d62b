package llm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

// HistoryItem is a past extraction sent to the provider as an example.
type HistoryItem struct {
	Text        string
	Type        transaction.Type
	Amount      decimal.NullDecimal
	Description string
}

// CategoryOption is a category the provider may pick by ID.
type CategoryOption struct {
	ID   uuid.UUID
	Name string
	Type transaction.Type
}

type ExtractionRequest struct {
	OriginalText   string
	NormalizedText string
	History        []HistoryItem
	Categories     []CategoryOption
	Today          time.Time
}

// Extraction is the provider's structured reading of a message. Amount is the
// purchase total; AmountPerInstallment is set for installment purchases.
type Extraction struct {
	Type                 string              `json:"type"`
	Amount               decimal.NullDecimal `json:"amount"`
	AmountPerInstallment decimal.NullDecimal `json:"amountPerInstallment"`
	Installments         *int                `json:"installments"`
	Description          string              `json:"description"`
	Date                 *string             `json:"date"`
	CategoryID           *string             `json:"categoryId"`
	CategoryName         string              `json:"categoryName"`
	Confidence           float64             `json:"confidence"`
	Patterns             []string            `json:"patterns"`
	Notes                string              `json:"notes"`
}

func (e *Extraction) TransactionType() transaction.Type {
	if strings.EqualFold(e.Type, "income") {
		return transaction.TypeIncome
	}

	return transaction.TypeExpense
}

// ParsedDate returns the ISO date the provider reported, or nil when absent or malformed.
func (e *Extraction) ParsedDate(loc *time.Location) *time.Time {
	if e.Date == nil {
		return nil
	}

	d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(*e.Date), loc)
	if err != nil {
		return nil
	}

	return &d
}

// ParsedCategoryID returns the category ID the provider picked, or nil.
func (e *Extraction) ParsedCategoryID() *uuid.UUID {
	if e.CategoryID == nil {
		return nil
	}

	id, err := uuid.Parse(strings.TrimSpace(*e.CategoryID))
	if err != nil {
		return nil
	}

	return &id
}
