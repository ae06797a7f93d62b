// Package extract holds the pure field extractors that turn normalized Portuguese
// text into transaction fields. Nothing here performs I/O or reads the clock.
package extract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

// Candidate is the output of one extraction run. Every field may be absent:
// Amount.Valid false, Installments 0, Date nil, CategoryID nil, Description "".
// Amount is per installment; Total is set only when the message stated the
// purchase total that Amount was split from.
type Candidate struct {
	Type         transaction.Type
	Amount       decimal.NullDecimal
	Total        decimal.NullDecimal
	Installments int
	Date         *time.Time
	CategoryID   *uuid.UUID
	CategoryName string
	Description  string
}

// HasAmount reports whether the candidate carries a usable positive amount.
func (c Candidate) HasAmount() bool {
	return c.Amount.Valid && c.Amount.Decimal.IsPositive()
}

// Analyze runs the full heuristic pipeline over normalized text. Only categories
// of the detected type are considered.
func Analyze(normalized string, today time.Time, cats []category.Category) Candidate {
	c := Candidate{
		Type:         Type(normalized),
		Installments: Installments(normalized),
		Date:         Date(normalized, today),
	}

	if amount := Amount(normalized); amount.Valid {
		c.Amount = amount

		if c.Installments > 1 {
			c.SplitAmount(amount.Decimal, normalized)
		}
	}

	if cat := Category(normalized, OfType(cats, c.Type)); cat != nil {
		c.CategoryID = &cat.ID
		c.CategoryName = cat.Name
	}

	c.Description = Description(normalized, c.Type)

	return c
}

// SplitAmount sets amount on the candidate, dividing it across the declared
// installments when it reads as the purchase total.
func (c *Candidate) SplitAmount(amount decimal.Decimal, normalized string) {
	per, wasTotal := Disambiguate(amount, c.Installments, normalized)

	c.Amount = decimal.NewNullDecimal(per)
	c.Total = decimal.NullDecimal{}

	if wasTotal {
		c.Total = decimal.NewNullDecimal(amount)
	}
}

// OfType filters cats down to the given transaction type.
func OfType(cats []category.Category, typ transaction.Type) []category.Category {
	out := make([]category.Category, 0, len(cats))

	for _, c := range cats {
		if c.Type == typ {
			out = append(out, c)
		}
	}

	return out
}
