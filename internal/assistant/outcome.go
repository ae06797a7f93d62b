package assistant

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

// Draft is a not yet persisted transaction. Amount is per installment.
// StatedTotal holds the purchase total the user typed when Amount was split
// from it.
type Draft struct {
	Description       string
	RawText           string
	Amount            decimal.Decimal
	Type              transaction.Type
	Date              time.Time
	Category          *category.Category
	IsPaid            bool
	TotalInstallments int
	StatedTotal       decimal.NullDecimal
}

// Total is the purchase total across all installments: the stated total when
// there is one, otherwise Amount times the installment count.
func (d Draft) Total() decimal.Decimal {
	if d.HasInstallments() && d.StatedTotal.Valid {
		return d.StatedTotal.Decimal
	}

	return d.Amount.Mul(decimal.NewFromInt(int64(max(d.TotalInstallments, 1))))
}

func (d Draft) HasInstallments() bool {
	return d.TotalInstallments > 1
}

// MissingInfo names a mandatory field the message did not provide.
type MissingInfo struct {
	Field       string
	Description string
	Suggestion  string
}

// Outcome is one of NeedsInfo, NeedsCategory, NeedsConfirmation or Success.
type Outcome interface {
	outcome()
	Kind() string
}

// NeedsInfo asks for the missing fields. Text is the message processed so far;
// callers send it back as the previous text on the next turn.
type NeedsInfo struct {
	Missing []MissingInfo
	Prompt  string
	Text    string
}

type NeedsCategory struct {
	Draft      Draft
	Categories []category.Category
	Prompt     string
}

type NeedsConfirmation struct {
	Draft  Draft
	Prompt string
}

type Success struct {
	Transactions []*transaction.Transaction
	Message      string
}

func (NeedsInfo) outcome()         {}
func (NeedsCategory) outcome()     {}
func (NeedsConfirmation) outcome() {}
func (Success) outcome()           {}

func (NeedsInfo) Kind() string         { return "needs_info" }
func (NeedsCategory) Kind() string     { return "needs_category" }
func (NeedsConfirmation) Kind() string { return "needs_confirmation" }
func (Success) Kind() string           { return "success" }
