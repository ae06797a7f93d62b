package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

// MaxInstallments bounds how many monthly installments one purchase may span.
const MaxInstallments = 360

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Status represents the lifecycle state of a transaction.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Transaction represents a persisted financial transaction. Purchases split in
// installments produce one Transaction per installment sharing a GroupID.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Amount            decimal.Decimal
	Type              Type
	Status            Status
	Description       string
	RawDescription    string
	Date              time.Time
	IsPaid            bool
	CategoryID        *uuid.UUID
	GroupID           *uuid.UUID
	Installment       int
	TotalInstallments int
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
}
