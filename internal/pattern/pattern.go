package pattern

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

// LearnedPattern records one external extraction attempt for a user's text.
// Rows are append-only.
type LearnedPattern struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	OriginalText         string
	NormalizedText       string
	Type                 transaction.Type
	Amount               decimal.NullDecimal
	AmountPerInstallment decimal.NullDecimal
	Installments         *int
	Description          string
	TransactionDate      *time.Time
	CategoryID           *uuid.UUID
	CategoryName         string
	LearnedPatterns      []string
	IsProcessed          bool
	Confidence           *float64
	ProcessingNotes      string
	CreatedAt            time.Time
}

// ConfidenceOrZero returns the confidence score, treating absence as 0.
func (p *LearnedPattern) ConfidenceOrZero() float64 {
	if p.Confidence == nil {
		return 0
	}

	return *p.Confidence
}
