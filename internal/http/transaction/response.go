package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type transactionResponse struct {
	ID             uuid.UUID          `json:"id"`
	Amount         decimal.Decimal    `json:"amount"`
	Type           transaction.Type   `json:"type"`
	Status         transaction.Status `json:"status"`
	Description    string             `json:"description"`
	RawDescription string             `json:"raw_description,omitempty"`
	Date           string             `json:"date"`
	IsPaid         bool               `json:"is_paid"`
	CategoryID     *uuid.UUID         `json:"category_id,omitempty"`
	Installment    *installmentInfo   `json:"installment,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      *time.Time         `json:"updated_at,omitempty"`
}

type installmentInfo struct {
	GroupID uuid.UUID `json:"group_id"`
	Number  int       `json:"number"`
	Total   int       `json:"total"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:             tx.ID,
		Amount:         tx.Amount,
		Type:           tx.Type,
		Status:         tx.Status,
		Description:    tx.Description,
		RawDescription: tx.RawDescription,
		Date:           tx.Date.Format(time.DateOnly),
		IsPaid:         tx.IsPaid,
		CategoryID:     tx.CategoryID,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}

	if tx.GroupID != nil {
		resp.Installment = &installmentInfo{
			GroupID: *tx.GroupID,
			Number:  tx.Installment,
			Total:   tx.TotalInstallments,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
