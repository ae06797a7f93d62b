package assistant

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type extractRequest struct {
	Text         string `json:"text"`
	PreviousText string `json:"previous_text"`
}

// draftPayload travels to the client with each prompt and comes back unchanged
// with the category choice or the confirmation.
type draftPayload struct {
	Description       string           `json:"description"`
	RawText           string           `json:"raw_text,omitempty"`
	Amount            decimal.Decimal  `json:"amount"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	Type              transaction.Type `json:"type"`
	Date              string           `json:"date"`
	IsPaid            bool             `json:"is_paid"`
	CategoryID        *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName      string           `json:"category_name,omitempty"`
	TotalInstallments int              `json:"total_installments"`
}

func toDraftPayload(d assistant.Draft) *draftPayload {
	p := &draftPayload{
		Description:       d.Description,
		RawText:           d.RawText,
		Amount:            d.Amount,
		TotalAmount:       d.Total(),
		Type:              d.Type,
		Date:              d.Date.Format(time.DateOnly),
		IsPaid:            d.IsPaid,
		TotalInstallments: d.TotalInstallments,
	}

	if d.Category != nil {
		p.CategoryID = &d.Category.ID
		p.CategoryName = d.Category.Name
	}

	return p
}

// toDraft rebuilds a draft from the client. The category is only a reference;
// the service reloads and verifies it.
func (p *draftPayload) toDraft() (assistant.Draft, error) {
	if p == nil {
		return assistant.Draft{}, assistant.ErrInvalidDraft
	}

	date, err := time.Parse(time.DateOnly, p.Date)
	if err != nil {
		return assistant.Draft{}, fmt.Errorf("%w: date must be YYYY-MM-DD", assistant.ErrInvalidDraft)
	}

	if p.TotalInstallments < 0 || p.TotalInstallments > transaction.MaxInstallments {
		return assistant.Draft{}, fmt.Errorf("%w: total_installments must be at most %d", assistant.ErrInvalidDraft, transaction.MaxInstallments)
	}

	d := assistant.Draft{
		Description:       p.Description,
		RawText:           p.RawText,
		Amount:            p.Amount,
		Type:              p.Type,
		Date:              date,
		IsPaid:            p.IsPaid,
		TotalInstallments: p.TotalInstallments,
	}

	if p.CategoryID != nil {
		d.Category = &category.Category{ID: *p.CategoryID}
	}

	// A total only survives the round trip when it still splits into Amount.
	if d.HasInstallments() {
		n := decimal.NewFromInt(int64(d.TotalInstallments))
		if p.TotalAmount.IsPositive() && p.TotalAmount.DivRound(n, 2).Equal(p.Amount) {
			d.StatedTotal = decimal.NewNullDecimal(p.TotalAmount)
		}
	}

	return d, nil
}

type selectCategoryRequest struct {
	Draft      *draftPayload `json:"draft"`
	CategoryID uuid.UUID     `json:"category_id"`
}

type confirmRequest struct {
	Draft *draftPayload `json:"draft"`
}

type missingResponse struct {
	Field       string `json:"field"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

type categoryOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type outcomeResponse struct {
	Kind           string            `json:"kind"`
	Prompt         string            `json:"prompt,omitempty"`
	Message        string            `json:"message,omitempty"`
	Text           string            `json:"text,omitempty"`
	Missing        []missingResponse `json:"missing,omitempty"`
	Draft          *draftPayload     `json:"draft,omitempty"`
	Categories     []categoryOption  `json:"categories,omitempty"`
	TransactionIDs []uuid.UUID       `json:"transaction_ids,omitempty"`
}

func toOutcomeResponse(out assistant.Outcome) outcomeResponse {
	resp := outcomeResponse{Kind: out.Kind()}

	switch o := out.(type) {
	case assistant.NeedsInfo:
		resp.Prompt = o.Prompt
		resp.Text = o.Text

		for _, m := range o.Missing {
			resp.Missing = append(resp.Missing, missingResponse(m))
		}
	case assistant.NeedsCategory:
		resp.Prompt = o.Prompt
		resp.Draft = toDraftPayload(o.Draft)
		resp.Categories = make([]categoryOption, len(o.Categories))

		for i, c := range o.Categories {
			resp.Categories[i] = categoryOption{ID: c.ID, Name: c.Name}
		}
	case assistant.NeedsConfirmation:
		resp.Prompt = o.Prompt
		resp.Draft = toDraftPayload(o.Draft)
	case assistant.Success:
		resp.Message = o.Message

		for _, tx := range o.Transactions {
			resp.TransactionIDs = append(resp.TransactionIDs, tx.ID)
		}
	}

	return resp
}

type trainResponse struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}
