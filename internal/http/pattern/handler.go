package pattern

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
	"github.com/MrJamesThe3rd/texttx/internal/pattern"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type Handler struct {
	svc *pattern.Service
}

func NewHandler(svc *pattern.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/similar", h.similar)
}

type patternResponse struct {
	ID                   uuid.UUID           `json:"id"`
	OriginalText         string              `json:"original_text"`
	Type                 transaction.Type    `json:"type"`
	Amount               decimal.NullDecimal `json:"amount"`
	AmountPerInstallment decimal.NullDecimal `json:"amount_per_installment"`
	Installments         *int                `json:"installments,omitempty"`
	Description          string              `json:"description,omitempty"`
	CategoryID           *uuid.UUID          `json:"category_id,omitempty"`
	CategoryName         string              `json:"category_name,omitempty"`
	IsProcessed          bool                `json:"is_processed"`
	Confidence           *float64            `json:"confidence,omitempty"`
	Notes                string              `json:"notes,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
}

func toResponseList(ps []*pattern.LearnedPattern) []patternResponse {
	resp := make([]patternResponse, len(ps))

	for i, p := range ps {
		resp[i] = patternResponse{
			ID:                   p.ID,
			OriginalText:         p.OriginalText,
			Type:                 p.Type,
			Amount:               p.Amount,
			AmountPerInstallment: p.AmountPerInstallment,
			Installments:         p.Installments,
			Description:          p.Description,
			CategoryID:           p.CategoryID,
			CategoryName:         p.CategoryName,
			IsProcessed:          p.IsProcessed,
			Confidence:           p.Confidence,
			Notes:                p.ProcessingNotes,
			CreatedAt:            p.CreatedAt,
		}
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	ps, err := h.svc.All(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list patterns", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeList(w, ps)
}

func (h *Handler) similar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	if keyword == "" {
		http.Error(w, "keyword query parameter is required", http.StatusBadRequest)
		return
	}

	ps, err := h.svc.Similar(r.Context(), userID, keyword)
	if err != nil {
		slog.Error("failed to find similar patterns", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeList(w, ps)
}

func writeList(w http.ResponseWriter, ps []*pattern.LearnedPattern) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
