package category

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

type categoryResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Icon      string           `json:"icon,omitempty"`
	Color     string           `json:"color,omitempty"`
	Type      transaction.Type `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
}

func toResponse(c category.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var (
		cats []category.Category
		err  error
	)

	if s := r.URL.Query().Get("type"); s != "" {
		typ := transaction.Type(s)
		if !typ.Valid() {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}

		cats, err = h.svc.ListByType(r.Context(), userID, typ)
	} else {
		cats, err = h.svc.List(r.Context(), userID)
	}

	if err != nil {
		slog.Error("failed to list categories", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createCategoryRequest struct {
	Name  string           `json:"name"`
	Icon  string           `json:"icon"`
	Color string           `json:"color"`
	Type  transaction.Type `json:"type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), userID, category.CreateParams{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
		Type:  req.Type,
	})
	if err != nil {
		if errors.Is(err, category.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to create category", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(*c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
