package assistant

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/texttx/internal/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/encoding"
	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
)

// maxTextBytes bounds a single chat message.
const maxTextBytes = 4 << 10

type Handler struct {
	svc *assistant.Service
}

func NewHandler(svc *assistant.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/extract", h.extract)
	r.Post("/category", h.selectCategory)
	r.Post("/confirm", h.confirm)
	r.Post("/train", h.train)
}

// extract accepts JSON, or a text/plain body in any common charset with the
// previous message in the previous_text query parameter.
func (h *Handler) extract(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	req, err := readExtractRequest(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	var out assistant.Outcome
	if req.PreviousText != "" {
		out = h.svc.Continue(r.Context(), userID, req.PreviousText, req.Text)
	} else {
		out = h.svc.Extract(r.Context(), userID, req.Text)
	}

	writeJSON(w, http.StatusOK, toOutcomeResponse(out))
}

func readExtractRequest(w http.ResponseWriter, r *http.Request) (extractRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "text/plain" {
		text, err := encoding.ReadText(r.Body, maxTextBytes)
		if err != nil {
			return extractRequest{}, err
		}

		return extractRequest{Text: text, PreviousText: r.URL.Query().Get("previous_text")}, nil
	}

	var req extractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTextBytes*2)).Decode(&req); err != nil {
		return extractRequest{}, err
	}

	return req, nil
}

func (h *Handler) selectCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var req selectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	draft, err := req.Draft.toDraft()
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.svc.SelectCategory(r.Context(), userID, draft, req.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOutcomeResponse(out))
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	draft, err := req.Draft.toDraft()
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.svc.Confirm(r.Context(), userID, draft)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOutcomeResponse(out))
}

func (h *Handler) train(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Train(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trainResponse(res))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assistant.ErrInvalidDraft):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, assistant.ErrInvalidCategory):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, assistant.ErrProviderDisabled):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		slog.Error("assistant request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
