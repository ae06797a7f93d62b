// Package assistant turns a free-text message into a transaction draft and
// drives the short conversation needed to confirm it.
package assistant

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/llm"
	"github.com/MrJamesThe3rd/texttx/internal/pattern"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

var (
	ErrInvalidCategory  = errors.New("invalid category selection")
	ErrInvalidDraft     = errors.New("draft requires a positive amount, a date and a valid type")
	ErrProviderDisabled = errors.New("extraction provider is disabled")
)

//go:generate mockgen -source=assistant.go -destination=assistant_mock.go -package=assistant
type CategoryProvider interface {
	List(ctx context.Context, userID uuid.UUID) ([]category.Category, error)
	ListByType(ctx context.Context, userID uuid.UUID, typ transaction.Type) ([]category.Category, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*category.Category, error)
}

type PatternFinder interface {
	FindReusable(ctx context.Context, userID uuid.UUID, normalized string) (*pattern.LearnedPattern, error)
	FindFallback(ctx context.Context, userID uuid.UUID, normalized string) (*pattern.LearnedPattern, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*pattern.LearnedPattern, error)
	Record(ctx context.Context, p *pattern.LearnedPattern) error
	Pending(ctx context.Context, userID uuid.UUID) ([]*pattern.LearnedPattern, error)
}

type Extractor interface {
	Extract(ctx context.Context, req llm.ExtractionRequest) (*llm.Extraction, error)
	CorrectSpelling(ctx context.Context, text string) (string, error)
}

type TransactionCreator interface {
	CreateFromDraft(ctx context.Context, params transaction.DraftParams) ([]*transaction.Transaction, error)
}
