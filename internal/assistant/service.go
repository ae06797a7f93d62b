package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/extract"
	"github.com/MrJamesThe3rd/texttx/internal/metrics"
	"github.com/MrJamesThe3rd/texttx/internal/textnorm"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type Options struct {
	// UseLearning enables learned-pattern reuse and, with a provider, the
	// provider and fallback steps.
	UseLearning bool
	// Spelling sends heuristic descriptions to the provider for typo correction.
	Spelling bool
}

type Service struct {
	categories   CategoryProvider
	patterns     PatternFinder
	extractor    Extractor
	creator      TransactionCreator
	orchestrator *Orchestrator
	provider     *providerStrategy
	now          func() time.Time
	tracer       trace.Tracer
}

// NewService wires the extraction chain. extractor may be nil, which disables
// the provider step, the fallback step, spelling correction and training.
func NewService(categories CategoryProvider, patterns PatternFinder, extractor Extractor, creator TransactionCreator, opts Options) *Service {
	s := &Service{
		categories: categories,
		patterns:   patterns,
		extractor:  extractor,
		creator:    creator,
		now:        time.Now,
		tracer:     otel.Tracer("github.com/MrJamesThe3rd/texttx/internal/assistant"),
	}

	if extractor != nil {
		s.provider = &providerStrategy{extractor: extractor, patterns: patterns}
	}

	var strategies []Strategy

	if opts.UseLearning {
		strategies = append(strategies, &reuseStrategy{patterns: patterns})

		if s.provider != nil {
			strategies = append(strategies, s.provider, &fallbackStrategy{patterns: patterns})
		}
	}

	heuristic := &heuristicStrategy{}
	if opts.Spelling {
		heuristic.speller = extractor
	}

	s.orchestrator = NewOrchestrator(append(strategies, heuristic)...)

	return s
}

// WithClock replaces the clock used to resolve relative dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Extract reads a transaction out of text and decides the next conversation step.
// It never fails; collaborator errors degrade to the next strategy.
func (s *Service) Extract(ctx context.Context, userID uuid.UUID, text string) Outcome {
	ctx, span := s.tracer.Start(ctx, "assistant.Extract")
	defer span.End()

	req := s.request(ctx, userID, text)
	res := s.orchestrator.Run(ctx, req)

	span.SetAttributes(attribute.String("extraction.source", string(res.Source)))

	out := s.decide(ctx, userID, req, res.Candidate)
	metrics.Outcomes.WithLabelValues(out.Kind()).Inc()

	return out
}

// Continue answers a NeedsInfo prompt by re-reading the previous message
// together with the reply.
func (s *Service) Continue(ctx context.Context, userID uuid.UUID, previousText, reply string) Outcome {
	previousText = strings.TrimSpace(previousText)
	if previousText == "" {
		return s.Extract(ctx, userID, reply)
	}

	return s.Extract(ctx, userID, previousText+"\n"+strings.TrimSpace(reply))
}

// SelectCategory attaches the chosen category to a draft awaiting one.
func (s *Service) SelectCategory(ctx context.Context, userID uuid.UUID, draft Draft, categoryID uuid.UUID) (NeedsConfirmation, error) {
	cat, err := s.verifyCategory(ctx, userID, categoryID, draft.Type)
	if err != nil {
		return NeedsConfirmation{}, err
	}

	draft.Category = cat

	out := NeedsConfirmation{Draft: draft, Prompt: confirmationPrompt(draft)}
	metrics.Outcomes.WithLabelValues(out.Kind()).Inc()

	return out, nil
}

// Confirm persists a confirmed draft, one transaction per installment.
func (s *Service) Confirm(ctx context.Context, userID uuid.UUID, draft Draft) (Success, error) {
	ctx, span := s.tracer.Start(ctx, "assistant.Confirm")
	defer span.End()

	if !draft.Amount.IsPositive() || draft.Date.IsZero() || !draft.Type.Valid() {
		return Success{}, ErrInvalidDraft
	}

	if draft.TotalInstallments > transaction.MaxInstallments {
		return Success{}, ErrInvalidDraft
	}

	draft.TotalInstallments = max(draft.TotalInstallments, 1)

	var categoryID *uuid.UUID

	if draft.Category != nil {
		cat, err := s.verifyCategory(ctx, userID, draft.Category.ID, draft.Type)
		if err != nil {
			return Success{}, err
		}

		draft.Category = cat
		categoryID = &cat.ID
	}

	description := strings.TrimSpace(draft.Description)
	if description == "" {
		description = extract.DefaultDescription(draft.Type)
	}

	txs, err := s.creator.CreateFromDraft(ctx, transaction.DraftParams{
		UserID:            userID,
		Amount:            draft.Amount,
		Type:              draft.Type,
		Description:       description,
		RawDescription:    draft.RawText,
		Date:              draft.Date,
		CategoryID:        categoryID,
		TotalInstallments: draft.TotalInstallments,
	})
	if err != nil {
		return Success{}, fmt.Errorf("creating transactions: %w", err)
	}

	metrics.TransactionsCreated.Add(float64(len(txs)))

	out := Success{Transactions: txs, Message: successPrompt(draft)}
	metrics.Outcomes.WithLabelValues(out.Kind()).Inc()

	return out, nil
}

type TrainResult struct {
	Processed int
	Failed    int
}

// Train re-sends to the provider every failed message that was never learned.
func (s *Service) Train(ctx context.Context, userID uuid.UUID) (TrainResult, error) {
	if s.provider == nil {
		return TrainResult{}, ErrProviderDisabled
	}

	pending, err := s.patterns.Pending(ctx, userID)
	if err != nil {
		return TrainResult{}, fmt.Errorf("listing pending patterns: %w", err)
	}

	var (
		result TrainResult
		seen   = make(map[string]struct{})
	)

	for _, p := range pending {
		if _, dup := seen[p.NormalizedText]; dup {
			continue
		}

		seen[p.NormalizedText] = struct{}{}

		if _, err := s.provider.learn(ctx, s.request(ctx, userID, p.OriginalText)); err != nil {
			slog.Warn("failed to train pattern", "pattern_id", p.ID, "error", err)
			result.Failed++

			continue
		}

		result.Processed++
	}

	slog.Info("training finished", "user_id", userID, "processed", result.Processed, "failed", result.Failed)

	return result, nil
}

func (s *Service) request(ctx context.Context, userID uuid.UUID, text string) Request {
	text = strings.TrimSpace(text)

	cats, err := s.categories.List(ctx, userID)
	if err != nil {
		slog.Warn("failed to load categories", "error", err)
	}

	return Request{
		UserID:     userID,
		Text:       text,
		Normalized: textnorm.Normalize(text),
		Today:      startOfDay(s.now()),
		Categories: cats,
	}
}

// decide runs the confirmation flow over the winning candidate.
func (s *Service) decide(ctx context.Context, userID uuid.UUID, req Request, c extract.Candidate) Outcome {
	installments := max(c.Installments, 1)

	var missing []MissingInfo

	if !c.HasAmount() {
		missing = append(missing, missingAmount)
	}

	if c.Date == nil {
		if installments > 1 {
			missing = append(missing, missingStartDate)
		} else {
			missing = append(missing, missingDate)
		}
	}

	if len(missing) > 0 {
		return NeedsInfo{
			Missing: missing,
			Prompt:  needsInfoPrompt(missing, installments, c.Amount),
			Text:    req.Text,
		}
	}

	draft := Draft{
		Description:       c.Description,
		RawText:           req.Text,
		Amount:            c.Amount.Decimal,
		Type:              c.Type,
		Date:              *c.Date,
		IsPaid:            !c.Date.After(req.Today),
		TotalInstallments: installments,
	}

	if c.CategoryID != nil {
		draft.Category = categoryOfType(req.Categories, *c.CategoryID, c.Type)
	}

	if installments > 1 {
		draft.StatedTotal = c.Total
	}

	if draft.Type == transaction.TypeExpense && draft.Category == nil {
		cats, err := s.categories.ListByType(ctx, userID, transaction.TypeExpense)
		if err != nil {
			slog.Warn("failed to load expense categories", "error", err)
		}

		return NeedsCategory{Draft: draft, Categories: cats, Prompt: categoryPrompt}
	}

	return NeedsConfirmation{Draft: draft, Prompt: confirmationPrompt(draft)}
}

func (s *Service) verifyCategory(ctx context.Context, userID, id uuid.UUID, typ transaction.Type) (*category.Category, error) {
	cat, err := s.categories.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, ErrInvalidCategory
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	if cat.Type != typ {
		return nil, ErrInvalidCategory
	}

	return cat, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
