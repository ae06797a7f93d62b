package assistant

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/extract"
	"github.com/MrJamesThe3rd/texttx/internal/llm"
	"github.com/MrJamesThe3rd/texttx/internal/metrics"
	"github.com/MrJamesThe3rd/texttx/internal/pattern"
	"github.com/MrJamesThe3rd/texttx/internal/textnorm"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type Status int

const (
	Miss Status = iota
	Hit
)

// Source names the strategy that produced a candidate.
type Source string

const (
	SourceReuse     Source = "reuse"
	SourceProvider  Source = "provider"
	SourceFallback  Source = "fallback"
	SourceHeuristic Source = "heuristic"
)

// Request is one message to extract, with the context every strategy shares.
type Request struct {
	UserID     uuid.UUID
	Text       string
	Normalized string
	Today      time.Time
	Categories []category.Category
}

type Result struct {
	Status    Status
	Candidate extract.Candidate
	Source    Source
}

func miss(source Source) Result {
	return Result{Status: Miss, Source: source}
}

func hit(source Source, c extract.Candidate) Result {
	return Result{Status: Hit, Candidate: c, Source: source}
}

// Strategy is one step of the extraction chain. Failures are reported as a Miss.
type Strategy interface {
	Extract(ctx context.Context, req Request) Result
}

// reuseStrategy answers from a confident learned pattern without calling the provider.
type reuseStrategy struct {
	patterns PatternFinder
}

func (s *reuseStrategy) Extract(ctx context.Context, req Request) Result {
	p, err := s.patterns.FindReusable(ctx, req.UserID, req.Normalized)
	if err != nil {
		slog.Warn("failed to look up reusable pattern", "error", err)
		return miss(SourceReuse)
	}

	if p == nil {
		return miss(SourceReuse)
	}

	slog.Debug("reusing learned pattern", "pattern_id", p.ID)

	return hit(SourceReuse, fromPattern(p, req))
}

// providerStrategy asks the external provider and records every attempt as a
// learned pattern, successful or not.
type providerStrategy struct {
	extractor Extractor
	patterns  PatternFinder
}

func (s *providerStrategy) Extract(ctx context.Context, req Request) Result {
	p, err := s.learn(ctx, req)
	if err != nil {
		slog.Warn("failed to extract with provider", "error", err)
		return miss(SourceProvider)
	}

	return hit(SourceProvider, fromPattern(p, req))
}

// learn calls the provider and persists the outcome. It returns the processed
// pattern, or the provider error after recording the failure.
func (s *providerStrategy) learn(ctx context.Context, req Request) (*pattern.LearnedPattern, error) {
	history, err := s.patterns.Recent(ctx, req.UserID, pattern.HistoryLimit)
	if err != nil {
		slog.Warn("failed to load pattern history", "error", err)
	}

	ext, err := s.extractor.Extract(ctx, llm.ExtractionRequest{
		OriginalText:   req.Text,
		NormalizedText: req.Normalized,
		History:        historyItems(history),
		Categories:     categoryOptions(req.Categories),
		Today:          req.Today,
	})
	if err != nil {
		s.record(ctx, &pattern.LearnedPattern{
			UserID:          req.UserID,
			OriginalText:    req.Text,
			NormalizedText:  req.Normalized,
			Type:            extract.Type(req.Normalized),
			ProcessingNotes: "Erro ao processar: " + err.Error(),
		})

		return nil, err
	}

	p := patternFromExtraction(ext, req)
	s.record(ctx, p)

	return p, nil
}

func (s *providerStrategy) record(ctx context.Context, p *pattern.LearnedPattern) {
	if err := s.patterns.Record(ctx, p); err != nil {
		slog.Error("failed to record learned pattern", "error", err)
		return
	}

	metrics.PatternsRecorded.WithLabelValues(boolLabel(p.IsProcessed)).Inc()
}

// fallbackStrategy settles for the closest learned pattern once the provider failed.
type fallbackStrategy struct {
	patterns PatternFinder
}

func (s *fallbackStrategy) Extract(ctx context.Context, req Request) Result {
	p, err := s.patterns.FindFallback(ctx, req.UserID, req.Normalized)
	if err != nil {
		slog.Warn("failed to look up fallback pattern", "error", err)
		return miss(SourceFallback)
	}

	if p == nil {
		return miss(SourceFallback)
	}

	return hit(SourceFallback, fromPattern(p, req))
}

// heuristicStrategy runs the regex extractors and always produces a candidate.
type heuristicStrategy struct {
	speller Extractor
}

func (s *heuristicStrategy) Extract(ctx context.Context, req Request) Result {
	c := extract.Analyze(req.Normalized, req.Today, req.Categories)

	if s.speller != nil && c.Description != extract.DefaultDescription(c.Type) {
		corrected, err := s.speller.CorrectSpelling(ctx, c.Description)

		switch {
		case err != nil:
			slog.Debug("spelling correction skipped", "error", err)
		case len(corrected) > 2:
			c.Description = textnorm.TitleCase(corrected)
		}
	}

	return hit(SourceHeuristic, c)
}

// fromPattern builds a candidate from a learned pattern. Date and a declared
// installment count always come from the current message.
func fromPattern(p *pattern.LearnedPattern, req Request) extract.Candidate {
	c := extract.Candidate{
		Type:         p.Type,
		Installments: extract.Installments(req.Normalized),
		Date:         extract.Date(req.Normalized, req.Today),
		CategoryName: p.CategoryName,
	}

	if !c.Type.Valid() {
		c.Type = extract.Type(req.Normalized)
	}

	if c.Installments <= 1 {
		c.Installments = installmentCount(p.Installments)
	}

	n := decimal.NewFromInt(int64(max(c.Installments, 1)))

	switch {
	case p.AmountPerInstallment.Valid:
		c.Amount = p.AmountPerInstallment
		if c.Installments > 1 && p.Amount.Valid && p.Amount.Decimal.DivRound(n, 2).Equal(p.AmountPerInstallment.Decimal) {
			c.Total = p.Amount
		}
	case p.Amount.Valid && c.Installments > 1:
		c.Amount = decimal.NewNullDecimal(p.Amount.Decimal.DivRound(n, 2))
		c.Total = p.Amount
	default:
		c.Amount = p.Amount
	}

	if p.CategoryID != nil {
		if cat := categoryOfType(req.Categories, *p.CategoryID, c.Type); cat != nil {
			c.CategoryID = &cat.ID
		}
	}

	c.Description = textnorm.TitleCase(strings.TrimSpace(p.Description))
	if c.Description == "" {
		c.Description = extract.DefaultDescription(c.Type)
	}

	return c
}

func patternFromExtraction(ext *llm.Extraction, req Request) *pattern.LearnedPattern {
	p := &pattern.LearnedPattern{
		UserID:               req.UserID,
		OriginalText:         req.Text,
		NormalizedText:       req.Normalized,
		Type:                 ext.TransactionType(),
		Amount:               ext.Amount,
		AmountPerInstallment: ext.AmountPerInstallment,
		Installments:         normalizeInstallments(ext.Installments),
		Description:          strings.TrimSpace(ext.Description),
		TransactionDate:      ext.ParsedDate(req.Today.Location()),
		CategoryName:         ext.CategoryName,
		LearnedPatterns:      ext.Patterns,
		IsProcessed:          true,
		Confidence:           new(ext.Confidence),
		ProcessingNotes:      ext.Notes,
	}

	// Only keep category IDs the user owns for this transaction type.
	if id := ext.ParsedCategoryID(); id != nil && categoryOfType(req.Categories, *id, p.Type) != nil {
		p.CategoryID = id
	}

	return p
}

func historyItems(patterns []*pattern.LearnedPattern) []llm.HistoryItem {
	items := make([]llm.HistoryItem, 0, len(patterns))

	for _, p := range patterns {
		items = append(items, llm.HistoryItem{
			Text:        p.OriginalText,
			Type:        p.Type,
			Amount:      p.Amount,
			Description: p.Description,
		})
	}

	return items
}

func categoryOptions(cats []category.Category) []llm.CategoryOption {
	opts := make([]llm.CategoryOption, 0, len(cats))

	for _, c := range cats {
		opts = append(opts, llm.CategoryOption{ID: c.ID, Name: c.Name, Type: c.Type})
	}

	return opts
}

// categoryOfType finds the user's category with the given ID and type.
func categoryOfType(cats []category.Category, id uuid.UUID, typ transaction.Type) *category.Category {
	i := slices.IndexFunc(cats, func(c category.Category) bool { return c.ID == id && c.Type == typ })
	if i < 0 {
		return nil
	}

	return &cats[i]
}

// installmentCount reads a stored installment count, treating anything outside
// 2..transaction.MaxInstallments as a single payment.
func installmentCount(n *int) int {
	if n == nil || *n <= 1 || *n > transaction.MaxInstallments {
		return 0
	}

	return *n
}

func normalizeInstallments(n *int) *int {
	if installmentCount(n) == 0 {
		return nil
	}

	return n
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
