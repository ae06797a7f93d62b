package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/database"
	"github.com/MrJamesThe3rd/texttx/internal/pattern"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type Store struct {
	db database.DB
}

func New(db database.DB) *Store {
	return &Store{db: db}
}

const selectPatternColumns = `
	id, user_id, original_text, normalized_text, transaction_type,
	amount, amount_per_installment, installments, description, transaction_date,
	category_id, category_name, learned_patterns, is_processed, confidence_score,
	processing_notes, created_at
`

const insertPatternQuery = `
		INSERT INTO learned_patterns (
			user_id, original_text, normalized_text, transaction_type,
			amount, amount_per_installment, installments, description, transaction_date,
			category_id, category_name, learned_patterns, is_processed, confidence_score,
			processing_notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING id, created_at
	`

const listByUserQuery = `SELECT ` + selectPatternColumns + `
		FROM learned_patterns
		WHERE user_id = $1
		ORDER BY created_at DESC`

const listProcessedQuery = `SELECT ` + selectPatternColumns + `
		FROM learned_patterns
		WHERE user_id = $1 AND is_processed AND COALESCE(confidence_score, 0) >= $2
		ORDER BY created_at DESC`

const listRecentQuery = `SELECT ` + selectPatternColumns + `
		FROM learned_patterns
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

const findSimilarQuery = `SELECT ` + selectPatternColumns + `
		FROM learned_patterns
		WHERE user_id = $1 AND is_processed AND normalized_text ILIKE '%' || $2 || '%'
		ORDER BY confidence_score DESC NULLS LAST, created_at DESC`

// listUnprocessedQuery skips texts that already have a processed pattern.
const listUnprocessedQuery = `SELECT ` + selectPatternColumns + `
		FROM learned_patterns lp
		WHERE lp.user_id = $1 AND NOT lp.is_processed
		AND NOT EXISTS (
			SELECT 1 FROM learned_patterns done
			WHERE done.user_id = lp.user_id
			AND done.normalized_text = lp.normalized_text
			AND done.is_processed
		)
		ORDER BY lp.created_at ASC`

type scanner interface {
	Scan(dest ...any) error
}

func scanPattern(s scanner) (*pattern.LearnedPattern, error) {
	var (
		p       pattern.LearnedPattern
		typeStr string
	)

	if err := s.Scan(
		&p.ID, &p.UserID, &p.OriginalText, &p.NormalizedText, &typeStr,
		&p.Amount, &p.AmountPerInstallment, &p.Installments, &p.Description, &p.TransactionDate,
		&p.CategoryID, &p.CategoryName, &p.LearnedPatterns, &p.IsProcessed, &p.Confidence,
		&p.ProcessingNotes, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.Type = transaction.Type(typeStr)

	return &p, nil
}

func (s *Store) Save(ctx context.Context, p *pattern.LearnedPattern) error {
	learned := p.LearnedPatterns
	if learned == nil {
		learned = []string{}
	}

	err := s.db.QueryRow(ctx, insertPatternQuery,
		p.UserID,
		p.OriginalText,
		p.NormalizedText,
		p.Type,
		p.Amount,
		p.AmountPerInstallment,
		p.Installments,
		p.Description,
		p.TransactionDate,
		p.CategoryID,
		p.CategoryName,
		learned,
		p.IsProcessed,
		p.Confidence,
		p.ProcessingNotes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving learned pattern: %w", err)
	}

	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*pattern.LearnedPattern, error) {
	return s.list(ctx, listByUserQuery, userID)
}

func (s *Store) ListProcessed(ctx context.Context, userID uuid.UUID, minConfidence float64) ([]*pattern.LearnedPattern, error) {
	return s.list(ctx, listProcessedQuery, userID, minConfidence)
}

func (s *Store) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*pattern.LearnedPattern, error) {
	return s.list(ctx, listRecentQuery, userID, limit)
}

func (s *Store) FindSimilar(ctx context.Context, userID uuid.UUID, keyword string) ([]*pattern.LearnedPattern, error) {
	return s.list(ctx, findSimilarQuery, userID, keyword)
}

func (s *Store) ListUnprocessed(ctx context.Context, userID uuid.UUID) ([]*pattern.LearnedPattern, error) {
	return s.list(ctx, listUnprocessedQuery, userID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*pattern.LearnedPattern, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing learned patterns: %w", err)
	}
	defer rows.Close()

	var patterns []*pattern.LearnedPattern

	for rows.Next() {
		p, err := scanPattern(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning learned pattern: %w", err)
		}

		patterns = append(patterns, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating learned pattern rows: %w", err)
	}

	return patterns, nil
}
