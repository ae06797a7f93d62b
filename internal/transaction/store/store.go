package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MrJamesThe3rd/texttx/internal/database"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type Store struct {
	db database.DB
}

func New(db database.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a row in selectTransactionColumns order.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, statusStr string

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &typeStr, &statusStr, &tx.Description, &tx.RawDescription,
		&tx.Date, &tx.IsPaid, &tx.CategoryID, &tx.GroupID, &tx.Installment, &tx.TotalInstallments,
		&tx.CreatedAt, &tx.UpdatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Status = transaction.Status(statusStr)

	return &tx, nil
}

const selectTransactionColumns = `
	id, user_id, amount, type, status, description, raw_description,
	date, is_paid, category_id, group_id, installment, total_installments,
	created_at, updated_at, deleted_at
`

const getTransactionQuery = `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const deleteTransactionQuery = `
		UPDATE transactions
		SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`

const insertTransactionQuery = `
		INSERT INTO transactions (
			user_id, amount, type, status, description, raw_description, date,
			is_paid, category_id, group_id, installment, total_installments, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`

func (s *Store) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	tx, err := scanTransaction(s.db.QueryRow(ctx, getTransactionQuery, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND deleted_at IS NULL`

	args := []any{userID}

	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
	}

	query += " ORDER BY date ASC, installment ASC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, deleteTransactionQuery, id, userID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

type batchTx struct {
	tx pgx.Tx
}

func (s *Store) BeginBatch(ctx context.Context) (transaction.BatchTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning batch tx: %w", err)
	}

	return &batchTx{tx: tx}, nil
}

func (b *batchTx) Commit(ctx context.Context) error   { return b.tx.Commit(ctx) }
func (b *batchTx) Rollback(ctx context.Context) error { return b.tx.Rollback(ctx) }

func (b *batchTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	for _, tx := range txs {
		err := b.tx.QueryRow(ctx, insertTransactionQuery,
			tx.UserID,
			tx.Amount,
			tx.Type,
			tx.Status,
			tx.Description,
			tx.RawDescription,
			tx.Date,
			tx.IsPaid,
			tx.CategoryID,
			tx.GroupID,
			tx.Installment,
			tx.TotalInstallments,
		).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	return nil
}
