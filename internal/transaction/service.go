package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidParams = errors.New("invalid transaction params")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error

	BeginBatch(ctx context.Context) (BatchTx, error)
}

type BatchTx interface {
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the clock used to decide which installments are already paid.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// DraftParams is a confirmed draft. Amount is the per-installment value.
type DraftParams struct {
	UserID            uuid.UUID
	Amount            decimal.Decimal
	Type              Type
	Description       string
	RawDescription    string
	Date              time.Time
	CategoryID        *uuid.UUID
	TotalInstallments int
}

type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateFromDraft persists a confirmed draft. A draft with N installments becomes N
// transactions due on consecutive months starting at Date, written atomically.
func (s *Service) CreateFromDraft(ctx context.Context, params DraftParams) ([]*Transaction, error) {
	if !params.Amount.IsPositive() || params.Date.IsZero() || !params.Type.Valid() {
		return nil, ErrInvalidParams
	}

	if params.TotalInstallments < 0 || params.TotalInstallments > MaxInstallments {
		return nil, ErrInvalidParams
	}

	txs := expandInstallments(params, s.now())

	btx, err := s.repo.BeginBatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer btx.Rollback(ctx)

	if err := btx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := btx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return txs, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

func expandInstallments(params DraftParams, now time.Time) []*Transaction {
	total := max(params.TotalInstallments, 1)

	var groupID *uuid.UUID
	if total > 1 {
		groupID = new(uuid.New())
	}

	today := truncateDay(now)

	txs := make([]*Transaction, total)
	for i := range total {
		date := addMonths(params.Date, i)
		paid := !truncateDay(date).After(today)

		status := StatusPending
		if paid {
			status = StatusPaid
		}

		txs[i] = &Transaction{
			UserID:            params.UserID,
			Amount:            params.Amount,
			Type:              params.Type,
			Status:            status,
			Description:       installmentDescription(params.Description, i+1, total),
			RawDescription:    params.RawDescription,
			Date:              date,
			IsPaid:            paid,
			CategoryID:        params.CategoryID,
			GroupID:           groupID,
			Installment:       i + 1,
			TotalInstallments: total,
		}
	}

	return txs
}

func installmentDescription(desc string, n, total int) string {
	if total == 1 {
		return desc
	}

	return fmt.Sprintf("%s (%d/%d)", desc, n, total)
}

// addMonths moves t forward n months, clamping to the last day of a shorter month.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()

	return first.AddDate(0, 0, min(t.Day(), last)-1)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
