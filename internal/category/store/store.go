package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/database"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type Store struct {
	db database.DB
}

func New(db database.DB) *Store {
	return &Store{db: db}
}

const selectCategoryColumns = `id, user_id, name, icon, color, type, created_at`

const listCategoriesQuery = `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE user_id = $1 AND ($2::text IS NULL OR type = $2)
		ORDER BY name ASC`

const getCategoryQuery = `SELECT ` + selectCategoryColumns + `
		FROM categories
		WHERE id = $1 AND user_id = $2`

const insertCategoryQuery = `
		INSERT INTO categories (user_id, name, icon, color, type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (category.Category, error) {
	var c category.Category

	var typeStr string

	if err := s.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &typeStr, &c.CreatedAt); err != nil {
		return category.Category{}, err
	}

	c.Type = transaction.Type(typeStr)

	return c, nil
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID, typ *transaction.Type) ([]category.Category, error) {
	var typeArg *string
	if typ != nil {
		typeArg = new(string(*typ))
	}

	rows, err := s.db.Query(ctx, listCategoriesQuery, userID, typeArg)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}

func (s *Store) Get(ctx context.Context, userID, id uuid.UUID) (*category.Category, error) {
	c, err := scanCategory(s.db.QueryRow(ctx, getCategoryQuery, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return &c, nil
}

func (s *Store) Create(ctx context.Context, c *category.Category) error {
	err := s.db.QueryRow(ctx, insertCategoryQuery,
		c.UserID,
		c.Name,
		c.Icon,
		c.Color,
		string(c.Type),
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}
