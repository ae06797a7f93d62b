// Package app wires the services shared by every binary.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrJamesThe3rd/texttx/internal/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/category"
	categoryStore "github.com/MrJamesThe3rd/texttx/internal/category/store"
	"github.com/MrJamesThe3rd/texttx/internal/config"
	"github.com/MrJamesThe3rd/texttx/internal/database"
	"github.com/MrJamesThe3rd/texttx/internal/llm"
	"github.com/MrJamesThe3rd/texttx/internal/pattern"
	patternStore "github.com/MrJamesThe3rd/texttx/internal/pattern/store"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
	txStore "github.com/MrJamesThe3rd/texttx/internal/transaction/store"
)

type App struct {
	Pool         *pgxpool.Pool
	Categories   *category.Service
	Patterns     *pattern.Service
	Transactions *transaction.Service
	Assistant    *assistant.Service
}

// New connects to the database and builds the services. Migrations run first
// when migrate is set.
func New(ctx context.Context, cfg *config.Config, migrate bool) (*App, error) {
	pool, err := database.New(ctx, cfg.ConnectionString(), cfg.DB.MaxConns)
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	extractor, err := newExtractor(cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}

	a := &App{
		Pool:         pool,
		Categories:   category.NewService(categoryStore.New(pool)),
		Patterns:     pattern.NewService(patternStore.New(pool)),
		Transactions: transaction.NewService(txStore.New(pool)),
	}

	a.Assistant = assistant.NewService(a.Categories, a.Patterns, extractor, a.Transactions, assistant.Options{
		UseLearning: cfg.AI.UseLearning,
		Spelling:    cfg.AI.Spelling,
	})

	return a, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

// newExtractor returns a nil interface, not a nil *llm.Client, when the
// provider is off so the assistant sees it as absent.
func newExtractor(cfg *config.Config) (assistant.Extractor, error) {
	if !cfg.ProviderEnabled() {
		slog.Info("extraction provider disabled, using heuristics only")
		return nil, nil
	}

	client, err := llm.NewClient(llm.Config{
		APIKey:    cfg.AI.APIKey,
		BaseURL:   cfg.AI.BaseURL,
		Model:     cfg.AI.Model,
		Timeout:   cfg.AI.Timeout,
		RateLimit: cfg.AI.RateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("creating provider client: %w", err)
	}

	return client, nil
}
