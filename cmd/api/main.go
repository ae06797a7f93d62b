package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/texttx/internal/app"
	"github.com/MrJamesThe3rd/texttx/internal/config"
	texttxHttp "github.com/MrJamesThe3rd/texttx/internal/http"
	assistantHandler "github.com/MrJamesThe3rd/texttx/internal/http/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
	categoryHandler "github.com/MrJamesThe3rd/texttx/internal/http/category"
	patternHandler "github.com/MrJamesThe3rd/texttx/internal/http/pattern"
	txHandler "github.com/MrJamesThe3rd/texttx/internal/http/transaction"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(cfg.Logger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	a, err := app.New(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	router := texttxHttp.New(
		texttxHttp.Options{AllowedOrigins: cfg.Server.AllowedOrigins, Timeout: cfg.Server.Timeout},
		auth.NewVerifier(cfg.Auth.JWTSecret),
		assistantHandler.NewHandler(a.Assistant),
		categoryHandler.NewHandler(a.Categories),
		patternHandler.NewHandler(a.Patterns),
		txHandler.NewHandler(a.Transactions),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "provider", cfg.ProviderEnabled())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}
