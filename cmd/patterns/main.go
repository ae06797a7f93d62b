package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/texttx/internal/app"
	"github.com/MrJamesThe3rd/texttx/internal/config"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:               "patterns",
		Short:             "Inspect and train learned extraction patterns",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	rootCmd.AddCommand(trainCmd())
	rootCmd.AddCommand(similarCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	c, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(c.Logger())
	cfg = c

	return nil
}

func openApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, cfg, false)
}

func userFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("user")

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--user must be a user id: %w", err)
	}

	return id, nil
}
