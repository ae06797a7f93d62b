package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/texttx/internal/database"
	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
	"github.com/MrJamesThe3rd/texttx/internal/pattern"
)

func trainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Send unlearned messages to the extraction provider",
		Long: `Retries every message the provider failed on whose text has not been
learned since, recording the new patterns.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Assistant.Train(cmd.Context(), userID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "processed: %d\nfailed: %d\n", res.Processed, res.Failed)

			return nil
		},
	}

	cmd.Flags().String("user", "", "user id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func similarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar",
		Short: "List learned patterns sharing words with a keyword",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}

			keyword, _ := cmd.Flags().GetString("keyword")

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			ps, err := a.Patterns.Similar(cmd.Context(), userID, keyword)
			if err != nil {
				return err
			}

			if len(ps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no patterns found")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), patternTable(ps))

			return nil
		},
	}

	cmd.Flags().String("user", "", "user id")
	cmd.Flags().String("keyword", "", "text to match")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("keyword")

	return cmd
}

func patternTable(ps []*pattern.LearnedPattern) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Texto", "Tipo", "Valor", "Descrição", "Confiança").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}

			return cell
		})

	for _, p := range ps {
		amount := "-"
		if p.Amount.Valid {
			amount = p.Amount.Decimal.StringFixed(2)
		}

		t.Row(p.OriginalText, string(p.Type), amount, p.Description,
			strconv.FormatFloat(p.ConfidenceOrZero(), 'f', 2, 64))
	}

	return t.Render()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := database.New(cmd.Context(), cfg.ConnectionString(), cfg.DB.MaxConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(cmd.Context(), pool); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}

			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := auth.NewVerifier(cfg.Auth.JWTSecret).Issue(userID, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().String("user", "", "user id")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
