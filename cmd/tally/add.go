package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/model"
)

func addCmd() *cobra.Command {
	var (
		categoryID string
		at         string
		income     bool
	)

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Log a transaction",
		Long: `Log a single transaction. The amount must be positive; use --income for
money received. --at accepts a date (2006-01-02) or a full local timestamp
(2006-01-02T15:04:05) to backdate the entry.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(args[0])
			if description == "" {
				return fmt.Errorf("description cannot be empty")
			}

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %v", amount)
			}

			var createdAt *time.Time
			if at != "" {
				when, parseErr := parseAtFlag(at)
				if parseErr != nil {
					return parseErr
				}
				createdAt = &when
			}

			typ := model.TypeExpense
			if income {
				typ = model.TypeIncome
			}

			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.cleanup()

			txn := app.ctrl.AddTransaction(description, amount, categoryID, createdAt, typ)
			resolved := app.registry.Resolve(txn.CategoryID)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s %s (%s, %s)",
				txn.Description,
				cli.FormatAmount(txn.Amount, txn.Type == model.TypeIncome),
				cli.SubtleStyle.Render(txn.ID),
				resolved.Name,
				txn.Date)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id (defaults to other)")
	cmd.Flags().StringVar(&at, "at", "", "override the creation timestamp")
	cmd.Flags().BoolVar(&income, "income", false, "record income instead of an expense")

	return cmd
}

func parseAtFlag(raw string) (time.Time, error) {
	for _, layout := range []string{model.DateTimeLayout, model.DateLayout} {
		if when, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return when, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --at value %q: want %s or %s", raw, model.DateLayout, model.DateTimeLayout)
}
