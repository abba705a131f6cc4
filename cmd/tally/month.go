package main

import (
	"fmt"
	"os"
	"regexp"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/model"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{1,2}$`)

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-M]",
		Short: "Show a month's transactions and totals",
		Long: `Show one month of the ledger with its expense, income, and balance
totals. Defaults to the current month; pass a key like 2024-3 to navigate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := model.MonthKeyFor(time.Now())
			if len(args) == 1 {
				if !monthKeyPattern.MatchString(args[0]) {
					return fmt.Errorf("invalid month %q: want a key like 2024-3", args[0])
				}
				key = canonicalMonthKey(args[0])
			}

			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.cleanup()

			view := app.ctrl.Month(key)

			fmt.Println(cli.FormatTitle(key))
			fmt.Printf("expense %.2f  income %.2f  balance %.2f\n\n",
				view.Totals.Expense, view.Totals.Income, view.Totals.Balance)

			if len(view.Transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions this month."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, txn := range view.Transactions {
				cat := app.registry.Resolve(txn.CategoryID)
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					txn.Date,
					categoryBadge(cat),
					cat.Name,
					txn.Description,
					cli.FormatAmount(txn.Amount, txn.Type == model.TypeIncome),
					cli.SubtleStyle.Render(txn.ID))
			}

			return nil
		},
	}
}

// canonicalMonthKey strips any zero padding from the month component so
// "2024-03" and "2024-3" address the same bucket.
func canonicalMonthKey(raw string) string {
	parsed, err := time.ParseInLocation("2006-1", raw, time.Local)
	if err != nil {
		return raw
	}
	return model.MonthKeyFor(parsed)
}
