package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Bulk-import transactions from a JSON array",
		Long: `Import transactions from a JSON array of objects shaped
{"name": string, "price": number, "category": string, "createdAt": "YYYYMMDD" or "YYYY-MM-DD..."}.

Reads the named file, or stdin when no file is given (paste and close with
Ctrl-D). Validation is all-or-nothing: the first invalid record rejects the
whole batch and nothing is imported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[0], err)
				}
			} else {
				raw, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}

			batch, err := app.ctrl.ImportTransactions(string(raw))
			if err != nil {
				app.cleanup()
				fmt.Println(cli.FormatError(err.Error()))
				return common.NewUserError("import rejected", err)
			}

			// The writes land asynchronously; spin the bar until the drain
			// completes so it tracks real persistence work.
			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionSetDescription(fmt.Sprintf("Persisting %d transactions...", len(batch))),
			)
			done := make(chan struct{})
			go func() {
				ticker := time.NewTicker(60 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						_ = bar.Add(1)
					}
				}
			}()
			app.cleanup()
			close(done)
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d transactions", len(batch))))
			return nil
		},
	}
}
