package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
)

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction by id",
		Long:  `Delete a transaction. Deleting an id that does not exist is a no-op.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.cleanup()

			app.ctrl.DeleteTransaction(args[0])
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("deleted %s", args[0])))
			return nil
		},
	}
}
