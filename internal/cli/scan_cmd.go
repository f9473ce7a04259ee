package cli

import (
	"context"
	"fmt"

	"github.com/EzequielOmarArraygada/backoffice/internal/cli/formatter"
	"github.com/EzequielOmarArraygada/backoffice/internal/sheetscan"
	"github.com/spf13/cobra"
)

func newScanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the cases sheet for flagged errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Scanner.Scan(context.Background(), app.CasesSheet)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Println("No new flagged rows.")
				return nil
			}
			fmt.Printf("Notified %d flagged row(s).\n", n)
			return nil
		},
	}
	return cmd
}

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Order-number checks",
	}
	cmd.AddCommand(newOrderCheckCmd(app))
	return cmd
}

func newOrderCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check ORDER_NUMBER",
		Short: "Check whether an order number is already loaded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exists, err := sheetscan.OrderExists(context.Background(), app.Store, app.CasesSheet, args[0])
			if err != nil {
				return err
			}
			if exists {
				fmt.Println(formatter.Warn(fmt.Sprintf("Order %s is already loaded.", args[0])))
			} else {
				fmt.Printf("Order %s not found.\n", args[0])
			}
			return nil
		},
	}
}
