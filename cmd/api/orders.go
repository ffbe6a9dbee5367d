package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"shopapi/pkg/order"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect the persisted order table",
}

var ordersInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the order table metadata as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		backend, closeBackend, err := openBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeBackend()

		info, err := order.NewTable(ctx, cfg.Orders.Database, backend, log).Info(ctx)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("encode info: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	ordersCmd.AddCommand(ordersInfoCmd)
	rootCmd.AddCommand(ordersCmd)
}
