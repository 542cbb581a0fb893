package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dieuclat/storefront/internal/service"
)

var ordersSession string

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Look up a session's order history",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runOrdersList,
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Print one order as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersShow,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersShowCmd)
	ordersCmd.PersistentFlags().StringVar(&ordersSession, "session", "", "Session id the orders belong to")
	_ = ordersCmd.MarkPersistentFlagRequired("session")
}

func openHistory(cmd *cobra.Command) (*service.OrderHistory, func(), error) {
	storage, err := openStorage(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	history, err := service.OpenOrderHistory(cmd.Context(), storage, ordersSession)
	if err != nil {
		storage.Close()
		return nil, nil, err
	}
	return history, func() { storage.Close() }, nil
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	history, done, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer done()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tPLACED\tSTATUS\tITEMS\tTOTAL")
	for _, o := range history.List() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", o.ID, o.CreatedAt.Format("02 Jan 2006 15:04"), o.Status, o.ItemCount(), o.TotalAmount.Format())
	}
	return tw.Flush()
}

func runOrdersShow(cmd *cobra.Command, args []string) error {
	history, done, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer done()

	order, err := history.FindOrder(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(order)
}
