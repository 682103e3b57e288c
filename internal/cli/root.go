// Package cli holds the exchangerctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/SscSPs/currency_exchanger/internal/client"
	"github.com/SscSPs/currency_exchanger/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
)

// NewRootCmd builds the command tree. Every subcommand talks to the server named by --server.
func NewRootCmd() *cobra.Command {
	var server string

	root := &cobra.Command{
		Use:   "exchangerctl",
		Short: "A CLI for the currency exchanger",
		Long: `exchangerctl shows current rates and balances, quotes conversions
and exchanges currency through a running exchanger server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&server, "server", defaultServer, "exchanger server base URL")

	api := func() *client.Client { return client.New(server) }

	root.AddCommand(
		newRatesCmd(api),
		newQuoteCmd(api),
		newExchangeCmd(api),
		newBalancesCmd(api),
		newHistoryCmd(api),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute(ctx context.Context) {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	_, _ = errorColor.Fprintf(w, "Error: %v\n", err)
}

func newRatesCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show the current exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := api().Rates(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Base %s, fetched %s\n", table.Base, table.FetchedAt.Format("2006-01-02 15:04:05"))

			codes := make([]string, 0, len(table.Rates))
			for code := range table.Rates {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				fmt.Fprintf(out, "  %s  %v\n", code, table.Rates[code])
			}
			return nil
		},
	}
}

func newQuoteCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "quote AMOUNT FROM TO",
		Short: "Preview a conversion without changing balances",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, from, to := normalizeArgs(args)
			q, err := api().Quote(cmd.Context(), amount, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s // %s commission fee\n",
				utils.FormatMoney(q.Amount, q.FromCurrency),
				utils.FormatMoney(q.ConvertedAmount, q.ToCurrency),
				utils.FormatMoney(q.CommissionFee, q.FromCurrency))
			return nil
		},
	}
}

func newExchangeCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "exchange AMOUNT FROM TO",
		Short: "Convert AMOUNT from one balance into another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, from, to := normalizeArgs(args)
			txn, err := api().Exchange(cmd.Context(), amount, from, to)
			if err != nil {
				return err
			}
			_, _ = successColor.Fprintf(cmd.OutOrStdout(), "Converted %s to %s (commission %s), transaction %s\n",
				utils.FormatMoney(txn.Amount, txn.FromCurrency),
				utils.FormatMoney(txn.ConvertedAmount, txn.ToCurrency),
				utils.FormatMoney(txn.CommissionFee, txn.FromCurrency),
				txn.TransactionID)
			return nil
		},
	}
}

func newBalancesCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "List balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := api().Balances(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(balances) == 0 {
				fmt.Fprintln(out, "No balances.")
				return nil
			}
			for _, b := range balances {
				fmt.Fprintf(out, "  %s\n", utils.FormatMoney(b.Amount, b.CurrencyCode))
			}
			return nil
		},
	}
}

func newHistoryCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List completed conversions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := api().Transactions(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(txns) == 0 {
				fmt.Fprintln(out, "No transactions.")
				return nil
			}
			for _, t := range txns {
				fmt.Fprintf(out, "%s  %s -> %s  fee %s\n",
					t.CreatedAt.Format("2006-01-02 15:04:05"),
					utils.FormatMoney(t.Amount, t.FromCurrency),
					utils.FormatMoney(t.ConvertedAmount, t.ToCurrency),
					utils.FormatMoney(t.CommissionFee, t.FromCurrency))
			}
			return nil
		},
	}
}

func normalizeArgs(args []string) (amount, from, to string) {
	return strings.TrimSpace(args[0]), strings.ToUpper(args[1]), strings.ToUpper(args[2])
}
