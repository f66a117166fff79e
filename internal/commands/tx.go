package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/budgetwave-dev/budgetwave/internal/budget"
	"github.com/budgetwave-dev/budgetwave/internal/importer"
	"github.com/budgetwave-dev/budgetwave/internal/ledger"
	"github.com/budgetwave-dev/budgetwave/internal/model"
	"github.com/budgetwave-dev/budgetwave/internal/render"
	"github.com/budgetwave-dev/budgetwave/internal/report"
)

func newTxCommand(a *app) *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}
	txCmd.AddCommand(newTxAddCommand(a))
	txCmd.AddCommand(newTxRmCommand(a))
	txCmd.AddCommand(newTxListCommand(a))
	txCmd.AddCommand(newTxExportCommand(a))
	txCmd.AddCommand(newTxImportCommand(a))
	return txCmd
}

func newTxAddCommand(a *app) *cobra.Command {
	var in budget.TransactionInput
	var txType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Type = model.TransactionType(txType)
			return a.update(cmd, func(s *model.AppState) (string, error) {
				t, err := budget.AddTransaction(s, in, a.now())
				if err != nil {
					return "", err
				}
				a.logger.Debug("Added transaction", "id", t.ID, "amount", t.Amount.String())
				return "Lançamento adicionado!", nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Desc, "desc", "", "description")
	cmd.Flags().StringVar(&in.CategoryID, "category", "", "category id")
	cmd.Flags().StringVar(&in.Amount, "amount", "", "amount, e.g. 1.234,56")
	cmd.Flags().StringVar(&txType, "type", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVar(&in.Date, "date", "", "date as YYYY-MM-DD (default today)")

	return cmd
}

func newTxRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.update(cmd, func(s *model.AppState) (string, error) {
				if !budget.DeleteTransaction(s, args[0]) {
					return "", fmt.Errorf("transaction %s not found", args[0])
				}
				return "Lançamento removido.", nil
			})
		},
	}
}

func newTxListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List this month's transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.view(func(s model.AppState) error {
				rows := report.MonthTransactions(s, a.now())
				fmt.Fprint(cmd.OutOrStdout(), render.New(s.Theme).Transactions(rows))
				return nil
			})
		},
	}
}

func newTxExportCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.view(func(s model.AppState) error {
				if out == "" {
					return ledger.Write(cmd.OutOrStdout(), s)
				}
				if err := exportFile(out, s); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d lançamentos exportados para %s\n", len(s.Transactions), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}

func exportFile(path string, s model.AppState) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing export: %w", cerr)
		}
	}()
	return ledger.Write(f, s)
}

func newTxImportCommand(a *app) *cobra.Command {
	var format string
	var category string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement or a ledger export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := importer.DefaultRegistry().ParseFile(format, args[0])
			if err != nil {
				return err
			}
			return a.update(cmd, func(s *model.AppState) (string, error) {
				res, err := budget.ImportTransactions(s, txs, category)
				if err != nil {
					return "", err
				}
				a.logger.Info("Imported statement", "file", args[0], "format", format, "added", res.Added, "skipped", res.Skipped)
				return fmt.Sprintf("%d lançamentos importados, %d já existentes.", res.Added, res.Skipped), nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "nuconta", "statement format (nuconta, ledger)")
	cmd.Flags().StringVar(&category, "category", "", "category id for lines without one")

	return cmd
}
